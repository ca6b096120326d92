package conversation

import (
	"encoding/json"
	"fmt"
	"strconv"

	"casabot/models"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Flex payloads are assembled as raw JSON documents and parsed into SDK
// containers, keeping the card layout in one readable place.

func flexMessage(altText string, container map[string]interface{}) (linebot.SendingMessage, error) {
	raw, err := json.Marshal(container)
	if err != nil {
		return nil, err
	}
	contents, err := linebot.UnmarshalFlexMessageJSON(raw)
	if err != nil {
		return nil, err
	}
	return linebot.NewFlexMessage(altText, contents), nil
}

func carousel(bubbles []map[string]interface{}) map[string]interface{} {
	contents := make([]interface{}, len(bubbles))
	for i, b := range bubbles {
		contents[i] = b
	}
	return map[string]interface{}{"type": "carousel", "contents": contents}
}

func flexText(text, size, color string, bold bool) map[string]interface{} {
	t := map[string]interface{}{"type": "text", "text": text, "wrap": true}
	if size != "" {
		t["size"] = size
	}
	if color != "" {
		t["color"] = color
	}
	if bold {
		t["weight"] = "bold"
	}
	return t
}

func flexButton(label, data string) map[string]interface{} {
	return map[string]interface{}{
		"type":   "button",
		"style":  "link",
		"height": "sm",
		"action": map[string]interface{}{"type": "postback", "label": label, "data": data},
	}
}

func countOrQuestion(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

// propertyCard renders one listing bubble. The agent line appears only when
// the listing references a known agent.
func propertyCard(l models.Listing, ag *models.Agent, includeActions bool) map[string]interface{} {
	bubble := map[string]interface{}{"type": "bubble"}

	if l.ThumbnailURL != "" {
		bubble["hero"] = map[string]interface{}{
			"type":        "image",
			"url":         l.ThumbnailURL,
			"size":        "full",
			"aspectRatio": "20:13",
			"aspectMode":  "cover",
		}
	}

	place := l.Neighborhood
	if place == "" {
		place = l.Address
	}
	body := []interface{}{
		flexText(l.Title, "lg", "", true),
		flexText(fmt.Sprintf("฿%s • %sBR/%sBA", formatPrice(l.Price),
			countOrQuestion(l.Bedrooms), countOrQuestion(l.Bathrooms)), "sm", "#666666", false),
		flexText(place, "sm", "#888888", false),
	}
	if ag != nil {
		body = append(body, flexText("Agent: "+ag.Name+" "+ag.Phone, "xs", "#888888", false))
	}
	bubble["body"] = map[string]interface{}{
		"type": "box", "layout": "vertical", "spacing": "md", "contents": body,
	}

	footer := []interface{}{
		flexButton("Details", EncodeAction(ActionDetail, "pid", l.ID)),
	}
	if includeActions {
		footer = append(footer,
			map[string]interface{}{"type": "separator"},
			flexButton("Book viewing", EncodeAction(ActionBook, "pid", l.ID)),
		)
	}
	bubble["footer"] = map[string]interface{}{
		"type": "box", "layout": "vertical", "spacing": "sm", "contents": footer,
	}
	return bubble
}

func confirmationBubble(l models.Listing, b models.Booking) map[string]interface{} {
	return map[string]interface{}{
		"type": "bubble",
		"body": map[string]interface{}{
			"type": "box", "layout": "vertical", "spacing": "sm",
			"contents": []interface{}{
				flexText("Booking Confirmed", "lg", "", true),
				flexText(l.Title, "md", "", false),
				flexText("When: "+b.Datetime, "sm", "#666666", false),
				flexText("Booking #: "+b.BookingID, "sm", "#666666", false),
			},
		},
		"footer": map[string]interface{}{
			"type": "box", "layout": "vertical", "spacing": "sm",
			"contents": []interface{}{
				flexButton("Details", EncodeAction(ActionDetail, "pid", l.ID)),
				map[string]interface{}{"type": "separator"},
				flexButton("Cancel booking", EncodeAction(ActionCancel, "bid", b.BookingID)),
			},
		},
	}
}

func paginationBubble(label, data string) map[string]interface{} {
	return map[string]interface{}{
		"type": "bubble",
		"body": map[string]interface{}{
			"type": "box", "layout": "vertical",
			"contents": []interface{}{flexText(label, "md", "", true)},
		},
		"footer": map[string]interface{}{
			"type": "box", "layout": "vertical",
			"contents": []interface{}{flexButton("Next", data)},
		},
	}
}

// formatPrice renders a baht amount with thousands separators.
func formatPrice(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
