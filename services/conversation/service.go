package conversation

import (
	"context"
	"fmt"
	"strconv"

	agentRepo "casabot/database/repository/agent"
	bookingRepo "casabot/database/repository/booking"
	listingRepo "casabot/database/repository/listing"
	"casabot/models"
	"casabot/services/calendar"
	"casabot/services/intelligence"
	"casabot/services/notification"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"
)

const helpText = "Try: 'browse', 'search 2br in Thonglor under 30k', " +
	"'detail <id>', 'book <id>', 'my bookings', 'cancel <booking_id>'"

// InboundMessage is a normalized text message event.
type InboundMessage struct {
	ReplyToken string
	UserID     string
	Text       string
}

// InboundPostback is a normalized button/picker postback event.
// PickedDatetime is set when the postback came from a datetime picker.
type InboundPostback struct {
	ReplyToken     string
	UserID         string
	Data           string
	PickedDatetime string
}

// Service orchestrates one inbound event end to end: intent resolution,
// store access, and the outbound reply.
type Service interface {
	HandleText(ctx context.Context, ev InboundMessage) error
	HandlePostback(ctx context.Context, ev InboundPostback) error
}

// DefaultService implements Service.
type DefaultService struct {
	Listings listingRepo.Repository
	Bookings bookingRepo.Repository
	Agents   agentRepo.Repository
	Calendar calendar.Service
	Resolver intelligence.Resolver
	Sessions intelligence.ContextStore
	Notifier notification.Client
	Logger   *zap.Logger
}

func (s *DefaultService) HandleText(ctx context.Context, ev InboundMessage) error {
	sess := s.loadSession(ctx, ev.UserID)
	intent := s.Resolver.Resolve(ctx, ev.Text, sess)

	switch intent.Name {
	case models.IntentBrowse:
		return s.replyListings(ctx, ev.ReplyToken, models.Filters{}, 0)
	case models.IntentSearch:
		f := mergeSession(intent.Filters, sess)
		s.saveSession(ctx, ev.UserID, f)
		return s.replyListings(ctx, ev.ReplyToken, f, intent.Filters.Cursor)
	case models.IntentDetail:
		return s.replyDetail(ctx, ev.ReplyToken, intent.Filters.PropertyID)
	case models.IntentBook:
		return s.replyDatetimePrompt(ctx, ev.ReplyToken, intent.Filters.PropertyID)
	case models.IntentMyBookings:
		return s.replyMyBookings(ctx, ev.ReplyToken, ev.UserID)
	case models.IntentCancel:
		return s.cancelBooking(ctx, ev.ReplyToken, intent.Filters.BookingID)
	default:
		return s.replyText(ctx, ev.ReplyToken, helpText)
	}
}

func (s *DefaultService) HandlePostback(ctx context.Context, ev InboundPostback) error {
	a := ParseAction(ev.Data)

	switch a.Name {
	case ActionBookPick:
		if ev.PickedDatetime == "" {
			return s.replyText(ctx, ev.ReplyToken, "Please pick a date and time.")
		}
		return s.createBooking(ctx, ev.ReplyToken, ev.UserID, a.Params["pid"], ev.PickedDatetime)
	case ActionDetail:
		return s.replyDetail(ctx, ev.ReplyToken, a.Params["pid"])
	case ActionBook:
		return s.replyDatetimePrompt(ctx, ev.ReplyToken, a.Params["pid"])
	case ActionCancel:
		return s.cancelBooking(ctx, ev.ReplyToken, a.Params["bid"])
	case ActionBrowse:
		cursor := 0
		if n, err := strconv.Atoi(a.Params["cursor"]); err == nil && n > 0 {
			cursor = n
		}
		return s.replyListings(ctx, ev.ReplyToken, filtersFromParams(a.Params), cursor)
	}
	// Unknown actions are ignored rather than answered.
	return nil
}

func (s *DefaultService) replyListings(ctx context.Context, replyToken string, f models.Filters, cursor int) error {
	props, err := s.Listings.Search(ctx, f)
	if err != nil {
		s.Logger.Error("Listing search failed", zap.Error(err))
		return s.replyText(ctx, replyToken, "Something went wrong. Please try again.")
	}
	if len(props) == 0 {
		return s.replyText(ctx, replyToken, "No properties found. Try broadening your search.")
	}

	page, next, more := Page(props, cursor)
	if len(page) == 0 {
		return s.replyText(ctx, replyToken, "No more results.")
	}

	bubbles := make([]map[string]interface{}, 0, len(page)+1)
	for _, l := range page {
		bubbles = append(bubbles, propertyCard(l, nil, false))
	}
	if more {
		kv := append([]string{"cursor", strconv.Itoa(next)}, filtersToKV(f)...)
		bubbles = append(bubbles, paginationBubble("More results", EncodeAction(ActionBrowse, kv...)))
	}

	msg, err := flexMessage("Property results", carousel(bubbles))
	if err != nil {
		s.Logger.Error("Failed to build listing carousel", zap.Error(err))
		return s.replyText(ctx, replyToken, "Something went wrong. Please try again.")
	}
	return s.Notifier.Reply(ctx, replyToken, msg)
}

func (s *DefaultService) replyDetail(ctx context.Context, replyToken, propertyID string) error {
	l, err := s.Listings.GetByID(ctx, propertyID)
	if err != nil {
		s.Logger.Error("Listing lookup failed", zap.String("property_id", propertyID), zap.Error(err))
		return s.replyText(ctx, replyToken, "Something went wrong. Please try again.")
	}
	if l == nil {
		return s.replyText(ctx, replyToken, "Property not found.")
	}

	ag := s.lookupAgent(ctx, l.AgentID)
	msg, err := flexMessage("Property detail", propertyCard(*l, ag, true))
	if err != nil {
		s.Logger.Error("Failed to build detail card", zap.Error(err))
		return s.replyText(ctx, replyToken, "Something went wrong. Please try again.")
	}
	return s.Notifier.Reply(ctx, replyToken, msg)
}

func (s *DefaultService) replyDatetimePrompt(ctx context.Context, replyToken, propertyID string) error {
	l, err := s.Listings.GetByID(ctx, propertyID)
	if err != nil {
		s.Logger.Error("Listing lookup failed", zap.String("property_id", propertyID), zap.Error(err))
		return s.replyText(ctx, replyToken, "Something went wrong. Please try again.")
	}
	if l == nil {
		return s.replyText(ctx, replyToken, "Please specify a valid property to book.")
	}

	picker := linebot.NewDatetimePickerAction(
		"Pick date", EncodeAction(ActionBookPick, "pid", l.ID), "datetime", "", "", "")
	msg := linebot.NewTextMessage(fmt.Sprintf("Pick a date/time for %s", l.Title)).
		WithQuickReplies(linebot.NewQuickReplyItems(linebot.NewQuickReplyButton("", picker)))
	return s.Notifier.Reply(ctx, replyToken, msg)
}

func (s *DefaultService) replyMyBookings(ctx context.Context, replyToken, userID string) error {
	bookings, err := s.Bookings.ListForUser(ctx, userID)
	if err != nil {
		s.Logger.Error("Booking list failed", zap.String("user_id", userID), zap.Error(err))
		return s.replyText(ctx, replyToken, "Something went wrong. Please try again.")
	}
	if len(bookings) == 0 {
		return s.replyText(ctx, replyToken, "You have no bookings.")
	}

	if len(bookings) > 10 {
		bookings = bookings[:10]
	}
	lines := ""
	for _, b := range bookings {
		title := b.PropertyID
		if l, err := s.Listings.GetByID(ctx, b.PropertyID); err == nil && l != nil {
			title = l.Title
		}
		lines += fmt.Sprintf("#%s - %s at %s [%s]\n", b.BookingID, title, b.Datetime, b.Status)
	}
	return s.replyText(ctx, replyToken, lines)
}

func (s *DefaultService) replyText(ctx context.Context, replyToken, text string) error {
	return s.Notifier.Reply(ctx, replyToken, notification.SafeText(text))
}

func (s *DefaultService) lookupAgent(ctx context.Context, agentID string) *models.Agent {
	if agentID == "" {
		return nil
	}
	ag, err := s.Agents.GetByID(ctx, agentID)
	if err != nil {
		s.Logger.Warn("Agent lookup failed", zap.String("agent_id", agentID), zap.Error(err))
		return nil
	}
	return ag
}

func (s *DefaultService) loadSession(ctx context.Context, userID string) models.SessionContext {
	if userID == "" || s.Sessions == nil {
		return models.SessionContext{}
	}
	sess, err := s.Sessions.Get(ctx, userID)
	if err != nil {
		s.Logger.Warn("Session load failed", zap.String("user_id", userID), zap.Error(err))
		return models.SessionContext{}
	}
	return sess
}

func (s *DefaultService) saveSession(ctx context.Context, userID string, f models.Filters) {
	if userID == "" || s.Sessions == nil {
		return
	}
	sess := models.SessionContext{
		Neighborhood: f.Neighborhood,
		PropertyType: f.PropertyType,
		PriceMax:     f.PriceMax,
	}
	if err := s.Sessions.Set(ctx, userID, sess); err != nil {
		s.Logger.Warn("Session save failed", zap.String("user_id", userID), zap.Error(err))
	}
}

// mergeSession fills filter fields the new message left blank with the
// previous turn's context, so "under 30k" keeps the last area and type.
func mergeSession(f models.Filters, sess models.SessionContext) models.Filters {
	if f.Neighborhood == "" {
		f.Neighborhood = sess.Neighborhood
	}
	if f.PropertyType == "" {
		f.PropertyType = sess.PropertyType
	}
	if f.PriceMax == nil {
		f.PriceMax = sess.PriceMax
	}
	return f
}

// filtersToKV encodes the active filter set into continuation-action pairs so
// pagination stays stateless.
func filtersToKV(f models.Filters) []string {
	var kv []string
	if f.Neighborhood != "" {
		kv = append(kv, "area", f.Neighborhood)
	}
	if f.PropertyType != "" {
		kv = append(kv, "type", f.PropertyType)
	}
	if f.PriceMax != nil {
		kv = append(kv, "price_max", strconv.Itoa(*f.PriceMax))
	}
	if f.PriceMin != nil {
		kv = append(kv, "price_min", strconv.Itoa(*f.PriceMin))
	}
	if f.Bedrooms != nil {
		kv = append(kv, "bedrooms", strconv.Itoa(*f.Bedrooms))
	}
	if f.Bathrooms != nil {
		kv = append(kv, "bathrooms", strconv.Itoa(*f.Bathrooms))
	}
	return kv
}

func filtersFromParams(params map[string]string) models.Filters {
	var f models.Filters
	f.Neighborhood = params["area"]
	f.PropertyType = params["type"]
	if n, err := strconv.Atoi(params["price_max"]); err == nil {
		f.PriceMax = &n
	}
	if n, err := strconv.Atoi(params["price_min"]); err == nil {
		f.PriceMin = &n
	}
	if n, err := strconv.Atoi(params["bedrooms"]); err == nil {
		f.Bedrooms = &n
	}
	if n, err := strconv.Atoi(params["bathrooms"]); err == nil {
		f.Bathrooms = &n
	}
	return f
}
