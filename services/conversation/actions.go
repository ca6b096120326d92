package conversation

import "strings"

// Postback action names carried between an outbound button and the next
// inbound postback event.
const (
	ActionDetail   = "detail"
	ActionBook     = "book"
	ActionBookPick = "book_pick"
	ActionCancel   = "cancel"
	ActionBrowse   = "browse"
)

// Action is the decoded form of a postback data string. The wire format is a
// flat "key=value&key=value" sequence with the action name under "action".
type Action struct {
	Name   string
	Params map[string]string
}

// ParseAction decodes a postback data string. Malformed pairs are skipped;
// an absent action key yields an empty name.
func ParseAction(data string) Action {
	a := Action{Params: map[string]string{}}
	for _, pair := range strings.Split(data, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		if key == "action" {
			a.Name = value
			continue
		}
		a.Params[key] = value
	}
	return a
}

// EncodeAction builds a postback data string from a name and key/value pairs.
func EncodeAction(name string, kv ...string) string {
	var sb strings.Builder
	sb.WriteString("action=")
	sb.WriteString(name)
	for i := 0; i+1 < len(kv); i += 2 {
		sb.WriteString("&")
		sb.WriteString(kv[i])
		sb.WriteString("=")
		sb.WriteString(kv[i+1])
	}
	return sb.String()
}
