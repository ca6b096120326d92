package notification

import (
	"context"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client is the outbound messaging surface the conversation and reminder
// services depend on.
type Client interface {
	// Reply answers an inbound event using its one-shot reply token.
	Reply(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error
	// Push sends messages outside a reply window (reminders).
	Push(ctx context.Context, to string, messages ...linebot.SendingMessage) error
	// DisplayName looks up the user's profile name. Best-effort callers
	// treat an error as "no name available".
	DisplayName(ctx context.Context, userID string) (string, error)
}
