package notification

import (
	"context"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// maxTextLen keeps replies under the LINE text message limit.
const maxTextLen = 4900

// LineClient implements Client over the LINE Messaging API.
type LineClient struct {
	bot *linebot.Client
}

func NewLineClient(bot *linebot.Client) *LineClient {
	return &LineClient{bot: bot}
}

func (c *LineClient) Reply(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error {
	_, err := c.bot.ReplyMessage(replyToken, messages...).WithContext(ctx).Do()
	return err
}

func (c *LineClient) Push(ctx context.Context, to string, messages ...linebot.SendingMessage) error {
	_, err := c.bot.PushMessage(to, messages...).WithContext(ctx).Do()
	return err
}

func (c *LineClient) DisplayName(ctx context.Context, userID string) (string, error) {
	profile, err := c.bot.GetProfile(userID).WithContext(ctx).Do()
	if err != nil {
		return "", err
	}
	return profile.DisplayName, nil
}

// SafeText builds a text message truncated to the API limit.
func SafeText(text string) *linebot.TextMessage {
	runes := []rune(text)
	if len(runes) > maxTextLen {
		runes = runes[:maxTextLen]
	}
	return linebot.NewTextMessage(string(runes))
}
