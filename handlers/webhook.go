package handlers

import (
	"net/http"

	"casabot/services/conversation"
	"casabot/utils"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"
)

// WebhookVerifyHandler answers the LINE console's GET verification probe.
func WebhookVerifyHandler(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// WebhookHandler receives LINE webhook deliveries. Signature verification is
// done by ParseRequest against the channel secret; a bad signature is a 400.
// Per-event handler failures are logged but still acknowledged with 200 so
// the platform does not redeliver the whole batch.
func WebhookHandler(bot *linebot.Client, svc conversation.Service) gin.HandlerFunc {
	logger := utils.GetLogger()

	return func(c *gin.Context) {
		events, err := bot.ParseRequest(c.Request)
		if err != nil {
			if err == linebot.ErrInvalidSignature {
				logger.Warn("Webhook signature mismatch", zap.String("ip", c.ClientIP()))
				utils.JSONError(c, http.StatusBadRequest, "Invalid signature", "")
				return
			}
			logger.Error("Webhook parse failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to parse request", err.Error())
			return
		}

		ctx := c.Request.Context()
		for _, ev := range events {
			userID := ""
			if ev.Source != nil {
				userID = ev.Source.UserID
			}

			switch ev.Type {
			case linebot.EventTypeMessage:
				msg, ok := ev.Message.(*linebot.TextMessage)
				if !ok {
					continue
				}
				err = svc.HandleText(ctx, conversation.InboundMessage{
					ReplyToken: ev.ReplyToken,
					UserID:     userID,
					Text:       msg.Text,
				})
			case linebot.EventTypePostback:
				if ev.Postback == nil {
					continue
				}
				picked := ""
				if ev.Postback.Params != nil {
					picked = ev.Postback.Params.Datetime
				}
				err = svc.HandlePostback(ctx, conversation.InboundPostback{
					ReplyToken:     ev.ReplyToken,
					UserID:         userID,
					Data:           ev.Postback.Data,
					PickedDatetime: picked,
				})
			default:
				continue
			}

			if err != nil {
				logger.Error("Event handling failed",
					zap.String("event_type", string(ev.Type)),
					zap.String("user_id", userID),
					zap.Error(err))
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
