package handlers

import (
	"net/http"

	"casabot/config"
	"casabot/services/reminder"
	"casabot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderSweepHandler runs one reminder sweep on demand. Deployments without
// a background ticker point an external scheduler at this endpoint.
func ReminderSweepHandler(sweeper *reminder.Sweeper) gin.HandlerFunc {
	logger := utils.GetLogger()

	return func(c *gin.Context) {
		if !config.AppConfig.EnableReminders {
			c.JSON(http.StatusOK, gin.H{"ok": true, "queued": 0, "disabled": true})
			return
		}

		queued, err := sweeper.Sweep(c.Request.Context())
		if err != nil {
			logger.Error("On-demand reminder sweep failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "sweep failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "queued": queued})
	}
}
