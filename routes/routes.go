package routes

import (
	"net/http"
	"time"

	"casabot/handlers"
	"casabot/services/conversation"
	"casabot/services/reminder"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// RegisterWebhookRoutes wires the LINE callback endpoints. The platform posts
// events to /callback; the GET variant exists for console verification probes.
func RegisterWebhookRoutes(r *gin.Engine, bot *linebot.Client, svc conversation.Service) {
	r.GET("/callback", handlers.WebhookVerifyHandler)
	r.POST("/callback", handlers.WebhookHandler(bot, svc))
}

// RegisterCronRoutes exposes the scheduler-facing endpoints.
func RegisterCronRoutes(r *gin.Engine, sweeper *reminder.Sweeper) {
	cron := r.Group("/cron")
	{
		cron.GET("/reminders", handlers.ReminderSweepHandler(sweeper))
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Casabot"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bot *linebot.Client, svc conversation.Service, sweeper *reminder.Sweeper) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Line-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterWebhookRoutes(r, bot, svc)
	RegisterCronRoutes(r, sweeper)
}
