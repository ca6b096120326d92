// File: casabot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casabot/config"
	"casabot/cron"
	"casabot/database"
	agentRepoPkg "casabot/database/repository/agent"
	bookingRepoPkg "casabot/database/repository/booking"
	listingRepoPkg "casabot/database/repository/listing"
	"casabot/middleware"
	"casabot/routes"
	"casabot/services/calendar"
	"casabot/services/conversation"
	ai "casabot/services/intelligence"
	"casabot/services/notification"
	"casabot/services/reminder"
	"casabot/utils"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	bot, err := linebot.New(config.AppConfig.LineChannelSecret, config.AppConfig.LineChannelToken)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize LINE client: %v", err)
	}

	gemini, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	calendarSvc, err := calendar.NewGoogleCalendar()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Calendar service: %v", err)
	}

	tz, err := time.LoadLocation(config.AppConfig.CalendarTimezone)
	if err != nil {
		logger.Sugar().Warnf("main: unknown timezone %q, using UTC", config.AppConfig.CalendarTimezone)
		tz = time.UTC
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewSheetsListingRepo()
	bookingRepo := bookingRepoPkg.NewSheetsBookingRepo()
	agentRepo := agentRepoPkg.NewSheetsAgentRepo()

	// services.
	notifier := notification.NewLineClient(bot)
	ctxStore := ai.NewRedisContextStore(utils.GetSessionCacheClient(), 30*time.Minute)
	resolver := ai.NewDefaultResolver(gemini, logger)

	conversationSvc := &conversation.DefaultService{
		Listings: listingRepo,
		Bookings: bookingRepo,
		Agents:   agentRepo,
		Calendar: calendarSvc,
		Resolver: resolver,
		Sessions: ctxStore,
		Notifier: notifier,
		Logger:   logger,
	}

	// Reminder pipeline: sweep finds due bookings, asynq delivers the pushes.
	enqueuer := cron.NewAsynqEnqueuer()
	defer enqueuer.Close()
	sweeper := reminder.NewSweeper(bookingRepo, enqueuer, tz, logger)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if config.AppConfig.EnableReminders {
		cron.InitReminderWorker(notifier, listingRepo)
		cron.StartSweepTicker(workerCtx, sweeper)
	}

	routes.RegisterRoutes(router, bot, conversationSvc, sweeper)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopWorker()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
