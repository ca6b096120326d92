package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"casabot/config"
	listingRepo "casabot/database/repository/listing"
	"casabot/models"
	"casabot/services/notification"
	"casabot/services/reminder"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// NewReminderTask builds the queue task for one (booking, window) pair. The
// task id pins the pair so a later sweep hitting the same window is rejected
// by the queue instead of producing a duplicate push.
func NewReminderTask(p models.ReminderPayload) (*asynq.Task, []asynq.Option, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{
		asynq.TaskID(fmt.Sprintf("reminder:%s:%s", p.BookingID, p.Window)),
		asynq.Retention(time.Hour),
	}
	return asynq.NewTask(TypeReminderSend, payload), opts, nil
}

// AsynqEnqueuer adapts the asynq client to the sweeper's queue interface.
type AsynqEnqueuer struct {
	client *asynq.Client
}

func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{client: asynq.NewClient(redisOpts())}
}

func (e *AsynqEnqueuer) Enqueue(ctx context.Context, p models.ReminderPayload) error {
	task, opts, err := NewReminderTask(p)
	if err != nil {
		return err
	}
	_, err = e.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		// Already queued by an earlier sweep.
		return nil
	}
	return err
}

func (e *AsynqEnqueuer) Close() error { return e.client.Close() }

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifier notification.Client, listings listingRepo.Repository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifier, listings))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// StartSweepTicker triggers a reminder sweep on the configured cadence until
// the context is cancelled. It honors the ENABLE_REMINDERS kill switch.
func StartSweepTicker(ctx context.Context, sweeper *reminder.Sweeper) {
	if !config.AppConfig.EnableReminders {
		log.Println("[ReminderSweep] Disabled by configuration")
		return
	}
	interval := time.Duration(config.AppConfig.ReminderSweepMinutes) * time.Minute
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := sweeper.Sweep(ctx); err != nil {
					log.Printf("[ReminderSweep] Sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("[ReminderSweep] Queued %d reminder(s)", n)
				}
			}
		}
	}()
}

func handleReminderTask(notifier notification.Client, listings listingRepo.Repository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		title := p.PropertyID
		if l, err := listings.GetByID(ctx, p.PropertyID); err == nil && l != nil {
			title = l.Title
		}

		text := fmt.Sprintf("Reminder: Viewing for %s at %s (T-%s).", title, p.Datetime, p.Window)
		if err := notifier.Push(ctx, p.UserID, notification.SafeText(text)); err != nil {
			log.Printf("[ReminderHandler] Failed to push reminder %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
