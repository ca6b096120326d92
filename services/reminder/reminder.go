package reminder

import (
	"context"
	"time"

	bookingRepo "casabot/database/repository/booking"
	"casabot/models"

	"go.uber.org/zap"
)

// tolerance is the half-width of each reminder window. With a ten minute
// sweep cadence a booking falls inside at most one sweep per window.
const tolerance = 5 * time.Minute

var windows = map[string]time.Duration{
	models.ReminderWindow2H:  2 * time.Hour,
	models.ReminderWindow24H: 24 * time.Hour,
}

// Enqueuer hands reminder payloads to the delivery queue. Enqueue must be
// idempotent per (booking, window) pair; a repeat enqueue is a no-op.
type Enqueuer interface {
	Enqueue(ctx context.Context, p models.ReminderPayload) error
}

// Sweeper scans active bookings and queues the reminders whose window is due.
type Sweeper struct {
	Bookings bookingRepo.Repository
	Queue    Enqueuer
	Timezone *time.Location
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewSweeper(bookings bookingRepo.Repository, queue Enqueuer, tz *time.Location, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		Bookings: bookings,
		Queue:    queue,
		Timezone: tz,
		Logger:   logger,
		Now:      time.Now,
	}
}

// Sweep walks the booking table once and enqueues every due reminder.
// It returns the number of reminders queued in this pass.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	bookings, err := s.Bookings.All(ctx)
	if err != nil {
		return 0, err
	}

	now := s.Now()
	queued := 0
	for _, b := range bookings {
		if !b.Active() || b.UserID == "" {
			continue
		}
		start, err := b.StartTime(s.Timezone)
		if err != nil {
			s.Logger.Debug("Skipping booking with unparseable datetime",
				zap.String("booking_id", b.BookingID), zap.String("datetime", b.Datetime))
			continue
		}
		for _, w := range DueWindows(start, now) {
			p := models.ReminderPayload{
				BookingID:  b.BookingID,
				UserID:     b.UserID,
				PropertyID: b.PropertyID,
				Datetime:   b.Datetime,
				Window:     w,
			}
			if err := s.Queue.Enqueue(ctx, p); err != nil {
				s.Logger.Warn("Failed to enqueue reminder",
					zap.String("booking_id", b.BookingID), zap.String("window", w), zap.Error(err))
				continue
			}
			queued++
		}
	}
	return queued, nil
}

// DueWindows reports which reminder windows the appointment start falls into
// right now. The lead time must match a window within the tolerance.
func DueWindows(start, now time.Time) []string {
	lead := start.Sub(now)
	var due []string
	for _, name := range []string{models.ReminderWindow24H, models.ReminderWindow2H} {
		w := windows[name]
		delta := lead - w
		if delta < 0 {
			delta = -delta
		}
		if delta <= tolerance {
			due = append(due, name)
		}
	}
	return due
}
