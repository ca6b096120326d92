package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"casabot/models"

	"go.uber.org/zap"
)

func TestDueWindows(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  []string
	}{
		{"exactly two hours out", now.Add(2 * time.Hour), []string{models.ReminderWindow2H}},
		{"two hours minus one minute", now.Add(2*time.Hour - time.Minute), []string{models.ReminderWindow2H}},
		{"two hours plus four minutes", now.Add(2*time.Hour + 4*time.Minute), []string{models.ReminderWindow2H}},
		{"two hours plus six minutes", now.Add(2*time.Hour + 6*time.Minute), nil},
		{"exactly a day out", now.Add(24 * time.Hour), []string{models.ReminderWindow24H}},
		{"a day minus five minutes", now.Add(24*time.Hour - 5*time.Minute), []string{models.ReminderWindow24H}},
		{"in between windows", now.Add(10 * time.Hour), nil},
		{"already started", now.Add(-time.Hour), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DueWindows(tt.start, now)
			if len(got) != len(tt.want) {
				t.Fatalf("DueWindows = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("DueWindows[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

type staticBookings struct {
	rows []models.Booking
}

func (s staticBookings) All(_ context.Context) ([]models.Booking, error) { return s.rows, nil }
func (s staticBookings) Exists(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}
func (s staticBookings) Create(_ context.Context, b models.Booking) (models.Booking, error) {
	return b, nil
}
func (s staticBookings) ListForUser(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}
func (s staticBookings) Cancel(_ context.Context, _ string) (bool, error) { return false, nil }
func (s staticBookings) FindByID(_ context.Context, _ string) (*models.Booking, error) {
	return nil, nil
}

type recordingQueue struct {
	got  []models.ReminderPayload
	fail bool
}

func (q *recordingQueue) Enqueue(_ context.Context, p models.ReminderPayload) error {
	if q.fail {
		return errors.New("queue unavailable")
	}
	q.got = append(q.got, p)
	return nil
}

func TestSweep(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	dt := func(d time.Duration) string {
		return now.Add(d).Format("2006-01-02T15:04")
	}

	rows := []models.Booking{
		{BookingID: "b1", UserID: "u1", PropertyID: "p1", Datetime: dt(2 * time.Hour), Status: models.BookingStatusRequested},
		{BookingID: "b2", UserID: "u2", PropertyID: "p2", Datetime: dt(24 * time.Hour), Status: models.BookingStatusConfirmed},
		{BookingID: "b3", UserID: "u3", PropertyID: "p3", Datetime: dt(2 * time.Hour), Status: models.BookingStatusCancelled},
		{BookingID: "b4", UserID: "", PropertyID: "p4", Datetime: dt(2 * time.Hour), Status: models.BookingStatusRequested},
		{BookingID: "b5", UserID: "u5", PropertyID: "p5", Datetime: "not a timestamp", Status: models.BookingStatusRequested},
		{BookingID: "b6", UserID: "u6", PropertyID: "p6", Datetime: dt(10 * time.Hour), Status: models.BookingStatusRequested},
	}

	queue := &recordingQueue{}
	s := NewSweeper(staticBookings{rows: rows}, queue, time.UTC, zap.NewNop())
	s.Now = func() time.Time { return now }

	queued, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if queued != 2 {
		t.Fatalf("queued = %d, want 2", queued)
	}
	if queue.got[0].BookingID != "b1" || queue.got[0].Window != models.ReminderWindow2H {
		t.Errorf("first payload = %+v", queue.got[0])
	}
	if queue.got[1].BookingID != "b2" || queue.got[1].Window != models.ReminderWindow24H {
		t.Errorf("second payload = %+v", queue.got[1])
	}
}

func TestSweepContinuesPastEnqueueFailure(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	rows := []models.Booking{
		{BookingID: "b1", UserID: "u1", PropertyID: "p1",
			Datetime: now.Add(2 * time.Hour).Format("2006-01-02T15:04"), Status: models.BookingStatusRequested},
	}

	queue := &recordingQueue{fail: true}
	s := NewSweeper(staticBookings{rows: rows}, queue, time.UTC, zap.NewNop())
	s.Now = func() time.Time { return now }

	queued, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if queued != 0 {
		t.Errorf("queued = %d, want 0 when every enqueue fails", queued)
	}
}
