package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"casabot/config"
	"casabot/database"
	"casabot/models"
	"casabot/utils"

	"github.com/google/uuid"
)

const bookingsTab = "bookings"

// SheetsBookingRepo reads and writes booking rows in the bookings worksheet.
// Reads go through a short TTL cache that every write invalidates.
type SheetsBookingRepo struct {
	cache *utils.RowCache[[]models.Booking]
}

// NewSheetsBookingRepo returns a booking repository with the configured TTL.
func NewSheetsBookingRepo() *SheetsBookingRepo {
	ttl := time.Duration(config.AppConfig.BookingCacheTTL) * time.Second
	return &SheetsBookingRepo{cache: utils.NewRowCache[[]models.Booking](ttl)}
}

func (r *SheetsBookingRepo) All(ctx context.Context) ([]models.Booking, error) {
	if rows, ok := r.cache.Get(); ok {
		return rows, nil
	}
	records, err := database.ReadRecords(ctx, bookingsTab)
	if err != nil {
		return nil, err
	}
	bookings := make([]models.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, bookingFromRecord(rec))
	}
	r.cache.Set(bookings)
	return bookings, nil
}

func (r *SheetsBookingRepo) Exists(ctx context.Context, propertyID, dtISO string) (bool, error) {
	rows, err := r.All(ctx)
	if err != nil {
		return false, err
	}
	return HasConflict(rows, propertyID, dtISO), nil
}

func (r *SheetsBookingRepo) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.BookingID = newBookingID()
	b.Status = models.BookingStatusRequested
	b.CreatedAt = time.Now().Format("2006-01-02 15:04:05")

	rec := map[string]string{
		"booking_id":        b.BookingID,
		"user_id":           b.UserID,
		"user_display_name": b.UserDisplayName,
		"property_id":       b.PropertyID,
		"datetime":          b.Datetime,
		"status":            b.Status,
		"created_at":        b.CreatedAt,
		"notes":             b.Notes,
	}
	if err := database.AppendRecord(ctx, bookingsTab, rec); err != nil {
		return models.Booking{}, err
	}
	r.cache.Invalidate()
	return b, nil
}

func (r *SheetsBookingRepo) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	rows, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Booking
	for _, b := range rows {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *SheetsBookingRepo) Cancel(ctx context.Context, bookingID string) (bool, error) {
	if bookingID == "" {
		return false, nil
	}
	// Cancellation works on a fresh read so the row index is trustworthy.
	headers, rows, err := database.ReadRows(ctx, bookingsTab)
	if err != nil {
		return false, err
	}
	idCol := indexOf(headers, "booking_id")
	statusCol := indexOf(headers, "status")
	if idCol < 0 || statusCol < 0 {
		return false, fmt.Errorf("bookings sheet missing booking_id/status columns")
	}
	for i, row := range rows {
		if cell(row, idCol) != bookingID {
			continue
		}
		if strings.EqualFold(cell(row, statusCol), models.BookingStatusCancelled) {
			return false, nil
		}
		// Header occupies sheet row 1, data starts at row 2.
		if err := database.UpdateCell(ctx, bookingsTab, i+2, statusCol+1, models.BookingStatusCancelled); err != nil {
			return false, err
		}
		r.cache.Invalidate()
		return true, nil
	}
	return false, nil
}

func (r *SheetsBookingRepo) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	rows, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].BookingID == bookingID {
			return &rows[i], nil
		}
	}
	return nil, nil
}

// HasConflict reports whether any non-cancelled booking occupies the same
// (property, datetime) pair.
func HasConflict(rows []models.Booking, propertyID, dtISO string) bool {
	for _, b := range rows {
		if b.PropertyID == propertyID && b.Datetime == dtISO && b.Active() {
			return true
		}
	}
	return false
}

// newBookingID returns a short opaque token: the first 8 hex chars of a v4 UUID.
func newBookingID() string {
	return uuid.NewString()[:8]
}

func bookingFromRecord(rec map[string]string) models.Booking {
	return models.Booking{
		BookingID:       strings.TrimSpace(rec["booking_id"]),
		UserID:          strings.TrimSpace(rec["user_id"]),
		UserDisplayName: rec["user_display_name"],
		PropertyID:      strings.TrimSpace(rec["property_id"]),
		Datetime:        strings.TrimSpace(rec["datetime"]),
		Status:          strings.ToLower(strings.TrimSpace(rec["status"])),
		CreatedAt:       rec["created_at"],
		Notes:           rec["notes"],
	}
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
