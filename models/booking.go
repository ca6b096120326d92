package models

import (
	"strings"
	"time"
)

// Booking statuses. A booking is never deleted; cancellation flips the status.
const (
	BookingStatusRequested = "requested"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents one viewing appointment row from the bookings sheet.
type Booking struct {
	BookingID       string `json:"booking_id"`
	UserID          string `json:"user_id"`
	UserDisplayName string `json:"user_display_name"`
	PropertyID      string `json:"property_id"`
	Datetime        string `json:"datetime"` // ISO-8601, as chosen in the datetime picker
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	Notes           string `json:"notes"`
}

// Active reports whether the booking still occupies its slot.
// Rows without a status default to requested.
func (b Booking) Active() bool {
	switch strings.ToLower(strings.TrimSpace(b.Status)) {
	case "", BookingStatusRequested, BookingStatusConfirmed:
		return true
	}
	return false
}

// isoLayouts covers the datetime formats seen in the picker payload and sheet.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// StartTime parses the booking datetime. Naive timestamps are interpreted in
// the given location.
func (b Booking) StartTime(loc *time.Location) (time.Time, error) {
	return ParseISOTime(b.Datetime, loc)
}

// ParseISOTime parses an ISO-8601-ish timestamp, trying known layouts in order.
func ParseISOTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}
	var lastErr error
	for _, layout := range isoLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			} else {
				lastErr = err
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
