package booking

import (
	"testing"

	"casabot/models"
)

func TestHasConflict(t *testing.T) {
	rows := []models.Booking{
		{BookingID: "a1", PropertyID: "p1", Datetime: "2026-09-01T10:00", Status: models.BookingStatusRequested},
		{BookingID: "a2", PropertyID: "p1", Datetime: "2026-09-01T12:00", Status: models.BookingStatusCancelled},
		{BookingID: "a3", PropertyID: "p2", Datetime: "2026-09-01T10:00", Status: models.BookingStatusConfirmed},
		{BookingID: "a4", PropertyID: "p3", Datetime: "2026-09-02T09:00", Status: ""},
	}

	tests := []struct {
		name       string
		propertyID string
		dt         string
		want       bool
	}{
		{"requested slot conflicts", "p1", "2026-09-01T10:00", true},
		{"confirmed slot conflicts", "p2", "2026-09-01T10:00", true},
		{"blank status defaults to requested", "p3", "2026-09-02T09:00", true},
		{"cancelled row frees the slot", "p1", "2026-09-01T12:00", false},
		{"same property different time", "p1", "2026-09-03T10:00", false},
		{"same time different property", "p9", "2026-09-01T10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(rows, tt.propertyID, tt.dt); got != tt.want {
				t.Errorf("HasConflict(%q, %q) = %v, want %v", tt.propertyID, tt.dt, got, tt.want)
			}
		})
	}
}
