package models

import (
	"testing"
	"time"
)

func TestParseISOTime(t *testing.T) {
	bkk := time.FixedZone("ICT", 7*3600)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"picker format", "2026-09-01T10:30", time.Date(2026, 9, 1, 10, 30, 0, 0, bkk)},
		{"with seconds", "2026-09-01T10:30:00", time.Date(2026, 9, 1, 10, 30, 0, 0, bkk)},
		{"rfc3339 keeps its offset", "2026-09-01T10:30:00+07:00", time.Date(2026, 9, 1, 10, 30, 0, 0, bkk)},
		{"space separated", "2026-09-01 10:30:00", time.Date(2026, 9, 1, 10, 30, 0, 0, bkk)},
		{"surrounding whitespace", "  2026-09-01T10:30 ", time.Date(2026, 9, 1, 10, 30, 0, 0, bkk)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISOTime(tt.input, bkk)
			if err != nil {
				t.Fatalf("ParseISOTime(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseISOTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseISOTimeRejectsGarbage(t *testing.T) {
	if _, err := ParseISOTime("next tuesday", time.UTC); err == nil {
		t.Fatal("expected error for non-timestamp input")
	}
}

func TestBookingActive(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"", true},
		{"requested", true},
		{"confirmed", true},
		{" Confirmed ", true},
		{"cancelled", false},
		{"CANCELLED", false},
	}
	for _, tt := range tests {
		if got := (Booking{Status: tt.status}).Active(); got != tt.want {
			t.Errorf("Active with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}
