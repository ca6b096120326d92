package models

// Reminder windows ahead of the viewing appointment.
const (
	ReminderWindow2H  = "2h"
	ReminderWindow24H = "24h"
)

// ReminderPayload is the task body queued by the reminder sweep and delivered
// by the worker as a LINE push.
type ReminderPayload struct {
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	PropertyID string `json:"property_id"`
	Datetime   string `json:"datetime"`
	Window     string `json:"window"`
}
