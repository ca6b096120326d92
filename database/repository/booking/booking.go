package booking

import (
	"context"

	"casabot/models"
)

// Repository defines the read/write view over the bookings sheet.
type Repository interface {
	// All returns every booking row (used by the reminder sweep).
	All(ctx context.Context) ([]models.Booking, error)
	// Exists reports whether a non-cancelled booking occupies the
	// (property, datetime) pair.
	Exists(ctx context.Context, propertyID, dtISO string) (bool, error)
	// Create appends a new booking row with a fresh booking id and
	// status "requested".
	Create(ctx context.Context, b models.Booking) (models.Booking, error)
	// ListForUser returns all bookings made by the user.
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	// Cancel marks the booking cancelled. It reports whether the
	// cancellation took effect; unknown or already-cancelled ids are a no-op.
	Cancel(ctx context.Context, bookingID string) (bool, error)
	// FindByID returns the booking with the given id, or nil.
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
}
