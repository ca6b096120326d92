package listing

import (
	"context"

	"casabot/models"
)

// Repository defines the read-only view over the listings sheet.
type Repository interface {
	// GetByID returns the listing with the given id, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	// Search returns active listings matching the filters, in store order.
	Search(ctx context.Context, f models.Filters) ([]models.Listing, error)
	// CalendarID returns the calendar associated with a property, falling
	// back to the configured default. Empty means no calendar mirror.
	CalendarID(ctx context.Context, id string) string
}
