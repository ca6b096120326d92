package models

// Intent names the resolver may produce.
const (
	IntentBrowse     = "browse"
	IntentSearch     = "search"
	IntentDetail     = "detail"
	IntentBook       = "book"
	IntentMyBookings = "my_bookings"
	IntentCancel     = "cancel"
	IntentFallback   = "fallback"
)

// Intent is the classified purpose of a user message plus its extracted filters.
type Intent struct {
	Name    string  `json:"name"`
	Filters Filters `json:"filters"`
}

// Filters is the structured parameter set extracted from a message. Numeric
// fields are pointers so "absent" and "zero" stay distinguishable.
type Filters struct {
	PriceMin     *int   `json:"price_min,omitempty"`
	PriceMax     *int   `json:"price_max,omitempty"`
	Bedrooms     *int   `json:"bedrooms,omitempty"`
	Bathrooms    *int   `json:"bathrooms,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	PropertyType string `json:"property_type,omitempty"`
	PropertyID   string `json:"property_id,omitempty"`
	BookingID    string `json:"booking_id,omitempty"`
	Cursor       int    `json:"cursor,omitempty"`
}

// Empty reports whether no search-narrowing filter was extracted.
func (f Filters) Empty() bool {
	return f.PriceMin == nil && f.PriceMax == nil &&
		f.Bedrooms == nil && f.Bathrooms == nil &&
		f.Neighborhood == "" && f.PropertyType == "" &&
		f.PropertyID == "" && f.BookingID == ""
}

// ValidIntentName reports whether name is one of the supported intents.
func ValidIntentName(name string) bool {
	switch name {
	case IntentBrowse, IntentSearch, IntentDetail, IntentBook,
		IntentMyBookings, IntentCancel, IntentFallback:
		return true
	}
	return false
}

// SessionContext carries the last search parameters across turns so a message
// like "under 30k" keeps the previously mentioned area and type.
type SessionContext struct {
	Neighborhood string `json:"neighborhood,omitempty"`
	PropertyType string `json:"property_type,omitempty"`
	PriceMax     *int   `json:"price_max,omitempty"`
}

// Empty reports whether there is no carried-over context.
func (s SessionContext) Empty() bool {
	return s.Neighborhood == "" && s.PropertyType == "" && s.PriceMax == nil
}
