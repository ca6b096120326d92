package models

// Listing represents a single property row from the listings sheet.
// Bedrooms/bathrooms stay as raw cell text: a blank cell means the value is
// unknown and must not disqualify the listing during filtering.
type Listing struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Price        int    `json:"price"`
	Bedrooms     string `json:"bedrooms"`
	Bathrooms    string `json:"bathrooms"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`
	Type         string `json:"type"`
	ThumbnailURL string `json:"thumbnail_url"`
	Status       string `json:"status"`
	AgentID      string `json:"agent_id,omitempty"`
	CalendarID   string `json:"calendar_id,omitempty"`
}

// Active reports whether the listing should appear in search results.
// Rows without a status column default to active.
func (l Listing) Active() bool {
	return l.Status == "" || l.Status == "active"
}

// Agent is a contact row from the agents sheet.
type Agent struct {
	AgentID string `json:"agent_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	LineID  string `json:"line_id,omitempty"`
}
