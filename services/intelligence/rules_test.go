package intelligence

import (
	"testing"

	"casabot/models"
)

func TestRuleResolveCommands(t *testing.T) {
	tests := []struct {
		text string
		want models.Intent
	}{
		{"browse", models.Intent{Name: models.IntentBrowse}},
		{"Browse listings please", models.Intent{Name: models.IntentBrowse}},
		{"my bookings", models.Intent{Name: models.IntentMyBookings}},
		{"detail p42", models.Intent{Name: models.IntentDetail, Filters: models.Filters{PropertyID: "p42"}}},
		{"book p42", models.Intent{Name: models.IntentBook, Filters: models.Filters{PropertyID: "p42"}}},
		{"cancel ab12cd34", models.Intent{Name: models.IntentCancel, Filters: models.Filters{BookingID: "ab12cd34"}}},
		{"hello there", models.Intent{Name: models.IntentFallback}},
		{"", models.Intent{Name: models.IntentFallback}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := RuleResolve(tt.text)
			if got.Name != tt.want.Name {
				t.Fatalf("RuleResolve(%q).Name = %q, want %q", tt.text, got.Name, tt.want.Name)
			}
			if got.Filters.PropertyID != tt.want.Filters.PropertyID {
				t.Errorf("PropertyID = %q, want %q", got.Filters.PropertyID, tt.want.Filters.PropertyID)
			}
			if got.Filters.BookingID != tt.want.Filters.BookingID {
				t.Errorf("BookingID = %q, want %q", got.Filters.BookingID, tt.want.Filters.BookingID)
			}
		})
	}
}

func TestRuleResolveSearchFilters(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		check func(t *testing.T, f models.Filters)
	}{
		{
			name: "abbreviated price ceiling",
			text: "condos under 30k",
			check: func(t *testing.T, f models.Filters) {
				if f.PriceMax == nil || *f.PriceMax != 30000 {
					t.Fatalf("PriceMax = %v, want 30000", f.PriceMax)
				}
				if f.PropertyType != "condo" {
					t.Errorf("PropertyType = %q, want condo", f.PropertyType)
				}
			},
		},
		{
			name: "comma-separated price ceiling",
			text: "anything under 30,000",
			check: func(t *testing.T, f models.Filters) {
				if f.PriceMax == nil || *f.PriceMax != 30000 {
					t.Fatalf("PriceMax = %v, want 30000", f.PriceMax)
				}
			},
		},
		{
			name: "price floor",
			text: "retail space over 50,000",
			check: func(t *testing.T, f models.Filters) {
				if f.PriceMin == nil || *f.PriceMin != 50000 {
					t.Fatalf("PriceMin = %v, want 50000", f.PriceMin)
				}
				if f.PropertyType != "retail" {
					t.Errorf("PropertyType = %q, want retail", f.PropertyType)
				}
			},
		},
		{
			name: "bedrooms and trailing area",
			text: "2br in thonglor",
			check: func(t *testing.T, f models.Filters) {
				if f.Bedrooms == nil || *f.Bedrooms != 2 {
					t.Fatalf("Bedrooms = %v, want 2", f.Bedrooms)
				}
				if f.Neighborhood != "thonglor" {
					t.Errorf("Neighborhood = %q, want thonglor", f.Neighborhood)
				}
			},
		},
		{
			name: "later type keyword wins",
			text: "condo or land under 2,000,000",
			check: func(t *testing.T, f models.Filters) {
				if f.PropertyType != "land" {
					t.Errorf("PropertyType = %q, want land", f.PropertyType)
				}
			},
		},
		{
			name: "land keyword",
			text: "looking for land in bang na",
			check: func(t *testing.T, f models.Filters) {
				if f.PropertyType != "land" {
					t.Errorf("PropertyType = %q, want land", f.PropertyType)
				}
				if f.Neighborhood != "bang na" {
					t.Errorf("Neighborhood = %q, want bang na", f.Neighborhood)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RuleResolve(tt.text)
			if got.Name != models.IntentSearch {
				t.Fatalf("RuleResolve(%q).Name = %q, want search", tt.text, got.Name)
			}
			tt.check(t, got.Filters)
		})
	}
}

func TestParseIntentJSON(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
		want   string
	}{
		{"plain json", `{"name":"search","filters":{"price_max":30000}}`, true, models.IntentSearch},
		{"fenced json", "```json\n{\"name\":\"browse\",\"filters\":{}}\n```", true, models.IntentBrowse},
		{"unknown intent name", `{"name":"purchase","filters":{}}`, false, ""},
		{"prose instead of json", "Sure! The user wants to browse.", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIntentJSON(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseIntentJSON(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got.Name != tt.want {
				t.Errorf("Name = %q, want %q", got.Name, tt.want)
			}
		})
	}
}
