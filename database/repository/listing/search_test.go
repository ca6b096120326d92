package listing

import (
	"testing"

	"casabot/models"
)

func intp(v int) *int { return &v }

func sampleRows() []models.Listing {
	return []models.Listing{
		{ID: "p1", Title: "Skyline Loft", Price: 25000, Bedrooms: "2", Bathrooms: "1", Neighborhood: "Thonglor", Type: "condo", Status: "active"},
		{ID: "p2", Title: "Thonglor Shophouse", Price: 55000, Bedrooms: "3", Neighborhood: "Thonglor", Type: "shophouse", Status: "active"},
		{ID: "p3", Title: "Riverside Apartment", Price: 18000, Bedrooms: "1", Bathrooms: "1", Neighborhood: "Sathorn", Type: "apartment", Status: "active"},
		{ID: "p4", Title: "Old Warehouse", Price: 90000, Neighborhood: "Thonglor", Type: "retail", Status: "inactive"},
		{ID: "p5", Title: "Garden Plot", Price: 120000, Neighborhood: "Bang Na", Type: "land", Status: "active"},
	}
}

func ids(rows []models.Listing) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		filters models.Filters
		want    []string
	}{
		{
			name:    "no filters returns all active in store order",
			filters: models.Filters{},
			want:    []string{"p1", "p2", "p3", "p5"},
		},
		{
			name:    "inactive rows never returned",
			filters: models.Filters{PropertyType: "retail"},
			want:    nil,
		},
		{
			name:    "price ceiling",
			filters: models.Filters{PriceMax: intp(30000)},
			want:    []string{"p1", "p3"},
		},
		{
			name:    "price floor",
			filters: models.Filters{PriceMin: intp(50000)},
			want:    []string{"p2", "p5"},
		},
		{
			name:    "condo matches apartment synonym",
			filters: models.Filters{PropertyType: "condo"},
			want:    []string{"p1", "p3"},
		},
		{
			name:    "blank bedrooms cell does not disqualify",
			filters: models.Filters{Bedrooms: intp(2), Neighborhood: "bang na"},
			want:    []string{"p5"},
		},
		{
			name:    "bedrooms exact match",
			filters: models.Filters{Bedrooms: intp(2)},
			want:    []string{"p1", "p5"},
		},
		{
			name:    "area matches across neighborhood address title",
			filters: models.Filters{Neighborhood: "riverside"},
			want:    []string{"p3"},
		},
		{
			name:    "over-specified query relaxes to area only",
			filters: models.Filters{Neighborhood: "thonglor", Bedrooms: intp(5), PriceMax: intp(1000)},
			want:    []string{"p1", "p2"},
		},
		{
			name:    "no area means no relaxation",
			filters: models.Filters{Bedrooms: intp(5)},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Match(sampleRows(), tt.filters))
			if len(got) != len(tt.want) {
				t.Fatalf("Match() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Match() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
