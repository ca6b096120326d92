package conversation

import (
	"strconv"
	"testing"

	"casabot/models"
)

func makeListings(n int) []models.Listing {
	rows := make([]models.Listing, n)
	for i := range rows {
		rows[i] = models.Listing{ID: "p" + strconv.Itoa(i)}
	}
	return rows
}

func TestPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		cursor   int
		wantLen  int
		wantNext int
		wantMore bool
	}{
		{"first page of twenty", 20, 0, 9, 9, true},
		{"second page of twenty", 20, 9, 9, 18, true},
		{"tail page of twenty", 20, 18, 2, 0, false},
		{"exact single page", 9, 0, 9, 0, false},
		{"cursor past the end", 5, 10, 0, 0, false},
		{"negative cursor clamps to zero", 20, -3, 9, 9, true},
		{"empty sequence", 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, next, more := Page(makeListings(tt.total), tt.cursor)
			if len(page) != tt.wantLen {
				t.Errorf("len(page) = %d, want %d", len(page), tt.wantLen)
			}
			if more != tt.wantMore {
				t.Errorf("more = %v, want %v", more, tt.wantMore)
			}
			if more && next != tt.wantNext {
				t.Errorf("next = %d, want %d", next, tt.wantNext)
			}
		})
	}
}

func TestPagePreservesOrder(t *testing.T) {
	rows := makeListings(12)
	page, _, _ := Page(rows, 9)
	if len(page) != 3 || page[0].ID != "p9" || page[2].ID != "p11" {
		t.Fatalf("unexpected tail page: %+v", page)
	}
}
