package conversation

import "casabot/models"

// pageSize is the number of listing cards per carousel page; LINE carousels
// top out at ten bubbles and the last slot is reserved for the pager.
const pageSize = 9

// Page slices one page out of the filtered sequence. next is the continuation
// cursor, valid only when more is true. Cursors out of range yield an empty
// page.
func Page(rows []models.Listing, cursor int) (page []models.Listing, next int, more bool) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(rows) {
		return nil, 0, false
	}
	end := cursor + pageSize
	if end >= len(rows) {
		return rows[cursor:], 0, false
	}
	return rows[cursor:end], end, true
}
