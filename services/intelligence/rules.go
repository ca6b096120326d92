package intelligence

import (
	"regexp"
	"strconv"
	"strings"

	"casabot/models"
)

// Deterministic fallback patterns. The remote NLU is unreliable (network,
// latency, cost); this path guarantees the bot never produces an empty intent.
var (
	reDetail    = regexp.MustCompile(`^detail\s+(\S+)`)
	reBook      = regexp.MustCompile(`^book\s+(\S+)`)
	reCancel    = regexp.MustCompile(`^cancel\s+(\S+)`)
	reBedrooms  = regexp.MustCompile(`(\d+)\s*(br|bed|beds|bd|bedroom|bedrooms)\b`)
	rePriceMaxK = regexp.MustCompile(`under\s+(\d+)\s*k\b`)
	rePriceMax  = regexp.MustCompile(`under\s+(\d+[\d,\s]*)`)
	rePriceMin  = regexp.MustCompile(`over\s+(\d+[\d,]*)`)
	reArea      = regexp.MustCompile(`in\s+([a-z\-\s]+)$`)
)

// RuleResolve is the regex fallback intent parser.
func RuleResolve(text string) models.Intent {
	q := strings.ToLower(strings.TrimSpace(text))
	q = strings.Join(strings.Fields(q), " ")

	if strings.HasPrefix(q, "browse") {
		return models.Intent{Name: models.IntentBrowse}
	}
	if strings.HasPrefix(q, "my bookings") {
		return models.Intent{Name: models.IntentMyBookings}
	}
	if m := reDetail.FindStringSubmatch(q); m != nil {
		return models.Intent{Name: models.IntentDetail, Filters: models.Filters{PropertyID: m[1]}}
	}
	if m := reBook.FindStringSubmatch(q); m != nil {
		return models.Intent{Name: models.IntentBook, Filters: models.Filters{PropertyID: m[1]}}
	}
	if m := reCancel.FindStringSubmatch(q); m != nil {
		return models.Intent{Name: models.IntentCancel, Filters: models.Filters{BookingID: m[1]}}
	}

	var f models.Filters
	if m := reBedrooms.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.Bedrooms = &n
		}
	}
	if m := rePriceMax.FindStringSubmatch(q); m != nil {
		cleaned := strings.NewReplacer(",", "", " ", "").Replace(m[1])
		if n, err := strconv.Atoi(cleaned); err == nil {
			f.PriceMax = &n
		}
	}
	// The abbreviated "under 30k" form wins over the raw digit capture.
	if m := rePriceMaxK.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			n *= 1000
			f.PriceMax = &n
		}
	}
	if m := rePriceMin.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			f.PriceMin = &n
		}
	}
	if m := reArea.FindStringSubmatch(q); m != nil {
		f.Neighborhood = strings.TrimSpace(m[1])
	}
	// Later keywords overwrite earlier ones when several appear.
	if strings.Contains(q, "condo") {
		f.PropertyType = "condo"
	}
	if strings.Contains(q, "retail") {
		f.PropertyType = "retail"
	}
	if strings.Contains(q, "land") {
		f.PropertyType = "land"
	}

	if !f.Empty() {
		return models.Intent{Name: models.IntentSearch, Filters: f}
	}
	return models.Intent{Name: models.IntentFallback}
}
