package listing

import (
	"strconv"
	"strings"

	"casabot/models"
)

// typeSynonyms normalizes property-type queries so e.g. "condo" also matches
// listings typed "apartment" or the Thai term.
var typeSynonyms = map[string][]string{
	"retail": {"retail", "shop", "shop house", "shophouse", "commercial"},
	"condo":  {"condo", "apartment", "คอนโด"},
	"land":   {"land", "ที่ดิน"},
}

// Match applies the filter set to the rows, preserving store order. When an
// area was requested and the combined filters match nothing, it relaxes to an
// area-only match so an over-specified query still returns something relevant.
func Match(rows []models.Listing, f models.Filters) []models.Listing {
	active := make([]models.Listing, 0, len(rows))
	for _, l := range rows {
		if l.Active() {
			active = append(active, l)
		}
	}

	area := strings.ToLower(strings.TrimSpace(f.Neighborhood))
	targets := expandType(strings.ToLower(strings.TrimSpace(f.PropertyType)))

	var results []models.Listing
	for _, l := range active {
		if matchOne(l, f, area, targets) {
			results = append(results, l)
		}
	}
	if len(results) == 0 && area != "" {
		for _, l := range active {
			if areaMatch(l, area) {
				results = append(results, l)
			}
		}
	}
	return results
}

func matchOne(l models.Listing, f models.Filters, area string, typeTargets []string) bool {
	if f.PriceMin != nil && l.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && l.Price > *f.PriceMax {
		return false
	}
	// Blank sheet cells never disqualify a listing.
	if f.Bedrooms != nil && l.Bedrooms != "" && l.Bedrooms != strconv.Itoa(*f.Bedrooms) {
		return false
	}
	if f.Bathrooms != nil && l.Bathrooms != "" && l.Bathrooms != strconv.Itoa(*f.Bathrooms) {
		return false
	}
	if area != "" && !areaMatch(l, area) {
		return false
	}
	if len(typeTargets) > 0 {
		hay := strings.ToLower(l.Type)
		found := false
		for _, t := range typeTargets {
			if strings.Contains(hay, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func areaMatch(l models.Listing, area string) bool {
	hay := strings.ToLower(l.Neighborhood + " " + l.Address + " " + l.Title)
	return strings.Contains(hay, area)
}

func expandType(ptype string) []string {
	if ptype == "" {
		return nil
	}
	for canonical, synonyms := range typeSynonyms {
		if ptype == canonical {
			return append([]string{canonical}, synonyms...)
		}
		for _, s := range synonyms {
			if ptype == s {
				return append([]string{canonical}, synonyms...)
			}
		}
	}
	return []string{ptype}
}
