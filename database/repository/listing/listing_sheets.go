package listing

import (
	"context"
	"strconv"
	"strings"
	"time"

	"casabot/config"
	"casabot/database"
	"casabot/models"
	"casabot/utils"
)

const listingsTab = "properties"

// SheetsListingRepo reads listings from the properties worksheet through a
// short-lived row cache.
type SheetsListingRepo struct {
	cache *utils.RowCache[[]models.Listing]
}

// NewSheetsListingRepo returns a listing repository with the configured TTL.
func NewSheetsListingRepo() *SheetsListingRepo {
	ttl := time.Duration(config.AppConfig.ListingCacheTTL) * time.Second
	return &SheetsListingRepo{cache: utils.NewRowCache[[]models.Listing](ttl)}
}

func (r *SheetsListingRepo) readAll(ctx context.Context) ([]models.Listing, error) {
	if rows, ok := r.cache.Get(); ok {
		return rows, nil
	}
	records, err := database.ReadRecords(ctx, listingsTab)
	if err != nil {
		return nil, err
	}
	listings := make([]models.Listing, 0, len(records))
	for _, rec := range records {
		listings = append(listings, listingFromRecord(rec))
	}
	r.cache.Set(listings)
	return listings, nil
}

func (r *SheetsListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	if id == "" {
		return nil, nil
	}
	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i], nil
		}
	}
	return nil, nil
}

func (r *SheetsListingRepo) Search(ctx context.Context, f models.Filters) ([]models.Listing, error) {
	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	return Match(rows, f), nil
}

func (r *SheetsListingRepo) CalendarID(ctx context.Context, id string) string {
	l, err := r.GetByID(ctx, id)
	if err == nil && l != nil && l.CalendarID != "" {
		return l.CalendarID
	}
	return config.AppConfig.DefaultCalendarID
}

func listingFromRecord(rec map[string]string) models.Listing {
	return models.Listing{
		ID:           strings.TrimSpace(rec["id"]),
		Title:        rec["title"],
		Price:        parsePrice(rec["price"]),
		Bedrooms:     strings.TrimSpace(rec["bedrooms"]),
		Bathrooms:    strings.TrimSpace(rec["bathrooms"]),
		Neighborhood: rec["neighborhood"],
		Address:      rec["address"],
		Type:         rec["type"],
		ThumbnailURL: thumbnail(rec),
		Status:       strings.ToLower(strings.TrimSpace(rec["status"])),
		AgentID:      strings.TrimSpace(rec["agent_id"]),
		CalendarID:   strings.TrimSpace(rec["calendar_id"]),
	}
}

// parsePrice tolerates thousands separators; unparseable cells count as 0.
func parsePrice(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// thumbnail prefers the dedicated column, else the first of image_urls.
func thumbnail(rec map[string]string) string {
	if u := strings.TrimSpace(rec["thumbnail_url"]); u != "" {
		return u
	}
	if urls := rec["image_urls"]; urls != "" {
		return strings.TrimSpace(strings.SplitN(urls, ",", 2)[0])
	}
	return ""
}
