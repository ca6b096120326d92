package calendar

import (
	"context"
	"fmt"
	"time"

	"casabot/config"
	"casabot/models"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Service wraps the external calendar used to mirror viewing bookings.
// Events are correlated to bookings through a marker embedded in the event
// description: "pid:<property_id> dt:<iso>".
type Service interface {
	FindEvent(ctx context.Context, calendarID, propertyID, dtISO string) (string, error)
	CreateViewingEvent(ctx context.Context, calendarID, propertyID, title, dtISO, displayName string) (string, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

const viewingDuration = 30 * time.Minute

// GoogleCalendar implements Service over the Google Calendar API.
type GoogleCalendar struct {
	svc      *gcal.Service
	timezone string
}

// NewGoogleCalendar builds the calendar client from the configured service
// account credentials.
func NewGoogleCalendar() (*GoogleCalendar, error) {
	ctx := context.Background()
	opts := []option.ClientOption{option.WithScopes(gcal.CalendarScope)}
	if file := config.AppConfig.GoogleCredentialsFile; file != "" {
		opts = append(opts, option.WithCredentialsFile(file))
	}
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return &GoogleCalendar{svc: svc, timezone: config.AppConfig.CalendarTimezone}, nil
}

// Marker is the correlation token embedded in mirrored events.
func Marker(propertyID, dtISO string) string {
	return fmt.Sprintf("pid:%s dt:%s", propertyID, dtISO)
}

func (g *GoogleCalendar) FindEvent(ctx context.Context, calendarID, propertyID, dtISO string) (string, error) {
	events, err := g.svc.Events.List(calendarID).
		Q(Marker(propertyID, dtISO)).
		Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(events.Items) == 0 {
		return "", nil
	}
	return events.Items[0].Id, nil
}

func (g *GoogleCalendar) CreateViewingEvent(ctx context.Context, calendarID, propertyID, title, dtISO, displayName string) (string, error) {
	loc, err := time.LoadLocation(g.timezone)
	if err != nil {
		loc = time.UTC
	}
	start, err := models.ParseISOTime(dtISO, loc)
	if err != nil {
		return "", fmt.Errorf("parse viewing time %q: %w", dtISO, err)
	}
	end := start.Add(viewingDuration)

	event := &gcal.Event{
		Summary:     "Viewing: " + title,
		Description: Marker(propertyID, dtISO) + "\nBooked by: " + displayName,
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: g.timezone},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: g.timezone},
	}
	created, err := g.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

func (g *GoogleCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	return g.svc.Events.Delete(calendarID, eventID).Context(ctx).Do()
}
