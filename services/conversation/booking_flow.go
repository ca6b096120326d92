package conversation

import (
	"context"

	"casabot/models"
	"casabot/services/notification"

	"go.uber.org/zap"
)

// createBooking runs the conflict check and creation sequence for a picked
// datetime. The booking record is authoritative: the calendar mirror is
// attempted after the reply and never rolls the booking back.
func (s *DefaultService) createBooking(ctx context.Context, replyToken, userID, propertyID, dtISO string) error {
	l, err := s.Listings.GetByID(ctx, propertyID)
	if err != nil {
		s.Logger.Error("Listing lookup failed", zap.String("property_id", propertyID), zap.Error(err))
		return s.replyText(ctx, replyToken, "Something went wrong. Please try again.")
	}
	if l == nil {
		return s.replyText(ctx, replyToken, "Property not found.")
	}

	taken, err := s.Bookings.Exists(ctx, propertyID, dtISO)
	if err != nil {
		s.Logger.Error("Booking conflict check failed", zap.String("property_id", propertyID), zap.Error(err))
		return s.replyText(ctx, replyToken, "Something went wrong. Please try again.")
	}
	if taken {
		return s.replyText(ctx, replyToken, "Time slot already taken. Please choose another time.")
	}

	// The calendar is a secondary source of truth; a lookup failure counts
	// as no conflict found.
	calendarID := s.Listings.CalendarID(ctx, propertyID)
	if calendarID != "" {
		eventID, err := s.Calendar.FindEvent(ctx, calendarID, propertyID, dtISO)
		if err != nil {
			s.Logger.Warn("Calendar conflict check failed",
				zap.String("calendar_id", calendarID), zap.Error(err))
		} else if eventID != "" {
			return s.replyText(ctx, replyToken, "Time slot already taken (Calendar). Please choose another time.")
		}
	}

	displayName := ""
	if userID != "" {
		if name, err := s.Notifier.DisplayName(ctx, userID); err != nil {
			s.Logger.Warn("Profile lookup failed", zap.String("user_id", userID), zap.Error(err))
		} else {
			displayName = name
		}
	}

	booking, err := s.Bookings.Create(ctx, models.Booking{
		UserID:          userID,
		UserDisplayName: displayName,
		PropertyID:      propertyID,
		Datetime:        dtISO,
	})
	if err != nil {
		s.Logger.Error("Booking create failed", zap.String("property_id", propertyID), zap.Error(err))
		return s.replyText(ctx, replyToken, "Sorry, the booking could not be saved. Please try again.")
	}

	msg, err := flexMessage("Booking confirmed", confirmationBubble(*l, booking))
	if err != nil {
		s.Logger.Error("Failed to build confirmation bubble", zap.Error(err))
		msg = notification.SafeText("Booking confirmed: #" + booking.BookingID)
	}
	replyErr := s.Notifier.Reply(ctx, replyToken, msg)

	if calendarID != "" {
		_, err := s.Calendar.CreateViewingEvent(ctx, calendarID, propertyID, l.Title, dtISO, displayName)
		if err != nil {
			s.Logger.Warn("Failed to create calendar event",
				zap.String("booking_id", booking.BookingID), zap.Error(err))
		}
	}
	return replyErr
}

// cancelBooking flips the booking status and cleans up the calendar mirror.
// A calendar failure is logged only; the cancellation stands.
func (s *DefaultService) cancelBooking(ctx context.Context, replyToken, bookingID string) error {
	if bookingID == "" {
		return s.replyText(ctx, replyToken, "Please specify a booking id to cancel.")
	}

	ok, err := s.Bookings.Cancel(ctx, bookingID)
	if err != nil {
		s.Logger.Error("Booking cancel failed", zap.String("booking_id", bookingID), zap.Error(err))
		return s.replyText(ctx, replyToken, "Something went wrong. Please try again.")
	}

	if ok {
		s.deleteCalendarMirror(ctx, bookingID)
		return s.replyText(ctx, replyToken, "Cancelled.")
	}
	return s.replyText(ctx, replyToken, "Booking not found or already cancelled.")
}

func (s *DefaultService) deleteCalendarMirror(ctx context.Context, bookingID string) {
	b, err := s.Bookings.FindByID(ctx, bookingID)
	if err != nil || b == nil {
		return
	}
	calendarID := s.Listings.CalendarID(ctx, b.PropertyID)
	if calendarID == "" || b.Datetime == "" {
		return
	}
	eventID, err := s.Calendar.FindEvent(ctx, calendarID, b.PropertyID, b.Datetime)
	if err != nil || eventID == "" {
		if err != nil {
			s.Logger.Warn("Failed to locate calendar event",
				zap.String("booking_id", bookingID), zap.Error(err))
		}
		return
	}
	if err := s.Calendar.DeleteEvent(ctx, calendarID, eventID); err != nil {
		s.Logger.Warn("Failed to delete calendar event",
			zap.String("booking_id", bookingID), zap.Error(err))
	}
}
