package booking

import (
	"context"
	"fmt"
	"slices"

	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateBooking places an appointment on a currently open slot. The slot is
// checked against live availability, fenced with a redis hold for the
// checkout window, persisted, written to the remote calendar, and handed to
// Stripe for payment. The availability cache for the date is invalidated so
// the next read reflects the new booking.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	logger := utils.GetLogger()

	open, err := svc.Resolver.GetAvailableSlots(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(open, req.Time) {
		return nil, NewSlotTakenError(req.Date, req.Time)
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Service:      req.Service,
		Notes:        req.Notes,
		Date:         req.Date,
		Time:         req.Time,
		Status:       models.BookingStatusPending,
		Amount:       req.Amount,
		Currency:     req.Currency,
	}

	held, err := svc.Holds.Acquire(ctx, req.Date, req.Time, booking.ID)
	if err != nil {
		return nil, err
	}
	if !held {
		return nil, NewSlotTakenError(req.Date, req.Time)
	}

	slot, err := svc.Resolver.SlotBounds(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	if err := svc.Repo.Create(ctx, booking); err != nil {
		if relErr := svc.Holds.Release(ctx, req.Date, req.Time, booking.ID); relErr != nil {
			logger.Error("failed to release hold after create failure",
				zap.String("bookingID", booking.ID), zap.Error(relErr))
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, NewSlotTakenError(req.Date, req.Time)
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	summary := fmt.Sprintf("%s - %s", booking.Service, booking.CustomerName)
	description := fmt.Sprintf("Booking %s\n%s\n%s", booking.ID, booking.Address, booking.Notes)
	eventID, err := svc.Calendar.InsertEvent(ctx, summary, description, slot)
	if err != nil {
		logger.Error("calendar event insert failed, booking kept pending",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return nil, err
	}
	booking.CalendarEventID = eventID
	if err := svc.Repo.SetCalendarEvent(ctx, booking.ID, eventID); err != nil {
		return nil, fmt.Errorf("failed to attach calendar event: %w", err)
	}

	sessionID, checkoutURL, err := svc.Payments.CreateCheckoutSession(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.CheckoutSessionID = sessionID
	if err := svc.Repo.SetCheckoutSession(ctx, booking.ID, sessionID); err != nil {
		return nil, fmt.Errorf("failed to attach checkout session: %w", err)
	}

	if err := svc.Resolver.Invalidate(req.Date); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))

	return &models.BookingResponse{Booking: booking, CheckoutURL: checkoutURL}, nil
}

// CancelBooking marks a booking cancelled, removes its calendar event, and
// invalidates availability for the date.
func (svc *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	logger := utils.GetLogger()

	booking, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return NewNotFoundError(bookingID)
		}
		return err
	}
	if booking.Status == models.BookingStatusCancelled {
		return NewCancelledError(bookingID)
	}

	if err := svc.Repo.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	if booking.CalendarEventID != "" {
		if err := svc.Calendar.DeleteEvent(ctx, booking.CalendarEventID); err != nil {
			logger.Error("failed to delete calendar event for cancelled booking",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}

	if err := svc.Holds.Release(ctx, booking.Date, booking.Time, bookingID); err != nil {
		logger.Warn("failed to release hold on cancel",
			zap.String("bookingID", bookingID), zap.Error(err))
	}

	if err := svc.Resolver.Invalidate(booking.Date); err != nil {
		return err
	}

	logger.Info("booking cancelled", zap.String("bookingID", bookingID))
	return nil
}

// RescheduleBooking moves a booking to a new open slot, patches the calendar
// event, and invalidates both the old and the new date.
func (svc *DefaultBookingService) RescheduleBooking(ctx context.Context, bookingID string, req models.RescheduleRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewNotFoundError(bookingID)
		}
		return nil, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, NewCancelledError(bookingID)
	}

	open, err := svc.Resolver.GetAvailableSlots(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(open, req.Time) {
		return nil, NewSlotTakenError(req.Date, req.Time)
	}

	held, err := svc.Holds.Acquire(ctx, req.Date, req.Time, bookingID)
	if err != nil {
		return nil, err
	}
	if !held {
		return nil, NewSlotTakenError(req.Date, req.Time)
	}

	slot, err := svc.Resolver.SlotBounds(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	if booking.CalendarEventID != "" {
		if err := svc.Calendar.PatchEvent(ctx, booking.CalendarEventID, slot); err != nil {
			return nil, err
		}
	}

	oldDate, oldTime := booking.Date, booking.Time
	if err := svc.Repo.Reschedule(ctx, bookingID, req.Date, req.Time); err != nil {
		return nil, fmt.Errorf("failed to reschedule booking: %w", err)
	}
	booking.Date = req.Date
	booking.Time = req.Time

	if err := svc.Holds.Release(ctx, oldDate, oldTime, bookingID); err != nil {
		logger.Warn("failed to release old hold on reschedule",
			zap.String("bookingID", bookingID), zap.Error(err))
	}

	if err := svc.Resolver.Invalidate(oldDate); err != nil {
		return nil, err
	}
	if err := svc.Resolver.Invalidate(req.Date); err != nil {
		return nil, err
	}

	logger.Info("booking rescheduled",
		zap.String("bookingID", bookingID),
		zap.String("from", oldDate+" "+oldTime),
		zap.String("to", req.Date+" "+req.Time))

	return booking, nil
}

// GetBooking fetches one booking by ID.
func (svc *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewNotFoundError(bookingID)
		}
		return nil, err
	}
	return booking, nil
}

// ListBookings returns all bookings in the inclusive date range.
func (svc *DefaultBookingService) ListBookings(ctx context.Context, fromDate, toDate string) ([]models.Booking, error) {
	return svc.Repo.ListRange(ctx, fromDate, toDate)
}
