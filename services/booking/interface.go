package booking

import (
	"context"

	bookingRepo "fixify/database/repository/booking"
	"fixify/models"
	"fixify/scheduling"
)

// CalendarWriter is the subset of the remote calendar used when a booking
// mutates the schedule.
type CalendarWriter interface {
	InsertEvent(ctx context.Context, summary, description string, slot scheduling.Interval) (string, error)
	PatchEvent(ctx context.Context, eventID string, slot scheduling.Interval) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// HoldStore fences a slot during checkout.
type HoldStore interface {
	Acquire(ctx context.Context, date, clock, bookingID string) (bool, error)
	Release(ctx context.Context, date, clock, bookingID string) error
}

// BookingService defines the booking workflow around the availability core.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
	RescheduleBooking(ctx context.Context, bookingID string, req models.RescheduleRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, fromDate, toDate string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Resolver *scheduling.Resolver
	Calendar CalendarWriter
	Holds    HoldStore
	Payments PaymentHandler
}
