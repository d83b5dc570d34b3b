// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"fixify/database"
	"fixify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	ListRange(ctx context.Context, fromDate, toDate string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetCheckoutSession(ctx context.Context, id, sessionID string) error
	SetCalendarEvent(ctx context.Context, id, eventID string) error
	Reschedule(ctx context.Context, id, date, clock string) error
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("fixify")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
