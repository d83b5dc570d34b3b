package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a customer appointment for one service slot.
type Booking struct {
	ID           string `bson:"id" json:"id"`
	CustomerName string `bson:"customerName" json:"customerName"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string `bson:"address" json:"address"`
	Service      string `bson:"service" json:"service"`
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`

	// Local wall-clock slot in the business timezone.
	Date string `bson:"date" json:"date"` // YYYY-MM-DD
	Time string `bson:"time" json:"time"` // HH:mm

	Status   string  `bson:"status" json:"status"`
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`

	CalendarEventID   string `bson:"calendarEventId,omitempty" json:"-"`
	CheckoutSessionID string `bson:"checkoutSessionId,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
