package models

// DayAvailability is the availability response for one local calendar date.
type DayAvailability struct {
	Date        string   `json:"date"`
	Serviceable bool     `json:"serviceable"`
	Slots       []string `json:"slots"`
}

// BookingRequest is the payload to create a new booking.
type BookingRequest struct {
	CustomerName string  `json:"customerName" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address" binding:"required"`
	Service      string  `json:"service" binding:"required"`
	Notes        string  `json:"notes"`
	Date         string  `json:"date" binding:"required"`
	Time         string  `json:"time" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Currency     string  `json:"currency"`
}

// RescheduleRequest moves an existing booking to a new slot.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// BookingResponse pairs a created booking with its checkout redirect.
type BookingResponse struct {
	Booking     *Booking `json:"booking"`
	CheckoutURL string   `json:"checkoutUrl,omitempty"`
}
