package booking

import "fmt"

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSlotTakenError(date, clock string) error {
	return &BookingError{
		Code:    "slotTaken",
		Message: fmt.Sprintf("slot %s %s is no longer available", date, clock),
	}
}

func NewNotFoundError(bookingID string) error {
	return &BookingError{
		Code:    "bookingNotFound",
		Message: fmt.Sprintf("booking %s not found", bookingID),
	}
}

func NewCancelledError(bookingID string) error {
	return &BookingError{
		Code:    "bookingCancelled",
		Message: fmt.Sprintf("booking %s is already cancelled", bookingID),
	}
}

// IsSlotTaken reports whether err means the requested slot was already held
// or booked by someone else.
func IsSlotTaken(err error) bool {
	be, ok := err.(*BookingError)
	return ok && be.Code == "slotTaken"
}

// IsNotFound reports whether err means the booking does not exist.
func IsNotFound(err error) bool {
	be, ok := err.(*BookingError)
	return ok && be.Code == "bookingNotFound"
}

// IsCancelled reports whether err means the booking was already cancelled.
func IsCancelled(err error) bool {
	be, ok := err.(*BookingError)
	return ok && be.Code == "bookingCancelled"
}
