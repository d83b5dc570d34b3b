package handlers

import (
	"net/http"

	"fixify/models"
	"fixify/scheduling"
	booking "fixify/services/booking"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking workflow endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking books an open slot and returns the checkout redirect.
// POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetBooking returns one booking.
// GET /api/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking cancels a booking and frees its slot.
// DELETE /api/bookings/:id
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Service.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// RescheduleBooking moves a booking to a new slot.
// PUT /api/bookings/:id/reschedule
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.RescheduleBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings returns bookings in a date range. Admin only.
// GET /api/admin/bookings?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *BookingHandler) ListBookings(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing range", "query parameters 'from' and 'to' are required (YYYY-MM-DD)")
		return
	}

	bookings, err := h.Service.ListBookings(c.Request.Context(), from, to)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case booking.IsSlotTaken(err):
		utils.JSONError(c, http.StatusConflict, "slot unavailable", err.Error())
	case booking.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case booking.IsCancelled(err):
		utils.JSONError(c, http.StatusConflict, "booking already cancelled", err.Error())
	case scheduling.ErrorCode(err) != "":
		utils.SchedulingError(c, err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
	}
}
