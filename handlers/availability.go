package handlers

import (
	"net/http"

	"fixify/models"
	"fixify/scheduling"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the availability endpoints backed by the
// scheduling resolver.
type AvailabilityHandler struct {
	Resolver *scheduling.Resolver
}

func NewAvailabilityHandler(resolver *scheduling.Resolver) *AvailabilityHandler {
	return &AvailabilityHandler{Resolver: resolver}
}

// GetAvailability returns the open "HH:mm" start times for one local date.
// GET /api/availability?date=YYYY-MM-DD
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	serviceable, err := h.Resolver.IsServiceableDate(date)
	if err != nil {
		utils.SchedulingError(c, err)
		return
	}

	slots, err := h.Resolver.GetAvailableSlots(c.Request.Context(), date)
	if err != nil {
		utils.SchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DayAvailability{
		Date:        date,
		Serviceable: serviceable,
		Slots:       slots,
	})
}

// InvalidateAvailability drops the cached availability for a date so the
// next read re-queries the remote calendar. Admin only.
// POST /api/admin/availability/invalidate
func (h *AvailabilityHandler) InvalidateAvailability(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Resolver.Invalidate(input.Date); err != nil {
		utils.SchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "availability cache invalidated", "date": input.Date})
}
