package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/Domenick1991/flydreamair/internal/logging"
	"github.com/Domenick1991/flydreamair/internal/service/booking"
	"github.com/Domenick1991/flydreamair/internal/service/confirmation"
	"github.com/gin-gonic/gin"
)

const (
	msgLoginRequired     = "You need to be logged in to create a booking"
	msgFieldsRequired    = "All fields are required"
	msgInvalidDetails    = "Invalid booking details"
	msgFlightUnavailable = "Selected flight is not available"
	msgCreateFailed      = "Failed to create booking"
	msgInvalidBookingID  = "Invalid booking ID"
	msgBookingNotFound   = "Booking not found"
	msgFetchFailed       = "Failed to fetch booking data"
)

type BookingHandler struct {
	bookings      booking.BookingUseCase
	confirmations confirmation.ConfirmationUseCase
	confirmPath   string
}

func NewBookingHandler(bookings booking.BookingUseCase, confirmations confirmation.ConfirmationUseCase, confirmPath string) *BookingHandler {
	return &BookingHandler{
		bookings:      bookings,
		confirmations: confirmations,
		confirmPath:   confirmPath,
	}
}

func (h *BookingHandler) Register(router gin.IRoutes) {
	router.POST("/create-booking", h.create)
	router.GET("/booking/:id", h.get)
}

func (h *BookingHandler) create(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBind(&input); err != nil {
		// The requester is still resolved before the body is rejected.
		logging.FromContext(c.Request.Context()).WithError(err).Debug("Failed to decode booking form")
		input.Malformed = true
	}
	input.BookingTypeID = domain.BookingTypeForTrip(input.TripType)

	created, err := h.bookings.CreateBooking(c.Request.Context(), input)
	if err != nil {
		status, msg := createErrorResponse(err)
		if status == http.StatusInternalServerError {
			_ = c.Error(err)
			logging.FromContext(c.Request.Context()).WithError(err).Error("Error creating booking")
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s?bookingId=%d", h.confirmPath, created.ID))
}

func createErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrAuthenticationRequired):
		return http.StatusBadRequest, msgLoginRequired
	case errors.Is(err, booking.ErrValidationFailed):
		return http.StatusBadRequest, msgFieldsRequired
	case errors.Is(err, booking.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidDetails
	case errors.Is(err, booking.ErrFlightUnavailable):
		return http.StatusBadRequest, msgFlightUnavailable
	default:
		return http.StatusInternalServerError, msgCreateFailed
	}
}

func (h *BookingHandler) get(c *gin.Context) {
	view, err := h.confirmations.GetConfirmation(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, confirmation.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBookingID})
	case errors.Is(err, confirmation.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgBookingNotFound})
	case err != nil:
		_ = c.Error(err)
		logging.FromContext(c.Request.Context()).WithError(err).Error("Error fetching booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgFetchFailed})
	default:
		c.JSON(http.StatusOK, view)
	}
}
