package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/Domenick1991/flydreamair/internal/service/booking"
	"github.com/Domenick1991/flydreamair/internal/service/confirmation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockConfirmationUseCase struct {
	mock.Mock
}

func (m *MockConfirmationUseCase) GetConfirmation(ctx context.Context, rawID string) (*domain.Confirmation, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Confirmation), args.Error(1)
}

func (m *MockConfirmationUseCase) Warm(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func bookingForm() url.Values {
	return url.Values{
		"first_name":       {"John"},
		"last_name":        {"Doe"},
		"date_of_birth":    {"1990-01-01"},
		"passport_number":  {"N1234567"},
		"gender":           {"Male"},
		"email":            {"john@example.com"},
		"phone":            {"+1234567890"},
		"trip_type":        {"oneway"},
		"flight_number":    {"FA-123"},
		"price":            {"1000"},
		"selected_seats":   {"12A"},
		"selected_meal":    {"standard"},
		"selected_baggage": {"standard"},
		"travel_insurance": {"false"},
	}
}

func newFormContext(form url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/create-booking", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c, w
}

// postForm sends body through a router so buffered headers reach the recorder.
func postForm(handler *BookingHandler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.Register(router)

	req := httptest.NewRequest(http.MethodPost, "/create-booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, &MockConfirmationUseCase{}, "/confirm")

	mockService.On("CreateBooking", mock.Anything, mock.MatchedBy(func(in booking.CreateBookingInput) bool {
		return in.FirstName == "John" &&
			in.PassportNumber == "N1234567" &&
			in.BookingTypeID == domain.BookingTypeOneWay &&
			in.Price == "1000" &&
			in.SelectedSeats == "12A" &&
			!in.Malformed
	})).Return(&domain.Booking{ID: 42, PNR: "FLYDAABC123"}, nil)

	w := postForm(handler, bookingForm().Encode())

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/confirm?bookingId=42", w.Header().Get("Location"))
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_TripTypeMapping(t *testing.T) {
	tests := map[string]domain.BookingType{
		"return":     domain.BookingTypeReturn,
		"multi-city": domain.BookingTypeMultiCity,
		"oneway":     domain.BookingTypeOneWay,
		"":           domain.BookingTypeOneWay,
		"space":      domain.BookingTypeOneWay,
	}
	for tripType, want := range tests {
		t.Run(fmt.Sprintf("trip_type=%q", tripType), func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService, &MockConfirmationUseCase{}, "/confirm")

			form := bookingForm()
			form.Set("trip_type", tripType)
			form.Set("booking_type_id", "99")
			c, _ := newFormContext(form)

			mockService.On("CreateBooking", mock.Anything, mock.MatchedBy(func(in booking.CreateBookingInput) bool {
				return in.BookingTypeID == want
			})).Return(&domain.Booking{ID: 1}, nil)

			handler.create(c)
			mockService.AssertExpectations(t)
		})
	}
}

func TestBookingHandler_create_UndecodableBody(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		mockService := &MockBookingUseCase{}
		handler := NewBookingHandler(mockService, &MockConfirmationUseCase{}, "/confirm")
		mockService.On("CreateBooking", mock.Anything, mock.MatchedBy(func(in booking.CreateBookingInput) bool {
			return in.Malformed
		})).Return(nil, booking.ErrAuthenticationRequired)

		w := postForm(handler, "first_name=%zz")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "You need to be logged in to create a booking", decodeError(t, w))
		mockService.AssertExpectations(t)
	})

	t.Run("authenticated", func(t *testing.T) {
		mockService := &MockBookingUseCase{}
		handler := NewBookingHandler(mockService, &MockConfirmationUseCase{}, "/confirm")
		mockService.On("CreateBooking", mock.Anything, mock.MatchedBy(func(in booking.CreateBookingInput) bool {
			return in.Malformed
		})).Return(nil, booking.ErrInvalidInput)

		w := postForm(handler, "first_name=%zz")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid booking details", decodeError(t, w))
		mockService.AssertExpectations(t)
	})
}

func TestBookingHandler_create_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"unauthenticated", booking.ErrAuthenticationRequired, http.StatusBadRequest, "You need to be logged in to create a booking"},
		{"missing fields", booking.ErrValidationFailed, http.StatusBadRequest, "All fields are required"},
		{"malformed", booking.ErrInvalidInput, http.StatusBadRequest, "Invalid booking details"},
		{"unknown flight", booking.ErrFlightUnavailable, http.StatusBadRequest, "Selected flight is not available"},
		{"store failure", errors.New("insert payment: connection reset"), http.StatusInternalServerError, "Failed to create booking"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService, &MockConfirmationUseCase{}, "/confirm")
			c, w := newFormContext(bookingForm())

			mockService.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, tt.err)

			handler.create(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, decodeError(t, w))
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestBookingHandler_get(t *testing.T) {
	confirmations := &MockConfirmationUseCase{}
	handler := NewBookingHandler(&MockBookingUseCase{}, confirmations, "/confirm")

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/booking/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	view := &domain.Confirmation{
		BookingID:     "42",
		PNR:           "FLYDAABC123",
		BookingExtras: domain.ConfirmationExtras{Seats: []string{"12A"}, Meal: "Standard", Baggage: "Standard (23kg)"},
		PriceSummary:  domain.PriceSummary{BaseFare: 1000, Taxes: 120, Total: 1000},
	}
	confirmations.On("GetConfirmation", mock.Anything, "42").Return(view, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "42", got["bookingId"])
	assert.Equal(t, []any{"12A"}, got["bookingExtras"].(map[string]any)["seats"])
	assert.Equal(t, float64(1000), got["priceSummary"].(map[string]any)["total"])
}

func TestBookingHandler_get_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid id", confirmation.ErrInvalidID, http.StatusBadRequest, "Invalid booking ID"},
		{"not found", confirmation.ErrNotFound, http.StatusNotFound, "Booking not found"},
		{"store failure", errors.New("db down"), http.StatusInternalServerError, "Failed to fetch booking data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmations := &MockConfirmationUseCase{}
			handler := NewBookingHandler(&MockBookingUseCase{}, confirmations, "/confirm")

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/booking/x", nil)
			c.Params = gin.Params{{Key: "id", Value: "x"}}
			confirmations.On("GetConfirmation", mock.Anything, "x").Return(nil, tt.err)

			handler.get(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, decodeError(t, w))
		})
	}
}

func TestBookingHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	confirmations := &MockConfirmationUseCase{}
	NewBookingHandler(&MockBookingUseCase{}, confirmations, "/confirm").Register(router)

	confirmations.On("GetConfirmation", mock.Anything, "abc").Return(nil, confirmation.ErrInvalidID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/booking/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
