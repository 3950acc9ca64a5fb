package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/flydreamair/api"
	"github.com/Domenick1991/flydreamair/config"
	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/Domenick1991/flydreamair/internal/identity"
	"github.com/Domenick1991/flydreamair/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookings struct {
	sessionToken string
}

func (s *stubBookings) CreateBooking(ctx context.Context, _ booking.CreateBookingInput) (*domain.Booking, error) {
	s.sessionToken = identity.SessionToken(ctx)
	return &domain.Booking{ID: 7}, nil
}

type stubConfirmations struct{}

func (stubConfirmations) GetConfirmation(context.Context, string) (*domain.Confirmation, error) {
	return &domain.Confirmation{BookingID: "7"}, nil
}

func (stubConfirmations) Warm(context.Context, int64) error { return nil }

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.SessionCookie = "session_token"
	cfg.Booking.ConfirmPath = "/confirm"
	return cfg
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bookings := &stubBookings{}
	router := NewRouter(testConfig(), Services{
		Bookings:      bookings,
		Confirmations: stubConfirmations{},
		HealthChecks:  map[string]api.Pinger{"postgres": okPinger{}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-booking", strings.NewReader("first_name=John"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "tok-1"})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/confirm?bookingId=7", w.Header().Get("Location"))
	assert.Equal(t, "tok-1", bookings.sessionToken)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	for _, path := range []string{"/booking/7", "/health", "/docs/openapi.json"} {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "flydreamair_http_request_duration_seconds")
}
