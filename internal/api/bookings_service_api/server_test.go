package bookings_service_api

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/Domenick1991/flydreamair/internal/service/confirmation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

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

func startServer(t *testing.T, confirmations confirmation.ConfirmationUseCase) *BookingsServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterBookingsServiceServer(srv, NewServer(confirmations))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewBookingsServiceClient(conn)
}

func TestServer_GetConfirmation(t *testing.T) {
	confirmations := &MockConfirmationUseCase{}
	client := startServer(t, confirmations)

	confirmations.On("GetConfirmation", mock.Anything, "42").Return(&domain.Confirmation{
		BookingID:     "42",
		PNR:           "FLYDAABC123",
		FlightDetails: domain.ConfirmationFlight{FlightNumber: "FA-123", Stops: 1},
		BookingExtras: domain.ConfirmationExtras{Seats: []string{"12A"}},
		PriceSummary:  domain.PriceSummary{BaseFare: 1000, Taxes: 120, Total: 1000},
	}, nil)

	resp, err := client.GetConfirmation(context.Background(), "42")
	require.NoError(t, err)

	fields := resp.AsMap()
	assert.Equal(t, "FLYDAABC123", fields["pnr"])
	assert.Equal(t, "FA-123", fields["flightDetails"].(map[string]interface{})["flightNumber"])
	assert.Equal(t, []interface{}{"12A"}, fields["bookingExtras"].(map[string]interface{})["seats"])
	assert.Equal(t, float64(1000), fields["priceSummary"].(map[string]interface{})["total"])
}

func TestServer_GetConfirmation_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"invalid id", confirmation.ErrInvalidID, codes.InvalidArgument, "Invalid booking ID"},
		{"not found", confirmation.ErrNotFound, codes.NotFound, "Booking not found"},
		{"store failure", errors.New("db down"), codes.Internal, "Failed to fetch booking data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmations := &MockConfirmationUseCase{}
			client := startServer(t, confirmations)
			confirmations.On("GetConfirmation", mock.Anything, "x").Return(nil, tt.err)

			_, err := client.GetConfirmation(context.Background(), "x")
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}
