package logging

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryServerInterceptor(t *testing.T) {
	var out bytes.Buffer
	logrus.SetOutput(&out)
	t.Cleanup(func() { logrus.SetOutput(os.Stdout) })

	interceptor := UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/flydreamair.bookings.v1.BookingsService/GetConfirmation"}

	var scoped bool
	resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		_, scoped = FromContext(ctx).Data["request_id"].(string)
		return "resp", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "resp", resp)
	assert.True(t, scoped)
	assert.Contains(t, out.String(), "Handled RPC")

	_, err = interceptor(context.Background(), "req", info, func(context.Context, interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "Booking not found")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Contains(t, out.String(), "RPC handling error")
}
