package logging

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor is the gRPC counterpart of Middleware.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		entry := logrus.WithFields(logrus.Fields{
			"request_id": uuid.NewString(),
			"method":     info.FullMethod,
		})

		start := time.Now()
		resp, err := handler(WithContext(ctx, entry), req)

		fields := logrus.Fields{
			"code":     status.Code(err).String(),
			"duration": time.Since(start).String(),
		}
		if err != nil {
			entry.WithFields(fields).WithError(err).Error("RPC handling error")
			return resp, err
		}
		entry.WithFields(fields).Info("Handled RPC")
		return resp, nil
	}
}
