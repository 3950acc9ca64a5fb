package bookings_service_api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/Domenick1991/flydreamair/internal/logging"
	"github.com/Domenick1991/flydreamair/internal/service/confirmation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server exposes booking confirmations over gRPC.
type Server struct {
	confirmations confirmation.ConfirmationUseCase
}

func NewServer(confirmations confirmation.ConfirmationUseCase) *Server {
	return &Server{confirmations: confirmations}
}

func (s *Server) GetConfirmation(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	view, err := s.confirmations.GetConfirmation(ctx, req.GetValue())
	switch {
	case errors.Is(err, confirmation.ErrInvalidID):
		return nil, status.Error(codes.InvalidArgument, "Invalid booking ID")
	case errors.Is(err, confirmation.ErrNotFound):
		return nil, status.Error(codes.NotFound, "Booking not found")
	case err != nil:
		logging.FromContext(ctx).WithError(err).Error("Error fetching booking")
		return nil, status.Error(codes.Internal, "Failed to fetch booking data")
	}

	msg, err := toStruct(view)
	if err != nil {
		return nil, status.Error(codes.Internal, "Failed to fetch booking data")
	}
	return msg, nil
}

// toStruct carries the view over in its JSON shape so gRPC and HTTP clients
// see the same field names.
func toStruct(view *domain.Confirmation) (*structpb.Struct, error) {
	raw, err := json.Marshal(view)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return structpb.NewStruct(fields)
}

var _ BookingsServiceServer = (*Server)(nil)
