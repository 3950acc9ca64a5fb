package bookings_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName           = "flydreamair.bookings.v1.BookingsService"
	GetConfirmationMethod = "/" + ServiceName + "/GetConfirmation"
)

// BookingsServiceServer uses well-known message types only, so no generated
// code is needed on either side.
type BookingsServiceServer interface {
	GetConfirmation(ctx context.Context, bookingID *wrapperspb.StringValue) (*structpb.Struct, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetConfirmation",
			Handler:    getConfirmationHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "flydreamair/bookings/v1/bookings.proto",
}

func RegisterBookingsServiceServer(s grpc.ServiceRegistrar, srv BookingsServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func getConfirmationHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookingsServiceServer).GetConfirmation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetConfirmationMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookingsServiceServer).GetConfirmation(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

type BookingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBookingsServiceClient(cc grpc.ClientConnInterface) *BookingsServiceClient {
	return &BookingsServiceClient{cc: cc}
}

func (c *BookingsServiceClient) GetConfirmation(ctx context.Context, bookingID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetConfirmationMethod, wrapperspb.String(bookingID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
