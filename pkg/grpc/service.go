package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service is described by hand on top of protobuf well-known types, so
// no generated stubs are needed. Payload fields use the same snake_case
// names as the REST bodies.
const ServiceName = "vitals.v1.VitalsService"

const (
	MethodPostObservation  = "/" + ServiceName + "/PostObservation"
	MethodUpdateThresholds = "/" + ServiceName + "/UpdateThresholds"
	MethodGetAlerts        = "/" + ServiceName + "/GetAlerts"
	MethodAcknowledgeAlert = "/" + ServiceName + "/AcknowledgeAlert"
	MethodPostLimiter      = "/" + ServiceName + "/PostLimiter"
)

type VitalsServiceServer interface {
	PostObservation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateThresholds(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAlerts(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	AcknowledgeAlert(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PostLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func structHandler(
	fullMethod string,
	call func(VitalsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(VitalsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(VitalsServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func getAlertsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitalsServiceServer).GetAlerts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodGetAlerts}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VitalsServiceServer).GetAlerts(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VitalsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PostObservation",
			Handler:    structHandler(MethodPostObservation, VitalsServiceServer.PostObservation),
		},
		{
			MethodName: "UpdateThresholds",
			Handler:    structHandler(MethodUpdateThresholds, VitalsServiceServer.UpdateThresholds),
		},
		{
			MethodName: "GetAlerts",
			Handler:    getAlertsHandler,
		},
		{
			MethodName: "AcknowledgeAlert",
			Handler:    structHandler(MethodAcknowledgeAlert, VitalsServiceServer.AcknowledgeAlert),
		},
		{
			MethodName: "PostLimiter",
			Handler:    structHandler(MethodPostLimiter, VitalsServiceServer.PostLimiter),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vitals/v1/vitals.proto",
}

func RegisterVitalsServiceServer(s grpc.ServiceRegistrar, srv VitalsServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// VitalsServiceClient is the client side of ServiceDesc.
type VitalsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVitalsServiceClient(cc grpc.ClientConnInterface) *VitalsServiceClient {
	return &VitalsServiceClient{cc: cc}
}

func (c *VitalsServiceClient) invoke(ctx context.Context, method string, in any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VitalsServiceClient) PostObservation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodPostObservation, in, opts...)
}

func (c *VitalsServiceClient) UpdateThresholds(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodUpdateThresholds, in, opts...)
}

func (c *VitalsServiceClient) GetAlerts(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetAlerts, in, opts...)
}

func (c *VitalsServiceClient) AcknowledgeAlert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAcknowledgeAlert, in, opts...)
}

func (c *VitalsServiceClient) PostLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodPostLimiter, in, opts...)
}
