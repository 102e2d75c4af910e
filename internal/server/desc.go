package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "mrw.calc.v1.Calculator"

// CalculatorServer is implemented by the gRPC handler. Requests and
// responses are google.protobuf.Struct documents.
type CalculatorServer interface {
	ListTools(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Calculate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListHistory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearHistory(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// CalculatorServiceDesc describes the Calculator service for grpc.Server
var CalculatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListTools", CalculatorServer.ListTools),
		unary("Calculate", CalculatorServer.Calculate),
		unary("ListHistory", CalculatorServer.ListHistory),
		unary("ClearHistory", CalculatorServer.ClearHistory),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mrw/calc/v1/calculator.proto",
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary builds the method descriptor the protoc plugin would generate
func unary[Req, Resp any](name string, call func(CalculatorServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CalculatorServer), ctx, req.(*Req))
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			return interceptor(ctx, in, info, handler)
		},
	}
}
