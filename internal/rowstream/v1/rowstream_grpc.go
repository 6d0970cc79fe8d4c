package v1

import (
	"context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	RowStream_ReadRows_FullMethodName = "/litetable.rowstream.v1.RowStream/ReadRows"
)

// RowStreamClient is the client API for RowStream service.
type RowStreamClient interface {
	// ReadRows streams the selected rows as cell chunks, in row key order.
	ReadRows(ctx context.Context, in *ReadRowsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ReadRowsResponse], error)
}

type rowStreamClient struct {
	cc grpc.ClientConnInterface
}

func NewRowStreamClient(cc grpc.ClientConnInterface) RowStreamClient {
	return &rowStreamClient{cc}
}

func (c *rowStreamClient) ReadRows(ctx context.Context, in *ReadRowsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ReadRowsResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &RowStream_ServiceDesc.Streams[0], RowStream_ReadRows_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ReadRowsRequest, ReadRowsResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// RowStream_ReadRowsClient is the client side of a ReadRows stream.
type RowStream_ReadRowsClient = grpc.ServerStreamingClient[ReadRowsResponse]

// RowStreamServer is the server API for RowStream service.
// All implementations must embed UnimplementedRowStreamServer
// for forward compatibility.
type RowStreamServer interface {
	// ReadRows streams the selected rows as cell chunks, in row key order.
	ReadRows(*ReadRowsRequest, grpc.ServerStreamingServer[ReadRowsResponse]) error
	mustEmbedUnimplementedRowStreamServer()
}

// UnimplementedRowStreamServer must be embedded to have forward compatible implementations.
type UnimplementedRowStreamServer struct{}

func (UnimplementedRowStreamServer) ReadRows(*ReadRowsRequest, grpc.ServerStreamingServer[ReadRowsResponse]) error {
	return status.Errorf(codes.Unimplemented, "method ReadRows not implemented")
}
func (UnimplementedRowStreamServer) mustEmbedUnimplementedRowStreamServer() {}

// RowStream_ReadRowsServer is the server side of a ReadRows stream.
type RowStream_ReadRowsServer = grpc.ServerStreamingServer[ReadRowsResponse]

func RegisterRowStreamServer(s grpc.ServiceRegistrar, srv RowStreamServer) {
	s.RegisterService(&RowStream_ServiceDesc, srv)
}

func _RowStream_ReadRows_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ReadRowsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RowStreamServer).ReadRows(m, &grpc.GenericServerStream[ReadRowsRequest, ReadRowsResponse]{ServerStream: stream})
}

// RowStream_ServiceDesc is the grpc.ServiceDesc for RowStream service.
var RowStream_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "litetable.rowstream.v1.RowStream",
	HandlerType: (*RowStreamServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ReadRows",
			Handler:       _RowStream_ReadRows_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "internal/rowstream/v1/rowstream.go",
}
