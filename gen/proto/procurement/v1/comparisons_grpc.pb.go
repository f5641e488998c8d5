// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: procurement/v1/comparisons.proto

package procurementv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ComparisonsService_CreateComparison_FullMethodName     = "/procurement.v1.ComparisonsService/CreateComparison"
	ComparisonsService_GetComparison_FullMethodName        = "/procurement.v1.ComparisonsService/GetComparison"
	ComparisonsService_ListComparisons_FullMethodName      = "/procurement.v1.ComparisonsService/ListComparisons"
	ComparisonsService_ProcessComparison_FullMethodName    = "/procurement.v1.ComparisonsService/ProcessComparison"
	ComparisonsService_RegenerateComparison_FullMethodName = "/procurement.v1.ComparisonsService/RegenerateComparison"
	ComparisonsService_GenerateMemo_FullMethodName         = "/procurement.v1.ComparisonsService/GenerateMemo"
	ComparisonsService_ExportComparison_FullMethodName     = "/procurement.v1.ComparisonsService/ExportComparison"
	ComparisonsService_WatchComparison_FullMethodName      = "/procurement.v1.ComparisonsService/WatchComparison"
)

// ComparisonsServiceClient is the client API for ComparisonsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ComparisonsService drives one multi-vendor pricing comparison from
// submission through completion, plus memo generation and export.
type ComparisonsServiceClient interface {
	// CreateComparison registers quote-file references and enqueues
	// background processing. The record is returned in submitted status.
	CreateComparison(ctx context.Context, in *CreateComparisonRequest, opts ...grpc.CallOption) (*CreateComparisonResponse, error)
	GetComparison(ctx context.Context, in *GetComparisonRequest, opts ...grpc.CallOption) (*GetComparisonResponse, error)
	ListComparisons(ctx context.Context, in *ListComparisonsRequest, opts ...grpc.CallOption) (*ListComparisonsResponse, error)
	// ProcessComparison runs the extraction pipeline synchronously. Safe to
	// race: losers of the claim observe processing and return the current
	// record.
	ProcessComparison(ctx context.Context, in *ProcessComparisonRequest, opts ...grpc.CallOption) (*ProcessComparisonResponse, error)
	// RegenerateComparison re-runs extraction, permitted from completed as
	// well as failed; prior results stay visible until the new run succeeds.
	RegenerateComparison(ctx context.Context, in *RegenerateComparisonRequest, opts ...grpc.CallOption) (*RegenerateComparisonResponse, error)
	GenerateMemo(ctx context.Context, in *GenerateMemoRequest, opts ...grpc.CallOption) (*GenerateMemoResponse, error)
	ExportComparison(ctx context.Context, in *ExportComparisonRequest, opts ...grpc.CallOption) (*ExportComparisonResponse, error)
	// WatchComparison streams every post-transition record for one id.
	// Best-effort: a slow consumer may miss intermediate states and should
	// re-fetch.
	WatchComparison(ctx context.Context, in *WatchComparisonRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[WatchComparisonResponse], error)
}

type comparisonsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewComparisonsServiceClient(cc grpc.ClientConnInterface) ComparisonsServiceClient {
	return &comparisonsServiceClient{cc}
}

func (c *comparisonsServiceClient) CreateComparison(ctx context.Context, in *CreateComparisonRequest, opts ...grpc.CallOption) (*CreateComparisonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateComparisonResponse)
	err := c.cc.Invoke(ctx, ComparisonsService_CreateComparison_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *comparisonsServiceClient) GetComparison(ctx context.Context, in *GetComparisonRequest, opts ...grpc.CallOption) (*GetComparisonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetComparisonResponse)
	err := c.cc.Invoke(ctx, ComparisonsService_GetComparison_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *comparisonsServiceClient) ListComparisons(ctx context.Context, in *ListComparisonsRequest, opts ...grpc.CallOption) (*ListComparisonsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListComparisonsResponse)
	err := c.cc.Invoke(ctx, ComparisonsService_ListComparisons_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *comparisonsServiceClient) ProcessComparison(ctx context.Context, in *ProcessComparisonRequest, opts ...grpc.CallOption) (*ProcessComparisonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessComparisonResponse)
	err := c.cc.Invoke(ctx, ComparisonsService_ProcessComparison_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *comparisonsServiceClient) RegenerateComparison(ctx context.Context, in *RegenerateComparisonRequest, opts ...grpc.CallOption) (*RegenerateComparisonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegenerateComparisonResponse)
	err := c.cc.Invoke(ctx, ComparisonsService_RegenerateComparison_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *comparisonsServiceClient) GenerateMemo(ctx context.Context, in *GenerateMemoRequest, opts ...grpc.CallOption) (*GenerateMemoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateMemoResponse)
	err := c.cc.Invoke(ctx, ComparisonsService_GenerateMemo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *comparisonsServiceClient) ExportComparison(ctx context.Context, in *ExportComparisonRequest, opts ...grpc.CallOption) (*ExportComparisonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportComparisonResponse)
	err := c.cc.Invoke(ctx, ComparisonsService_ExportComparison_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *comparisonsServiceClient) WatchComparison(ctx context.Context, in *WatchComparisonRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[WatchComparisonResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ComparisonsService_ServiceDesc.Streams[0], ComparisonsService_WatchComparison_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchComparisonRequest, WatchComparisonResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ComparisonsService_WatchComparisonClient = grpc.ServerStreamingClient[WatchComparisonResponse]

// ComparisonsServiceServer is the server API for ComparisonsService service.
// All implementations must embed UnimplementedComparisonsServiceServer
// for forward compatibility.
//
// ComparisonsService drives one multi-vendor pricing comparison from
// submission through completion, plus memo generation and export.
type ComparisonsServiceServer interface {
	// CreateComparison registers quote-file references and enqueues
	// background processing. The record is returned in submitted status.
	CreateComparison(context.Context, *CreateComparisonRequest) (*CreateComparisonResponse, error)
	GetComparison(context.Context, *GetComparisonRequest) (*GetComparisonResponse, error)
	ListComparisons(context.Context, *ListComparisonsRequest) (*ListComparisonsResponse, error)
	// ProcessComparison runs the extraction pipeline synchronously. Safe to
	// race: losers of the claim observe processing and return the current
	// record.
	ProcessComparison(context.Context, *ProcessComparisonRequest) (*ProcessComparisonResponse, error)
	// RegenerateComparison re-runs extraction, permitted from completed as
	// well as failed; prior results stay visible until the new run succeeds.
	RegenerateComparison(context.Context, *RegenerateComparisonRequest) (*RegenerateComparisonResponse, error)
	GenerateMemo(context.Context, *GenerateMemoRequest) (*GenerateMemoResponse, error)
	ExportComparison(context.Context, *ExportComparisonRequest) (*ExportComparisonResponse, error)
	// WatchComparison streams every post-transition record for one id.
	// Best-effort: a slow consumer may miss intermediate states and should
	// re-fetch.
	WatchComparison(*WatchComparisonRequest, grpc.ServerStreamingServer[WatchComparisonResponse]) error
	mustEmbedUnimplementedComparisonsServiceServer()
}

// UnimplementedComparisonsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedComparisonsServiceServer struct{}

func (UnimplementedComparisonsServiceServer) CreateComparison(context.Context, *CreateComparisonRequest) (*CreateComparisonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateComparison not implemented")
}
func (UnimplementedComparisonsServiceServer) GetComparison(context.Context, *GetComparisonRequest) (*GetComparisonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetComparison not implemented")
}
func (UnimplementedComparisonsServiceServer) ListComparisons(context.Context, *ListComparisonsRequest) (*ListComparisonsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListComparisons not implemented")
}
func (UnimplementedComparisonsServiceServer) ProcessComparison(context.Context, *ProcessComparisonRequest) (*ProcessComparisonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessComparison not implemented")
}
func (UnimplementedComparisonsServiceServer) RegenerateComparison(context.Context, *RegenerateComparisonRequest) (*RegenerateComparisonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegenerateComparison not implemented")
}
func (UnimplementedComparisonsServiceServer) GenerateMemo(context.Context, *GenerateMemoRequest) (*GenerateMemoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateMemo not implemented")
}
func (UnimplementedComparisonsServiceServer) ExportComparison(context.Context, *ExportComparisonRequest) (*ExportComparisonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportComparison not implemented")
}
func (UnimplementedComparisonsServiceServer) WatchComparison(*WatchComparisonRequest, grpc.ServerStreamingServer[WatchComparisonResponse]) error {
	return status.Errorf(codes.Unimplemented, "method WatchComparison not implemented")
}
func (UnimplementedComparisonsServiceServer) mustEmbedUnimplementedComparisonsServiceServer() {}
func (UnimplementedComparisonsServiceServer) testEmbeddedByValue()                            {}

// UnsafeComparisonsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ComparisonsServiceServer will
// result in compilation errors.
type UnsafeComparisonsServiceServer interface {
	mustEmbedUnimplementedComparisonsServiceServer()
}

func RegisterComparisonsServiceServer(s grpc.ServiceRegistrar, srv ComparisonsServiceServer) {
	// If the following call pancis, it indicates UnimplementedComparisonsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ComparisonsService_ServiceDesc, srv)
}

func _ComparisonsService_CreateComparison_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateComparisonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonsServiceServer).CreateComparison(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonsService_CreateComparison_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonsServiceServer).CreateComparison(ctx, req.(*CreateComparisonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComparisonsService_GetComparison_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetComparisonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonsServiceServer).GetComparison(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonsService_GetComparison_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonsServiceServer).GetComparison(ctx, req.(*GetComparisonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComparisonsService_ListComparisons_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListComparisonsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonsServiceServer).ListComparisons(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonsService_ListComparisons_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonsServiceServer).ListComparisons(ctx, req.(*ListComparisonsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComparisonsService_ProcessComparison_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessComparisonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonsServiceServer).ProcessComparison(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonsService_ProcessComparison_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonsServiceServer).ProcessComparison(ctx, req.(*ProcessComparisonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComparisonsService_RegenerateComparison_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegenerateComparisonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonsServiceServer).RegenerateComparison(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonsService_RegenerateComparison_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonsServiceServer).RegenerateComparison(ctx, req.(*RegenerateComparisonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComparisonsService_GenerateMemo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateMemoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonsServiceServer).GenerateMemo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonsService_GenerateMemo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonsServiceServer).GenerateMemo(ctx, req.(*GenerateMemoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComparisonsService_ExportComparison_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportComparisonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonsServiceServer).ExportComparison(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonsService_ExportComparison_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonsServiceServer).ExportComparison(ctx, req.(*ExportComparisonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComparisonsService_WatchComparison_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchComparisonRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ComparisonsServiceServer).WatchComparison(m, &grpc.GenericServerStream[WatchComparisonRequest, WatchComparisonResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ComparisonsService_WatchComparisonServer = grpc.ServerStreamingServer[WatchComparisonResponse]

// ComparisonsService_ServiceDesc is the grpc.ServiceDesc for ComparisonsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ComparisonsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "procurement.v1.ComparisonsService",
	HandlerType: (*ComparisonsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateComparison",
			Handler:    _ComparisonsService_CreateComparison_Handler,
		},
		{
			MethodName: "GetComparison",
			Handler:    _ComparisonsService_GetComparison_Handler,
		},
		{
			MethodName: "ListComparisons",
			Handler:    _ComparisonsService_ListComparisons_Handler,
		},
		{
			MethodName: "ProcessComparison",
			Handler:    _ComparisonsService_ProcessComparison_Handler,
		},
		{
			MethodName: "RegenerateComparison",
			Handler:    _ComparisonsService_RegenerateComparison_Handler,
		},
		{
			MethodName: "GenerateMemo",
			Handler:    _ComparisonsService_GenerateMemo_Handler,
		},
		{
			MethodName: "ExportComparison",
			Handler:    _ComparisonsService_ExportComparison_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchComparison",
			Handler:       _ComparisonsService_WatchComparison_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "procurement/v1/comparisons.proto",
}
