package arenav1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CombatService_ServiceName is the fully qualified service name
const CombatService_ServiceName = "arena.v1alpha1.CombatService"

// Full method names of CombatService
const (
	CombatService_StartCombat_FullMethodName = "/arena.v1alpha1.CombatService/StartCombat"
	CombatService_GetCombat_FullMethodName   = "/arena.v1alpha1.CombatService/GetCombat"
	CombatService_ListCombats_FullMethodName = "/arena.v1alpha1.CombatService/ListCombats"
)

// CombatServiceClient is the client API for CombatService
type CombatServiceClient interface {
	StartCombat(ctx context.Context, in *StartCombatRequest, opts ...grpc.CallOption) (*StartCombatResponse, error)
	GetCombat(ctx context.Context, in *GetCombatRequest, opts ...grpc.CallOption) (*GetCombatResponse, error)
	ListCombats(ctx context.Context, in *ListCombatsRequest, opts ...grpc.CallOption) (*ListCombatsResponse, error)
}

type combatServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCombatServiceClient creates a client that speaks the json codec
func NewCombatServiceClient(cc grpc.ClientConnInterface) CombatServiceClient {
	return &combatServiceClient{cc}
}

func (c *combatServiceClient) StartCombat(ctx context.Context, in *StartCombatRequest, opts ...grpc.CallOption) (*StartCombatResponse, error) {
	out := new(StartCombatResponse)
	if err := c.cc.Invoke(ctx, CombatService_StartCombat_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetCombat(ctx context.Context, in *GetCombatRequest, opts ...grpc.CallOption) (*GetCombatResponse, error) {
	out := new(GetCombatResponse)
	if err := c.cc.Invoke(ctx, CombatService_GetCombat_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ListCombats(ctx context.Context, in *ListCombatsRequest, opts ...grpc.CallOption) (*ListCombatsResponse, error) {
	out := new(ListCombatsResponse)
	if err := c.cc.Invoke(ctx, CombatService_ListCombats_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

// CombatServiceServer is the server API for CombatService
type CombatServiceServer interface {
	StartCombat(context.Context, *StartCombatRequest) (*StartCombatResponse, error)
	GetCombat(context.Context, *GetCombatRequest) (*GetCombatResponse, error)
	ListCombats(context.Context, *ListCombatsRequest) (*ListCombatsResponse, error)
}

// UnimplementedCombatServiceServer can be embedded to have forward compatible implementations
type UnimplementedCombatServiceServer struct{}

func (UnimplementedCombatServiceServer) StartCombat(context.Context, *StartCombatRequest) (*StartCombatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartCombat not implemented")
}

func (UnimplementedCombatServiceServer) GetCombat(context.Context, *GetCombatRequest) (*GetCombatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCombat not implemented")
}

func (UnimplementedCombatServiceServer) ListCombats(context.Context, *ListCombatsRequest) (*ListCombatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCombats not implemented")
}

// RegisterCombatServiceServer registers srv with the gRPC server
func RegisterCombatServiceServer(s grpc.ServiceRegistrar, srv CombatServiceServer) {
	s.RegisterService(&CombatService_ServiceDesc, srv)
}

func _CombatService_StartCombat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartCombatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).StartCombat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_StartCombat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).StartCombat(ctx, req.(*StartCombatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetCombat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCombatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetCombat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetCombat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).GetCombat(ctx, req.(*GetCombatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ListCombats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCombatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ListCombats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ListCombats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).ListCombats(ctx, req.(*ListCombatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CombatService_ServiceDesc is the grpc.ServiceDesc for CombatService
var CombatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CombatService_ServiceName,
	HandlerType: (*CombatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartCombat",
			Handler:    _CombatService_StartCombat_Handler,
		},
		{
			MethodName: "GetCombat",
			Handler:    _CombatService_GetCombat_Handler,
		},
		{
			MethodName: "ListCombats",
			Handler:    _CombatService_ListCombats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "arena/v1alpha1/combat.json",
}
