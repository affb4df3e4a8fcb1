package arenav1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LeaderboardService_ServiceName is the fully qualified service name
const LeaderboardService_ServiceName = "arena.v1alpha1.LeaderboardService"

// Full method names of LeaderboardService
const (
	LeaderboardService_ListLeaderboard_FullMethodName = "/arena.v1alpha1.LeaderboardService/ListLeaderboard"
	LeaderboardService_GetUserStanding_FullMethodName = "/arena.v1alpha1.LeaderboardService/GetUserStanding"
)

// LeaderboardServiceClient is the client API for LeaderboardService
type LeaderboardServiceClient interface {
	ListLeaderboard(ctx context.Context, in *ListLeaderboardRequest, opts ...grpc.CallOption) (*ListLeaderboardResponse, error)
	GetUserStanding(ctx context.Context, in *GetUserStandingRequest, opts ...grpc.CallOption) (*GetUserStandingResponse, error)
}

type leaderboardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLeaderboardServiceClient creates a client that speaks the json codec
func NewLeaderboardServiceClient(cc grpc.ClientConnInterface) LeaderboardServiceClient {
	return &leaderboardServiceClient{cc}
}

func (c *leaderboardServiceClient) ListLeaderboard(ctx context.Context, in *ListLeaderboardRequest, opts ...grpc.CallOption) (*ListLeaderboardResponse, error) {
	out := new(ListLeaderboardResponse)
	if err := c.cc.Invoke(ctx, LeaderboardService_ListLeaderboard_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *leaderboardServiceClient) GetUserStanding(ctx context.Context, in *GetUserStandingRequest, opts ...grpc.CallOption) (*GetUserStandingResponse, error) {
	out := new(GetUserStandingResponse)
	if err := c.cc.Invoke(ctx, LeaderboardService_GetUserStanding_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

// LeaderboardServiceServer is the server API for LeaderboardService
type LeaderboardServiceServer interface {
	ListLeaderboard(context.Context, *ListLeaderboardRequest) (*ListLeaderboardResponse, error)
	GetUserStanding(context.Context, *GetUserStandingRequest) (*GetUserStandingResponse, error)
}

// UnimplementedLeaderboardServiceServer can be embedded to have forward compatible implementations
type UnimplementedLeaderboardServiceServer struct{}

func (UnimplementedLeaderboardServiceServer) ListLeaderboard(context.Context, *ListLeaderboardRequest) (*ListLeaderboardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLeaderboard not implemented")
}

func (UnimplementedLeaderboardServiceServer) GetUserStanding(context.Context, *GetUserStandingRequest) (*GetUserStandingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUserStanding not implemented")
}

// RegisterLeaderboardServiceServer registers srv with the gRPC server
func RegisterLeaderboardServiceServer(s grpc.ServiceRegistrar, srv LeaderboardServiceServer) {
	s.RegisterService(&LeaderboardService_ServiceDesc, srv)
}

func _LeaderboardService_ListLeaderboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLeaderboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeaderboardServiceServer).ListLeaderboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeaderboardService_ListLeaderboard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeaderboardServiceServer).ListLeaderboard(ctx, req.(*ListLeaderboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LeaderboardService_GetUserStanding_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserStandingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeaderboardServiceServer).GetUserStanding(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeaderboardService_GetUserStanding_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeaderboardServiceServer).GetUserStanding(ctx, req.(*GetUserStandingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LeaderboardService_ServiceDesc is the grpc.ServiceDesc for LeaderboardService
var LeaderboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: LeaderboardService_ServiceName,
	HandlerType: (*LeaderboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListLeaderboard",
			Handler:    _LeaderboardService_ListLeaderboard_Handler,
		},
		{
			MethodName: "GetUserStanding",
			Handler:    _LeaderboardService_GetUserStanding_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "arena/v1alpha1/leaderboard.json",
}
