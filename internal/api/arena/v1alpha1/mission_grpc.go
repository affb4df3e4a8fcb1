package arenav1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MissionService_ServiceName is the fully qualified service name
const MissionService_ServiceName = "arena.v1alpha1.MissionService"

// Full method names of MissionService
const (
	MissionService_ListMissions_FullMethodName  = "/arena.v1alpha1.MissionService/ListMissions"
	MissionService_SelectMission_FullMethodName = "/arena.v1alpha1.MissionService/SelectMission"
)

// MissionServiceClient is the client API for MissionService
type MissionServiceClient interface {
	ListMissions(ctx context.Context, in *ListMissionsRequest, opts ...grpc.CallOption) (*ListMissionsResponse, error)
	SelectMission(ctx context.Context, in *SelectMissionRequest, opts ...grpc.CallOption) (*SelectMissionResponse, error)
}

type missionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMissionServiceClient creates a client that speaks the json codec
func NewMissionServiceClient(cc grpc.ClientConnInterface) MissionServiceClient {
	return &missionServiceClient{cc}
}

func (c *missionServiceClient) ListMissions(ctx context.Context, in *ListMissionsRequest, opts ...grpc.CallOption) (*ListMissionsResponse, error) {
	out := new(ListMissionsResponse)
	if err := c.cc.Invoke(ctx, MissionService_ListMissions_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *missionServiceClient) SelectMission(ctx context.Context, in *SelectMissionRequest, opts ...grpc.CallOption) (*SelectMissionResponse, error) {
	out := new(SelectMissionResponse)
	if err := c.cc.Invoke(ctx, MissionService_SelectMission_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

// MissionServiceServer is the server API for MissionService
type MissionServiceServer interface {
	ListMissions(context.Context, *ListMissionsRequest) (*ListMissionsResponse, error)
	SelectMission(context.Context, *SelectMissionRequest) (*SelectMissionResponse, error)
}

// UnimplementedMissionServiceServer can be embedded to have forward compatible implementations
type UnimplementedMissionServiceServer struct{}

func (UnimplementedMissionServiceServer) ListMissions(context.Context, *ListMissionsRequest) (*ListMissionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMissions not implemented")
}

func (UnimplementedMissionServiceServer) SelectMission(context.Context, *SelectMissionRequest) (*SelectMissionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectMission not implemented")
}

// RegisterMissionServiceServer registers srv with the gRPC server
func RegisterMissionServiceServer(s grpc.ServiceRegistrar, srv MissionServiceServer) {
	s.RegisterService(&MissionService_ServiceDesc, srv)
}

func _MissionService_ListMissions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMissionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MissionServiceServer).ListMissions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MissionService_ListMissions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MissionServiceServer).ListMissions(ctx, req.(*ListMissionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MissionService_SelectMission_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelectMissionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MissionServiceServer).SelectMission(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MissionService_SelectMission_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MissionServiceServer).SelectMission(ctx, req.(*SelectMissionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MissionService_ServiceDesc is the grpc.ServiceDesc for MissionService
var MissionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: MissionService_ServiceName,
	HandlerType: (*MissionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListMissions",
			Handler:    _MissionService_ListMissions_Handler,
		},
		{
			MethodName: "SelectMission",
			Handler:    _MissionService_SelectMission_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "arena/v1alpha1/mission.json",
}
