package wastev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "waste.v1.WasteService"

const (
	WasteService_ListPickups_FullMethodName        = "/waste.v1.WasteService/ListPickups"
	WasteService_CreatePickup_FullMethodName       = "/waste.v1.WasteService/CreatePickup"
	WasteService_UpdatePickupStatus_FullMethodName = "/waste.v1.WasteService/UpdatePickupStatus"
	WasteService_ListTrucks_FullMethodName         = "/waste.v1.WasteService/ListTrucks"
	WasteService_UpdateTruckStatus_FullMethodName  = "/waste.v1.WasteService/UpdateTruckStatus"
	WasteService_ListBins_FullMethodName           = "/waste.v1.WasteService/ListBins"
	WasteService_ListRoutes_FullMethodName         = "/waste.v1.WasteService/ListRoutes"
	WasteService_UpdateRouteStatus_FullMethodName  = "/waste.v1.WasteService/UpdateRouteStatus"
	WasteService_GetStats_FullMethodName           = "/waste.v1.WasteService/GetStats"
)

// WasteServiceServer is the server API for WasteService.
type WasteServiceServer interface {
	ListPickups(context.Context, *ListPickupsRequest) (*ListPickupsResponse, error)
	CreatePickup(context.Context, *CreatePickupRequest) (*CreatePickupResponse, error)
	UpdatePickupStatus(context.Context, *UpdatePickupStatusRequest) (*UpdatePickupStatusResponse, error)
	ListTrucks(context.Context, *ListTrucksRequest) (*ListTrucksResponse, error)
	UpdateTruckStatus(context.Context, *UpdateTruckStatusRequest) (*UpdateTruckStatusResponse, error)
	ListBins(context.Context, *ListBinsRequest) (*ListBinsResponse, error)
	ListRoutes(context.Context, *ListRoutesRequest) (*ListRoutesResponse, error)
	UpdateRouteStatus(context.Context, *UpdateRouteStatusRequest) (*UpdateRouteStatusResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
}

// UnimplementedWasteServiceServer can be embedded for forward compatibility.
type UnimplementedWasteServiceServer struct{}

func (UnimplementedWasteServiceServer) ListPickups(context.Context, *ListPickupsRequest) (*ListPickupsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPickups not implemented")
}
func (UnimplementedWasteServiceServer) CreatePickup(context.Context, *CreatePickupRequest) (*CreatePickupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePickup not implemented")
}
func (UnimplementedWasteServiceServer) UpdatePickupStatus(context.Context, *UpdatePickupStatusRequest) (*UpdatePickupStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePickupStatus not implemented")
}
func (UnimplementedWasteServiceServer) ListTrucks(context.Context, *ListTrucksRequest) (*ListTrucksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTrucks not implemented")
}
func (UnimplementedWasteServiceServer) UpdateTruckStatus(context.Context, *UpdateTruckStatusRequest) (*UpdateTruckStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateTruckStatus not implemented")
}
func (UnimplementedWasteServiceServer) ListBins(context.Context, *ListBinsRequest) (*ListBinsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBins not implemented")
}
func (UnimplementedWasteServiceServer) ListRoutes(context.Context, *ListRoutesRequest) (*ListRoutesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRoutes not implemented")
}
func (UnimplementedWasteServiceServer) UpdateRouteStatus(context.Context, *UpdateRouteStatusRequest) (*UpdateRouteStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateRouteStatus not implemented")
}
func (UnimplementedWasteServiceServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}

// RegisterWasteServiceServer registers srv on s.
func RegisterWasteServiceServer(s grpc.ServiceRegistrar, srv WasteServiceServer) {
	s.RegisterService(&WasteService_ServiceDesc, srv)
}

// unary adapts a typed method into a grpc.MethodHandler that runs through
// the server interceptor chain.
func unary[Req, Resp any](fullMethod string, call func(WasteServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(WasteServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(WasteServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// WasteService_ServiceDesc is the grpc.ServiceDesc for WasteService.
var WasteService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WasteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPickups", Handler: unary(WasteService_ListPickups_FullMethodName, WasteServiceServer.ListPickups)},
		{MethodName: "CreatePickup", Handler: unary(WasteService_CreatePickup_FullMethodName, WasteServiceServer.CreatePickup)},
		{MethodName: "UpdatePickupStatus", Handler: unary(WasteService_UpdatePickupStatus_FullMethodName, WasteServiceServer.UpdatePickupStatus)},
		{MethodName: "ListTrucks", Handler: unary(WasteService_ListTrucks_FullMethodName, WasteServiceServer.ListTrucks)},
		{MethodName: "UpdateTruckStatus", Handler: unary(WasteService_UpdateTruckStatus_FullMethodName, WasteServiceServer.UpdateTruckStatus)},
		{MethodName: "ListBins", Handler: unary(WasteService_ListBins_FullMethodName, WasteServiceServer.ListBins)},
		{MethodName: "ListRoutes", Handler: unary(WasteService_ListRoutes_FullMethodName, WasteServiceServer.ListRoutes)},
		{MethodName: "UpdateRouteStatus", Handler: unary(WasteService_UpdateRouteStatus_FullMethodName, WasteServiceServer.UpdateRouteStatus)},
		{MethodName: "GetStats", Handler: unary(WasteService_GetStats_FullMethodName, WasteServiceServer.GetStats)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/waste/v1/service.go",
}

// WasteServiceClient is the client API for WasteService.
type WasteServiceClient interface {
	ListPickups(ctx context.Context, in *ListPickupsRequest, opts ...grpc.CallOption) (*ListPickupsResponse, error)
	CreatePickup(ctx context.Context, in *CreatePickupRequest, opts ...grpc.CallOption) (*CreatePickupResponse, error)
	UpdatePickupStatus(ctx context.Context, in *UpdatePickupStatusRequest, opts ...grpc.CallOption) (*UpdatePickupStatusResponse, error)
	ListTrucks(ctx context.Context, in *ListTrucksRequest, opts ...grpc.CallOption) (*ListTrucksResponse, error)
	UpdateTruckStatus(ctx context.Context, in *UpdateTruckStatusRequest, opts ...grpc.CallOption) (*UpdateTruckStatusResponse, error)
	ListBins(ctx context.Context, in *ListBinsRequest, opts ...grpc.CallOption) (*ListBinsResponse, error)
	ListRoutes(ctx context.Context, in *ListRoutesRequest, opts ...grpc.CallOption) (*ListRoutesResponse, error)
	UpdateRouteStatus(ctx context.Context, in *UpdateRouteStatusRequest, opts ...grpc.CallOption) (*UpdateRouteStatusResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
}

type wasteServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewWasteServiceClient returns a client whose calls use the JSON codec.
func NewWasteServiceClient(cc grpc.ClientConnInterface) WasteServiceClient {
	return &wasteServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wasteServiceClient) ListPickups(ctx context.Context, in *ListPickupsRequest, opts ...grpc.CallOption) (*ListPickupsResponse, error) {
	return invoke[ListPickupsResponse](ctx, c.cc, WasteService_ListPickups_FullMethodName, in, opts)
}

func (c *wasteServiceClient) CreatePickup(ctx context.Context, in *CreatePickupRequest, opts ...grpc.CallOption) (*CreatePickupResponse, error) {
	return invoke[CreatePickupResponse](ctx, c.cc, WasteService_CreatePickup_FullMethodName, in, opts)
}

func (c *wasteServiceClient) UpdatePickupStatus(ctx context.Context, in *UpdatePickupStatusRequest, opts ...grpc.CallOption) (*UpdatePickupStatusResponse, error) {
	return invoke[UpdatePickupStatusResponse](ctx, c.cc, WasteService_UpdatePickupStatus_FullMethodName, in, opts)
}

func (c *wasteServiceClient) ListTrucks(ctx context.Context, in *ListTrucksRequest, opts ...grpc.CallOption) (*ListTrucksResponse, error) {
	return invoke[ListTrucksResponse](ctx, c.cc, WasteService_ListTrucks_FullMethodName, in, opts)
}

func (c *wasteServiceClient) UpdateTruckStatus(ctx context.Context, in *UpdateTruckStatusRequest, opts ...grpc.CallOption) (*UpdateTruckStatusResponse, error) {
	return invoke[UpdateTruckStatusResponse](ctx, c.cc, WasteService_UpdateTruckStatus_FullMethodName, in, opts)
}

func (c *wasteServiceClient) ListBins(ctx context.Context, in *ListBinsRequest, opts ...grpc.CallOption) (*ListBinsResponse, error) {
	return invoke[ListBinsResponse](ctx, c.cc, WasteService_ListBins_FullMethodName, in, opts)
}

func (c *wasteServiceClient) ListRoutes(ctx context.Context, in *ListRoutesRequest, opts ...grpc.CallOption) (*ListRoutesResponse, error) {
	return invoke[ListRoutesResponse](ctx, c.cc, WasteService_ListRoutes_FullMethodName, in, opts)
}

func (c *wasteServiceClient) UpdateRouteStatus(ctx context.Context, in *UpdateRouteStatusRequest, opts ...grpc.CallOption) (*UpdateRouteStatusResponse, error) {
	return invoke[UpdateRouteStatusResponse](ctx, c.cc, WasteService_UpdateRouteStatus_FullMethodName, in, opts)
}

func (c *wasteServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	return invoke[GetStatsResponse](ctx, c.cc, WasteService_GetStats_FullMethodName, in, opts)
}
