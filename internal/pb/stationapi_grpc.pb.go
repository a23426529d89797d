package pb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	StationApi_GetStationById_FullMethodName           = "/app.trainlcd.grpc.StationApi/GetStationById"
	StationApi_GetStationByIdList_FullMethodName       = "/app.trainlcd.grpc.StationApi/GetStationByIdList"
	StationApi_GetStationsByGroupId_FullMethodName     = "/app.trainlcd.grpc.StationApi/GetStationsByGroupId"
	StationApi_GetStationsByCoordinates_FullMethodName = "/app.trainlcd.grpc.StationApi/GetStationsByCoordinates"
	StationApi_GetStationsByLineId_FullMethodName      = "/app.trainlcd.grpc.StationApi/GetStationsByLineId"
	StationApi_GetStationsByName_FullMethodName        = "/app.trainlcd.grpc.StationApi/GetStationsByName"
	StationApi_GetStationsByLineGroupId_FullMethodName = "/app.trainlcd.grpc.StationApi/GetStationsByLineGroupId"
	StationApi_GetTrainTypesByStationId_FullMethodName = "/app.trainlcd.grpc.StationApi/GetTrainTypesByStationId"
	StationApi_GetRoutes_FullMethodName                = "/app.trainlcd.grpc.StationApi/GetRoutes"
	StationApi_GetRouteTypes_FullMethodName            = "/app.trainlcd.grpc.StationApi/GetRouteTypes"
	StationApi_GetLineById_FullMethodName              = "/app.trainlcd.grpc.StationApi/GetLineById"
	StationApi_GetLinesByName_FullMethodName           = "/app.trainlcd.grpc.StationApi/GetLinesByName"
	StationApi_GetConnectedRoutes_FullMethodName       = "/app.trainlcd.grpc.StationApi/GetConnectedRoutes"
)

// StationApiClient is the client API for StationApi service.
type StationApiClient interface {
	GetStationById(ctx context.Context, in *GetStationByIdRequest, opts ...grpc.CallOption) (*SingleStationResponse, error)
	GetStationByIdList(ctx context.Context, in *GetStationByIdListRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error)
	GetStationsByGroupId(ctx context.Context, in *GetStationsByGroupIdRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error)
	GetStationsByCoordinates(ctx context.Context, in *GetStationsByCoordinatesRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error)
	GetStationsByLineId(ctx context.Context, in *GetStationsByLineIdRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error)
	GetStationsByName(ctx context.Context, in *GetStationsByNameRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error)
	GetStationsByLineGroupId(ctx context.Context, in *GetStationsByLineGroupIdRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error)
	GetTrainTypesByStationId(ctx context.Context, in *GetTrainTypesByStationIdRequest, opts ...grpc.CallOption) (*MultipleTrainTypeResponse, error)
	GetRoutes(ctx context.Context, in *GetRoutesRequest, opts ...grpc.CallOption) (*RoutesResponse, error)
	GetRouteTypes(ctx context.Context, in *GetRouteTypesRequest, opts ...grpc.CallOption) (*RouteTypesResponse, error)
	GetLineById(ctx context.Context, in *GetLineByIdRequest, opts ...grpc.CallOption) (*SingleLineResponse, error)
	GetLinesByName(ctx context.Context, in *GetLinesByNameRequest, opts ...grpc.CallOption) (*MultipleLineResponse, error)
	GetConnectedRoutes(ctx context.Context, in *GetConnectedRoutesRequest, opts ...grpc.CallOption) (*ConnectedRoutesResponse, error)
}

type stationApiClient struct {
	cc grpc.ClientConnInterface
}

func NewStationApiClient(cc grpc.ClientConnInterface) StationApiClient {
	return &stationApiClient{cc}
}

func (c *stationApiClient) GetStationById(ctx context.Context, in *GetStationByIdRequest, opts ...grpc.CallOption) (*SingleStationResponse, error) {
	out := new(SingleStationResponse)
	err := c.cc.Invoke(ctx, StationApi_GetStationById_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetStationByIdList(ctx context.Context, in *GetStationByIdListRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error) {
	out := new(MultipleStationResponse)
	err := c.cc.Invoke(ctx, StationApi_GetStationByIdList_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetStationsByGroupId(ctx context.Context, in *GetStationsByGroupIdRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error) {
	out := new(MultipleStationResponse)
	err := c.cc.Invoke(ctx, StationApi_GetStationsByGroupId_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetStationsByCoordinates(ctx context.Context, in *GetStationsByCoordinatesRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error) {
	out := new(MultipleStationResponse)
	err := c.cc.Invoke(ctx, StationApi_GetStationsByCoordinates_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetStationsByLineId(ctx context.Context, in *GetStationsByLineIdRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error) {
	out := new(MultipleStationResponse)
	err := c.cc.Invoke(ctx, StationApi_GetStationsByLineId_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetStationsByName(ctx context.Context, in *GetStationsByNameRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error) {
	out := new(MultipleStationResponse)
	err := c.cc.Invoke(ctx, StationApi_GetStationsByName_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetStationsByLineGroupId(ctx context.Context, in *GetStationsByLineGroupIdRequest, opts ...grpc.CallOption) (*MultipleStationResponse, error) {
	out := new(MultipleStationResponse)
	err := c.cc.Invoke(ctx, StationApi_GetStationsByLineGroupId_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetTrainTypesByStationId(ctx context.Context, in *GetTrainTypesByStationIdRequest, opts ...grpc.CallOption) (*MultipleTrainTypeResponse, error) {
	out := new(MultipleTrainTypeResponse)
	err := c.cc.Invoke(ctx, StationApi_GetTrainTypesByStationId_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetRoutes(ctx context.Context, in *GetRoutesRequest, opts ...grpc.CallOption) (*RoutesResponse, error) {
	out := new(RoutesResponse)
	err := c.cc.Invoke(ctx, StationApi_GetRoutes_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetRouteTypes(ctx context.Context, in *GetRouteTypesRequest, opts ...grpc.CallOption) (*RouteTypesResponse, error) {
	out := new(RouteTypesResponse)
	err := c.cc.Invoke(ctx, StationApi_GetRouteTypes_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetLineById(ctx context.Context, in *GetLineByIdRequest, opts ...grpc.CallOption) (*SingleLineResponse, error) {
	out := new(SingleLineResponse)
	err := c.cc.Invoke(ctx, StationApi_GetLineById_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetLinesByName(ctx context.Context, in *GetLinesByNameRequest, opts ...grpc.CallOption) (*MultipleLineResponse, error) {
	out := new(MultipleLineResponse)
	err := c.cc.Invoke(ctx, StationApi_GetLinesByName_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationApiClient) GetConnectedRoutes(ctx context.Context, in *GetConnectedRoutesRequest, opts ...grpc.CallOption) (*ConnectedRoutesResponse, error) {
	out := new(ConnectedRoutesResponse)
	err := c.cc.Invoke(ctx, StationApi_GetConnectedRoutes_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StationApiServer is the server API for StationApi service.
// All implementations must embed UnimplementedStationApiServer
// for forward compatibility.
type StationApiServer interface {
	GetStationById(context.Context, *GetStationByIdRequest) (*SingleStationResponse, error)
	GetStationByIdList(context.Context, *GetStationByIdListRequest) (*MultipleStationResponse, error)
	GetStationsByGroupId(context.Context, *GetStationsByGroupIdRequest) (*MultipleStationResponse, error)
	GetStationsByCoordinates(context.Context, *GetStationsByCoordinatesRequest) (*MultipleStationResponse, error)
	GetStationsByLineId(context.Context, *GetStationsByLineIdRequest) (*MultipleStationResponse, error)
	GetStationsByName(context.Context, *GetStationsByNameRequest) (*MultipleStationResponse, error)
	GetStationsByLineGroupId(context.Context, *GetStationsByLineGroupIdRequest) (*MultipleStationResponse, error)
	GetTrainTypesByStationId(context.Context, *GetTrainTypesByStationIdRequest) (*MultipleTrainTypeResponse, error)
	GetRoutes(context.Context, *GetRoutesRequest) (*RoutesResponse, error)
	GetRouteTypes(context.Context, *GetRouteTypesRequest) (*RouteTypesResponse, error)
	GetLineById(context.Context, *GetLineByIdRequest) (*SingleLineResponse, error)
	GetLinesByName(context.Context, *GetLinesByNameRequest) (*MultipleLineResponse, error)
	GetConnectedRoutes(context.Context, *GetConnectedRoutesRequest) (*ConnectedRoutesResponse, error)
	mustEmbedUnimplementedStationApiServer()
}

// UnimplementedStationApiServer must be embedded to have forward
// compatible implementations.
type UnimplementedStationApiServer struct{}

func (UnimplementedStationApiServer) GetStationById(context.Context, *GetStationByIdRequest) (*SingleStationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStationById not implemented")
}
func (UnimplementedStationApiServer) GetStationByIdList(context.Context, *GetStationByIdListRequest) (*MultipleStationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStationByIdList not implemented")
}
func (UnimplementedStationApiServer) GetStationsByGroupId(context.Context, *GetStationsByGroupIdRequest) (*MultipleStationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStationsByGroupId not implemented")
}
func (UnimplementedStationApiServer) GetStationsByCoordinates(context.Context, *GetStationsByCoordinatesRequest) (*MultipleStationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStationsByCoordinates not implemented")
}
func (UnimplementedStationApiServer) GetStationsByLineId(context.Context, *GetStationsByLineIdRequest) (*MultipleStationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStationsByLineId not implemented")
}
func (UnimplementedStationApiServer) GetStationsByName(context.Context, *GetStationsByNameRequest) (*MultipleStationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStationsByName not implemented")
}
func (UnimplementedStationApiServer) GetStationsByLineGroupId(context.Context, *GetStationsByLineGroupIdRequest) (*MultipleStationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStationsByLineGroupId not implemented")
}
func (UnimplementedStationApiServer) GetTrainTypesByStationId(context.Context, *GetTrainTypesByStationIdRequest) (*MultipleTrainTypeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTrainTypesByStationId not implemented")
}
func (UnimplementedStationApiServer) GetRoutes(context.Context, *GetRoutesRequest) (*RoutesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRoutes not implemented")
}
func (UnimplementedStationApiServer) GetRouteTypes(context.Context, *GetRouteTypesRequest) (*RouteTypesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRouteTypes not implemented")
}
func (UnimplementedStationApiServer) GetLineById(context.Context, *GetLineByIdRequest) (*SingleLineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLineById not implemented")
}
func (UnimplementedStationApiServer) GetLinesByName(context.Context, *GetLinesByNameRequest) (*MultipleLineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLinesByName not implemented")
}
func (UnimplementedStationApiServer) GetConnectedRoutes(context.Context, *GetConnectedRoutesRequest) (*ConnectedRoutesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetConnectedRoutes not implemented")
}
func (UnimplementedStationApiServer) mustEmbedUnimplementedStationApiServer() {}

// UnsafeStationApiServer may be embedded to opt out of forward
// compatibility for this service.
type UnsafeStationApiServer interface {
	mustEmbedUnimplementedStationApiServer()
}

func RegisterStationApiServer(s grpc.ServiceRegistrar, srv StationApiServer) {
	s.RegisterService(&StationApi_ServiceDesc, srv)
}

func _StationApi_GetStationById_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStationByIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetStationById(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetStationById_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetStationById(ctx, req.(*GetStationByIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetStationByIdList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStationByIdListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetStationByIdList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetStationByIdList_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetStationByIdList(ctx, req.(*GetStationByIdListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetStationsByGroupId_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStationsByGroupIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetStationsByGroupId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetStationsByGroupId_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetStationsByGroupId(ctx, req.(*GetStationsByGroupIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetStationsByCoordinates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStationsByCoordinatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetStationsByCoordinates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetStationsByCoordinates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetStationsByCoordinates(ctx, req.(*GetStationsByCoordinatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetStationsByLineId_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStationsByLineIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetStationsByLineId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetStationsByLineId_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetStationsByLineId(ctx, req.(*GetStationsByLineIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetStationsByName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStationsByNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetStationsByName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetStationsByName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetStationsByName(ctx, req.(*GetStationsByNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetStationsByLineGroupId_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStationsByLineGroupIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetStationsByLineGroupId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetStationsByLineGroupId_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetStationsByLineGroupId(ctx, req.(*GetStationsByLineGroupIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetTrainTypesByStationId_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTrainTypesByStationIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetTrainTypesByStationId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetTrainTypesByStationId_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetTrainTypesByStationId(ctx, req.(*GetTrainTypesByStationIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetRoutes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRoutesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetRoutes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetRoutes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetRoutes(ctx, req.(*GetRoutesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetRouteTypes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRouteTypesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetRouteTypes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetRouteTypes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetRouteTypes(ctx, req.(*GetRouteTypesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetLineById_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLineByIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetLineById(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetLineById_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetLineById(ctx, req.(*GetLineByIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetLinesByName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLinesByNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetLinesByName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetLinesByName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetLinesByName(ctx, req.(*GetLinesByNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StationApi_GetConnectedRoutes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetConnectedRoutesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationApiServer).GetConnectedRoutes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StationApi_GetConnectedRoutes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationApiServer).GetConnectedRoutes(ctx, req.(*GetConnectedRoutesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// StationApi_ServiceDesc is the grpc.ServiceDesc for StationApi service.
var StationApi_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "app.trainlcd.grpc.StationApi",
	HandlerType: (*StationApiServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStationById",
			Handler:    _StationApi_GetStationById_Handler,
		},
		{
			MethodName: "GetStationByIdList",
			Handler:    _StationApi_GetStationByIdList_Handler,
		},
		{
			MethodName: "GetStationsByGroupId",
			Handler:    _StationApi_GetStationsByGroupId_Handler,
		},
		{
			MethodName: "GetStationsByCoordinates",
			Handler:    _StationApi_GetStationsByCoordinates_Handler,
		},
		{
			MethodName: "GetStationsByLineId",
			Handler:    _StationApi_GetStationsByLineId_Handler,
		},
		{
			MethodName: "GetStationsByName",
			Handler:    _StationApi_GetStationsByName_Handler,
		},
		{
			MethodName: "GetStationsByLineGroupId",
			Handler:    _StationApi_GetStationsByLineGroupId_Handler,
		},
		{
			MethodName: "GetTrainTypesByStationId",
			Handler:    _StationApi_GetTrainTypesByStationId_Handler,
		},
		{
			MethodName: "GetRoutes",
			Handler:    _StationApi_GetRoutes_Handler,
		},
		{
			MethodName: "GetRouteTypes",
			Handler:    _StationApi_GetRouteTypes_Handler,
		},
		{
			MethodName: "GetLineById",
			Handler:    _StationApi_GetLineById_Handler,
		},
		{
			MethodName: "GetLinesByName",
			Handler:    _StationApi_GetLinesByName_Handler,
		},
		{
			MethodName: "GetConnectedRoutes",
			Handler:    _StationApi_GetConnectedRoutes_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/stationapi.proto",
}
