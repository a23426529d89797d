package pb

import (
	proto "github.com/golang/protobuf/proto"
)

type GetStationByIdRequest struct {
	Id uint32 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetStationByIdRequest) Reset()         { *m = GetStationByIdRequest{} }
func (m *GetStationByIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetStationByIdRequest) ProtoMessage()    {}

func (m *GetStationByIdRequest) GetId() uint32 {
	if m != nil {
		return m.Id
	}
	return 0
}

type GetStationByIdListRequest struct {
	Ids []uint32 `protobuf:"varint,1,rep,packed,name=ids,proto3" json:"ids,omitempty"`
}

func (m *GetStationByIdListRequest) Reset()         { *m = GetStationByIdListRequest{} }
func (m *GetStationByIdListRequest) String() string { return proto.CompactTextString(m) }
func (*GetStationByIdListRequest) ProtoMessage()    {}

func (m *GetStationByIdListRequest) GetIds() []uint32 {
	if m != nil {
		return m.Ids
	}
	return nil
}

type GetStationsByGroupIdRequest struct {
	GroupId uint32 `protobuf:"varint,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
}

func (m *GetStationsByGroupIdRequest) Reset()         { *m = GetStationsByGroupIdRequest{} }
func (m *GetStationsByGroupIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetStationsByGroupIdRequest) ProtoMessage()    {}

func (m *GetStationsByGroupIdRequest) GetGroupId() uint32 {
	if m != nil {
		return m.GroupId
	}
	return 0
}

type GetStationsByCoordinatesRequest struct {
	Latitude  float64 `protobuf:"fixed64,1,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude float64 `protobuf:"fixed64,2,opt,name=longitude,proto3" json:"longitude,omitempty"`
	Limit     uint32  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *GetStationsByCoordinatesRequest) Reset()         { *m = GetStationsByCoordinatesRequest{} }
func (m *GetStationsByCoordinatesRequest) String() string { return proto.CompactTextString(m) }
func (*GetStationsByCoordinatesRequest) ProtoMessage()    {}

func (m *GetStationsByCoordinatesRequest) GetLatitude() float64 {
	if m != nil {
		return m.Latitude
	}
	return 0
}

func (m *GetStationsByCoordinatesRequest) GetLongitude() float64 {
	if m != nil {
		return m.Longitude
	}
	return 0
}

func (m *GetStationsByCoordinatesRequest) GetLimit() uint32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

type GetStationsByLineIdRequest struct {
	LineId      uint32 `protobuf:"varint,1,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
	StationId   uint32 `protobuf:"varint,2,opt,name=station_id,json=stationId,proto3" json:"station_id,omitempty"`
	DirectionId uint32 `protobuf:"varint,3,opt,name=direction_id,json=directionId,proto3" json:"direction_id,omitempty"`
}

func (m *GetStationsByLineIdRequest) Reset()         { *m = GetStationsByLineIdRequest{} }
func (m *GetStationsByLineIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetStationsByLineIdRequest) ProtoMessage()    {}

func (m *GetStationsByLineIdRequest) GetLineId() uint32 {
	if m != nil {
		return m.LineId
	}
	return 0
}

func (m *GetStationsByLineIdRequest) GetStationId() uint32 {
	if m != nil {
		return m.StationId
	}
	return 0
}

func (m *GetStationsByLineIdRequest) GetDirectionId() uint32 {
	if m != nil {
		return m.DirectionId
	}
	return 0
}

type GetStationsByNameRequest struct {
	StationName        string `protobuf:"bytes,1,opt,name=station_name,json=stationName,proto3" json:"station_name,omitempty"`
	Limit              uint32 `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	FromStationGroupId uint32 `protobuf:"varint,3,opt,name=from_station_group_id,json=fromStationGroupId,proto3" json:"from_station_group_id,omitempty"`
}

func (m *GetStationsByNameRequest) Reset()         { *m = GetStationsByNameRequest{} }
func (m *GetStationsByNameRequest) String() string { return proto.CompactTextString(m) }
func (*GetStationsByNameRequest) ProtoMessage()    {}

func (m *GetStationsByNameRequest) GetStationName() string {
	if m != nil {
		return m.StationName
	}
	return ""
}

func (m *GetStationsByNameRequest) GetLimit() uint32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

func (m *GetStationsByNameRequest) GetFromStationGroupId() uint32 {
	if m != nil {
		return m.FromStationGroupId
	}
	return 0
}

type GetStationsByLineGroupIdRequest struct {
	LineGroupId uint32 `protobuf:"varint,1,opt,name=line_group_id,json=lineGroupId,proto3" json:"line_group_id,omitempty"`
}

func (m *GetStationsByLineGroupIdRequest) Reset()         { *m = GetStationsByLineGroupIdRequest{} }
func (m *GetStationsByLineGroupIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetStationsByLineGroupIdRequest) ProtoMessage()    {}

func (m *GetStationsByLineGroupIdRequest) GetLineGroupId() uint32 {
	if m != nil {
		return m.LineGroupId
	}
	return 0
}

type GetTrainTypesByStationIdRequest struct {
	StationId uint32 `protobuf:"varint,1,opt,name=station_id,json=stationId,proto3" json:"station_id,omitempty"`
}

func (m *GetTrainTypesByStationIdRequest) Reset()         { *m = GetTrainTypesByStationIdRequest{} }
func (m *GetTrainTypesByStationIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetTrainTypesByStationIdRequest) ProtoMessage()    {}

func (m *GetTrainTypesByStationIdRequest) GetStationId() uint32 {
	if m != nil {
		return m.StationId
	}
	return 0
}

type GetRoutesRequest struct {
	FromStationGroupId uint32 `protobuf:"varint,1,opt,name=from_station_group_id,json=fromStationGroupId,proto3" json:"from_station_group_id,omitempty"`
	ToStationGroupId   uint32 `protobuf:"varint,2,opt,name=to_station_group_id,json=toStationGroupId,proto3" json:"to_station_group_id,omitempty"`
}

func (m *GetRoutesRequest) Reset()         { *m = GetRoutesRequest{} }
func (m *GetRoutesRequest) String() string { return proto.CompactTextString(m) }
func (*GetRoutesRequest) ProtoMessage()    {}

func (m *GetRoutesRequest) GetFromStationGroupId() uint32 {
	if m != nil {
		return m.FromStationGroupId
	}
	return 0
}

func (m *GetRoutesRequest) GetToStationGroupId() uint32 {
	if m != nil {
		return m.ToStationGroupId
	}
	return 0
}

type GetRouteTypesRequest struct {
	FromStationGroupId uint32 `protobuf:"varint,1,opt,name=from_station_group_id,json=fromStationGroupId,proto3" json:"from_station_group_id,omitempty"`
	ToStationGroupId   uint32 `protobuf:"varint,2,opt,name=to_station_group_id,json=toStationGroupId,proto3" json:"to_station_group_id,omitempty"`
}

func (m *GetRouteTypesRequest) Reset()         { *m = GetRouteTypesRequest{} }
func (m *GetRouteTypesRequest) String() string { return proto.CompactTextString(m) }
func (*GetRouteTypesRequest) ProtoMessage()    {}

func (m *GetRouteTypesRequest) GetFromStationGroupId() uint32 {
	if m != nil {
		return m.FromStationGroupId
	}
	return 0
}

func (m *GetRouteTypesRequest) GetToStationGroupId() uint32 {
	if m != nil {
		return m.ToStationGroupId
	}
	return 0
}

type GetLineByIdRequest struct {
	LineId uint32 `protobuf:"varint,1,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
}

func (m *GetLineByIdRequest) Reset()         { *m = GetLineByIdRequest{} }
func (m *GetLineByIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetLineByIdRequest) ProtoMessage()    {}

func (m *GetLineByIdRequest) GetLineId() uint32 {
	if m != nil {
		return m.LineId
	}
	return 0
}

type GetLinesByNameRequest struct {
	LineName string `protobuf:"bytes,1,opt,name=line_name,json=lineName,proto3" json:"line_name,omitempty"`
	Limit    uint32 `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *GetLinesByNameRequest) Reset()         { *m = GetLinesByNameRequest{} }
func (m *GetLinesByNameRequest) String() string { return proto.CompactTextString(m) }
func (*GetLinesByNameRequest) ProtoMessage()    {}

func (m *GetLinesByNameRequest) GetLineName() string {
	if m != nil {
		return m.LineName
	}
	return ""
}

func (m *GetLinesByNameRequest) GetLimit() uint32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

type GetConnectedRoutesRequest struct {
	FromStationGroupId uint32 `protobuf:"varint,1,opt,name=from_station_group_id,json=fromStationGroupId,proto3" json:"from_station_group_id,omitempty"`
	ToStationGroupId   uint32 `protobuf:"varint,2,opt,name=to_station_group_id,json=toStationGroupId,proto3" json:"to_station_group_id,omitempty"`
}

func (m *GetConnectedRoutesRequest) Reset()         { *m = GetConnectedRoutesRequest{} }
func (m *GetConnectedRoutesRequest) String() string { return proto.CompactTextString(m) }
func (*GetConnectedRoutesRequest) ProtoMessage()    {}

func (m *GetConnectedRoutesRequest) GetFromStationGroupId() uint32 {
	if m != nil {
		return m.FromStationGroupId
	}
	return 0
}

func (m *GetConnectedRoutesRequest) GetToStationGroupId() uint32 {
	if m != nil {
		return m.ToStationGroupId
	}
	return 0
}

type SingleStationResponse struct {
	Station *Station `protobuf:"bytes,1,opt,name=station,proto3" json:"station,omitempty"`
}

func (m *SingleStationResponse) Reset()         { *m = SingleStationResponse{} }
func (m *SingleStationResponse) String() string { return proto.CompactTextString(m) }
func (*SingleStationResponse) ProtoMessage()    {}

func (m *SingleStationResponse) GetStation() *Station {
	if m != nil {
		return m.Station
	}
	return nil
}

type MultipleStationResponse struct {
	Stations []*Station `protobuf:"bytes,1,rep,name=stations,proto3" json:"stations,omitempty"`
}

func (m *MultipleStationResponse) Reset()         { *m = MultipleStationResponse{} }
func (m *MultipleStationResponse) String() string { return proto.CompactTextString(m) }
func (*MultipleStationResponse) ProtoMessage()    {}

func (m *MultipleStationResponse) GetStations() []*Station {
	if m != nil {
		return m.Stations
	}
	return nil
}

type SingleLineResponse struct {
	Line *Line `protobuf:"bytes,1,opt,name=line,proto3" json:"line,omitempty"`
}

func (m *SingleLineResponse) Reset()         { *m = SingleLineResponse{} }
func (m *SingleLineResponse) String() string { return proto.CompactTextString(m) }
func (*SingleLineResponse) ProtoMessage()    {}

func (m *SingleLineResponse) GetLine() *Line {
	if m != nil {
		return m.Line
	}
	return nil
}

type MultipleLineResponse struct {
	Lines []*Line `protobuf:"bytes,1,rep,name=lines,proto3" json:"lines,omitempty"`
}

func (m *MultipleLineResponse) Reset()         { *m = MultipleLineResponse{} }
func (m *MultipleLineResponse) String() string { return proto.CompactTextString(m) }
func (*MultipleLineResponse) ProtoMessage()    {}

func (m *MultipleLineResponse) GetLines() []*Line {
	if m != nil {
		return m.Lines
	}
	return nil
}

type MultipleTrainTypeResponse struct {
	TrainTypes []*TrainType `protobuf:"bytes,1,rep,name=train_types,json=trainTypes,proto3" json:"train_types,omitempty"`
}

func (m *MultipleTrainTypeResponse) Reset()         { *m = MultipleTrainTypeResponse{} }
func (m *MultipleTrainTypeResponse) String() string { return proto.CompactTextString(m) }
func (*MultipleTrainTypeResponse) ProtoMessage()    {}

func (m *MultipleTrainTypeResponse) GetTrainTypes() []*TrainType {
	if m != nil {
		return m.TrainTypes
	}
	return nil
}

type RoutesResponse struct {
	Routes []*Route `protobuf:"bytes,1,rep,name=routes,proto3" json:"routes,omitempty"`
	// Reserved for cursor pagination, always empty today.
	NextPageToken string `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *RoutesResponse) Reset()         { *m = RoutesResponse{} }
func (m *RoutesResponse) String() string { return proto.CompactTextString(m) }
func (*RoutesResponse) ProtoMessage()    {}

func (m *RoutesResponse) GetRoutes() []*Route {
	if m != nil {
		return m.Routes
	}
	return nil
}

func (m *RoutesResponse) GetNextPageToken() string {
	if m != nil {
		return m.NextPageToken
	}
	return ""
}

type RouteTypesResponse struct {
	TrainTypes    []*TrainType `protobuf:"bytes,1,rep,name=train_types,json=trainTypes,proto3" json:"train_types,omitempty"`
	NextPageToken string       `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *RouteTypesResponse) Reset()         { *m = RouteTypesResponse{} }
func (m *RouteTypesResponse) String() string { return proto.CompactTextString(m) }
func (*RouteTypesResponse) ProtoMessage()    {}

func (m *RouteTypesResponse) GetTrainTypes() []*TrainType {
	if m != nil {
		return m.TrainTypes
	}
	return nil
}

func (m *RouteTypesResponse) GetNextPageToken() string {
	if m != nil {
		return m.NextPageToken
	}
	return ""
}

type ConnectedRoutesResponse struct {
	Routes []*Route `protobuf:"bytes,1,rep,name=routes,proto3" json:"routes,omitempty"`
}

func (m *ConnectedRoutesResponse) Reset()         { *m = ConnectedRoutesResponse{} }
func (m *ConnectedRoutesResponse) String() string { return proto.CompactTextString(m) }
func (*ConnectedRoutesResponse) ProtoMessage()    {}

func (m *ConnectedRoutesResponse) GetRoutes() []*Route {
	if m != nil {
		return m.Routes
	}
	return nil
}

func init() {
	proto.RegisterType((*GetStationByIdRequest)(nil), "app.trainlcd.grpc.GetStationByIdRequest")
	proto.RegisterType((*GetStationByIdListRequest)(nil), "app.trainlcd.grpc.GetStationByIdListRequest")
	proto.RegisterType((*GetStationsByGroupIdRequest)(nil), "app.trainlcd.grpc.GetStationsByGroupIdRequest")
	proto.RegisterType((*GetStationsByCoordinatesRequest)(nil), "app.trainlcd.grpc.GetStationsByCoordinatesRequest")
	proto.RegisterType((*GetStationsByLineIdRequest)(nil), "app.trainlcd.grpc.GetStationsByLineIdRequest")
	proto.RegisterType((*GetStationsByNameRequest)(nil), "app.trainlcd.grpc.GetStationsByNameRequest")
	proto.RegisterType((*GetStationsByLineGroupIdRequest)(nil), "app.trainlcd.grpc.GetStationsByLineGroupIdRequest")
	proto.RegisterType((*GetTrainTypesByStationIdRequest)(nil), "app.trainlcd.grpc.GetTrainTypesByStationIdRequest")
	proto.RegisterType((*GetRoutesRequest)(nil), "app.trainlcd.grpc.GetRoutesRequest")
	proto.RegisterType((*GetRouteTypesRequest)(nil), "app.trainlcd.grpc.GetRouteTypesRequest")
	proto.RegisterType((*GetLineByIdRequest)(nil), "app.trainlcd.grpc.GetLineByIdRequest")
	proto.RegisterType((*GetLinesByNameRequest)(nil), "app.trainlcd.grpc.GetLinesByNameRequest")
	proto.RegisterType((*GetConnectedRoutesRequest)(nil), "app.trainlcd.grpc.GetConnectedRoutesRequest")
	proto.RegisterType((*SingleStationResponse)(nil), "app.trainlcd.grpc.SingleStationResponse")
	proto.RegisterType((*MultipleStationResponse)(nil), "app.trainlcd.grpc.MultipleStationResponse")
	proto.RegisterType((*SingleLineResponse)(nil), "app.trainlcd.grpc.SingleLineResponse")
	proto.RegisterType((*MultipleLineResponse)(nil), "app.trainlcd.grpc.MultipleLineResponse")
	proto.RegisterType((*MultipleTrainTypeResponse)(nil), "app.trainlcd.grpc.MultipleTrainTypeResponse")
	proto.RegisterType((*RoutesResponse)(nil), "app.trainlcd.grpc.RoutesResponse")
	proto.RegisterType((*RouteTypesResponse)(nil), "app.trainlcd.grpc.RouteTypesResponse")
	proto.RegisterType((*ConnectedRoutesResponse)(nil), "app.trainlcd.grpc.ConnectedRoutesResponse")
}
