// Package pb holds the wire types of the app.trainlcd.grpc.StationApi
// service, kept in sync with proto/stationapi.proto.
package pb

import (
	proto "github.com/golang/protobuf/proto"
)

// StopCondition tells whether trains of the current stopping pattern
// stop at the station.
type StopCondition int32

const (
	StopCondition_ALL          StopCondition = 0
	StopCondition_NOT          StopCondition = 1
	StopCondition_PARTIAL      StopCondition = 2
	StopCondition_WEEKDAY      StopCondition = 3
	StopCondition_HOLIDAY      StopCondition = 4
	StopCondition_PARTIAL_STOP StopCondition = 5
)

var StopCondition_name = map[int32]string{
	0: "ALL",
	1: "NOT",
	2: "PARTIAL",
	3: "WEEKDAY",
	4: "HOLIDAY",
	5: "PARTIAL_STOP",
}

var StopCondition_value = map[string]int32{
	"ALL":          0,
	"NOT":          1,
	"PARTIAL":      2,
	"WEEKDAY":      3,
	"HOLIDAY":      4,
	"PARTIAL_STOP": 5,
}

func (x StopCondition) String() string {
	return proto.EnumName(StopCondition_name, int32(x))
}

type StationNumber struct {
	LineSymbol      string `protobuf:"bytes,1,opt,name=line_symbol,json=lineSymbol,proto3" json:"line_symbol,omitempty"`
	LineSymbolColor string `protobuf:"bytes,2,opt,name=line_symbol_color,json=lineSymbolColor,proto3" json:"line_symbol_color,omitempty"`
	LineSymbolShape string `protobuf:"bytes,3,opt,name=line_symbol_shape,json=lineSymbolShape,proto3" json:"line_symbol_shape,omitempty"`
	StationNumber   string `protobuf:"bytes,4,opt,name=station_number,json=stationNumber,proto3" json:"station_number,omitempty"`
}

func (m *StationNumber) Reset()         { *m = StationNumber{} }
func (m *StationNumber) String() string { return proto.CompactTextString(m) }
func (*StationNumber) ProtoMessage()    {}

func (m *StationNumber) GetLineSymbol() string {
	if m != nil {
		return m.LineSymbol
	}
	return ""
}

func (m *StationNumber) GetLineSymbolColor() string {
	if m != nil {
		return m.LineSymbolColor
	}
	return ""
}

func (m *StationNumber) GetLineSymbolShape() string {
	if m != nil {
		return m.LineSymbolShape
	}
	return ""
}

func (m *StationNumber) GetStationNumber() string {
	if m != nil {
		return m.StationNumber
	}
	return ""
}

type LineSymbol struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Color  string `protobuf:"bytes,2,opt,name=color,proto3" json:"color,omitempty"`
	Shape  string `protobuf:"bytes,3,opt,name=shape,proto3" json:"shape,omitempty"`
}

func (m *LineSymbol) Reset()         { *m = LineSymbol{} }
func (m *LineSymbol) String() string { return proto.CompactTextString(m) }
func (*LineSymbol) ProtoMessage()    {}

func (m *LineSymbol) GetSymbol() string {
	if m != nil {
		return m.Symbol
	}
	return ""
}

func (m *LineSymbol) GetColor() string {
	if m != nil {
		return m.Color
	}
	return ""
}

func (m *LineSymbol) GetShape() string {
	if m != nil {
		return m.Shape
	}
	return ""
}

type Company struct {
	Id               uint32 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	RailroadId       uint32 `protobuf:"varint,2,opt,name=railroad_id,json=railroadId,proto3" json:"railroad_id,omitempty"`
	Name             string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	NameShort        string `protobuf:"bytes,4,opt,name=name_short,json=nameShort,proto3" json:"name_short,omitempty"`
	NameKatakana     string `protobuf:"bytes,5,opt,name=name_katakana,json=nameKatakana,proto3" json:"name_katakana,omitempty"`
	NameFull         string `protobuf:"bytes,6,opt,name=name_full,json=nameFull,proto3" json:"name_full,omitempty"`
	NameEnglishShort string `protobuf:"bytes,7,opt,name=name_english_short,json=nameEnglishShort,proto3" json:"name_english_short,omitempty"`
	NameEnglishFull  string `protobuf:"bytes,8,opt,name=name_english_full,json=nameEnglishFull,proto3" json:"name_english_full,omitempty"`
	Url              string `protobuf:"bytes,9,opt,name=url,proto3" json:"url,omitempty"`
	Type             uint32 `protobuf:"varint,10,opt,name=type,proto3" json:"type,omitempty"`
	Status           uint32 `protobuf:"varint,11,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *Company) Reset()         { *m = Company{} }
func (m *Company) String() string { return proto.CompactTextString(m) }
func (*Company) ProtoMessage()    {}

func (m *Company) GetId() uint32 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Company) GetRailroadId() uint32 {
	if m != nil {
		return m.RailroadId
	}
	return 0
}

func (m *Company) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Company) GetNameShort() string {
	if m != nil {
		return m.NameShort
	}
	return ""
}

func (m *Company) GetNameKatakana() string {
	if m != nil {
		return m.NameKatakana
	}
	return ""
}

func (m *Company) GetNameFull() string {
	if m != nil {
		return m.NameFull
	}
	return ""
}

func (m *Company) GetNameEnglishShort() string {
	if m != nil {
		return m.NameEnglishShort
	}
	return ""
}

func (m *Company) GetNameEnglishFull() string {
	if m != nil {
		return m.NameEnglishFull
	}
	return ""
}

func (m *Company) GetUrl() string {
	if m != nil {
		return m.Url
	}
	return ""
}

func (m *Company) GetType() uint32 {
	if m != nil {
		return m.Type
	}
	return 0
}

func (m *Company) GetStatus() uint32 {
	if m != nil {
		return m.Status
	}
	return 0
}

type Line struct {
	Id           uint32        `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	NameShort    string        `protobuf:"bytes,2,opt,name=name_short,json=nameShort,proto3" json:"name_short,omitempty"`
	NameKatakana string        `protobuf:"bytes,3,opt,name=name_katakana,json=nameKatakana,proto3" json:"name_katakana,omitempty"`
	NameFull     string        `protobuf:"bytes,4,opt,name=name_full,json=nameFull,proto3" json:"name_full,omitempty"`
	NameRoman    string        `protobuf:"bytes,5,opt,name=name_roman,json=nameRoman,proto3" json:"name_roman,omitempty"`
	NameChinese  string        `protobuf:"bytes,6,opt,name=name_chinese,json=nameChinese,proto3" json:"name_chinese,omitempty"`
	NameKorean   string        `protobuf:"bytes,7,opt,name=name_korean,json=nameKorean,proto3" json:"name_korean,omitempty"`
	Color        string        `protobuf:"bytes,8,opt,name=color,proto3" json:"color,omitempty"`
	LineType     uint32        `protobuf:"varint,9,opt,name=line_type,json=lineType,proto3" json:"line_type,omitempty"`
	LineSymbols  []*LineSymbol `protobuf:"bytes,10,rep,name=line_symbols,json=lineSymbols,proto3" json:"line_symbols,omitempty"`
	Status       uint32        `protobuf:"varint,11,opt,name=status,proto3" json:"status,omitempty"`
	// The transfer station of this line inside the group the parent
	// station belongs to. One hop deep, its lines list is empty.
	Station         *Station `protobuf:"bytes,12,opt,name=station,proto3" json:"station,omitempty"`
	Company         *Company `protobuf:"bytes,13,opt,name=company,proto3" json:"company,omitempty"`
	AverageDistance float64  `protobuf:"fixed64,14,opt,name=average_distance,json=averageDistance,proto3" json:"average_distance,omitempty"`
}

func (m *Line) Reset()         { *m = Line{} }
func (m *Line) String() string { return proto.CompactTextString(m) }
func (*Line) ProtoMessage()    {}

func (m *Line) GetId() uint32 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Line) GetNameShort() string {
	if m != nil {
		return m.NameShort
	}
	return ""
}

func (m *Line) GetNameKatakana() string {
	if m != nil {
		return m.NameKatakana
	}
	return ""
}

func (m *Line) GetNameFull() string {
	if m != nil {
		return m.NameFull
	}
	return ""
}

func (m *Line) GetNameRoman() string {
	if m != nil {
		return m.NameRoman
	}
	return ""
}

func (m *Line) GetNameChinese() string {
	if m != nil {
		return m.NameChinese
	}
	return ""
}

func (m *Line) GetNameKorean() string {
	if m != nil {
		return m.NameKorean
	}
	return ""
}

func (m *Line) GetColor() string {
	if m != nil {
		return m.Color
	}
	return ""
}

func (m *Line) GetLineType() uint32 {
	if m != nil {
		return m.LineType
	}
	return 0
}

func (m *Line) GetLineSymbols() []*LineSymbol {
	if m != nil {
		return m.LineSymbols
	}
	return nil
}

func (m *Line) GetStatus() uint32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *Line) GetStation() *Station {
	if m != nil {
		return m.Station
	}
	return nil
}

func (m *Line) GetCompany() *Company {
	if m != nil {
		return m.Company
	}
	return nil
}

func (m *Line) GetAverageDistance() float64 {
	if m != nil {
		return m.AverageDistance
	}
	return 0
}

type TrainType struct {
	Id           uint32  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	TypeId       uint32  `protobuf:"varint,2,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	GroupId      uint32  `protobuf:"varint,3,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Name         string  `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	NameKatakana string  `protobuf:"bytes,5,opt,name=name_katakana,json=nameKatakana,proto3" json:"name_katakana,omitempty"`
	NameRoman    string  `protobuf:"bytes,6,opt,name=name_roman,json=nameRoman,proto3" json:"name_roman,omitempty"`
	NameChinese  string  `protobuf:"bytes,7,opt,name=name_chinese,json=nameChinese,proto3" json:"name_chinese,omitempty"`
	NameKorean   string  `protobuf:"bytes,8,opt,name=name_korean,json=nameKorean,proto3" json:"name_korean,omitempty"`
	Color        string  `protobuf:"bytes,9,opt,name=color,proto3" json:"color,omitempty"`
	Lines        []*Line `protobuf:"bytes,10,rep,name=lines,proto3" json:"lines,omitempty"`
	Line         *Line   `protobuf:"bytes,11,opt,name=line,proto3" json:"line,omitempty"`
	Direction    uint32  `protobuf:"varint,12,opt,name=direction,proto3" json:"direction,omitempty"`
	Kind         uint32  `protobuf:"varint,13,opt,name=kind,proto3" json:"kind,omitempty"`
}

func (m *TrainType) Reset()         { *m = TrainType{} }
func (m *TrainType) String() string { return proto.CompactTextString(m) }
func (*TrainType) ProtoMessage()    {}

func (m *TrainType) GetId() uint32 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *TrainType) GetTypeId() uint32 {
	if m != nil {
		return m.TypeId
	}
	return 0
}

func (m *TrainType) GetGroupId() uint32 {
	if m != nil {
		return m.GroupId
	}
	return 0
}

func (m *TrainType) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *TrainType) GetNameKatakana() string {
	if m != nil {
		return m.NameKatakana
	}
	return ""
}

func (m *TrainType) GetNameRoman() string {
	if m != nil {
		return m.NameRoman
	}
	return ""
}

func (m *TrainType) GetNameChinese() string {
	if m != nil {
		return m.NameChinese
	}
	return ""
}

func (m *TrainType) GetNameKorean() string {
	if m != nil {
		return m.NameKorean
	}
	return ""
}

func (m *TrainType) GetColor() string {
	if m != nil {
		return m.Color
	}
	return ""
}

func (m *TrainType) GetLines() []*Line {
	if m != nil {
		return m.Lines
	}
	return nil
}

func (m *TrainType) GetLine() *Line {
	if m != nil {
		return m.Line
	}
	return nil
}

func (m *TrainType) GetDirection() uint32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

func (m *TrainType) GetKind() uint32 {
	if m != nil {
		return m.Kind
	}
	return 0
}

type Station struct {
	Id              uint32           `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	GroupId         uint32           `protobuf:"varint,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Name            string           `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	NameKatakana    string           `protobuf:"bytes,4,opt,name=name_katakana,json=nameKatakana,proto3" json:"name_katakana,omitempty"`
	NameRoman       string           `protobuf:"bytes,5,opt,name=name_roman,json=nameRoman,proto3" json:"name_roman,omitempty"`
	NameChinese     string           `protobuf:"bytes,6,opt,name=name_chinese,json=nameChinese,proto3" json:"name_chinese,omitempty"`
	NameKorean      string           `protobuf:"bytes,7,opt,name=name_korean,json=nameKorean,proto3" json:"name_korean,omitempty"`
	ThreeLetterCode string           `protobuf:"bytes,8,opt,name=three_letter_code,json=threeLetterCode,proto3" json:"three_letter_code,omitempty"`
	Lines           []*Line          `protobuf:"bytes,9,rep,name=lines,proto3" json:"lines,omitempty"`
	Line            *Line            `protobuf:"bytes,10,opt,name=line,proto3" json:"line,omitempty"`
	PrefectureId    uint32           `protobuf:"varint,11,opt,name=prefecture_id,json=prefectureId,proto3" json:"prefecture_id,omitempty"`
	PostalCode      string           `protobuf:"bytes,12,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	Address         string           `protobuf:"bytes,13,opt,name=address,proto3" json:"address,omitempty"`
	Latitude        float64          `protobuf:"fixed64,14,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude       float64          `protobuf:"fixed64,15,opt,name=longitude,proto3" json:"longitude,omitempty"`
	OpenedAt        string           `protobuf:"bytes,16,opt,name=opened_at,json=openedAt,proto3" json:"opened_at,omitempty"`
	ClosedAt        string           `protobuf:"bytes,17,opt,name=closed_at,json=closedAt,proto3" json:"closed_at,omitempty"`
	Status          uint32           `protobuf:"varint,18,opt,name=status,proto3" json:"status,omitempty"`
	StationNumbers  []*StationNumber `protobuf:"bytes,19,rep,name=station_numbers,json=stationNumbers,proto3" json:"station_numbers,omitempty"`
	StopCondition   StopCondition    `protobuf:"varint,20,opt,name=stop_condition,json=stopCondition,proto3,enum=app.trainlcd.grpc.StopCondition" json:"stop_condition,omitempty"`
	Distance        float64          `protobuf:"fixed64,21,opt,name=distance,proto3" json:"distance,omitempty"`
	HasTrainTypes   bool             `protobuf:"varint,22,opt,name=has_train_types,json=hasTrainTypes,proto3" json:"has_train_types,omitempty"`
	TrainType       *TrainType       `protobuf:"bytes,23,opt,name=train_type,json=trainType,proto3" json:"train_type,omitempty"`
}

func (m *Station) Reset()         { *m = Station{} }
func (m *Station) String() string { return proto.CompactTextString(m) }
func (*Station) ProtoMessage()    {}

func (m *Station) GetId() uint32 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Station) GetGroupId() uint32 {
	if m != nil {
		return m.GroupId
	}
	return 0
}

func (m *Station) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Station) GetNameKatakana() string {
	if m != nil {
		return m.NameKatakana
	}
	return ""
}

func (m *Station) GetNameRoman() string {
	if m != nil {
		return m.NameRoman
	}
	return ""
}

func (m *Station) GetNameChinese() string {
	if m != nil {
		return m.NameChinese
	}
	return ""
}

func (m *Station) GetNameKorean() string {
	if m != nil {
		return m.NameKorean
	}
	return ""
}

func (m *Station) GetThreeLetterCode() string {
	if m != nil {
		return m.ThreeLetterCode
	}
	return ""
}

func (m *Station) GetLines() []*Line {
	if m != nil {
		return m.Lines
	}
	return nil
}

func (m *Station) GetLine() *Line {
	if m != nil {
		return m.Line
	}
	return nil
}

func (m *Station) GetPrefectureId() uint32 {
	if m != nil {
		return m.PrefectureId
	}
	return 0
}

func (m *Station) GetPostalCode() string {
	if m != nil {
		return m.PostalCode
	}
	return ""
}

func (m *Station) GetAddress() string {
	if m != nil {
		return m.Address
	}
	return ""
}

func (m *Station) GetLatitude() float64 {
	if m != nil {
		return m.Latitude
	}
	return 0
}

func (m *Station) GetLongitude() float64 {
	if m != nil {
		return m.Longitude
	}
	return 0
}

func (m *Station) GetOpenedAt() string {
	if m != nil {
		return m.OpenedAt
	}
	return ""
}

func (m *Station) GetClosedAt() string {
	if m != nil {
		return m.ClosedAt
	}
	return ""
}

func (m *Station) GetStatus() uint32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *Station) GetStationNumbers() []*StationNumber {
	if m != nil {
		return m.StationNumbers
	}
	return nil
}

func (m *Station) GetStopCondition() StopCondition {
	if m != nil {
		return m.StopCondition
	}
	return StopCondition_ALL
}

func (m *Station) GetDistance() float64 {
	if m != nil {
		return m.Distance
	}
	return 0
}

func (m *Station) GetHasTrainTypes() bool {
	if m != nil {
		return m.HasTrainTypes
	}
	return false
}

func (m *Station) GetTrainType() *TrainType {
	if m != nil {
		return m.TrainType
	}
	return nil
}

type Route struct {
	Id        uint32     `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Stops     []*Station `protobuf:"bytes,2,rep,name=stops,proto3" json:"stops,omitempty"`
	TrainType *TrainType `protobuf:"bytes,3,opt,name=train_type,json=trainType,proto3" json:"train_type,omitempty"`
}

func (m *Route) Reset()         { *m = Route{} }
func (m *Route) String() string { return proto.CompactTextString(m) }
func (*Route) ProtoMessage()    {}

func (m *Route) GetId() uint32 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Route) GetStops() []*Station {
	if m != nil {
		return m.Stops
	}
	return nil
}

func (m *Route) GetTrainType() *TrainType {
	if m != nil {
		return m.TrainType
	}
	return nil
}

func init() {
	proto.RegisterEnum("app.trainlcd.grpc.StopCondition", StopCondition_name, StopCondition_value)
	proto.RegisterType((*StationNumber)(nil), "app.trainlcd.grpc.StationNumber")
	proto.RegisterType((*LineSymbol)(nil), "app.trainlcd.grpc.LineSymbol")
	proto.RegisterType((*Company)(nil), "app.trainlcd.grpc.Company")
	proto.RegisterType((*Line)(nil), "app.trainlcd.grpc.Line")
	proto.RegisterType((*TrainType)(nil), "app.trainlcd.grpc.TrainType")
	proto.RegisterType((*Station)(nil), "app.trainlcd.grpc.Station")
	proto.RegisterType((*Route)(nil), "app.trainlcd.grpc.Route")
}
