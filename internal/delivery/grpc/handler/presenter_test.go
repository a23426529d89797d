package handler

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/pb"
)

func TestStationToPB(t *testing.T) {
	roman := "Shibuya"
	line := &domain.Line{
		ID:      11302,
		Name:    "JR山手線",
		Color:   "#80C241",
		Company: &domain.Company{ID: 2, Name: "JR東日本"},
		Symbols: []*domain.LineSymbol{{Symbol: "JY", Color: "#80C241", Shape: "SQUARE"}},
	}
	s := &domain.Station{
		ID:           1130208,
		GroupID:      1130208,
		Name:         "渋谷",
		NameKatakana: "シブヤ",
		NameRoman:    &roman,
		Line:         line,
		Lines: []*domain.Line{
			{ID: 11302, Name: "JR山手線", Station: &domain.Station{ID: 1130208, Name: "渋谷"}},
		},
		Latitude:  35.658871,
		Longitude: 139.701238,
		StationNumbers: []*domain.StationNumber{
			{LineSymbol: "JY", LineSymbolColor: "#80C241", LineSymbolShape: "SQUARE", StationNumber: "JY-20"},
		},
		StopCondition: domain.StopConditionAll,
		HasTrainTypes: true,
	}

	out := stationToPB(s)

	assert.Equal(t, uint32(1130208), out.GetId())
	assert.Equal(t, "Shibuya", out.GetNameRoman())
	// Unset translations come through as empty strings.
	assert.Equal(t, "", out.GetNameChinese())
	assert.Equal(t, 35.658871, out.GetLatitude())
	assert.Equal(t, 139.701238, out.GetLongitude())
	assert.True(t, out.GetHasTrainTypes())
	assert.Equal(t, pb.StopCondition_ALL, out.GetStopCondition())

	if assert.NotNil(t, out.GetLine()) {
		assert.Equal(t, "JR山手線", out.GetLine().GetNameShort())
		assert.Equal(t, "JR東日本", out.GetLine().GetCompany().GetName())
	}

	// The transfer station stays one hop deep, no recursion.
	if assert.Len(t, out.GetLines(), 1) {
		transfer := out.GetLines()[0].GetStation()
		if assert.NotNil(t, transfer) {
			assert.Empty(t, transfer.GetLines())
			assert.Nil(t, transfer.GetLine())
		}
	}
}

func TestStationToPB_Nil(t *testing.T) {
	assert.Nil(t, stationToPB(nil))
	assert.Nil(t, lineToPB(nil))
	assert.Nil(t, companyToPB(nil))
	assert.Nil(t, trainTypeToPB(nil))
	assert.Nil(t, routeToPB(nil))
}

func TestTrainTypeToPB(t *testing.T) {
	tt := &domain.TrainType{
		SSTID:   42,
		TypeID:  11,
		GroupID: 301,
		Name:    "快特",
		Color:   "#DC143C",
		Kind:    1,
		Lines: []*domain.Line{
			{ID: 27001, Name: "京急本線"},
			{ID: 99336, Name: "久里浜線"},
		},
		Line: &domain.Line{ID: 27001, Name: "京急本線"},
	}

	out := trainTypeToPB(tt)

	assert.Equal(t, uint32(42), out.GetId())
	assert.Equal(t, uint32(11), out.GetTypeId())
	assert.Equal(t, uint32(301), out.GetGroupId())
	assert.Equal(t, "快特", out.GetName())
	assert.Equal(t, uint32(1), out.GetKind())
	assert.Len(t, out.GetLines(), 2)
	assert.Equal(t, "京急本線", out.GetLine().GetNameShort())
}

func TestStationWireRoundTrip(t *testing.T) {
	in := &pb.Station{
		Id:            1130208,
		GroupId:       1130208,
		Name:          "渋谷",
		NameKatakana:  "シブヤ",
		Latitude:      35.658871,
		Longitude:     139.701238,
		StopCondition: pb.StopCondition_WEEKDAY,
		HasTrainTypes: true,
		StationNumbers: []*pb.StationNumber{
			{LineSymbol: "JY", StationNumber: "JY-20"},
		},
		Line: &pb.Line{Id: 11302, NameShort: "JR山手線"},
	}

	raw, err := proto.Marshal(in)
	require.NoError(t, err)

	out := new(pb.Station)
	require.NoError(t, proto.Unmarshal(raw, out))

	assert.Equal(t, in.GetId(), out.GetId())
	assert.Equal(t, in.GetName(), out.GetName())
	assert.Equal(t, in.GetLatitude(), out.GetLatitude())
	assert.Equal(t, in.GetStopCondition(), out.GetStopCondition())
	assert.Equal(t, in.GetHasTrainTypes(), out.GetHasTrainTypes())
	require.Len(t, out.GetStationNumbers(), 1)
	assert.Equal(t, "JY-20", out.GetStationNumbers()[0].GetStationNumber())
	require.NotNil(t, out.GetLine())
	assert.Equal(t, uint32(11302), out.GetLine().GetId())
}
