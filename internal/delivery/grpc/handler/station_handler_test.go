package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/pb"
	apperrors "github.com/TrainLCD/StationAPI/internal/pkg/errors"
)

type mockStationUC struct {
	mock.Mock
}

func (m *mockStationUC) FindStationByID(ctx context.Context, id int64) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

func (m *mockStationUC) GetStationsByIDs(ctx context.Context, ids []int64) ([]*domain.Station, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *mockStationUC) GetStationsByGroupID(ctx context.Context, groupID int64) ([]*domain.Station, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *mockStationUC) GetStationsByCoordinates(ctx context.Context, latitude, longitude float64, limit int64) ([]*domain.Station, error) {
	args := m.Called(ctx, latitude, longitude, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *mockStationUC) GetStationsByLineID(ctx context.Context, lineID int64, fromStationID, directionID *int64) ([]*domain.Station, error) {
	args := m.Called(ctx, lineID, fromStationID, directionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *mockStationUC) GetStationsByName(ctx context.Context, name string, limit int64, fromGroupID *int64) ([]*domain.Station, error) {
	args := m.Called(ctx, name, limit, fromGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *mockStationUC) GetStationsByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.Station, error) {
	args := m.Called(ctx, lineGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *mockStationUC) GetTrainTypesByStationID(ctx context.Context, stationID int64) ([]*domain.TrainType, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainType), args.Error(1)
}

type mockLineUC struct {
	mock.Mock
}

func (m *mockLineUC) FindLineByID(ctx context.Context, id int64) (*domain.Line, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Line), args.Error(1)
}

func (m *mockLineUC) GetLinesByName(ctx context.Context, name string, limit int64) ([]*domain.Line, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

type mockRouteUC struct {
	mock.Mock
}

func (m *mockRouteUC) GetRoutes(ctx context.Context, fromGroupID, toGroupID int64) ([]*domain.Route, error) {
	args := m.Called(ctx, fromGroupID, toGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Route), args.Error(1)
}

func (m *mockRouteUC) GetRouteTypes(ctx context.Context, fromGroupID, toGroupID int64) ([]*domain.TrainType, error) {
	args := m.Called(ctx, fromGroupID, toGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainType), args.Error(1)
}

func (m *mockRouteUC) GetConnectedRoutes(ctx context.Context, fromGroupID, toGroupID int64) ([]*domain.Route, error) {
	args := m.Called(ctx, fromGroupID, toGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Route), args.Error(1)
}

func newHandler(t *testing.T) (*StationHandler, *mockStationUC, *mockLineUC, *mockRouteUC) {
	t.Helper()
	stationUC := new(mockStationUC)
	lineUC := new(mockLineUC)
	routeUC := new(mockRouteUC)
	return NewStationHandler(stationUC, lineUC, routeUC, zap.NewNop()), stationUC, lineUC, routeUC
}

func TestGetStationById(t *testing.T) {
	h, stationUC, _, _ := newHandler(t)

	distance := 12.5
	stationUC.On("FindStationByID", mock.Anything, int64(1130208)).Return(&domain.Station{
		ID:       1130208,
		GroupID:  1130208,
		Name:     "渋谷",
		Distance: &distance,
		StationNumbers: []*domain.StationNumber{
			{LineSymbol: "JY", LineSymbolColor: "#80C241", LineSymbolShape: "SQUARE", StationNumber: "JY-20"},
		},
		StopCondition: domain.StopConditionPartial,
	}, nil).Once()

	resp, err := h.GetStationById(context.Background(), &pb.GetStationByIdRequest{Id: 1130208})
	assert.NoError(t, err)
	if assert.NotNil(t, resp.GetStation()) {
		s := resp.GetStation()
		assert.Equal(t, uint32(1130208), s.GetId())
		assert.Equal(t, "渋谷", s.GetName())
		assert.Equal(t, 12.5, s.GetDistance())
		assert.Equal(t, pb.StopCondition_PARTIAL, s.GetStopCondition())
		if assert.Len(t, s.GetStationNumbers(), 1) {
			assert.Equal(t, "JY-20", s.GetStationNumbers()[0].GetStationNumber())
		}
	}
}

func TestGetStationById_NotFound(t *testing.T) {
	h, stationUC, _, _ := newHandler(t)

	stationUC.On("FindStationByID", mock.Anything, int64(0)).
		Return(nil, apperrors.ErrStationNotFound).Once()

	resp, err := h.GetStationById(context.Background(), &pb.GetStationByIdRequest{Id: 0})
	assert.Nil(t, resp)
	st, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestGetStationById_InfrastructureFailure(t *testing.T) {
	h, stationUC, _, _ := newHandler(t)

	stationUC.On("FindStationByID", mock.Anything, int64(1)).
		Return(nil, apperrors.Unexpected("connection reset")).Once()

	_, err := h.GetStationById(context.Background(), &pb.GetStationByIdRequest{Id: 1})
	st, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
}

func TestGetStationsByLineId_ZeroMeansAbsent(t *testing.T) {
	h, stationUC, _, _ := newHandler(t)

	stationUC.On("GetStationsByLineID", mock.Anything, int64(11302), (*int64)(nil), (*int64)(nil)).
		Return([]*domain.Station{}, nil).Once()

	_, err := h.GetStationsByLineId(context.Background(), &pb.GetStationsByLineIdRequest{LineId: 11302})
	assert.NoError(t, err)
	stationUC.AssertExpectations(t)
}

func TestGetStationsByLineId_ForwardsCursor(t *testing.T) {
	h, stationUC, _, _ := newHandler(t)

	stationUC.On("GetStationsByLineID", mock.Anything, int64(11302),
		mock.MatchedBy(func(p *int64) bool { return p != nil && *p == 1130208 }),
		mock.MatchedBy(func(p *int64) bool { return p != nil && *p == 2 }),
	).Return([]*domain.Station{}, nil).Once()

	_, err := h.GetStationsByLineId(context.Background(), &pb.GetStationsByLineIdRequest{
		LineId:      11302,
		StationId:   1130208,
		DirectionId: 2,
	})
	assert.NoError(t, err)
	stationUC.AssertExpectations(t)
}

func TestGetRoutes_EmptyPageToken(t *testing.T) {
	h, _, _, routeUC := newHandler(t)

	routeUC.On("GetRoutes", mock.Anything, int64(1), int64(2)).
		Return([]*domain.Route{{ID: 301, Stops: []*domain.Station{{ID: 1}}}}, nil).Once()

	resp, err := h.GetRoutes(context.Background(), &pb.GetRoutesRequest{
		FromStationGroupId: 1,
		ToStationGroupId:   2,
	})
	assert.NoError(t, err)
	assert.Len(t, resp.GetRoutes(), 1)
	assert.Empty(t, resp.GetNextPageToken())
}

func TestGetConnectedRoutes_Empty(t *testing.T) {
	h, _, _, routeUC := newHandler(t)

	routeUC.On("GetConnectedRoutes", mock.Anything, int64(1), int64(2)).
		Return(nil, nil).Once()

	resp, err := h.GetConnectedRoutes(context.Background(), &pb.GetConnectedRoutesRequest{
		FromStationGroupId: 1,
		ToStationGroupId:   2,
	})
	assert.NoError(t, err)
	assert.Empty(t, resp.GetRoutes())
}

func TestGetLineById(t *testing.T) {
	h, _, lineUC, _ := newHandler(t)

	lineUC.On("FindLineByID", mock.Anything, int64(11302)).Return(&domain.Line{
		ID:    11302,
		Name:  "JR山手線",
		Color: "#80C241",
		Symbols: []*domain.LineSymbol{
			{Symbol: "JY", Color: "#80C241", Shape: "SQUARE"},
		},
		Company: &domain.Company{ID: 2, Name: "JR東日本"},
	}, nil).Once()

	resp, err := h.GetLineById(context.Background(), &pb.GetLineByIdRequest{LineId: 11302})
	assert.NoError(t, err)
	if assert.NotNil(t, resp.GetLine()) {
		l := resp.GetLine()
		assert.Equal(t, "JR山手線", l.GetNameShort())
		if assert.Len(t, l.GetLineSymbols(), 1) {
			assert.Equal(t, "JY", l.GetLineSymbols()[0].GetSymbol())
		}
		assert.Equal(t, "JR東日本", l.GetCompany().GetName())
	}
}

func TestGetLineById_NotFound(t *testing.T) {
	h, _, lineUC, _ := newHandler(t)

	lineUC.On("FindLineByID", mock.Anything, int64(999)).
		Return(nil, apperrors.ErrLineNotFound).Once()

	_, err := h.GetLineById(context.Background(), &pb.GetLineByIdRequest{LineId: 999})
	st, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}
