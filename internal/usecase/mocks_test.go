package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TrainLCD/StationAPI/internal/domain"
)

type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) FindByID(ctx context.Context, id int64) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Station, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByLineID(ctx context.Context, lineID int64, fromStationID, directionID *int64) ([]*domain.Station, error) {
	args := m.Called(ctx, lineID, fromStationID, directionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByGroupID(ctx context.Context, groupID int64) ([]*domain.Station, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.Station, error) {
	args := m.Called(ctx, groupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByCoordinates(ctx context.Context, latitude, longitude float64, limit int64) ([]*domain.Station, error) {
	args := m.Called(ctx, latitude, longitude, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByName(ctx context.Context, name string, limit int64, fromGroupID *int64) ([]*domain.Station, error) {
	args := m.Called(ctx, name, limit, fromGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.Station, error) {
	args := m.Called(ctx, lineGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetRouteStops(ctx context.Context, fromGroupID, toGroupID int64, viaLineID *int64) ([]*domain.Route, error) {
	args := m.Called(ctx, fromGroupID, toGroupID, viaLineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Route), args.Error(1)
}

type MockLineRepository struct {
	mock.Mock
}

func (m *MockLineRepository) FindByID(ctx context.Context, id int64) (*domain.Line, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Line), args.Error(1)
}

func (m *MockLineRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Line, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

func (m *MockLineRepository) FindByStationID(ctx context.Context, stationID int64) (*domain.Line, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Line), args.Error(1)
}

func (m *MockLineRepository) GetByGroupID(ctx context.Context, groupID int64) ([]*domain.Line, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

func (m *MockLineRepository) GetByGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.Line, error) {
	args := m.Called(ctx, groupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

func (m *MockLineRepository) GetByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.Line, error) {
	args := m.Called(ctx, lineGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

func (m *MockLineRepository) GetByLineGroupIDs(ctx context.Context, lineGroupIDs []int64) ([]*domain.Line, error) {
	args := m.Called(ctx, lineGroupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

func (m *MockLineRepository) GetByLineGroupIDsForRoutes(ctx context.Context, lineGroupIDs []int64) ([]*domain.Line, error) {
	args := m.Called(ctx, lineGroupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

func (m *MockLineRepository) GetByName(ctx context.Context, name string, limit int64) ([]*domain.Line, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Company, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Company), args.Error(1)
}

type MockTrainTypeRepository struct {
	mock.Mock
}

func (m *MockTrainTypeRepository) GetByStationID(ctx context.Context, stationID int64) ([]*domain.TrainType, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainType), args.Error(1)
}

func (m *MockTrainTypeRepository) GetByStationIDs(ctx context.Context, stationIDs []int64, lineGroupID *int64) ([]*domain.TrainType, error) {
	args := m.Called(ctx, stationIDs, lineGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainType), args.Error(1)
}

func (m *MockTrainTypeRepository) GetByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.TrainType, error) {
	args := m.Called(ctx, lineGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainType), args.Error(1)
}

func (m *MockTrainTypeRepository) GetByLineGroupIDs(ctx context.Context, lineGroupIDs []int64) ([]*domain.TrainType, error) {
	args := m.Called(ctx, lineGroupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainType), args.Error(1)
}

func (m *MockTrainTypeRepository) FindByLineGroupIDAndLineID(ctx context.Context, lineGroupID, lineID int64) (*domain.TrainType, error) {
	args := m.Called(ctx, lineGroupID, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainType), args.Error(1)
}
