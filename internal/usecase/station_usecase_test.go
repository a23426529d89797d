package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/TrainLCD/StationAPI/internal/domain"
	apperrors "github.com/TrainLCD/StationAPI/internal/pkg/errors"
	"github.com/TrainLCD/StationAPI/internal/usecase"
)

func yamanoteLine() *domain.Line {
	return &domain.Line{
		ID:        11302,
		CompanyID: 2,
		Name:      "JR山手線",
		Color:     "#80C241",
		SymbolSlots: [4]domain.SymbolSlot{
			{Symbol: "JY", Shape: "SQUARE"},
		},
	}
}

func toyokoLine() *domain.Line {
	return &domain.Line{
		ID:        26001,
		CompanyID: 155,
		Name:      "東急東横線",
		Color:     "#DA0442",
		SymbolSlots: [4]domain.SymbolSlot{
			{Symbol: "TY", Shape: "SQUARE"},
		},
	}
}

func shibuyaJY() *domain.Station {
	return &domain.Station{
		ID:         1130208,
		GroupID:    1130208,
		Name:       "渋谷",
		LineID:     11302,
		RawNumbers: [4]string{"20", "", "", ""},
		Line:       yamanoteLine(),
	}
}

func shibuyaTY() *domain.Station {
	return &domain.Station{
		ID:         2600101,
		GroupID:    1130208,
		Name:       "渋谷",
		LineID:     26001,
		RawNumbers: [4]string{"01", "", "", ""},
		Line:       toyokoLine(),
	}
}

type stationMocks struct {
	stations   *MockStationRepository
	lines      *MockLineRepository
	companies  *MockCompanyRepository
	trainTypes *MockTrainTypeRepository
}

func newStationUseCase(t *testing.T) (*usecase.StationUseCase, *stationMocks) {
	t.Helper()
	m := &stationMocks{
		stations:   new(MockStationRepository),
		lines:      new(MockLineRepository),
		companies:  new(MockCompanyRepository),
		trainTypes: new(MockTrainTypeRepository),
	}
	uc := usecase.NewStationUseCase(m.stations, m.lines, m.companies, m.trainTypes, zap.NewNop())
	return uc, m
}

// expectEnrich wires the sibling, line, company and train-type reads the
// inflation step performs for the Shibuya group fixture.
func (m *stationMocks) expectEnrich(trainTypes []*domain.TrainType) {
	jr := yamanoteLine()
	jr.StationGroupID = 1130208
	ty := toyokoLine()
	ty.StationGroupID = 1130208

	m.stations.On("GetByGroupIDs", mock.Anything, []int64{1130208}).
		Return([]*domain.Station{shibuyaJY(), shibuyaTY()}, nil).Once()
	m.lines.On("GetByGroupIDs", mock.Anything, []int64{1130208}).
		Return([]*domain.Line{jr, ty}, nil).Once()
	m.companies.On("GetByIDs", mock.Anything, []int64{2, 155}).
		Return([]*domain.Company{
			{ID: 2, Name: "JR東日本"},
			{ID: 155, Name: "東急電鉄"},
		}, nil).Once()
	m.trainTypes.On("GetByStationIDs", mock.Anything, []int64{1130208, 2600101}, (*int64)(nil)).
		Return(trainTypes, nil).Once()
}

func TestFindStationByID(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.stations.On("FindByID", mock.Anything, int64(1130208)).Return(shibuyaJY(), nil).Once()
	m.expectEnrich(nil)

	got, err := uc.FindStationByID(context.Background(), 1130208)
	assert.NoError(t, err)
	assert.NotNil(t, got)

	// Own line carries its company and derived symbols.
	if assert.NotNil(t, got.Line) {
		assert.Equal(t, "JR東日本", got.Line.Company.Name)
		if assert.Len(t, got.Line.Symbols, 1) {
			assert.Equal(t, "JY", got.Line.Symbols[0].Symbol)
			assert.Equal(t, "#80C241", got.Line.Symbols[0].Color)
		}
	}

	// Numbering is derived from the line's first symbol slot.
	if assert.Len(t, got.StationNumbers, 1) {
		assert.Equal(t, "JY-20", got.StationNumbers[0].StationNumber)
		assert.Equal(t, "#80C241", got.StationNumbers[0].LineSymbolColor)
	}

	// Every line of the group is present, each with its transfer station
	// one hop deep.
	if assert.Len(t, got.Lines, 2) {
		assert.Equal(t, int64(11302), got.Lines[0].ID)
		assert.Equal(t, int64(26001), got.Lines[1].ID)
		if assert.NotNil(t, got.Lines[1].Station) {
			transfer := got.Lines[1].Station
			assert.Equal(t, int64(2600101), transfer.ID)
			assert.Nil(t, transfer.Lines)
			if assert.Len(t, transfer.StationNumbers, 1) {
				assert.Equal(t, "TY-01", transfer.StationNumbers[0].StationNumber)
			}
		}
		assert.Equal(t, "東急電鉄", got.Lines[1].Company.Name)
	}

	m.stations.AssertExpectations(t)
	m.lines.AssertExpectations(t)
	m.companies.AssertExpectations(t)
	m.trainTypes.AssertExpectations(t)
}

func TestFindStationByID_NotFound(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.stations.On("FindByID", mock.Anything, int64(999)).Return(nil, nil).Once()

	got, err := uc.FindStationByID(context.Background(), 999)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrStationNotFound)

	// No inflation reads happen for a miss.
	m.stations.AssertNotCalled(t, "GetByGroupIDs", mock.Anything, mock.Anything)
}

func TestGetStationsByIDs_PreservesInputOrderWithBatchedReads(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.stations.On("GetByIDs", mock.Anything, []int64{2600101, 1130208}).
		Return([]*domain.Station{shibuyaTY(), shibuyaJY()}, nil).Once()
	m.expectEnrich(nil)

	got, err := uc.GetStationsByIDs(context.Background(), []int64{2600101, 1130208})
	assert.NoError(t, err)
	if assert.Len(t, got, 2) {
		assert.Equal(t, int64(2600101), got[0].ID)
		assert.Equal(t, int64(1130208), got[1].ID)
	}

	// Two stations of the same group cost exactly one read per concern.
	m.stations.AssertNumberOfCalls(t, "GetByGroupIDs", 1)
	m.lines.AssertNumberOfCalls(t, "GetByGroupIDs", 1)
	m.companies.AssertNumberOfCalls(t, "GetByIDs", 1)
	m.trainTypes.AssertNumberOfCalls(t, "GetByStationIDs", 1)
}

func TestGetStationsByIDs_Empty(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.stations.On("GetByIDs", mock.Anything, []int64{42}).
		Return([]*domain.Station{}, nil).Once()

	got, err := uc.GetStationsByIDs(context.Background(), []int64{42})
	assert.NoError(t, err)
	assert.Empty(t, got)

	m.stations.AssertNotCalled(t, "GetByGroupIDs", mock.Anything, mock.Anything)
	m.companies.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestGetStationsByCoordinates_DefaultLimit(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.stations.On("GetByCoordinates", mock.Anything, 35.658871, 139.701238, int64(1)).
		Return([]*domain.Station{shibuyaJY()}, nil).Once()
	m.expectEnrich(nil)

	got, err := uc.GetStationsByCoordinates(context.Background(), 35.658871, 139.701238, 0)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	m.stations.AssertExpectations(t)
}

func TestGetStationsByGroupID_CollapsesDuplicateRows(t *testing.T) {
	uc, m := newStationUseCase(t)

	// Group reads return one row per stopping pattern; the same station
	// twice must come back once.
	m.stations.On("GetByGroupID", mock.Anything, int64(1130208)).
		Return([]*domain.Station{shibuyaJY(), shibuyaJY(), shibuyaTY()}, nil).Once()
	m.expectEnrich(nil)

	got, err := uc.GetStationsByGroupID(context.Background(), 1130208)
	assert.NoError(t, err)
	if assert.Len(t, got, 2) {
		assert.Equal(t, int64(1130208), got[0].ID)
		assert.Equal(t, int64(2600101), got[1].ID)
	}
}

func TestGetStationsByLineGroupID_PassesGroupToTypeRead(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.stations.On("GetByLineGroupID", mock.Anything, int64(301)).
		Return([]*domain.Station{shibuyaJY()}, nil).Once()
	m.stations.On("GetByGroupIDs", mock.Anything, []int64{1130208}).
		Return([]*domain.Station{shibuyaJY()}, nil).Once()
	jr := yamanoteLine()
	jr.StationGroupID = 1130208
	m.lines.On("GetByGroupIDs", mock.Anything, []int64{1130208}).
		Return([]*domain.Line{jr}, nil).Once()
	m.companies.On("GetByIDs", mock.Anything, []int64{2}).
		Return([]*domain.Company{{ID: 2, Name: "JR東日本"}}, nil).Once()
	m.trainTypes.On("GetByStationIDs", mock.Anything, []int64{1130208}, mock.MatchedBy(func(p *int64) bool {
		return p != nil && *p == 301
	})).Return(nil, nil).Once()

	got, err := uc.GetStationsByLineGroupID(context.Background(), 301)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	m.trainTypes.AssertExpectations(t)
}

func TestGetStationsByLineID_ForwardsCursorAndDirection(t *testing.T) {
	uc, m := newStationUseCase(t)

	from := int64(1130208)
	direction := int64(1)
	m.stations.On("GetByLineID", mock.Anything, int64(11302), &from, &direction).
		Return([]*domain.Station{shibuyaJY()}, nil).Once()
	m.expectEnrich(nil)

	got, err := uc.GetStationsByLineID(context.Background(), 11302, &from, &direction)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	m.stations.AssertExpectations(t)
}

func TestEnrich_AttachesStationTrainType(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.stations.On("GetByIDs", mock.Anything, []int64{1130208}).
		Return([]*domain.Station{shibuyaJY()}, nil).Once()
	m.expectEnrich([]*domain.TrainType{
		{SSTID: 7, StationID: 1130208, TypeID: 11, GroupID: 301, Name: "急行", Priority: 5},
		{SSTID: 8, StationID: 1130208, TypeID: 12, GroupID: 302, Name: "各駅停車", Priority: 0},
	})

	got, err := uc.GetStationsByIDs(context.Background(), []int64{1130208})
	assert.NoError(t, err)
	if assert.Len(t, got, 1) && assert.NotNil(t, got[0].TrainType) {
		// The best-ranked type stopping there wins.
		assert.Equal(t, "急行", got[0].TrainType.Name)
	}
}

func TestGetStationsByName_DefaultLimit(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.stations.On("GetByName", mock.Anything, "渋谷", int64(10), (*int64)(nil)).
		Return([]*domain.Station{shibuyaJY()}, nil).Once()
	m.expectEnrich(nil)

	got, err := uc.GetStationsByName(context.Background(), "渋谷", 0, nil)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	m.stations.AssertExpectations(t)
}

func TestEnrich_PropagatesRepositoryError(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.stations.On("GetByIDs", mock.Anything, []int64{1130208}).
		Return([]*domain.Station{shibuyaJY()}, nil).Once()
	m.stations.On("GetByGroupIDs", mock.Anything, []int64{1130208}).
		Return(nil, apperrors.ErrInternalServer).Once()

	got, err := uc.GetStationsByIDs(context.Background(), []int64{1130208})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrInternalServer)
}

func TestGetTrainTypesByStationID(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.trainTypes.On("GetByStationID", mock.Anything, int64(1130208)).
		Return([]*domain.TrainType{
			{SSTID: 7, StationID: 1130208, TypeID: 11, GroupID: 301, Name: "急行"},
		}, nil).Once()

	member := toyokoLine()
	member.LineGroupID = 301
	m.lines.On("GetByLineGroupIDs", mock.Anything, []int64{301}).
		Return([]*domain.Line{member}, nil).Once()
	m.lines.On("FindByStationID", mock.Anything, int64(1130208)).
		Return(yamanoteLine(), nil).Once()
	m.companies.On("GetByIDs", mock.Anything, []int64{155, 2}).
		Return([]*domain.Company{
			{ID: 2, Name: "JR東日本"},
			{ID: 155, Name: "東急電鉄"},
		}, nil).Once()

	got, err := uc.GetTrainTypesByStationID(context.Background(), 1130208)
	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		tt := got[0]
		if assert.Len(t, tt.Lines, 1) {
			assert.Equal(t, int64(26001), tt.Lines[0].ID)
			assert.Equal(t, "東急電鉄", tt.Lines[0].Company.Name)
		}
		if assert.NotNil(t, tt.Line) {
			assert.Equal(t, int64(11302), tt.Line.ID)
			assert.Equal(t, "JR東日本", tt.Line.Company.Name)
		}
	}
}

func TestGetTrainTypesByStationID_NoneStopping(t *testing.T) {
	uc, m := newStationUseCase(t)

	m.trainTypes.On("GetByStationID", mock.Anything, int64(1130208)).
		Return([]*domain.TrainType{}, nil).Once()

	got, err := uc.GetTrainTypesByStationID(context.Background(), 1130208)
	assert.NoError(t, err)
	assert.Empty(t, got)

	m.lines.AssertNotCalled(t, "GetByLineGroupIDs", mock.Anything, mock.Anything)
}
