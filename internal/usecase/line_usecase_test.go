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

func newLineUseCase(t *testing.T) (*usecase.LineUseCase, *MockLineRepository, *MockCompanyRepository) {
	t.Helper()
	lines := new(MockLineRepository)
	companies := new(MockCompanyRepository)
	uc := usecase.NewLineUseCase(lines, companies, zap.NewNop())
	return uc, lines, companies
}

func TestFindLineByID(t *testing.T) {
	uc, lines, companies := newLineUseCase(t)

	lines.On("FindByID", mock.Anything, int64(11302)).Return(yamanoteLine(), nil).Once()
	companies.On("GetByIDs", mock.Anything, []int64{2}).
		Return([]*domain.Company{{ID: 2, Name: "JR東日本"}}, nil).Once()

	got, err := uc.FindLineByID(context.Background(), 11302)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "JR東日本", got.Company.Name)
		if assert.Len(t, got.Symbols, 1) {
			assert.Equal(t, "JY", got.Symbols[0].Symbol)
			// Slot one inherits the line colour when blank.
			assert.Equal(t, "#80C241", got.Symbols[0].Color)
		}
	}
}

func TestFindLineByID_NotFound(t *testing.T) {
	uc, lines, companies := newLineUseCase(t)

	lines.On("FindByID", mock.Anything, int64(999)).Return(nil, nil).Once()

	got, err := uc.FindLineByID(context.Background(), 999)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrLineNotFound)

	companies.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestGetLinesByName(t *testing.T) {
	uc, lines, companies := newLineUseCase(t)

	lines.On("GetByName", mock.Anything, "山手", int64(10)).
		Return([]*domain.Line{yamanoteLine()}, nil).Once()
	companies.On("GetByIDs", mock.Anything, []int64{2}).
		Return([]*domain.Company{{ID: 2, Name: "JR東日本"}}, nil).Once()

	// A non-positive limit falls back to the default.
	got, err := uc.GetLinesByName(context.Background(), "山手", 0)
	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "JR東日本", got[0].Company.Name)
		assert.Len(t, got[0].Symbols, 1)
	}
}

func TestGetLinesByName_NoMatch(t *testing.T) {
	uc, lines, companies := newLineUseCase(t)

	lines.On("GetByName", mock.Anything, "存在しない", int64(5)).
		Return([]*domain.Line{}, nil).Once()

	got, err := uc.GetLinesByName(context.Background(), "存在しない", 5)
	assert.NoError(t, err)
	assert.Empty(t, got)

	companies.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}
