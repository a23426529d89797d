package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/domain/repository"
	"github.com/TrainLCD/StationAPI/internal/pkg/errors"
)

type LineUseCase struct {
	lineRepo    repository.LineRepository
	companyRepo repository.CompanyRepository
	logger      *zap.Logger
}

func NewLineUseCase(
	lineRepo repository.LineRepository,
	companyRepo repository.CompanyRepository,
	logger *zap.Logger,
) *LineUseCase {
	return &LineUseCase{
		lineRepo:    lineRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *LineUseCase) FindLineByID(ctx context.Context, id int64) (*domain.Line, error) {
	line, err := uc.lineRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to find line", zap.Int64("line_cd", id), zap.Error(err))
		return nil, err
	}
	if line == nil {
		return nil, errors.ErrLineNotFound
	}

	companiesByID, err := uc.companiesByID(ctx, []int64{line.CompanyID})
	if err != nil {
		return nil, err
	}

	line.Symbols = domain.BuildLineSymbols(line)
	line.Company = companiesByID[line.CompanyID]
	return line, nil
}

func (uc *LineUseCase) GetLinesByName(ctx context.Context, name string, limit int64) ([]*domain.Line, error) {
	if limit <= 0 {
		limit = defaultNameSearchLimit
	}

	lines, err := uc.lineRepo.GetByName(ctx, name, limit)
	if err != nil {
		uc.logger.Error("Failed to get lines by name", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	companyIDs := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.CompanyID]; ok {
			continue
		}
		seen[l.CompanyID] = struct{}{}
		companyIDs = append(companyIDs, l.CompanyID)
	}

	companiesByID, err := uc.companiesByID(ctx, companyIDs)
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		l.Symbols = domain.BuildLineSymbols(l)
		l.Company = companiesByID[l.CompanyID]
	}
	return lines, nil
}

func (uc *LineUseCase) companiesByID(ctx context.Context, ids []int64) (map[int64]*domain.Company, error) {
	companies, err := uc.companyRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.Company, len(companies))
	for _, c := range companies {
		byID[c.ID] = c
	}
	return byID, nil
}
