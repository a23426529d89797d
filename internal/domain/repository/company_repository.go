package repository

import (
	"context"

	"github.com/TrainLCD/StationAPI/internal/domain"
)

// CompanyRepository reads railway operators.
type CompanyRepository interface {
	// GetByIDs returns the active companies among ids.
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Company, error)
}
