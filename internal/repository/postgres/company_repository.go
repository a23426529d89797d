package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/domain/repository"
	"github.com/TrainLCD/StationAPI/internal/pkg/errors"
)

type companyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCompanyRepository(db *DB) repository.CompanyRepository {
	return &companyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *companyRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT
			c.company_cd, c.rr_cd, c.company_name, c.company_name_k,
			c.company_name_h, c.company_name_r, c.company_name_en,
			c.company_name_full_en, c.company_url, c.company_type,
			c.e_status, c.e_sort
		FROM companies c
		WHERE c.company_cd = ANY($1) AND c.e_status = 0
		ORDER BY c.e_sort, c.company_cd`

	var rows []companyRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get companies by ids", zap.Error(err))
		return nil, errors.Database(err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	companies := make([]*domain.Company, 0, len(rows))
	for i := range rows {
		companies = append(companies, rows[i].toDomain())
	}
	return companies, nil
}
