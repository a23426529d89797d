package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/domain/repository"
	"github.com/TrainLCD/StationAPI/internal/pkg/errors"
)

const trainTypeColumns = `
	sst.id AS sst_id, sst.station_cd, sst.type_cd, sst.line_group_cd, sst.pass,
	t.type_name, t.type_name_k, t.type_name_r, t.type_name_zh, t.type_name_ko,
	t.color, t.direction, t.kind, t.priority`

const trainTypeJoins = `
	FROM station_station_types sst
	JOIN types t ON t.type_cd = sst.type_cd
	JOIN stations s ON s.station_cd = sst.station_cd`

// Rows the wire should not see: inactive stations always, and pass = 1 rows
// unless the type's priority marks it dominant anyway.
const trainTypeFilter = ` s.e_status = 0 AND (sst.pass <> 1 OR t.priority > 0)`

type trainTypeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTrainTypeRepository(db *DB) repository.TrainTypeRepository {
	return &trainTypeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *trainTypeRepository) GetByStationID(ctx context.Context, stationID int64) ([]*domain.TrainType, error) {
	query := `SELECT ` + trainTypeColumns + trainTypeJoins + `
		WHERE sst.station_cd = $1 AND` + trainTypeFilter + `
		ORDER BY t.priority DESC, sst.id`

	return r.selectTrainTypes(ctx, query, stationID)
}

func (r *trainTypeRepository) GetByStationIDs(ctx context.Context, stationIDs []int64, lineGroupID *int64) ([]*domain.TrainType, error) {
	if len(stationIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + trainTypeColumns + trainTypeJoins + `
		WHERE sst.station_cd = ANY($1) AND` + trainTypeFilter
	args := []interface{}{pq.Array(stationIDs)}

	if lineGroupID != nil {
		query += ` AND sst.line_group_cd = $2`
		args = append(args, *lineGroupID)
	}

	query += ` ORDER BY t.priority DESC, sst.id`

	return r.selectTrainTypes(ctx, query, args...)
}

func (r *trainTypeRepository) GetByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.TrainType, error) {
	return r.GetByLineGroupIDs(ctx, []int64{lineGroupID})
}

func (r *trainTypeRepository) GetByLineGroupIDs(ctx context.Context, lineGroupIDs []int64) ([]*domain.TrainType, error) {
	if len(lineGroupIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + trainTypeColumns + trainTypeJoins + `
		WHERE sst.line_group_cd = ANY($1) AND` + trainTypeFilter + `
		ORDER BY t.priority DESC, sst.id`

	return r.selectTrainTypes(ctx, query, pq.Array(lineGroupIDs))
}

func (r *trainTypeRepository) FindByLineGroupIDAndLineID(ctx context.Context, lineGroupID, lineID int64) (*domain.TrainType, error) {
	query := `SELECT ` + trainTypeColumns + trainTypeJoins + `
		WHERE sst.line_group_cd = $1 AND s.line_cd = $2 AND` + trainTypeFilter + `
		ORDER BY t.priority DESC, sst.id
		LIMIT 1`

	var row trainTypeRow
	err := r.db.GetContext(ctx, &row, query, lineGroupID, lineID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find train type",
			zap.Int64("line_group_cd", lineGroupID),
			zap.Int64("line_cd", lineID),
			zap.Error(err))
		return nil, errors.Database(err)
	}

	return row.toDomain(), nil
}

func (r *trainTypeRepository) selectTrainTypes(ctx context.Context, query string, args ...interface{}) ([]*domain.TrainType, error) {
	var rows []trainTypeRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to select train types", zap.Error(err))
		return nil, errors.Database(err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	trainTypes := make([]*domain.TrainType, 0, len(rows))
	for i := range rows {
		trainTypes = append(trainTypes, rows[i].toDomain())
	}
	return trainTypes, nil
}
