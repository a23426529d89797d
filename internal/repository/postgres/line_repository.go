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
	"github.com/TrainLCD/StationAPI/internal/pkg/kana"
)

const lineColumns = `
	l.line_cd, l.company_cd,
	COALESCE(a.line_name, l.line_name) AS line_name,
	COALESCE(a.line_name_k, l.line_name_k) AS line_name_k,
	COALESCE(a.line_name_h, l.line_name_h) AS line_name_h,
	COALESCE(a.line_name_r, l.line_name_r) AS line_name_r,
	COALESCE(a.line_name_zh, l.line_name_zh) AS line_name_zh,
	COALESCE(a.line_name_ko, l.line_name_ko) AS line_name_ko,
	COALESCE(a.line_color_c, l.line_color_c) AS line_color_c,
	l.line_type,
	l.line_symbol1, l.line_symbol2, l.line_symbol3, l.line_symbol4,
	l.line_symbol1_color, l.line_symbol2_color, l.line_symbol3_color, l.line_symbol4_color,
	l.line_symbol1_shape, l.line_symbol2_shape, l.line_symbol3_shape, l.line_symbol4_shape,
	l.e_status, l.e_sort, l.average_distance`

type lineRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLineRepository(db *DB) repository.LineRepository {
	return &lineRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *lineRepository) FindByID(ctx context.Context, id int64) (*domain.Line, error) {
	query := `SELECT ` + lineColumns + `
		FROM lines l
		LEFT JOIN line_aliases la ON la.line_cd = l.line_cd
		LEFT JOIN aliases a ON a.id = la.alias_cd
		WHERE l.line_cd = $1 AND l.e_status = 0
		LIMIT 1`

	var row lineRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find line by id", zap.Int64("line_cd", id), zap.Error(err))
		return nil, errors.Database(err)
	}

	return row.toDomain(), nil
}

func (r *lineRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Line, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT * FROM (
			SELECT DISTINCT ON (l.line_cd) ` + lineColumns + `
			FROM lines l
			LEFT JOIN line_aliases la ON la.line_cd = l.line_cd
			LEFT JOIN aliases a ON a.id = la.alias_cd
			WHERE l.line_cd = ANY($1) AND l.e_status = 0
			ORDER BY l.line_cd
		) sq
		ORDER BY sq.e_sort, sq.line_cd`

	return r.selectLines(ctx, query, pq.Array(ids))
}

func (r *lineRepository) FindByStationID(ctx context.Context, stationID int64) (*domain.Line, error) {
	query := `SELECT ` + lineColumns + `, s.station_g_cd
		FROM lines l
		JOIN stations s ON s.line_cd = l.line_cd AND s.station_cd = $1
		LEFT JOIN line_aliases la ON la.line_cd = l.line_cd AND la.station_cd = s.station_cd
		LEFT JOIN aliases a ON a.id = la.alias_cd
		WHERE l.e_status = 0
		LIMIT 1`

	var row lineRow
	err := r.db.GetContext(ctx, &row, query, stationID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find line by station id", zap.Int64("station_cd", stationID), zap.Error(err))
		return nil, errors.Database(err)
	}

	return row.toDomain(), nil
}

func (r *lineRepository) GetByGroupID(ctx context.Context, groupID int64) ([]*domain.Line, error) {
	return r.GetByGroupIDs(ctx, []int64{groupID})
}

func (r *lineRepository) GetByGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.Line, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	// The alias join goes through the group's own station so per-group
	// overrides land on the right rows.
	query := `SELECT * FROM (
			SELECT DISTINCT ON (s.station_g_cd, l.line_cd) ` + lineColumns + `, s.station_g_cd
			FROM lines l
			JOIN stations s ON s.line_cd = l.line_cd
			LEFT JOIN line_aliases la ON la.line_cd = l.line_cd AND la.station_cd = s.station_cd
			LEFT JOIN aliases a ON a.id = la.alias_cd
			WHERE s.station_g_cd = ANY($1) AND s.e_status = 0 AND l.e_status = 0
			ORDER BY s.station_g_cd, l.line_cd
		) sq
		ORDER BY sq.station_g_cd, sq.e_sort, sq.line_cd`

	return r.selectLines(ctx, query, pq.Array(groupIDs))
}

func (r *lineRepository) GetByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.Line, error) {
	return r.GetByLineGroupIDs(ctx, []int64{lineGroupID})
}

func (r *lineRepository) GetByLineGroupIDs(ctx context.Context, lineGroupIDs []int64) ([]*domain.Line, error) {
	if len(lineGroupIDs) == 0 {
		return nil, nil
	}

	query := `SELECT * FROM (
			SELECT DISTINCT ON (sst.line_group_cd, l.line_cd) ` + lineColumns + `, sst.line_group_cd
			FROM station_station_types sst
			JOIN stations s ON s.station_cd = sst.station_cd
			JOIN lines l ON l.line_cd = s.line_cd
			LEFT JOIN line_aliases la ON la.line_cd = l.line_cd AND la.station_cd = s.station_cd
			LEFT JOIN aliases a ON a.id = la.alias_cd
			WHERE sst.line_group_cd = ANY($1) AND s.e_status = 0 AND l.e_status = 0
			ORDER BY sst.line_group_cd, l.line_cd
		) sq
		ORDER BY sq.line_group_cd, sq.e_sort, sq.line_cd`

	return r.selectLines(ctx, query, pq.Array(lineGroupIDs))
}

func (r *lineRepository) GetByLineGroupIDsForRoutes(ctx context.Context, lineGroupIDs []int64) ([]*domain.Line, error) {
	if len(lineGroupIDs) == 0 {
		return nil, nil
	}

	// LEFT JOINs and no status filter on the station side, so lines whose
	// stations carry no active sst row still surface for route hydration.
	query := `SELECT * FROM (
			SELECT DISTINCT ON (sst.line_group_cd, l.line_cd) ` + lineColumns + `, sst.line_group_cd
			FROM station_station_types sst
			LEFT JOIN stations s ON s.station_cd = sst.station_cd
			LEFT JOIN lines l ON l.line_cd = s.line_cd
			LEFT JOIN line_aliases la ON la.line_cd = l.line_cd AND la.station_cd = s.station_cd
			LEFT JOIN aliases a ON a.id = la.alias_cd
			WHERE sst.line_group_cd = ANY($1) AND l.line_cd IS NOT NULL
			ORDER BY sst.line_group_cd, l.line_cd
		) sq
		ORDER BY sq.line_group_cd, sq.e_sort, sq.line_cd`

	return r.selectLines(ctx, query, pq.Array(lineGroupIDs))
}

func (r *lineRepository) GetByName(ctx context.Context, name string, limit int64) ([]*domain.Line, error) {
	pattern := "%" + name + "%"
	katakanaPattern := "%" + kana.HiraganaToKatakana(name) + "%"

	query := `SELECT * FROM (
			SELECT DISTINCT ON (l.line_cd) ` + lineColumns + `
			FROM lines l
			LEFT JOIN line_aliases la ON la.line_cd = l.line_cd
			LEFT JOIN aliases a ON a.id = la.alias_cd
			WHERE l.e_status = 0
			  AND (l.line_name LIKE $1
				OR l.line_name_k LIKE $2
				OR l.line_name_h LIKE $1
				OR l.line_name_r LIKE $1
				OR l.line_name_zh LIKE $1
				OR l.line_name_ko LIKE $1)
			ORDER BY l.line_cd
		) sq
		ORDER BY sq.e_sort, sq.line_cd
		LIMIT $3`

	return r.selectLines(ctx, query, pattern, katakanaPattern, limit)
}

func (r *lineRepository) selectLines(ctx context.Context, query string, args ...interface{}) ([]*domain.Line, error) {
	var rows []lineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to select lines", zap.Error(err))
		return nil, errors.Database(err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	lines := make([]*domain.Line, 0, len(rows))
	for i := range rows {
		lines = append(lines, rows[i].toDomain())
	}
	return lines, nil
}
