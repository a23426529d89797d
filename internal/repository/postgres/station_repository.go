package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/domain/repository"
	"github.com/TrainLCD/StationAPI/internal/pkg/errors"
	"github.com/TrainLCD/StationAPI/internal/pkg/kana"
)

// stationColumns is the canonical projection of a station joined to its
// owning line, with alias overrides coalesced in.
const stationColumns = `
	s.station_cd, s.station_g_cd, s.station_name, s.station_name_k,
	s.station_name_r, s.station_name_rn, s.station_name_zh, s.station_name_ko,
	s.station_number1, s.station_number2, s.station_number3, s.station_number4,
	s.three_letter_code,
	s.line_cd, s.pref_cd, s.post, s.address, s.lon, s.lat,
	s.open_ymd, s.close_ymd, s.e_status, s.e_sort,
	l.company_cd,
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
	l.average_distance,
	EXISTS (
		SELECT 1 FROM station_station_types sst_e
		WHERE sst_e.station_cd = s.station_cd
	) AS has_train_types`

const stationJoins = `
	FROM stations s
	JOIN lines l ON l.line_cd = s.line_cd
	LEFT JOIN line_aliases la ON la.station_cd = s.station_cd AND la.line_cd = s.line_cd
	LEFT JOIN aliases a ON a.id = la.alias_cd`

// stationTypeColumns extends the projection with the sst/types columns for
// queries routed through station_station_types.
const stationTypeColumns = stationColumns + `,
	sst.id AS sst_id, sst.type_cd, sst.line_group_cd, sst.pass,
	t.type_name, t.type_name_k, t.type_name_r, t.type_name_zh, t.type_name_ko,
	t.color AS type_color, t.direction, t.kind, t.priority`

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *stationRepository) FindByID(ctx context.Context, id int64) (*domain.Station, error) {
	query := `SELECT ` + stationColumns + stationJoins + `
		WHERE s.station_cd = $1 AND s.e_status = 0
		LIMIT 1`

	var row stationRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find station by id", zap.Int64("station_cd", id), zap.Error(err))
		return nil, errors.Database(err)
	}

	return row.toDomain(), nil
}

func (r *stationRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Station, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + stationColumns + stationJoins + `
		WHERE s.station_cd = ANY($1) AND s.e_status = 0`

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get stations by ids", zap.Error(err))
		return nil, errors.Database(err)
	}

	return restoreInputOrder(stationsToDomain(rows), ids), nil
}

func (r *stationRepository) GetByLineID(ctx context.Context, lineID int64, fromStationID, directionID *int64) ([]*domain.Station, error) {
	if fromStationID != nil {
		lineGroupCd, err := r.dominantLineGroup(ctx, *fromStationID, lineID)
		if err != nil {
			return nil, err
		}
		if lineGroupCd != nil {
			return r.getByLineGroupID(ctx, *lineGroupCd, reversed(directionID))
		}
	}

	order := `s.e_sort, s.station_cd`
	if reversed(directionID) {
		order = `s.e_sort DESC, s.station_cd DESC`
	}

	query := `SELECT ` + stationColumns + stationJoins + `
		WHERE s.line_cd = $1 AND s.e_status = 0
		ORDER BY ` + order

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, lineID); err != nil {
		r.logger.Error("Failed to get stations by line id", zap.Int64("line_cd", lineID), zap.Error(err))
		return nil, errors.Database(err)
	}

	return stationsToDomain(rows), nil
}

// dominantLineGroup picks the line group of the highest-priority "local"
// train type at a station, restricted to groups that actually contain the
// requested line. nil means the station has no such type and the caller
// falls back to the plain per-line stop list.
func (r *stationRepository) dominantLineGroup(ctx context.Context, stationID, lineID int64) (*int64, error) {
	query := `
		SELECT sst.line_group_cd
		FROM station_station_types sst
		JOIN types t ON t.type_cd = sst.type_cd
		WHERE sst.station_cd = $1
		  AND (t.kind IN (0, 1) OR t.priority > 0)
		  AND EXISTS (
			SELECT 1
			FROM station_station_types sst_l
			JOIN stations s_l ON s_l.station_cd = sst_l.station_cd
			WHERE sst_l.line_group_cd = sst.line_group_cd AND s_l.line_cd = $2
		  )
		ORDER BY t.priority DESC, sst.id
		LIMIT 1`

	var lineGroupCd int64
	err := r.db.GetContext(ctx, &lineGroupCd, query, stationID, lineID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to resolve dominant line group", zap.Int64("station_cd", stationID), zap.Error(err))
		return nil, errors.Database(err)
	}

	return &lineGroupCd, nil
}

func (r *stationRepository) GetByGroupID(ctx context.Context, groupID int64) ([]*domain.Station, error) {
	return r.GetByGroupIDs(ctx, []int64{groupID})
}

func (r *stationRepository) GetByGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.Station, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	// One row per (station, sst) combination.
	query := `SELECT ` + stationTypeColumns + stationJoins + `
		LEFT JOIN station_station_types sst ON sst.station_cd = s.station_cd
		LEFT JOIN types t ON t.type_cd = sst.type_cd
		WHERE s.station_g_cd = ANY($1) AND s.e_status = 0
		ORDER BY s.e_sort, s.station_cd, sst.id`

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(groupIDs)); err != nil {
		r.logger.Error("Failed to get stations by group ids", zap.Error(err))
		return nil, errors.Database(err)
	}

	return stationsToDomain(rows), nil
}

func (r *stationRepository) GetByCoordinates(ctx context.Context, latitude, longitude float64, limit int64) ([]*domain.Station, error) {
	if limit <= 0 {
		limit = 1
	}

	// Planar distance; one station per group (the nearest platform).
	query := `SELECT * FROM (
			SELECT DISTINCT ON (s.station_g_cd) ` + stationColumns + `,
				point($1, $2) <-> point(s.lat, s.lon) AS distance
			` + stationJoins + `
			WHERE s.e_status = 0
			ORDER BY s.station_g_cd, distance
		) sq
		ORDER BY sq.distance
		LIMIT $3`

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, latitude, longitude, limit); err != nil {
		r.logger.Error("Failed to get stations by coordinates", zap.Error(err))
		return nil, errors.Database(err)
	}

	return stationsToDomain(rows), nil
}

func (r *stationRepository) GetByName(ctx context.Context, name string, limit int64, fromGroupID *int64) ([]*domain.Station, error) {
	pattern := "%" + name + "%"
	katakanaPattern := "%" + kana.HiraganaToKatakana(name) + "%"

	query := `SELECT ` + stationColumns + stationJoins + `
		WHERE s.e_status = 0
		  AND (s.station_name LIKE $1
			OR s.station_name_k LIKE $2
			OR s.station_name_r LIKE $1
			OR s.station_name_rn LIKE $1
			OR s.station_name_zh LIKE $1
			OR s.station_name_ko LIKE $1)`
	args := []interface{}{pattern, katakanaPattern}

	if fromGroupID != nil {
		// Reachable from the origin group: shares a through-running group
		// with a non-pass stop there, or lies on a line the group serves.
		query += fmt.Sprintf(`
		  AND (EXISTS (
				SELECT 1 FROM station_station_types sst
				WHERE sst.station_cd = s.station_cd
				  AND sst.line_group_cd IN (
					SELECT sst_f.line_group_cd
					FROM station_station_types sst_f
					JOIN stations s_f ON s_f.station_cd = sst_f.station_cd
					WHERE s_f.station_g_cd = $%d AND s_f.e_status = 0 AND sst_f.pass <> 1
				  )
			)
			OR s.line_cd IN (
				SELECT s_g.line_cd FROM stations s_g
				WHERE s_g.station_g_cd = $%d AND s_g.e_status = 0
			))`, len(args)+1, len(args)+1)
		args = append(args, *fromGroupID)
	}

	// Deduplicate by station_cd before ordering by group and name.
	query = `SELECT * FROM (
			SELECT DISTINCT ON (inner_q.station_cd) inner_q.* FROM (` + query + `) inner_q
			ORDER BY inner_q.station_cd
		) sq
		ORDER BY sq.station_g_cd, sq.station_name
		LIMIT ` + fmt.Sprintf("$%d", len(args)+1)
	args = append(args, limit)

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to get stations by name", zap.String("name", name), zap.Error(err))
		return nil, errors.Database(err)
	}

	return stationsToDomain(rows), nil
}

func (r *stationRepository) GetByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.Station, error) {
	return r.getByLineGroupID(ctx, lineGroupID, false)
}

func (r *stationRepository) getByLineGroupID(ctx context.Context, lineGroupID int64, reverse bool) ([]*domain.Station, error) {
	order := `sst.id`
	if reverse {
		order = `sst.id DESC`
	}

	query := `SELECT ` + stationTypeColumns + `
		FROM station_station_types sst
		JOIN stations s ON s.station_cd = sst.station_cd
		JOIN lines l ON l.line_cd = s.line_cd
		JOIN types t ON t.type_cd = sst.type_cd
		LEFT JOIN line_aliases la ON la.station_cd = s.station_cd AND la.line_cd = s.line_cd
		LEFT JOIN aliases a ON a.id = la.alias_cd
		WHERE sst.line_group_cd = $1 AND s.e_status = 0
		ORDER BY ` + order

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, lineGroupID); err != nil {
		r.logger.Error("Failed to get stations by line group id", zap.Int64("line_group_cd", lineGroupID), zap.Error(err))
		return nil, errors.Database(err)
	}

	return stationsToDomain(rows), nil
}

func (r *stationRepository) GetRouteStops(ctx context.Context, fromGroupID, toGroupID int64, viaLineID *int64) ([]*domain.Route, error) {
	// 1. Direct connections: every stop of every line serving both groups.
	commonQuery := `SELECT ` + stationColumns + stationJoins + `
		WHERE s.e_status = 0
		  AND s.line_cd IN (
			SELECT s_f.line_cd FROM stations s_f
			WHERE s_f.station_g_cd = $1 AND s_f.e_status = 0
			INTERSECT
			SELECT s_t.line_cd FROM stations s_t
			WHERE s_t.station_g_cd = $2 AND s_t.e_status = 0
		  )
		ORDER BY s.line_cd, s.e_sort, s.station_cd`

	var commonRows []stationRow
	if err := r.db.SelectContext(ctx, &commonRows, commonQuery, fromGroupID, toGroupID); err != nil {
		r.logger.Error("Failed to get common-line route stops", zap.Error(err))
		return nil, errors.Database(err)
	}

	// 2. Through-running connections: every stop of every line group with
	// a non-pass stop at both ends.
	throughQuery := `SELECT ` + stationTypeColumns + `
		FROM station_station_types sst
		JOIN stations s ON s.station_cd = sst.station_cd AND s.e_status = 0
		JOIN lines l ON l.line_cd = s.line_cd
		JOIN types t ON t.type_cd = sst.type_cd
		LEFT JOIN line_aliases la ON la.station_cd = s.station_cd AND la.line_cd = s.line_cd
		LEFT JOIN aliases a ON a.id = la.alias_cd
		WHERE sst.line_group_cd IN (
			SELECT sst_f.line_group_cd
			FROM station_station_types sst_f
			JOIN stations s_f ON s_f.station_cd = sst_f.station_cd
			WHERE s_f.station_g_cd = $1 AND s_f.e_status = 0 AND sst_f.pass <> 1
			INTERSECT
			SELECT sst_t.line_group_cd
			FROM station_station_types sst_t
			JOIN stations s_t ON s_t.station_cd = sst_t.station_cd
			WHERE s_t.station_g_cd = $2 AND s_t.e_status = 0 AND sst_t.pass <> 1
		)
		ORDER BY sst.line_group_cd, sst.id`

	var throughRows []stationRow
	if err := r.db.SelectContext(ctx, &throughRows, throughQuery, fromGroupID, toGroupID); err != nil {
		r.logger.Error("Failed to get through-running route stops", zap.Error(err))
		return nil, errors.Database(err)
	}

	rows := make([]stationRow, 0, len(commonRows)+len(throughRows))
	rows = append(rows, commonRows...)
	rows = append(rows, throughRows...)

	return assembleRoutes(rows, fromGroupID, toGroupID, viaLineID), nil
}

func stationsToDomain(rows []stationRow) []*domain.Station {
	if len(rows) == 0 {
		return nil
	}
	stations := make([]*domain.Station, 0, len(rows))
	for i := range rows {
		stations = append(stations, rows[i].toDomain())
	}
	return stations
}

// restoreInputOrder reorders a result set to the caller's id order. Ids that
// did not resolve are dropped; duplicated ids keep their first position.
func restoreInputOrder(stations []*domain.Station, ids []int64) []*domain.Station {
	byID := make(map[int64]*domain.Station, len(stations))
	for _, s := range stations {
		byID[s.ID] = s
	}

	ordered := make([]*domain.Station, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}

	return ordered
}

func reversed(directionID *int64) bool {
	return directionID != nil && (*directionID == 1 || *directionID == 2)
}
