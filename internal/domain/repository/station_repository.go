package repository

import (
	"context"

	"github.com/TrainLCD/StationAPI/internal/domain"
)

// StationRepository reads stations joined to their owning line with alias
// overrides applied. Inactive stations (e_status != 0) are filtered out of
// every query. Absence is a nil/empty result, never an error.
type StationRepository interface {
	// FindByID returns at most one active station.
	FindByID(ctx context.Context, id int64) (*domain.Station, error)

	// GetByIDs returns one station per matching id, in input order.
	// Duplicate ids collapse to a single copy.
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Station, error)

	// GetByLineID returns the stops of a line. When fromStationID names a
	// station served by a local train type (kind 0 or 1, or positive
	// priority), the stops of the highest-priority matching line group are
	// returned in sst order instead. directionID 1 or 2 reverses the sort.
	GetByLineID(ctx context.Context, lineID int64, fromStationID, directionID *int64) ([]*domain.Station, error)

	// GetByGroupID returns every station of a group, one row per
	// (station, sst) combination.
	GetByGroupID(ctx context.Context, groupID int64) ([]*domain.Station, error)

	// GetByGroupIDs is the union of GetByGroupID over each group.
	GetByGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.Station, error)

	// GetByCoordinates returns the nearest station of each group, ordered
	// by planar distance ascending.
	GetByCoordinates(ctx context.Context, latitude, longitude float64, limit int64) ([]*domain.Station, error)

	// GetByName matches any localised name; the pattern is normalised
	// hiragana→katakana against the katakana column only. fromGroupID
	// restricts results to stations reachable from that group.
	GetByName(ctx context.Context, name string, limit int64, fromGroupID *int64) ([]*domain.Station, error)

	// GetByLineGroupID returns the stops of every line in a train-type
	// group, in sst order.
	GetByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.Station, error)

	// GetRouteStops returns the assembled routes connecting two station
	// groups: direct same-line runs plus every through-running train-type
	// group serving both. viaLineID, when set, keeps only routes touching
	// that line.
	GetRouteStops(ctx context.Context, fromGroupID, toGroupID int64, viaLineID *int64) ([]*domain.Route, error)
}
