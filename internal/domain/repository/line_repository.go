package repository

import (
	"context"

	"github.com/TrainLCD/StationAPI/internal/domain"
)

// LineRepository reads lines with per-group alias overrides applied
// (COALESCE over the aliases table) whenever a station context exists.
type LineRepository interface {
	// FindByID returns at most one active line.
	FindByID(ctx context.Context, id int64) (*domain.Line, error)

	// GetByIDs returns the active lines among ids, in storage order.
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Line, error)

	// FindByStationID returns the owning line of a station.
	FindByStationID(ctx context.Context, stationID int64) (*domain.Line, error)

	// GetByGroupID returns every line serving a station group.
	GetByGroupID(ctx context.Context, groupID int64) ([]*domain.Line, error)

	// GetByGroupIDs is the union over groups; each returned line carries
	// the StationGroupID it was matched through.
	GetByGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.Line, error)

	// GetByLineGroupID returns the member lines of a train-type group.
	GetByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.Line, error)

	// GetByLineGroupIDs is the union over groups; each returned line
	// carries the LineGroupID it belongs to.
	GetByLineGroupIDs(ctx context.Context, lineGroupIDs []int64) ([]*domain.Line, error)

	// GetByLineGroupIDsForRoutes is GetByLineGroupIDs with LEFT JOINs so
	// lines whose stations carry no active sst row still surface.
	GetByLineGroupIDsForRoutes(ctx context.Context, lineGroupIDs []int64) ([]*domain.Line, error)

	// GetByName matches any localised line name, katakana-normalised
	// against the katakana column.
	GetByName(ctx context.Context, name string, limit int64) ([]*domain.Line, error)
}
