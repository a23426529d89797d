package repository

import (
	"context"

	"github.com/TrainLCD/StationAPI/internal/domain"
)

// TrainTypeRepository reads station_station_types joined to types. Rows at
// inactive stations are filtered; pass = 1 rows are kept only for types
// with positive priority. Order is (priority DESC, sst.id) throughout.
type TrainTypeRepository interface {
	// GetByStationID returns every train type stopping at a station.
	GetByStationID(ctx context.Context, stationID int64) ([]*domain.TrainType, error)

	// GetByStationIDs is the union over stations, optionally restricted
	// to one line group.
	GetByStationIDs(ctx context.Context, stationIDs []int64, lineGroupID *int64) ([]*domain.TrainType, error)

	// GetByLineGroupID returns every sst row of a train-type group.
	GetByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.TrainType, error)

	// GetByLineGroupIDs is the union over groups.
	GetByLineGroupIDs(ctx context.Context, lineGroupIDs []int64) ([]*domain.TrainType, error)

	// FindByLineGroupIDAndLineID returns the dominant train type of a
	// group restricted to one line.
	FindByLineGroupIDAndLineID(ctx context.Context, lineGroupID, lineID int64) (*domain.TrainType, error)
}
