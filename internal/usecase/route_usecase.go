package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/domain/repository"
)

type RouteUseCase struct {
	stationRepo   repository.StationRepository
	lineRepo      repository.LineRepository
	companyRepo   repository.CompanyRepository
	trainTypeRepo repository.TrainTypeRepository
	logger        *zap.Logger
}

func NewRouteUseCase(
	stationRepo repository.StationRepository,
	lineRepo repository.LineRepository,
	companyRepo repository.CompanyRepository,
	trainTypeRepo repository.TrainTypeRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		stationRepo:   stationRepo,
		lineRepo:      lineRepo,
		companyRepo:   companyRepo,
		trainTypeRepo: trainTypeRepo,
		logger:        logger,
	}
}

// GetRoutes returns every through-running or same-line connection between
// two station groups, with each stop's numbering and line symbols derived.
func (uc *RouteUseCase) GetRoutes(ctx context.Context, fromGroupID, toGroupID int64) ([]*domain.Route, error) {
	routes, err := uc.stationRepo.GetRouteStops(ctx, fromGroupID, toGroupID, nil)
	if err != nil {
		uc.logger.Error("Failed to get route stops",
			zap.Int64("from_station_g_cd", fromGroupID),
			zap.Int64("to_station_g_cd", toGroupID),
			zap.Error(err))
		return nil, err
	}

	for _, route := range routes {
		for _, stop := range route.Stops {
			if stop.Line != nil {
				stop.Line.Symbols = domain.BuildLineSymbols(stop.Line)
			}
			stop.StationNumbers = domain.BuildStationNumbers(stop, stop.Line)
		}
	}

	return routes, nil
}

// GetRouteTypes returns one hydrated train type per through-running group
// connecting the two station groups.
func (uc *RouteUseCase) GetRouteTypes(ctx context.Context, fromGroupID, toGroupID int64) ([]*domain.TrainType, error) {
	routes, err := uc.stationRepo.GetRouteStops(ctx, fromGroupID, toGroupID, nil)
	if err != nil {
		uc.logger.Error("Failed to get route stops for route types", zap.Error(err))
		return nil, err
	}

	groupIDs := make([]int64, 0, len(routes))
	seen := make(map[int64]struct{}, len(routes))
	for _, route := range routes {
		if route.TrainType == nil {
			// Direct same-line route; its key is a line_cd.
			continue
		}
		if _, ok := seen[route.ID]; ok {
			continue
		}
		seen[route.ID] = struct{}{}
		groupIDs = append(groupIDs, route.ID)
	}
	if len(groupIDs) == 0 {
		return nil, nil
	}

	trainTypes, err := uc.trainTypeRepo.GetByLineGroupIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	lines, err := uc.lineRepo.GetByLineGroupIDsForRoutes(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	companyIDs := make([]int64, 0, len(lines))
	seenCompanies := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seenCompanies[l.CompanyID]; ok {
			continue
		}
		seenCompanies[l.CompanyID] = struct{}{}
		companyIDs = append(companyIDs, l.CompanyID)
	}
	companies, err := uc.companyRepo.GetByIDs(ctx, companyIDs)
	if err != nil {
		return nil, err
	}
	companiesByID := make(map[int64]*domain.Company, len(companies))
	for _, c := range companies {
		companiesByID[c.ID] = c
	}

	linesByGroup := make(map[int64][]*domain.Line, len(groupIDs))
	for _, l := range lines {
		linesByGroup[l.LineGroupID] = append(linesByGroup[l.LineGroupID], l)
	}

	// The repository orders by (priority DESC, sst.id), so the first row
	// of each group is its representative type.
	typeByGroup := make(map[int64]*domain.TrainType, len(groupIDs))
	for _, tt := range trainTypes {
		if _, ok := typeByGroup[tt.GroupID]; !ok {
			typeByGroup[tt.GroupID] = tt
		}
	}

	out := make([]*domain.TrainType, 0, len(groupIDs))
	for _, gid := range groupIDs {
		tt, ok := typeByGroup[gid]
		if !ok {
			continue
		}
		for _, l := range linesByGroup[gid] {
			tt.Lines = append(tt.Lines, decorateLine(l, companiesByID))
		}
		out = append(out, tt)
	}

	return out, nil
}

// GetConnectedRoutes answers with an empty result until the connection
// data is migrated; adjacency-based search lands then.
func (uc *RouteUseCase) GetConnectedRoutes(ctx context.Context, fromGroupID, toGroupID int64) ([]*domain.Route, error) {
	return nil, nil
}
