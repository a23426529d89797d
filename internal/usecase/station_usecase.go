package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/domain/repository"
	"github.com/TrainLCD/StationAPI/internal/pkg/errors"
)

const (
	defaultCoordinatesLimit = 1
	defaultNameSearchLimit  = 10
)

type StationUseCase struct {
	stationRepo   repository.StationRepository
	lineRepo      repository.LineRepository
	companyRepo   repository.CompanyRepository
	trainTypeRepo repository.TrainTypeRepository
	logger        *zap.Logger
}

func NewStationUseCase(
	stationRepo repository.StationRepository,
	lineRepo repository.LineRepository,
	companyRepo repository.CompanyRepository,
	trainTypeRepo repository.TrainTypeRepository,
	logger *zap.Logger,
) *StationUseCase {
	return &StationUseCase{
		stationRepo:   stationRepo,
		lineRepo:      lineRepo,
		companyRepo:   companyRepo,
		trainTypeRepo: trainTypeRepo,
		logger:        logger,
	}
}

func (uc *StationUseCase) FindStationByID(ctx context.Context, id int64) (*domain.Station, error) {
	station, err := uc.stationRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to find station", zap.Int64("station_cd", id), zap.Error(err))
		return nil, err
	}
	if station == nil {
		return nil, errors.ErrStationNotFound
	}

	enriched, err := uc.enrich(ctx, []*domain.Station{station}, nil)
	if err != nil {
		return nil, err
	}
	return enriched[0], nil
}

func (uc *StationUseCase) GetStationsByIDs(ctx context.Context, ids []int64) ([]*domain.Station, error) {
	stations, err := uc.stationRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("Failed to get stations by ids", zap.Error(err))
		return nil, err
	}
	return uc.enrich(ctx, stations, nil)
}

func (uc *StationUseCase) GetStationsByGroupID(ctx context.Context, groupID int64) ([]*domain.Station, error) {
	stations, err := uc.stationRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		uc.logger.Error("Failed to get stations by group id", zap.Int64("station_g_cd", groupID), zap.Error(err))
		return nil, err
	}
	return uc.enrich(ctx, dedupeStations(stations), nil)
}

func (uc *StationUseCase) GetStationsByCoordinates(ctx context.Context, latitude, longitude float64, limit int64) ([]*domain.Station, error) {
	if limit <= 0 {
		limit = defaultCoordinatesLimit
	}

	stations, err := uc.stationRepo.GetByCoordinates(ctx, latitude, longitude, limit)
	if err != nil {
		uc.logger.Error("Failed to get stations by coordinates", zap.Error(err))
		return nil, err
	}
	return uc.enrich(ctx, stations, nil)
}

func (uc *StationUseCase) GetStationsByLineID(ctx context.Context, lineID int64, fromStationID, directionID *int64) ([]*domain.Station, error) {
	stations, err := uc.stationRepo.GetByLineID(ctx, lineID, fromStationID, directionID)
	if err != nil {
		uc.logger.Error("Failed to get stations by line id", zap.Int64("line_cd", lineID), zap.Error(err))
		return nil, err
	}
	return uc.enrich(ctx, dedupeStations(stations), nil)
}

func (uc *StationUseCase) GetStationsByName(ctx context.Context, name string, limit int64, fromGroupID *int64) ([]*domain.Station, error) {
	if limit <= 0 {
		limit = defaultNameSearchLimit
	}

	stations, err := uc.stationRepo.GetByName(ctx, name, limit, fromGroupID)
	if err != nil {
		uc.logger.Error("Failed to get stations by name", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return uc.enrich(ctx, stations, nil)
}

func (uc *StationUseCase) GetStationsByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.Station, error) {
	stations, err := uc.stationRepo.GetByLineGroupID(ctx, lineGroupID)
	if err != nil {
		uc.logger.Error("Failed to get stations by line group id", zap.Int64("line_group_cd", lineGroupID), zap.Error(err))
		return nil, err
	}
	return uc.enrich(ctx, dedupeStations(stations), &lineGroupID)
}

// GetTrainTypesByStationID returns every train type stopping at the station,
// fully hydrated: the member lines of each type's group, their companies,
// and the line the queried station itself sits on.
func (uc *StationUseCase) GetTrainTypesByStationID(ctx context.Context, stationID int64) ([]*domain.TrainType, error) {
	trainTypes, err := uc.trainTypeRepo.GetByStationID(ctx, stationID)
	if err != nil {
		uc.logger.Error("Failed to get train types", zap.Int64("station_cd", stationID), zap.Error(err))
		return nil, err
	}
	if len(trainTypes) == 0 {
		return nil, nil
	}

	groupIDs := make([]int64, 0, len(trainTypes))
	seen := make(map[int64]struct{}, len(trainTypes))
	for _, tt := range trainTypes {
		if _, ok := seen[tt.GroupID]; ok {
			continue
		}
		seen[tt.GroupID] = struct{}{}
		groupIDs = append(groupIDs, tt.GroupID)
	}

	groupLines, err := uc.lineRepo.GetByLineGroupIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}
	currentLine, err := uc.lineRepo.FindByStationID(ctx, stationID)
	if err != nil {
		return nil, err
	}

	allLines := groupLines
	if currentLine != nil {
		allLines = append(allLines, currentLine)
	}
	companiesByID, err := uc.companiesForLines(ctx, allLines)
	if err != nil {
		return nil, err
	}

	linesByGroup := make(map[int64][]*domain.Line, len(groupIDs))
	for _, l := range groupLines {
		linesByGroup[l.LineGroupID] = append(linesByGroup[l.LineGroupID], l)
	}

	for _, tt := range trainTypes {
		for _, l := range linesByGroup[tt.GroupID] {
			tt.Lines = append(tt.Lines, decorateLine(l, companiesByID))
		}
		if currentLine != nil {
			tt.Line = decorateLine(currentLine, companiesByID)
		}
	}

	return trainTypes, nil
}

// enrich inflates a flat station list into the full station ↔ line ↔
// company ↔ train-type tree in at most four additional reads, whatever the
// input cardinality. The reads are sequential on purpose: that bounds the
// database load of one request. Input order is preserved.
func (uc *StationUseCase) enrich(ctx context.Context, stations []*domain.Station, lineGroupID *int64) ([]*domain.Station, error) {
	if len(stations) == 0 {
		return stations, nil
	}

	groupIDs := make([]int64, 0, len(stations))
	seenGroups := make(map[int64]struct{}, len(stations))
	for _, s := range stations {
		if _, ok := seenGroups[s.GroupID]; ok {
			continue
		}
		seenGroups[s.GroupID] = struct{}{}
		groupIDs = append(groupIDs, s.GroupID)
	}

	siblings, err := uc.stationRepo.GetByGroupIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	stationIDs := make([]int64, 0, len(siblings))
	seenStations := make(map[int64]struct{}, len(siblings))
	for _, sib := range siblings {
		if _, ok := seenStations[sib.ID]; ok {
			continue
		}
		seenStations[sib.ID] = struct{}{}
		stationIDs = append(stationIDs, sib.ID)
	}

	lines, err := uc.lineRepo.GetByGroupIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	companiesByID, err := uc.companiesForLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	trainTypes, err := uc.trainTypeRepo.GetByStationIDs(ctx, stationIDs, lineGroupID)
	if err != nil {
		return nil, err
	}

	siblingsByGroup := make(map[int64][]*domain.Station)
	for _, sib := range siblings {
		siblingsByGroup[sib.GroupID] = append(siblingsByGroup[sib.GroupID], sib)
	}
	linesByGroup := make(map[int64][]*domain.Line)
	for _, l := range lines {
		linesByGroup[l.StationGroupID] = append(linesByGroup[l.StationGroupID], l)
	}
	typesByStation := make(map[int64][]*domain.TrainType)
	for _, tt := range trainTypes {
		typesByStation[tt.StationID] = append(typesByStation[tt.StationID], tt)
	}

	for _, s := range stations {
		if s.Line == nil {
			return nil, errors.Unexpected(fmt.Sprintf("station %d came back without its denormalised line", s.ID))
		}

		s.Line.Symbols = domain.BuildLineSymbols(s.Line)
		s.Line.Company = companiesByID[s.Line.CompanyID]
		s.StationNumbers = domain.BuildStationNumbers(s, s.Line)
		s.TrainType = pickTrainType(s.TrainType, typesByStation[s.ID])
		s.Lines = uc.buildGroupLines(s, linesByGroup[s.GroupID], siblingsByGroup[s.GroupID], companiesByID, typesByStation)
	}

	return stations, nil
}

// buildGroupLines materialises every line serving the station's group, each
// carrying its transfer-station hint one hop deep.
func (uc *StationUseCase) buildGroupLines(
	s *domain.Station,
	groupLines []*domain.Line,
	siblings []*domain.Station,
	companiesByID map[int64]*domain.Company,
	typesByStation map[int64][]*domain.TrainType,
) []*domain.Line {
	out := make([]*domain.Line, 0, len(groupLines))
	for _, gl := range groupLines {
		line := decorateLine(gl, companiesByID)

		for _, sib := range siblings {
			if sib.LineID != line.ID {
				continue
			}
			transfer := cloneStation(sib)
			// One hop deep only; recursing here would rebuild the
			// whole group under every line.
			transfer.Lines = nil
			transfer.StationNumbers = domain.BuildStationNumbers(transfer, transfer.Line)
			transfer.TrainType = pickTrainType(transfer.TrainType, typesByStation[transfer.ID])
			line.Station = transfer
			break
		}

		out = append(out, line)
	}
	return out
}

func (uc *StationUseCase) companiesForLines(ctx context.Context, lines []*domain.Line) (map[int64]*domain.Company, error) {
	companyIDs := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.CompanyID]; ok {
			continue
		}
		seen[l.CompanyID] = struct{}{}
		companyIDs = append(companyIDs, l.CompanyID)
	}

	companies, err := uc.companyRepo.GetByIDs(ctx, companyIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.Company, len(companies))
	for _, c := range companies {
		byID[c.ID] = c
	}
	return byID, nil
}

// decorateLine returns an owned copy with its company and derived symbols
// attached. Copies keep the response tree cycle-free.
func decorateLine(l *domain.Line, companiesByID map[int64]*domain.Company) *domain.Line {
	line := cloneLine(l)
	line.Symbols = domain.BuildLineSymbols(line)
	line.Company = companiesByID[line.CompanyID]
	return line
}

func cloneLine(l *domain.Line) *domain.Line {
	c := *l
	return &c
}

func cloneStation(s *domain.Station) *domain.Station {
	c := *s
	return &c
}

// pickTrainType keeps the sst row the station itself was fetched through
// when there is one, else the best-ranked type stopping there.
func pickTrainType(own *domain.TrainType, candidates []*domain.TrainType) *domain.TrainType {
	if own != nil {
		return own
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return nil
}

// dedupeStations collapses the one-row-per-sst expansion of group and
// line-group reads, keeping the first occurrence of each station.
func dedupeStations(stations []*domain.Station) []*domain.Station {
	seen := make(map[int64]struct{}, len(stations))
	out := make([]*domain.Station, 0, len(stations))
	for _, s := range stations {
		if _, ok := seen[s.ID]; ok {
			continue
		}
		seen[s.ID] = struct{}{}
		out = append(out, s)
	}
	return out
}
