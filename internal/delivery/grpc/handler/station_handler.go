package handler

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/pb"
	"github.com/TrainLCD/StationAPI/internal/pkg/errors"
)

type StationUseCase interface {
	FindStationByID(ctx context.Context, id int64) (*domain.Station, error)
	GetStationsByIDs(ctx context.Context, ids []int64) ([]*domain.Station, error)
	GetStationsByGroupID(ctx context.Context, groupID int64) ([]*domain.Station, error)
	GetStationsByCoordinates(ctx context.Context, latitude, longitude float64, limit int64) ([]*domain.Station, error)
	GetStationsByLineID(ctx context.Context, lineID int64, fromStationID, directionID *int64) ([]*domain.Station, error)
	GetStationsByName(ctx context.Context, name string, limit int64, fromGroupID *int64) ([]*domain.Station, error)
	GetStationsByLineGroupID(ctx context.Context, lineGroupID int64) ([]*domain.Station, error)
	GetTrainTypesByStationID(ctx context.Context, stationID int64) ([]*domain.TrainType, error)
}

type LineUseCase interface {
	FindLineByID(ctx context.Context, id int64) (*domain.Line, error)
	GetLinesByName(ctx context.Context, name string, limit int64) ([]*domain.Line, error)
}

type RouteUseCase interface {
	GetRoutes(ctx context.Context, fromGroupID, toGroupID int64) ([]*domain.Route, error)
	GetRouteTypes(ctx context.Context, fromGroupID, toGroupID int64) ([]*domain.TrainType, error)
	GetConnectedRoutes(ctx context.Context, fromGroupID, toGroupID int64) ([]*domain.Route, error)
}

// StationHandler exposes the use cases as the StationApi service. It only
// decodes requests, delegates and maps entities onto wire types.
type StationHandler struct {
	pb.UnimplementedStationApiServer

	stationUC StationUseCase
	lineUC    LineUseCase
	routeUC   RouteUseCase
	logger    *zap.Logger
}

func NewStationHandler(stationUC StationUseCase, lineUC LineUseCase, routeUC RouteUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		lineUC:    lineUC,
		routeUC:   routeUC,
		logger:    logger,
	}
}

func (h *StationHandler) GetStationById(ctx context.Context, req *pb.GetStationByIdRequest) (*pb.SingleStationResponse, error) {
	station, err := h.stationUC.FindStationByID(ctx, int64(req.GetId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.SingleStationResponse{Station: stationToPB(station)}, nil
}

func (h *StationHandler) GetStationByIdList(ctx context.Context, req *pb.GetStationByIdListRequest) (*pb.MultipleStationResponse, error) {
	ids := make([]int64, 0, len(req.GetIds()))
	for _, id := range req.GetIds() {
		ids = append(ids, int64(id))
	}

	stations, err := h.stationUC.GetStationsByIDs(ctx, ids)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.MultipleStationResponse{Stations: stationsToPB(stations)}, nil
}

func (h *StationHandler) GetStationsByGroupId(ctx context.Context, req *pb.GetStationsByGroupIdRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.stationUC.GetStationsByGroupID(ctx, int64(req.GetGroupId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.MultipleStationResponse{Stations: stationsToPB(stations)}, nil
}

func (h *StationHandler) GetStationsByCoordinates(ctx context.Context, req *pb.GetStationsByCoordinatesRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.stationUC.GetStationsByCoordinates(ctx, req.GetLatitude(), req.GetLongitude(), int64(req.GetLimit()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.MultipleStationResponse{Stations: stationsToPB(stations)}, nil
}

func (h *StationHandler) GetStationsByLineId(ctx context.Context, req *pb.GetStationsByLineIdRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.stationUC.GetStationsByLineID(ctx, int64(req.GetLineId()),
		optionalID(req.GetStationId()), optionalID(req.GetDirectionId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.MultipleStationResponse{Stations: stationsToPB(stations)}, nil
}

func (h *StationHandler) GetStationsByName(ctx context.Context, req *pb.GetStationsByNameRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.stationUC.GetStationsByName(ctx, req.GetStationName(), int64(req.GetLimit()),
		optionalID(req.GetFromStationGroupId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.MultipleStationResponse{Stations: stationsToPB(stations)}, nil
}

func (h *StationHandler) GetStationsByLineGroupId(ctx context.Context, req *pb.GetStationsByLineGroupIdRequest) (*pb.MultipleStationResponse, error) {
	stations, err := h.stationUC.GetStationsByLineGroupID(ctx, int64(req.GetLineGroupId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.MultipleStationResponse{Stations: stationsToPB(stations)}, nil
}

func (h *StationHandler) GetTrainTypesByStationId(ctx context.Context, req *pb.GetTrainTypesByStationIdRequest) (*pb.MultipleTrainTypeResponse, error) {
	trainTypes, err := h.stationUC.GetTrainTypesByStationID(ctx, int64(req.GetStationId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.MultipleTrainTypeResponse{TrainTypes: trainTypesToPB(trainTypes)}, nil
}

func (h *StationHandler) GetRoutes(ctx context.Context, req *pb.GetRoutesRequest) (*pb.RoutesResponse, error) {
	routes, err := h.routeUC.GetRoutes(ctx, int64(req.GetFromStationGroupId()), int64(req.GetToStationGroupId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.RoutesResponse{Routes: routesToPB(routes)}, nil
}

func (h *StationHandler) GetRouteTypes(ctx context.Context, req *pb.GetRouteTypesRequest) (*pb.RouteTypesResponse, error) {
	trainTypes, err := h.routeUC.GetRouteTypes(ctx, int64(req.GetFromStationGroupId()), int64(req.GetToStationGroupId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.RouteTypesResponse{TrainTypes: trainTypesToPB(trainTypes)}, nil
}

func (h *StationHandler) GetLineById(ctx context.Context, req *pb.GetLineByIdRequest) (*pb.SingleLineResponse, error) {
	line, err := h.lineUC.FindLineByID(ctx, int64(req.GetLineId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.SingleLineResponse{Line: lineToPB(line)}, nil
}

func (h *StationHandler) GetLinesByName(ctx context.Context, req *pb.GetLinesByNameRequest) (*pb.MultipleLineResponse, error) {
	lines, err := h.lineUC.GetLinesByName(ctx, req.GetLineName(), int64(req.GetLimit()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.MultipleLineResponse{Lines: linesToPB(lines)}, nil
}

func (h *StationHandler) GetConnectedRoutes(ctx context.Context, req *pb.GetConnectedRoutesRequest) (*pb.ConnectedRoutesResponse, error) {
	routes, err := h.routeUC.GetConnectedRoutes(ctx, int64(req.GetFromStationGroupId()), int64(req.GetToStationGroupId()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &pb.ConnectedRoutesResponse{Routes: routesToPB(routes)}, nil
}

// optionalID maps the proto3 zero value to "not supplied".
func optionalID(v uint32) *int64 {
	if v == 0 {
		return nil
	}
	id := int64(v)
	return &id
}

// toStatusError keeps domain errors as they are, their status code rides
// along via GRPCStatus. Anything else becomes INTERNAL.
func toStatusError(err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return status.Error(codes.Internal, err.Error())
}
