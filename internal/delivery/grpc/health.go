package grpc

import (
	"context"

	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/TrainLCD/StationAPI/internal/repository/postgres"
)

// HealthService answers the standard health-checking protocol by probing
// the database for a populated stations table.
type HealthService struct {
	healthpb.UnimplementedHealthServer

	db     *postgres.DB
	logger *zap.Logger
}

func NewHealthService(db *postgres.DB, logger *zap.Logger) *HealthService {
	return &HealthService{db: db, logger: logger}
}

func (s *HealthService) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if err := s.db.Health(ctx); err != nil {
		s.logger.Warn("Health check failed", zap.Error(err))
		return &healthpb.HealthCheckResponse{
			Status: healthpb.HealthCheckResponse_NOT_SERVING,
		}, nil
	}
	return &healthpb.HealthCheckResponse{
		Status: healthpb.HealthCheckResponse_SERVING,
	}, nil
}
