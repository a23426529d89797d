package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/TrainLCD/StationAPI/internal/config"
	grpcserver "github.com/TrainLCD/StationAPI/internal/delivery/grpc"
	"github.com/TrainLCD/StationAPI/internal/delivery/grpc/handler"
	"github.com/TrainLCD/StationAPI/internal/pkg/logger"
	"github.com/TrainLCD/StationAPI/internal/repository/postgres"
	"github.com/TrainLCD/StationAPI/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := postgres.New(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		zapLogger.Fatal("Reference data is not ready", zap.Error(err))
	}
	cancel()

	stationRepo := postgres.NewStationRepository(db)
	lineRepo := postgres.NewLineRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	trainTypeRepo := postgres.NewTrainTypeRepository(db)

	stationUC := usecase.NewStationUseCase(stationRepo, lineRepo, companyRepo, trainTypeRepo, zapLogger)
	lineUC := usecase.NewLineUseCase(lineRepo, companyRepo, zapLogger)
	routeUC := usecase.NewRouteUseCase(stationRepo, lineRepo, companyRepo, trainTypeRepo, zapLogger)

	stationHandler := handler.NewStationHandler(stationUC, lineUC, routeUC, zapLogger)
	server := grpcserver.NewServer(cfg, db, stationHandler, zapLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	case sig := <-quit:
		zapLogger.Info("Shutting down", zap.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("Graceful shutdown failed", zap.Error(err))
		}
	}
}
