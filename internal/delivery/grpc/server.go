package grpc

import (
	"context"
	"net"
	"net/http"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/TrainLCD/StationAPI/internal/config"
	"github.com/TrainLCD/StationAPI/internal/pb"
	"github.com/TrainLCD/StationAPI/internal/repository/postgres"
)

// Server hosts the StationApi gRPC service. Unless disabled it also
// answers grpc-web requests on the same port via an h2c shim, so browser
// clients reach the API without a separate proxy.
type Server struct {
	cfg        *config.Config
	logger     *zap.Logger
	grpcServer *grpc.Server
	httpServer *http.Server
}

func NewServer(cfg *config.Config, db *postgres.DB, handler pb.StationApiServer, logger *zap.Logger) *Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(logger),
			LoggingInterceptor(logger),
		),
	)

	pb.RegisterStationApiServer(grpcServer, handler)
	healthpb.RegisterHealthServer(grpcServer, NewHealthService(db, logger))
	reflection.Register(grpcServer)

	return &Server{
		cfg:        cfg,
		logger:     logger,
		grpcServer: grpcServer,
	}
}

func (s *Server) Start() error {
	addr := s.cfg.GetServerAddr()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	if s.cfg.Server.DisableGRPCWeb {
		s.logger.Info("Starting gRPC server", zap.String("addr", addr))
		return s.grpcServer.Serve(lis)
	}

	wrapped := grpcweb.WrapServer(s.grpcServer,
		grpcweb.WithOriginFunc(func(origin string) bool { return true }),
	)
	mux := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wrapped.IsGrpcWebRequest(r) || wrapped.IsAcceptableGrpcCorsRequest(r) {
			wrapped.ServeHTTP(w, r)
			return
		}
		s.grpcServer.ServeHTTP(w, r)
	})

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}

	s.logger.Info("Starting gRPC server with grpc-web", zap.String("addr", addr))
	return s.httpServer.Serve(lis)
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		// Closes the listener too; the wrapped gRPC server drains after.
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpcServer.Stop()
		return ctx.Err()
	}
}
