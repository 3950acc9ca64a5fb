package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/flydreamair/api"
	"github.com/Domenick1991/flydreamair/config"
	bookingsapi "github.com/Domenick1991/flydreamair/internal/api/bookings_service_api"
	"github.com/Domenick1991/flydreamair/internal/identity"
	"github.com/Domenick1991/flydreamair/internal/logging"
	"github.com/Domenick1991/flydreamair/internal/metrics"
	"github.com/Domenick1991/flydreamair/internal/service/booking"
	"github.com/Domenick1991/flydreamair/internal/service/confirmation"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// Services are the use cases the servers expose.
type Services struct {
	Bookings      booking.BookingUseCase
	Confirmations confirmation.ConfirmationUseCase
	HealthChecks  map[string]api.Pinger
}

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the gRPC and HTTP servers and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	s := newServers(cfg, svc)

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logrus.WithFields(logrus.Fields{
		"http": cfg.HTTP.Address,
		"grpc": cfg.GRPC.Address,
	}).Info("Servers started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logrus.Info("Shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, svc Services) *Servers {
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(logging.UnaryServerInterceptor()))
	bookingsapi.RegisterBookingsServiceServer(grpcSrv, bookingsapi.NewServer(svc.Confirmations))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           NewRouter(cfg, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: httpSrv,
	}
}

// NewRouter wires the HTTP surface: booking routes, health, metrics and docs.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		logging.Middleware(),
		metrics.Middleware(),
		identity.Middleware(cfg.Auth.SessionCookie),
	)

	api.NewBookingHandler(svc.Bookings, svc.Confirmations, cfg.Booking.ConfirmPath).Register(router)
	api.NewHealthHandler(svc.HealthChecks).Register(router)
	api.RegisterDocs(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
