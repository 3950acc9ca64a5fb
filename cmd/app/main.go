package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/Domenick1991/flydreamair/api"
	"github.com/Domenick1991/flydreamair/config"
	"github.com/Domenick1991/flydreamair/internal/bootstrap"
	"github.com/Domenick1991/flydreamair/internal/cache"
	"github.com/Domenick1991/flydreamair/internal/identity"
	"github.com/Domenick1991/flydreamair/internal/kafka"
	"github.com/Domenick1991/flydreamair/internal/logging"
	"github.com/Domenick1991/flydreamair/internal/repository"
	"github.com/Domenick1991/flydreamair/internal/service/booking"
	"github.com/Domenick1991/flydreamair/internal/service/confirmation"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logging.Init(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := repository.InitSchema(ctx, pool); err != nil {
			logrus.Fatalf("init schema: %v", err)
		}
	}

	location, err := time.LoadLocation(cfg.Booking.DisplayTimezone)
	if err != nil {
		logrus.Fatalf("load display timezone: %v", err)
	}

	redisClient := cache.NewClient(cfg.Redis)
	defer redisClient.Close()
	redisCache := cache.NewRedisCache(redisClient, time.Duration(cfg.Booking.ConfirmationCacheTTL)*time.Second)

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)

	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		identity.NewRedisSessionResolver(redisClient),
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithCurrency(cfg.Booking.Currency),
		booking.WithPNRPrefix(cfg.Booking.PNRPrefix),
		booking.WithPublishTimeout(time.Duration(cfg.Booking.PublishTimeout)*time.Second),
	)
	confirmationService := confirmation.NewConfirmationService(bookingRepo, redisCache, confirmation.WithLocation(location))

	if err := bootstrap.Run(ctx, cfg, bootstrap.Services{
		Bookings:      bookingService,
		Confirmations: confirmationService,
		HealthChecks: map[string]api.Pinger{
			"postgres": pool,
			"redis":    redisCache,
		},
	}); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
