package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/Domenick1991/flydreamair/config"
	"github.com/Domenick1991/flydreamair/internal/cache"
	"github.com/Domenick1991/flydreamair/internal/email"
	"github.com/Domenick1991/flydreamair/internal/kafka"
	"github.com/Domenick1991/flydreamair/internal/logging"
	"github.com/Domenick1991/flydreamair/internal/repository"
	"github.com/Domenick1991/flydreamair/internal/service/confirmation"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
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

	location, err := time.LoadLocation(cfg.Booking.DisplayTimezone)
	if err != nil {
		logrus.Fatalf("load display timezone: %v", err)
	}

	redisClient := cache.NewClient(cfg.Redis)
	defer redisClient.Close()
	redisCache := cache.NewRedisCache(redisClient, time.Duration(cfg.Booking.ConfirmationCacheTTL)*time.Second)

	confirmations := confirmation.NewConfirmationService(
		repository.NewBookingRepository(pool),
		redisCache,
		confirmation.WithLocation(location),
	)
	emailSender := email.NewSender(logrus.StandardLogger())

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	logrus.WithField("topic", cfg.Kafka.NotificationsTopic).Info("Worker started")

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeBookingEvent(msg)
		if err != nil {
			return err
		}
		if event.Type != kafka.EventBookingCreated {
			return nil
		}

		log := logrus.WithFields(logrus.Fields{"booking_id": event.BookingID, "pnr": event.PNR})
		if err := confirmations.Warm(ctx, event.BookingID); err != nil {
			log.WithError(err).Warn("Failed to warm confirmation cache")
		}
		return emailSender.Send(ctx, event)
	})
	if err != nil {
		logrus.Fatalf("consumer stopped: %v", err)
	}
	logrus.Info("Worker stopped")
}
