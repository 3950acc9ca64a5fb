package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flydreamair/config"
	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/redis/go-redis/v9"
)

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

// RedisCache keeps rendered confirmation views. Committed bookings never
// change, so entries are only ever expired by TTL.
type RedisCache struct {
	client          *redis.Client
	confirmationTTL time.Duration
}

func NewRedisCache(client *redis.Client, confirmationTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:          client,
		confirmationTTL: confirmationTTL,
	}
}

// GetConfirmation returns nil, nil on a miss.
func (c *RedisCache) GetConfirmation(ctx context.Context, bookingID int64) (*domain.Confirmation, error) {
	data, err := c.client.Get(ctx, confirmationKey(bookingID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var view domain.Confirmation
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("decode cached confirmation %d: %w", bookingID, err)
	}
	return &view, nil
}

func (c *RedisCache) SetConfirmation(ctx context.Context, bookingID int64, view *domain.Confirmation) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, confirmationKey(bookingID), payload, c.confirmationTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func confirmationKey(bookingID int64) string {
	return fmt.Sprintf("cache:booking:%d", bookingID)
}
