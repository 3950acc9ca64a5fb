// Package identity resolves the user behind a request from its session token.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var ErrNoIdentity = errors.New("no authenticated user")

type Resolver interface {
	// CurrentUser returns the authenticated user id or ErrNoIdentity.
	CurrentUser(ctx context.Context) (string, error)
}

type tokenKey struct{}

func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func SessionToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Middleware copies the session cookie into the request context.
func Middleware(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			c.Request = c.Request.WithContext(WithSessionToken(c.Request.Context(), token))
		}
		c.Next()
	}
}

// RedisSessionResolver looks sessions up under session:<token>.
type RedisSessionResolver struct {
	client *redis.Client
}

func NewRedisSessionResolver(client *redis.Client) *RedisSessionResolver {
	return &RedisSessionResolver{client: client}
}

func (r *RedisSessionResolver) CurrentUser(ctx context.Context) (string, error) {
	token := SessionToken(ctx)
	if token == "" {
		return "", ErrNoIdentity
	}

	userID, err := r.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoIdentity
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	if userID == "" {
		return "", ErrNoIdentity
	}
	return userID, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

var _ Resolver = (*RedisSessionResolver)(nil)
