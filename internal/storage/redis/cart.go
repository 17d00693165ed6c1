package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/domain/repository"
)

const cartKeyPrefix = "bitenow:cart:"

// Client is the subset of redis.Client the store uses. Tests substitute a
// stub through it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// CartStore persists cart snapshots in Redis as JSON blobs keyed by user.
type CartStore struct {
	client Client
	logger *slog.Logger
}

var _ repository.CartRepository = (*CartStore)(nil)

// New connects to Redis and verifies connectivity.
func New(ctx context.Context, addr string, logger *slog.Logger) (*CartStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &CartStore{client: client, logger: logger}, nil
}

// NewWithClient wraps an existing client, used by tests.
func NewWithClient(client Client, logger *slog.Logger) *CartStore {
	return &CartStore{client: client, logger: logger}
}

// Close releases the client connection.
func (s *CartStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Load returns the stored snapshot, or ErrNotFound when none exists.
func (s *CartStore) Load(ctx context.Context, userID int64) (*model.Cart, error) {
	payload, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return &cart, nil
}

// Save stores the snapshot, overwriting any previous one.
func (s *CartStore) Save(ctx context.Context, userID int64, cart *model.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	return s.client.Set(ctx, cartKey(userID), payload, 0).Err()
}

// Delete drops the stored snapshot.
func (s *CartStore) Delete(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, cartKey(userID)).Err()
}

// HealthCheck verifies Redis connectivity.
func (s *CartStore) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

func cartKey(userID int64) string {
	return fmt.Sprintf("%s%d", cartKeyPrefix, userID)
}
