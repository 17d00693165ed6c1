package redis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
)

// clientStub keeps snapshots in a map and mimics the redis command results.
type clientStub struct {
	data    map[string]string
	getErr  error
	setErr  error
	delErr  error
	pingErr error
	closed  bool
}

func newClientStub() *clientStub {
	return &clientStub{data: make(map[string]string)}
}

func (c *clientStub) Get(ctx context.Context, key string) *redis.StringCmd {
	if c.getErr != nil {
		return redis.NewStringResult("", c.getErr)
	}
	value, ok := c.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (c *clientStub) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if c.setErr != nil {
		return redis.NewStatusResult("", c.setErr)
	}
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (c *clientStub) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if c.delErr != nil {
		return redis.NewIntResult(0, c.delErr)
	}
	removed := int64(0)
	for _, key := range keys {
		if _, ok := c.data[key]; ok {
			delete(c.data, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (c *clientStub) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", c.pingErr)
}

func (c *clientStub) Close() error {
	c.closed = true
	return nil
}

func newTestStore() (*CartStore, *clientStub) {
	client := newClientStub()
	return NewWithClient(client, slog.New(slog.NewTextHandler(io.Discard, nil))), client
}

func sampleCart() *model.Cart {
	return &model.Cart{
		RestaurantID:   "r-1",
		RestaurantName: "Burger Place",
		Lines: []model.CartLine{
			{ItemID: "burger", RestaurantID: "r-1", Name: "Burger", UnitPrice: 10.00, Quantity: 2},
		},
	}
}

func TestCartStoreSaveAndLoad(t *testing.T) {
	store, client := newTestStore()
	ctx := context.Background()

	if err := store.Save(ctx, 42, sampleCart()); err != nil {
		t.Fatalf("save returned error: %v", err)
	}
	if _, ok := client.data["bitenow:cart:42"]; !ok {
		t.Fatalf("snapshot stored under unexpected key: %v", client.data)
	}

	cart, err := store.Load(ctx, 42)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cart.RestaurantID != "r-1" || len(cart.Lines) != 1 || cart.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", cart)
	}
}

func TestCartStoreLoadMissing(t *testing.T) {
	store, _ := newTestStore()
	if _, err := store.Load(context.Background(), 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCartStoreLoadErrors(t *testing.T) {
	store, client := newTestStore()
	ctx := context.Background()

	client.getErr = errors.New("connection reset")
	if _, err := store.Load(ctx, 1); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected transport error, got %v", err)
	}
	client.getErr = nil

	client.data["bitenow:cart:1"] = "{not json"
	if _, err := store.Load(ctx, 1); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCartStoreDelete(t *testing.T) {
	store, client := newTestStore()
	ctx := context.Background()

	if err := store.Save(ctx, 7, sampleCart()); err != nil {
		t.Fatalf("save returned error: %v", err)
	}
	if err := store.Delete(ctx, 7); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if len(client.data) != 0 {
		t.Fatalf("expected empty store, got %v", client.data)
	}

	// Deleting an absent snapshot is not an error.
	if err := store.Delete(ctx, 7); err != nil {
		t.Fatalf("repeat delete returned error: %v", err)
	}
}

func TestCartStoreSaveError(t *testing.T) {
	store, client := newTestStore()
	client.setErr = errors.New("readonly replica")
	if err := store.Save(context.Background(), 1, sampleCart()); err == nil {
		t.Fatal("expected save error")
	}
}

func TestCartStoreRoundTripPreservesLines(t *testing.T) {
	store, client := newTestStore()
	ctx := context.Background()

	original := sampleCart()
	original.Lines = append(original.Lines, model.CartLine{
		ItemID: "fries", RestaurantID: "r-1", Name: "Fries", UnitPrice: 5.50, Quantity: 1,
		SpecialInstructions: "no salt",
	})
	if err := store.Save(ctx, 9, original); err != nil {
		t.Fatalf("save returned error: %v", err)
	}

	var decoded model.Cart
	if err := json.Unmarshal([]byte(client.data["bitenow:cart:9"]), &decoded); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if len(decoded.Lines) != 2 || decoded.Lines[1].SpecialInstructions != "no salt" {
		t.Fatalf("unexpected snapshot payload: %+v", decoded)
	}
}

func TestCartStoreHealthCheck(t *testing.T) {
	store, client := newTestStore()
	if err := store.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.pingErr = errors.New("down")
	if err := store.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestCartStoreClose(t *testing.T) {
	store, client := newTestStore()
	if err := store.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !client.closed {
		t.Fatal("expected client closed")
	}
}
