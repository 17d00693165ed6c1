package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitenow/bitenow/internal/domain/model"
	testhelpers "github.com/bitenow/bitenow/internal/test"
)

func TestNewOrderConfirmerDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	proc := NewOrderConfirmer(&testhelpers.WorkerFacadeStub{}, time.Second, time.Second, 0, 0, logger)
	if proc.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", proc.batchSize)
	}
	if proc.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", proc.workers)
	}
}

func TestOrderConfirmerConfirmsPendingOrders(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WorkerFacadeStub{Batches: [][]model.Order{{{ID: "order-1", Status: model.OrderStatusPending}}}}
	proc := NewOrderConfirmer(facade, 10*time.Millisecond, time.Second, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	proc.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		confirmed := len(facade.Confirmed) > 0
		facade.Unlock()
		if confirmed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for auto-confirm")
		case <-time.After(10 * time.Millisecond):
		}
	}

	proc.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Confirmed[0].OrderID != "order-1" {
		t.Fatalf("expected order-1 confirmed, got %q", facade.Confirmed[0].OrderID)
	}
}

func TestOrderConfirmerUsesConfirmDelayCutoff(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	var cutoff atomic.Value
	facade := &testhelpers.WorkerFacadeStub{
		PendingFn: func(ctx context.Context, before time.Time, limit int) ([]model.Order, error) {
			cutoff.Store(before)
			return nil, nil
		},
	}

	proc := NewOrderConfirmer(facade, 5*time.Millisecond, 3*time.Second, 2, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	proc.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for cutoff.Load() == nil {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for poll")
		case <-time.After(5 * time.Millisecond):
		}
	}
	proc.Stop()

	before := cutoff.Load().(time.Time)
	age := time.Since(before)
	if age < 2*time.Second || age > 5*time.Second {
		t.Fatalf("expected cutoff about 3s in the past, got %v", age)
	}
}

func TestOrderConfirmerSurvivesErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.Order{
			{{ID: "order-1", Status: model.OrderStatusPending}},
			{{ID: "order-2", Status: model.OrderStatusPending}},
		},
		ConfirmFn: func(ctx context.Context, orderID string) (bool, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return false, errors.New("transient failure")
			}
			return true, nil
		},
	}

	proc := NewOrderConfirmer(facade, 5*time.Millisecond, time.Second, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	proc.Start(ctx)

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&attempts) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for retry after error")
		case <-time.After(10 * time.Millisecond):
		}
	}
	proc.Stop()
}

func TestOrderConfirmerStopIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	proc := NewOrderConfirmer(&testhelpers.WorkerFacadeStub{}, 10*time.Millisecond, time.Second, 1, 2, logger)

	proc.Start(context.Background())
	proc.Stop()
	proc.Stop()
}
