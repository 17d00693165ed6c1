package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bitenow/bitenow/internal/domain/model"
)

// OrderFacade exposes the subset of application functionality required by the worker.
type OrderFacade interface {
	PendingOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
	ConfirmPending(ctx context.Context, orderID string) (bool, error)
}

// OrderConfirmer polls for pending orders older than the confirm delay and
// moves them to confirmed concurrently.
type OrderConfirmer struct {
	facade       OrderFacade
	pollInterval time.Duration
	confirmDelay time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderConfirmer constructs the auto-confirm worker pool.
func NewOrderConfirmer(facade OrderFacade, pollInterval, confirmDelay time.Duration, batchSize, workers int, logger *slog.Logger) *OrderConfirmer {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrderConfirmer{
		facade:       facade,
		pollInterval: pollInterval,
		confirmDelay: confirmDelay,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (p *OrderConfirmer) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *OrderConfirmer) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *OrderConfirmer) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *OrderConfirmer) fetchAndDispatch(ctx context.Context) {
	cutoff := time.Now().Add(-p.confirmDelay)
	orders, err := p.facade.PendingOrders(ctx, cutoff, p.batchSize)
	if err != nil {
		p.logger.Error("fetch pending orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *OrderConfirmer) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleOrder(ctx, order)
		}
	}
}

func (p *OrderConfirmer) handleOrder(ctx context.Context, order model.Order) {
	applied, err := p.facade.ConfirmPending(ctx, order.ID)
	if err != nil {
		p.logger.Error("auto-confirm failed", slog.String("order", order.ID), slog.String("error", err.Error()))
		return
	}
	if !applied {
		// Lost the race: the order changed status since it was fetched.
		p.logger.Debug("auto-confirm skipped", slog.String("order", order.ID))
	}
}
