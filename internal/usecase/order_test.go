package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
	testhelpers "github.com/bitenow/bitenow/internal/test"
	. "github.com/bitenow/bitenow/internal/usecase"
)

type orderFixture struct {
	orders      *testhelpers.OrderRepositoryStub
	restaurants *testhelpers.RestaurantRepositoryStub
	carts       *CartUseCase
	uc          *OrderUseCase
	now         time.Time
}

func newOrderFixture() *orderFixture {
	orders := testhelpers.NewOrderRepositoryStub()
	restaurants := &testhelpers.RestaurantRepositoryStub{
		Restaurants: []model.Restaurant{{ID: "r-1", Name: "Burger Place"}},
	}
	carts := newCartUseCaseForTest(testhelpers.NewCartRepositoryStub())
	uc := NewOrderUseCase(orders, restaurants, carts)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.SetNow(func() time.Time { return now })
	return &orderFixture{orders: orders, restaurants: restaurants, carts: carts, uc: uc, now: now}
}

func (f *orderFixture) seedOrder(id string, userID int64, status model.OrderStatus, createdAt time.Time) {
	_ = f.orders.Create(context.Background(), &model.Order{
		ID:        id,
		UserID:    userID,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		StatusHistory: []model.StatusHistoryEntry{
			{Status: status, Timestamp: createdAt},
		},
	})
}

func TestOrderUseCaseCheckoutEmptyCart(t *testing.T) {
	f := newOrderFixture()
	if _, err := f.uc.Checkout(context.Background(), 1, CheckoutRequest{}); err != domainErrors.ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestOrderUseCaseCheckout(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	if err := f.carts.AddItem(ctx, 1, "burger", 2, "", false); err != nil {
		t.Fatalf("add burger: %v", err)
	}
	if err := f.carts.AddItem(ctx, 1, "fries", 1, "extra salt", false); err != nil {
		t.Fatalf("add fries: %v", err)
	}

	req := CheckoutRequest{
		DeliveryAddress: model.Address{Street: "1 Main St", City: "Springfield", ZipCode: "12345"},
		PaymentMethod:   "card",
	}
	order, err := f.uc.Checkout(ctx, 1, req)
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}

	if order.ID == "" {
		t.Fatal("expected order ID assigned")
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if order.RestaurantID != "r-1" || order.RestaurantName != "Burger Place" {
		t.Fatalf("unexpected restaurant binding: %q %q", order.RestaurantID, order.RestaurantName)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].ID == "" || order.Items[0].MenuItemID != "burger" {
		t.Fatalf("unexpected first item: %+v", order.Items[0])
	}
	if order.Subtotal != 25.50 || order.Tax != 2.04 || order.DeliveryFee != 2.99 || order.Total != 30.53 {
		t.Fatalf("unexpected totals: %+v", order)
	}
	if !order.EstimatedDelivery.Equal(f.now.Add(45 * time.Minute)) {
		t.Fatalf("unexpected estimated delivery %v", order.EstimatedDelivery)
	}
	if len(order.StatusHistory) != 1 || order.StatusHistory[0].Status != model.OrderStatusPending {
		t.Fatalf("unexpected status history: %+v", order.StatusHistory)
	}

	stored, err := f.orders.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("expected order persisted: %v", err)
	}
	if stored.Total != order.Total {
		t.Fatalf("stored order differs: %+v", stored)
	}

	cart, _ := f.carts.Cart(ctx, 1)
	if !cart.IsEmpty() {
		t.Fatalf("expected cart cleared after checkout, got %+v", cart)
	}
}

func TestOrderUseCaseCheckoutCreateError(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.orders.CreateErr = fmt.Errorf("insert failed")

	if err := f.carts.AddItem(ctx, 1, "burger", 1, "", false); err != nil {
		t.Fatalf("add burger: %v", err)
	}
	if _, err := f.uc.Checkout(ctx, 1, CheckoutRequest{}); err == nil {
		t.Fatal("expected create error")
	}

	// Failed checkout must not lose the cart.
	cart, _ := f.carts.Cart(ctx, 1)
	if cart.IsEmpty() {
		t.Fatal("cart cleared despite failed checkout")
	}
}

func TestOrderUseCaseGetOwnership(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.seedOrder("order-1", 1, model.OrderStatusPending, f.now)

	if _, err := f.uc.Get(ctx, "order-1", 1); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := f.uc.Get(ctx, "order-1", 2); err != domainErrors.ErrNotFound {
		t.Fatalf("expected foreign order to read as not found, got %v", err)
	}
	if _, err := f.uc.Get(ctx, "order-1", 0); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
	if _, err := f.uc.Get(ctx, "missing", 1); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCaseList(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.seedOrder("order-1", 1, model.OrderStatusDelivered, f.now.Add(-2*time.Hour))
	f.seedOrder("order-2", 1, model.OrderStatusPending, f.now.Add(-time.Hour))
	f.seedOrder("order-3", 2, model.OrderStatusPending, f.now)

	orders, total, err := f.uc.List(ctx, 1, "", 0, 0)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d (total %d)", len(orders), total)
	}
	if orders[0].ID != "order-2" {
		t.Fatalf("expected newest first, got %q", orders[0].ID)
	}

	orders, total, err = f.uc.List(ctx, 1, model.OrderStatusDelivered, 1, 10)
	if err != nil {
		t.Fatalf("filtered list returned error: %v", err)
	}
	if total != 1 || orders[0].ID != "order-1" {
		t.Fatalf("unexpected filtered result: %+v (total %d)", orders, total)
	}

	orders, total, err = f.uc.List(ctx, 0, "", 1, 2)
	if err != nil {
		t.Fatalf("admin list returned error: %v", err)
	}
	if total != 3 || len(orders) != 2 {
		t.Fatalf("expected page of 2 from 3, got %d (total %d)", len(orders), total)
	}
}

func TestOrderUseCaseActiveCount(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.seedOrder("order-1", 1, model.OrderStatusPending, f.now)
	f.seedOrder("order-2", 1, model.OrderStatusDelivered, f.now)
	f.seedOrder("order-3", 1, model.OrderStatusCancelled, f.now)
	f.seedOrder("order-4", 2, model.OrderStatusPreparing, f.now)

	count, err := f.uc.ActiveCount(ctx, 1)
	if err != nil {
		t.Fatalf("active count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 active order, got %d", count)
	}
}

func TestOrderUseCaseAdvance(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.seedOrder("order-1", 1, model.OrderStatusPending, f.now.Add(-time.Minute))

	order, err := f.uc.Advance(ctx, "order-1")
	if err != nil {
		t.Fatalf("advance returned error: %v", err)
	}
	if order.Status != model.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %q", order.Status)
	}

	stored, _ := f.orders.GetByID(ctx, "order-1")
	if stored.Status != model.OrderStatusConfirmed {
		t.Fatalf("transition not persisted: %q", stored.Status)
	}
	if len(stored.StatusHistory) != 2 || stored.StatusHistory[1].Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected history: %+v", stored.StatusHistory)
	}
	if !stored.StatusHistory[1].Timestamp.Equal(f.now) {
		t.Fatalf("unexpected transition timestamp %v", stored.StatusHistory[1].Timestamp)
	}
}

func TestOrderUseCaseAdvanceTerminal(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.seedOrder("order-1", 1, model.OrderStatusDelivered, f.now)

	if _, err := f.uc.Advance(ctx, "order-1"); err != domainErrors.ErrOrderTerminal {
		t.Fatalf("expected ErrOrderTerminal, got %v", err)
	}
}

// stalingOrderRepository makes every compare-and-set miss, as if another
// writer always got there first.
type stalingOrderRepository struct {
	*testhelpers.OrderRepositoryStub
}

func (s stalingOrderRepository) ApplyTransition(ctx context.Context, orderID string, from, to model.OrderStatus, at time.Time, note string) (bool, error) {
	return false, nil
}

func TestOrderUseCaseAdvanceConflict(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.seedOrder("order-1", 1, model.OrderStatusPending, f.now)

	uc := NewOrderUseCase(stalingOrderRepository{f.orders}, f.restaurants, f.carts)
	if _, err := uc.Advance(ctx, "order-1"); err != domainErrors.ErrTransitionConflict {
		t.Fatalf("expected ErrTransitionConflict, got %v", err)
	}
}

func TestOrderUseCaseCancel(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.seedOrder("order-1", 1, model.OrderStatusPending, f.now.Add(-time.Minute))

	order, err := f.uc.Cancel(ctx, "order-1", 1, "")
	if err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %q", order.Status)
	}

	stored, _ := f.orders.GetByID(ctx, "order-1")
	last := stored.StatusHistory[len(stored.StatusHistory)-1]
	if last.Status != model.OrderStatusCancelled || last.Note != "Cancelled by customer" {
		t.Fatalf("unexpected last history entry: %+v", last)
	}
}

func TestOrderUseCaseCancelForeignOrder(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder("order-1", 1, model.OrderStatusPending, f.now)

	if _, err := f.uc.Cancel(context.Background(), "order-1", 2, ""); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found for foreign order, got %v", err)
	}
}

func TestOrderUseCaseCancelTooLate(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.seedOrder("order-1", 1, model.OrderStatusPreparing, f.now)
	f.seedOrder("order-2", 1, model.OrderStatusDelivered, f.now)

	if _, err := f.uc.Cancel(ctx, "order-1", 1, ""); err != domainErrors.ErrOrderNotCancellable {
		t.Fatalf("expected ErrOrderNotCancellable, got %v", err)
	}
	if _, err := f.uc.Cancel(ctx, "order-2", 1, ""); err != domainErrors.ErrOrderTerminal {
		t.Fatalf("expected ErrOrderTerminal, got %v", err)
	}
}

func TestOrderUseCaseConfirmPending(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.seedOrder("order-1", 1, model.OrderStatusPending, f.now.Add(-time.Minute))

	applied, err := f.uc.ConfirmPending(ctx, "order-1")
	if err != nil {
		t.Fatalf("confirm returned error: %v", err)
	}
	if !applied {
		t.Fatal("expected confirmation to apply")
	}

	stored, _ := f.orders.GetByID(ctx, "order-1")
	if stored.Status != model.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %q", stored.Status)
	}

	// Second attempt is a clean no-op: the order already moved on.
	applied, err = f.uc.ConfirmPending(ctx, "order-1")
	if err != nil {
		t.Fatalf("repeat confirm returned error: %v", err)
	}
	if applied {
		t.Fatal("expected repeat confirmation to be skipped")
	}
}
