package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
	testhelpers "github.com/bitenow/bitenow/internal/test"
	"github.com/bitenow/bitenow/internal/usecase"
)

type facadeFixture struct {
	facade *BiteNowFacade
	users  *testhelpers.UserRepositoryStub
	orders *testhelpers.OrderRepositoryStub
	carts  *testhelpers.CartRepositoryStub
}

func newFacadeFixture() *facadeFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, string, error) { return 99, "customer", nil }}
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy)

	restaurants := &testhelpers.RestaurantRepositoryStub{Restaurants: []model.Restaurant{
		{ID: "r-1", Name: "Burger Place", IsOpen: true},
	}}
	menus := &testhelpers.MenuRepositoryStub{
		Items: map[string]model.MenuItem{
			"burger": {ID: "burger", RestaurantID: "r-1", Name: "Burger", Price: 10.00, IsAvailable: true},
		},
	}
	catalogUC := usecase.NewCatalogUseCase(restaurants, menus)

	carts := testhelpers.NewCartRepositoryStub()
	cartUC := usecase.NewCartUseCase(menus, carts, model.Pricing{TaxRate: 0.08, DeliveryFee: 2.99}, logger)

	orders := testhelpers.NewOrderRepositoryStub()
	orderUC := usecase.NewOrderUseCase(orders, restaurants, cartUC)

	facade := NewBiteNowFacade(authUC, catalogUC, cartUC, orderUC, orders)
	return &facadeFixture{facade: facade, users: users, orders: orders, carts: carts}
}

func TestBiteNowFacadeAuth(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	user, token, err := f.facade.Register(ctx, "user@example.com", "pass", "User", "")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	if user.Email != "user@example.com" {
		t.Fatalf("unexpected email %q", user.Email)
	}

	if _, err := f.users.GetByEmail(ctx, "user@example.com"); err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	if _, token, err = f.facade.Authenticate(ctx, "user@example.com", "pass"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, role, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 || role != model.RoleCustomer {
		t.Fatalf("unexpected claims: id=%d role=%q", id, role)
	}
}

func TestBiteNowFacadeCatalog(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	list, total, err := f.facade.Restaurants(ctx, model.RestaurantFilters{})
	if err != nil || total != 1 || len(list) != 1 {
		t.Fatalf("unexpected restaurants result: %v total=%d err=%v", list, total, err)
	}

	r, err := f.facade.Restaurant(ctx, "r-1")
	if err != nil || r.Name != "Burger Place" {
		t.Fatalf("unexpected restaurant: %+v err=%v", r, err)
	}
}

func TestBiteNowFacadeCartAndCheckout(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	if err := f.facade.AddItem(ctx, 7, "burger", 2, "", false); err != nil {
		t.Fatalf("add item returned error: %v", err)
	}

	cart, summary := f.facade.Cart(ctx, 7)
	if len(cart.Lines) != 1 || summary.ItemCount != 2 {
		t.Fatalf("unexpected cart state: %+v summary=%+v", cart, summary)
	}

	order, err := f.facade.Checkout(ctx, 7, usecase.CheckoutRequest{
		DeliveryAddress: model.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"},
		PaymentMethod:   "card",
	})
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}

	// Checkout clears the cart.
	cart, _ = f.facade.Cart(ctx, 7)
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart after checkout, got %+v", cart.Lines)
	}

	got, err := f.facade.Get(ctx, order.ID, 7)
	if err != nil || got.ID != order.ID {
		t.Fatalf("unexpected get result: %+v err=%v", got, err)
	}

	listed, total, err := f.facade.List(ctx, 7, "", 1, 10)
	if err != nil || total != 1 || len(listed) != 1 {
		t.Fatalf("unexpected list result: %v total=%d err=%v", listed, total, err)
	}

	count, err := f.facade.ActiveCount(ctx, 7)
	if err != nil || count != 1 {
		t.Fatalf("expected one active order, got %d err=%v", count, err)
	}
}

func TestBiteNowFacadeCartMutations(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	if err := f.facade.AddItem(ctx, 7, "burger", 1, "", false); err != nil {
		t.Fatalf("add item returned error: %v", err)
	}
	f.facade.UpdateQuantity(ctx, 7, "burger", 3)
	f.facade.UpdateInstructions(ctx, 7, "burger", "no onions")

	cart, summary := f.facade.Cart(ctx, 7)
	if summary.ItemCount != 3 || cart.Lines[0].SpecialInstructions != "no onions" {
		t.Fatalf("unexpected cart after mutations: %+v summary=%+v", cart, summary)
	}

	f.facade.RemoveItem(ctx, 7, "burger")
	if cart, _ = f.facade.Cart(ctx, 7); len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart after remove, got %+v", cart.Lines)
	}

	if err := f.facade.AddItem(ctx, 7, "burger", 1, "", false); err != nil {
		t.Fatalf("add item returned error: %v", err)
	}
	f.facade.Clear(ctx, 7)
	if cart, _ = f.facade.Cart(ctx, 7); len(cart.Lines) != 0 {
		t.Fatalf("expected cleared cart, got %+v", cart.Lines)
	}
}

func TestBiteNowFacadeOrderTransitions(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	created := time.Now().Add(-time.Minute)
	f.orders.Orders["order-1"] = &model.Order{
		ID: "order-1", UserID: 7, Status: model.OrderStatusPending, CreatedAt: created,
	}

	order, err := f.facade.Advance(ctx, "order-1")
	if err != nil || order.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected advance result: %+v err=%v", order, err)
	}

	order, err = f.facade.Cancel(ctx, "order-1", 7, "changed my mind")
	if err != nil || order.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected cancel result: %+v err=%v", order, err)
	}

	if _, err := f.facade.Advance(ctx, "order-1"); err != domainErrors.ErrOrderTerminal {
		t.Fatalf("expected ErrOrderTerminal, got %v", err)
	}
}

func TestBiteNowFacadeWorkerSurface(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	created := time.Now().Add(-time.Minute)
	f.orders.Orders["order-1"] = &model.Order{
		ID: "order-1", UserID: 7, Status: model.OrderStatusPending, CreatedAt: created,
	}

	pending, err := f.facade.PendingOrders(ctx, time.Now(), 10)
	if err != nil || len(pending) != 1 {
		t.Fatalf("unexpected pending result: %v err=%v", pending, err)
	}

	applied, err := f.facade.ConfirmPending(ctx, "order-1")
	if err != nil || !applied {
		t.Fatalf("expected confirm applied, got applied=%v err=%v", applied, err)
	}

	// Second attempt loses the compare-and-swap.
	applied, err = f.facade.ConfirmPending(ctx, "order-1")
	if err != nil || applied {
		t.Fatalf("expected stale confirm skipped, got applied=%v err=%v", applied, err)
	}
}
