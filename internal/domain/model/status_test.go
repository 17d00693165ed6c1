package model

import (
	"testing"
	"time"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
)

func TestOrderStatusNext(t *testing.T) {
	cases := []struct {
		current OrderStatus
		next    OrderStatus
		ok      bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusOutForDelivery, true},
		{OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{OrderStatusDelivered, "", false},
		{OrderStatusCancelled, "", false},
		{"bogus", "", false},
	}

	for _, tc := range cases {
		t.Run(string(tc.current), func(t *testing.T) {
			next, ok := tc.current.Next()
			if ok != tc.ok || next != tc.next {
				t.Fatalf("Next(%s) = %s,%v want %s,%v", tc.current, next, ok, tc.next, tc.ok)
			}
		})
	}
}

func TestOrderStatusTerminalAndCancellable(t *testing.T) {
	if !OrderStatusDelivered.IsTerminal() || !OrderStatusCancelled.IsTerminal() {
		t.Fatal("delivered and cancelled must be terminal")
	}
	if OrderStatusPreparing.IsTerminal() {
		t.Fatal("preparing is not terminal")
	}
	if !OrderStatusPending.Cancellable() || !OrderStatusConfirmed.Cancellable() {
		t.Fatal("pending and confirmed must be cancellable")
	}
	if OrderStatusPreparing.Cancellable() || OrderStatusDelivered.Cancellable() {
		t.Fatal("later statuses must not be cancellable")
	}
}

func TestOrderAdvanceWalksFullChain(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := &Order{
		Status:        OrderStatusPending,
		StatusHistory: []StatusHistoryEntry{{Status: OrderStatusPending, Timestamp: now}},
	}

	chain := []OrderStatus{
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusOutForDelivery,
		OrderStatusDelivered,
	}

	for i, want := range chain {
		at := now.Add(time.Duration(i+1) * time.Minute)
		if err := order.Advance(at); err != nil {
			t.Fatalf("advance to %s: %v", want, err)
		}
		if order.Status != want {
			t.Fatalf("expected status %s, got %s", want, order.Status)
		}
		if len(order.StatusHistory) != i+2 {
			t.Fatalf("expected %d history entries, got %d", i+2, len(order.StatusHistory))
		}
		last := order.StatusHistory[len(order.StatusHistory)-1]
		if last.Status != want || !last.Timestamp.Equal(at) {
			t.Fatalf("unexpected history entry %+v", last)
		}
	}
}

func TestOrderAdvanceRejectsTerminal(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		order := &Order{Status: status, StatusHistory: []StatusHistoryEntry{{Status: status}}}
		if err := order.Advance(time.Now()); err != domainErrors.ErrOrderTerminal {
			t.Fatalf("expected terminal error from %s, got %v", status, err)
		}
		if order.Status != status || len(order.StatusHistory) != 1 {
			t.Fatalf("terminal order must stay unchanged, got %+v", order)
		}
	}
}

func TestOrderCancel(t *testing.T) {
	now := time.Now()

	order := &Order{Status: OrderStatusPending}
	if err := order.Cancel(now, "cancelled by customer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", order.Status)
	}
	if note := order.StatusHistory[len(order.StatusHistory)-1].Note; note != "cancelled by customer" {
		t.Fatalf("expected note on history entry, got %q", note)
	}

	prepared := &Order{Status: OrderStatusPreparing}
	if err := prepared.Cancel(now, ""); err != domainErrors.ErrOrderNotCancellable {
		t.Fatalf("expected not-cancellable error, got %v", err)
	}

	delivered := &Order{Status: OrderStatusDelivered}
	if err := delivered.Cancel(now, ""); err != domainErrors.ErrOrderTerminal {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestStatusProgressHelpers(t *testing.T) {
	current := OrderStatusReady

	if !OrderStatusPending.IsCompletedAt(current) || !OrderStatusReady.IsCompletedAt(current) {
		t.Fatal("statuses up to current must render as completed")
	}
	if OrderStatusOutForDelivery.IsCompletedAt(current) {
		t.Fatal("later statuses must not render as completed")
	}
	if !OrderStatusReady.IsActiveAt(current) || OrderStatusPending.IsActiveAt(current) {
		t.Fatal("only the current status is active")
	}
	if OrderStatusPending.IsCompletedAt(OrderStatusCancelled) {
		t.Fatal("cancelled orders render no completed steps")
	}
}
