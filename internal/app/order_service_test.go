package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/clock"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
)

const (
	teeID    = "65a1b2c3d4e5f60718293a4b"
	jeansID  = "65a1b2c3d4e5f60718293a4c"
	absentID = "000000000000000000000000"
)

func TestOrderService_CreateOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 2, 14, 0, 0, 0, time.UTC)

	t.Run("creates order when all products exist", func(t *testing.T) {
		repo := newFakeOrderRepo(teeID, jeansID)
		svc := NewOrderService(repo, clock.NewFixed(now), nil)

		id, err := svc.CreateOrder(context.Background(), CreateOrderInput{
			UserID: "u1",
			Items: []OrderItemInput{
				{ProductID: teeID, Quantity: 2},
				{ProductID: jeansID, Quantity: 1},
			},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id == "" {
			t.Fatalf("expected order id to be set")
		}
		if len(repo.orders) != 1 {
			t.Fatalf("expected 1 order persisted, got %d", len(repo.orders))
		}
		order := repo.orders[0]
		if order.UserID != "u1" || len(order.Items) != 2 {
			t.Fatalf("unexpected order: %+v", order)
		}
		if order.Items[0].ProductID != teeID || order.Items[0].Quantity != 2 {
			t.Fatalf("expected item order preserved, got %+v", order.Items)
		}
		if order.CreatedAt != now {
			t.Fatalf("expected created_at %v, got %v", now, order.CreatedAt)
		}
	})

	t.Run("unknown product leaves no partial order", func(t *testing.T) {
		repo := newFakeOrderRepo(teeID)
		svc := NewOrderService(repo, clock.NewFixed(now), nil)

		_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
			UserID: "u1",
			Items: []OrderItemInput{
				{ProductID: teeID, Quantity: 1},
				{ProductID: absentID, Quantity: 1},
			},
		})
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), absentID) {
			t.Fatalf("expected error to name the missing id, got %q", err)
		}
		if len(repo.orders) != 0 {
			t.Fatalf("expected no order persisted, got %d", len(repo.orders))
		}
	})

	t.Run("malformed product id fails the whole order", func(t *testing.T) {
		repo := newFakeOrderRepo(teeID)
		svc := NewOrderService(repo, clock.NewFixed(now), nil)

		_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
			UserID: "u1",
			Items:  []OrderItemInput{{ProductID: "not-an-id", Quantity: 1}},
		})
		if !errors.Is(err, domain.ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
		if len(repo.orders) != 0 {
			t.Fatalf("expected no order persisted, got %d", len(repo.orders))
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		svc := NewOrderService(newFakeOrderRepo(teeID), clock.NewFixed(now), nil)

		cases := []struct {
			name string
			in   CreateOrderInput
			want error
		}{
			{"empty user", CreateOrderInput{Items: []OrderItemInput{{ProductID: teeID, Quantity: 1}}}, domain.ErrUserIDRequired},
			{"no items", CreateOrderInput{UserID: "u1"}, domain.ErrItemsRequired},
			{"zero quantity", CreateOrderInput{UserID: "u1", Items: []OrderItemInput{{ProductID: teeID, Quantity: 0}}}, domain.ErrInvalidQuantity},
			{"negative quantity", CreateOrderInput{UserID: "u1", Items: []OrderItemInput{{ProductID: teeID, Quantity: -3}}}, domain.ErrInvalidQuantity},
		}
		for _, tc := range cases {
			if _, err := svc.CreateOrder(context.Background(), tc.in); err != tc.want {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
	})
}

func TestOrderService_ListOrdersForUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 2, 14, 0, 0, 0, time.UTC)

	seed := func(t *testing.T) *OrderService {
		t.Helper()
		repo := newFakeOrderRepo(teeID)
		svc := NewOrderService(repo, clock.NewFixed(now), nil)
		for i := 0; i < 3; i++ {
			if _, err := svc.CreateOrder(context.Background(), CreateOrderInput{
				UserID: "u1",
				Items:  []OrderItemInput{{ProductID: teeID, Quantity: int64(i + 1)}},
			}); err != nil {
				t.Fatalf("seed order: %v", err)
			}
		}
		if _, err := svc.CreateOrder(context.Background(), CreateOrderInput{
			UserID: "u2",
			Items:  []OrderItemInput{{ProductID: teeID, Quantity: 1}},
		}); err != nil {
			t.Fatalf("seed order: %v", err)
		}
		return svc
	}

	t.Run("filters by user in insertion order", func(t *testing.T) {
		svc := seed(t)

		orders, err := svc.ListOrdersForUser(context.Background(), ListOrdersInput{UserID: "u1"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 3 {
			t.Fatalf("expected 3 orders for u1, got %d", len(orders))
		}
		for i, o := range orders {
			if o.Items[0].Quantity != int64(i+1) {
				t.Fatalf("expected insertion order, got %+v", orders)
			}
		}
	})

	t.Run("limit and offset select the second-oldest order", func(t *testing.T) {
		svc := seed(t)

		orders, err := svc.ListOrdersForUser(context.Background(), ListOrdersInput{
			UserID: "u1",
			Page:   domain.Page{Limit: int64ptr(1), Offset: int64ptr(1)},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 1 {
			t.Fatalf("expected exactly 1 order, got %d", len(orders))
		}
		if orders[0].Items[0].Quantity != 2 {
			t.Fatalf("expected the second-oldest order, got %+v", orders[0])
		}
	})

	t.Run("unknown user returns empty slice", func(t *testing.T) {
		svc := seed(t)

		orders, err := svc.ListOrdersForUser(context.Background(), ListOrdersInput{UserID: "nobody"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if orders == nil || len(orders) != 0 {
			t.Fatalf("expected empty slice, got %+v", orders)
		}
	})

	t.Run("empty user id is rejected", func(t *testing.T) {
		svc := seed(t)

		if _, err := svc.ListOrdersForUser(context.Background(), ListOrdersInput{}); err != domain.ErrUserIDRequired {
			t.Fatalf("expected ErrUserIDRequired, got %v", err)
		}
	})

	t.Run("explicit zero limit selects nothing", func(t *testing.T) {
		svc := seed(t)

		orders, err := svc.ListOrdersForUser(context.Background(), ListOrdersInput{
			UserID: "u1",
			Page:   domain.Page{Limit: int64ptr(0)},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 0 {
			t.Fatalf("expected no orders for limit=0, got %d", len(orders))
		}
	})
}
