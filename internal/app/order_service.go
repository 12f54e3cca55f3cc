package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/clock"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/metrics"
)

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	MissingProducts(ctx context.Context, productIDs []string) ([]string, error)
	InsertOrder(ctx context.Context, o domain.Order) (string, error)
	ListOrdersByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Order, error)
}

type OrderService struct {
	repo    OrderRepository
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewOrderService(repo OrderRepository, clk clock.Clock, m *metrics.Metrics) *OrderService {
	return &OrderService{
		repo:    repo,
		clock:   clk,
		metrics: m,
	}
}

type OrderItemInput struct {
	ProductID string
	Quantity  int64
}

type CreateOrderInput struct {
	UserID string
	Items  []OrderItemInput
}

// CreateOrder persists the order after verifying every referenced product
// exists. The existence check and the insert share one transaction so no item
// can stop resolving between the two steps; on any failure no order document
// is persisted.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (string, error) {
	if in.UserID == "" {
		return "", domain.ErrUserIDRequired
	}
	if len(in.Items) == 0 {
		return "", domain.ErrItemsRequired
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	ids := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return "", domain.ErrInvalidQuantity
		}
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
		ids = append(ids, item.ProductID)
	}

	order := domain.Order{
		UserID:    in.UserID,
		Items:     items,
		CreatedAt: s.clock.Now(),
	}

	var id string
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		missing, err := s.repo.MissingProducts(txCtx, ids)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", domain.ErrProductNotFound, missing[0])
		}

		newID, err := s.repo.InsertOrder(txCtx, order)
		if err != nil {
			return err
		}
		id = newID
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrInvalidProductID) {
			s.metrics.IncOrderRejected()
		}
		return "", err
	}

	s.metrics.IncOrderCreated()
	return id, nil
}

type ListOrdersInput struct {
	UserID string
	Page   domain.Page
}

// ListOrdersForUser returns the user's orders in ascending insertion order.
func (s *OrderService) ListOrdersForUser(ctx context.Context, in ListOrdersInput) ([]domain.Order, error) {
	if in.UserID == "" {
		return nil, domain.ErrUserIDRequired
	}
	if in.Page.Empty() {
		return []domain.Order{}, nil
	}

	var orders []domain.Order
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		orders, err = s.repo.ListOrdersByUser(txCtx, in.UserID, in.Page)
		return err
	})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}
