package app

import (
	"context"
	"errors"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/clock"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/metrics"
)

type ProductRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	InsertProduct(ctx context.Context, p domain.Product) (string, error)
	ListProducts(ctx context.Context, f domain.ProductFilter, page domain.Page) ([]domain.Product, error)
}

type CatalogService struct {
	repo    ProductRepository
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewCatalogService(repo ProductRepository, clk clock.Clock, m *metrics.Metrics) *CatalogService {
	return &CatalogService{
		repo:    repo,
		clock:   clk,
		metrics: m,
	}
}

type CreateProductInput struct {
	Name  string
	Size  string
	Price int64
}

// CreateProduct inserts a new catalog entry and returns its id. The store's
// unique index on (name, size, price) is the authority on duplicates; a
// conflicting concurrent insert surfaces as ErrDuplicateProduct, never as a
// silently accepted copy.
func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (string, error) {
	if in.Name == "" {
		return "", domain.ErrNameRequired
	}
	if in.Size == "" {
		return "", domain.ErrSizeRequired
	}
	if in.Price < 0 {
		return "", domain.ErrPriceNegative
	}

	product := domain.Product{
		Name:      in.Name,
		Size:      in.Size,
		Price:     in.Price,
		CreatedAt: s.clock.Now(),
	}

	var id string
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		newID, err := s.repo.InsertProduct(txCtx, product)
		if err != nil {
			return err
		}
		id = newID
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateProduct) {
			s.metrics.IncDuplicateProduct()
		}
		return "", err
	}

	s.metrics.IncProductCreated()
	return id, nil
}

type ListProductsInput struct {
	Name string
	Size string
	Page domain.Page
}

// ListProducts returns matching products in ascending insertion order. An
// empty name means no name filter, not "match empty string".
func (s *CatalogService) ListProducts(ctx context.Context, in ListProductsInput) ([]domain.Product, error) {
	if in.Page.Empty() {
		return []domain.Product{}, nil
	}

	var products []domain.Product
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		products, err = s.repo.ListProducts(txCtx, domain.ProductFilter{
			Name: in.Name,
			Size: in.Size,
		}, in.Page)
		return err
	})
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
