package app

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
)

// fakeProductRepo mimics the store's behavior: duplicate triples are rejected
// the way the unique index would reject them, and listings come back in
// insertion order.
type fakeProductRepo struct {
	products  []domain.Product
	nextID    int
	insertErr error
	listErr   error
}

func (f *fakeProductRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeProductRepo) InsertProduct(_ context.Context, p domain.Product) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	for _, existing := range f.products {
		if existing.Name == p.Name && existing.Size == p.Size && existing.Price == p.Price {
			return "", domain.ErrDuplicateProduct
		}
	}
	f.nextID++
	p.ID = fmt.Sprintf("%024x", f.nextID)
	f.products = append(f.products, p)
	return p.ID, nil
}

func (f *fakeProductRepo) ListProducts(_ context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Product
	for _, p := range f.products {
		if filter.Size != "" && p.Size != filter.Size {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, p)
	}
	return paginate(out, page), nil
}

// fakeOrderRepo tracks a catalog of known product ids and the orders inserted
// against them.
type fakeOrderRepo struct {
	products  map[string]bool
	orders    []domain.Order
	nextID    int
	insertErr error
}

func newFakeOrderRepo(productIDs ...string) *fakeOrderRepo {
	products := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		products[id] = true
	}
	return &fakeOrderRepo{products: products}
}

func (f *fakeOrderRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeOrderRepo) MissingProducts(_ context.Context, productIDs []string) ([]string, error) {
	var missing []string
	for _, raw := range productIDs {
		if !isHexID(raw) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProductID, raw)
		}
		if !f.products[raw] {
			missing = append(missing, raw)
		}
	}
	return missing, nil
}

func (f *fakeOrderRepo) InsertOrder(_ context.Context, o domain.Order) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.nextID++
	o.ID = fmt.Sprintf("%024x", f.nextID)
	f.orders = append(f.orders, o)
	return o.ID, nil
}

func (f *fakeOrderRepo) ListOrdersByUser(_ context.Context, userID string, page domain.Page) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return paginate(out, page), nil
}

func paginate[T any](in []T, page domain.Page) []T {
	skip := page.Skip()
	if skip > int64(len(in)) {
		skip = int64(len(in))
	}
	out := in[skip:]
	if page.Limit != nil && *page.Limit > 0 && *page.Limit < int64(len(out)) {
		out = out[:*page.Limit]
	}
	return out
}

func isHexID(s string) bool {
	if len(s) != 24 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func int64ptr(v int64) *int64 {
	return &v
}
