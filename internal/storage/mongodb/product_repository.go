package mongodb

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTxn(ctx, r.store, fn)
}

// InsertProduct persists the product and returns its store-assigned id. The
// unique (name, size, price) index rejects duplicates at commit time, so two
// concurrent inserts of the same triple have exactly one winner.
func (r *ProductRepository) InsertProduct(ctx context.Context, p domain.Product) (string, error) {
	doc := productDoc{
		Name:      p.Name,
		Size:      p.Size,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}

	res, err := r.store.db.Collection(productsCollection).InsertOne(ctx, doc)
	if err != nil {
		if isDuplicateKey(err) {
			return "", domain.ErrDuplicateProduct
		}
		return "", fmt.Errorf("insert product: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert product: unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

// ListProducts returns matching products in ascending insertion (_id) order.
// The name filter is a case-insensitive substring match with regex
// metacharacters escaped.
func (r *ProductRepository) ListProducts(ctx context.Context, f domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Name), Options: "i"}
	}
	if f.Size != "" {
		filter["size"] = f.Size
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if skip := page.Skip(); skip > 0 {
		opts.SetSkip(skip)
	}
	if page.Limit != nil && *page.Limit > 0 {
		opts.SetLimit(*page.Limit)
	}

	cur, err := r.store.db.Collection(productsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}
