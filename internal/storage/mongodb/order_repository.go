package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
)

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTxn(ctx, r.store, fn)
}

// MissingProducts resolves the given product ids against the catalog in one
// batched lookup and returns the ids that do not exist. A malformed id fails
// the whole call with ErrInvalidProductID naming the offender.
func (r *OrderRepository) MissingProducts(ctx context.Context, productIDs []string) ([]string, error) {
	ids := make([]primitive.ObjectID, 0, len(productIDs))
	for _, raw := range productIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProductID, raw)
		}
		ids = append(ids, id)
	}

	cur, err := r.store.db.Collection(productsCollection).Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("lookup products: %w", err)
	}
	defer cur.Close(ctx)

	found := make(map[primitive.ObjectID]struct{}, len(ids))
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product id: %w", err)
		}
		found[doc.ID] = struct{}{}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("lookup products: %w", err)
	}

	var missing []string
	for i, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, productIDs[i])
		}
	}
	return missing, nil
}

// InsertOrder persists the order and returns its store-assigned id.
func (r *OrderRepository) InsertOrder(ctx context.Context, o domain.Order) (string, error) {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemDoc{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	doc := orderDoc{
		UserID:    o.UserID,
		Items:     items,
		CreatedAt: o.CreatedAt,
	}

	res, err := r.store.db.Collection(ordersCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert order: unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

// ListOrdersByUser returns the user's orders in ascending insertion (_id) order.
func (r *OrderRepository) ListOrdersByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if skip := page.Skip(); skip > 0 {
		opts.SetSkip(skip)
	}
	if page.Limit != nil && *page.Limit > 0 {
		opts.SetLimit(*page.Limit)
	}

	cur, err := r.store.db.Collection(ordersCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Order
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}
