package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/storage/mongodb"
)

const (
	defaultTestMongoURL = "mongodb://localhost:27017/?replicaSet=rs0"
	testDatabase        = "ecommerce_test"
)

// NewTestStore connects to the test MongoDB deployment, skipping the test when
// it is unreachable or does not support multi-document transactions (a
// standalone server without a replica set).
func NewTestStore(t *testing.T) *mongodb.Store {
	t.Helper()
	uri := os.Getenv("TEST_MONGODB_URL")
	if uri == "" {
		uri = defaultTestMongoURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := mongodb.Open(ctx, uri, testDatabase)
	if err != nil {
		t.Skipf("skipping MongoDB integration tests: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close(context.Background())
	})

	repo := mongodb.NewProductRepository(store)
	if err := repo.WithTx(ctx, func(context.Context) error { return nil }); err != nil {
		t.Skipf("skipping MongoDB integration tests, transactions unsupported: %v", err)
	}

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return store
}

// DropAll clears both collections between tests. Indexes survive a delete, so
// the uniqueness constraint stays in force.
func DropAll(t *testing.T, ctx context.Context, store *mongodb.Store) {
	t.Helper()
	for _, name := range []string{"products", "orders"} {
		if _, err := store.Database().Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			t.Fatalf("clear %s: %v", name, err)
		}
	}
}

// InsertProduct seeds a product fixture directly and returns its hex id.
func InsertProduct(t *testing.T, ctx context.Context, store *mongodb.Store, name, size string, price int64) string {
	t.Helper()
	res, err := store.Database().Collection("products").InsertOne(ctx, bson.M{
		"name":       name,
		"size":       size,
		"price":      price,
		"created_at": time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert product fixture: %v", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		t.Fatalf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex()
}
