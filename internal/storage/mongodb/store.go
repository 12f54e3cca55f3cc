package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultTxnTimeout     = 10 * time.Second

	productsCollection = "products"
	ordersCollection   = "orders"
)

// Store owns the client and database handles shared by the repositories.
// Reads run at majority read concern against the primary; writes are not
// acknowledged until replicated to a majority of the replica set.
type Store struct {
	client     *mongo.Client
	db         *mongo.Database
	txnTimeout time.Duration
}

type StoreOption func(*Store)

// WithTxnTimeout bounds every transaction started through the repositories.
func WithTxnTimeout(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.txnTimeout = d
		}
	}
}

// Open connects to the store and verifies it is reachable.
func Open(ctx context.Context, uri, dbName string, opts ...StoreOption) (*Store, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetReadConcern(readconcern.Majority()).
		SetWriteConcern(writeconcern.Majority()).
		SetReadPreference(readpref.Primary())

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	s := &Store{
		client:     client,
		db:         client.Database(dbName),
		txnTimeout: defaultTxnTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Ping verifies the store is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("mongodb store is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	return s.client.Ping(pingCtx, readpref.Primary())
}

// Database exposes the raw handle for bootstrap and test fixtures.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the services rely on: the unique
// (name, size, price) constraint that closes the duplicate-product race, the
// text index behind name search, and the user_id index behind order listings.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	products := s.db.Collection(productsCollection)
	_, err := products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: "text"}},
		},
		{
			Keys: bson.D{
				{Key: "name", Value: 1},
				{Key: "size", Value: 1},
				{Key: "price", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_name_size_price"),
		},
	})
	if err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}

	orders := s.db.Collection(ordersCollection)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	}); err != nil {
		return fmt.Errorf("create order indexes: %w", err)
	}
	return nil
}
