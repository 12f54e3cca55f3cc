package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// withTxn runs fn inside one multi-document transaction. The session is bound
// to the context fn receives, so every collection call inside fn joins the
// transaction. The driver retries transient aborts (write conflicts, elections)
// until the deadline; any error from fn aborts the transaction with no partial
// effects visible.
func withTxn(ctx context.Context, s *Store, fn func(ctx context.Context) error) error {
	txnCtx, cancel := context.WithTimeout(ctx, s.txnTimeout)
	defer cancel()

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(txnCtx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Majority()).
		SetWriteConcern(writeconcern.Majority()).
		SetReadPreference(readpref.Primary())

	_, err = session.WithTransaction(txnCtx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	}, txnOpts)
	return err
}

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
