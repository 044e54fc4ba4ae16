package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by handlers when the service started without a
// working database connection (degraded mode).
var ErrUnavailable = errors.New("database not available")

// Store provides uniform create/list access to any named collection. Handlers
// validate and normalize payloads before calling Create; the store enforces no
// schema of its own.
type Store interface {
	// Create inserts the document as-is and returns the store-assigned id as
	// an opaque string.
	Create(ctx context.Context, collection string, doc bson.M) (string, error)
	// List returns up to limit documents matching filter. Each returned
	// document carries its id as a string under "_id". Order is store-defined;
	// no sort is applied.
	List(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	// Collections enumerates existing collection names (used by diagnostics).
	Collections(ctx context.Context) ([]string, error)
}
