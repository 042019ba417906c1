// Package repo is the only layer that talks to the document store.
//
// Driver is the store primitive set (insert, find, find-one-and-set, delete)
// and has two implementations: MongoDriver for production and SQLiteDriver, an
// embedded store that keeps BSON documents in a single GORM table. Collection
// builds the per-resource accessor on top of a Driver.
//
// Absence is never an error at this layer: lookups that match nothing return a
// nil document. Every other failure is returned as a *StoreError.
package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Driver is the document-store contract consumed by Collection.
//
// Implementations must be safe for concurrent use and must guarantee
// read-your-writes: a FindOne issued after a successful InsertOne through the
// same Driver observes the inserted document.
type Driver interface {
	// InsertOne stores doc and returns the identifier the store assigned.
	InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	// Find returns every document of the collection.
	Find(ctx context.Context, collection string) ([]bson.Raw, error)
	// FindOne returns the document with id, or nil if none exists.
	FindOne(ctx context.Context, collection string, id primitive.ObjectID) (bson.Raw, error)
	// FindOneAndSet sets the given top-level fields on the document with id and
	// returns its post-update image in the same atomic step, or nil if none exists.
	FindOneAndSet(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (bson.Raw, error)
	// DeleteOne removes the document with id and reports whether one was removed.
	DeleteOne(ctx context.Context, collection string, id primitive.ObjectID) (bool, error)
	// Ping checks connectivity.
	Ping(ctx context.Context) error
	// Close releases the underlying connection pool.
	Close(ctx context.Context) error
}
