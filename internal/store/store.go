// Package store is the document store boundary: collections of BSON documents addressed by filters,
// backed either by MongoDB or by a SQL database through gorm.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNoDocuments is returned by FindOne when no document matches the filter.
	ErrNoDocuments = errors.New("store: no documents in result")
	// ErrDuplicateKey is returned when an insert or update violates a unique index.
	ErrDuplicateKey = errors.New("store: duplicate key")
	// ErrImmutableID is returned when an update would change a document's _id.
	ErrImmutableID = errors.New("store: performing an update on the path '_id' is not allowed")
)

// Store is the set of document operations the application relies on.
type Store interface {
	// FindOne decodes the first document matching filter into out.
	FindOne(ctx context.Context, collection string, filter bson.M, out any) error

	// Find decodes every document matching filter into out, which must be a pointer to a slice.
	Find(ctx context.Context, collection string, filter bson.M, out any, opts ...FindOptions) error

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)

	// InsertOne stores doc and returns its _id, generating one when doc has none.
	InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)

	// UpdateOne applies update to the first document matching filter.
	UpdateOne(ctx context.Context, collection string, filter, update bson.M) (UpdateResult, error)

	// DeleteOne removes the first document matching filter and returns the number removed.
	DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error)

	// ListCollections returns the names of the collections holding documents.
	ListCollections(ctx context.Context) ([]string, error)

	// EnsureUniqueIndex makes field unique across the documents of collection.
	EnsureUniqueIndex(ctx context.Context, collection, field string) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// FindOptions controls ordering and windowing of Find.
type FindOptions struct {
	SortBy string
	Desc   bool
	Skip   int64
	Limit  int64
}

// UpdateResult reports the outcome of UpdateOne.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// ByID is the filter selecting a single document by _id.
func ByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}

func mergeFindOptions(opts []FindOptions) FindOptions {
	var merged FindOptions
	for _, o := range opts {
		if o.SortBy != "" {
			merged.SortBy = o.SortBy
			merged.Desc = o.Desc
		}
		if o.Skip > 0 {
			merged.Skip = o.Skip
		}
		if o.Limit > 0 {
			merged.Limit = o.Limit
		}
	}
	return merged
}

// AddToSet adds value to the array field of the document with the given id unless it is already
// present, as a single atomic update. It reports whether the value was added.
func AddToSet(ctx context.Context, s Store, collection string, id primitive.ObjectID, field string, value any) (bool, error) {
	result, err := s.UpdateOne(ctx, collection,
		bson.M{"_id": id, field: bson.M{"$ne": value}},
		bson.M{"$addToSet": bson.M{field: value}},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}
