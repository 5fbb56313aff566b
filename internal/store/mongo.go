package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore wraps the named database of an already connected client.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client: client,
		db:     client.Database(database),
	}
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	result := s.db.Collection(collection).FindOne(ctx, filter)
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNoDocuments
		}
		return err
	}
	return result.Decode(out)
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M, out any, opts ...FindOptions) error {
	o := mergeFindOptions(opts)

	findOpts := options.Find()
	if o.SortBy != "" {
		direction := 1
		if o.Desc {
			direction = -1
		}
		findOpts.SetSort(bson.D{{Key: o.SortBy, Value: direction}})
	}
	if o.Skip > 0 {
		findOpts.SetSkip(o.Skip)
	}
	if o.Limit > 0 {
		findOpts.SetLimit(o.Limit)
	}

	if filter == nil {
		filter = bson.M{}
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return s.db.Collection(collection).CountDocuments(ctx, filter)
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter, update bson.M) (UpdateResult, error) {
	result, err := s.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return UpdateResult{}, fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		return UpdateResult{}, err
	}
	return UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	result, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) EnsureUniqueIndex(ctx context.Context, collection, field string) error {
	_, err := s.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_" + field),
	})
	return err
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
