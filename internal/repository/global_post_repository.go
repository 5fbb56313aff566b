package repository

import (
	"context"

	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentGlobalPostRepository is a document store implementation of GlobalPostRepository
type DocumentGlobalPostRepository struct {
	store store.Store
}

// NewGlobalPostRepository creates a new GlobalPostRepository
func NewGlobalPostRepository(st store.Store) GlobalPostRepository {
	return &DocumentGlobalPostRepository{store: st}
}

func (r *DocumentGlobalPostRepository) Create(ctx context.Context, post *models.GlobalPost) error {
	if post.Participants == nil {
		post.Participants = []string{}
	}
	id, err := r.store.InsertOne(ctx, constants.CollectionGlobalPosts, post)
	if err != nil {
		return translateError(err)
	}
	post.ID = id
	return nil
}

func (r *DocumentGlobalPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.GlobalPost, error) {
	var post models.GlobalPost
	if err := r.store.FindOne(ctx, constants.CollectionGlobalPosts, store.ByID(id), &post); err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

func (r *DocumentGlobalPostRepository) List(ctx context.Context, page Page) ([]models.GlobalPost, int64, error) {
	total, err := r.store.Count(ctx, constants.CollectionGlobalPosts, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	posts := []models.GlobalPost{}
	if err := r.store.Find(ctx, constants.CollectionGlobalPosts, bson.M{}, &posts, page.findOptions("created_at", true)); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *DocumentGlobalPostRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	result, err := r.store.UpdateOne(ctx, constants.CollectionGlobalPosts, store.ByID(id), bson.M{
		"$set": bson.M{"content": content},
	})
	return requireOne(result.MatchedCount, err)
}

func (r *DocumentGlobalPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return requireOne(r.store.DeleteOne(ctx, constants.CollectionGlobalPosts, store.ByID(id)))
}

func (r *DocumentGlobalPostRepository) AddParticipant(ctx context.Context, id primitive.ObjectID, rollno string) (bool, error) {
	return store.AddToSet(ctx, r.store, constants.CollectionGlobalPosts, id, "participants", rollno)
}
