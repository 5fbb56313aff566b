package repository

import (
	"context"

	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentPostRepository is a document store implementation of PostRepository
type DocumentPostRepository struct {
	store store.Store
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(st store.Store) PostRepository {
	return &DocumentPostRepository{store: st}
}

func (r *DocumentPostRepository) Create(ctx context.Context, post *models.Post) error {
	id, err := r.store.InsertOne(ctx, constants.CollectionPosts, post)
	if err != nil {
		return translateError(err)
	}
	post.ID = id
	return nil
}

func (r *DocumentPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	if err := r.store.FindOne(ctx, constants.CollectionPosts, store.ByID(id), &post); err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

func (r *DocumentPostRepository) ListByForum(ctx context.Context, forumID primitive.ObjectID, page Page) ([]models.Post, int64, error) {
	filter := bson.M{"forum_id": forumID}

	total, err := r.store.Count(ctx, constants.CollectionPosts, filter)
	if err != nil {
		return nil, 0, err
	}

	posts := []models.Post{}
	if err := r.store.Find(ctx, constants.CollectionPosts, filter, &posts, page.findOptions("created_at", false)); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *DocumentPostRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	result, err := r.store.UpdateOne(ctx, constants.CollectionPosts, store.ByID(id), bson.M{
		"$set": bson.M{"content": content},
	})
	return requireOne(result.MatchedCount, err)
}

func (r *DocumentPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return requireOne(r.store.DeleteOne(ctx, constants.CollectionPosts, store.ByID(id)))
}
