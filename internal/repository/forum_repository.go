package repository

import (
	"context"

	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentForumRepository is a document store implementation of ForumRepository
type DocumentForumRepository struct {
	store store.Store
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(st store.Store) ForumRepository {
	return &DocumentForumRepository{store: st}
}

func (r *DocumentForumRepository) Create(ctx context.Context, forum *models.Forum) error {
	id, err := r.store.InsertOne(ctx, constants.CollectionForums, forum)
	if err != nil {
		return translateError(err)
	}
	forum.ID = id
	return nil
}

func (r *DocumentForumRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Forum, error) {
	var forum models.Forum
	if err := r.store.FindOne(ctx, constants.CollectionForums, store.ByID(id), &forum); err != nil {
		return nil, translateError(err)
	}
	return &forum, nil
}

func (r *DocumentForumRepository) List(ctx context.Context, page Page) ([]models.Forum, int64, error) {
	total, err := r.store.Count(ctx, constants.CollectionForums, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	forums := []models.Forum{}
	if err := r.store.Find(ctx, constants.CollectionForums, bson.M{}, &forums, page.findOptions("created_at", true)); err != nil {
		return nil, 0, err
	}
	return forums, total, nil
}
