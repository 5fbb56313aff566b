package repository

import (
	"context"

	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentReplyRepository is a document store implementation of ReplyRepository
type DocumentReplyRepository struct {
	store store.Store
}

// NewReplyRepository creates a new ReplyRepository
func NewReplyRepository(st store.Store) ReplyRepository {
	return &DocumentReplyRepository{store: st}
}

func (r *DocumentReplyRepository) Create(ctx context.Context, reply *models.Reply) error {
	id, err := r.store.InsertOne(ctx, constants.CollectionReplies, reply)
	if err != nil {
		return translateError(err)
	}
	reply.ID = id
	return nil
}

func (r *DocumentReplyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reply, error) {
	var reply models.Reply
	if err := r.store.FindOne(ctx, constants.CollectionReplies, store.ByID(id), &reply); err != nil {
		return nil, translateError(err)
	}
	return &reply, nil
}

func (r *DocumentReplyRepository) ListByPost(ctx context.Context, postID primitive.ObjectID, page Page) ([]models.Reply, int64, error) {
	filter := bson.M{"post_id": postID}

	total, err := r.store.Count(ctx, constants.CollectionReplies, filter)
	if err != nil {
		return nil, 0, err
	}

	replies := []models.Reply{}
	if err := r.store.Find(ctx, constants.CollectionReplies, filter, &replies, page.findOptions("created_at", false)); err != nil {
		return nil, 0, err
	}
	return replies, total, nil
}

func (r *DocumentReplyRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	result, err := r.store.UpdateOne(ctx, constants.CollectionReplies, store.ByID(id), bson.M{
		"$set": bson.M{"content": content},
	})
	return requireOne(result.MatchedCount, err)
}

func (r *DocumentReplyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return requireOne(r.store.DeleteOne(ctx, constants.CollectionReplies, store.ByID(id)))
}
