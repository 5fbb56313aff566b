package repository

import (
	"context"

	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentEventRepository is a document store implementation of EventRepository
type DocumentEventRepository struct {
	store store.Store
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(st store.Store) EventRepository {
	return &DocumentEventRepository{store: st}
}

func (r *DocumentEventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.Participants == nil {
		event.Participants = []string{}
	}
	id, err := r.store.InsertOne(ctx, constants.CollectionEvents, event)
	if err != nil {
		return translateError(err)
	}
	event.ID = id
	return nil
}

func (r *DocumentEventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	if err := r.store.FindOne(ctx, constants.CollectionEvents, store.ByID(id), &event); err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

func (r *DocumentEventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	return r.find(ctx, bson.M{})
}

func (r *DocumentEventRepository) FindByParticipant(ctx context.Context, rollno string) ([]models.Event, error) {
	return r.find(ctx, bson.M{"participants": rollno})
}

func (r *DocumentEventRepository) AddParticipant(ctx context.Context, id primitive.ObjectID, rollno string) (bool, error) {
	return store.AddToSet(ctx, r.store, constants.CollectionEvents, id, "participants", rollno)
}

func (r *DocumentEventRepository) FindMissingParticipants(ctx context.Context) ([]models.Event, error) {
	// A nil value matches both a missing field and an explicit null.
	return r.find(ctx, bson.M{"participants": nil})
}

func (r *DocumentEventRepository) InitParticipants(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.store.UpdateOne(ctx, constants.CollectionEvents,
		bson.M{"_id": id, "participants": nil},
		bson.M{"$set": bson.M{"participants": []string{}}},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (r *DocumentEventRepository) find(ctx context.Context, filter bson.M) ([]models.Event, error) {
	events := []models.Event{}
	if err := r.store.Find(ctx, constants.CollectionEvents, filter, &events, store.FindOptions{SortBy: "date"}); err != nil {
		return nil, err
	}
	return events, nil
}
