package repository

import (
	"context"

	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentUserRepository is a document store implementation of UserRepository
type DocumentUserRepository struct {
	store store.Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(st store.Store) UserRepository {
	return &DocumentUserRepository{store: st}
}

// Create inserts a user
func (r *DocumentUserRepository) Create(ctx context.Context, user *models.User) error {
	id, err := r.store.InsertOne(ctx, constants.CollectionUsers, user)
	if err != nil {
		return translateError(err)
	}
	user.ID = id
	return nil
}

// FindByRollNo finds a user by roll number
func (r *DocumentUserRepository) FindByRollNo(ctx context.Context, rollno string) (*models.User, error) {
	var user models.User
	if err := r.store.FindOne(ctx, constants.CollectionUsers, bson.M{"rollno": rollno}, &user); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// FindByID finds a user by ID
func (r *DocumentUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.store.FindOne(ctx, constants.CollectionUsers, store.ByID(id), &user); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
