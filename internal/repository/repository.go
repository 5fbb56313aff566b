package repository

import (
	"context"
	"errors"

	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicate is returned when a unique field is already taken.
	ErrDuplicate = errors.New("repository: duplicate")
)

// Page selects a window of a listing. A zero Limit returns everything.
type Page struct {
	Skip  int64
	Limit int64
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a user and sets its ID
	Create(ctx context.Context, user *models.User) error

	// FindByRollNo finds a user by roll number
	FindByRollNo(ctx context.Context, rollno string) (*models.User, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// ForumRepository defines the interface for forum data access
type ForumRepository interface {
	Create(ctx context.Context, forum *models.Forum) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Forum, error)
	// List returns forums newest first
	List(ctx context.Context, page Page) ([]models.Forum, int64, error)
}

// PostRepository defines the interface for forum post data access
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	// ListByForum returns the posts of a forum oldest first
	ListByForum(ctx context.Context, forumID primitive.ObjectID, page Page) ([]models.Post, int64, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GlobalPostRepository defines the interface for campus-wide post data access
type GlobalPostRepository interface {
	Create(ctx context.Context, post *models.GlobalPost) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.GlobalPost, error)
	// List returns global posts newest first
	List(ctx context.Context, page Page) ([]models.GlobalPost, int64, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AddParticipant adds rollno unless present and reports whether it was added
	AddParticipant(ctx context.Context, id primitive.ObjectID, rollno string) (bool, error)
}

// ReplyRepository defines the interface for reply data access
type ReplyRepository interface {
	Create(ctx context.Context, reply *models.Reply) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reply, error)
	// ListByPost returns the replies to a post oldest first
	ListByPost(ctx context.Context, postID primitive.ObjectID, page Page) ([]models.Reply, int64, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)

	// FindAll returns every event ordered by date
	FindAll(ctx context.Context) ([]models.Event, error)

	// FindByParticipant returns the events rollno registered for
	FindByParticipant(ctx context.Context, rollno string) ([]models.Event, error)

	// AddParticipant adds rollno unless present and reports whether it was added
	AddParticipant(ctx context.Context, id primitive.ObjectID, rollno string) (bool, error)

	// FindMissingParticipants returns events whose participants field is missing or null
	FindMissingParticipants(ctx context.Context) ([]models.Event, error)

	// InitParticipants sets an empty participant list if the field is still missing or null
	InitParticipants(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, store.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, store.ErrDuplicateKey):
		return ErrDuplicate
	default:
		return err
	}
}

func (p Page) findOptions(sortBy string, desc bool) store.FindOptions {
	return store.FindOptions{
		SortBy: sortBy,
		Desc:   desc,
		Skip:   p.Skip,
		Limit:  p.Limit,
	}
}

// requireOne maps a zero affected count onto ErrNotFound.
func requireOne(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
