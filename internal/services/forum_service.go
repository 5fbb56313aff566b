package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrForumNotFound = errors.New("forum not found")
	ErrTitleRequired = errors.New("title is required")
)

// ForumService handles forum business logic
type ForumService struct {
	forumRepo repository.ForumRepository
	identity  *IdentityResolver
}

// NewForumService creates a new ForumService
func NewForumService(forumRepo repository.ForumRepository, identity *IdentityResolver) *ForumService {
	return &ForumService{
		forumRepo: forumRepo,
		identity:  identity,
	}
}

// CreateForumInput represents input for creating a forum
type CreateForumInput struct {
	RollNo      string
	Title       string
	Description string
}

// CreateForum creates a forum authored by the caller
func (s *ForumService) CreateForum(ctx context.Context, input CreateForumInput) (*models.Forum, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	author, err := s.identity.Resolve(ctx, input.RollNo)
	if err != nil {
		return nil, err
	}

	forum := &models.Forum{
		Title:       title,
		Description: input.Description,
		AuthorID:    author.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.forumRepo.Create(ctx, forum); err != nil {
		return nil, fmt.Errorf("failed to create forum: %w", err)
	}

	return forum, nil
}

// GetForum returns a single forum
func (s *ForumService) GetForum(ctx context.Context, id primitive.ObjectID) (*models.Forum, error) {
	forum, err := s.forumRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrForumNotFound, "find forum")
	}
	return forum, nil
}

// ListForums returns forums newest first
func (s *ForumService) ListForums(ctx context.Context, page repository.Page) ([]models.Forum, int64, error) {
	forums, total, err := s.forumRepo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list forums: %w", err)
	}
	return forums, total, nil
}
