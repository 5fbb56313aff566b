package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GlobalPostService handles campus-wide posts, which live outside forums and collect participants.
type GlobalPostService struct {
	postRepo repository.GlobalPostRepository
	identity *IdentityResolver
}

// NewGlobalPostService creates a new GlobalPostService
func NewGlobalPostService(postRepo repository.GlobalPostRepository, identity *IdentityResolver) *GlobalPostService {
	return &GlobalPostService{
		postRepo: postRepo,
		identity: identity,
	}
}

func (s *GlobalPostService) CreatePost(ctx context.Context, rollno, content string) (*models.GlobalPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	author, err := s.identity.Resolve(ctx, rollno)
	if err != nil {
		return nil, err
	}

	post := &models.GlobalPost{
		Content:      content,
		AuthorID:     author.ID,
		Participants: []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s *GlobalPostService) GetPost(ctx context.Context, id primitive.ObjectID) (*models.GlobalPost, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrPostNotFound, "find post")
	}
	return post, nil
}

func (s *GlobalPostService) ListPosts(ctx context.Context, page repository.Page) ([]models.GlobalPost, int64, error) {
	posts, total, err := s.postRepo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}

func (s *GlobalPostService) UpdatePost(ctx context.Context, rollno string, id primitive.ObjectID, content string) (*models.GlobalPost, error) {
	_, post, err := guardOwned(ctx, s.identity, rollno, ErrPostNotFound, func(ctx context.Context) (*models.GlobalPost, error) {
		return s.postRepo.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	if err := s.postRepo.UpdateContent(ctx, id, content); err != nil {
		return nil, notFoundOr(err, ErrPostNotFound, "update post")
	}

	post.Content = content
	return post, nil
}

func (s *GlobalPostService) DeletePost(ctx context.Context, rollno string, id primitive.ObjectID) error {
	_, _, err := guardOwned(ctx, s.identity, rollno, ErrPostNotFound, func(ctx context.Context) (*models.GlobalPost, error) {
		return s.postRepo.FindByID(ctx, id)
	})
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, ErrPostNotFound, "delete post")
	}
	return nil
}

// JoinPost adds the caller to the participants of a post. It reports false when the caller had
// already joined.
func (s *GlobalPostService) JoinPost(ctx context.Context, rollno string, id primitive.ObjectID) (bool, error) {
	user, err := s.identity.Resolve(ctx, rollno)
	if err != nil {
		return false, err
	}

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return false, notFoundOr(err, ErrPostNotFound, "find post")
	}
	if post.HasParticipant(user.RollNo) {
		return false, nil
	}

	added, err := s.postRepo.AddParticipant(ctx, id, user.RollNo)
	if err != nil {
		return false, fmt.Errorf("failed to join post: %w", err)
	}
	return added, nil
}
