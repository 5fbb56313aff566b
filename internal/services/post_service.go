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

var ErrPostNotFound = errors.New("post not found")

// PostService handles forum post business logic
type PostService struct {
	postRepo  repository.PostRepository
	forumRepo repository.ForumRepository
	identity  *IdentityResolver
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository, forumRepo repository.ForumRepository, identity *IdentityResolver) *PostService {
	return &PostService{
		postRepo:  postRepo,
		forumRepo: forumRepo,
		identity:  identity,
	}
}

// CreatePostInput represents input for creating a post
type CreatePostInput struct {
	RollNo  string
	ForumID primitive.ObjectID
	Content string
}

// CreatePost adds a post to an existing forum
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrContentRequired
	}

	author, err := s.identity.Resolve(ctx, input.RollNo)
	if err != nil {
		return nil, err
	}

	if _, err := s.forumRepo.FindByID(ctx, input.ForumID); err != nil {
		return nil, notFoundOr(err, ErrForumNotFound, "find forum")
	}

	post := &models.Post{
		ForumID:   input.ForumID,
		Content:   input.Content,
		AuthorID:  author.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GetPost returns a single post
func (s *PostService) GetPost(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrPostNotFound, "find post")
	}
	return post, nil
}

// ListPosts returns the posts of a forum
func (s *PostService) ListPosts(ctx context.Context, forumID primitive.ObjectID, page repository.Page) ([]models.Post, int64, error) {
	if forumID.IsZero() {
		return nil, 0, ErrMissingParameter
	}

	posts, total, err := s.postRepo.ListByForum(ctx, forumID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}

// UpdatePost replaces the content of a post written by the caller
func (s *PostService) UpdatePost(ctx context.Context, rollno string, id primitive.ObjectID, content string) (*models.Post, error) {
	_, post, err := guardOwned(ctx, s.identity, rollno, ErrPostNotFound, func(ctx context.Context) (*models.Post, error) {
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

// DeletePost deletes a post written by the caller
func (s *PostService) DeletePost(ctx context.Context, rollno string, id primitive.ObjectID) error {
	_, _, err := guardOwned(ctx, s.identity, rollno, ErrPostNotFound, func(ctx context.Context) (*models.Post, error) {
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
