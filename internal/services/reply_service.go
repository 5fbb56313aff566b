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

var ErrReplyNotFound = errors.New("reply not found")

// ReplyService handles reply business logic
type ReplyService struct {
	replyRepo repository.ReplyRepository
	postRepo  repository.PostRepository
	identity  *IdentityResolver
}

// NewReplyService creates a new ReplyService
func NewReplyService(replyRepo repository.ReplyRepository, postRepo repository.PostRepository, identity *IdentityResolver) *ReplyService {
	return &ReplyService{
		replyRepo: replyRepo,
		postRepo:  postRepo,
		identity:  identity,
	}
}

// CreateReplyInput represents input for replying to a post
type CreateReplyInput struct {
	RollNo  string
	PostID  primitive.ObjectID
	Content string
}

// CreateReply adds a reply to an existing post
func (s *ReplyService) CreateReply(ctx context.Context, input CreateReplyInput) (*models.Reply, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrContentRequired
	}

	author, err := s.identity.Resolve(ctx, input.RollNo)
	if err != nil {
		return nil, err
	}

	if _, err := s.postRepo.FindByID(ctx, input.PostID); err != nil {
		return nil, notFoundOr(err, ErrPostNotFound, "find post")
	}

	reply := &models.Reply{
		PostID:    input.PostID,
		Content:   input.Content,
		AuthorID:  author.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}

	return reply, nil
}

// GetReply returns a single reply
func (s *ReplyService) GetReply(ctx context.Context, id primitive.ObjectID) (*models.Reply, error) {
	reply, err := s.replyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrReplyNotFound, "find reply")
	}
	return reply, nil
}

// ListReplies returns the replies to a post
func (s *ReplyService) ListReplies(ctx context.Context, postID primitive.ObjectID, page repository.Page) ([]models.Reply, int64, error) {
	if postID.IsZero() {
		return nil, 0, ErrMissingParameter
	}

	replies, total, err := s.replyRepo.ListByPost(ctx, postID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list replies: %w", err)
	}
	return replies, total, nil
}

// UpdateReply replaces the content of a reply written by the caller
func (s *ReplyService) UpdateReply(ctx context.Context, rollno string, id primitive.ObjectID, content string) (*models.Reply, error) {
	_, reply, err := guardOwned(ctx, s.identity, rollno, ErrReplyNotFound, func(ctx context.Context) (*models.Reply, error) {
		return s.replyRepo.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	if err := s.replyRepo.UpdateContent(ctx, id, content); err != nil {
		return nil, notFoundOr(err, ErrReplyNotFound, "update reply")
	}

	reply.Content = content
	return reply, nil
}

// DeleteReply deletes a reply written by the caller
func (s *ReplyService) DeleteReply(ctx context.Context, rollno string, id primitive.ObjectID) error {
	_, _, err := guardOwned(ctx, s.identity, rollno, ErrReplyNotFound, func(ctx context.Context) (*models.Reply, error) {
		return s.replyRepo.FindByID(ctx, id)
	})
	if err != nil {
		return err
	}

	if err := s.replyRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, ErrReplyNotFound, "delete reply")
	}
	return nil
}
