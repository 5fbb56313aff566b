package dto

import (
	"time"

	"github.com/kishoreadhith-v/clubs-api/internal/models"
)

// ForumDTO represents a forum in API responses
type ForumDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    string    `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostDTO represents a forum post in API responses
type PostDTO struct {
	ID        string    `json:"id"`
	ForumID   string    `json:"forum_id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GlobalPostDTO represents a campus-wide post in API responses
type GlobalPostDTO struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	AuthorID     string    `json:"author_id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReplyDTO represents a reply in API responses
type ReplyDTO struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ToForumDTO(forum models.Forum) ForumDTO {
	return ForumDTO{
		ID:          forum.ID.Hex(),
		Title:       forum.Title,
		Description: forum.Description,
		AuthorID:    forum.AuthorID.Hex(),
		CreatedAt:   forum.CreatedAt,
	}
}

func ToPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:        post.ID.Hex(),
		ForumID:   post.ForumID.Hex(),
		Content:   post.Content,
		AuthorID:  post.AuthorID.Hex(),
		CreatedAt: post.CreatedAt,
	}
}

func ToGlobalPostDTO(post models.GlobalPost) GlobalPostDTO {
	participants := post.Participants
	if participants == nil {
		participants = []string{}
	}
	return GlobalPostDTO{
		ID:           post.ID.Hex(),
		Content:      post.Content,
		AuthorID:     post.AuthorID.Hex(),
		Participants: participants,
		CreatedAt:    post.CreatedAt,
	}
}

func ToReplyDTO(reply models.Reply) ReplyDTO {
	return ReplyDTO{
		ID:        reply.ID.Hex(),
		PostID:    reply.PostID.Hex(),
		Content:   reply.Content,
		AuthorID:  reply.AuthorID.Hex(),
		CreatedAt: reply.CreatedAt,
	}
}
