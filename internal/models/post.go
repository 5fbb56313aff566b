package models

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a message inside a forum. Replies hang off posts.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ForumID   primitive.ObjectID `bson:"forum_id" json:"forum_id"`
	Content   string             `bson:"content" json:"content"`
	AuthorID  primitive.ObjectID `bson:"author_id" json:"author_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (p Post) AuthorRef() primitive.ObjectID { return p.AuthorID }

// GlobalPost is a campus-wide post outside any forum that users can join.
type GlobalPost struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content      string             `bson:"content" json:"content"`
	AuthorID     primitive.ObjectID `bson:"author_id" json:"author_id"`
	Participants []string           `bson:"participants" json:"participants"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

func (p GlobalPost) AuthorRef() primitive.ObjectID { return p.AuthorID }

// HasParticipant reports whether rollno already joined the post.
func (p GlobalPost) HasParticipant(rollno string) bool {
	return slices.Contains(p.Participants, rollno)
}
