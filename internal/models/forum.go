package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Forum struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	AuthorID    primitive.ObjectID `bson:"author_id" json:"author_id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

func (f Forum) AuthorRef() primitive.ObjectID { return f.AuthorID }
