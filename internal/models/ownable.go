package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Ownable is implemented by documents that record the user who created them.
type Ownable interface {
	AuthorRef() primitive.ObjectID
}

// IsAuthoredBy reports whether user created resource.
func IsAuthoredBy(resource Ownable, user *User) bool {
	return user != nil && !user.ID.IsZero() && resource.AuthorRef() == user.ID
}
