package utils

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID parses a 24-character hex identifier. name is used in the error message.
func ParseObjectID(name, value string) (primitive.ObjectID, error) {
	if value == "" {
		return primitive.NilObjectID, fmt.Errorf("%s is required", name)
	}
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid %s: must be a 24-character hex string", name)
	}
	return id, nil
}
