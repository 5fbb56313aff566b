package store

import (
	"bytes"
	"fmt"

	"github.com/256dpi/lungo/bsonkit"
	"github.com/256dpi/lungo/mongokit"
	"go.mongodb.org/mongo-driver/bson"
)

// toDoc converts a filter, update or stored document into the ordered form mongokit evaluates.
// Values are normalized to their BSON types on the way (int to int32, time.Time to DateTime).
func toDoc(v any) (bsonkit.Doc, error) {
	if m, ok := v.(bson.M); ok && m == nil {
		v = bson.M{}
	}

	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// applyUpdate applies update to doc in place and reports whether the stored bytes changed.
func applyUpdate(doc, query, update bsonkit.Doc) (bool, error) {
	if len(*update) == 0 {
		return false, fmt.Errorf("store: empty update document")
	}

	before, err := bson.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to encode document: %w", err)
	}
	id := bsonkit.Get(doc, "_id")

	if _, err := mongokit.Apply(doc, query, update, false, nil); err != nil {
		return false, err
	}
	if bsonkit.Compare(bsonkit.Get(doc, "_id"), id) != 0 {
		return false, ErrImmutableID
	}

	after, err := bson.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to encode document: %w", err)
	}
	return !bytes.Equal(before, after), nil
}
