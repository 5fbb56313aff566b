package database

import (
	"context"
	"fmt"

	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"github.com/rs/zerolog/log"
)

// uniqueIndexes lists the fields that must be unique within their collection.
var uniqueIndexes = []struct {
	collection string
	field      string
}{
	{constants.CollectionUsers, "rollno"},
}

// Migrate creates the indexes the application relies on. It is safe to run on every start.
func Migrate(ctx context.Context, st store.Store) error {
	for _, idx := range uniqueIndexes {
		if err := st.EnsureUniqueIndex(ctx, idx.collection, idx.field); err != nil {
			return fmt.Errorf("failed to create unique index on %s.%s: %w", idx.collection, idx.field, err)
		}
		log.Debug().Str("collection", idx.collection).Str("field", idx.field).Msg("unique index ensured")
	}

	collections, err := st.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	log.Info().Strs("collections", collections).Msg("database migrations completed")

	return nil
}
