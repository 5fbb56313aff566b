package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/repository"
)

var (
	ErrNotAuthor        = errors.New("only the author can perform this action")
	ErrInvalidID        = errors.New("invalid id")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrContentRequired  = errors.New("content is required")
)

// guardOwned resolves the actor, loads the resource and checks that the actor wrote it, in that
// order. notFound replaces repository.ErrNotFound from load.
func guardOwned[T models.Ownable](
	ctx context.Context,
	identity *IdentityResolver,
	rollno string,
	notFound error,
	load func(context.Context) (T, error),
) (*models.User, T, error) {
	var zero T

	actor, err := identity.Resolve(ctx, rollno)
	if err != nil {
		return nil, zero, err
	}

	resource, err := load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, zero, notFound
		}
		return nil, zero, fmt.Errorf("failed to load resource: %w", err)
	}

	if !models.IsAuthoredBy(resource, actor) {
		return nil, zero, ErrNotAuthor
	}

	return actor, resource, nil
}

// notFoundOr maps repository.ErrNotFound onto notFound and wraps anything else.
func notFoundOr(err, notFound error, action string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
