package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/repository"
)

// IdentityResolver maps a verified roll number to the stored user.
type IdentityResolver struct {
	userRepo repository.UserRepository
}

// NewIdentityResolver creates a new IdentityResolver
func NewIdentityResolver(userRepo repository.UserRepository) *IdentityResolver {
	return &IdentityResolver{userRepo: userRepo}
}

// Resolve returns the user holding rollno, or ErrUserNotFound.
func (r *IdentityResolver) Resolve(ctx context.Context, rollno string) (*models.User, error) {
	user, err := r.userRepo.FindByRollNo(ctx, rollno)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
