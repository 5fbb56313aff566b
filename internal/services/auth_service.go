package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kishoreadhith-v/clubs-api/internal/auth"
	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/models"
	"github.com/kishoreadhith-v/clubs-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrRollNoTaken          = errors.New("roll number already registered")
	ErrRollNoRequired       = errors.New("roll number is required")
	ErrInvalidCredentials   = errors.New("invalid roll number or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles signup and login.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
	identity *IdentityResolver
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService, identity *IdentityResolver) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		identity: identity,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	RollNo     string
	Name       string
	Phone      string
	Department string
	Year       int
	Password   string
}

// Signup creates a new user. An existing roll number is rejected without touching the stored record.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	rollno := strings.TrimSpace(input.RollNo)
	if rollno == "" {
		return nil, ErrRollNoRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByRollNo(ctx, rollno); err == nil {
		return nil, ErrRollNoTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check roll number: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		RollNo:       rollno,
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Department:   strings.TrimSpace(input.Department),
		Year:         input.Year,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same roll number.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRollNoTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	RollNo   string
	Password string
}

// Login verifies credentials and returns the user with a fresh token. Unknown roll numbers and wrong
// passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.FindByRollNo(ctx, strings.TrimSpace(input.RollNo))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.RollNo)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// GetCurrentUser resolves the authenticated roll number.
func (s *AuthService) GetCurrentUser(ctx context.Context, rollno string) (*models.User, error) {
	return s.identity.Resolve(ctx, rollno)
}
