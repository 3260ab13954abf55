package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pennywise/internal/auth"
	apperrors "pennywise/internal/errors"
	"pennywise/internal/model"
	"pennywise/internal/repository"
	"pennywise/internal/validation"
)

const bcryptCost = 10

// AuthService handles signup and signin.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Signin(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Signup validates the payload, rejects duplicate emails and persists a new
// user with a bcrypt password hash. No token is issued; the caller signs in
// separately.
func (s *authService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	if err := validation.Signup(name, email, password); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Signin authenticates a user and issues a token. Unknown email and wrong
// password both produce ErrInvalidCredentials so neither case is revealed.
func (s *authService) Signin(ctx context.Context, email, password string) (string, error) {
	if err := validation.Signin(email, password); err != nil {
		return "", err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
