package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
	"github.com/busraislam39/tiktwinwebapp/internal/repository"
)

var ErrBadCredentials = errors.New("invalid username or password")

type UserService struct {
	repo *repository.UserRepo
	auth *AuthService
}

func NewUserService(repo *repository.UserRepo, auth *AuthService) *UserService {
	return &UserService{repo: repo, auth: auth}
}

// resolveRole maps the free-form role string from a registration request onto
// the two role flags. Exactly "creator" (case-insensitive, trimmed) makes a
// creator; everything else, including absent or unrecognized values, makes a
// consumer. Staff and superuser are never granted through registration.
func resolveRole(role string) (isCreator, isConsumer bool) {
	if strings.ToLower(strings.TrimSpace(role)) == "creator" {
		return true, false
	}
	return false, true
}

// Register creates an account with its role flags assigned once, atomically,
// and logs the new user straight in with a minted token pair.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, validationErr("username", "username is required")
	}
	if req.Password == "" {
		return nil, validationErr("password", "password is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	isCreator, isConsumer := resolveRole(req.Role)
	user, err := s.repo.Create(ctx, username, string(hashed), isCreator, isConsumer)
	if err != nil {
		return nil, err
	}

	pair, err := s.auth.MintPair(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{
		User:    userResponse(user),
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}, nil
}

// Login verifies the password and mints a token pair. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrBadCredentials
	}

	pair, err := s.auth.MintPair(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{
		User:    userResponse(user),
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair. Both tokens rotate;
// the user's current role flags are re-read so a deleted account cannot keep
// refreshing.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	claims, err := s.auth.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return s.auth.MintPair(user)
}

func userResponse(u *model.User) *model.UserResponse {
	return &model.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		IsCreator:  u.IsCreator,
		IsConsumer: u.IsConsumer,
	}
}
