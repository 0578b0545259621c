package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
	"github.com/busraislam39/tiktwinwebapp/internal/policy"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Token types embedded in claims so a refresh token can never be replayed as
// an access token.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims carries the identity inside a signed token. The role flags ride
// along so policy checks never need a database round trip.
type Claims struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	IsCreator  bool   `json:"is_creator"`
	IsConsumer bool   `json:"is_consumer"`
	TokenType  string `json:"token_type"`
	jwt.RegisteredClaims
}

// Identity converts validated claims into the explicit identity passed to
// policy checks.
func (c *Claims) Identity() policy.Identity {
	return policy.Identity{
		UserID:        c.UserID,
		Username:      c.Username,
		IsCreator:     c.IsCreator,
		IsConsumer:    c.IsConsumer,
		Authenticated: true,
	}
}

// AuthService mints and validates the access/refresh bearer pair.
type AuthService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// MintPair issues a fresh access/refresh pair for a user.
func (s *AuthService) MintPair(u *model.User) (*model.TokenPair, error) {
	access, err := s.sign(u, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(u, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &model.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *AuthService) sign(u *model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:     u.ID,
		Username:   u.Username,
		IsCreator:  u.IsCreator,
		IsConsumer: u.IsConsumer,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateAccess parses and verifies an access token.
func (s *AuthService) ValidateAccess(tokenString string) (*Claims, error) {
	return s.validate(tokenString, tokenTypeAccess)
}

// ValidateRefresh parses and verifies a refresh token.
func (s *AuthService) ValidateRefresh(tokenString string) (*Claims, error) {
	return s.validate(tokenString, tokenTypeRefresh)
}

func (s *AuthService) validate(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
