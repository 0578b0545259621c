package service

import (
	"errors"
	"testing"
	"time"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:         42,
		Username:   "alice",
		IsCreator:  true,
		IsConsumer: false,
	}
}

func TestMintAndValidatePair(t *testing.T) {
	svc := NewAuthService("test-secret", 30*time.Minute, 24*time.Hour)

	pair, err := svc.MintPair(testUser())
	if err != nil {
		t.Fatalf("MintPair: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("both tokens must be non-empty")
	}
	if pair.Access == pair.Refresh {
		t.Error("access and refresh tokens must differ")
	}

	claims, err := svc.ValidateAccess(pair.Access)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Errorf("claims = %+v", claims)
	}
	if !claims.IsCreator || claims.IsConsumer {
		t.Error("role flags must survive the token round trip")
	}

	id := claims.Identity()
	if !id.Authenticated || id.UserID != 42 || !id.IsCreator {
		t.Errorf("Identity() = %+v", id)
	}

	if _, err := svc.ValidateRefresh(pair.Refresh); err != nil {
		t.Fatalf("ValidateRefresh: %v", err)
	}
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	svc := NewAuthService("test-secret", 30*time.Minute, 24*time.Hour)
	pair, err := svc.MintPair(testUser())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateAccess(pair.Refresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh token accepted as access token: %v", err)
	}
	if _, err := svc.ValidateRefresh(pair.Access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access token accepted as refresh token: %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	minter := NewAuthService("secret-a", time.Minute, time.Hour)
	checker := NewAuthService("secret-b", time.Minute, time.Hour)

	pair, err := minter.MintPair(testUser())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := checker.ValidateAccess(pair.Access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with wrong secret accepted: %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewAuthService("test-secret", -time.Minute, -time.Minute)
	pair, err := svc.MintPair(testUser())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateAccess(pair.Access); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expired token error = %v, want ErrExpiredToken", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewAuthService("test-secret", time.Minute, time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.ValidateAccess(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateAccess(%q) = %v, want ErrInvalidToken", tok, err)
		}
	}
}
