package auth

import (
	"errors"
	"testing"
	"time"
)

func testManager(expiry time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret-do-not-use",
		Expiry:        expiry,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        "admitdesk-api",
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := testManager(time.Hour)

	token, jti, err := manager.GenerateAccessToken(42, "staff@example.com", 3)
	if err != nil {
		t.Fatal(err)
	}
	if jti == "" {
		t.Fatal("expected a non-empty jti")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}

	if claims.UserID != 42 {
		t.Errorf("want user id 42, got %d", claims.UserID)
	}
	if claims.Email != "staff@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.TokenType != "access" {
		t.Errorf("want token type access, got %q", claims.TokenType)
	}
	if claims.TokenVersion != 3 {
		t.Errorf("want token version 3, got %d", claims.TokenVersion)
	}
	if claims.ID != jti {
		t.Errorf("claims jti %q does not match returned jti %q", claims.ID, jti)
	}
}

func TestRefreshTokenType(t *testing.T) {
	manager := testManager(time.Hour)

	token, _, err := manager.GenerateRefreshToken(1, "staff@example.com", 0)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("want token type refresh, got %q", claims.TokenType)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := testManager(time.Hour)
	token, _, err := manager.GenerateAccessToken(1, "staff@example.com", 0)
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTManager(JWTConfig{Secret: "a-different-secret", Expiry: time.Hour})
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("want ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	manager := testManager(-time.Minute)
	token, _, err := manager.GenerateAccessToken(1, "staff@example.com", 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := manager.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("want ErrExpiredToken, got %v", err)
	}
}

func TestGetTokenExpiry(t *testing.T) {
	manager := testManager(time.Hour)
	token, _, err := manager.GenerateAccessToken(1, "staff@example.com", 0)
	if err != nil {
		t.Fatal(err)
	}

	expiry, err := manager.GetTokenExpiry(token)
	if err != nil {
		t.Fatal(err)
	}

	want := time.Now().Add(time.Hour)
	if expiry.Before(want.Add(-time.Minute)) || expiry.After(want.Add(time.Minute)) {
		t.Errorf("expiry %v not within a minute of %v", expiry, want)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := testManager(time.Hour)
	if _, err := manager.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("want ErrInvalidToken, got %v", err)
	}
}
