package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenClaims(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "GUEST", "GUEST", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	tok, err := jwt.Parse(at.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse signed token: %v (valid=%v)", err, tok.Valid)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if got := claims["sub"].(float64); uint64(got) != 42 {
		t.Errorf("sub = %v, want 42", got)
	}
	if got := claims["subject"].(string); got != "GUEST" {
		t.Errorf("subject = %q, want GUEST", got)
	}
	if got := claims["role"].(string); got != "GUEST" {
		t.Errorf("role = %q, want GUEST", got)
	}
}

func TestRefreshTokenHashIsStable(t *testing.T) {
	rt, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Errorf("raw token length = %d, want 96 hex chars", len(rt.Raw))
	}
	if HashRefreshRaw(rt.Raw) != HashRefreshRaw(rt.Raw) {
		t.Error("hashing the same token twice differs")
	}
	other, _ := NewRefreshToken(30)
	if HashRefreshRaw(rt.Raw) == HashRefreshRaw(other.Raw) {
		t.Error("distinct tokens share a hash")
	}
}
