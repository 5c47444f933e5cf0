package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "CUSTOMER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method %v", tok.Method)
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse issued token: %v", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims are %T, want MapClaims", tok.Claims)
	}
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "CUSTOMER" {
		t.Errorf("role = %v, want CUSTOMER", claims["role"])
	}
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	at, err := NewAccessToken("right-secret", 1, "ADMIN", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil && tok.Valid {
		t.Fatal("token validated with the wrong secret")
	}
}

func TestHashRefreshRawIsDeterministic(t *testing.T) {
	a := HashRefreshRaw("some-raw-token")
	b := HashRefreshRaw("some-raw-token")
	if a != b {
		t.Errorf("same input hashed differently: %q vs %q", a, b)
	}
	if len(a) != 64 { // SHA-256 hex
		t.Errorf("hash length = %d, want 64", len(a))
	}
	if HashRefreshRaw("other-token") == a {
		t.Error("different inputs produced the same hash")
	}
}

func TestRefreshTokensAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 16; i++ {
		rt, err := NewRefreshToken(7)
		if err != nil {
			t.Fatalf("NewRefreshToken: %v", err)
		}
		if seen[rt.Raw] {
			t.Fatalf("duplicate refresh token after %d draws", i)
		}
		seen[rt.Raw] = true
	}
}

func TestClaimTokenShape(t *testing.T) {
	tok, err := NewClaimToken()
	if err != nil {
		t.Fatalf("NewClaimToken: %v", err)
	}
	if len(tok) != 48 { // 24 bytes hex encoded
		t.Errorf("claim token length = %d, want 48", len(tok))
	}
	other, err := NewClaimToken()
	if err != nil {
		t.Fatalf("NewClaimToken: %v", err)
	}
	if tok == other {
		t.Error("two claim tokens are identical")
	}
}

func TestNewOrderRefPrefix(t *testing.T) {
	ref, err := NewOrderRef()
	if err != nil {
		t.Fatalf("NewOrderRef: %v", err)
	}
	if len(ref) != len("ord_")+16 {
		t.Errorf("order ref %q has unexpected length", ref)
	}
	if ref[:4] != "ord_" {
		t.Errorf("order ref %q lacks ord_ prefix", ref)
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "hunter3") {
		t.Error("wrong password accepted")
	}
}
