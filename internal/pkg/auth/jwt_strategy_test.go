package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewJWTStrategy_DefaultTTL(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
	if strategy.now == nil {
		t.Fatal("expected default clock")
	}
}

func TestNewJWTStrategy_CustomTTL(t *testing.T) {
	ttl := 2 * time.Hour
	strategy := NewJWTStrategy("secret", Options{TTL: ttl})
	if strategy.ttl != ttl {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	token, err := strategy.IssueToken("user-42")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("unexpected user id: %s", userID)
	}
}

func TestJWTStrategy_PayloadShape(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	strategy := NewJWTStrategy("secret", Options{Now: fixedClock(issued)})
	token, err := strategy.IssueToken("abc")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	var payload struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
		Exp int64 `json:"exp"`
		Iat int64 `json:"iat"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Data.ID != "abc" {
		t.Fatalf("unexpected data.id %q", payload.Data.ID)
	}
	if payload.Exp-payload.Iat != int64((24 * time.Hour).Seconds()) {
		t.Fatalf("expected 24h lifetime, got %ds", payload.Exp-payload.Iat)
	}
}

func TestJWTStrategy_IssueEmptyUserID(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if _, err := strategy.IssueToken(""); err == nil {
		t.Fatal("expected error for empty user id")
	}
}

func TestJWTStrategy_ParseMalformed(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestJWTStrategy_ParseTamperedSignature(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	token, err := strategy.IssueToken("7")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	sigStart := strings.LastIndex(token, ".") + 1
	pos := sigStart + 5
	replacement := byte('a')
	if token[pos] == 'a' {
		replacement = 'b'
	}
	tampered := token[:pos] + string(replacement) + token[pos+1:]

	if _, err := strategy.ParseToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_ParseWrongSecret(t *testing.T) {
	token, err := NewJWTStrategy("secret", Options{}).IssueToken("7")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := NewJWTStrategy("other", Options{}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_ParseExpired(t *testing.T) {
	now := time.Now()
	issuer := NewJWTStrategy("secret", Options{Now: fixedClock(now.Add(-25 * time.Hour))})
	token, err := issuer.IssueToken("10")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	verifier := NewJWTStrategy("secret", Options{Now: fixedClock(now)})
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTStrategy_ParseJustBeforeExpiry(t *testing.T) {
	issued := time.Now()
	token, err := NewJWTStrategy("secret", Options{Now: fixedClock(issued)}).IssueToken("10")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	verifier := NewJWTStrategy("secret", Options{Now: fixedClock(issued.Add(23 * time.Hour))})
	if id, err := verifier.ParseToken(token); err != nil || id != "10" {
		t.Fatalf("expected valid token, got %q %v", id, err)
	}
}

func TestJWTStrategy_ParseRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		Data: Subject{ID: "1"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewJWTStrategy("secret", Options{}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_ParseRequiresExpiryAndSubject(t *testing.T) {
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Data: Subject{ID: "1"}}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewJWTStrategy("secret", Options{}).ParseToken(noExpiry); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for token without exp, got %v", err)
	}

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewJWTStrategy("secret", Options{}).ParseToken(noSubject); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for token without subject, got %v", err)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy.Name() != "jwt" {
		t.Fatalf("unexpected name: %s", strategy.Name())
	}
}
