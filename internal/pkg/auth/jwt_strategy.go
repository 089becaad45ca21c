package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid auth token")
	ErrExpiredToken = errors.New("auth token expired")
)

const defaultTTL = 24 * time.Hour

// Subject is the token payload identifying the user.
type Subject struct {
	ID string `json:"id"`
}

// Claims is the token body: {"data":{"id":...},"iat":...,"exp":...}.
type Claims struct {
	Data Subject `json:"data"`
	jwt.RegisteredClaims
}

// JWTStrategy implements auth token creation/verification with HS256 signed JWTs.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl, now: now}
}

// IssueToken generates signed auth token for the user.
func (s *JWTStrategy) IssueToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("issue token: empty user id")
	}
	issued := s.now()
	claims := Claims{
		Data: Subject{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates signature and expiry and returns encoded user ID.
func (s *JWTStrategy) ParseToken(token string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	var claims Claims
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid || claims.Data.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.Data.ID, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
