package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
	pkgAuth "github.com/polkiloo/userhub/internal/pkg/auth"
)

// UserIDContextKey is a gin context key for authenticated user identifier.
const UserIDContextKey = "userID"

const bearerPrefix = "bearer "

// TokenParser verifies a bearer token and returns the user it was issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired rejects requests without a valid bearer token. It never
// touches the store.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortWith(c, domainErrors.New(domainErrors.KindMissingToken, "No token provided."))
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrExpiredToken) {
				abortWith(c, domainErrors.Wrap(domainErrors.KindExpiredToken, "Token expired.", err))
				return
			}
			abortWith(c, domainErrors.Wrap(domainErrors.KindInvalidToken, "Invalid token.", err))
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(authHeader[len(bearerPrefix):])
}

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
