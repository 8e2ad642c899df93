package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/pkg/jwt"
)

const (
	userIDKey   = "userID"
	usernameKey = "username"
)

// JWTAuth rejects requests without a valid Bearer token.
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, jwtManager)
		if err != nil {
			common.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(usernameKey, claims.Username)
		c.Next()
	}
}

// OptionalAuth populates the user context when a valid token is present but
// lets anonymous requests through. Used on read paths that only personalize
// their response (feed upvote markers, detail flags).
func OptionalAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := authenticate(c, jwtManager); err == nil {
			c.Set(userIDKey, claims.UserID)
			c.Set(usernameKey, claims.Username)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, common.ErrUnauthorized
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, common.ErrInvalidToken
	}

	claims, err := jwtManager.VerifyToken(parts[1])
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// GetUserID extracts the authenticated user ID from context; 0 if anonymous.
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return 0
	}
	if id, ok := userID.(uint); ok {
		return id
	}
	return 0
}
