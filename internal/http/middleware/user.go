package middleware

import (
	"strings"

	"frontend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "user_context"

// UserContext reads an optional Bearer token issued by the backend and stores
// the logged-in user's identity in the gin context. Requests without a token
// (or with a bad one) just proceed anonymously; the gateway never rejects on
// auth, it only uses the name to pre-fill the first passenger.
func UserContext(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		uc := domain.UserContext{}
		if v, ok := claims["user_id"].(float64); ok {
			uc.UserID = domain.ID(v)
		}
		if v, ok := claims["name"].(string); ok {
			uc.Name = strings.TrimSpace(v)
		}
		if v, ok := claims["role"].(string); ok {
			uc.Role = v
		}
		c.Set(userContextKey, uc)
		c.Next()
	}
}

// GetUserContext returns the authenticated user, if any.
func GetUserContext(c *gin.Context) (domain.UserContext, bool) {
	if v, ok := c.Get(userContextKey); ok {
		if uc, ok := v.(domain.UserContext); ok {
			return uc, true
		}
	}
	return domain.UserContext{}, false
}
