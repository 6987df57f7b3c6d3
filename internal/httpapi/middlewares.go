package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/domain"
	"github.com/intwaza/online-marketplace/pkg/token"
)

const actorKey = "actor"

// JWTAuth validates the bearer token and stores the authenticated principal
// on the request context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tok := strings.TrimPrefix(h, "Bearer ")
		claims, err := token.ParseValidate(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(actorKey, &domain.User{
			ID:    claims.Sub,
			Email: claims.Email,
			Role:  domain.Role(claims.Role),
		})
		c.Next()
	}
}

func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	allowed := map[domain.Role]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		u := Actor(c)
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		if _, ok := allowed[u.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated user set by JWTAuth, or nil.
func Actor(c *gin.Context) *domain.User {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
