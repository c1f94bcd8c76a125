package auth

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "claims"

// Guard protects route groups. A disabled guard lets every request through.
type Guard struct {
	issuer  *Issuer
	enabled bool
}

func NewGuard(issuer *Issuer, enabled bool) *Guard {
	return &Guard{issuer: issuer, enabled: enabled}
}

func (g *Guard) Enabled() bool {
	return g.enabled
}

// ClaimsFrom returns the claims Require stored on the context. ok is false
// on unguarded routes and when the guard is disabled.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// Require checks the bearer token and, when roles are given, that the
// token's role is one of them.
func (g *Guard) Require(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.enabled {
			c.Next()
			return
		}
		tokenStr, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		claims, err := g.issuer.Parse(tokenStr)
		if err != nil {
			slog.Warn("rejected token", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
