package middleware

import (
	"net/http"
	"strings"

	"multiservice-api/identity"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// BearerRequired rejects requests without an `Authorization: Bearer <token>`
// header and stores the verified principal in the context.
func BearerRequired(v identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		principal, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the caller set by BearerRequired.
func GetPrincipal(c *gin.Context) (identity.Principal, bool) {
	val, ok := c.Get(principalKey)
	if !ok {
		return identity.Principal{}, false
	}
	p, ok := val.(identity.Principal)
	return p, ok
}
