// File: internal/handler/http/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/interfaces"
)

// ClaimsContextKey is the gin context key the verified claims are stored
// under.
const ClaimsContextKey = "token_claims"

// TokenVerifier validates a compact token string.
type TokenVerifier interface {
	Verify(tokenString string) (*interfaces.TokenClaims, error)
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Missing or malformed authorization header.",
				"code":    domainErrors.CodeUnauthorized,
			})
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token.",
				"code":    domainErrors.CodeUnauthorized,
			})
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}
