// File: internal/handler/http/middleware/auth_middleware_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/interfaces"
)

type stubVerifier struct {
	claims *interfaces.TokenClaims
	err    error
}

func (s *stubVerifier) Verify(string) (*interfaces.TokenClaims, error) {
	return s.claims, s.err
}

func protectedRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequireAuth(verifier))
	router.GET("/protected", func(c *gin.Context) {
		claims := c.MustGet(ClaimsContextKey).(*interfaces.TokenClaims)
		c.JSON(http.StatusOK, gin.H{"subject": claims.Subject})
	})
	return router
}

func TestRequireAuthAllowsValidToken(t *testing.T) {
	claims := &interfaces.TokenClaims{}
	claims.Subject = "user-1"
	router := protectedRouter(&stubVerifier{claims: claims})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	router := protectedRouter(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), domainErrors.CodeUnauthorized)
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	router := protectedRouter(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	router := protectedRouter(&stubVerifier{err: domainErrors.ErrInvalidToken})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), domainErrors.CodeUnauthorized)
}
