// File: internal/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/expensio-labs/expense-platform/auth-service/internal/config"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/interfaces"
	"github.com/expensio-labs/expense-platform/auth-service/internal/infrastructure/security"
)

func newTestTokenService(t *testing.T) (*TokenService, config.JWTConfig) {
	t.Helper()
	cfg := config.JWTConfig{
		Secret:          "test-secret-at-least-long-enough",
		Issuer:          "auth-service-test",
		Audience:        "expense-platform",
		ExpiryMinutes:   30,
		SigningStrategy: "static",
	}
	signer, err := security.NewTokenSigner(cfg.SigningStrategy, security.SignerConfig{
		Secret:   cfg.Secret,
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
	})
	require.NoError(t, err)
	return NewTokenService(signer, cfg), cfg
}

func TestTokenServiceIssueCarriesIdentityClaims(t *testing.T) {
	svc, cfg := newTestTokenService(t)
	userID := uuid.New()

	token, err := svc.Issue(userID, "carol@example.com", []string{"Admin", "User"})
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &interfaces.TokenClaims{}, func(tk *jwt.Token) (interface{}, error) {
		require.Equal(t, "HS512", tk.Method.Alg())
		return []byte(cfg.Secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(*interfaces.TokenClaims)
	require.Equal(t, userID.String(), claims.Subject)
	require.Equal(t, userID.String(), claims.NameID)
	require.Equal(t, "carol@example.com", claims.Email)
	require.Equal(t, []string{"Admin", "User"}, claims.Roles)
	require.Equal(t, cfg.Issuer, claims.Issuer)
	require.Contains(t, claims.Audience, cfg.Audience)
	require.NotEmpty(t, claims.ID)
	require.WithinDuration(t,
		time.Now().Add(time.Duration(cfg.ExpiryMinutes)*time.Minute),
		claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenServiceEachTokenHasFreshID(t *testing.T) {
	svc, _ := newTestTokenService(t)
	userID := uuid.New()

	first, err := svc.Issue(userID, "carol@example.com", []string{"User"})
	require.NoError(t, err)
	second, err := svc.Issue(userID, "carol@example.com", []string{"User"})
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestTokenServiceVerifyRoundTrip(t *testing.T) {
	svc, _ := newTestTokenService(t)
	userID := uuid.New()

	token, err := svc.Issue(userID, "carol@example.com", []string{"User"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID.String(), claims.Subject)
}
