// File: internal/service/token_service.go
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/expensio-labs/expense-platform/auth-service/internal/config"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/interfaces"
)

// TokenService issues and verifies identity tokens. The claim layout is
// fixed; only the signing strategy behind the signer varies.
type TokenService struct {
	signer interfaces.TokenSigner
	cfg    config.JWTConfig
	now    func() time.Time
}

func NewTokenService(signer interfaces.TokenSigner, cfg config.JWTConfig) *TokenService {
	return &TokenService{
		signer: signer,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Issue signs a token for the authenticated user. Every token carries a
// fresh random jti; two tokens for the same user are never identical.
func (s *TokenService) Issue(userID uuid.UUID, email string, roles []string) (string, error) {
	now := s.now().UTC()
	claims := &interfaces.TokenClaims{
		NameID: userID.String(),
		Email:  email,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        uuid.NewString(),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.ExpiryMinutes) * time.Minute)),
		},
	}

	token, err := s.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify delegates to the signer; strategies that cannot verify surface
// ErrVerifyUnsupported.
func (s *TokenService) Verify(tokenString string) (*interfaces.TokenClaims, error) {
	return s.signer.Verify(tokenString)
}
