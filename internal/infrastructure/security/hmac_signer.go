package security

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/interfaces"
)

// SignerConfig holds the signing settings shared by both strategies.
type SignerConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// hmacSigner signs and verifies tokens with HMAC-SHA512 keyed by the
// configured static secret. This is the default contract: any holder of the
// secret can verify statelessly.
type hmacSigner struct {
	key      []byte
	issuer   string
	audience string
}

// NewHMACSigner creates the static-secret HS512 signer.
func NewHMACSigner(cfg SignerConfig) (interfaces.TokenSigner, error) {
	if cfg.Secret == "" {
		return nil, errors.New("signing secret is missing")
	}
	return &hmacSigner{
		key:      []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}, nil
}

func (s *hmacSigner) Sign(claims *interfaces.TokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *hmacSigner) Verify(tokenString string) (*interfaces.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &interfaces.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS512 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*interfaces.TokenClaims)
	if !ok || !token.Valid {
		return nil, domainErrors.ErrInvalidToken
	}
	if claims.Issuer != s.issuer {
		return nil, fmt.Errorf("%w: invalid issuer", domainErrors.ErrInvalidToken)
	}
	validAudience := false
	for _, aud := range claims.Audience {
		if aud == s.audience {
			validAudience = true
			break
		}
	}
	if !validAudience {
		return nil, fmt.Errorf("%w: invalid audience", domainErrors.ErrInvalidToken)
	}
	return claims, nil
}

var _ interfaces.TokenSigner = (*hmacSigner)(nil)
