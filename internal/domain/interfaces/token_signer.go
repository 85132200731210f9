// File: internal/domain/interfaces/token_signer.go
package interfaces

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by issued identity tokens.
type TokenClaims struct {
	NameID string   `json:"nameid"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenSigner signs a claim set into a compact token string and, where the
// strategy supports it, verifies one back into claims. Implementations are
// pure CPU-bound work and never touch I/O.
type TokenSigner interface {
	Sign(claims *TokenClaims) (string, error)
	// Verify parses and validates a token. Strategies whose signing key
	// cannot be re-derived statelessly return ErrVerifyUnsupported.
	Verify(tokenString string) (*TokenClaims, error)
}
