package security

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/sha3"

	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/interfaces"
)

// derivedKeySigner signs each token with a per-call key derived from the
// claims themselves: a KMAC-style keyed hash over
// "userId|sorted-roles|email" under the configured secret. The key cannot
// be re-derived from the token alone, so Verify is unsupported; this
// strategy is never selected for the verification middleware.
type derivedKeySigner struct {
	secret []byte
}

// NewDerivedKeySigner creates the per-call derived-key HS512 signer.
func NewDerivedKeySigner(cfg SignerConfig) (interfaces.TokenSigner, error) {
	if cfg.Secret == "" {
		return nil, errors.New("signing secret is missing")
	}
	return &derivedKeySigner{secret: []byte(cfg.Secret)}, nil
}

func (s *derivedKeySigner) Sign(claims *interfaces.TokenClaims) (string, error) {
	key := DeriveSigningKey(s.secret, claims.Subject, claims.Roles, claims.Email)
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token with derived key: %w", err)
	}
	return signed, nil
}

func (s *derivedKeySigner) Verify(string) (*interfaces.TokenClaims, error) {
	return nil, domainErrors.ErrVerifyUnsupported
}

// DeriveSigningKey produces a 64-byte signing key from the secret and the
// identity context. Roles are sorted so derivation is insensitive to their
// order. cSHAKE256 with the KMAC function name gives domain separation from
// any other use of the secret.
func DeriveSigningKey(secret []byte, userID string, roles []string, email string) []byte {
	sorted := append([]string(nil), roles...)
	sort.Strings(sorted)
	input := userID + "|" + strings.Join(sorted, ",") + "|" + email

	h := sha3.NewCShake256([]byte("KMAC"), []byte("auth-token-signing"))
	h.Write(secret)
	h.Write([]byte(input))

	key := make([]byte, 64)
	h.Read(key)
	return key
}

var _ interfaces.TokenSigner = (*derivedKeySigner)(nil)
