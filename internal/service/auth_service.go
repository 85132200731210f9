// File: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/expensio-labs/expense-platform/auth-service/internal/config"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/interfaces"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository"
	"github.com/expensio-labs/expense-platform/auth-service/internal/utils/metrics"
)

// TokenIssuer issues a signed token for an authenticated identity.
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string, roles []string) (string, error)
}

// AuthResult is the identity produced by a successful credential check.
type AuthResult struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
}

// AuthService owns the login state machine: lookup, lockout check, password
// check, counter bookkeeping, role collection.
type AuthService struct {
	userRepo        repository.UserRepository
	roleRepo        repository.RoleRepository
	passwordService interfaces.PasswordService
	tokenIssuer     TokenIssuer
	lockout         config.LockoutConfig
	logger          *zap.Logger
	now             func() time.Time
}

func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	passwordService interfaces.PasswordService,
	tokenIssuer TokenIssuer,
	lockout config.LockoutConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		passwordService: passwordService,
		tokenIssuer:     tokenIssuer,
		lockout:         lockout,
		logger:          logger,
		now:             time.Now,
	}
}

// Authenticate checks credentials and returns the identity on success.
// The order is fixed: lookup, lockout check, password check. A locked
// account rejects the attempt before the password is ever examined, so a
// correct password reveals nothing while the lockout window is open.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure_user_not_found").Inc()
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.IsLockedOut(s.now()) {
		s.logger.Warn("login rejected, account locked",
			zap.String("user_id", user.ID.String()),
			zap.Timep("lockout_until", user.LockoutUntil))
		metrics.LoginAttemptsTotal.WithLabelValues("failure_account_locked").Inc()
		return nil, domainErrors.ErrAccountLocked
	}

	match, err := s.passwordService.CheckPasswordHash(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return nil, s.recordFailedAttempt(ctx, user)
	}

	// Success resets the counter durably before any token work.
	if err := s.userRepo.ResetFailedLoginAttempts(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to reset login attempts: %w", err)
	}

	roles, err := s.roleRepo.GetRoleNamesForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	if len(roles) == 0 {
		roles = []string{entity.DefaultRoleName}
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return &AuthResult{UserID: user.ID, Email: user.Email, Roles: roles}, nil
}

// recordFailedAttempt bumps the counter and opens the lockout window when
// the threshold is reached. The increment is atomic at the store, so
// concurrent failures against one account cannot undercount.
func (s *AuthService) recordFailedAttempt(ctx context.Context, user *entity.User) error {
	attempts, err := s.userRepo.IncrementFailedLoginAttempts(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}

	if attempts >= s.lockout.MaxFailedAttempts {
		until := s.now().Add(s.lockout.LockoutWindow)
		if err := s.userRepo.SetLockout(ctx, user.ID, &until); err != nil {
			return fmt.Errorf("failed to set lockout: %w", err)
		}
		s.logger.Warn("account locked after repeated failures",
			zap.String("user_id", user.ID.String()),
			zap.Int("attempts", attempts),
			zap.Time("lockout_until", until))
		metrics.LoginAttemptsTotal.WithLabelValues("failure_account_locked").Inc()
		return domainErrors.ErrAccountLocked
	}

	metrics.LoginAttemptsTotal.WithLabelValues("failure_credentials").Inc()
	return domainErrors.ErrInvalidPassword
}

// Login authenticates and issues a token in one step.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	result, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := s.tokenIssuer.Issue(result.UserID, result.Email, result.Roles)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", result.UserID.String()))
	return token, nil
}
