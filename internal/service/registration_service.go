// File: internal/service/registration_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/interfaces"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository"
	"github.com/expensio-labs/expense-platform/auth-service/internal/tenant"
	"github.com/expensio-labs/expense-platform/auth-service/internal/utils/metrics"
)

// RegisterInput is the validated payload for account creation.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// TenantResolver yields the tenant assignment for new accounts.
type TenantResolver interface {
	ResolveDefault(ctx context.Context) (*tenant.Assignment, error)
}

// RegistrationService creates accounts: duplicate pre-checks, tenant
// assignment, password hashing and a transactional insert.
type RegistrationService struct {
	userRepo        repository.UserRepository
	passwordService interfaces.PasswordService
	tenantResolver  TenantResolver
	txManager       repository.TxManager
	logger          *zap.Logger
}

func NewRegistrationService(
	userRepo repository.UserRepository,
	passwordService interfaces.PasswordService,
	tenantResolver TenantResolver,
	txManager repository.TxManager,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tenantResolver:  tenantResolver,
		txManager:       txManager,
		logger:          logger,
	}
}

// Register creates a new account in the default tenant. Pre-checks catch
// most duplicates early with a precise error; the store's unique
// constraints remain the authority and report the same sentinels, so a
// race between two registrations still fails cleanly.
func (s *RegistrationService) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if input.Password != input.ConfirmPassword {
		metrics.RegistrationAttemptsTotal.WithLabelValues("failure_validation").Inc()
		return nil, fmt.Errorf("%w: passwords do not match", domainErrors.ErrValidation)
	}

	if err := s.checkDuplicates(ctx, input); err != nil {
		metrics.RegistrationAttemptsTotal.WithLabelValues("failure_duplicate").Inc()
		return nil, err
	}

	assignment, err := s.tenantResolver.ResolveDefault(ctx)
	if err != nil {
		metrics.RegistrationAttemptsTotal.WithLabelValues("failure_tenant").Inc()
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPersistence, err)
	}

	hash, err := s.passwordService.HashPassword(input.Password)
	if err != nil {
		metrics.RegistrationAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		IsActive:     true,
		TenantID:     assignment.Tenant.ID,
		RoleGroupID:  assignment.RoleGroup.ID,
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		if domainErrors.IsDuplicate(err) {
			metrics.RegistrationAttemptsTotal.WithLabelValues("failure_duplicate").Inc()
			return nil, err
		}
		metrics.RegistrationAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPersistence, err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.Int64("tenant_id", user.TenantID))
	metrics.RegistrationAttemptsTotal.WithLabelValues("success").Inc()
	return user, nil
}

// checkDuplicates is a best-effort fast path. Lookup failures other than
// "not found" are logged and ignored; the insert constraint decides.
func (s *RegistrationService) checkDuplicates(ctx context.Context, input RegisterInput) error {
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return domainErrors.ErrEmailExists
	} else if !errors.Is(err, domainErrors.ErrUserNotFound) {
		s.logger.Warn("email pre-check failed, deferring to constraint", zap.Error(err))
	}

	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return domainErrors.ErrUsernameExists
	} else if !errors.Is(err, domainErrors.ErrUserNotFound) {
		s.logger.Warn("username pre-check failed, deferring to constraint", zap.Error(err))
	}

	return nil
}
