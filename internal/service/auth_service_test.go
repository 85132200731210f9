// File: internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/expensio-labs/expense-platform/auth-service/internal/config"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
)

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo        *MockUserRepository
	roleRepo        *MockRoleRepository
	passwordService *MockPasswordService
	tokenIssuer     *MockTokenIssuer
	service         *AuthService
	ctx             context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.roleRepo = new(MockRoleRepository)
	s.passwordService = new(MockPasswordService)
	s.tokenIssuer = new(MockTokenIssuer)
	s.service = NewAuthService(
		s.userRepo, s.roleRepo, s.passwordService, s.tokenIssuer,
		config.LockoutConfig{MaxFailedAttempts: 3, LockoutWindow: 15 * time.Minute},
		zap.NewNop(),
	)
	s.ctx = context.Background()
}

func (s *AuthServiceTestSuite) testUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$...",
		IsActive:     true,
	}
}

func (s *AuthServiceTestSuite) TestAuthenticateSuccess() {
	user := s.testUser()
	s.userRepo.On("FindByUsername", s.ctx, "alice").Return(user, nil)
	s.passwordService.On("CheckPasswordHash", "secret", user.PasswordHash).Return(true, nil)
	s.userRepo.On("ResetFailedLoginAttempts", s.ctx, user.ID).Return(nil)
	s.roleRepo.On("GetRoleNamesForUser", s.ctx, user.ID).Return([]string{"Admin", "User"}, nil)

	result, err := s.service.Authenticate(s.ctx, "alice", "secret")

	s.Require().NoError(err)
	s.Equal(user.ID, result.UserID)
	s.Equal(user.Email, result.Email)
	s.Equal([]string{"Admin", "User"}, result.Roles)
	s.userRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestAuthenticateDefaultRoleWhenNoneAssigned() {
	user := s.testUser()
	s.userRepo.On("FindByUsername", s.ctx, "alice").Return(user, nil)
	s.passwordService.On("CheckPasswordHash", "secret", user.PasswordHash).Return(true, nil)
	s.userRepo.On("ResetFailedLoginAttempts", s.ctx, user.ID).Return(nil)
	s.roleRepo.On("GetRoleNamesForUser", s.ctx, user.ID).Return([]string{}, nil)

	result, err := s.service.Authenticate(s.ctx, "alice", "secret")

	s.Require().NoError(err)
	s.Equal([]string{entity.DefaultRoleName}, result.Roles)
}

func (s *AuthServiceTestSuite) TestAuthenticateUserNotFound() {
	s.userRepo.On("FindByUsername", s.ctx, "ghost").Return(nil, domainErrors.ErrUserNotFound)

	_, err := s.service.Authenticate(s.ctx, "ghost", "secret")

	s.ErrorIs(err, domainErrors.ErrUserNotFound)
	s.passwordService.AssertNotCalled(s.T(), "CheckPasswordHash", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticateLockedSkipsPasswordCheck() {
	user := s.testUser()
	until := time.Now().Add(10 * time.Minute)
	user.LockoutUntil = &until
	s.userRepo.On("FindByUsername", s.ctx, "alice").Return(user, nil)

	_, err := s.service.Authenticate(s.ctx, "alice", "secret")

	s.ErrorIs(err, domainErrors.ErrAccountLocked)
	s.passwordService.AssertNotCalled(s.T(), "CheckPasswordHash", mock.Anything, mock.Anything)
	s.userRepo.AssertNotCalled(s.T(), "IncrementFailedLoginAttempts", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticateLockedEvenWithCorrectPassword() {
	user := s.testUser()
	until := time.Now().Add(10 * time.Minute)
	user.LockoutUntil = &until
	s.userRepo.On("FindByUsername", s.ctx, "alice").Return(user, nil)

	_, err := s.service.Authenticate(s.ctx, "alice", "the-correct-password")

	s.ErrorIs(err, domainErrors.ErrAccountLocked)
}

func (s *AuthServiceTestSuite) TestAuthenticateExpiredLockoutProceeds() {
	user := s.testUser()
	until := time.Now().Add(-1 * time.Minute)
	user.LockoutUntil = &until
	s.userRepo.On("FindByUsername", s.ctx, "alice").Return(user, nil)
	s.passwordService.On("CheckPasswordHash", "secret", user.PasswordHash).Return(true, nil)
	s.userRepo.On("ResetFailedLoginAttempts", s.ctx, user.ID).Return(nil)
	s.roleRepo.On("GetRoleNamesForUser", s.ctx, user.ID).Return([]string{"User"}, nil)

	result, err := s.service.Authenticate(s.ctx, "alice", "secret")

	s.Require().NoError(err)
	s.Equal(user.ID, result.UserID)
}

func (s *AuthServiceTestSuite) TestAuthenticateWrongPasswordBelowThreshold() {
	user := s.testUser()
	s.userRepo.On("FindByUsername", s.ctx, "alice").Return(user, nil)
	s.passwordService.On("CheckPasswordHash", "wrong", user.PasswordHash).Return(false, nil)
	s.userRepo.On("IncrementFailedLoginAttempts", s.ctx, user.ID).Return(1, nil)

	_, err := s.service.Authenticate(s.ctx, "alice", "wrong")

	s.ErrorIs(err, domainErrors.ErrInvalidPassword)
	s.userRepo.AssertNotCalled(s.T(), "SetLockout", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticateWrongPasswordReachesThreshold() {
	user := s.testUser()
	s.userRepo.On("FindByUsername", s.ctx, "alice").Return(user, nil)
	s.passwordService.On("CheckPasswordHash", "wrong", user.PasswordHash).Return(false, nil)
	s.userRepo.On("IncrementFailedLoginAttempts", s.ctx, user.ID).Return(3, nil)
	s.userRepo.On("SetLockout", s.ctx, user.ID, mock.MatchedBy(func(until *time.Time) bool {
		return until != nil && until.After(time.Now())
	})).Return(nil)

	_, err := s.service.Authenticate(s.ctx, "alice", "wrong")

	s.ErrorIs(err, domainErrors.ErrAccountLocked)
	s.userRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLoginIssuesToken() {
	user := s.testUser()
	s.userRepo.On("FindByUsername", s.ctx, "alice").Return(user, nil)
	s.passwordService.On("CheckPasswordHash", "secret", user.PasswordHash).Return(true, nil)
	s.userRepo.On("ResetFailedLoginAttempts", s.ctx, user.ID).Return(nil)
	s.roleRepo.On("GetRoleNamesForUser", s.ctx, user.ID).Return([]string{"User"}, nil)
	s.tokenIssuer.On("Issue", user.ID, user.Email, []string{"User"}).Return("signed-token", nil)

	token, err := s.service.Login(s.ctx, "alice", "secret")

	s.Require().NoError(err)
	s.Equal("signed-token", token)
	s.tokenIssuer.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLoginPropagatesAuthFailure() {
	s.userRepo.On("FindByUsername", s.ctx, "ghost").Return(nil, domainErrors.ErrUserNotFound)

	_, err := s.service.Login(s.ctx, "ghost", "secret")

	s.ErrorIs(err, domainErrors.ErrUserNotFound)
	s.tokenIssuer.AssertNotCalled(s.T(), "Issue", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
