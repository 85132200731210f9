// File: internal/service/permission_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
)

type PermissionServiceTestSuite struct {
	suite.Suite
	userRepo       *MockUserRepository
	permissionRepo *MockPermissionRepository
	service        *PermissionService
	ctx            context.Context
}

func (s *PermissionServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.permissionRepo = new(MockPermissionRepository)
	s.service = NewPermissionService(s.userRepo, s.permissionRepo, zap.NewNop())
	s.ctx = context.Background()
}

func (s *PermissionServiceTestSuite) TestResolveSuccess() {
	userID := uuid.New()
	entries := []entity.PermissionEntry{
		{RoleDetailID: 1, EntityCode: "dashboard", Allow: true, Path: "/dashboard", OrderNum: 1},
		{RoleDetailID: 2, EntityCode: "reports", Allow: true, CanCreate: true, Path: "/reports", OrderNum: 2},
	}
	s.userRepo.On("ExistsActive", s.ctx, userID).Return(true, nil)
	s.permissionRepo.On("ResolveForUser", s.ctx, userID).Return(entries, nil)

	got, err := s.service.GetPermissionsForUser(s.ctx, userID)

	s.Require().NoError(err)
	s.Equal(entries, got)
}

func (s *PermissionServiceTestSuite) TestResolveUnknownUser() {
	userID := uuid.New()
	s.userRepo.On("ExistsActive", s.ctx, userID).Return(false, nil)

	_, err := s.service.GetPermissionsForUser(s.ctx, userID)

	s.ErrorIs(err, domainErrors.ErrUserNotFoundOrInactive)
	s.permissionRepo.AssertNotCalled(s.T(), "ResolveForUser", mock.Anything, mock.Anything)
}

func (s *PermissionServiceTestSuite) TestResolveEmptyIsNotAnError() {
	userID := uuid.New()
	s.userRepo.On("ExistsActive", s.ctx, userID).Return(true, nil)
	s.permissionRepo.On("ResolveForUser", s.ctx, userID).Return(nil, nil)

	got, err := s.service.GetPermissionsForUser(s.ctx, userID)

	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *PermissionServiceTestSuite) TestResolveStoreFailure() {
	userID := uuid.New()
	s.userRepo.On("ExistsActive", s.ctx, userID).Return(true, nil)
	s.permissionRepo.On("ResolveForUser", s.ctx, userID).Return(nil, errors.New("query failed"))

	_, err := s.service.GetPermissionsForUser(s.ctx, userID)

	s.Error(err)
	s.NotErrorIs(err, domainErrors.ErrUserNotFoundOrInactive)
}

func TestPermissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}
