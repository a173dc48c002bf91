package service_test

import (
	"testing"

	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/database/models"
	apperrors "github.com/suwubh/saas-notes-app/internal/errors"
	"github.com/suwubh/saas-notes-app/internal/mocks"
	"github.com/suwubh/saas-notes-app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
	validator    *validator.Validate

	admin  auth.Identity
	member auth.Identity
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	tokens := auth.NewAuthService("test-secret", 1)
	suite.userService = service.NewUserService(suite.mockUserRepo, tokens, suite.validator, "defaultpassword")

	tenantID := uuid.New()
	suite.admin = auth.Identity{
		UserID:   uuid.New(),
		TenantID: tenantID,
		Email:    "admin@acme.test",
		Role:     models.RoleAdmin,
	}
	suite.member = auth.Identity{
		UserID:   uuid.New(),
		TenantID: tenantID,
		Email:    "user@acme.test",
		Role:     models.RoleMember,
	}
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestInvite tests inviting a user into the caller's tenant
func (suite *UserServiceTestSuite) TestInvite() {
	req := &service.InviteRequest{Email: "Invitee@Acme.Test", Role: models.RoleMember}

	suite.mockUserRepo.EXPECT().
		GetByEmail("invitee@acme.test").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), suite.admin.TenantID, user.TenantID)
			assert.NotEmpty(suite.T(), user.PasswordHash)
			user.ID = uuid.New()
			return nil
		}).
		Times(1)

	invited, err := suite.userService.Invite(suite.admin, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), invited)
	assert.Equal(suite.T(), "invitee@acme.test", invited.Email)
	assert.Equal(suite.T(), models.RoleMember, invited.Role)
}

// TestInviteDefaultsToMember tests that a missing role falls back to member
func (suite *UserServiceTestSuite) TestInviteDefaultsToMember() {
	req := &service.InviteRequest{Email: "invitee@acme.test"}

	suite.mockUserRepo.EXPECT().
		GetByEmail("invitee@acme.test").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	invited, err := suite.userService.Invite(suite.admin, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleMember, invited.Role)
}

// TestInviteRequiresAdmin tests that members cannot invite
func (suite *UserServiceTestSuite) TestInviteRequiresAdmin() {
	req := &service.InviteRequest{Email: "invitee@acme.test"}

	invited, err := suite.userService.Invite(suite.member, req)

	assert.Nil(suite.T(), invited)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminRequired)
}

// TestInviteInvalidRole tests rejecting a role outside admin/member
func (suite *UserServiceTestSuite) TestInviteInvalidRole() {
	req := &service.InviteRequest{Email: "invitee@acme.test", Role: "superuser"}

	invited, err := suite.userService.Invite(suite.admin, req)

	assert.Nil(suite.T(), invited)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "Role must be admin or member")
}

// TestInviteDuplicateEmail tests inviting an email already in use
func (suite *UserServiceTestSuite) TestInviteDuplicateEmail() {
	req := &service.InviteRequest{Email: "taken@acme.test"}

	suite.mockUserRepo.EXPECT().
		GetByEmail("taken@acme.test").
		Return(&models.User{Email: "taken@acme.test"}, nil).
		Times(1)

	invited, err := suite.userService.Invite(suite.admin, req)

	assert.Nil(suite.T(), invited)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestInviteMissingEmail tests the request validation
func (suite *UserServiceTestSuite) TestInviteMissingEmail() {
	req := &service.InviteRequest{}

	invited, err := suite.userService.Invite(suite.admin, req)

	assert.Nil(suite.T(), invited)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
