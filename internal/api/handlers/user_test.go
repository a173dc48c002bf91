package handlers_test

import (
	"net/http"
	"testing"

	"github.com/suwubh/saas-notes-app/internal/api/handlers"
	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/database/models"
	apperrors "github.com/suwubh/saas-notes-app/internal/errors"
	"github.com/suwubh/saas-notes-app/internal/mocks"
	"github.com/suwubh/saas-notes-app/internal/service"
	"github.com/suwubh/saas-notes-app/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	http        *testutils.HTTPTestSuite
	admin       auth.Identity
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	suite.admin = auth.Identity{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
		Email:    "admin@acme.test",
		Role:     models.RoleAdmin,
	}

	handler := handlers.NewUserHandler(suite.mockService)
	suite.http.Router.POST("/users/invite", setIdentity(suite.admin), handler.InviteUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestInviteUser tests POST /users/invite
func (suite *UserHandlerTestSuite) TestInviteUser() {
	suite.mockService.EXPECT().
		Invite(suite.admin, gomock.Any()).
		Return(&service.InvitedUser{
			ID:    uuid.New(),
			Email: "invitee@acme.test",
			Role:  models.RoleMember,
		}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/users/invite", map[string]string{
		"email": "invitee@acme.test",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &body)
	assert.Equal(suite.T(), true, body["success"])
	assert.Equal(suite.T(), "User invited successfully", body["message"])

	user, ok := body["user"].(map[string]interface{})
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "invitee@acme.test", user["email"])
	assert.Equal(suite.T(), "member", user["role"])
}

// TestInviteUserNotAdmin tests the 403 for member callers
func (suite *UserHandlerTestSuite) TestInviteUserNotAdmin() {
	suite.mockService.EXPECT().
		Invite(suite.admin, gomock.Any()).
		Return(nil, apperrors.ErrAdminRequired).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/users/invite", map[string]string{
		"email": "invitee@acme.test",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Admin role required")
}

// TestInviteUserDuplicate tests the 409 for an email already in use
func (suite *UserHandlerTestSuite) TestInviteUserDuplicate() {
	suite.mockService.EXPECT().
		Invite(suite.admin, gomock.Any()).
		Return(nil, apperrors.ErrUserExists).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/users/invite", map[string]string{
		"email": "taken@acme.test",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
