//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/suwubh/saas-notes-app/internal/database/models"
	"github.com/suwubh/saas-notes-app/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository against a real Postgres
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet

	tenant *models.Tenant
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.tenant = suite.factories.Tenant.WithSlug("acme")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByEmail tests persisting and reading back by email
func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmail() {
	user := suite.factories.User.Create(suite.tenant.ID, models.RoleAdmin)
	user.Email = "admin@acme.test"
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("admin@acme.test")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.Equal(models.RoleAdmin, found.Role)
	suite.Equal(suite.tenant.ID, found.TenantID)
}

// TestGetByEmailMissing tests the miss path
func (suite *UserRepositoryTestSuite) TestGetByEmailMissing() {
	found, err := suite.repo.GetByEmail("ghost@acme.test")

	suite.Nil(found)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCreateDuplicateEmail tests the unique index on email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user := suite.factories.User.Create(suite.tenant.ID, models.RoleMember)
	user.Email = "dup@acme.test"
	suite.Require().NoError(suite.repo.Create(user))

	again := suite.factories.User.Create(suite.tenant.ID, models.RoleMember)
	again.Email = "dup@acme.test"
	err := suite.repo.Create(again)

	suite.Error(err)
}

// TestGetByID tests reading back by id
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create(suite.tenant.ID, models.RoleMember)
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Equal(user.Email, found.Email)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
