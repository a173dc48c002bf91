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

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// setIdentity injects an authenticated identity the way RequireAuth does
func setIdentity(identity auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", identity)
		c.Next()
	}
}

// NoteHandlerTestSuite defines the test suite for NoteHandler
type NoteHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNoteServiceInterface
	http        *testutils.HTTPTestSuite
	identity    auth.Identity
}

// SetupTest sets up the test suite
func (suite *NoteHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNoteServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	suite.identity = auth.Identity{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
		Email:    "user@acme.test",
		Role:     models.RoleMember,
	}

	handler := handlers.NewNoteHandler(suite.mockService)
	authed := suite.http.Router.Group("/notes", setIdentity(suite.identity))
	authed.GET("", handler.ListNotes)
	authed.POST("", handler.CreateNote)
	authed.GET("/:id", handler.GetNote)
	authed.PUT("/:id", handler.UpdateNote)
	authed.DELETE("/:id", handler.DeleteNote)

	// one route without identity to exercise the unauthenticated path
	bare := handlers.NewNoteHandler(suite.mockService)
	suite.http.Router.GET("/unauthed/notes", bare.ListNotes)
}

// TearDownTest cleans up after each test
func (suite *NoteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListNotes tests GET /notes
func (suite *NoteHandlerTestSuite) TestListNotes() {
	limit := models.FreePlanNoteLimit
	suite.mockService.EXPECT().
		List(suite.identity).
		Return(&service.NoteListResponse{
			Notes: []models.Note{{Title: "First"}},
			Count: 1,
			TenantInfo: service.NoteTenantInfo{
				Name:             "Acme",
				SubscriptionPlan: models.PlanFree,
				NotesLimit:       &limit,
			},
			Viewing: "Your notes only",
		}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/notes", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &body)
	assert.Equal(suite.T(), true, body["success"])
	assert.Equal(suite.T(), float64(1), body["count"])
	assert.Equal(suite.T(), "Your notes only", body["viewing"])

	tenantInfo, ok := body["tenant_info"].(map[string]interface{})
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), float64(3), tenantInfo["notes_limit"])
}

// TestListNotesUnauthenticated tests the handler without an identity
func (suite *NoteHandlerTestSuite) TestListNotesUnauthenticated() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/unauthed/notes", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestCreateNote tests POST /notes
func (suite *NoteHandlerTestSuite) TestCreateNote() {
	created := &models.Note{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  suite.identity.TenantID,
		UserID:    suite.identity.UserID,
		Title:     "Groceries",
		Content:   "milk, eggs",
	}

	suite.mockService.EXPECT().
		Create(suite.identity, gomock.Any()).
		Return(created, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/notes", map[string]string{
		"title":   "Groceries",
		"content": "milk, eggs",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &body)
	assert.Equal(suite.T(), true, body["success"])
	assert.Equal(suite.T(), "Note created successfully", body["message"])
}

// TestCreateNoteQuotaExceeded tests the conflict on the free-plan cap
func (suite *NoteHandlerTestSuite) TestCreateNoteQuotaExceeded() {
	suite.mockService.EXPECT().
		Create(suite.identity, gomock.Any()).
		Return(nil, apperrors.ErrNoteQuotaExceeded).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/notes", map[string]string{
		"title":   "Fourth",
		"content": "over the limit",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "Free plan limited to 3 notes")
}

// TestCreateNoteValidationError tests the 400 mapping for bad payloads
func (suite *NoteHandlerTestSuite) TestCreateNoteValidationError() {
	suite.mockService.EXPECT().
		Create(suite.identity, gomock.Any()).
		Return(nil, apperrors.NewValidationError("title", "Title cannot be empty")).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/notes", map[string]string{
		"title":   "   ",
		"content": "body",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Title cannot be empty")
}

// TestGetNoteNotFound tests the 404 for out-of-scope notes
func (suite *NoteHandlerTestSuite) TestGetNoteNotFound() {
	noteID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(suite.identity, noteID).
		Return(nil, apperrors.ErrNoteNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/notes/"+noteID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "note not found")
}

// TestGetNoteInvalidID tests rejecting a malformed note id
func (suite *NoteHandlerTestSuite) TestGetNoteInvalidID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/notes/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid note ID format")
}

// TestUpdateNote tests PUT /notes/:id
func (suite *NoteHandlerTestSuite) TestUpdateNote() {
	noteID := uuid.New()
	updated := &models.Note{
		BaseModel: models.BaseModel{ID: noteID},
		Title:     "Updated",
		Content:   "new content",
	}

	suite.mockService.EXPECT().
		Update(suite.identity, noteID, gomock.Any()).
		Return(updated, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPut, "/notes/"+noteID.String(), map[string]string{
		"title":   "Updated",
		"content": "new content",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &body)
	assert.Equal(suite.T(), "Note updated successfully", body["message"])
}

// TestDeleteNote tests DELETE /notes/:id and the deleted_note summary
func (suite *NoteHandlerTestSuite) TestDeleteNote() {
	noteID := uuid.New()

	suite.mockService.EXPECT().
		Delete(suite.identity, noteID).
		Return(&service.DeletedNote{ID: noteID, Title: "Old note"}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/notes/"+noteID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &body)
	assert.Equal(suite.T(), "Note deleted successfully", body["message"])

	deleted, ok := body["deleted_note"].(map[string]interface{})
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), noteID.String(), deleted["id"])
	assert.Equal(suite.T(), "Old note", deleted["title"])
}

// TestNoteHandlerTestSuite runs the test suite
func TestNoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NoteHandlerTestSuite))
}
