package handlers

import (
	"net/http"

	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoteHandler handles HTTP requests for notes
type NoteHandler struct {
	service service.NoteServiceInterface
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(service service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{service: service}
}

// CreateNote handles POST /notes
// @Summary Create a note
// @Description Create a note owned by the caller, subject to the free-plan quota
// @Tags notes
// @Accept json
// @Produce json
// @Param note body service.NoteRequest true "Note data"
// @Success 201 {object} map[string]interface{} "Created note"
// @Failure 400 {object} map[string]interface{} "Invalid title or content"
// @Failure 409 {object} map[string]interface{} "Free plan quota exceeded"
// @Security BearerAuth
// @Router /notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var req service.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title and content are required"})
		return
	}

	note, err := h.service.Create(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"note":    note,
		"message": "Note created successfully",
	})
}

// ListNotes handles GET /notes
// @Summary List visible notes
// @Description Admins see all tenant notes, members only their own
// @Tags notes
// @Produce json
// @Success 200 {object} service.NoteListResponse "Notes with tenant plan context"
// @Security BearerAuth
// @Router /notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	resp, err := h.service.List(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"notes":       resp.Notes,
		"count":       resp.Count,
		"tenant_info": resp.TenantInfo,
		"viewing":     resp.Viewing,
	})
}

// GetNote handles GET /notes/:id
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} map[string]interface{} "Note"
// @Failure 404 {object} map[string]interface{} "Note not found or out of scope"
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid note ID format"})
		return
	}

	note, err := h.service.GetByID(identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"note":    note,
	})
}

// UpdateNote handles PUT /notes/:id
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Param note body service.NoteRequest true "Note data"
// @Success 200 {object} map[string]interface{} "Updated note"
// @Failure 404 {object} map[string]interface{} "Note not found or out of scope"
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid note ID format"})
		return
	}

	var req service.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title and content are required"})
		return
	}

	note, err := h.service.Update(identity, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"note":    note,
		"message": "Note updated successfully",
	})
}

// DeleteNote handles DELETE /notes/:id
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted note summary"
// @Failure 404 {object} map[string]interface{} "Note not found or out of scope"
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid note ID format"})
		return
	}

	deleted, err := h.service.Delete(identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Note deleted successfully",
		"deleted_note": deleted,
	})
}
