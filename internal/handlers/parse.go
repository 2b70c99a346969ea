package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verita-dev/verita/db"
	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/parser"
)

type ParseUpdateRequest struct {
	RawText string `json:"raw_text" binding:"required"`
}

// ParseUpdate turns one raw free-text update into candidate tasks.
// Nothing is persisted; the client confirms or edits the candidates
// before submitting them to CreateUpdate.
func ParseUpdate(ctx *gin.Context) {
	var body ParseUpdateRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "raw_text is required"})
		return
	}

	if LLM == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Parsing model not configured"})
		return
	}

	var members []models.TeamMember
	if err := db.DB.Order("name ASC").Find(&members).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team members"})
		return
	}

	var projects []models.Project
	if err := db.DB.Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	system := parser.SystemPrompt(members, projects)

	result, err := parser.ParseUpdate(ctx.Request.Context(), LLM, system, body.RawText)
	if err != nil {
		var badResponse *parser.BadResponseError
		if errors.As(err, &badResponse) {
			ctx.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to parse model response as JSON",
				"raw":   badResponse.Raw,
			})
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
