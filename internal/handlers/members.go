package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verita-dev/verita/db"
	"github.com/verita-dev/verita/internal/models"
	"gorm.io/gorm"
)

type CreateTeamMemberRequest struct {
	Name        string `json:"name" binding:"required"`
	Color       string `json:"color" binding:"required"`
	SlackUserID string `json:"slack_user_id"`
}

type UpdateTeamMemberRequest struct {
	Name        *string `json:"name"`
	Color       *string `json:"color"`
	SlackUserID *string `json:"slack_user_id"`
}

func ListTeamMembers(ctx *gin.Context) {
	var members []models.TeamMember

	if err := db.DB.Order("name ASC").Find(&members).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team members"})
		return
	}

	ctx.JSON(http.StatusOK, members)
}

func CreateTeamMember(ctx *gin.Context) {
	var body CreateTeamMemberRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name and color are required"})
		return
	}

	member := models.TeamMember{
		Name:        body.Name,
		Color:       body.Color,
		SlackUserID: body.SlackUserID,
	}

	if err := db.DB.Create(&member).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

func UpdateTeamMember(ctx *gin.Context) {
	memberID := ctx.Param("id")

	var body UpdateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var member models.TeamMember

	if err := db.DB.First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team member"})
		}
		return
	}

	if body.Name != nil {
		member.Name = *body.Name
	}
	if body.Color != nil {
		member.Color = *body.Color
	}
	if body.SlackUserID != nil {
		member.SlackUserID = *body.SlackUserID
	}

	if err := db.DB.Save(&member).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// DeleteTeamMember removes a member. Their tasks are left in place
// with a dangling user reference; nothing cascades.
func DeleteTeamMember(ctx *gin.Context) {
	memberID := ctx.Param("id")

	var member models.TeamMember

	if err := db.DB.First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team member"})
		}
		return
	}

	if err := db.DB.Delete(&member).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
