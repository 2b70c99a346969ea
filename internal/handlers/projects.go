package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verita-dev/verita/db"
	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/types"
	"gorm.io/gorm"
)

type CreateProjectRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type UpdateProjectRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	IsActive *bool   `json:"is_active"`
}

func ListProjects(ctx *gin.Context) {
	var projects []models.Project

	if err := db.DB.Order("name ASC").Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name and color are required"})
		return
	}

	project := models.Project{
		Name:     body.Name,
		Color:    body.Color,
		IsActive: true,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func UpdateProject(ctx *gin.Context) {
	projectID := ctx.Param("id")

	var body UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	// The catch-all project must stay intact and active.
	if project.Name == types.FallbackProjectName {
		if body.Name != nil && *body.Name != project.Name {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "The fallback project cannot be renamed"})
			return
		}
		if body.IsActive != nil && !*body.IsActive {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "The fallback project cannot be deactivated"})
			return
		}
	}

	if body.Name != nil {
		project.Name = *body.Name
	}
	if body.Color != nil {
		project.Color = *body.Color
	}
	if body.IsActive != nil {
		project.IsActive = *body.IsActive
	}

	if err := db.DB.Save(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func DeleteProject(ctx *gin.Context) {
	projectID := ctx.Param("id")

	var project models.Project

	if err := db.DB.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	if project.Name == types.FallbackProjectName {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "The fallback project cannot be deleted"})
		return
	}

	if err := db.DB.Delete(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
