package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/verita-dev/verita/db"
	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/parser"
	"github.com/verita-dev/verita/internal/pipeline"
	"github.com/verita-dev/verita/internal/services"
	"github.com/verita-dev/verita/internal/store"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateUpdateRequest struct {
	UserID  string        `json:"user_id" binding:"required"`
	RawText string        `json:"raw_text" binding:"required"`
	Tasks   []parser.Task `json:"tasks" binding:"required"`
	Date    string        `json:"date"` // optional YYYY-MM-DD
}

type CreateUpdateResponse struct {
	Update            models.Update `json:"update"`
	Tasks             []models.Task `json:"tasks"`
	SkippedDuplicates int           `json:"skipped_duplicates"`
}

// CreateUpdate is the confirmation endpoint: it takes the candidate
// tasks the client accepted, drops the ones already recorded for that
// member and day, and persists the rest. Validation and the
// all-duplicates short-circuit both happen before any write.
func CreateUpdate(ctx *gin.Context) {
	var body CreateUpdateRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "user_id, raw_text, and tasks are required"})
		return
	}

	targetDate, err := parseDateParam(body.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	window := pipeline.DayWindowOrNow(targetDate, now())
	tasks := store.NewTaskStore(db.DB)

	existing, err := tasks.DescriptionsInWindow(body.UserID, window)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve existing tasks"})
		return
	}

	accepted, skipped, err := pipeline.AcceptCandidates(existing, body.Tasks)
	if err != nil {
		if errors.Is(err, pipeline.ErrAllDuplicates) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":      "All tasks already exist for this day",
				"duplicates": true,
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter tasks"})
		return
	}

	var projects []models.Project
	if err := db.DB.Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	// Resolve every project before the first write so a missing
	// fallback project can never leave a half-committed update behind.
	projectIDs := make([]string, len(accepted))
	for i, candidate := range accepted {
		projectID, err := pipeline.ResolveProject(candidate.Project, projects)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		projectIDs[i] = projectID
	}

	update := models.Update{
		UserID:  body.UserID,
		RawText: body.RawText,
		Date:    window.Start,
	}

	created := make([]models.Task, 0, len(accepted))

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&update).Error; err != nil {
			return err
		}

		for i, candidate := range accepted {
			mentioned, err := json.Marshal(candidate.MentionedPeople)
			if err != nil {
				mentioned = []byte("[]")
			}

			task := models.Task{
				UpdateID:    update.ID,
				UserID:      body.UserID,
				ProjectID:   projectIDs[i],
				Description: candidate.Description,
				Status:      candidate.Status,
				Mentioned:   datatypes.JSON(mentioned),
				DueDate:     parseDueDate(candidate.DueDate),
				CreatedAt:   window.Start,
			}

			if err := tx.Create(&task).Error; err != nil {
				return err
			}

			created = append(created, task)
		}

		return nil
	})

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create update"})
		return
	}

	go notifyCreated(body.UserID, created)
	BroadcastRefresh()

	ctx.JSON(http.StatusOK, CreateUpdateResponse{
		Update:            update,
		Tasks:             created,
		SkippedDuplicates: skipped,
	})
}

func parseDueDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation(dateLayout, *s, time.UTC); err == nil {
		return &t
	}
	return nil
}

func notifyCreated(userID string, created []models.Task) {
	var member models.TeamMember
	if err := db.DB.First(&member, "id = ?", userID).Error; err != nil {
		return
	}

	projectNames := make(map[string]string)

	for _, task := range created {
		name, ok := projectNames[task.ProjectID]
		if !ok {
			var project models.Project
			if err := db.DB.First(&project, "id = ?", task.ProjectID).Error; err == nil {
				name = project.Name
			}
			projectNames[task.ProjectID] = name
		}

		services.NotifyTaskChange(services.TaskNotification{
			UserName:        member.Name,
			SlackUserID:     member.SlackUserID,
			TaskDescription: task.Description,
			ProjectName:     name,
			Action:          services.ActionCreated,
		})
	}
}
