package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/verita-dev/verita/db"
	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/pipeline"
	"github.com/verita-dev/verita/internal/services"
	"github.com/verita-dev/verita/internal/store"
	"github.com/verita-dev/verita/internal/types"
	"gorm.io/gorm"
)

type CreateTaskRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	ProjectID   string `json:"project_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status"`
	Date        string `json:"date"` // optional YYYY-MM-DD
}

type UpdateTaskRequest struct {
	Description *string `json:"description"`
	Status      *string `json:"status"`
	ProjectID   *string `json:"project_id"`
	DueDate     *string `json:"due_date"`
}

// ListTasks returns the deduplicated task list for one calendar day.
// With include_carried=true and the viewed day being tomorrow, the
// previous day's unfinished tasks are merged in, flagged.
func ListTasks(ctx *gin.Context) {
	dateParam := ctx.Query("date")

	if dateParam == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required (YYYY-MM-DD)"})
		return
	}

	date, err := parseDateParam(dateParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	tasks := store.NewTaskStore(db.DB)

	rows, err := tasks.InWindow(pipeline.DayWindow(date))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	unique := pipeline.CollapseNewest(rows)

	if ctx.Query("include_carried") == "true" {
		carried, err := carriedForDay(tasks, date)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve carried tasks"})
			return
		}
		unique = pipeline.MergeCarried(unique, carried)
	}

	ctx.JSON(http.StatusOK, unique)
}

// ListCarriedTasks returns the auxiliary carried list for a viewed
// day: empty unless that day is exactly tomorrow.
func ListCarriedTasks(ctx *gin.Context) {
	date, err := parseDateParam(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	carried, err := carriedForDay(store.NewTaskStore(db.DB), date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve carried tasks"})
		return
	}

	for i := range carried {
		carried[i].IsCarriedOver = true
	}

	ctx.JSON(http.StatusOK, carried)
}

func carriedForDay(tasks *store.TaskStore, viewed time.Time) ([]models.Task, error) {
	current := now()
	if viewed.IsZero() || !pipeline.IsTomorrow(viewed, current) {
		return []models.Task{}, nil
	}

	rows, err := tasks.InWindow(pipeline.DayWindow(current))
	if err != nil {
		return nil, err
	}

	return pipeline.Unfinished(pipeline.CollapseNewest(rows)), nil
}

// CreateTask is the quick-add path: a single task with its own
// one-line update behind it.
func CreateTask(ctx *gin.Context) {
	var body CreateTaskRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "user_id, project_id, and description are required"})
		return
	}

	status := body.Status
	if status == "" {
		status = types.StatusTodo
	}

	date, err := parseDateParam(body.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	window := pipeline.DayWindowOrNow(date, now())

	update := models.Update{
		UserID:  body.UserID,
		RawText: body.Description,
		Date:    window.Start,
	}

	task := models.Task{
		UserID:      body.UserID,
		ProjectID:   body.ProjectID,
		Description: body.Description,
		Status:      status,
		CreatedAt:   window.Start,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&update).Error; err != nil {
			return err
		}
		task.UpdateID = update.ID
		return tx.Create(&task).Error
	})

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	full, err := store.NewTaskStore(db.DB).Get(task.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	go services.NotifyTaskChange(services.TaskNotification{
		UserName:        full.User.Name,
		SlackUserID:     full.User.SlackUserID,
		TaskDescription: full.Description,
		ProjectName:     full.Project.Name,
		Action:          services.ActionCreated,
	})
	BroadcastRefresh()

	ctx.JSON(http.StatusCreated, full)
}

// UpdateTask applies a partial edit. A status change is reported as
// such; any other edit as a plain update.
func UpdateTask(ctx *gin.Context) {
	taskID := ctx.Param("id")

	var body UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	tasks := store.NewTaskStore(db.DB)

	task, err := tasks.Get(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	oldStatus := task.Status

	if body.Description != nil {
		task.Description = *body.Description
	}
	if body.Status != nil {
		if !types.ValidStatus(*body.Status) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		task.Status = *body.Status
	}
	if body.ProjectID != nil {
		task.ProjectID = *body.ProjectID
	}
	if body.DueDate != nil {
		task.DueDate = parseDueDate(body.DueDate)
	}

	if err := tasks.Save(task); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	full, err := tasks.Get(task.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	notification := services.TaskNotification{
		UserName:        full.User.Name,
		SlackUserID:     full.User.SlackUserID,
		TaskDescription: full.Description,
		ProjectName:     full.Project.Name,
		Action:          services.ActionUpdated,
	}
	if full.Status != oldStatus {
		notification.Action = services.ActionStatusChanged
		notification.OldStatus = oldStatus
		notification.NewStatus = full.Status
	}

	go services.NotifyTaskChange(notification)
	BroadcastRefresh()

	ctx.JSON(http.StatusOK, full)
}

func DeleteTask(ctx *gin.Context) {
	taskID := ctx.Param("id")

	tasks := store.NewTaskStore(db.DB)

	task, err := tasks.Get(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	if err := tasks.Delete(task); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	go services.NotifyTaskChange(services.TaskNotification{
		UserName:        task.User.Name,
		SlackUserID:     task.User.SlackUserID,
		TaskDescription: task.Description,
		ProjectName:     task.Project.Name,
		Action:          services.ActionDeleted,
	})
	BroadcastRefresh()

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
