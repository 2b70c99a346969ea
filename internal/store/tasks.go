package store

import (
	"time"

	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/pipeline"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskStore is the repository the handlers and the pipeline read
// through; it keeps the day-window queries in one place.
type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// DescriptionsInWindow returns the descriptions already recorded for
// one member inside a day window. Feed for the write-side dedup.
func (s *TaskStore) DescriptionsInWindow(userID string, w pipeline.Window) ([]string, error) {
	var descriptions []string

	err := s.db.Model(&models.Task{}).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, w.Start, w.End).
		Pluck("description", &descriptions).Error

	if err != nil {
		return nil, err
	}

	return descriptions, nil
}

// InWindow returns all tasks inside a day window, newest first, with
// member and project joined. Descending order matters: the read-side
// dedup keeps the first occurrence it sees.
func (s *TaskStore) InWindow(w pipeline.Window) ([]models.Task, error) {
	var tasks []models.Task

	err := s.db.Preload("User").Preload("Project").
		Where("created_at >= ? AND created_at <= ?", w.Start, w.End).
		Order("created_at DESC").
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// Since returns all tasks created at or after the cutoff, newest
// first, with member and project joined.
func (s *TaskStore) Since(cutoff time.Time) ([]models.Task, error) {
	var tasks []models.Task

	err := s.db.Preload("User").Preload("Project").
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s *TaskStore) Get(id string) (*models.Task, error) {
	var task models.Task

	err := s.db.Preload("User").Preload("Project").First(&task, "id = ?", id).Error

	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskStore) Create(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *TaskStore) Save(task *models.Task) error {
	// Preloaded member/project structs must not be written back.
	return s.db.Omit(clause.Associations).Save(task).Error
}

func (s *TaskStore) Delete(task *models.Task) error {
	return s.db.Delete(task).Error
}

// CountAll is used by tests asserting "row count before == after".
func (s *TaskStore) CountAll() (int64, error) {
	var count int64
	err := s.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}
