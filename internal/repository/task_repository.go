package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, userID string, boardID int, title, description string, status int) (*model.Task, error)
	Get(ctx context.Context, userID string, boardID, taskID int) (*model.Task, error)
	Update(ctx context.Context, userID string, boardID, taskID int, upd TaskUpdate) (*model.Task, error)
	Delete(ctx context.Context, userID string, boardID, taskID int) (*model.Task, error)
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

// TaskUpdate carries the fields of a partial task edit. A zero value
// means "keep the current value" — the wire format cannot distinguish
// an empty field from an omitted one, and the API keeps that behavior.
type TaskUpdate struct {
	Title       string
	Description string
	Status      int
}

func (u TaskUpdate) Empty() bool {
	return u.Title == "" && u.Description == "" && u.Status == 0
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create assigns the next task id within the board and inserts the
// task. The owning board row is locked so concurrent creates on the
// same board cannot assign duplicate ids.
func (r *TaskRepository) Create(ctx context.Context, userID string, boardID int, title, description string, status int) (*model.Task, error) {
	task := &model.Task{
		BoardID:     boardID,
		BoardUserID: userID,
		Title:       title,
		Description: description,
		Status:      status,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var board model.Board
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&board, "id = ? AND user_id = ?", boardID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}

		var maxID int
		if err := tx.Model(&model.Task{}).
			Where("board_id = ? AND board_user_id = ?", boardID, userID).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID).Error; err != nil {
			return err
		}

		task.ID = maxID + 1
		return tx.Create(task).Error
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Get returns the task matching (taskID, boardID, userID).
func (r *TaskRepository) Get(ctx context.Context, userID string, boardID, taskID int) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		First(&task, "id = ? AND board_id = ? AND board_user_id = ?", taskID, boardID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies the non-zero fields of upd to the task.
func (r *TaskRepository) Update(ctx context.Context, userID string, boardID, taskID int, upd TaskUpdate) (*model.Task, error) {
	var task model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ? AND board_id = ? AND board_user_id = ?", taskID, boardID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if upd.Title != "" {
			task.Title = upd.Title
		}
		if upd.Description != "" {
			task.Description = upd.Description
		}
		if upd.Status != 0 {
			task.Status = upd.Status
		}

		return tx.Model(&model.Task{}).
			Where("id = ? AND board_id = ? AND board_user_id = ?", taskID, boardID, userID).
			Updates(map[string]interface{}{
				"title":       task.Title,
				"description": task.Description,
				"status":      task.Status,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes the task and returns its last-known state.
func (r *TaskRepository) Delete(ctx context.Context, userID string, boardID, taskID int) (*model.Task, error) {
	var task model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ? AND board_id = ? AND board_user_id = ?", taskID, boardID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		return tx.Where("id = ? AND board_id = ? AND board_user_id = ?", taskID, boardID, userID).
			Delete(&model.Task{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}
