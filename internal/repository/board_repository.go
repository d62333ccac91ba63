package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardRepository struct {
	db *gorm.DB
}

type BoardRepositoryInterface interface {
	GetOwned(ctx context.Context, userID string) ([]model.Board, error)
	Get(ctx context.Context, userID string, boardID int) (*model.Board, error)
	Create(ctx context.Context, userID, name string) (*model.Board, error)
	Rename(ctx context.Context, userID string, boardID int, name string) (*model.Board, error)
	Delete(ctx context.Context, userID string, boardID int) (*model.Board, error)
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// GetOwned returns every board owned by the user, tasks not loaded.
func (r *BoardRepository) GetOwned(ctx context.Context, userID string) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&boards).Error
	return boards, err
}

// Get returns the board matching (boardID, userID) with its tasks.
func (r *BoardRepository) Get(ctx context.Context, userID string, boardID int) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).Preload("Tasks").
		First(&board, "id = ? AND user_id = ?", boardID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Create assigns the next board id for the owner and inserts the board.
// The owner's user row is locked for the duration of the transaction so
// concurrent creates for the same user cannot race on the max-id read.
func (r *BoardRepository) Create(ctx context.Context, userID, name string) (*model.Board, error) {
	board := &model.Board{UserID: userID, Name: name, Tasks: []model.Task{}}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&owner, "id = ?", userID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Board{}).
			Where("user_id = ? AND name = ?", userID, name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateBoardName
		}

		var maxID int
		if err := tx.Model(&model.Board{}).
			Where("user_id = ?", userID).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID).Error; err != nil {
			return err
		}

		board.ID = maxID + 1
		return tx.Create(board).Error
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

// Rename updates the board's name. The board is resolved first, so a
// missing board reports ErrBoardNotFound even when the name is invalid.
func (r *BoardRepository) Rename(ctx context.Context, userID string, boardID int, name string) (*model.Board, error) {
	var board model.Board

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tasks").
			First(&board, "id = ? AND user_id = ?", boardID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}

		if name == "" || name == board.Name {
			return ErrBoardNameUnchanged
		}

		board.Name = name
		return tx.Model(&model.Board{}).
			Where("id = ? AND user_id = ?", boardID, userID).
			Update("name", name).Error
	})
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Delete removes the board and, through the schema's cascading foreign
// key, every task on it. Returns the last-known state including tasks.
func (r *BoardRepository) Delete(ctx context.Context, userID string, boardID int) (*model.Board, error) {
	var board model.Board

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tasks").
			First(&board, "id = ? AND user_id = ?", boardID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}

		return tx.Where("id = ? AND user_id = ?", boardID, userID).
			Delete(&model.Board{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &board, nil
}
