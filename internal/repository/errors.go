package repository

import "errors"

// Common repository errors
var (
	// ErrBoardNotFound is returned when no board matches (id, user_id)
	ErrBoardNotFound = errors.New("board not found")

	// ErrTaskNotFound is returned when no task matches (id, board_id, board_user_id)
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateBoardName is returned when the owner already has a board with that name
	ErrDuplicateBoardName = errors.New("board name already taken")

	// ErrBoardNameUnchanged is returned when a rename provides no name or the current one
	ErrBoardNameUnchanged = errors.New("board name missing or unchanged")
)
