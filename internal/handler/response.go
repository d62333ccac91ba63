package handler

import (
	"net/http"

	"taskboard/internal/middleware"
	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
)

// BoardSummary is the wire form of a board on list endpoints, where the
// tasks key is omitted entirely.
type BoardSummary struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

// BoardResponse is the wire form of a board with its nested tasks. The
// tasks array is always present, empty when the board has no tasks.
type BoardResponse struct {
	ID     int            `json:"id"`
	Name   string         `json:"name"`
	UserID string         `json:"user_id"`
	Tasks  []TaskResponse `json:"tasks"`
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      int    `json:"status"`
	BoardID     int    `json:"board_id"`
	BoardUserID string `json:"board_user_id"`
}

func newTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		BoardID:     task.BoardID,
		BoardUserID: task.BoardUserID,
	}
}

func newBoardSummary(board *model.Board) BoardSummary {
	return BoardSummary{
		ID:     board.ID,
		Name:   board.Name,
		UserID: board.UserID,
	}
}

func newBoardResponse(board *model.Board) BoardResponse {
	tasks := make([]TaskResponse, len(board.Tasks))
	for i := range board.Tasks {
		tasks[i] = newTaskResponse(&board.Tasks[i])
	}
	return BoardResponse{
		ID:     board.ID,
		Name:   board.Name,
		UserID: board.UserID,
		Tasks:  tasks,
	}
}

// currentUserID returns the authenticated user's id placed in the
// context by the auth middleware. Responds 401 and returns false when
// it is missing.
func currentUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return "", false
	}

	userID, ok := value.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return "", false
	}
	return userID, true
}
