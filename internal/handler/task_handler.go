package handler

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskRepo  repository.TaskRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface, boardRepo repository.BoardRepositoryInterface) *TaskHandler {
	return &TaskHandler{
		taskRepo:  taskRepo,
		boardRepo: boardRepo,
	}
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      int    `json:"status"`
}

type EditTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      int    `json:"status"`
}

func parseTaskID(c *gin.Context) (int, bool) {
	taskID, err := strconv.Atoi(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return 0, false
	}
	return taskID, true
}

// Create adds a task to a board. The board is resolved before field
// validation, so an unknown board reports 404 even with a bad body.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	if _, err := h.boardRepo.Get(c.Request.Context(), userID, boardID); err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title == "" || req.Description == "" || req.Status == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, description and status are required"})
		return
	}

	task, err := h.taskRepo.Create(c.Request.Context(), userID, boardID, req.Title, req.Description, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Edit applies a partial update to a task. The task is resolved before
// the all-fields-empty check, so an unknown task reports 404 first.
func (h *TaskHandler) Edit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req EditTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.taskRepo.Get(c.Request.Context(), userID, boardID, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	upd := repository.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if upd.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	task, err := h.taskRepo.Update(c.Request.Context(), userID, boardID, taskID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete removes a task and returns its last-known representation.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskRepo.Delete(c.Request.Context(), userID, boardID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}
