package handler

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface) *BoardHandler {
	return &BoardHandler{boardRepo: boardRepo}
}

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type EditBoardRequest struct {
	Name string `json:"name"`
}

// parseBoardID reads the board id path parameter. A non-integer id can
// never match a board, so it reports 404 rather than 400.
func parseBoardID(c *gin.Context) (int, bool) {
	boardID, err := strconv.Atoi(c.Param("board_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return 0, false
	}
	return boardID, true
}

// List returns every board owned by the authenticated user, without
// nested tasks.
func (h *BoardHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boards, err := h.boardRepo.GetOwned(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	response := make([]BoardSummary, len(boards))
	for i := range boards {
		response[i] = newBoardSummary(&boards[i])
	}

	c.JSON(http.StatusOK, response)
}

// Get returns a single board with its tasks.
func (h *BoardHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	board, err := h.boardRepo.Get(c.Request.Context(), userID, boardID)
	if err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}

// Create adds a new board for the authenticated user.
func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	board, err := h.boardRepo.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateBoardName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Board with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}

// Edit renames a board.
func (h *BoardHandler) Edit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req EditBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := h.boardRepo.Rename(c.Request.Context(), userID, boardID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		case errors.Is(err, repository.ErrBoardNameUnchanged):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is not provided or empty or repeating"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		}
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}

// Delete removes a board and all of its tasks, returning the board's
// last-known representation.
func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	board, err := h.boardRepo.Delete(c.Request.Context(), userID, boardID)
	if err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board"})
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}
