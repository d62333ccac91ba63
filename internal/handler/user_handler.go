package handler

import (
	"net/http"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	repo repository.UserRepositoryInterface
}

func NewUserHandler(repo repository.UserRepositoryInterface) *UserHandler {
	return &UserHandler{repo: repo}
}

type SignupResponse struct {
	Token string `json:"token"`
}

// Signup issues a fresh opaque token and persists the user keyed by it.
// The token doubles as the user's identifier.
func (h *UserHandler) Signup(c *gin.Context) {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	user := &model.User{ID: token}
	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, SignupResponse{Token: token})
}
