package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/middleware"
	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func setupRouter(repo *MockUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	protected := r.Group("/protected")
	protected.Use(middleware.BearerAuth(repo))

	protected.GET("/resource", func(c *gin.Context) {
		userID, exists := c.Get(middleware.UserIDKey)
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Access granted",
			"user_id": userID,
		})
	})

	return r
}

func TestBearerAuth_ValidToken(t *testing.T) {
	// Arrange
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo)

	token := "7c9e6679f4f011e9b1f20242ac130002"
	mockRepo.On("GetByToken", mock.Anything, token).Return(&model.User{ID: token}, nil)

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Access granted")
	assert.Contains(t, resp.Body.String(), token)
	mockRepo.AssertExpectations(t)
}

func TestBearerAuth_NoAuthHeader(t *testing.T) {
	// Arrange
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo)

	req, _ := http.NewRequest("GET", "/protected/resource", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header is required")
	mockRepo.AssertNotCalled(t, "GetByToken")
}

func TestBearerAuth_InvalidAuthFormat(t *testing.T) {
	// Arrange
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo)

	// A header without a credential part must be rejected, not crash
	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header format must be Bearer {token}")
	mockRepo.AssertNotCalled(t, "GetByToken")
}

func TestBearerAuth_TooManyHeaderParts(t *testing.T) {
	// Arrange
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo)

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer some token")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockRepo.AssertNotCalled(t, "GetByToken")
}

func TestBearerAuth_UnknownToken(t *testing.T) {
	// Arrange
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo)

	mockRepo.On("GetByToken", mock.Anything, "deadbeef").Return(nil, nil)

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid token")
	mockRepo.AssertExpectations(t)
}

func TestBearerAuth_LookupError(t *testing.T) {
	// Arrange
	mockRepo := new(MockUserRepository)
	router := setupRouter(mockRepo)

	mockRepo.On("GetByToken", mock.Anything, "sometoken").Return(nil, assert.AnError)

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer sometoken")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockRepo.AssertExpectations(t)
}
