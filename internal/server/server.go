package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to access DB connection: %w", err)
	}
	if err := database.Migrate(sqlDB); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Schema is up to date")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	r := NewRouter(userRepo, boardRepo, taskRepo)

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

// NewRouter wires the full HTTP surface onto a gin engine. Every board
// and task route sits behind the bearer-token middleware.
func NewRouter(
	userRepo repository.UserRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
) *gin.Engine {
	r := gin.Default()

	userHandler := handler.NewUserHandler(userRepo)
	boardHandler := handler.NewBoardHandler(boardRepo)
	taskHandler := handler.NewTaskHandler(taskRepo, boardRepo)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Public routes
	api.POST("/signup", userHandler.Signup)

	// Protected routes - every board and task operation requires a token
	boards := api.Group("/boards")
	boards.Use(middleware.BearerAuth(userRepo))
	{
		boards.GET("", boardHandler.List)
		boards.GET("/:board_id", boardHandler.Get)
		boards.POST("/create", boardHandler.Create)
		boards.POST("/:board_id/edit", boardHandler.Edit)
		boards.POST("/:board_id/delete", boardHandler.Delete)

		boards.POST("/:board_id/tasks/create", taskHandler.Create)
		boards.POST("/:board_id/tasks/:task_id/edit", taskHandler.Edit)
		boards.POST("/:board_id/tasks/:task_id/delete", taskHandler.Delete)
	}

	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
