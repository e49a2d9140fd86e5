package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "taskflow/docs"
	"taskflow/internal/config"
	"taskflow/internal/handler"
	"taskflow/internal/kanban"
	"taskflow/internal/middleware"
	"taskflow/internal/repository"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
}

// Handlers groups the route handlers
type Handlers struct {
	Tasks      *handler.TaskHandler
	Projects   *handler.ProjectHandler
	Categories *handler.CategoryHandler
	Chat       *handler.ChatHandler
	Workspaces *handler.WorkspaceHandler
	Boards     *handler.BoardHandler
	Columns    *handler.ColumnHandler
}

func Init(cfg *config.Config, log *zap.Logger) (*Server, error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	log.Info("connected to database", zap.String("driver", cfg.DBDriver))

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	log.Info("schema migrated", zap.Int("models", len(repository.Models())))

	// Initialize repositories
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	chatRepo := repository.NewChatRepository(db)

	if cfg.SeedDefaults {
		seeded, err := repository.SeedDefaults(ctx, projectRepo, categoryRepo)
		if err != nil {
			return nil, fmt.Errorf("failed to seed defaults: %w", err)
		}
		if seeded {
			log.Info("seeded default project and categories")
		}
	}

	// Доски живут в памяти процесса
	board := kanban.New(kanban.WithLogger(log.Named("kanban")))

	// Initialize handlers
	h := Handlers{
		Tasks:      handler.NewTaskHandler(taskRepo, projectRepo, categoryRepo),
		Projects:   handler.NewProjectHandler(projectRepo),
		Categories: handler.NewCategoryHandler(categoryRepo),
		Chat:       handler.NewChatHandler(chatRepo, taskRepo),
		Workspaces: handler.NewWorkspaceHandler(board),
		Boards:     handler.NewBoardHandler(board),
		Columns:    handler.NewColumnHandler(board),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Server{
		Engine: NewRouter(cfg, log, reg, h),
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	default:
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	}
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(cfg *config.Config, log *zap.Logger, reg *prometheus.Registry, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.NewMetrics(reg).Handler())
	r.Use(middleware.CORS(cfg.CORSOrigin))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "TaskFlow API", "status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Task routes
	r.GET("/tasks", h.Tasks.GetAll)
	r.POST("/tasks", h.Tasks.Create)
	r.GET("/tasks/:id", h.Tasks.GetByID)
	r.PUT("/tasks/:id", h.Tasks.Update)
	r.PATCH("/tasks/:id/toggle", h.Tasks.Toggle)
	r.DELETE("/tasks/:id", h.Tasks.Delete)
	r.GET("/tasks/:id/comments", h.Chat.GetComments)
	r.POST("/tasks/:id/comments", h.Chat.AddComment)

	// Project routes
	r.GET("/projects", h.Projects.GetAll)
	r.POST("/projects", h.Projects.Create)
	r.GET("/projects/:id", h.Projects.GetByID)
	r.PUT("/projects/:id", h.Projects.Update)
	r.DELETE("/projects/:id", h.Projects.Delete)

	// Category routes
	r.GET("/categories", h.Categories.GetAll)
	r.POST("/categories", h.Categories.Create)
	r.GET("/categories/:id", h.Categories.GetByID)
	r.PUT("/categories/:id", h.Categories.Update)
	r.DELETE("/categories/:id", h.Categories.Delete)

	// Chat routes
	r.GET("/chat/messages", h.Chat.GetMessages)
	r.POST("/chat/messages", h.Chat.PostMessage)

	r.GET("/stats", h.Tasks.Stats)

	// Workspace and team routes
	r.GET("/session", h.Workspaces.Session)
	r.GET("/workspaces", h.Workspaces.GetAll)
	r.POST("/workspaces", h.Workspaces.Create)
	r.GET("/workspaces/:id", h.Workspaces.GetByID)
	r.PATCH("/workspaces/:id", h.Workspaces.Update)
	r.DELETE("/workspaces/:id", h.Workspaces.Delete)
	r.POST("/workspaces/:id/select", h.Workspaces.Select)
	r.GET("/teams", h.Workspaces.GetTeams)
	r.POST("/teams", h.Workspaces.CreateTeam)

	// Board routes
	r.GET("/workspaces/:id/boards", h.Boards.GetAll)
	r.POST("/workspaces/:id/boards", h.Boards.Create)
	r.GET("/boards/:id", h.Boards.GetByID)
	r.PATCH("/boards/:id", h.Boards.Update)
	r.DELETE("/boards/:id", h.Boards.Delete)
	r.POST("/boards/:id/open", h.Boards.Open)
	r.GET("/boards/:id/counts", h.Boards.Counts)

	// Column routes
	r.GET("/boards/:id/columns", h.Columns.GetAll)
	r.POST("/boards/:id/columns", h.Columns.Create)
	r.PATCH("/columns/:id", h.Columns.Update)
	r.DELETE("/columns/:id", h.Columns.Delete)

	// Board task routes
	r.GET("/boards/:id/tasks", h.Boards.GetTasks)
	r.POST("/boards/:id/tasks", h.Boards.CreateTask)
	r.PATCH("/boards/:id/tasks/:task_id", h.Boards.UpdateTask)
	r.DELETE("/boards/:id/tasks/:task_id", h.Boards.DeleteTask)
	r.POST("/boards/:id/tasks/:task_id/move", h.Boards.MoveTask)
	r.GET("/boards/:id/tasks/:task_id/comments", h.Boards.GetComments)
	r.POST("/boards/:id/tasks/:task_id/comments", h.Boards.AddComment)

	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Info("server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Log.Fatal("failed to listen", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatal("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.Log.Info("server exited properly")
}
