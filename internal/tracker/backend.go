package tracker

import (
	"context"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

// Backend is where the tracker reads and writes tasks, projects and
// categories. client.Client talks to the REST service; MemoryBackend keeps
// everything in process.
type Backend interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, in model.TaskCreate) (model.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (model.Task, error)
	ToggleTask(ctx context.Context, id uuid.UUID) (model.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error

	ListProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, in model.ProjectCreate) (model.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, patch model.ProjectPatch) (model.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, in model.CategoryCreate) (model.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, patch model.CategoryPatch) (model.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
