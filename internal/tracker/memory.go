package tracker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

var ErrNotFound = errors.New("not found")

// MemoryBackend is a Backend that keeps its collections in process.
type MemoryBackend struct {
	mu         sync.Mutex
	now        func() time.Time
	tasks      []model.Task
	projects   []model.Project
	categories []model.Category
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{now: func() time.Time { return time.Now().UTC() }}
}

// later returns the current time, or just past prev when the clock has not
// moved since.
func (m *MemoryBackend) later(prev time.Time) time.Time {
	now := m.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func (m *MemoryBackend) ListTasks(ctx context.Context) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Task, len(m.tasks))
	for i := range m.tasks {
		out[i] = m.tasks[i].Clone()
	}
	return out, nil
}

func (m *MemoryBackend) CreateTask(ctx context.Context, in model.TaskCreate) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	t := model.Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      model.StatusTodo,
		Priority:    in.Priority,
		Tags:        append(make([]string, 0, len(in.Tags)), in.Tags...),
		DueDate:     in.DueDate,
		ProjectID:   in.ProjectID,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !t.Priority.Valid() {
		t.Priority = model.PriorityMedium
	}
	t.ParentKind = t.Parent().Kind
	if err := t.Parent().Validate(); err != nil {
		return model.Task{}, err
	}
	m.tasks = append(m.tasks, t)
	return t.Clone(), nil
}

func (m *MemoryBackend) UpdateTask(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (model.Task, error) {
	return m.mutateTask(id, func(t *model.Task) { patch.Apply(t) })
}

func (m *MemoryBackend) ToggleTask(ctx context.Context, id uuid.UUID) (model.Task, error) {
	return m.mutateTask(id, func(t *model.Task) { t.Toggle() })
}

func (m *MemoryBackend) mutateTask(id uuid.UUID, fn func(*model.Task)) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id {
			fn(&m.tasks[i])
			m.tasks[i].UpdatedAt = m.later(m.tasks[i].UpdatedAt)
			return m.tasks[i].Clone(), nil
		}
	}
	return model.Task{}, ErrNotFound
}

func (m *MemoryBackend) DeleteTask(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryBackend) ListProjects(ctx context.Context) ([]model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Project(nil), m.projects...), nil
}

func (m *MemoryBackend) CreateProject(ctx context.Context, in model.ProjectCreate) (model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	p := model.Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Type:        in.Type,
		Color:       in.Color,
		Icon:        in.Icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.projects = append(m.projects, p)
	return p, nil
}

func (m *MemoryBackend) UpdateProject(ctx context.Context, id uuid.UUID, patch model.ProjectPatch) (model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].ID == id {
			patch.Apply(&m.projects[i])
			m.projects[i].UpdatedAt = m.later(m.projects[i].UpdatedAt)
			return m.projects[i], nil
		}
	}
	return model.Project{}, ErrNotFound
}

// DeleteProject removes the project and its tasks.
func (m *MemoryBackend) DeleteProject(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			m.dropTasks(func(t *model.Task) bool { return t.ProjectID != nil && *t.ProjectID == id })
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryBackend) ListCategories(ctx context.Context) ([]model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Category(nil), m.categories...), nil
}

func (m *MemoryBackend) CreateCategory(ctx context.Context, in model.CategoryCreate) (model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	c := model.Category{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Color:         in.Color,
		Icon:          in.Icon,
		WorkspaceType: in.WorkspaceType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.categories = append(m.categories, c)
	return c, nil
}

func (m *MemoryBackend) UpdateCategory(ctx context.Context, id uuid.UUID, patch model.CategoryPatch) (model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.categories {
		if m.categories[i].ID == id {
			patch.Apply(&m.categories[i])
			m.categories[i].UpdatedAt = m.later(m.categories[i].UpdatedAt)
			return m.categories[i], nil
		}
	}
	return model.Category{}, ErrNotFound
}

// DeleteCategory removes the category and its tasks.
func (m *MemoryBackend) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			m.dropTasks(func(t *model.Task) bool { return t.CategoryID != nil && *t.CategoryID == id })
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryBackend) dropTasks(drop func(*model.Task) bool) {
	kept := m.tasks[:0]
	for i := range m.tasks {
		if !drop(&m.tasks[i]) {
			kept = append(kept, m.tasks[i])
		}
	}
	m.tasks = kept
}
