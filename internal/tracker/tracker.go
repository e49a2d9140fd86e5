// Package tracker is the project/category task list. It keeps a local copy
// of tasks, projects and categories, merges every successful backend
// response into it and reduces every failed one to a single message.
package tracker

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"taskflow/internal/filter"
	"taskflow/internal/model"
)

// User-facing messages, one per failed operation kind.
const (
	MsgFetchFailed          = "failed to fetch data"
	MsgCreateTaskFailed     = "failed to create task"
	MsgUpdateTaskFailed     = "failed to update task"
	MsgDeleteTaskFailed     = "failed to delete task"
	MsgCreateProjectFailed  = "failed to create project"
	MsgUpdateProjectFailed  = "failed to update project"
	MsgDeleteProjectFailed  = "failed to delete project"
	MsgCreateCategoryFailed = "failed to create category"
	MsgUpdateCategoryFailed = "failed to update category"
	MsgDeleteCategoryFailed = "failed to delete category"
)

var (
	projectColors  = []string{"bg-blue-500", "bg-green-500", "bg-purple-500", "bg-red-500", "bg-yellow-500", "bg-indigo-500"}
	categoryColors = []string{"bg-blue-500", "bg-green-500", "bg-purple-500", "bg-red-500", "bg-yellow-500", "bg-indigo-500", "bg-pink-500", "bg-orange-500"}
	categoryIcons  = []string{"Building2", "Heart", "Star", "Coffee", "Car", "Gamepad2", "ShoppingCart", "GraduationCap"}
)

type Tracker struct {
	backend Backend
	log     *zap.Logger

	mu         sync.RWMutex
	tasks      []model.Task
	projects   []model.Project
	categories []model.Category
	view       filter.Context
	err        string
	loading    bool
}

type Option func(*Tracker)

func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// New returns a tracker in the personal context with nothing loaded.
func New(backend Backend, opts ...Option) *Tracker {
	t := &Tracker{
		backend: backend,
		log:     zap.NewNop(),
		view:    filter.Context{Type: model.WorkspacePersonal},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// fail records msg as the current error. The local collections are left
// as they were.
func (t *Tracker) fail(msg string, err error) {
	t.log.Warn(msg, zap.Error(err))
	t.mu.Lock()
	t.err = msg
	t.mu.Unlock()
}

// Load fetches tasks, projects and categories concurrently and replaces
// the local collections when all three succeed.
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	t.loading = true
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.loading = false
		t.mu.Unlock()
	}()

	var (
		tasks      []model.Task
		projects   []model.Project
		categories []model.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tasks, err = t.backend.ListTasks(gctx)
		return err
	})
	g.Go(func() (err error) {
		projects, err = t.backend.ListProjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = t.backend.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		t.fail(MsgFetchFailed, err)
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.tasks, t.projects, t.categories = tasks, projects, categories
	t.resetSelection()
	t.err = ""
	return nil
}

// CreateTask creates a task under the current selection: the selected
// project in the team context, the selected category in the personal one.
// A blank title is ignored.
func (t *Tracker) CreateTask(ctx context.Context, title, description string) (model.Task, bool) {
	if model.Blank(title) {
		return model.Task{}, false
	}

	t.mu.RLock()
	in := model.TaskCreate{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	switch t.view.Type {
	case model.WorkspaceTeam:
		in.ProjectID = optionalID(t.view.ProjectID)
	case model.WorkspacePersonal:
		in.CategoryID = optionalID(t.view.CategoryID)
	}
	t.mu.RUnlock()

	task, err := t.backend.CreateTask(ctx, in)
	if err != nil {
		t.fail(MsgCreateTaskFailed, err)
		return model.Task{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.tasks = append(t.tasks, task)
	t.err = ""
	return task, true
}

func (t *Tracker) UpdateTask(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (model.Task, bool) {
	task, err := t.backend.UpdateTask(ctx, id, patch)
	if err != nil {
		t.fail(MsgUpdateTaskFailed, err)
		return model.Task{}, false
	}
	t.replaceTask(task)
	return task, true
}

// ToggleTask flips the completion of a task. The local entry is replaced
// by the server's answer.
func (t *Tracker) ToggleTask(ctx context.Context, id uuid.UUID) (model.Task, bool) {
	task, err := t.backend.ToggleTask(ctx, id)
	if err != nil {
		t.fail(MsgUpdateTaskFailed, err)
		return model.Task{}, false
	}
	t.replaceTask(task)
	return task, true
}

func (t *Tracker) replaceTask(task model.Task) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.tasks {
		if t.tasks[i].ID == task.ID {
			t.tasks[i] = task
			break
		}
	}
	t.err = ""
}

func (t *Tracker) DeleteTask(ctx context.Context, id uuid.UUID) bool {
	if err := t.backend.DeleteTask(ctx, id); err != nil {
		t.fail(MsgDeleteTaskFailed, err)
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.tasks = filter.Where(t.tasks, func(task *model.Task) bool { return task.ID != id })
	t.err = ""
	return true
}

// CreateProject adds a project. Missing type, color and icon are filled in
// the way the web front did.
func (t *Tracker) CreateProject(ctx context.Context, in model.ProjectCreate) (model.Project, bool) {
	if model.Blank(in.Name) {
		return model.Project{}, false
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if !in.Type.Valid() {
		in.Type = model.WorkspacePersonal
	}

	t.mu.RLock()
	if in.Color == "" {
		in.Color = projectColors[len(t.projects)%len(projectColors)]
	}
	t.mu.RUnlock()
	if in.Icon == "" {
		in.Icon = "User"
		if in.Type == model.WorkspaceTeam {
			in.Icon = "Users"
		}
	}

	p, err := t.backend.CreateProject(ctx, in)
	if err != nil {
		t.fail(MsgCreateProjectFailed, err)
		return model.Project{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.projects = append(t.projects, p)
	t.err = ""
	return p, true
}

func (t *Tracker) UpdateProject(ctx context.Context, id uuid.UUID, patch model.ProjectPatch) (model.Project, bool) {
	p, err := t.backend.UpdateProject(ctx, id, patch)
	if err != nil {
		t.fail(MsgUpdateProjectFailed, err)
		return model.Project{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.projects {
		if t.projects[i].ID == id {
			t.projects[i] = p
		}
	}
	t.err = ""
	return p, true
}

// DeleteProject removes the project and its tasks. A selected project is
// deselected.
func (t *Tracker) DeleteProject(ctx context.Context, id uuid.UUID) bool {
	if err := t.backend.DeleteProject(ctx, id); err != nil {
		t.fail(MsgDeleteProjectFailed, err)
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.projects = filter.Where(t.projects, func(p *model.Project) bool { return p.ID != id })
	t.tasks = filter.Where(t.tasks, func(task *model.Task) bool {
		return task.ProjectID == nil || *task.ProjectID != id
	})
	if t.view.ProjectID == id {
		t.view.ProjectID = uuid.Nil
	}
	t.err = ""
	return true
}

func (t *Tracker) CreateCategory(ctx context.Context, in model.CategoryCreate) (model.Category, bool) {
	if model.Blank(in.Name) {
		return model.Category{}, false
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if !in.WorkspaceType.Valid() {
		in.WorkspaceType = model.WorkspacePersonal
	}

	t.mu.RLock()
	n := len(t.categories)
	t.mu.RUnlock()
	if in.Color == "" {
		in.Color = categoryColors[n%len(categoryColors)]
	}
	if in.Icon == "" {
		in.Icon = categoryIcons[n%len(categoryIcons)]
	}

	c, err := t.backend.CreateCategory(ctx, in)
	if err != nil {
		t.fail(MsgCreateCategoryFailed, err)
		return model.Category{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.categories = append(t.categories, c)
	t.err = ""
	return c, true
}

func (t *Tracker) UpdateCategory(ctx context.Context, id uuid.UUID, patch model.CategoryPatch) (model.Category, bool) {
	c, err := t.backend.UpdateCategory(ctx, id, patch)
	if err != nil {
		t.fail(MsgUpdateCategoryFailed, err)
		return model.Category{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.categories {
		if t.categories[i].ID == id {
			t.categories[i] = c
		}
	}
	t.err = ""
	return c, true
}

func (t *Tracker) DeleteCategory(ctx context.Context, id uuid.UUID) bool {
	if err := t.backend.DeleteCategory(ctx, id); err != nil {
		t.fail(MsgDeleteCategoryFailed, err)
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.categories = filter.Where(t.categories, func(c *model.Category) bool { return c.ID != id })
	t.tasks = filter.Where(t.tasks, func(task *model.Task) bool {
		return task.CategoryID == nil || *task.CategoryID != id
	})
	if t.view.CategoryID == id {
		t.view.CategoryID = uuid.Nil
	}
	t.err = ""
	return true
}

// SwitchContext changes between the personal and team views. The selection
// moves to the first team project or the first personal category, or to
// nothing when there is none. Local collections are untouched.
func (t *Tracker) SwitchContext(typ model.WorkspaceType) bool {
	if !typ.Valid() {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view.Type = typ
	t.resetSelection()
	return true
}

func (t *Tracker) resetSelection() {
	t.view.ProjectID, t.view.CategoryID = uuid.Nil, uuid.Nil
	switch t.view.Type {
	case model.WorkspaceTeam:
		if ps := filter.ProjectsOfType(t.projects, model.WorkspaceTeam); len(ps) > 0 {
			t.view.ProjectID = ps[0].ID
		}
	case model.WorkspacePersonal:
		if cs := filter.CategoriesOfType(t.categories, model.WorkspacePersonal); len(cs) > 0 {
			t.view.CategoryID = cs[0].ID
		}
	}
}

func (t *Tracker) SelectProject(id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.projects {
		if p.ID == id {
			t.view.ProjectID = id
			return true
		}
	}
	return false
}

func (t *Tracker) SelectCategory(id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, c := range t.categories {
		if c.ID == id {
			t.view.CategoryID = id
			return true
		}
	}
	return false
}

func (t *Tracker) Context() filter.Context {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.view
}

// VisibleTasks returns the tasks of the current selection.
func (t *Tracker) VisibleTasks() []model.Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return filter.TasksForContext(t.tasks, t.view)
}

func (t *Tracker) Todo() []model.Task {
	todo, _ := filter.SplitDone(t.VisibleTasks())
	return todo
}

func (t *Tracker) Completed() []model.Task {
	_, done := filter.SplitDone(t.VisibleTasks())
	return done
}

func (t *Tracker) Tasks() []model.Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append(make([]model.Task, 0, len(t.tasks)), t.tasks...)
}

func (t *Tracker) Projects() []model.Project {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append(make([]model.Project, 0, len(t.projects)), t.projects...)
}

func (t *Tracker) Categories() []model.Category {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append(make([]model.Category, 0, len(t.categories)), t.categories...)
}

// Err returns the message of the last failed operation, or "" once an
// operation has succeeded since.
func (t *Tracker) Err() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.err
}

func (t *Tracker) Loading() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.loading
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
