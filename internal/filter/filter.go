// Package filter holds the derivation rules that project a collection onto
// one parent. Every function keeps the input order and returns a non-nil
// slice; an unknown or nil parent id yields an empty result.
package filter

import (
	"github.com/google/uuid"

	"taskflow/internal/model"
)

// Where returns the elements of items that satisfy keep, in order.
func Where[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0)
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

func none[T any]() []T { return make([]T, 0) }

func TasksForColumn(tasks []model.Task, columnID uuid.UUID) []model.Task {
	if columnID == uuid.Nil {
		return none[model.Task]()
	}
	return Where(tasks, func(t *model.Task) bool {
		return t.ColumnID != nil && *t.ColumnID == columnID
	})
}

func TasksForBoard(tasks []model.Task, boardID uuid.UUID) []model.Task {
	if boardID == uuid.Nil {
		return none[model.Task]()
	}
	return Where(tasks, func(t *model.Task) bool {
		return t.BoardID != nil && *t.BoardID == boardID
	})
}

func BoardsForWorkspace(boards []model.Board, workspaceID uuid.UUID) []model.Board {
	if workspaceID == uuid.Nil {
		return none[model.Board]()
	}
	return Where(boards, func(b *model.Board) bool { return b.WorkspaceID == workspaceID })
}

func ColumnsForBoard(columns []model.Column, boardID uuid.UUID) []model.Column {
	if boardID == uuid.Nil {
		return none[model.Column]()
	}
	return Where(columns, func(c *model.Column) bool { return c.BoardID == boardID })
}

func CommentsForTask(comments []model.TaskComment, taskID uuid.UUID) []model.TaskComment {
	if taskID == uuid.Nil {
		return none[model.TaskComment]()
	}
	return Where(comments, func(c *model.TaskComment) bool { return c.TaskID == taskID })
}

func WorkspacesOfType(workspaces []model.Workspace, typ model.WorkspaceType) []model.Workspace {
	return Where(workspaces, func(w *model.Workspace) bool { return w.Type == typ })
}

func ProjectsOfType(projects []model.Project, typ model.WorkspaceType) []model.Project {
	return Where(projects, func(p *model.Project) bool { return p.Type == typ })
}

func CategoriesOfType(categories []model.Category, typ model.WorkspaceType) []model.Category {
	return Where(categories, func(c *model.Category) bool { return c.WorkspaceType == typ })
}

// Context is the active view of the project/category task list.
type Context struct {
	Type       model.WorkspaceType `json:"type"`
	ProjectID  uuid.UUID           `json:"project_id"`
	CategoryID uuid.UUID           `json:"category_id"`
}

// TasksForContext returns the tasks of the selected project in a team
// context or of the selected category in a personal context.
func TasksForContext(tasks []model.Task, ctx Context) []model.Task {
	switch ctx.Type {
	case model.WorkspaceTeam:
		if ctx.ProjectID == uuid.Nil {
			return none[model.Task]()
		}
		return Where(tasks, func(t *model.Task) bool {
			return t.ProjectID != nil && *t.ProjectID == ctx.ProjectID
		})
	case model.WorkspacePersonal:
		if ctx.CategoryID == uuid.Nil {
			return none[model.Task]()
		}
		return Where(tasks, func(t *model.Task) bool {
			return t.CategoryID != nil && *t.CategoryID == ctx.CategoryID
		})
	}
	return none[model.Task]()
}

// SplitDone partitions tasks into those not yet done and those done.
func SplitDone(tasks []model.Task) (todo, done []model.Task) {
	todo, done = none[model.Task](), none[model.Task]()
	for _, t := range tasks {
		if t.Completed() {
			done = append(done, t)
		} else {
			todo = append(todo, t)
		}
	}
	return todo, done
}
