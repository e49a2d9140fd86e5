package kanban

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow/internal/filter"
	"taskflow/internal/model"
)

type TaskInput struct {
	Title       string
	Description string
	BoardID     uuid.UUID
	ColumnID    uuid.UUID
	Priority    model.Priority
	Tags        []string
	AssigneeID  *uuid.UUID
	DueDate     *time.Time
}

// Counts splits the tasks of a board by the single notion of done.
type Counts struct {
	Todo int `json:"todo"`
	Done int `json:"done"`
}

// CreateTask appends a task to the end of a column. The column must belong
// to the given board. A column bound to a status gives the task that status.
func (s *Store) CreateTask(in TaskInput) (model.Task, bool) {
	if model.Blank(in.Title) {
		return model.Task{}, s.ignored("create task: empty title")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.columnIndex(in.ColumnID)
	if ci < 0 || s.columns[ci].BoardID != in.BoardID {
		return model.Task{}, s.ignored("create task: unknown column",
			zap.Stringer("board_id", in.BoardID), zap.Stringer("column_id", in.ColumnID))
	}

	priority := in.Priority
	if !priority.Valid() {
		priority = model.PriorityMedium
	}

	now := s.fresh()
	t := model.Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Status:      model.StatusTodo,
		Priority:    priority,
		Tags:        append(make([]string, 0, len(in.Tags)), in.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	model.TaskPatch{AssigneeID: in.AssigneeID, DueDate: in.DueDate}.Apply(&t)
	t.SetParent(model.BoardParent(in.BoardID, in.ColumnID))
	s.place(&t, &s.columns[ci])
	s.tasks = append(s.tasks, t)
	return t.Clone(), true
}

// UpdateTask merges the patch into the task and keeps column and status in
// step: a column change takes the column's status, and a status change
// moves the task to the first column bound to that status. A status that
// no column carries is refused while the task sits in a bound column.
func (s *Store) UpdateTask(id uuid.UUID, patch model.TaskPatch) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return model.Task{}, s.ignored("update task", zap.Stringer("id", id))
	}
	t := &s.tasks[i]
	prevColumn, prevStatus := t.ColumnID, t.Status
	patch.Apply(t)

	if t.ParentKind == model.ParentBoard {
		switch {
		case patch.ColumnID != nil:
			col := s.boardColumn(*t.BoardID, *patch.ColumnID)
			if col == nil {
				t.ColumnID, t.Status = prevColumn, prevStatus
				break
			}
			if prevColumn == nil || *prevColumn != col.ID {
				t.Position = s.nextPosition(col.ID, t.ID)
			}
			s.place(t, col)
		case patch.ChangesStatus() && t.Status != prevStatus:
			if col := s.firstColumn(*t.BoardID, &t.Status); col != nil {
				t.Position = s.nextPosition(col.ID, t.ID)
				s.place(t, col)
			} else if cur := s.boardColumn(*t.BoardID, *t.ColumnID); cur != nil && cur.Status != nil {
				t.Status = prevStatus
			}
		}
	}

	t.UpdatedAt = s.stamp(t.UpdatedAt)
	return t.Clone(), true
}

// MoveTask puts the task at the end of another column on the same board.
func (s *Store) MoveTask(id, columnID uuid.UUID) (model.Task, bool) {
	return s.UpdateTask(id, model.TaskPatch{ColumnID: &columnID})
}

// SetStatus changes the status of a task, relocating it as UpdateTask does.
func (s *Store) SetStatus(id uuid.UUID, status model.TaskStatus) (model.Task, bool) {
	return s.UpdateTask(id, model.TaskPatch{Status: &status})
}

func (s *Store) DeleteTask(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taskIndex(id) < 0 {
		return s.ignored("delete task", zap.Stringer("id", id))
	}
	s.tasks = removeWhere(s.tasks, func(t *model.Task) bool { return t.ID == id })
	s.comments = removeWhere(s.comments, func(c *model.TaskComment) bool { return c.TaskID == id })
	return true
}

func (s *Store) Task(id uuid.UUID) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.taskIndex(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Tasks returns the tasks of a board in insertion order.
func (s *Store) Tasks(boardID uuid.UUID) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(filter.TasksForBoard(s.tasks, boardID))
}

func (s *Store) TasksInColumn(columnID uuid.UUID) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(filter.TasksForColumn(s.tasks, columnID))
}

func (s *Store) Counts(boardID uuid.UUID) Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, done := filter.SplitDone(filter.TasksForBoard(s.tasks, boardID))
	return Counts{Todo: len(todo), Done: len(done)}
}

// place puts t into col and takes over the column's status.
func (s *Store) place(t *model.Task, col *model.Column) {
	id := col.ID
	t.ColumnID = &id
	if col.Status != nil {
		t.Status = *col.Status
	}
}

func (s *Store) boardColumn(boardID, columnID uuid.UUID) *model.Column {
	i := s.columnIndex(columnID)
	if i < 0 || s.columns[i].BoardID != boardID {
		return nil
	}
	return &s.columns[i]
}

func (s *Store) nextPosition(columnID, except uuid.UUID) int {
	n := 0
	for _, t := range filter.TasksForColumn(s.tasks, columnID) {
		if t.ID != except {
			n++
		}
	}
	return n
}
