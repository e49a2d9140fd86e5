package kanban

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow/internal/filter"
	"taskflow/internal/model"
)

type BoardInput struct {
	Name        string
	Description string
	WorkspaceID uuid.UUID
	Color       string
	Icon        string
	Position    *int
}

// CreateBoard adds a board to an existing workspace together with the
// default To Do, In Progress and Done columns.
func (s *Store) CreateBoard(in BoardInput) (model.Board, bool) {
	if model.Blank(in.Name) {
		return model.Board{}, s.ignored("create board: empty name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.workspaceIndex(in.WorkspaceID) < 0 {
		return model.Board{}, s.ignored("create board: unknown workspace", zap.Stringer("workspace_id", in.WorkspaceID))
	}

	position := len(filter.BoardsForWorkspace(s.boards, in.WorkspaceID))
	if in.Position != nil {
		position = *in.Position
	}

	now := s.fresh()
	b := model.Board{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		WorkspaceID: in.WorkspaceID,
		Color:       in.Color,
		Icon:        in.Icon,
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.boards = append(s.boards, b)

	for i, def := range model.DefaultColumns {
		status := def.Status
		s.columns = append(s.columns, model.Column{
			ID:        uuid.New(),
			BoardID:   b.ID,
			Name:      def.Name,
			Position:  i,
			Color:     def.Color,
			Status:    &status,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return b, true
}

func (s *Store) UpdateBoard(id uuid.UUID, patch model.BoardPatch) (model.Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.boardIndex(id)
	if i < 0 {
		return model.Board{}, s.ignored("update board", zap.Stringer("id", id))
	}
	b := &s.boards[i]
	patch.Apply(b)
	b.UpdatedAt = s.stamp(b.UpdatedAt)
	return *b, true
}

// DeleteBoard removes the board with its columns, its tasks and the
// comments on those tasks.
func (s *Store) DeleteBoard(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.boardIndex(id) < 0 {
		return s.ignored("delete board", zap.Stringer("id", id))
	}
	s.deleteBoard(id)
	return true
}

func (s *Store) deleteBoard(id uuid.UUID) {
	gone := make(map[uuid.UUID]struct{})
	for _, t := range filter.TasksForBoard(s.tasks, id) {
		gone[t.ID] = struct{}{}
	}
	s.comments = removeWhere(s.comments, func(c *model.TaskComment) bool {
		_, ok := gone[c.TaskID]
		return ok
	})
	s.tasks = removeWhere(s.tasks, func(t *model.Task) bool {
		return t.BoardID != nil && *t.BoardID == id
	})
	s.columns = removeWhere(s.columns, func(c *model.Column) bool { return c.BoardID == id })
	s.boards = removeWhere(s.boards, func(b *model.Board) bool { return b.ID == id })
	if s.currentBoard == id {
		s.currentBoard = uuid.Nil
	}
}

// OpenBoard makes the board current. Its workspace becomes current too.
func (s *Store) OpenBoard(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.boardIndex(id)
	if i < 0 {
		return s.ignored("open board", zap.Stringer("id", id))
	}
	s.currentWorkspace = s.boards[i].WorkspaceID
	s.currentBoard = id
	return true
}

func (s *Store) CloseBoard() {
	s.mu.Lock()
	s.currentBoard = uuid.Nil
	s.mu.Unlock()
}

func (s *Store) CurrentBoard() (model.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.boardIndex(s.currentBoard)
	if i < 0 {
		return model.Board{}, false
	}
	return s.boards[i], true
}

func (s *Store) Board(id uuid.UUID) (model.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.boardIndex(id)
	if i < 0 {
		return model.Board{}, false
	}
	return s.boards[i], true
}

// Boards returns the boards of the current workspace.
func (s *Store) Boards() []model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.BoardsForWorkspace(s.boards, s.currentWorkspace)
}

func (s *Store) BoardsIn(workspaceID uuid.UUID) []model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.BoardsForWorkspace(s.boards, workspaceID)
}

type ColumnInput struct {
	BoardID uuid.UUID
	Name    string
	Color   string
	Status  *model.TaskStatus
}

func (s *Store) CreateColumn(in ColumnInput) (model.Column, bool) {
	if model.Blank(in.Name) {
		return model.Column{}, s.ignored("create column: empty name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.boardIndex(in.BoardID) < 0 {
		return model.Column{}, s.ignored("create column: unknown board", zap.Stringer("board_id", in.BoardID))
	}

	now := s.fresh()
	c := model.Column{
		ID:        uuid.New(),
		BoardID:   in.BoardID,
		Name:      strings.TrimSpace(in.Name),
		Position:  len(filter.ColumnsForBoard(s.columns, in.BoardID)),
		Color:     in.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Status != nil && in.Status.Valid() {
		st := *in.Status
		c.Status = &st
	}
	s.columns = append(s.columns, c)
	return c.Clone(), true
}

// UpdateColumn applies the patch. Rebinding the column to another status
// moves the status of every task in it along.
func (s *Store) UpdateColumn(id uuid.UUID, patch model.ColumnPatch) (model.Column, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.columnIndex(id)
	if i < 0 {
		return model.Column{}, s.ignored("update column", zap.Stringer("id", id))
	}
	c := &s.columns[i]
	patch.Apply(c)
	c.UpdatedAt = s.stamp(c.UpdatedAt)

	if c.Status != nil {
		for j := range s.tasks {
			t := &s.tasks[j]
			if t.ColumnID != nil && *t.ColumnID == id && t.Status != *c.Status {
				t.Status = *c.Status
				t.UpdatedAt = s.stamp(t.UpdatedAt)
			}
		}
	}
	return c.Clone(), true
}

// DeleteColumn removes the column. Its tasks move to the first remaining
// column of the board, or are deleted when the board has no other column.
func (s *Store) DeleteColumn(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.columnIndex(id)
	if i < 0 {
		return s.ignored("delete column", zap.Stringer("id", id))
	}
	boardID := s.columns[i].BoardID
	s.columns = removeWhere(s.columns, func(c *model.Column) bool { return c.ID == id })

	target := s.firstColumn(boardID, nil)
	if target == nil {
		gone := make(map[uuid.UUID]struct{})
		for _, t := range filter.TasksForColumn(s.tasks, id) {
			gone[t.ID] = struct{}{}
		}
		s.comments = removeWhere(s.comments, func(c *model.TaskComment) bool {
			_, ok := gone[c.TaskID]
			return ok
		})
		s.tasks = removeWhere(s.tasks, func(t *model.Task) bool {
			_, ok := gone[t.ID]
			return ok
		})
		return true
	}
	for j := range s.tasks {
		t := &s.tasks[j]
		if t.ColumnID != nil && *t.ColumnID == id {
			s.place(t, target)
			t.UpdatedAt = s.stamp(t.UpdatedAt)
		}
	}
	return true
}

// Columns returns the columns of a board in insertion order.
func (s *Store) Columns(boardID uuid.UUID) []model.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(filter.ColumnsForBoard(s.columns, boardID))
}

// firstColumn returns the board column with the lowest position, limited to
// columns bound to status when status is not nil.
func (s *Store) firstColumn(boardID uuid.UUID, status *model.TaskStatus) *model.Column {
	var best *model.Column
	for i := range s.columns {
		c := &s.columns[i]
		if c.BoardID != boardID {
			continue
		}
		if status != nil && (c.Status == nil || *c.Status != *status) {
			continue
		}
		if best == nil || c.Position < best.Position {
			best = c
		}
	}
	return best
}
