package kanban_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/kanban"
	"taskflow/internal/model"
)

var owner = kanban.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}

// frozenClock never advances, so every timestamp ordering comes from the store.
func frozenClock() func() time.Time {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func newStore() *kanban.Store {
	return kanban.New(kanban.WithClock(frozenClock()), kanban.WithUser(owner))
}

// boardFixture creates a workspace and a board with the default columns.
func boardFixture(t *testing.T, s *kanban.Store) (model.Workspace, model.Board, []model.Column) {
	t.Helper()
	w, ok := s.CreateWorkspace(kanban.WorkspaceInput{Name: "Home", Type: model.WorkspacePersonal})
	require.True(t, ok)
	b, ok := s.CreateBoard(kanban.BoardInput{Name: "Chores", WorkspaceID: w.ID})
	require.True(t, ok)
	cols := s.Columns(b.ID)
	require.Len(t, cols, 3)
	return w, b, cols
}

func ptr[T any](v T) *T { return &v }

func TestCreateWorkspace(t *testing.T) {
	// Arrange
	s := newStore()

	// Act
	w, ok := s.CreateWorkspace(kanban.WorkspaceInput{Name: "  Side projects ", Description: "evenings"})

	// Assert
	assert.True(t, ok)
	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.Equal(t, "Side projects", w.Name)
	assert.Equal(t, model.WorkspacePersonal, w.Type)
	assert.Equal(t, model.VisibilityPrivate, w.Visibility)
	assert.Equal(t, owner.ID, w.OwnerID)
	assert.Equal(t, w.CreatedAt, w.UpdatedAt)
	assert.Equal(t, []model.Workspace{w}, s.Workspaces())
}

func TestCreateWorkspace_BlankNameIsNoop(t *testing.T) {
	s := newStore()

	_, ok := s.CreateWorkspace(kanban.WorkspaceInput{Name: " \t "})

	assert.False(t, ok)
	assert.Empty(t, s.Workspaces())
}

func TestTeamWorkspaceIsAlwaysShared(t *testing.T) {
	s := newStore()

	w, ok := s.CreateWorkspace(kanban.WorkspaceInput{Name: "Crew", Type: model.WorkspaceTeam, Visibility: model.VisibilityPrivate})
	require.True(t, ok)
	assert.Equal(t, model.VisibilityShared, w.Visibility)

	w, ok = s.UpdateWorkspace(w.ID, model.WorkspacePatch{Visibility: ptr(model.VisibilityPrivate)})
	require.True(t, ok)
	assert.Equal(t, model.VisibilityShared, w.Visibility)

	personal, _ := s.CreateWorkspace(kanban.WorkspaceInput{Name: "Mine"})
	personal, _ = s.UpdateWorkspace(personal.ID, model.WorkspacePatch{Type: ptr(model.WorkspaceTeam)})
	assert.Equal(t, model.VisibilityShared, personal.Visibility)
}

func TestUpdateWorkspace_PartialAndTimestamps(t *testing.T) {
	// Arrange
	s := newStore()
	w, _ := s.CreateWorkspace(kanban.WorkspaceInput{Name: "Home", Description: "house", Color: "bg-blue-500"})

	// Act
	updated, ok := s.UpdateWorkspace(w.ID, model.WorkspacePatch{Description: ptr("flat"), Name: ptr("  ")})

	// Assert
	assert.True(t, ok)
	assert.Equal(t, "Home", updated.Name)
	assert.Equal(t, "flat", updated.Description)
	assert.Equal(t, "bg-blue-500", updated.Color)
	assert.Equal(t, w.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(w.UpdatedAt))

	again, _ := s.UpdateWorkspace(w.ID, model.WorkspacePatch{Icon: ptr("Home")})
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))
}

func TestUnknownIDsAreNoops(t *testing.T) {
	s := newStore()
	_, b, cols := boardFixture(t, s)
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[0].ID})
	missing := uuid.New()

	_, ok := s.UpdateWorkspace(missing, model.WorkspacePatch{Name: ptr("x")})
	assert.False(t, ok)
	assert.False(t, s.DeleteWorkspace(missing))
	_, ok = s.UpdateBoard(missing, model.BoardPatch{Name: ptr("x")})
	assert.False(t, ok)
	assert.False(t, s.DeleteBoard(missing))
	_, ok = s.UpdateColumn(missing, model.ColumnPatch{Name: ptr("x")})
	assert.False(t, ok)
	assert.False(t, s.DeleteColumn(missing))
	_, ok = s.UpdateTask(missing, model.TaskPatch{Title: ptr("x")})
	assert.False(t, ok)
	assert.False(t, s.DeleteTask(missing))
	assert.False(t, s.SelectWorkspace(missing))
	assert.False(t, s.OpenBoard(missing))

	assert.Len(t, s.Workspaces(), 1)
	assert.Len(t, s.Columns(b.ID), 3)
	assert.Equal(t, []model.Task{task}, s.Tasks(b.ID))
}

func TestCreateTeam_CreatorIsOwner(t *testing.T) {
	// Arrange
	s := newStore()
	bo := model.TeamMember{UserID: uuid.New(), UserName: "Bo", Role: model.RoleOwner}

	// Act
	team, ok := s.CreateTeam(kanban.TeamInput{
		Name: "Crew",
		Members: []model.TeamMember{
			{UserID: owner.ID, UserName: "Ana again", Role: model.RoleMember},
			bo,
		},
	})

	// Assert
	require.True(t, ok)
	require.Len(t, team.Members, 2)
	first, _ := team.Owner()
	assert.Equal(t, owner.ID, first.UserID)
	assert.Equal(t, model.RoleOwner, first.Role)
	assert.Equal(t, bo.UserID, team.Members[1].UserID)
	assert.Equal(t, model.RoleMember, team.Members[1].Role)
	assert.Len(t, s.Teams(), 1)
}

func TestCreateBoard_DefaultColumns(t *testing.T) {
	s := newStore()
	w, b, cols := boardFixture(t, s)

	assert.Equal(t, w.ID, b.WorkspaceID)
	assert.Equal(t, 0, b.Position)
	names := []string{cols[0].Name, cols[1].Name, cols[2].Name}
	assert.Equal(t, []string{"To Do", "In Progress", "Done"}, names)
	assert.Equal(t, model.StatusDone, *cols[2].Status)

	second, ok := s.CreateBoard(kanban.BoardInput{Name: "Garden", WorkspaceID: w.ID})
	require.True(t, ok)
	assert.Equal(t, 1, second.Position)
}

func TestCreateBoard_UnknownWorkspace(t *testing.T) {
	s := newStore()

	_, ok := s.CreateBoard(kanban.BoardInput{Name: "Orphan", WorkspaceID: uuid.New()})

	assert.False(t, ok)
}

func TestDeleteBoard_CascadesOnlyToItsOwn(t *testing.T) {
	// Arrange
	s := newStore()
	w, doomed, doomedCols := boardFixture(t, s)
	kept, _ := s.CreateBoard(kanban.BoardInput{Name: "Kept", WorkspaceID: w.ID})
	keptCols := s.Columns(kept.ID)

	gone, _ := s.CreateTask(kanban.TaskInput{Title: "gone", BoardID: doomed.ID, ColumnID: doomedCols[0].ID})
	stay, _ := s.CreateTask(kanban.TaskInput{Title: "stay", BoardID: kept.ID, ColumnID: keptCols[0].ID})
	s.AddComment(gone.ID, "bye")
	s.AddComment(stay.ID, "hi")
	require.True(t, s.OpenBoard(doomed.ID))

	// Act
	ok := s.DeleteBoard(doomed.ID)

	// Assert
	assert.True(t, ok)
	assert.Equal(t, []model.Board{kept}, s.BoardsIn(w.ID))
	assert.Empty(t, s.Columns(doomed.ID))
	assert.Empty(t, s.Tasks(doomed.ID))
	assert.Empty(t, s.Comments(gone.ID))
	assert.Len(t, s.Columns(kept.ID), 3)
	assert.Len(t, s.Tasks(kept.ID), 1)
	assert.Len(t, s.Comments(stay.ID), 1)
	_, open := s.CurrentBoard()
	assert.False(t, open)
}

func TestDeleteWorkspace_Cascades(t *testing.T) {
	s := newStore()
	w, b, cols := boardFixture(t, s)
	other, _ := s.CreateWorkspace(kanban.WorkspaceInput{Name: "Work"})
	otherBoard, _ := s.CreateBoard(kanban.BoardInput{Name: "Sprint", WorkspaceID: other.ID})
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[0].ID})
	require.True(t, s.SelectWorkspace(w.ID))

	assert.True(t, s.DeleteWorkspace(w.ID))

	assert.Equal(t, []model.Workspace{other}, s.Workspaces())
	assert.Empty(t, s.BoardsIn(w.ID))
	assert.Empty(t, s.Columns(b.ID))
	_, found := s.Task(task.ID)
	assert.False(t, found)
	assert.Equal(t, []model.Board{otherBoard}, s.BoardsIn(other.ID))
	_, current := s.CurrentWorkspace()
	assert.False(t, current)
}

func TestSelection(t *testing.T) {
	s := newStore()
	w, b, _ := boardFixture(t, s)
	other, _ := s.CreateWorkspace(kanban.WorkspaceInput{Name: "Work"})

	require.True(t, s.OpenBoard(b.ID))
	cw, _ := s.CurrentWorkspace()
	assert.Equal(t, w.ID, cw.ID)
	assert.Equal(t, []model.Board{b}, s.Boards())

	require.True(t, s.SelectWorkspace(other.ID))
	_, open := s.CurrentBoard()
	assert.False(t, open)
	assert.Empty(t, s.Boards())

	require.True(t, s.OpenBoard(b.ID))
	s.CloseBoard()
	_, open = s.CurrentBoard()
	assert.False(t, open)
}

func TestTaskLifecycleScenario(t *testing.T) {
	// Arrange
	s := newStore()
	_, b, cols := boardFixture(t, s)
	todo, done := cols[0], cols[2]

	// Act: create
	task, ok := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: todo.ID})

	// Assert
	require.True(t, ok)
	assert.Equal(t, model.ParentBoard, task.ParentKind)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.Len(t, s.TasksInColumn(todo.ID), 1)
	assert.Empty(t, s.TasksInColumn(cols[1].ID))
	assert.Empty(t, s.TasksInColumn(done.ID))
	assert.Equal(t, kanban.Counts{Todo: 1, Done: 0}, s.Counts(b.ID))

	// Act: mark done
	task, ok = s.SetStatus(task.ID, model.StatusDone)

	// Assert
	require.True(t, ok)
	assert.Equal(t, done.ID, *task.ColumnID)
	assert.Equal(t, kanban.Counts{Todo: 0, Done: 1}, s.Counts(b.ID))

	// Act: delete
	assert.True(t, s.DeleteTask(task.ID))

	// Assert
	assert.Equal(t, kanban.Counts{}, s.Counts(b.ID))
}

func TestCreateTask_Validation(t *testing.T) {
	s := newStore()
	w, b, cols := boardFixture(t, s)
	other, _ := s.CreateBoard(kanban.BoardInput{Name: "Other", WorkspaceID: w.ID})

	_, ok := s.CreateTask(kanban.TaskInput{Title: "  ", BoardID: b.ID, ColumnID: cols[0].ID})
	assert.False(t, ok)
	_, ok = s.CreateTask(kanban.TaskInput{Title: "wrong board", BoardID: other.ID, ColumnID: cols[0].ID})
	assert.False(t, ok)
	assert.Empty(t, s.Tasks(b.ID))
	assert.Empty(t, s.Tasks(other.ID))
}

func TestMoveTask_TakesColumnStatus(t *testing.T) {
	s := newStore()
	_, b, cols := boardFixture(t, s)
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[0].ID})

	moved, ok := s.MoveTask(task.ID, cols[1].ID)

	require.True(t, ok)
	assert.Equal(t, cols[1].ID, *moved.ColumnID)
	assert.Equal(t, model.StatusInProgress, moved.Status)
	assert.True(t, moved.UpdatedAt.After(task.UpdatedAt))
}

func TestMoveTask_ForeignColumnRefused(t *testing.T) {
	s := newStore()
	w, b, cols := boardFixture(t, s)
	other, _ := s.CreateBoard(kanban.BoardInput{Name: "Other", WorkspaceID: w.ID})
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[0].ID})

	moved, _ := s.MoveTask(task.ID, s.Columns(other.ID)[2].ID)

	assert.Equal(t, cols[0].ID, *moved.ColumnID)
	assert.Equal(t, model.StatusTodo, moved.Status)
}

func TestStatusChange_WithoutMatchingColumn(t *testing.T) {
	// Arrange: a board whose only lanes are an unbound one and a todo lane
	s := newStore()
	_, b, cols := boardFixture(t, s)
	free, _ := s.CreateColumn(kanban.ColumnInput{BoardID: b.ID, Name: "Backlog"})
	require.True(t, s.DeleteColumn(cols[1].ID))
	require.True(t, s.DeleteColumn(cols[2].ID))
	bound, _ := s.CreateTask(kanban.TaskInput{Title: "bound", BoardID: b.ID, ColumnID: cols[0].ID})
	loose, _ := s.CreateTask(kanban.TaskInput{Title: "loose", BoardID: b.ID, ColumnID: free.ID})

	// Act
	bound, _ = s.SetStatus(bound.ID, model.StatusDone)
	loose, _ = s.SetStatus(loose.ID, model.StatusDone)

	// Assert
	assert.Equal(t, model.StatusTodo, bound.Status)
	assert.Equal(t, cols[0].ID, *bound.ColumnID)
	assert.Equal(t, model.StatusDone, loose.Status)
	assert.Equal(t, free.ID, *loose.ColumnID)
}

func TestColumnStatusInvariant(t *testing.T) {
	s := newStore()
	_, b, cols := boardFixture(t, s)
	for _, title := range []string{"a", "b", "c"} {
		s.CreateTask(kanban.TaskInput{Title: title, BoardID: b.ID, ColumnID: cols[0].ID})
	}
	tasks := s.Tasks(b.ID)
	s.SetStatus(tasks[0].ID, model.StatusInProgress)
	s.UpdateTask(tasks[1].ID, model.TaskPatch{Completed: ptr(true)})
	s.UpdateColumn(cols[0].ID, model.ColumnPatch{Status: ptr(model.StatusInProgress)})

	for _, c := range s.Columns(b.ID) {
		for _, task := range s.TasksInColumn(c.ID) {
			if c.Status != nil {
				assert.Equal(t, *c.Status, task.Status, "task %q in column %q", task.Title, c.Name)
			}
		}
	}
	assert.Equal(t, kanban.Counts{Todo: 2, Done: 1}, s.Counts(b.ID))
}

func TestDeleteColumn_MovesTasks(t *testing.T) {
	s := newStore()
	_, b, cols := boardFixture(t, s)
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[1].ID})

	require.True(t, s.DeleteColumn(cols[1].ID))

	moved, found := s.Task(task.ID)
	require.True(t, found)
	assert.Equal(t, cols[0].ID, *moved.ColumnID)
	assert.Equal(t, model.StatusTodo, moved.Status)
}

func TestDeleteColumn_LastColumnDropsTasks(t *testing.T) {
	s := newStore()
	_, b, cols := boardFixture(t, s)
	s.DeleteColumn(cols[0].ID)
	s.DeleteColumn(cols[1].ID)
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[2].ID})
	s.AddComment(task.ID, "note")

	require.True(t, s.DeleteColumn(cols[2].ID))

	assert.Empty(t, s.Tasks(b.ID))
	assert.Empty(t, s.Comments(task.ID))
}

func TestCreateColumn_Position(t *testing.T) {
	s := newStore()
	_, b, _ := boardFixture(t, s)

	c, ok := s.CreateColumn(kanban.ColumnInput{BoardID: b.ID, Name: "Review", Status: ptr(model.StatusInProgress)})

	require.True(t, ok)
	assert.Equal(t, 3, c.Position)
	_, ok = s.CreateColumn(kanban.ColumnInput{BoardID: b.ID, Name: ""})
	assert.False(t, ok)
	assert.Len(t, s.Columns(b.ID), 4)
}

func TestUpdateTask_Partial(t *testing.T) {
	s := newStore()
	_, b, cols := boardFixture(t, s)
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", Description: "first", BoardID: b.ID, ColumnID: cols[0].ID, Tags: []string{"x"}})

	updated, ok := s.UpdateTask(task.ID, model.TaskPatch{Priority: ptr(model.PriorityHigh), Title: ptr("")})

	require.True(t, ok)
	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "first", updated.Description)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Equal(t, []string{"x"}, updated.Tags)
	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))
}

func TestChatAndComments(t *testing.T) {
	s := newStore()
	_, b, cols := boardFixture(t, s)
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[0].ID})

	msg, ok := s.PostMessage("  hello ")
	require.True(t, ok)
	assert.Equal(t, "hello", msg.Message)
	assert.Equal(t, owner.Name, msg.UserName)
	_, ok = s.PostMessage("   ")
	assert.False(t, ok)
	assert.Len(t, s.Messages(), 1)

	_, ok = s.AddComment(uuid.New(), "lost")
	assert.False(t, ok)
	c, ok := s.AddComment(task.ID, "first")
	require.True(t, ok)
	assert.Equal(t, []model.TaskComment{c}, s.Comments(task.ID))

	s.DeleteTask(task.ID)
	assert.Empty(t, s.Comments(task.ID))
}

func TestReturnedTasksAreCopies(t *testing.T) {
	s := newStore()
	_, b, cols := boardFixture(t, s)
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[0].ID, Tags: []string{"x"}})

	task.Tags[0] = "mutated"

	stored, _ := s.Task(task.ID)
	assert.Equal(t, []string{"x"}, stored.Tags)
}

func TestReturnedColumnsAreCopies(t *testing.T) {
	// Arrange
	s := newStore()
	_, b, _ := boardFixture(t, s)
	cols := s.Columns(b.ID)
	task, _ := s.CreateTask(kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[0].ID})

	// Act
	*cols[0].Status = model.StatusDone
	created, _ := s.CreateColumn(kanban.ColumnInput{BoardID: b.ID, Name: "Review", Status: ptr(model.StatusInProgress)})
	*created.Status = model.StatusDone
	updated, _ := s.UpdateColumn(cols[1].ID, model.ColumnPatch{Name: ptr("Doing")})
	*updated.Status = model.StatusDone

	// Assert
	stored := s.Columns(b.ID)
	assert.Equal(t, model.StatusTodo, *stored[0].Status)
	assert.Equal(t, model.StatusInProgress, *stored[1].Status)
	assert.Equal(t, model.StatusInProgress, *stored[3].Status)
	got, _ := s.Task(task.ID)
	assert.Equal(t, *stored[0].Status, got.Status)
}

func TestReturnedWorkspacesAndTeamsAreCopies(t *testing.T) {
	// Arrange
	s := newStore()
	teamID := uuid.New()
	origTeam := teamID
	peer := uuid.New()
	shared := []uuid.UUID{peer}
	w, _ := s.CreateWorkspace(kanban.WorkspaceInput{Name: "Crew", Type: model.WorkspaceTeam, SharedWith: shared, TeamID: &teamID})
	s.SelectWorkspace(w.ID)
	s.CreateTeam(kanban.TeamInput{Name: "Crew"})

	// Act
	shared[0] = uuid.New()
	teamID = uuid.New()
	w.SharedWith[0] = uuid.New()
	*w.TeamID = uuid.New()
	listed := s.Workspaces()
	listed[0].SharedWith[0] = uuid.New()
	current, _ := s.CurrentWorkspace()
	*current.TeamID = uuid.New()
	teams := s.Teams()
	teams[0].Members[0].Role = model.RoleMember

	// Assert
	stored, ok := s.Workspace(w.ID)
	require.True(t, ok)
	assert.Equal(t, []uuid.UUID{peer}, stored.SharedWith)
	require.NotNil(t, stored.TeamID)
	assert.Equal(t, origTeam, *stored.TeamID)
	assert.Equal(t, []uuid.UUID{peer}, s.WorkspacesOfType(model.WorkspaceTeam)[0].SharedWith)
	first, _ := s.Teams()[0].Owner()
	assert.Equal(t, model.RoleOwner, first.Role)
}

func TestUpdateWorkspace_SharedWithIsCopied(t *testing.T) {
	s := newStore()
	w, _ := s.CreateWorkspace(kanban.WorkspaceInput{Name: "Home"})
	peer := uuid.New()
	patch := []uuid.UUID{peer}

	s.UpdateWorkspace(w.ID, model.WorkspacePatch{SharedWith: patch})
	patch[0] = uuid.New()

	stored, _ := s.Workspace(w.ID)
	assert.Equal(t, []uuid.UUID{peer}, stored.SharedWith)
}

func TestCreateTask_CopiesAssigneeAndDueDate(t *testing.T) {
	s := newStore()
	_, b, cols := boardFixture(t, s)
	assignee := uuid.New()
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	in := kanban.TaskInput{Title: "A", BoardID: b.ID, ColumnID: cols[0].ID, AssigneeID: &assignee, DueDate: &due}

	task, _ := s.CreateTask(in)
	*in.AssigneeID = uuid.New()
	*in.DueDate = due.Add(24 * time.Hour)

	stored, _ := s.Task(task.ID)
	require.NotNil(t, stored.AssigneeID)
	require.NotNil(t, stored.DueDate)
	assert.NotEqual(t, assignee, *stored.AssigneeID)
	assert.Equal(t, *task.AssigneeID, *stored.AssigneeID)
	assert.True(t, stored.DueDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestUpdateBoard_PartialAndTimestamps(t *testing.T) {
	// Arrange
	s := newStore()
	_, b, _ := boardFixture(t, s)

	// Act
	updated, ok := s.UpdateBoard(b.ID, model.BoardPatch{Name: ptr(" Errands "), Position: ptr(7), Icon: ptr("")})

	// Assert
	require.True(t, ok)
	assert.Equal(t, "Errands", updated.Name)
	assert.Equal(t, 7, updated.Position)
	assert.Equal(t, b.Description, updated.Description)
	assert.Equal(t, b.WorkspaceID, updated.WorkspaceID)
	assert.Equal(t, b.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(b.UpdatedAt))
	stored, _ := s.Board(b.ID)
	assert.Equal(t, updated, stored)
}

func TestUpdateColumn_PartialAndTimestamps(t *testing.T) {
	// Arrange
	s := newStore()
	_, b, cols := boardFixture(t, s)

	// Act
	updated, ok := s.UpdateColumn(cols[0].ID, model.ColumnPatch{Name: ptr("Backlog"), Position: ptr(5), Color: ptr("bg-red-500")})

	// Assert
	require.True(t, ok)
	assert.Equal(t, "Backlog", updated.Name)
	assert.Equal(t, 5, updated.Position)
	assert.Equal(t, "bg-red-500", updated.Color)
	require.NotNil(t, updated.Status)
	assert.Equal(t, model.StatusTodo, *updated.Status)
	assert.Equal(t, cols[0].CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(cols[0].UpdatedAt))
	stored := s.Columns(b.ID)
	assert.Equal(t, updated, stored[0])
	assert.Equal(t, cols[1:], stored[1:])
}

func TestConcurrentCreates(t *testing.T) {
	s := kanban.New()
	_, b, cols := boardFixture(t, s)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.CreateTask(kanban.TaskInput{Title: "t", BoardID: b.ID, ColumnID: cols[0].ID})
		}()
	}
	wg.Wait()

	assert.Len(t, s.Tasks(b.ID), 50)
}
