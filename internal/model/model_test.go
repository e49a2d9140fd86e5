package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"taskflow/internal/model"
)

func TestParentValidate(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name    string
		parent  model.Parent
		wantErr bool
	}{
		{"none", model.Parent{}, false},
		{"board", model.BoardParent(id, uuid.New()), false},
		{"board without column", model.Parent{Kind: model.ParentBoard, BoardID: id}, true},
		{"project", model.ProjectParent(id), false},
		{"category", model.CategoryParent(id), false},
		{"project and category", model.Parent{Kind: model.ParentProject, ProjectID: id, CategoryID: uuid.New()}, true},
		{"none with reference", model.Parent{CategoryID: id}, true},
		{"unknown kind", model.Parent{Kind: "folder"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parent.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidParent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskParentRoundTrip(t *testing.T) {
	var task model.Task
	board, column := uuid.New(), uuid.New()

	task.SetParent(model.BoardParent(board, column))

	assert.Equal(t, model.ParentBoard, task.ParentKind)
	assert.Equal(t, model.BoardParent(board, column), task.Parent())
	assert.Nil(t, task.ProjectID)

	task.SetParent(model.CategoryParent(board))
	assert.Nil(t, task.BoardID)
	assert.Nil(t, task.ColumnID)
	assert.Equal(t, board, *task.CategoryID)
}

func TestTaskJSON_CompletedIsDerived(t *testing.T) {
	task := model.Task{ID: uuid.New(), Title: "A", Status: model.StatusDone}

	raw, err := json.Marshal(task)
	assert.NoError(t, err)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, true, body["completed"])
	assert.Equal(t, "done", body["status"])
}

func TestTaskJSON_LegacyCompletedMapsToStatus(t *testing.T) {
	projectID := uuid.New()
	var task model.Task

	err := json.Unmarshal([]byte(`{"title":"A","completed":true,"project_id":"`+projectID.String()+`"}`), &task)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusDone, task.Status)
	assert.Equal(t, model.ParentProject, task.ParentKind)

	var open model.Task
	assert.NoError(t, json.Unmarshal([]byte(`{"title":"B","completed":false}`), &open))
	assert.Equal(t, model.StatusTodo, open.Status)
	assert.Equal(t, model.ParentNone, open.ParentKind)
}

func TestTaskToggle(t *testing.T) {
	task := model.Task{Status: model.StatusInProgress}

	task.Toggle()
	assert.True(t, task.Completed())
	task.Toggle()
	assert.Equal(t, model.StatusTodo, task.Status)
}

func TestTaskPatch_Apply(t *testing.T) {
	column := uuid.New()
	title := "  "
	desc := ""
	status := model.StatusInProgress
	bad := model.Priority("urgent")
	task := model.Task{Title: "A", Description: "old", Status: model.StatusTodo, Priority: model.PriorityLow}

	model.TaskPatch{Title: &title, Description: &desc, Status: &status, Priority: &bad, ColumnID: &column}.Apply(&task)

	assert.Equal(t, "A", task.Title)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, model.StatusInProgress, task.Status)
	assert.Equal(t, model.PriorityLow, task.Priority)
	assert.Nil(t, task.ColumnID, "column only applies to board tasks")
}

func TestTaskPatch_ChangesStatus(t *testing.T) {
	done := true
	invalid := model.TaskStatus("blocked")

	assert.True(t, model.TaskPatch{Completed: &done}.ChangesStatus())
	assert.False(t, model.TaskPatch{Status: &invalid}.ChangesStatus())
	assert.False(t, model.TaskPatch{}.ChangesStatus())
}

func TestTaskClone_IsDeep(t *testing.T) {
	id := uuid.New()
	task := model.Task{Tags: []string{"a"}, ProjectID: &id}

	c := task.Clone()
	c.Tags[0] = "b"
	*c.ProjectID = uuid.New()

	assert.Equal(t, "a", task.Tags[0])
	assert.Equal(t, id, *task.ProjectID)
}

func TestWorkspaceNormalize(t *testing.T) {
	w := model.Workspace{Type: model.WorkspaceTeam, Visibility: model.VisibilityPrivate}
	w.Normalize()
	assert.Equal(t, model.VisibilityShared, w.Visibility)

	p := model.Workspace{}
	p.Normalize()
	assert.Equal(t, model.WorkspacePersonal, p.Type)
	assert.Equal(t, model.VisibilityPrivate, p.Visibility)
}

func TestProjectPatch_BlankNameIgnored(t *testing.T) {
	blank := " "
	color := "bg-red-500"
	p := model.Project{Name: "Launch", Color: "bg-blue-500"}

	model.ProjectPatch{Name: &blank, Color: &color}.Apply(&p)

	assert.Equal(t, "Launch", p.Name)
	assert.Equal(t, "bg-red-500", p.Color)
}
