package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"taskflow/internal/cli"
	"taskflow/internal/model"
	"taskflow/internal/tracker"
)

func run(t *testing.T, backend tracker.Backend, args ...string) (string, error) {
	t.Helper()
	app := &cli.App{
		NewBackend: func(*cli.App, *zap.Logger) tracker.Backend { return backend },
	}
	cmd := cli.NewRootCmd(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var env struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	return env.Data
}

func TestTasksAddAndList(t *testing.T) {
	// Arrange
	ctx := context.Background()
	backend := tracker.NewMemoryBackend()
	cat, err := backend.CreateCategory(ctx, model.CategoryCreate{Name: "Work", WorkspaceType: model.WorkspacePersonal})
	require.NoError(t, err)

	// Act
	out, err := run(t, backend, "tasks", "add", "  Buy milk  ", "-d", "2 liters")
	require.NoError(t, err)
	created := decode[model.Task](t, out)

	out, err = run(t, backend, "tasks", "list")
	require.NoError(t, err)
	listed := decode[struct {
		Todo      []model.Task `json:"todo"`
		Completed []model.Task `json:"completed"`
	}](t, out)

	// Assert
	assert.Equal(t, "Buy milk", created.Title)
	require.NotNil(t, created.CategoryID)
	assert.Equal(t, cat.ID, *created.CategoryID)
	require.Len(t, listed.Todo, 1)
	assert.Equal(t, created.ID, listed.Todo[0].ID)
	assert.Empty(t, listed.Completed)
}

func TestTasksToggleMovesToCompleted(t *testing.T) {
	ctx := context.Background()
	backend := tracker.NewMemoryBackend()
	cat, _ := backend.CreateCategory(ctx, model.CategoryCreate{Name: "Home", WorkspaceType: model.WorkspacePersonal})
	task, _ := backend.CreateTask(ctx, model.TaskCreate{Title: "Vacuum", CategoryID: &cat.ID})

	out, err := run(t, backend, "tasks", "toggle", task.ID.String())
	require.NoError(t, err)
	toggled := decode[model.Task](t, out)
	assert.True(t, toggled.Completed())

	out, err = run(t, backend, "tasks", "list", "--category", cat.ID.String())
	require.NoError(t, err)
	listed := decode[struct {
		Todo      []model.Task `json:"todo"`
		Completed []model.Task `json:"completed"`
	}](t, out)
	assert.Empty(t, listed.Todo)
	assert.Len(t, listed.Completed, 1)
}

func TestTasksAddBlankTitleFails(t *testing.T) {
	backend := tracker.NewMemoryBackend()

	_, err := run(t, backend, "tasks", "add", "   ")

	assert.EqualError(t, err, "title must not be empty")
	tasks, _ := backend.ListTasks(context.Background())
	assert.Empty(t, tasks)
}

func TestTasksRemoveUnknownReportsDeleteFailure(t *testing.T) {
	backend := tracker.NewMemoryBackend()

	_, err := run(t, backend, "tasks", "rm", "5f0c2a4e-8d1b-4c3e-9a77-0b6f3d2e1c11")

	assert.EqualError(t, err, tracker.MsgDeleteTaskFailed)
}

func TestTasksInvalidID(t *testing.T) {
	_, err := run(t, tracker.NewMemoryBackend(), "tasks", "toggle", "not-a-uuid")

	assert.EqualError(t, err, `invalid task id "not-a-uuid"`)
}

func TestTasksListInvalidContext(t *testing.T) {
	_, err := run(t, tracker.NewMemoryBackend(), "tasks", "list", "--context", "family")

	assert.EqualError(t, err, `invalid context "family"`)
}

func TestProjectsAddDefaultsToTeam(t *testing.T) {
	backend := tracker.NewMemoryBackend()

	out, err := run(t, backend, "projects", "add", "Launch")
	require.NoError(t, err)
	p := decode[model.Project](t, out)

	assert.Equal(t, model.WorkspaceTeam, p.Type)
	assert.Equal(t, "Users", p.Icon)
	assert.NotEmpty(t, p.Color)
}

func TestCategoriesRemoveDropsTasks(t *testing.T) {
	ctx := context.Background()
	backend := tracker.NewMemoryBackend()
	cat, _ := backend.CreateCategory(ctx, model.CategoryCreate{Name: "Other", WorkspaceType: model.WorkspacePersonal})
	_, _ = backend.CreateTask(ctx, model.TaskCreate{Title: "Call mom", CategoryID: &cat.ID})

	_, err := run(t, backend, "categories", "rm", cat.ID.String())
	require.NoError(t, err)

	tasks, _ := backend.ListTasks(ctx)
	assert.Empty(t, tasks)
	cats, _ := backend.ListCategories(ctx)
	assert.Empty(t, cats)
}

func TestStatsNeedsServer(t *testing.T) {
	_, err := run(t, tracker.NewMemoryBackend(), "stats")

	assert.EqualError(t, err, "command needs a TaskFlow server")
}

func TestOneLoggerPerCommand(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(core)
	var handed []*zap.Logger
	app := &cli.App{
		Log: log,
		NewBackend: func(_ *cli.App, l *zap.Logger) tracker.Backend {
			handed = append(handed, l)
			return tracker.NewMemoryBackend()
		},
	}
	cmd := cli.NewRootCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"tasks", "toggle", uuid.NewString()})

	// Act
	err := cmd.ExecuteContext(context.Background())

	// Assert
	require.Error(t, err)
	require.Len(t, handed, 1)
	assert.Same(t, log, handed[0])
	require.Equal(t, 1, logs.FilterMessage(tracker.MsgUpdateTaskFailed).Len())
}
