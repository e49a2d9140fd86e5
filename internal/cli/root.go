// Package cli is the taskflow command line. Every command loads the task
// list through a tracker, applies one change and prints the result as JSON.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taskflow/internal/client"
	"taskflow/internal/model"
	"taskflow/internal/tracker"
)

type App struct {
	BaseURL    string
	PrettyJSON bool
	Verbose    bool

	// Log is shared by the backend and the tracker of one command. It is
	// built from Verbose on first use when nil.
	Log *zap.Logger

	// NewBackend overrides the REST client, mostly for tests.
	NewBackend func(app *App, log *zap.Logger) tracker.Backend
}

// statsSource and chatSource are implemented by client.Client only.
type statsSource interface {
	Stats(ctx context.Context) (model.Stats, error)
}

type chatSource interface {
	ListMessages(ctx context.Context) ([]model.ChatMessage, error)
	PostMessage(ctx context.Context, in model.ChatMessageCreate) (model.ChatMessage, error)
}

func NewRootCmd(app *App) *cobra.Command {
	if app == nil {
		app = &App{}
	}

	cmd := &cobra.Command{
		Use:          "taskflow",
		Short:        "Manage tasks, projects and categories of a TaskFlow server",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Tasks of the first personal category
  taskflow tasks list

  # Add a task to a team project
  taskflow tasks add "Write release notes" --context team --project <id>

  # Completion statistics
  taskflow stats
`),
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "url", envOr("TASKFLOW_URL", client.DefaultBaseURL), "Server base URL")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Indent JSON output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log API calls to stderr")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newChatCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	return cmd
}

// Execute runs the command line and flushes the logger on the way out.
func Execute(ctx context.Context, app *App) error {
	if app == nil {
		app = &App{}
	}
	defer app.syncLog()
	return NewRootCmd(app).ExecuteContext(ctx)
}

func (app *App) logger() *zap.Logger {
	if app.Log != nil {
		return app.Log
	}
	app.Log = zap.NewNop()
	if app.Verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			app.Log = l
		}
	}
	return app.Log
}

func (app *App) syncLog() {
	if app.Log != nil {
		_ = app.Log.Sync()
	}
}

func (app *App) backend() tracker.Backend {
	log := app.logger()
	if app.NewBackend != nil {
		return app.NewBackend(app, log)
	}
	return client.New(app.BaseURL, client.WithLogger(log))
}

// load returns a tracker with everything fetched.
func (app *App) load(ctx context.Context) (*tracker.Tracker, error) {
	log := app.logger()
	tr := tracker.New(app.backend(), tracker.WithLogger(log))
	if err := tr.Load(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", tracker.MsgFetchFailed, err)
	}
	return tr, nil
}

// selection holds the --context/--project/--category flags.
type selection struct {
	context  string
	project  string
	category string
}

func (s *selection) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.context, "context", string(model.WorkspacePersonal), "personal or team")
	cmd.Flags().StringVar(&s.project, "project", "", "Team project id (defaults to the first one)")
	cmd.Flags().StringVar(&s.category, "category", "", "Personal category id (defaults to the first one)")
}

func (s *selection) apply(tr *tracker.Tracker) error {
	if !tr.SwitchContext(model.WorkspaceType(s.context)) {
		return fmt.Errorf("invalid context %q", s.context)
	}
	if s.project != "" {
		id, err := parseID("project", s.project)
		if err != nil {
			return err
		}
		if !tr.SelectProject(id) {
			return errNotFound("project", s.project)
		}
	}
	if s.category != "" {
		id, err := parseID("category", s.category)
		if err != nil {
			return err
		}
		if !tr.SelectCategory(id) {
			return errNotFound("category", s.category)
		}
	}
	return nil
}

func parseID(what, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q", what, raw)
	}
	return id, nil
}

func errNotFound(what, id string) error {
	return fmt.Errorf("%s not found: %s", what, id)
}

// failure turns a refused tracker operation into an error.
func failure(tr *tracker.Tracker, fallback string) error {
	if msg := tr.Err(); msg != "" {
		return errors.New(msg)
	}
	return errors.New(fallback)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if app.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(map[string]any{"data": v})
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
