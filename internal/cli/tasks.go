package cli

import (
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksToggleCmd(app))
	cmd.AddCommand(newTasksRemoveCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var (
		sel selection
		all bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of the selected project or category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if all {
				return writeOut(cmd, app, tr.Tasks())
			}
			if err := sel.apply(tr); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"context":   tr.Context(),
				"todo":      tr.Todo(),
				"completed": tr.Completed(),
			})
		},
	}

	sel.bind(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "List every task regardless of selection")
	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	var (
		sel         selection
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the selected project or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sel.apply(tr); err != nil {
				return writeErr(cmd, err)
			}
			task, ok := tr.CreateTask(cmd.Context(), args[0], description)
			if !ok {
				return writeErr(cmd, failure(tr, "title must not be empty"))
			}
			return writeOut(cmd, app, task)
		},
	}

	sel.bind(cmd)
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	return cmd
}

func newTasksToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Flip a task between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("task", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			task, ok := tr.ToggleTask(cmd.Context(), id)
			if !ok {
				return writeErr(cmd, failure(tr, "task not toggled"))
			}
			return writeOut(cmd, app, task)
		},
	}
}

func newTasksRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("task", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if !tr.DeleteTask(cmd.Context(), id) {
				return writeErr(cmd, failure(tr, "task not deleted"))
			}
			return writeOut(cmd, app, map[string]string{"deleted": id.String()})
		},
	}
}
