package cli

import (
	"github.com/spf13/cobra"

	"taskflow/internal/model"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsAddCmd(app))
	cmd.AddCommand(newProjectsRemoveCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, tr.Projects())
		},
	}
}

func newProjectsAddCmd(app *App) *cobra.Command {
	var in model.ProjectCreate
	var typ string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			in.Name = args[0]
			in.Type = model.WorkspaceType(typ)
			p, ok := tr.CreateProject(cmd.Context(), in)
			if !ok {
				return writeErr(cmd, failure(tr, "name must not be empty"))
			}
			return writeOut(cmd, app, p)
		},
	}

	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "Project description")
	cmd.Flags().StringVar(&typ, "type", string(model.WorkspaceTeam), "personal or team")
	cmd.Flags().StringVar(&in.Color, "color", "", "Display color")
	cmd.Flags().StringVar(&in.Icon, "icon", "", "Display icon")
	return cmd
}

func newProjectsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <project-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a project and its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("project", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if !tr.DeleteProject(cmd.Context(), id) {
				return writeErr(cmd, failure(tr, "project not deleted"))
			}
			return writeOut(cmd, app, map[string]string{"deleted": id.String()})
		},
	}
}
