package cli

import (
	"github.com/spf13/cobra"

	"taskflow/internal/model"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category commands",
	}
	cmd.AddCommand(newCategoriesListCmd(app))
	cmd.AddCommand(newCategoriesAddCmd(app))
	cmd.AddCommand(newCategoriesRemoveCmd(app))
	return cmd
}

func newCategoriesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, tr.Categories())
		},
	}
}

func newCategoriesAddCmd(app *App) *cobra.Command {
	var in model.CategoryCreate

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a personal category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			in.Name = args[0]
			c, ok := tr.CreateCategory(cmd.Context(), in)
			if !ok {
				return writeErr(cmd, failure(tr, "name must not be empty"))
			}
			return writeOut(cmd, app, c)
		},
	}

	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "Category description")
	cmd.Flags().StringVar(&in.Color, "color", "", "Display color")
	cmd.Flags().StringVar(&in.Icon, "icon", "", "Display icon")
	return cmd
}

func newCategoriesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <category-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a category and its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			tr, err := app.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if !tr.DeleteCategory(cmd.Context(), id) {
				return writeErr(cmd, failure(tr, "category not deleted"))
			}
			return writeOut(cmd, app, map[string]string{"deleted": id.String()})
		},
	}
}
