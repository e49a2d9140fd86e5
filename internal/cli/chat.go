package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"taskflow/internal/model"
)

var errRemoteOnly = errors.New("command needs a TaskFlow server")

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Workspace chat",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show chat messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, ok := app.backend().(chatSource)
			if !ok {
				return writeErr(cmd, errRemoteOnly)
			}
			msgs, err := src.ListMessages(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, msgs)
		},
	})
	cmd.AddCommand(newChatPostCmd(app))
	return cmd
}

func newChatPostCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "post <message>",
		Short: "Post a chat message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if model.Blank(args[0]) {
				return writeErr(cmd, errors.New("message must not be empty"))
			}
			src, ok := app.backend().(chatSource)
			if !ok {
				return writeErr(cmd, errRemoteOnly)
			}
			msg, err := src.PostMessage(cmd.Context(), model.ChatMessageCreate{
				Message:  strings.TrimSpace(args[0]),
				UserName: user,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, msg)
		},
	}

	cmd.Flags().StringVar(&user, "user", envOr("USER", "You"), "Author name")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task completion statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, ok := app.backend().(statsSource)
			if !ok {
				return writeErr(cmd, errRemoteOnly)
			}
			stats, err := src.Stats(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, stats)
		},
	}
}
