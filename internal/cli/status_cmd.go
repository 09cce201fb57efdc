package cli

import (
	"context"
	"fmt"

	"github.com/lucasferreira/webquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your level, XP and overall progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p := app.Progress.Progress(ctx)
			views := app.Progress.Missions(ctx)

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(p, views))
			return nil
		},
	}
}
