package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/lucasferreira/webquest/internal/cli/formatter"
	"github.com/lucasferreira/webquest/internal/gating"
	"github.com/lucasferreira/webquest/internal/service"
	"github.com/spf13/cobra"
)

func newMissionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List the request-lifecycle missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			views := app.Progress.Missions(ctx)
			p := app.Progress.Progress(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMissions(views, p))
			return nil
		},
	}

	cmd.AddCommand(newMissionCompleteCmd(app))
	return cmd
}

func newMissionCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <index>",
		Short: "Mark a mission as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mission index must be a number, got %q", args[0])
			}

			ctx := context.Background()
			result, err := app.Progress.CompleteMission(ctx, index)
			if errors.Is(err, service.ErrMissionLocked) {
				if index >= 1 && app.Progress.MissionStatus(ctx, index-1) == gating.StatusNeedsQuiz {
					return fmt.Errorf("mission %d needs the previous quiz first: run `webquest quiz %d`", index, index-1)
				}
				return fmt.Errorf("mission %d is locked: complete the earlier missions first", index)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatMissionResult(result))
			printNotices(app, out)
			return nil
		},
	}
}
