package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/challenge"
	"github.com/lucasferreira/webquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChallengeCmd(app *App) *cobra.Command {
	var correctFlag, elapsedFlag int

	cmd := &cobra.Command{
		Use:   "challenge [id]",
		Short: "Run a timed speed challenge",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				p := app.Progress.Progress(ctx)
				fmt.Fprintln(out, formatter.FormatChallengeList(catalog.Challenges(), p.BestTimes))
				return nil
			}

			id := args[0]
			def, ok := catalog.ChallengeByID(id)
			if !ok {
				return fmt.Errorf("unknown challenge %q: run `webquest challenge` to list them", id)
			}

			correct, elapsed := correctFlag, elapsedFlag
			if !cmd.Flags().Changed("correct") {
				if !app.interactive() {
					return fmt.Errorf("no terminal: pass --correct and --elapsed to record a run")
				}
				var aborted bool
				correct, elapsed, aborted = runChallengeTUI(def)
				if aborted {
					fmt.Fprintln(out, formatter.Dim("Challenge aborted."))
					return nil
				}
			}

			result, err := app.Progress.CompleteChallenge(ctx, id, correct, elapsed)
			if err != nil {
				return err
			}

			fmt.Fprint(out, formatter.FormatChallengeResult(result))

			if minutes := elapsed / 60; minutes > 0 {
				if _, err := app.Progress.AddPlayTime(ctx, minutes); err != nil {
					return err
				}
			}

			printNotices(app, out)
			return nil
		},
	}

	cmd.Flags().IntVar(&correctFlag, "correct", 0, "Correct answer count, skipping the interactive run")
	cmd.Flags().IntVar(&elapsedFlag, "elapsed", 0, "Elapsed seconds for a non-interactive run")
	return cmd
}

// runChallengeTUI runs the countdown question screen and returns the result.
func runChallengeTUI(def catalog.Challenge) (correct, elapsed int, aborted bool) {
	timer := challenge.NewTimer(time.Duration(def.TimeLimit) * time.Second)
	model := newChallengeModel(def, timer)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return 0, 0, true
	}
	if m, ok := final.(*challengeModel); ok {
		return m.Results()
	}
	return 0, 0, true
}
