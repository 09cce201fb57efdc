package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/cli/formatter"
	"github.com/lucasferreira/webquest/internal/gating"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	var answersFlag string

	cmd := &cobra.Command{
		Use:   "quiz <mission>",
		Short: "Take the quiz for a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mission index must be a number, got %q", args[0])
			}

			ctx := context.Background()
			bank := catalog.QuizBank(index)
			if len(bank) == 0 {
				return fmt.Errorf("mission %d has no quiz", index)
			}
			if app.Progress.MissionStatus(ctx, index) == gating.StatusLocked {
				return fmt.Errorf("mission %d is locked: complete the earlier missions first", index)
			}

			var answers []int
			if answersFlag != "" {
				answers, err = parseAnswers(answersFlag, len(bank))
				if err != nil {
					return err
				}
			} else {
				if !app.interactive() {
					return fmt.Errorf("no terminal: pass --answers to submit non-interactively")
				}
				answers, err = runQuizForm(bank)
				if err != nil {
					return err
				}
			}

			result, err := app.Progress.SubmitQuiz(ctx, index, answers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatQuizResult(result))

			// With hints enabled, wrong answers get their explanations
			// shown, and each one counts as a hint used.
			if result.Correct < result.Total && app.Settings.Get(ctx).HintsEnabled {
				fmt.Fprint(out, formatter.FormatQuizReview(bank, answers))
				for i, q := range bank {
					if i >= len(answers) || answers[i] != q.CorrectAnswer {
						if _, err := app.Progress.UseHint(ctx); err != nil {
							return err
						}
					}
				}
			}

			printNotices(app, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFlag, "answers", "", "Comma-separated option numbers (e.g. 2,1,3), 1-based")
	return cmd
}

// runQuizForm walks the question bank one huh select per question and
// returns the chosen option indices.
func runQuizForm(bank []catalog.Question) ([]int, error) {
	answers := make([]int, len(bank))

	groups := make([]*huh.Group, 0, len(bank))
	for i, q := range bank {
		options := make([]huh.Option[int], 0, len(q.Options))
		for j, opt := range q.Options {
			options = append(options, huh.NewOption(opt, j))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("%d/%d  %s", i+1, len(bank), q.Prompt)).
				Options(options...).
				Value(&answers[i]),
		))
	}

	form := huh.NewForm(groups...).WithTheme(webquestHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("running quiz form: %w", err)
	}
	return answers, nil
}

// parseAnswers converts "2,1,3" into zero-based option indices.
func parseAnswers(s string, want int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d answers, got %d", want, len(parts))
	}
	answers := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 1 {
			return nil, fmt.Errorf("answer %d: %q is not a valid option number", i+1, part)
		}
		answers[i] = v - 1
	}
	return answers, nil
}
