package cli

import (
	"context"
	"fmt"

	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFundamentalsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fundamentals",
		Short: "Browse the networking fundamentals library",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.Progress.Progress(context.Background())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTopics(catalog.Fundamentals(), p))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "read <topic-id>",
		Short: "Read a topic and mark it as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic, ok := catalog.TopicByID(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q: run `webquest fundamentals` to list them", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatTopic(topic))

			if _, err := app.Progress.MarkFundamentalRead(context.Background(), topic.ID); err != nil {
				return err
			}
			printNotices(app, out)
			return nil
		},
	})

	return cmd
}
