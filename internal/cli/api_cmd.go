package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasferreira/webquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var apiMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

func newAPICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Build mock API routes in the sandbox",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <method> <path>",
		Short: "Create a mock route and earn XP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			path := args[1]
			if !apiMethods[method] {
				return fmt.Errorf("unknown HTTP method %q", args[0])
			}
			if !strings.HasPrefix(path, "/") {
				return fmt.Errorf("route path must start with /, got %q", path)
			}

			p, err := app.Progress.RecordAPICreated(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n",
				formatter.StyleGreen.Render("Route created:"),
				formatter.Bold(method),
				formatter.StyleFg.Render(path))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("APIs built: %d", p.APIsCreated)))
			printNotices(app, out)
			return nil
		},
	})

	return cmd
}
