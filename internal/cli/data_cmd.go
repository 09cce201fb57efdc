package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lucasferreira/webquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export, import or reset your saved data",
	}
	cmd.AddCommand(newDataExportCmd(app), newDataImportCmd(app), newDataResetCmd(app))
	return cmd
}

func newDataExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write a JSON dump of progress and settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Data.Export(context.Background())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			if err := os.WriteFile(args[0], out, 0o644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("Exported to %s", args[0])))
			return nil
		},
	}
}

func newDataImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Apply the settings from an exported dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}

			settings, err := app.Data.Import(context.Background(), data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(settings))
			return nil
		},
	}
}

func newDataResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe progress and settings back to a first run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("no terminal: pass --yes to confirm the reset")
				}
				confirmed := false
				if err := confirmForm("Delete all progress and settings?", &confirmed).Run(); err != nil {
					return fmt.Errorf("running confirmation: %w", err)
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Reset cancelled."))
					return nil
				}
			}

			if err := app.Data.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All progress and settings cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
