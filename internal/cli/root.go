package cli

import (
	"strings"

	"github.com/lucasferreira/webquest/internal/notify"
	"github.com/lucasferreira/webquest/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to the services and shared state used by CLI commands.
type App struct {
	Progress service.ProgressService
	Settings service.SettingsService
	Data     service.DataService
	Notices  *notify.Emitter

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the challenge TUI require it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "webquest" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "webquest",
		Short:         "Learn how the web works, one mission at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Accept underscore spellings of flag names.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(strings.ReplaceAll(name, "_", "-")))
	})

	root.AddCommand(
		newStatusCmd(app),
		newMissionsCmd(app),
		newQuizCmd(app),
		newChallengeCmd(app),
		newFundamentalsCmd(app),
		newAPICmd(app),
		newSettingsCmd(app),
		newDataCmd(app),
	)

	return root
}
