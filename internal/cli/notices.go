package cli

import (
	"fmt"
	"io"

	"github.com/lucasferreira/webquest/internal/cli/formatter"
)

// printNotices renders and clears the pending notifications. Mutating
// commands call this after their main output so level-up and achievement
// events show up in the same run that caused them.
func printNotices(app *App, out io.Writer) {
	if app.Notices == nil {
		return
	}
	for _, n := range app.Notices.Active() {
		fmt.Fprintln(out, formatter.FormatNotification(n))
	}
	app.Notices.ClearAll()
}
