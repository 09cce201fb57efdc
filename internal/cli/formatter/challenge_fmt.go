package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/service"
)

// FormatChallengeList renders the available timed challenges.
func FormatChallengeList(defs []catalog.Challenge, bestTimes map[string]int) string {
	headers := []string{"ID", "CHALLENGE", "LIMIT", "BEST"}
	rows := make([][]string, 0, len(defs))

	for _, c := range defs {
		best := Dim("--")
		if secs, ok := bestTimes[c.ID]; ok {
			best = StyleGreen.Render(FormatSeconds(secs))
		}
		rows = append(rows, []string{
			Dim(c.ID),
			Bold(c.Title),
			StyleFg.Render(FormatSeconds(c.TimeLimit)),
			best,
		})
	}

	return RenderBox("Challenges", RenderTable(headers, rows))
}

// FormatChallengeResult renders the outcome of a finished challenge run.
func FormatChallengeResult(r *service.ChallengeResult) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render(fmt.Sprintf("Challenge done: %s", r.Challenge.Title)) + "\n")
	b.WriteString(fmt.Sprintf("  %d/%d correct in %s\n",
		r.Correct, len(r.Challenge.Questions), FormatSeconds(r.ElapsedSeconds)))
	b.WriteString(fmt.Sprintf("  +%d XP\n", r.XP))

	if r.NewBest {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  New best time: %s", FormatSeconds(r.BestTime))) + "\n")
	} else {
		b.WriteString(Dim(fmt.Sprintf("  Best time stays at %s", FormatSeconds(r.BestTime))) + "\n")
	}
	return b.String()
}
