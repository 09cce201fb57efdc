package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/service"
)

// FormatQuizResult renders a quiz submission summary.
func FormatQuizResult(r *service.QuizResult) string {
	var b strings.Builder

	style := StyleGreen
	if r.Percent < 60 {
		style = StyleRed
	} else if r.Percent < 80 {
		style = StyleYellow
	}

	b.WriteString(style.Render(fmt.Sprintf("Score: %d/%d (%d%%)", r.Correct, r.Total, r.Percent)) + "\n")
	b.WriteString(fmt.Sprintf("  +%d XP, attempt %d\n", r.XP, r.Attempts))

	if r.Percent < 100 {
		b.WriteString(Dim("  Retake the quiz any time to improve your score.") + "\n")
	}
	return b.String()
}

// FormatQuizReview renders per-question corrections with explanations for
// the answers that were wrong.
func FormatQuizReview(bank []catalog.Question, answers []int) string {
	var b strings.Builder
	for i, q := range bank {
		given := -1
		if i < len(answers) {
			given = answers[i]
		}
		if given == q.CorrectAnswer {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("✓"), q.Prompt))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("✗"), q.Prompt))
		b.WriteString(fmt.Sprintf("    %s %s\n", Dim("answer:"), StyleGreen.Render(q.Options[q.CorrectAnswer])))
		b.WriteString(fmt.Sprintf("    %s\n", Dim(q.Explanation)))
	}
	return b.String()
}
