package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/service"
)

// FormatMissions renders the mission ladder with per-mission status.
func FormatMissions(views []service.MissionView, p domain.Progress) string {
	headers := []string{"#", "MISSION", "STATUS", "QUIZ"}
	rows := make([][]string, 0, len(views))

	for _, v := range views {
		quiz := Dim("--")
		if rec, ok := p.QuizScores[v.Mission.ID]; ok {
			quiz = StyleFg.Render(fmt.Sprintf("%d/%d", rec.Score, rec.TotalQuestions))
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", v.Mission.ID)),
			Bold(v.Mission.Title),
			StatusIndicator(v.Status),
			quiz,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	return RenderBox("Missions", b.String())
}

// FormatMissionResult renders the outcome of a mission completion.
func FormatMissionResult(r *service.MissionResult) string {
	if r.AlreadyCompleted {
		return Dim(fmt.Sprintf("Mission %q is already completed.", r.Mission.Title)) + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Mission complete: %s", r.Mission.Title)) + "\n")
	b.WriteString(fmt.Sprintf("  %s\n", Dim(r.Mission.Description)))
	b.WriteString(fmt.Sprintf("  +%d XP, total %d\n", r.XP, r.Progress.Score))
	return b.String()
}
