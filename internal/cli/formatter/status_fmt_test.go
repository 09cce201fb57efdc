package formatter

import (
	"testing"

	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/gating"
	"github.com/lucasferreira/webquest/internal/service"
	"github.com/lucasferreira/webquest/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func missionViews(p domain.Progress) []service.MissionView {
	gate := gating.New(catalog.MissionCount())
	views := make([]service.MissionView, 0, catalog.MissionCount())
	for _, m := range catalog.Missions() {
		views = append(views, service.MissionView{Mission: m, Status: gate.Status(m.ID, p)})
	}
	return views
}

func TestFormatDashboard(t *testing.T) {
	p := testutil.NewProgress(
		testutil.WithCompletedSteps(0, 1),
		testutil.WithScore(450),
		testutil.WithAchievements("first-steps"),
	)
	p.Level = 3
	p.TotalPlayTime = 75

	out := FormatDashboard(p, missionViews(p))

	assert.Contains(t, out, "Lv 3")
	assert.Contains(t, out, "Total: 450 XP")
	assert.Contains(t, out, "2 of 7")
	assert.Contains(t, out, "First Steps")
	assert.Contains(t, out, "1h 15m")
}

func TestFormatAchievementList_ShowsProgressTowardLocked(t *testing.T) {
	p := testutil.NewProgress(testutil.WithCompletedSteps(0, 1))

	out := FormatAchievementList(p)

	// Two missions done out of the three web-explorer needs.
	assert.Contains(t, out, "(2/3)")
	assert.Contains(t, out, "Web Explorer")
}

func TestFormatMissions(t *testing.T) {
	p := testutil.NewProgress(testutil.WithCompletedSteps(0))
	p.QuizScores[0] = domain.QuizRecord{Score: 2, TotalQuestions: 3, Attempts: 1}

	out := FormatMissions(missionViews(p), p)

	assert.Contains(t, out, "Type the URL")
	assert.Contains(t, out, "COMPLETED")
	assert.Contains(t, out, "AVAILABLE")
	assert.Contains(t, out, "LOCKED")
	assert.Contains(t, out, "2/3")
}

func TestFormatTopics_MarksReadEntries(t *testing.T) {
	p := testutil.NewProgress()
	p.FundamentalsRead = []string{"osi-model"}

	out := FormatTopics(catalog.Fundamentals(), p)

	assert.Contains(t, out, "The OSI Model")
	assert.Contains(t, out, "dns-system")
}
