package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/service"
)

const xpBarWidth = 20

// FormatDashboard renders the player overview: level, XP, mission progress
// and unlocked achievements.
func FormatDashboard(p domain.Progress, views []service.MissionView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", LevelBadge(p.Level), RenderXPBar(p.Score, xpBarWidth)))
	b.WriteString(Dim(fmt.Sprintf("Total: %d XP", p.Score)) + "\n\n")

	done := 0
	for _, v := range views {
		if p.HasCompletedStep(v.Mission.ID) {
			done++
		}
	}
	missionPct := 0.0
	if len(views) > 0 {
		missionPct = float64(done) / float64(len(views))
	}
	b.WriteString(fmt.Sprintf("Missions    %s  %s\n",
		RenderBar(missionPct, xpBarWidth),
		Dim(fmt.Sprintf("%d of %d", done, len(views)))))

	b.WriteString(fmt.Sprintf("Quizzes     %s\n", Bold(fmt.Sprintf("%d", len(p.CompletedQuizzes)))))
	b.WriteString(fmt.Sprintf("Challenges  %s\n", Bold(fmt.Sprintf("%d", p.ChallengesCompleted))))
	b.WriteString(fmt.Sprintf("APIs built  %s\n", Bold(fmt.Sprintf("%d", p.APIsCreated))))
	b.WriteString(fmt.Sprintf("Topics read %s\n", Bold(fmt.Sprintf("%d", len(p.FundamentalsRead)))))

	b.WriteString("\n")
	b.WriteString(FormatAchievementList(p))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Played %s, last active %s",
		FormatPlayTime(p.TotalPlayTime), LastActiveAgo(p.LastActive))) + "\n")

	return RenderBox("WebQuest", b.String())
}

// FormatAchievementList renders the unlocked/locked achievement table.
func FormatAchievementList(p domain.Progress) string {
	var b strings.Builder
	b.WriteString(Header("Achievements") + "\n")

	for _, def := range catalog.Achievements() {
		if p.HasAchievement(def.ID) {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleGreen.Render("★"),
				Bold(def.Title),
				RarityStyle(def.Rarity).Render(def.Rarity)))
			continue
		}
		have := def.Requirement.CounterFor(p)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim("☆"),
			Dim(def.Title),
			Dim(fmt.Sprintf("(%d/%d)", have, def.Requirement.Target))))
	}
	return b.String()
}
