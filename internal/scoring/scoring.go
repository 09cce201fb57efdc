// Package scoring holds the deterministic XP rules. Functions are pure;
// callers fold the returned awards into a store update. Awards that the
// product grants only once (missions, fundamentals topics) take the current
// progress and return zero when the membership already holds, so
// double-awarding is structurally impossible.
package scoring

import "github.com/lucasferreira/webquest/internal/domain"

// XP awards for one-shot events.
const (
	MissionCompleteXP = 100
	APICreatedXP      = 25
	FundamentalReadXP = 10
)

// Quiz tier breakpoints, compared with >= against the raw percentage.
const (
	QuizPerfectXP   = 200 // >= 90%
	QuizExcellentXP = 150 // >= 80%
	QuizGoodXP      = 100 // >= 70%
	QuizFairXP      = 75  // >= 60%
	QuizPassXP      = 50  // below 60%
)

// Challenge scoring: per correct answer, and per second left on the clock.
const (
	ChallengeCorrectXP   = 25
	ChallengeTimeBonusXP = 2
)

// MissionXP returns the award for completing the mission, or zero when it is
// already in CompletedSteps.
func MissionXP(p domain.Progress, missionIndex int) int {
	if p.HasCompletedStep(missionIndex) {
		return 0
	}
	return MissionCompleteXP
}

// QuizXP returns the award for a quiz submission, tiered by the raw
// fractional percentage (no rounding in the comparison). A submission always
// earns at least the pass tier: the quiz counts as completed even at 0%.
func QuizXP(correct, total int) int {
	if total <= 0 {
		return 0
	}
	pct := float64(correct) / float64(total) * 100
	switch {
	case pct >= 90:
		return QuizPerfectXP
	case pct >= 80:
		return QuizExcellentXP
	case pct >= 70:
		return QuizGoodXP
	case pct >= 60:
		return QuizFairXP
	default:
		return QuizPassXP
	}
}

// QuizPercent returns the display percentage, rounded to the nearest
// integer. Only for display; tier comparisons use the raw ratio.
func QuizPercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(float64(correct)/float64(total)*100 + 0.5)
}

// ChallengeXP returns the award for finishing a timed challenge with the
// given correct count and seconds remaining on the clock.
func ChallengeXP(correct, remainingSeconds int) int {
	if correct < 0 {
		correct = 0
	}
	if remainingSeconds < 0 {
		remainingSeconds = 0
	}
	return correct*ChallengeCorrectXP + remainingSeconds*ChallengeTimeBonusXP
}

// BestTime folds a new elapsed time into the recorded best, treating a
// missing previous best as unbeaten.
func BestTime(p domain.Progress, challengeID string, elapsedSeconds int) int {
	prev, ok := p.BestTimes[challengeID]
	if !ok || elapsedSeconds < prev {
		return elapsedSeconds
	}
	return prev
}

// FundamentalXP returns the reading award for the topic, or zero when the
// topic id is already marked read.
func FundamentalXP(p domain.Progress, topicID string) int {
	if p.HasReadFundamental(topicID) {
		return 0
	}
	return FundamentalReadXP
}
