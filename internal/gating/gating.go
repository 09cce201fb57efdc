// Package gating decides mission accessibility from a progress snapshot.
// Everything here is a pure function: status is always re-derived, never
// stored.
package gating

import "github.com/lucasferreira/webquest/internal/domain"

// MissionStatus is the four-state machine every screen renders from.
type MissionStatus string

const (
	StatusLocked    MissionStatus = "locked"
	StatusAvailable MissionStatus = "available"
	StatusNeedsQuiz MissionStatus = "needs-quiz"
	StatusCompleted MissionStatus = "completed"
)

// Engine evaluates unlock rules against the mission catalog bounds.
type Engine struct {
	missionCount int
}

// New creates an Engine for a catalog of missionCount missions.
func New(missionCount int) Engine {
	return Engine{missionCount: missionCount}
}

// CanUnlock reports whether the mission at index is accessible. Mission 0 is
// always open. From mission 1 on, the previous mission must be completed;
// from mission 2 on, the previous mission's quiz must also have a recorded
// final submission (any score counts). Indices outside the catalog are
// permanently locked, never an error.
func (e Engine) CanUnlock(index int, p domain.Progress) bool {
	if index < 0 || index >= e.missionCount {
		return false
	}
	if index == 0 {
		return true
	}

	prev := index - 1
	if !p.HasCompletedStep(prev) {
		return false
	}

	// The first two missions bootstrap the player without quiz friction;
	// from mission 2 on, the previous quiz gates advancement.
	if index >= 2 && !p.HasCompletedQuiz(prev) {
		return false
	}

	return true
}

// QuizRequired reports whether the mission's quiz gates further progression.
// Mission i's quiz is required iff it guards the unlock of mission i+1,
// which carries a quiz gate only from index 2 on.
func (e Engine) QuizRequired(index int) bool {
	return index >= 1 && index+1 < e.missionCount
}

// Status derives the four-state mission status from a progress snapshot.
func (e Engine) Status(index int, p domain.Progress) MissionStatus {
	if !e.CanUnlock(index, p) {
		return StatusLocked
	}
	if !p.HasCompletedStep(index) {
		return StatusAvailable
	}
	if e.QuizRequired(index) && !p.HasCompletedQuiz(index) {
		return StatusNeedsQuiz
	}
	return StatusCompleted
}
