package testutil

import (
	"time"

	"github.com/lucasferreira/webquest/internal/domain"
)

// ProgressOption mutates a Progress fixture.
type ProgressOption func(*domain.Progress)

// WithCompletedSteps sets the completed mission indices.
func WithCompletedSteps(steps ...int) ProgressOption {
	return func(p *domain.Progress) {
		p.CompletedSteps = steps
	}
}

// WithCompletedQuizzes sets the completed quiz indices.
func WithCompletedQuizzes(quizzes ...int) ProgressOption {
	return func(p *domain.Progress) {
		p.CompletedQuizzes = quizzes
	}
}

// WithScore sets Score and its derived Level together.
func WithScore(score int) ProgressOption {
	return func(p *domain.Progress) {
		p.Score = score
		p.Level = domain.LevelForScore(score)
	}
}

// WithAchievements sets the unlocked achievement ids.
func WithAchievements(ids ...string) ProgressOption {
	return func(p *domain.Progress) {
		p.Achievements = ids
	}
}

// NewProgress builds a Progress fixture from defaults plus options.
func NewProgress(opts ...ProgressOption) domain.Progress {
	p := domain.DefaultProgress()
	p.LastActive = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
