package service

import (
	"context"

	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/gating"
)

// MissionResult is the outcome of completing a mission.
type MissionResult struct {
	Mission          catalog.Mission
	XP               int
	AlreadyCompleted bool
	NewAchievements  []string
	Progress         domain.Progress
}

// QuizResult is the outcome of a quiz submission.
type QuizResult struct {
	MissionIndex    int
	Correct         int
	Total           int
	Percent         int
	XP              int
	Attempts        int
	NewAchievements []string
	Progress        domain.Progress
}

// ChallengeResult is the outcome of a finished timed challenge.
type ChallengeResult struct {
	Challenge       catalog.Challenge
	Correct         int
	ElapsedSeconds  int
	XP              int
	BestTime        int
	NewBest         bool
	NewAchievements []string
	Progress        domain.Progress
}

// MissionView pairs a catalog mission with its derived status.
type MissionView struct {
	Mission catalog.Mission
	Status  gating.MissionStatus
}

type ProgressService interface {
	Progress(ctx context.Context) domain.Progress
	Missions(ctx context.Context) []MissionView
	MissionStatus(ctx context.Context, index int) gating.MissionStatus
	CanUnlock(ctx context.Context, index int) bool
	CompleteMission(ctx context.Context, index int) (*MissionResult, error)
	SubmitQuiz(ctx context.Context, missionIndex int, answers []int) (*QuizResult, error)
	CompleteChallenge(ctx context.Context, challengeID string, correct, elapsedSeconds int) (*ChallengeResult, error)
	RecordAPICreated(ctx context.Context) (domain.Progress, error)
	MarkFundamentalRead(ctx context.Context, topicID string) (domain.Progress, error)
	UseHint(ctx context.Context) (domain.Progress, error)
	AddPlayTime(ctx context.Context, minutes int) (domain.Progress, error)
}

type SettingsService interface {
	Get(ctx context.Context) domain.Settings
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
}

// ExportBundle is the human-readable dump combining progress and settings.
type DataService interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (domain.Settings, error)
	Reset(ctx context.Context) error
}
