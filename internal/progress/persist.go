package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/repository"
)

// Fixed persistence keys. Progress and settings are saved independently so a
// corrupt blob for one never blocks loading the other.
const (
	ProgressKey = "webquest-user-state"
	SettingsKey = "webquest-settings"
)

// SchemaVersion is the current persisted-progress schema. Version 0 blobs
// (no version field) may lack the quiz and fundamentals collections; loading
// defaults them to empty.
const SchemaVersion = 1

// persistedProgress is the JSON wire form of domain.Progress. LastActive is
// an RFC3339 string. Unknown fields in stored blobs are ignored on load.
type persistedProgress struct {
	SchemaVersion       int                       `json:"schemaVersion"`
	CurrentStep         int                       `json:"currentStep"`
	CompletedSteps      []int                     `json:"completedSteps"`
	CompletedQuizzes    []int                     `json:"completedQuizzes,omitempty"`
	QuizScores          map[int]persistedQuizRec  `json:"quizScores,omitempty"`
	Score               int                       `json:"score"`
	Level               int                       `json:"level"`
	Achievements        []string                  `json:"achievements"`
	ChallengesCompleted int                       `json:"challengesCompleted"`
	BestTimes           map[string]int            `json:"bestTimes"`
	HintsUsed           int                       `json:"hintsUsed"`
	APIsCreated         int                       `json:"apisCreated"`
	TotalPlayTime       int                       `json:"totalPlayTime"`
	LastActive          string                    `json:"lastActive"`
	FundamentalsRead    []string                  `json:"fundamentalsRead,omitempty"`
}

type persistedQuizRec struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
	Attempts       int `json:"attempts"`
}

type persistedSettings struct {
	Theme             domain.Theme      `json:"theme"`
	SoundEnabled      bool              `json:"soundEnabled"`
	AnimationsEnabled bool              `json:"animationsEnabled"`
	HintsEnabled      bool              `json:"hintsEnabled"`
	Difficulty        domain.Difficulty `json:"difficulty"`
}

// EncodeProgress serializes a Progress snapshot to its JSON wire form.
func EncodeProgress(p domain.Progress) (string, error) {
	pp := persistedProgress{
		SchemaVersion:       SchemaVersion,
		CurrentStep:         p.CurrentStep,
		CompletedSteps:      p.CompletedSteps,
		CompletedQuizzes:    p.CompletedQuizzes,
		Score:               p.Score,
		Level:               p.Level,
		Achievements:        p.Achievements,
		ChallengesCompleted: p.ChallengesCompleted,
		BestTimes:           p.BestTimes,
		HintsUsed:           p.HintsUsed,
		APIsCreated:         p.APIsCreated,
		TotalPlayTime:       p.TotalPlayTime,
		LastActive:          p.LastActive.UTC().Format(time.RFC3339Nano),
		FundamentalsRead:    p.FundamentalsRead,
	}
	if len(p.QuizScores) > 0 {
		pp.QuizScores = make(map[int]persistedQuizRec, len(p.QuizScores))
		for k, v := range p.QuizScores {
			pp.QuizScores[k] = persistedQuizRec(v)
		}
	}
	raw, err := json.Marshal(pp)
	if err != nil {
		return "", fmt.Errorf("encoding progress: %w", err)
	}
	return string(raw), nil
}

// DecodeProgress parses a stored blob into a Progress. Collections missing
// from older blobs default to empty; an unparseable LastActive falls back to
// the zero time rather than failing the whole load.
func DecodeProgress(payload string) (domain.Progress, error) {
	var pp persistedProgress
	if err := json.Unmarshal([]byte(payload), &pp); err != nil {
		return domain.Progress{}, fmt.Errorf("decoding progress: %w", err)
	}

	p := domain.Progress{
		CurrentStep:         pp.CurrentStep,
		CompletedSteps:      orEmptyInts(pp.CompletedSteps),
		CompletedQuizzes:    orEmptyInts(pp.CompletedQuizzes),
		QuizScores:          map[int]domain.QuizRecord{},
		Score:               pp.Score,
		Level:               domain.LevelForScore(pp.Score),
		Achievements:        orEmptyStrs(pp.Achievements),
		ChallengesCompleted: pp.ChallengesCompleted,
		BestTimes:           map[string]int{},
		HintsUsed:           pp.HintsUsed,
		APIsCreated:         pp.APIsCreated,
		TotalPlayTime:       pp.TotalPlayTime,
		FundamentalsRead:    orEmptyStrs(pp.FundamentalsRead),
	}
	for k, v := range pp.QuizScores {
		p.QuizScores[k] = domain.QuizRecord(v)
	}
	for k, v := range pp.BestTimes {
		p.BestTimes[k] = v
	}
	if t, err := time.Parse(time.RFC3339Nano, pp.LastActive); err == nil {
		p.LastActive = t
	}
	return p, nil
}

// EncodeSettings serializes Settings to JSON.
func EncodeSettings(s domain.Settings) (string, error) {
	raw, err := json.Marshal(persistedSettings(s))
	if err != nil {
		return "", fmt.Errorf("encoding settings: %w", err)
	}
	return string(raw), nil
}

// DecodeSettings parses a stored settings blob. Invalid enum values fall
// back to their defaults; boolean fields absent from the blob decode to
// false, matching the stored-shape contract.
func DecodeSettings(payload string) (domain.Settings, error) {
	var ps persistedSettings
	if err := json.Unmarshal([]byte(payload), &ps); err != nil {
		return domain.Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	s := domain.Settings(ps)
	if !domain.ValidThemes[s.Theme] {
		s.Theme = domain.ThemeSystem
	}
	if !domain.ValidDifficulties[s.Difficulty] {
		s.Difficulty = domain.DifficultyMedium
	}
	return s, nil
}

// LoadProgress reads the persisted progress snapshot, degrading to defaults
// when the blob is absent or malformed. Load never fails startup.
func LoadProgress(ctx context.Context, repo repository.SnapshotRepo, logf func(format string, args ...any)) domain.Progress {
	payload, err := repo.Load(ctx, ProgressKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && logf != nil {
			logf("loading progress snapshot: %v", err)
		}
		return domain.DefaultProgress()
	}
	p, err := DecodeProgress(payload)
	if err != nil {
		if logf != nil {
			logf("discarding malformed progress snapshot: %v", err)
		}
		return domain.DefaultProgress()
	}
	return p
}

// LoadSettings reads the persisted settings, degrading to defaults when the
// blob is absent or malformed.
func LoadSettings(ctx context.Context, repo repository.SnapshotRepo, logf func(format string, args ...any)) domain.Settings {
	payload, err := repo.Load(ctx, SettingsKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && logf != nil {
			logf("loading settings snapshot: %v", err)
		}
		return domain.DefaultSettings()
	}
	s, err := DecodeSettings(payload)
	if err != nil {
		if logf != nil {
			logf("discarding malformed settings snapshot: %v", err)
		}
		return domain.DefaultSettings()
	}
	return s
}

func orEmptyInts(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}

func orEmptyStrs(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
