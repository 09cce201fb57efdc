package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/gating"
	"github.com/lucasferreira/webquest/internal/progress"
	"github.com/lucasferreira/webquest/internal/scoring"
)

var (
	// ErrMissionLocked is returned when the gating rules deny access.
	ErrMissionLocked = errors.New("mission locked")

	// ErrUnknownMission is returned for indices outside the catalog.
	ErrUnknownMission = errors.New("unknown mission")

	// ErrUnknownChallenge is returned for ids absent from the catalog.
	ErrUnknownChallenge = errors.New("unknown challenge")

	// ErrUnknownTopic is returned for fundamentals ids absent from the catalog.
	ErrUnknownTopic = errors.New("unknown fundamentals topic")

	// ErrNoQuiz is returned when a mission has no quiz content.
	ErrNoQuiz = errors.New("no quiz for mission")
)

// Notifier receives the completion events this service produces. Level-up
// and achievement notifications are emitted by the store itself.
type Notifier interface {
	NotifyMissionComplete(missionTitle string, xp int)
	NotifyQuizComplete(correct, total, xp int)
}

type progressService struct {
	store    *progress.Store
	gate     gating.Engine
	notifier Notifier
}

// NewProgressService creates the orchestration service over the given store.
// notifier may be nil.
func NewProgressService(store *progress.Store, notifier Notifier) ProgressService {
	return &progressService{
		store:    store,
		gate:     gating.New(catalog.MissionCount()),
		notifier: notifier,
	}
}

func (s *progressService) Progress(ctx context.Context) domain.Progress {
	return s.store.Get()
}

func (s *progressService) Missions(ctx context.Context) []MissionView {
	p := s.store.Get()
	views := make([]MissionView, 0, catalog.MissionCount())
	for _, m := range catalog.Missions() {
		views = append(views, MissionView{Mission: m, Status: s.gate.Status(m.ID, p)})
	}
	return views
}

func (s *progressService) MissionStatus(ctx context.Context, index int) gating.MissionStatus {
	return s.gate.Status(index, s.store.Get())
}

func (s *progressService) CanUnlock(ctx context.Context, index int) bool {
	return s.gate.CanUnlock(index, s.store.Get())
}

func (s *progressService) CompleteMission(ctx context.Context, index int) (*MissionResult, error) {
	mission, ok := catalog.MissionByIndex(index)
	if !ok {
		return nil, fmt.Errorf("mission %d: %w", index, ErrUnknownMission)
	}

	p := s.store.Get()
	if !s.gate.CanUnlock(index, p) {
		return nil, fmt.Errorf("mission %d: %w", index, ErrMissionLocked)
	}

	xp := scoring.MissionXP(p, index)
	if xp == 0 {
		return &MissionResult{Mission: mission, AlreadyCompleted: true, Progress: p}, nil
	}

	nextStep := p.CurrentStep
	if index+1 > nextStep {
		nextStep = index + 1
	}
	updated, err := s.store.Update(ctx, domain.ProgressPatch{
		CompletedSteps: append(p.CompletedSteps, index),
		Score:          domain.IntPtr(p.Score + xp),
		CurrentStep:    domain.IntPtr(nextStep),
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyMissionComplete(mission.Title, xp)
	}

	updated, unlocked, err := s.checkAchievements(ctx, updated)
	if err != nil {
		return nil, err
	}

	return &MissionResult{
		Mission:         mission,
		XP:              xp,
		NewAchievements: unlocked,
		Progress:        updated,
	}, nil
}

func (s *progressService) SubmitQuiz(ctx context.Context, missionIndex int, answers []int) (*QuizResult, error) {
	if _, ok := catalog.MissionByIndex(missionIndex); !ok {
		return nil, fmt.Errorf("mission %d: %w", missionIndex, ErrUnknownMission)
	}
	bank := catalog.QuizBank(missionIndex)
	if len(bank) == 0 {
		return nil, fmt.Errorf("mission %d: %w", missionIndex, ErrNoQuiz)
	}

	correct := 0
	for i, q := range bank {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	total := len(bank)
	xp := scoring.QuizXP(correct, total)

	p := s.store.Get()

	// The quiz counts as completed on any final submission, regardless of
	// score; attempts increment on every submission.
	attempts := p.QuizScores[missionIndex].Attempts + 1
	quizzes := p.CompletedQuizzes
	if !p.HasCompletedQuiz(missionIndex) {
		quizzes = append(quizzes, missionIndex)
	}
	scores := make(map[int]domain.QuizRecord, len(p.QuizScores)+1)
	for k, v := range p.QuizScores {
		scores[k] = v
	}
	scores[missionIndex] = domain.QuizRecord{Score: correct, TotalQuestions: total, Attempts: attempts}

	updated, err := s.store.Update(ctx, domain.ProgressPatch{
		Score:            domain.IntPtr(p.Score + xp),
		CompletedQuizzes: quizzes,
		QuizScores:       scores,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyQuizComplete(correct, total, xp)
	}

	updated, unlocked, err := s.checkAchievements(ctx, updated)
	if err != nil {
		return nil, err
	}

	return &QuizResult{
		MissionIndex:    missionIndex,
		Correct:         correct,
		Total:           total,
		Percent:         scoring.QuizPercent(correct, total),
		XP:              xp,
		Attempts:        attempts,
		NewAchievements: unlocked,
		Progress:        updated,
	}, nil
}

func (s *progressService) CompleteChallenge(ctx context.Context, challengeID string, correct, elapsedSeconds int) (*ChallengeResult, error) {
	def, ok := catalog.ChallengeByID(challengeID)
	if !ok {
		return nil, fmt.Errorf("challenge %q: %w", challengeID, ErrUnknownChallenge)
	}
	if correct < 0 || correct > len(def.Questions) {
		return nil, fmt.Errorf("challenge %q: correct count %d out of range: %w", challengeID, correct, progress.ErrInvalidUpdate)
	}
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	if elapsedSeconds > def.TimeLimit {
		elapsedSeconds = def.TimeLimit
	}

	p := s.store.Get()
	remaining := def.TimeLimit - elapsedSeconds
	xp := scoring.ChallengeXP(correct, remaining)
	best := scoring.BestTime(p, challengeID, elapsedSeconds)
	newBest := best == elapsedSeconds

	times := make(map[string]int, len(p.BestTimes)+1)
	for k, v := range p.BestTimes {
		times[k] = v
	}
	times[challengeID] = best

	updated, err := s.store.Update(ctx, domain.ProgressPatch{
		Score:               domain.IntPtr(p.Score + xp),
		ChallengesCompleted: domain.IntPtr(p.ChallengesCompleted + 1),
		BestTimes:           times,
	})
	if err != nil {
		return nil, err
	}

	updated, unlocked, err := s.checkAchievements(ctx, updated)
	if err != nil {
		return nil, err
	}

	return &ChallengeResult{
		Challenge:       def,
		Correct:         correct,
		ElapsedSeconds:  elapsedSeconds,
		XP:              xp,
		BestTime:        best,
		NewBest:         newBest,
		NewAchievements: unlocked,
		Progress:        updated,
	}, nil
}

func (s *progressService) RecordAPICreated(ctx context.Context) (domain.Progress, error) {
	p := s.store.Get()
	updated, err := s.store.Update(ctx, domain.ProgressPatch{
		APIsCreated: domain.IntPtr(p.APIsCreated + 1),
		Score:       domain.IntPtr(p.Score + scoring.APICreatedXP),
	})
	if err != nil {
		return domain.Progress{}, err
	}
	updated, _, err = s.checkAchievements(ctx, updated)
	return updated, err
}

func (s *progressService) MarkFundamentalRead(ctx context.Context, topicID string) (domain.Progress, error) {
	if _, ok := catalog.TopicByID(topicID); !ok {
		return domain.Progress{}, fmt.Errorf("topic %q: %w", topicID, ErrUnknownTopic)
	}

	p := s.store.Get()
	xp := scoring.FundamentalXP(p, topicID)
	if xp == 0 {
		return p, nil
	}

	updated, err := s.store.Update(ctx, domain.ProgressPatch{
		FundamentalsRead: append(p.FundamentalsRead, topicID),
		Score:            domain.IntPtr(p.Score + xp),
	})
	if err != nil {
		return domain.Progress{}, err
	}
	updated, _, err = s.checkAchievements(ctx, updated)
	return updated, err
}

func (s *progressService) UseHint(ctx context.Context) (domain.Progress, error) {
	p := s.store.Get()
	return s.store.Update(ctx, domain.ProgressPatch{
		HintsUsed: domain.IntPtr(p.HintsUsed + 1),
	})
}

func (s *progressService) AddPlayTime(ctx context.Context, minutes int) (domain.Progress, error) {
	if minutes < 0 {
		return domain.Progress{}, fmt.Errorf("play time %d minutes: %w", minutes, progress.ErrInvalidUpdate)
	}
	p := s.store.Get()
	return s.store.Update(ctx, domain.ProgressPatch{
		TotalPlayTime: domain.IntPtr(p.TotalPlayTime + minutes),
	})
}

// checkAchievements evaluates the achievement table against the current
// counters and unlocks everything newly satisfied in one follow-up update,
// adding the reward XP alongside. Single pass: reward XP that itself crosses
// a score threshold is picked up on the next progress-changing operation.
func (s *progressService) checkAchievements(ctx context.Context, p domain.Progress) (domain.Progress, []string, error) {
	var unlocked []string
	rewardXP := 0
	for _, def := range catalog.Achievements() {
		if p.HasAchievement(def.ID) {
			continue
		}
		if def.Requirement.Satisfied(p) {
			unlocked = append(unlocked, def.ID)
			rewardXP += def.Reward.XP
		}
	}
	if len(unlocked) == 0 {
		return p, nil, nil
	}

	updated, err := s.store.Update(ctx, domain.ProgressPatch{
		Achievements: append(p.Achievements, unlocked...),
		Score:        domain.IntPtr(p.Score + rewardXP),
	})
	if err != nil {
		return domain.Progress{}, nil, err
	}
	return updated, unlocked, nil
}
