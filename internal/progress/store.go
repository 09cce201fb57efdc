package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/repository"
)

// Notifier receives the state-transition events the store detects while
// applying an update. Implementations must be safe to call while the store
// is mid-update.
type Notifier interface {
	NotifyLevelUp(newLevel int)
	NotifyAchievement(id string)
}

// Store owns the single Progress value. All mutation funnels through Update,
// which holds an exclusive lock, so there is never more than one writer;
// readers always receive defensive copies.
type Store struct {
	mu       sync.Mutex
	current  domain.Progress
	repo     repository.SnapshotRepo
	notifier Notifier
	logf     func(format string, args ...any)
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNotifier wires the event sink for level-up and achievement events.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithLogf sets the sink for persistence-failure log lines.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(s *Store) { s.logf = logf }
}

// WithClock overrides the time source. Tests use this to pin LastActive.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore loads the persisted snapshot (or defaults) and returns a ready
// store. Startup never fails on malformed persisted data.
func NewStore(ctx context.Context, repo repository.SnapshotRepo, opts ...Option) *Store {
	s := &Store{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = LoadProgress(ctx, repo, s.logf)
	return s
}

// Get returns a snapshot copy of the current progress.
func (s *Store) Get() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Update merges every present field of the patch into the current state.
// Present collections and maps replace their previous value wholesale.
// LastActive is always refreshed; Level is recomputed whenever Score is
// patched. The whole patch is validated first: on any violation the state is
// left untouched and ErrInvalidUpdate is returned. A successful update is
// persisted before the new snapshot is returned, and level-up / new
// achievement events are emitted exactly once each.
func (s *Store) Update(ctx context.Context, patch domain.ProgressPatch) (domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current
	if err := validatePatch(prev, patch); err != nil {
		return domain.Progress{}, err
	}

	next := prev.Clone()
	applyPatch(&next, patch)
	next.LastActive = s.now()

	leveledUp := false
	if patch.Score != nil {
		next.Level = domain.LevelForScore(next.Score)
		leveledUp = next.Level > prev.Level
	}

	var newAchievements []string
	if patch.Achievements != nil {
		for _, id := range next.Achievements {
			if !prev.HasAchievement(id) {
				newAchievements = append(newAchievements, id)
			}
		}
	}

	s.persist(ctx, next)
	s.current = next

	if s.notifier != nil {
		if leveledUp {
			s.notifier.NotifyLevelUp(next.Level)
		}
		for _, id := range newAchievements {
			s.notifier.NotifyAchievement(id)
		}
	}

	return next.Clone(), nil
}

// Reset drops the in-memory state back to first-run defaults. The caller is
// responsible for clearing the persisted key; Reset writes nothing.
func (s *Store) Reset() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domain.DefaultProgress()
	s.current.LastActive = s.now()
	return s.current.Clone()
}

// persist writes the snapshot synchronously. Failures are logged, never
// propagated: a storage hiccup must not lose the in-memory update.
func (s *Store) persist(ctx context.Context, p domain.Progress) {
	payload, err := EncodeProgress(p)
	if err != nil {
		if s.logf != nil {
			s.logf("encoding progress snapshot: %v", err)
		}
		return
	}
	if err := s.repo.Save(ctx, ProgressKey, payload); err != nil && s.logf != nil {
		s.logf("persisting progress snapshot: %v", err)
	}
}

func applyPatch(p *domain.Progress, patch domain.ProgressPatch) {
	if patch.CurrentStep != nil {
		p.CurrentStep = *patch.CurrentStep
	}
	if patch.CompletedSteps != nil {
		p.CompletedSteps = dedupeInts(patch.CompletedSteps)
	}
	if patch.CompletedQuizzes != nil {
		p.CompletedQuizzes = dedupeInts(patch.CompletedQuizzes)
	}
	if patch.QuizScores != nil {
		scores := make(map[int]domain.QuizRecord, len(patch.QuizScores))
		for k, v := range patch.QuizScores {
			scores[k] = v
		}
		p.QuizScores = scores
	}
	if patch.Score != nil {
		p.Score = *patch.Score
	}
	if patch.Achievements != nil {
		p.Achievements = dedupeStrs(patch.Achievements)
	}
	if patch.ChallengesCompleted != nil {
		p.ChallengesCompleted = *patch.ChallengesCompleted
	}
	if patch.BestTimes != nil {
		times := make(map[string]int, len(patch.BestTimes))
		for k, v := range patch.BestTimes {
			times[k] = v
		}
		p.BestTimes = times
	}
	if patch.HintsUsed != nil {
		p.HintsUsed = *patch.HintsUsed
	}
	if patch.APIsCreated != nil {
		p.APIsCreated = *patch.APIsCreated
	}
	if patch.TotalPlayTime != nil {
		p.TotalPlayTime = *patch.TotalPlayTime
	}
	if patch.FundamentalsRead != nil {
		p.FundamentalsRead = dedupeStrs(patch.FundamentalsRead)
	}
}

func validatePatch(prev domain.Progress, patch domain.ProgressPatch) error {
	if patch.CurrentStep != nil && *patch.CurrentStep < 0 {
		return fmt.Errorf("currentStep %d: %w", *patch.CurrentStep, ErrInvalidUpdate)
	}
	if patch.Score != nil {
		if *patch.Score < 0 {
			return fmt.Errorf("negative score %d: %w", *patch.Score, ErrInvalidUpdate)
		}
		if *patch.Score < prev.Score {
			return fmt.Errorf("score may not decrease (%d -> %d): %w", prev.Score, *patch.Score, ErrInvalidUpdate)
		}
	}
	for _, idx := range patch.CompletedSteps {
		if idx < 0 {
			return fmt.Errorf("completedSteps index %d: %w", idx, ErrInvalidUpdate)
		}
	}
	for _, idx := range patch.CompletedQuizzes {
		if idx < 0 {
			return fmt.Errorf("completedQuizzes index %d: %w", idx, ErrInvalidUpdate)
		}
	}
	for idx, rec := range patch.QuizScores {
		if idx < 0 {
			return fmt.Errorf("quizScores index %d: %w", idx, ErrInvalidUpdate)
		}
		if rec.TotalQuestions <= 0 {
			return fmt.Errorf("quiz %d: totalQuestions %d: %w", idx, rec.TotalQuestions, ErrInvalidUpdate)
		}
		if rec.Score < 0 || rec.Score > rec.TotalQuestions {
			return fmt.Errorf("quiz %d: score %d of %d: %w", idx, rec.Score, rec.TotalQuestions, ErrInvalidUpdate)
		}
		if rec.Attempts < 1 {
			return fmt.Errorf("quiz %d: attempts %d: %w", idx, rec.Attempts, ErrInvalidUpdate)
		}
	}
	if patch.Achievements != nil {
		seen := map[string]bool{}
		for _, id := range patch.Achievements {
			if id == "" {
				return fmt.Errorf("empty achievement id: %w", ErrInvalidUpdate)
			}
			seen[id] = true
		}
		// Achievements are append-only.
		for _, id := range prev.Achievements {
			if !seen[id] {
				return fmt.Errorf("achievement %q removed: %w", id, ErrInvalidUpdate)
			}
		}
	}
	if patch.ChallengesCompleted != nil && *patch.ChallengesCompleted < 0 {
		return fmt.Errorf("challengesCompleted %d: %w", *patch.ChallengesCompleted, ErrInvalidUpdate)
	}
	for id, secs := range patch.BestTimes {
		if id == "" || secs < 0 {
			return fmt.Errorf("bestTimes[%q] = %d: %w", id, secs, ErrInvalidUpdate)
		}
	}
	if patch.HintsUsed != nil && *patch.HintsUsed < 0 {
		return fmt.Errorf("hintsUsed %d: %w", *patch.HintsUsed, ErrInvalidUpdate)
	}
	if patch.APIsCreated != nil && *patch.APIsCreated < 0 {
		return fmt.Errorf("apisCreated %d: %w", *patch.APIsCreated, ErrInvalidUpdate)
	}
	if patch.TotalPlayTime != nil && *patch.TotalPlayTime < 0 {
		return fmt.Errorf("totalPlayTime %d: %w", *patch.TotalPlayTime, ErrInvalidUpdate)
	}
	for _, id := range patch.FundamentalsRead {
		if id == "" {
			return fmt.Errorf("empty fundamentals topic id: %w", ErrInvalidUpdate)
		}
	}
	return nil
}

func dedupeInts(xs []int) []int {
	out := make([]int, 0, len(xs))
	seen := map[int]bool{}
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func dedupeStrs(xs []string) []string {
	out := make([]string, 0, len(xs))
	seen := map[string]bool{}
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}
