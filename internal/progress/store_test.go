package progress

import (
	"context"
	"testing"
	"time"

	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/repository"
	"github.com/lucasferreira/webquest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures emitted events for assertions.
type recordingNotifier struct {
	levelUps     []int
	achievements []string
}

func (r *recordingNotifier) NotifyLevelUp(newLevel int) {
	r.levelUps = append(r.levelUps, newLevel)
}

func (r *recordingNotifier) NotifyAchievement(id string) {
	r.achievements = append(r.achievements, id)
}

func newTestStore(t *testing.T) (*Store, *recordingNotifier) {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(db)
	rec := &recordingNotifier{}
	store := NewStore(context.Background(), repo, WithNotifier(rec), WithLogf(t.Logf))
	return store, rec
}

func TestUpdate_ScoreRecomputesLevel(t *testing.T) {
	store, rec := newTestStore(t)
	ctx := context.Background()

	p, err := store.Update(ctx, domain.ProgressPatch{Score: domain.IntPtr(250)})
	require.NoError(t, err)

	assert.Equal(t, 250, p.Score)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, []int{2}, rec.levelUps, "exactly one level-up event with the new level")
}

func TestUpdate_SameScoreDoesNotRetriggerLevelUp(t *testing.T) {
	store, rec := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, domain.ProgressPatch{Score: domain.IntPtr(250)})
	require.NoError(t, err)
	p, err := store.Update(ctx, domain.ProgressPatch{Score: domain.IntPtr(250)})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Level)
	assert.Len(t, rec.levelUps, 1, "level unchanged, no second event")
}

func TestUpdate_LevelMonotonicOverIncrements(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	prevLevel := 1
	score := 0
	for _, inc := range []int{10, 50, 140, 0, 75, 200, 525} {
		score += inc
		p, err := store.Update(ctx, domain.ProgressPatch{Score: domain.IntPtr(score)})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Level, prevLevel)
		assert.Equal(t, domain.LevelForScore(score), p.Level)
		prevLevel = p.Level
	}
}

func TestUpdate_AlwaysTouchesLastActive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(db)

	current := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(context.Background(), repo, WithClock(func() time.Time { return current }))

	p, err := store.Update(context.Background(), domain.ProgressPatch{})
	require.NoError(t, err)
	assert.Equal(t, current, p.LastActive)

	current = current.Add(5 * time.Minute)
	p, err = store.Update(context.Background(), domain.ProgressPatch{})
	require.NoError(t, err)
	assert.Equal(t, current, p.LastActive, "empty patch still refreshes lastActive")
}

func TestUpdate_NewAchievementsEachGetAnEvent(t *testing.T) {
	store, rec := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, domain.ProgressPatch{
		Achievements: []string{"first-steps", "web-explorer"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"first-steps", "web-explorer"}, rec.achievements)
}

func TestUpdate_ExistingAchievementsDoNotReEmit(t *testing.T) {
	store, rec := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, domain.ProgressPatch{Achievements: []string{"first-steps"}})
	require.NoError(t, err)
	_, err = store.Update(ctx, domain.ProgressPatch{Achievements: []string{"first-steps", "quiz-champion"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"first-steps", "quiz-champion"}, rec.achievements)
}

func TestUpdate_AchievementRemovalRejected(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, domain.ProgressPatch{Achievements: []string{"first-steps"}})
	require.NoError(t, err)

	_, err = store.Update(ctx, domain.ProgressPatch{Achievements: []string{"web-explorer"}})
	assert.ErrorIs(t, err, ErrInvalidUpdate)
	assert.Equal(t, []string{"first-steps"}, store.Get().Achievements)
}

func TestUpdate_QuizScoresMapReplacedWholesale(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, domain.ProgressPatch{
		QuizScores: map[int]domain.QuizRecord{
			2: {Score: 3, TotalQuestions: 5, Attempts: 1},
			3: {Score: 4, TotalQuestions: 5, Attempts: 1},
		},
	})
	require.NoError(t, err)

	// A patch carrying only quiz 2 drops quiz 3: shallow replacement, not
	// a deep merge.
	p, err := store.Update(ctx, domain.ProgressPatch{
		QuizScores: map[int]domain.QuizRecord{
			2: {Score: 5, TotalQuestions: 5, Attempts: 2},
		},
	})
	require.NoError(t, err)

	assert.Len(t, p.QuizScores, 1)
	assert.Equal(t, domain.QuizRecord{Score: 5, TotalQuestions: 5, Attempts: 2}, p.QuizScores[2])
}

func TestUpdate_InvalidPatchesRejectedAtomically(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, domain.ProgressPatch{
		Score:          domain.IntPtr(300),
		CompletedSteps: []int{0},
	})
	require.NoError(t, err)
	before := store.Get()

	cases := []domain.ProgressPatch{
		{Score: domain.IntPtr(-1)},
		{Score: domain.IntPtr(100)}, // score never decreases
		{CurrentStep: domain.IntPtr(-2)},
		{CompletedSteps: []int{1, -3}},
		{CompletedQuizzes: []int{-1}},
		{QuizScores: map[int]domain.QuizRecord{1: {Score: 6, TotalQuestions: 5, Attempts: 1}}},
		{QuizScores: map[int]domain.QuizRecord{1: {Score: 1, TotalQuestions: 0, Attempts: 1}}},
		{QuizScores: map[int]domain.QuizRecord{1: {Score: 1, TotalQuestions: 5, Attempts: 0}}},
		{ChallengesCompleted: domain.IntPtr(-1)},
		{BestTimes: map[string]int{"speed-basic": -5}},
		{HintsUsed: domain.IntPtr(-1)},
		{APIsCreated: domain.IntPtr(-1)},
		{TotalPlayTime: domain.IntPtr(-10)},
		{Achievements: []string{""}},
		{FundamentalsRead: []string{""}},
	}
	for i, patch := range cases {
		_, err := store.Update(ctx, patch)
		assert.ErrorIs(t, err, ErrInvalidUpdate, "case %d", i)
	}

	after := store.Get()
	assert.Equal(t, before.Score, after.Score)
	assert.Equal(t, before.CompletedSteps, after.CompletedSteps)
	assert.True(t, before.LastActive.Equal(after.LastActive), "rejected updates must not touch lastActive")
}

func TestUpdate_DuplicateCollectionEntriesDeduped(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p, err := store.Update(ctx, domain.ProgressPatch{
		CompletedSteps:   []int{0, 1, 0, 1, 2},
		CompletedQuizzes: []int{2, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, p.CompletedSteps)
	assert.Equal(t, []int{2}, p.CompletedQuizzes)
}

func TestUpdate_PersistsEveryUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(db)
	ctx := context.Background()

	store := NewStore(ctx, repo)
	_, err := store.Update(ctx, domain.ProgressPatch{Score: domain.IntPtr(150)})
	require.NoError(t, err)

	// A second store over the same database sees the written snapshot.
	reloaded := NewStore(ctx, repo)
	assert.Equal(t, 150, reloaded.Get().Score)
	assert.Equal(t, 1, reloaded.Get().Level)
}

func TestGet_ReturnsDefensiveCopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, domain.ProgressPatch{CompletedSteps: []int{0}})
	require.NoError(t, err)

	snap := store.Get()
	snap.CompletedSteps[0] = 99
	snap.QuizScores[7] = domain.QuizRecord{Score: 1, TotalQuestions: 1, Attempts: 1}

	fresh := store.Get()
	assert.Equal(t, []int{0}, fresh.CompletedSteps)
	assert.Empty(t, fresh.QuizScores)
}

func TestReset_ReturnsToDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, domain.ProgressPatch{Score: domain.IntPtr(500)})
	require.NoError(t, err)

	p := store.Reset()
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, 1, p.Level)
	assert.Empty(t, p.CompletedSteps)
}
