package notify

import (
	"fmt"
	"testing"
	"time"

	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_ZeroDurationResolvesTypeDefault(t *testing.T) {
	e := NewEmitter()

	id := e.Emit(domain.NotifyAchievement, "t", "m", domain.NotificationData{}, 0)

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.Equal(t, 8*time.Second, active[0].Duration)
}

func TestEmit_InfoDefaultsToPersistent(t *testing.T) {
	e := NewEmitter()

	e.Emit(domain.NotifyInfo, "heads up", "m", domain.NotificationData{}, 0)

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, time.Duration(0), active[0].Duration, "info notifications stay until dismissed")

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, e.Active(), 1)
}

func TestEmit_NegativeDurationForcesPersistent(t *testing.T) {
	e := NewEmitter()

	e.Emit(domain.NotifyAchievement, "t", "m", domain.NotificationData{}, -1)

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, time.Duration(0), active[0].Duration)
}

func TestEmit_ExpiresAfterDuration(t *testing.T) {
	e := NewEmitter()

	e.Emit(domain.NotifyLevelUp, "t", "m", domain.NotificationData{}, 10*time.Millisecond)
	require.Len(t, e.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(e.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestEmit_RapidFireEventsStayIndependent(t *testing.T) {
	e := NewEmitter()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		id := e.Emit(domain.NotifyMissionComplete, fmt.Sprintf("mission %d", i), "m", domain.NotificationData{}, 0)
		assert.False(t, seen[id], "ids must be unique")
		seen[id] = true
	}

	active := e.Active()
	require.Len(t, active, 5)
	assert.Equal(t, "mission 0", active[0].Title, "oldest first")
	assert.Equal(t, "mission 4", active[4].Title)
}

func TestDismiss_RemovesAndIsIdempotent(t *testing.T) {
	e := NewEmitter()

	id := e.Emit(domain.NotifyWarning, "t", "m", domain.NotificationData{}, 0)
	keep := e.Emit(domain.NotifyInfo, "t2", "m2", domain.NotificationData{}, 0)

	e.Dismiss(id)
	e.Dismiss(id)
	e.Dismiss("no-such-id")

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, keep, active[0].ID)
}

func TestClearAll(t *testing.T) {
	e := NewEmitter()

	e.Emit(domain.NotifyAchievement, "a", "m", domain.NotificationData{}, time.Minute)
	e.Emit(domain.NotifyInfo, "b", "m", domain.NotificationData{}, 0)

	e.ClearAll()
	assert.Empty(t, e.Active())
}

func TestActive_ReturnsACopy(t *testing.T) {
	e := NewEmitter()
	e.Emit(domain.NotifyInfo, "t", "m", domain.NotificationData{}, 0)

	got := e.Active()
	got[0].Title = "mutated"

	assert.Equal(t, "t", e.Active()[0].Title)
}

func TestNotifyLevelUp_Payload(t *testing.T) {
	e := NewEmitter()
	e.NotifyLevelUp(3)

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, domain.NotifyLevelUp, active[0].Type)
	assert.Equal(t, "You reached level 3!", active[0].Message)
	assert.Equal(t, 3, active[0].Data.NewLevel)
	assert.Equal(t, 6*time.Second, active[0].Duration)
}

func TestNotifyAchievement_ResolvesCatalogReward(t *testing.T) {
	e := NewEmitter()
	e.NotifyAchievement("first-steps")

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, domain.NotifyAchievement, active[0].Type)
	assert.NotZero(t, active[0].Data.XP)

	e.ClearAll()
	e.NotifyAchievement("ghost")
	active = e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "ghost", active[0].Message, "unknown ids fall back to the raw id")
}

func TestNotifyQuizComplete_Summary(t *testing.T) {
	e := NewEmitter()
	e.NotifyQuizComplete(3, 5, 75)

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, domain.NotifyQuizComplete, active[0].Type)
	assert.Contains(t, active[0].Message, "3/5")
	assert.Contains(t, active[0].Message, "60%")
	assert.Equal(t, 75, active[0].Data.XP)
	assert.Equal(t, 4*time.Second, active[0].Duration)
}
