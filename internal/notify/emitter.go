// Package notify manages the transient notification list. Each notification
// carries its own expiry timer; dismissal is idempotent and safe against the
// timers firing concurrently.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/scoring"
)

// Emitter holds the active notification list. The zero value is not usable;
// construct with NewEmitter.
type Emitter struct {
	mu     sync.Mutex
	active []domain.Notification
	timers map[string]*time.Timer
	now    func() time.Time
}

// NewEmitter creates an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		timers: map[string]*time.Timer{},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Emit adds a notification and returns its id. A zero duration resolves to
// the type's default; an explicitly persistent notification passes a
// negative duration. Rapid-fire events each get their own independent entry
// and timer; nothing is merged or deduplicated. An id collision (practically
// impossible) silently replaces the earlier entry.
func (e *Emitter) Emit(t domain.NotificationType, title, message string, data domain.NotificationData, duration time.Duration) string {
	if duration == 0 {
		duration = domain.DefaultDuration(t)
	}
	if duration < 0 {
		duration = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	n := domain.Notification{
		ID:       e.newID(),
		Type:     t,
		Title:    title,
		Message:  message,
		Duration: duration,
		Data:     data,
		Created:  e.now(),
	}

	e.removeLocked(n.ID)
	e.active = append(e.active, n)

	if duration > 0 {
		id := n.ID
		e.timers[id] = time.AfterFunc(duration, func() {
			e.Dismiss(id)
		})
	}

	return n.ID
}

// Dismiss removes a notification. Dismissing an absent id is a no-op, so
// an expiry timer racing an explicit dismissal is harmless.
func (e *Emitter) Dismiss(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(id)
}

// ClearAll empties the active list and stops every pending timer.
func (e *Emitter) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, timer := range e.timers {
		timer.Stop()
		delete(e.timers, id)
	}
	e.active = nil
}

// Active returns the notifications currently visible, oldest first.
func (e *Emitter) Active() []domain.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Notification, len(e.active))
	copy(out, e.active)
	return out
}

func (e *Emitter) removeLocked(id string) {
	if timer, ok := e.timers[id]; ok {
		timer.Stop()
		delete(e.timers, id)
	}
	for i, n := range e.active {
		if n.ID == id {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
}

// newID builds a timestamp-plus-random id. Collisions are negligible; the
// scheme is not meant to be cryptographic.
func (e *Emitter) newID() string {
	return fmt.Sprintf("%d-%s", e.now().UnixMilli(), uuid.NewString()[:8])
}

// ── event helpers ────────────────────────────────────────────────────────────
//
// These wrap Emit for the transitions the store and services observe. The
// Emitter satisfies the store's Notifier port through NotifyLevelUp and
// NotifyAchievement.

// NotifyLevelUp announces a level-up with the new level in the payload.
func (e *Emitter) NotifyLevelUp(newLevel int) {
	e.Emit(domain.NotifyLevelUp,
		"Congratulations!",
		fmt.Sprintf("You reached level %d!", newLevel),
		domain.NotificationData{NewLevel: newLevel},
		0)
}

// NotifyAchievement announces an unlocked achievement, resolving its title
// and reward from the catalog when the id is known.
func (e *Emitter) NotifyAchievement(id string) {
	def, ok := catalog.AchievementByID(id)
	if !ok {
		e.Emit(domain.NotifyAchievement, "Achievement unlocked!", id, domain.NotificationData{}, 0)
		return
	}
	e.Emit(domain.NotifyAchievement,
		"Achievement unlocked!",
		fmt.Sprintf("%s — %s", def.Title, def.Description),
		domain.NotificationData{XP: def.Reward.XP, Title: def.Reward.Title},
		0)
}

// NotifyMissionComplete announces a finished mission with its XP award.
func (e *Emitter) NotifyMissionComplete(missionTitle string, xp int) {
	e.Emit(domain.NotifyMissionComplete,
		"Mission complete!",
		fmt.Sprintf("%s — +%d XP", missionTitle, xp),
		domain.NotificationData{XP: xp},
		0)
}

// NotifyQuizComplete announces a quiz submission with its score summary.
func (e *Emitter) NotifyQuizComplete(correct, total, xp int) {
	pct := scoring.QuizPercent(correct, total)
	e.Emit(domain.NotifyQuizComplete,
		"Quiz complete!",
		fmt.Sprintf("%d/%d correct (%d%%) — +%d XP", correct, total, pct, xp),
		domain.NotificationData{XP: xp},
		0)
}
