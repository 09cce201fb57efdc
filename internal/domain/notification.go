package domain

import "time"

type NotificationType string

const (
	NotifyAchievement     NotificationType = "achievement"
	NotifyLevelUp         NotificationType = "level-up"
	NotifyMissionComplete NotificationType = "mission-complete"
	NotifyQuizComplete    NotificationType = "quiz-complete"
	NotifyInfo            NotificationType = "info"
	NotifyWarning         NotificationType = "warning"
)

// Notification is a transient user-visible event record. Duration zero means
// the notification is persistent until explicitly dismissed. Notifications
// are never persisted.
type Notification struct {
	ID       string
	Type     NotificationType
	Title    string
	Message  string
	Duration time.Duration
	Data     NotificationData
	Created  time.Time
}

// NotificationData carries the optional typed payload: XP and title for
// achievements, NewLevel for level-ups.
type NotificationData struct {
	XP       int
	Title    string
	NewLevel int
}

// DefaultDuration returns the display duration convention for a type.
// Achievements and warnings linger, completion toasts are short, and info
// notifications are persistent unless the caller says otherwise.
func DefaultDuration(t NotificationType) time.Duration {
	switch t {
	case NotifyAchievement:
		return 8000 * time.Millisecond
	case NotifyLevelUp:
		return 6000 * time.Millisecond
	case NotifyMissionComplete, NotifyQuizComplete:
		return 4000 * time.Millisecond
	case NotifyWarning:
		return 8000 * time.Millisecond
	default:
		return 0
	}
}
