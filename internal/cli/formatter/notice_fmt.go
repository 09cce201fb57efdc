package formatter

import (
	"fmt"

	"github.com/lucasferreira/webquest/internal/domain"
)

// FormatNotification renders one notification as a single styled line.
func FormatNotification(n domain.Notification) string {
	var icon string
	style := StyleFg
	switch n.Type {
	case domain.NotifyAchievement:
		icon, style = "🏆", StylePurple
	case domain.NotifyLevelUp:
		icon, style = "⬆", StyleYellow
	case domain.NotifyMissionComplete:
		icon, style = "✓", StyleGreen
	case domain.NotifyQuizComplete:
		icon, style = "✎", StyleGreen
	case domain.NotifyWarning:
		icon, style = "!", StyleRed
	default:
		icon = "·"
	}
	return fmt.Sprintf("%s %s %s", icon, style.Render(n.Title), n.Message)
}
