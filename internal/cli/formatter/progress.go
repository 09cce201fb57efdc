package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasferreira/webquest/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a fraction as a block bar like [████░░░░] 45%.
// The bar is colored by fill: green >66%, yellow 33-66%, red <33%.
func RenderBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderXPBar renders the progress toward the next level, with the raw XP
// figures alongside, e.g. [██████░░░░]  60%  120/200 XP.
func RenderXPBar(score, width int) string {
	into := score % domain.XPPerLevel
	pct := float64(into) / float64(domain.XPPerLevel)
	return fmt.Sprintf("%s  %s", RenderBar(pct, width), Dim(fmt.Sprintf("%d/%d XP", into, domain.XPPerLevel)))
}

// LevelBadge renders a level label like "Lv 3".
func LevelBadge(level int) string {
	return StyleHeader.Render(fmt.Sprintf("Lv %d", level))
}
