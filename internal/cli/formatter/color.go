package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasferreira/webquest/internal/gating"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the lipgloss style for a mission status.
func StatusStyle(status gating.MissionStatus) lipgloss.Style {
	switch status {
	case gating.StatusCompleted:
		return StyleGreen
	case gating.StatusAvailable:
		return StyleBlue
	case gating.StatusNeedsQuiz:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status marker such as "✓ COMPLETED".
func StatusIndicator(status gating.MissionStatus) string {
	switch status {
	case gating.StatusCompleted:
		return StyleGreen.Render("✓ COMPLETED")
	case gating.StatusAvailable:
		return StyleBlue.Render("▶ AVAILABLE")
	case gating.StatusNeedsQuiz:
		return StyleYellow.Render("? NEEDS QUIZ")
	default:
		return StyleDim.Render("🔒 LOCKED")
	}
}

// RarityStyle returns the style for an achievement rarity label.
func RarityStyle(rarity string) lipgloss.Style {
	switch rarity {
	case "epic":
		return StylePurple
	case "rare":
		return StyleBlue
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
