package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasferreira/webquest/internal/domain"
)

// FormatSettings renders the current settings.
func FormatSettings(s domain.Settings) string {
	onOff := func(v bool) string {
		if v {
			return StyleGreen.Render("on")
		}
		return Dim("off")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Theme       %s\n", Bold(string(s.Theme))))
	b.WriteString(fmt.Sprintf("Difficulty  %s\n", Bold(string(s.Difficulty))))
	b.WriteString(fmt.Sprintf("Sound       %s\n", onOff(s.SoundEnabled)))
	b.WriteString(fmt.Sprintf("Animations  %s\n", onOff(s.AnimationsEnabled)))
	b.WriteString(fmt.Sprintf("Hints       %s\n", onOff(s.HintsEnabled)))
	return RenderBox("Settings", b.String())
}
