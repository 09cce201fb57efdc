package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/domain"
)

// FormatTopics renders the fundamentals reading list with read markers.
func FormatTopics(topics []catalog.Topic, p domain.Progress) string {
	var b strings.Builder
	for _, topic := range topics {
		marker := Dim("○")
		title := StyleFg.Render(topic.Title)
		if p.HasReadFundamental(topic.ID) {
			marker = StyleGreen.Render("●")
			title = Dim(topic.Title)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", marker, title, Dim(topic.ID)))
	}
	return RenderBox("Fundamentals", b.String())
}

// FormatTopic renders one topic in full.
func FormatTopic(topic catalog.Topic) string {
	var b strings.Builder
	b.WriteString(Header(topic.Title) + "\n")
	b.WriteString(topic.Summary + "\n")
	return b.String()
}
