package telegram

import (
	"html"
	"strings"

	"bookbot/internal/render"
)

// formatHTML turns assistant text into Telegram HTML via the structured
// renderer: bold/italic spans become tags, list items get bullet
// prefixes, paragraphs are separated by blank lines.
func formatHTML(text string) string {
	var b strings.Builder
	for i, block := range render.Render(text) {
		if i > 0 {
			b.WriteString("\n\n")
		}
		for j, line := range block.Lines {
			if j > 0 {
				b.WriteString("\n")
			}
			if block.Kind == render.BlockList {
				b.WriteString("• ")
			}
			for _, sp := range line {
				writeSpan(&b, sp)
			}
		}
	}
	return b.String()
}

func writeSpan(b *strings.Builder, sp render.Span) {
	escaped := html.EscapeString(sp.Text)
	switch sp.Style {
	case render.StyleBold:
		b.WriteString("<b>" + escaped + "</b>")
	case render.StyleItalic:
		b.WriteString("<i>" + escaped + "</i>")
	default:
		b.WriteString(escaped)
	}
}
