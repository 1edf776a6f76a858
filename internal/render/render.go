// Package render converts the model's lightly marked-up reply into a
// structured document: paragraphs, emphasis spans, and grouped lists.
// The transformation is total; input that carries no markers comes out as
// a single paragraph with the text unchanged.
package render

import (
	"regexp"
	"strings"
)

type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleItalic
)

type Span struct {
	Style Style
	Text  string
}

// Line is one visual line; adjacent lines within a paragraph are
// separated by a line break, not a paragraph boundary.
type Line []Span

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockList
)

// Block is either a paragraph of lines or a list whose every Line is one
// item.
type Block struct {
	Kind  BlockKind
	Lines []Line
}

type Document []Block

var (
	boldRe    = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
	italicRe  = regexp.MustCompile(`\*([^*\n]+)\*|_([^_\n]+)_`)
	listRe    = regexp.MustCompile(`^\s*(?:[-*•]|\d+\.)\s+(.*)$`)
	headingRe = regexp.MustCompile(`^\s*#{1,3}\s+(.*)$`)
)

// Render parses text into a Document. Rules are applied in a fixed order,
// each scoped so it cannot re-trigger on another rule's output: bold
// before italic, line classification before inline styles, blank lines as
// paragraph boundaries.
func Render(text string) Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var doc Document
	for _, raw := range splitBlocks(text) {
		doc = append(doc, parseBlock(raw)...)
	}
	if len(doc) == 0 {
		doc = Document{{Kind: BlockParagraph, Lines: []Line{{Span{Text: text}}}}}
	}
	return doc
}

// splitBlocks cuts the text at blank lines.
func splitBlocks(text string) []string {
	var blocks []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}

// parseBlock classifies each line of one blank-line-delimited chunk.
// Consecutive list items group into a single list block; everything else
// stays in the surrounding paragraph.
func parseBlock(raw string) []Block {
	var out []Block
	var para []Line
	var list []Line

	flushPara := func() {
		if len(para) > 0 {
			out = append(out, Block{Kind: BlockParagraph, Lines: para})
			para = nil
		}
	}
	flushList := func() {
		if len(list) > 0 {
			out = append(out, Block{Kind: BlockList, Lines: list})
			list = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		if m := listRe.FindStringSubmatch(line); m != nil {
			flushPara()
			list = append(list, parseSpans(m[1]))
			continue
		}
		flushList()
		if m := headingRe.FindStringSubmatch(line); m != nil {
			para = append(para, boldLine(m[1]))
			continue
		}
		para = append(para, parseSpans(line))
	}
	flushPara()
	flushList()
	return out
}

// parseSpans applies the inline rules: bold markers first, then italic on
// what is left between them.
func parseSpans(s string) Line {
	var line Line
	last := 0
	for _, loc := range boldRe.FindAllStringSubmatchIndex(s, -1) {
		line = append(line, italicSpans(s[last:loc[0]])...)
		inner := submatch(s, loc)
		line = append(line, Span{Style: StyleBold, Text: inner})
		last = loc[1]
	}
	line = append(line, italicSpans(s[last:])...)
	if len(line) == 0 {
		line = Line{Span{Text: ""}}
	}
	return line
}

func italicSpans(s string) []Span {
	if s == "" {
		return nil
	}
	var spans []Span
	last := 0
	for _, loc := range italicRe.FindAllStringSubmatchIndex(s, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Text: s[last:loc[0]]})
		}
		spans = append(spans, Span{Style: StyleItalic, Text: submatch(s, loc)})
		last = loc[1]
	}
	if last < len(s) {
		spans = append(spans, Span{Text: s[last:]})
	}
	return spans
}

// submatch picks whichever alternative capture group matched.
func submatch(s string, loc []int) string {
	for g := 1; g*2 < len(loc); g++ {
		if loc[g*2] >= 0 {
			return s[loc[g*2]:loc[g*2+1]]
		}
	}
	return ""
}

func boldLine(s string) Line {
	line := parseSpans(s)
	for i := range line {
		line[i].Style = StyleBold
	}
	return line
}

// PlainText flattens a document back to readable text, used where a
// styled surface is unavailable.
func (d Document) PlainText() string {
	var b strings.Builder
	for i, block := range d {
		if i > 0 {
			b.WriteString("\n\n")
		}
		for j, line := range block.Lines {
			if j > 0 {
				b.WriteString("\n")
			}
			if block.Kind == BlockList {
				b.WriteString("• ")
			}
			for _, sp := range line {
				b.WriteString(sp.Text)
			}
		}
	}
	return b.String()
}
