package render

import (
	"reflect"
	"testing"
)

func TestRenderPlainText(t *testing.T) {
	doc := Render("just a plain sentence")
	want := Document{{Kind: BlockParagraph, Lines: []Line{{Span{Text: "just a plain sentence"}}}}}
	if !reflect.DeepEqual(doc, want) {
		t.Fatalf("plain text should become one unchanged paragraph: %+v", doc)
	}
}

func TestRenderBoldAndItalic(t *testing.T) {
	doc := Render("**Dune** is a *classic*, and __so__ is _this_")
	if len(doc) != 1 || doc[0].Kind != BlockParagraph {
		t.Fatalf("want one paragraph, got %+v", doc)
	}
	line := doc[0].Lines[0]
	want := Line{
		Span{Style: StyleBold, Text: "Dune"},
		Span{Text: " is a "},
		Span{Style: StyleItalic, Text: "classic"},
		Span{Text: ", and "},
		Span{Style: StyleBold, Text: "so"},
		Span{Text: " is "},
		Span{Style: StyleItalic, Text: "this"},
	}
	if !reflect.DeepEqual(line, want) {
		t.Fatalf("span mismatch:\n got %+v\nwant %+v", line, want)
	}
}

func TestRenderListGrouping(t *testing.T) {
	doc := Render("Top picks:\n- Dune\n* Neuromancer\n• Hyperion\n1. Foundation\nThat's all.")
	if len(doc) != 3 {
		t.Fatalf("want paragraph, list, paragraph; got %d blocks: %+v", len(doc), doc)
	}
	if doc[0].Kind != BlockParagraph || doc[1].Kind != BlockList || doc[2].Kind != BlockParagraph {
		t.Fatalf("block kinds wrong: %+v", doc)
	}
	if len(doc[1].Lines) != 4 {
		t.Fatalf("all four markers should land in one list, got %d items", len(doc[1].Lines))
	}
	if doc[1].Lines[0][0].Text != "Dune" || doc[1].Lines[3][0].Text != "Foundation" {
		t.Fatalf("list item text wrong: %+v", doc[1].Lines)
	}
}

func TestRenderHeading(t *testing.T) {
	doc := Render("## Recommendations\nTwo good options below.")
	if len(doc) != 1 {
		t.Fatalf("want single paragraph block, got %+v", doc)
	}
	head := doc[0].Lines[0]
	for _, sp := range head {
		if sp.Style != StyleBold {
			t.Fatalf("heading line should be fully bold: %+v", head)
		}
	}
	if head[0].Text != "Recommendations" {
		t.Fatalf("heading text wrong: %+v", head)
	}
}

func TestRenderParagraphSplit(t *testing.T) {
	doc := Render("first paragraph\nstill first\n\nsecond paragraph")
	if len(doc) != 2 {
		t.Fatalf("blank line should split paragraphs, got %d blocks", len(doc))
	}
	if len(doc[0].Lines) != 2 {
		t.Fatalf("single newline should stay inside the paragraph: %+v", doc[0])
	}
}

func TestRenderTotalOnEmpty(t *testing.T) {
	doc := Render("")
	if len(doc) != 1 || doc[0].Kind != BlockParagraph {
		t.Fatalf("empty input should still yield a paragraph: %+v", doc)
	}
}

func TestRenderItalicNotTriggeredByListMarker(t *testing.T) {
	doc := Render("* spaced item")
	if doc[0].Kind != BlockList {
		t.Fatalf("star with trailing space is a list marker: %+v", doc)
	}
}

func TestPlainTextRoundTrip(t *testing.T) {
	doc := Render("hello\n\n- a\n- b")
	got := doc.PlainText()
	want := "hello\n\n• a\n• b"
	if got != want {
		t.Fatalf("plain text render mismatch: %q != %q", got, want)
	}
}
