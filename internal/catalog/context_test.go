package catalog

import (
	"strings"
	"testing"
)

func testBooks() []Book {
	return []Book{
		{
			ProductID:          "b1",
			ProductName:        "Dune",
			ProductCategory:    "Science Fiction",
			Price:              15,
			Description:        "Desert planet epic",
			AvailableItemCount: 4,
			AverageRating:      4.5,
			NoOfRatings:        120,
			Reviews: []Review{
				{UserName: "alice", RatingValue: 5, ReviewMessage: "loved it"},
				{UserName: "bob", RatingValue: 4, ReviewMessage: "great"},
				{UserName: "carol", RatingValue: 4, ReviewMessage: "good"},
				{UserName: "dave", RatingValue: 2, ReviewMessage: "meh"},
			},
		},
		{
			ProductID:          "b2",
			ProductName:        "Neuromancer",
			ProductCategory:    "Science Fiction",
			Price:              18,
			Description:        "Cyberpunk classic",
			AvailableItemCount: 2,
			AverageRating:      4.2,
			NoOfRatings:        80,
		},
	}
}

func TestContextBlockFields(t *testing.T) {
	block := ContextBlock(testBooks(), 3)

	for _, want := range []string{
		"- Title: Dune",
		"- Category: Science Fiction",
		"- Price: $15.00",
		"- Description: Desert planet epic",
		"- Available: 4 copies",
		"- Rating: 4.5/5 (120 ratings)",
		"- Title: Neuromancer",
		"- Price: $18.00",
	} {
		if !strings.Contains(block, want) {
			t.Fatalf("block missing %q:\n%s", want, block)
		}
	}
}

func TestContextBlockReviewTruncation(t *testing.T) {
	block := ContextBlock(testBooks(), 3)

	if !strings.Contains(block, `* alice rated 5/5: "loved it"`) {
		t.Fatalf("first review missing:\n%s", block)
	}
	if !strings.Contains(block, "carol") {
		t.Fatalf("third review missing:\n%s", block)
	}
	if strings.Contains(block, "dave") {
		t.Fatalf("fourth review should be truncated:\n%s", block)
	}
}

func TestContextBlockNoReviews(t *testing.T) {
	block := ContextBlock(testBooks()[1:], 3)
	if strings.Contains(block, "Recent Reviews") {
		t.Fatalf("review section should be omitted without reviews:\n%s", block)
	}
}

func TestContextBlockDeterministic(t *testing.T) {
	if ContextBlock(testBooks(), 3) != ContextBlock(testBooks(), 3) {
		t.Fatalf("context block is not deterministic")
	}
}
