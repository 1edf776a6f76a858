// Package fallback produces a local reply when the model provider fails,
// so the user always gets a useful message instead of a raw error.
package fallback

import (
	"fmt"
	"strings"

	"bookbot/internal/catalog"
	"bookbot/internal/llm"
)

const maxSuggestions = 3

// Reply picks a canned message for the failure kind. For an outage hit by
// a book-flavored question it recommends a few titles straight from the
// catalog snapshot; no network is touched and the same inputs always give
// the same reply.
func Reply(kind llm.FailureKind, books []catalog.Book, lastUserText string) string {
	switch kind {
	case llm.FailureRateLimited:
		return "Sorry, I'm getting too many requests right now. Please try again in a few minutes."
	case llm.FailureUnauthorized:
		return "Sorry, there was an authentication problem on our side. Please contact support if this keeps happening."
	case llm.FailureBadRequest:
		return "Sorry, I couldn't process that request. Please try rephrasing your question."
	}

	text := strings.ToLower(lastUserText)
	switch {
	case strings.Contains(text, "order"):
		return "Sorry, I'm having technical difficulties. To check your orders you can:\n\n" +
			"1. Open your profile page to see order history\n" +
			"2. Contact support at support@bookstore.com\n\n" +
			"Thank you for your patience!"
	case strings.Contains(text, "book") || strings.Contains(text, "read") || strings.Contains(text, "recommend"):
		if picks := suggest(books); picks != "" {
			return "Sorry, the assistant is temporarily unavailable. Here are some highlights from our inventory:\n\n" +
				picks + "\n\nYou can browse the full catalog on the home page."
		}
	}
	return "Sorry, I'm having trouble connecting right now. Please:\n\n" +
		"1. Try again in a few minutes\n" +
		"2. Browse the catalog directly on the website\n" +
		"3. Contact support at support@bookstore.com"
}

func suggest(books []catalog.Book) string {
	if len(books) > maxSuggestions {
		books = books[:maxSuggestions]
	}
	var lines []string
	for _, b := range books {
		lines = append(lines, fmt.Sprintf("- **%s** — $%.2f, rated %.1f/5", b.ProductName, b.Price, b.AverageRating))
	}
	return strings.Join(lines, "\n")
}
