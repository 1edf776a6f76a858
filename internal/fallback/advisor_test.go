package fallback

import (
	"strings"
	"testing"

	"bookbot/internal/catalog"
	"bookbot/internal/llm"
)

func books() []catalog.Book {
	return []catalog.Book{
		{ProductName: "Dune", Price: 15, AverageRating: 4.5},
		{ProductName: "Neuromancer", Price: 18, AverageRating: 4.2},
		{ProductName: "Hyperion", Price: 12, AverageRating: 4.4},
		{ProductName: "Foundation", Price: 10, AverageRating: 4.6},
	}
}

func TestReplyDistinctPerKind(t *testing.T) {
	kinds := []llm.FailureKind{
		llm.FailureRateLimited,
		llm.FailureUnauthorized,
		llm.FailureBadRequest,
		llm.FailureUnavailable,
	}
	seen := map[string]llm.FailureKind{}
	for _, k := range kinds {
		msg := Reply(k, books(), "hello")
		if strings.TrimSpace(msg) == "" {
			t.Fatalf("kind %s produced empty reply", k)
		}
		if prev, dup := seen[msg]; dup {
			t.Fatalf("kinds %s and %s share the same reply", prev, k)
		}
		seen[msg] = k
	}
}

func TestReplyBookSuggestions(t *testing.T) {
	msg := Reply(llm.FailureUnavailable, books(), "Can you recommend a good book?")
	if !strings.Contains(msg, "Dune") || !strings.Contains(msg, "$15.00") {
		t.Fatalf("suggestions should come from the catalog: %s", msg)
	}
	if strings.Contains(msg, "Foundation") {
		t.Fatalf("suggestions must stop at three items: %s", msg)
	}
}

func TestReplyOrderQuery(t *testing.T) {
	msg := Reply(llm.FailureUnavailable, books(), "Where is my order?")
	if !strings.Contains(msg, "profile") {
		t.Fatalf("order outage reply should point at the profile page: %s", msg)
	}
	if strings.Contains(msg, "Dune") {
		t.Fatalf("order queries should not get book suggestions: %s", msg)
	}
}

func TestReplyEmptyCatalog(t *testing.T) {
	msg := Reply(llm.FailureUnavailable, nil, "any books?")
	if strings.TrimSpace(msg) == "" {
		t.Fatalf("reply must be non-empty even without a catalog")
	}
}

func TestReplyDeterministic(t *testing.T) {
	a := Reply(llm.FailureUnavailable, books(), "recommend something")
	b := Reply(llm.FailureUnavailable, books(), "recommend something")
	if a != b {
		t.Fatalf("fallback reply is not deterministic")
	}
}
