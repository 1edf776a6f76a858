package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Fetcher abstracts the gateway reads so the snapshot can be exercised
// without a live gateway.
type Fetcher interface {
	Products(ctx context.Context) ([]Book, error)
	Reviews(ctx context.Context, productID string) ([]Review, error)
}

// Snapshot holds the catalog view handed to assistant sessions: the book
// list with reviews attached, plus the pre-built context block. Refresh
// replaces the whole view atomically; sessions started before a refresh
// keep composing against the block they were given.
type Snapshot struct {
	fetcher        Fetcher
	reviewsPerItem int

	mu    sync.RWMutex
	books []Book
	block string
}

func NewSnapshot(f Fetcher, reviewsPerItem int) *Snapshot {
	return &Snapshot{fetcher: f, reviewsPerItem: reviewsPerItem}
}

// Refresh fetches all products, then their reviews concurrently. A failed
// review fetch degrades that single book to an empty review list; it never
// fails the refresh.
func (s *Snapshot) Refresh(ctx context.Context) error {
	books, err := s.fetcher.Products(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}

	var wg sync.WaitGroup
	for i := range books {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reviews, err := s.fetcher.Reviews(ctx, books[i].ProductID)
			if err != nil {
				log.Printf("reviews unavailable for %s: %v", books[i].ProductID, err)
				books[i].Reviews = nil
				return
			}
			books[i].Reviews = reviews
		}(i)
	}
	wg.Wait()

	block := ContextBlock(books, s.reviewsPerItem)

	s.mu.Lock()
	s.books = books
	s.block = block
	s.mu.Unlock()
	return nil
}

func (s *Snapshot) Books() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *Snapshot) Block() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.block
}
