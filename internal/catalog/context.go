package catalog

import (
	"fmt"
	"strings"
)

// ContextBlock renders the inventory the model is allowed to talk about.
// One block per book: identity, price, stock, rating, and up to
// reviewsPerItem of its most recent reviews. No ranking or filtering
// happens here; selection is left to the model, which is constrained to
// this block by the prompt policy.
func ContextBlock(books []Book, reviewsPerItem int) string {
	var b strings.Builder
	for _, book := range books {
		b.WriteString("Book Details:\n")
		fmt.Fprintf(&b, "- Title: %s\n", book.ProductName)
		fmt.Fprintf(&b, "- Category: %s\n", book.ProductCategory)
		fmt.Fprintf(&b, "- Price: $%.2f\n", book.Price)
		fmt.Fprintf(&b, "- Description: %s\n", book.Description)
		fmt.Fprintf(&b, "- Available: %d copies\n", book.AvailableItemCount)
		fmt.Fprintf(&b, "- Rating: %.1f/5 (%d ratings)\n", book.AverageRating, book.NoOfRatings)
		if len(book.Reviews) > 0 {
			b.WriteString("Recent Reviews:\n")
			reviews := book.Reviews
			if reviewsPerItem > 0 && len(reviews) > reviewsPerItem {
				reviews = reviews[:reviewsPerItem]
			}
			for _, r := range reviews {
				fmt.Fprintf(&b, "  * %s rated %d/5: %q\n", r.UserName, r.RatingValue, r.ReviewMessage)
			}
		}
		b.WriteString("---\n")
	}
	return b.String()
}
