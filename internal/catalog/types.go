package catalog

// Book mirrors the catalog service product payload. A snapshot of books is
// fetched once per assistant session and is not reactive to inventory
// changes made afterwards.
type Book struct {
	ProductID          string  `json:"productId"`
	ProductName        string  `json:"productName"`
	ProductCategory    string  `json:"productCategory"`
	Price              float64 `json:"price"`
	Description        string  `json:"description"`
	AvailableItemCount int     `json:"availableItemCount"`
	AverageRating      float64 `json:"averageRating"`
	NoOfRatings        int     `json:"noOfRatings"`
	ImageID            string  `json:"imageId,omitempty"`

	// Reviews holds the most recent reviews for the book, newest first.
	// Empty when the review fetch failed (per-item degradation).
	Reviews []Review `json:"reviews,omitempty"`
}

type Review struct {
	UserName      string `json:"userName"`
	RatingValue   int    `json:"ratingValue"`
	ReviewMessage string `json:"reviewMessage"`
}
