package models

// Comparison is the result of a price comparison over one keyword.
// With TotalCount == 0 the statistics fields are nil: "nothing found"
// is a defined shape, not an error.
type Comparison struct {
	Keyword      string    `json:"keyword"`
	TotalCount   int       `json:"total_count"`
	LowestPrice  *int      `json:"lowest_price"`
	HighestPrice *int      `json:"highest_price"`
	AveragePrice *int      `json:"average_price"`
	TopProducts  []Product `json:"top_products"`
}

// Deal is one best-deals entry: a keyword whose price floor sits low
// relative to its typical price.
type Deal struct {
	Keyword      string   `json:"keyword"`
	LowestPrice  int      `json:"lowest_price"`
	AveragePrice int      `json:"average_price"`
	ProductCount int      `json:"product_count"`
	BestProduct  *Product `json:"best_product"`
}

// TriggeredAlert pairs an alert whose condition holds with the product
// that satisfied it.
type TriggeredAlert struct {
	AlertID      int64   `json:"alert_id"`
	Keyword      string  `json:"keyword"`
	TargetPrice  int     `json:"target_price"`
	CurrentPrice int     `json:"current_price"`
	Product      Product `json:"product"`
	Message      string  `json:"message"`
}

// TrackResult reports the outcome of a track-product registration.
type TrackResult struct {
	TrackID int64   `json:"track_id"`
	Product Product `json:"product"`
}
