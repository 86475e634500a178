package models

import "time"

// PlatformNaver is the provenance tag for every record produced by the
// Naver Shopping client.
const PlatformNaver = "네이버쇼핑"

// Product is a single normalized search result. Prices are integers in
// won; titles are HTML-free.
type Product struct {
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Link     string `json:"link"`
	ImageURL string `json:"image"`
	MallName string `json:"mall_name"`
	Brand    string `json:"brand"`
	Maker    string `json:"maker"`
	Category string `json:"category"`
	Platform string `json:"platform"`
}

// PriceRecord is one persisted price observation for a tracked product.
type PriceRecord struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"product_name"`
	Platform    string    `json:"platform"`
	Price       int       `json:"price"`
	ProductLink string    `json:"product_link,omitempty"`
	MallName    string    `json:"mall_name,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// PriceAlert is a standing watch: fires while the current price for the
// keyword stays at or below the target.
type PriceAlert struct {
	ID          int64     `json:"id"`
	Keyword     string    `json:"keyword"`
	TargetPrice int       `json:"target_price"`
	Platform    string    `json:"platform"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// TrackedProduct marks a keyword/title pair registered for repeated
// price sampling.
type TrackedProduct struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"product_name"`
	Keyword     string    `json:"keyword"`
	CreatedAt   time.Time `json:"created_at"`
}
