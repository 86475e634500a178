package naver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/minseok-oh/price-tracker/internal/models"
)

// BaseURL is the Naver Shopping search endpoint.
const BaseURL = "https://openapi.naver.com/v1/search/shop.json"

var ErrEmptyKeyword = errors.New("search keyword must not be empty")

// SortMode selects the upstream result ordering.
type SortMode string

const (
	SortSimilarity SortMode = "sim"  // relevance to the keyword
	SortDate       SortMode = "date" // most recent first
	SortPriceAsc   SortMode = "asc"  // cheapest first
	SortPriceDesc  SortMode = "dsc"  // most expensive first
)

// Client is a Naver Shopping search API client. Credentials travel in
// request headers; the display/start limits are enforced upstream, not here.
type Client struct {
	log  *slog.Logger
	http *resty.Client
}

// NewClient creates a Client authenticated with the given credential pair.
func NewClient(log *slog.Logger, clientID, clientSecret string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeaders(map[string]string{
		"X-Naver-Client-Id":     clientID,
		"X-Naver-Client-Secret": clientSecret,
	})

	return &Client{log: log, http: client}
}

// searchResponse mirrors the fields consumed from the upstream payload.
type searchResponse struct {
	Total int          `json:"total"`
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Image     string `json:"image"`
	Lprice    string `json:"lprice"`
	MallName  string `json:"mallName"`
	Brand     string `json:"brand"`
	Maker     string `json:"maker"`
	Category1 string `json:"category1"`
}

// Search queries Naver Shopping and normalizes every item into a
// models.Product. A failed call returns a nil slice and an error; a
// successful call with no matches returns an empty slice and no error,
// so the two outcomes stay distinguishable for the caller.
func (c *Client) Search(ctx context.Context, keyword string, display int, sort SortMode) ([]models.Product, error) {
	const opn = "naver.Search"

	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%s: %w", opn, ErrEmptyKeyword)
	}

	c.log.DebugContext(ctx, "Searching naver shopping", "op", opn, "keyword", keyword, "display", display, "sort", sort)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":   keyword,
			"display": strconv.Itoa(display),
			"start":   "1",
			"sort":    string(sort),
		}).
		Get(BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to request naver shopping api: %w", opn, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%s: status code error: [%d] %s", opn, resp.StatusCode(), resp.Status())
	}

	var payload searchResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response body: %w", opn, err)
	}

	products := make([]models.Product, 0, len(payload.Items))
	for _, item := range payload.Items {
		products = append(products, models.Product{
			Title:    stripTags(item.Title),
			Price:    parsePrice(item.Lprice),
			Link:     item.Link,
			ImageURL: item.Image,
			MallName: item.MallName,
			Brand:    item.Brand,
			Maker:    item.Maker,
			Category: item.Category1,
			Platform: models.PlatformNaver,
		})
	}

	c.log.InfoContext(ctx, "Naver search completed", "op", opn, "keyword", keyword, "count", len(products))

	return products, nil
}

// stripTags removes every HTML tag from s and decodes entities. Titles
// arrive with <b> highlighting around the matched keyword.
func stripTags(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	return doc.Text()
}

// parsePrice converts the upstream price text to won. Unparseable input
// becomes 0; the upstream omits the field for unlisted prices.
func parsePrice(s string) int {
	price, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || price < 0 {
		return 0
	}

	return price
}
