package server

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/minseok-oh/price-tracker/internal/models"
)

// PriceTracker is the engine surface exposed as remote-callable tools.
type PriceTracker interface {
	SearchProducts(ctx context.Context, keyword string, count int) ([]models.Product, error)
	ComparePrices(ctx context.Context, keyword string) (*models.Comparison, error)
	SetPriceAlert(ctx context.Context, keyword string, targetPrice int) (*models.PriceAlert, error)
	GetPriceHistory(ctx context.Context, keyword string, days int) ([]models.PriceRecord, error)
	TrackProduct(ctx context.Context, keyword string) (*models.TrackResult, error)
	ListTrackedProducts(ctx context.Context) ([]models.TrackedProduct, error)
	GetBestDeals(ctx context.Context, limit int) ([]models.Deal, error)
	CheckPriceAlerts(ctx context.Context) ([]models.TriggeredAlert, error)
}

// Server registers the price-tracker tools on an MCP server and serves
// them over stdio or SSE.
type Server struct {
	log     *slog.Logger
	tracker PriceTracker
	mcp     *mcpserver.MCPServer
	sse     *mcpserver.SSEServer
}

// New creates the tool server and registers every tool.
func New(log *slog.Logger, tracker PriceTracker) *Server {
	srv := &Server{
		log:     log,
		tracker: tracker,
		mcp: mcpserver.NewMCPServer(
			"Price Tracker - 네이버쇼핑",
			"2.0.0",
			mcpserver.WithToolCapabilities(false),
		),
	}

	srv.registerTools()

	return srv
}

// registerTools configures all remote-callable tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("search_product",
		mcp.WithDescription("Search Naver Shopping for products by keyword"),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("product keyword, e.g. 무선이어폰")),
		mcp.WithNumber("count", mcp.DefaultNumber(10), mcp.Description("number of results, upstream max 100")),
	), s.handleSearchProduct)

	s.mcp.AddTool(mcp.NewTool("compare_prices",
		mcp.WithDescription("Compare prices for a keyword: lowest, highest, average and the 10 cheapest products"),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("product keyword")),
	), s.handleComparePrices)

	s.mcp.AddTool(mcp.NewTool("set_price_alert",
		mcp.WithDescription("Set a price alert that fires when the keyword's current price is at or below the target"),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("product keyword")),
		mcp.WithNumber("target_price", mcp.Required(), mcp.Description("target price in won")),
	), s.handleSetPriceAlert)

	s.mcp.AddTool(mcp.NewTool("get_price_history",
		mcp.WithDescription("Get recorded price history for a keyword"),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("product keyword")),
		mcp.WithNumber("days", mcp.DefaultNumber(30), mcp.Description("lookback window in days")),
	), s.handleGetPriceHistory)

	s.mcp.AddTool(mcp.NewTool("track_product",
		mcp.WithDescription("Start tracking the best match for a keyword and record its current price"),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("product keyword")),
	), s.handleTrackProduct)

	s.mcp.AddTool(mcp.NewTool("list_tracked_products",
		mcp.WithDescription("List all tracked products"),
	), s.handleListTrackedProducts)

	s.mcp.AddTool(mcp.NewTool("get_best_deals",
		mcp.WithDescription("Recommend keywords whose lowest price sits well below the typical price"),
		mcp.WithNumber("limit", mcp.DefaultNumber(10), mcp.Description("number of candidate keywords scanned and deals returned")),
	), s.handleGetBestDeals)

	s.mcp.AddTool(mcp.NewTool("check_price_alerts",
		mcp.WithDescription("Re-check every active alert against live prices and return the triggered ones"),
	), s.handleCheckPriceAlerts)
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.log.Info("Tool server is starting on stdio")
	return mcpserver.ServeStdio(s.mcp)
}

// ServeSSE serves the tools over SSE on addr until Stop is called.
func (s *Server) ServeSSE(addr string) error {
	s.log.Info("Tool server is starting on SSE", "addr", addr)
	s.sse = mcpserver.NewSSEServer(s.mcp)
	return s.sse.Start(addr)
}

// Stop gracefully shuts the SSE listener down. A stdio session ends with
// its client instead.
func (s *Server) Stop(ctx context.Context) {
	if s.sse != nil {
		if err := s.sse.Shutdown(ctx); err != nil {
			s.log.Error("failed to shut down SSE server", "error", err)
		}
	}
	s.log.Info("Tool server is stopped")
}
