package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/minseok-oh/price-tracker/internal/services/tracker"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// won renders integer prices with thousands separators for tool messages.
var won = message.NewPrinter(language.Korean)

// envelope is the structured success/failure shape every tool returns.
type envelope map[string]any

// result marshals an envelope into a text tool result.
func result(v envelope) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}

// failure converts any engine error into the failure envelope; tool
// callers never see a raw error.
func (s *Server) failure(ctx context.Context, opn string, err error, prefix string) (*mcp.CallToolResult, error) {
	s.log.ErrorContext(ctx, "Tool call failed", "op", opn, "error", err)

	return result(envelope{
		"success": false,
		"error":   err.Error(),
		"message": fmt.Sprintf("%s: %v", prefix, err),
	})
}

func (s *Server) handleSearchProduct(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const opn = "server.handleSearchProduct"

	keyword, err := req.RequireString("keyword")
	if err != nil {
		return s.failure(ctx, opn, err, "검색 실패")
	}
	count := req.GetInt("count", tracker.DefaultSearchCount)

	products, err := s.tracker.SearchProducts(ctx, keyword, count)
	if err != nil {
		return s.failure(ctx, opn, err, "검색 실패")
	}

	return result(envelope{
		"success":     true,
		"keyword":     keyword,
		"total_count": len(products),
		"products":    products,
		"message":     fmt.Sprintf("'%s' 검색 완료: %d개 상품 발견", keyword, len(products)),
	})
}

func (s *Server) handleComparePrices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const opn = "server.handleComparePrices"

	keyword, err := req.RequireString("keyword")
	if err != nil {
		return s.failure(ctx, opn, err, "가격 비교 실패")
	}

	comparison, err := s.tracker.ComparePrices(ctx, keyword)
	if err != nil {
		return s.failure(ctx, opn, err, "가격 비교 실패")
	}

	if comparison.TotalCount == 0 {
		return result(envelope{
			"success": false,
			"message": fmt.Sprintf("'%s' 상품을 찾을 수 없습니다.", keyword),
		})
	}

	return result(envelope{
		"success": true,
		"keyword": comparison.Keyword,
		"statistics": envelope{
			"total_count":   comparison.TotalCount,
			"lowest_price":  comparison.LowestPrice,
			"highest_price": comparison.HighestPrice,
			"average_price": comparison.AveragePrice,
		},
		"top_products": comparison.TopProducts,
		"message":      won.Sprintf("최저가: %d원 | 평균가: %d원", *comparison.LowestPrice, *comparison.AveragePrice),
	})
}

func (s *Server) handleSetPriceAlert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const opn = "server.handleSetPriceAlert"

	keyword, err := req.RequireString("keyword")
	if err != nil {
		return s.failure(ctx, opn, err, "알림 설정 실패")
	}
	targetPrice, err := req.RequireInt("target_price")
	if err != nil {
		return s.failure(ctx, opn, err, "알림 설정 실패")
	}

	alert, err := s.tracker.SetPriceAlert(ctx, keyword, targetPrice)
	if err != nil {
		return s.failure(ctx, opn, err, "알림 설정 실패")
	}

	return result(envelope{
		"success":      true,
		"alert_id":     alert.ID,
		"keyword":      alert.Keyword,
		"target_price": alert.TargetPrice,
		"message":      tracker.AlertMessage(alert.Keyword, alert.TargetPrice),
	})
}

func (s *Server) handleGetPriceHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const opn = "server.handleGetPriceHistory"

	keyword, err := req.RequireString("keyword")
	if err != nil {
		return s.failure(ctx, opn, err, "히스토리 조회 실패")
	}
	days := req.GetInt("days", tracker.DefaultHistoryDays)

	history, err := s.tracker.GetPriceHistory(ctx, keyword, days)
	if err != nil {
		return s.failure(ctx, opn, err, "히스토리 조회 실패")
	}

	if len(history) == 0 {
		return result(envelope{
			"success": false,
			"message": fmt.Sprintf("'%s'의 가격 히스토리가 없습니다.", keyword),
		})
	}

	return result(envelope{
		"success":       true,
		"keyword":       keyword,
		"period_days":   days,
		"total_records": len(history),
		"history":       history,
		"message":       fmt.Sprintf("%d일간 %d개 가격 기록 조회", days, len(history)),
	})
}

func (s *Server) handleTrackProduct(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const opn = "server.handleTrackProduct"

	keyword, err := req.RequireString("keyword")
	if err != nil {
		return s.failure(ctx, opn, err, "추적 시작 실패")
	}

	track, err := s.tracker.TrackProduct(ctx, keyword)
	if err != nil {
		// Nothing matched: a defined outcome, not a tool failure envelope
		// with an error field.
		if errors.Is(err, tracker.ErrNoResults) {
			return result(envelope{
				"success": false,
				"message": fmt.Sprintf("'%s' 상품을 찾을 수 없습니다.", keyword),
			})
		}
		return s.failure(ctx, opn, err, "추적 시작 실패")
	}

	return result(envelope{
		"success":  true,
		"track_id": track.TrackID,
		"product":  track.Product,
		"message":  fmt.Sprintf("'%s' 상품 추적을 시작했습니다.", keyword),
	})
}

func (s *Server) handleListTrackedProducts(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const opn = "server.handleListTrackedProducts"

	products, err := s.tracker.ListTrackedProducts(ctx)
	if err != nil {
		return s.failure(ctx, opn, err, "목록 조회 실패")
	}

	return result(envelope{
		"success":          true,
		"total_count":      len(products),
		"tracked_products": products,
		"message":          fmt.Sprintf("%d개 상품 추적 중", len(products)),
	})
}

func (s *Server) handleGetBestDeals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const opn = "server.handleGetBestDeals"

	limit := req.GetInt("limit", 10)

	deals, err := s.tracker.GetBestDeals(ctx, limit)
	if err != nil {
		return s.failure(ctx, opn, err, "베스트 딜 조회 실패")
	}

	return result(envelope{
		"success":     true,
		"total_count": len(deals),
		"best_deals":  deals,
		"message":     fmt.Sprintf("%d개 베스트 딜 추천", len(deals)),
	})
}

func (s *Server) handleCheckPriceAlerts(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const opn = "server.handleCheckPriceAlerts"

	triggered, err := s.tracker.CheckPriceAlerts(ctx)
	if err != nil {
		return s.failure(ctx, opn, err, "알림 확인 실패")
	}

	return result(envelope{
		"success":          true,
		"total_count":      len(triggered),
		"triggered_alerts": triggered,
		"message":          fmt.Sprintf("알림 확인 완료: %d건 트리거", len(triggered)),
	})
}
