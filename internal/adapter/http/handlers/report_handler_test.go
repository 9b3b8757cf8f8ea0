package handlers

import (
	"net/http"
	"testing"

	"settlement_console/internal/adapter/http/handlers/mocks"
	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestReportHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*mocks.MockIReportUseCase, *gin.Engine) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)
		r := gin.New()
		r.GET("/v1/dashboard", h.Dashboard)
		r.GET("/v1/reports", h.Reports)
		r.GET("/v1/technicians/:id/orders", h.TechnicianOrders)
		return uc, r
	}

	t.Run("dashboard", func(t *testing.T) {
		uc, r := build(t)
		uc.EXPECT().Dashboard(gomock.Any()).Return(usecase.Dashboard{
			TotalRevenue:       decimal.NewFromInt(350),
			PendingSettlements: 1,
			AvgCompletionRate:  95,
			OrderStatusCounts:  map[entities.OrderStatus]int{entities.OrderStatusPending: 2},
		})

		w := doJSON(r, http.MethodGet, "/v1/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["total_revenue"] != "350" || body["avg_completion_rate"] != 95.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("reports", func(t *testing.T) {
		uc, r := build(t)
		uc.EXPECT().Reports(gomock.Any()).Return(usecase.Reports{
			SettlementTotals: map[entities.SettlementCategory]decimal.Decimal{entities.SettlementCategory3C: decimal.NewFromInt(200)},
		})

		w := doJSON(r, http.MethodGet, "/v1/reports", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		totals, ok := body["settlement_totals"].([]any)
		if !ok || len(totals) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("technician orders not found", func(t *testing.T) {
		uc, r := build(t)
		uc.EXPECT().TechnicianOrders(gomock.Any(), "T999").Return(nil, usecase.ErrTechnicianNotFound)

		w := doJSON(r, http.MethodGet, "/v1/technicians/T999/orders", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
