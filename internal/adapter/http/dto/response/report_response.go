package response

import (
	"sort"

	"settlement_console/internal/usecase"
	"settlement_console/internal/usecase/ingest"

	"github.com/shopspring/decimal"
)

type RowResultResponse struct {
	Line     int    `json:"line" example:"2"`
	Outcome  string `json:"outcome" example:"imported"`
	RecordID string `json:"record_id,omitempty" example:"O01HF..."`
	Reason   string `json:"reason,omitempty"`
}

// ImportReportResponse is what the import screen shows after a batch:
// the imported count, the unresolved-technician error count and the
// per-row breakdown.
type ImportReportResponse struct {
	Kind              string              `json:"kind" example:"order"`
	Total             int                 `json:"total" example:"3"`
	Imported          int                 `json:"imported" example:"2"`
	SkippedHeader     int                 `json:"skipped_header" example:"1"`
	SkippedInvalid    int                 `json:"skipped_invalid" example:"0"`
	SkippedUnresolved int                 `json:"skipped_unresolved" example:"0"`
	Errors            int                 `json:"errors" example:"0"`
	Rows              []RowResultResponse `json:"rows"`
}

func FromImportReport(r ingest.Report) ImportReportResponse {
	rows := make([]RowResultResponse, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, RowResultResponse{
			Line:     row.Line,
			Outcome:  string(row.Outcome),
			RecordID: row.RecordID,
			Reason:   row.Reason,
		})
	}
	return ImportReportResponse{
		Kind:              string(r.Kind),
		Total:             r.Total,
		Imported:          r.Imported,
		SkippedHeader:     r.SkippedHeader,
		SkippedInvalid:    r.SkippedInvalid,
		SkippedUnresolved: r.SkippedUnresolved,
		Errors:            r.ErrorCount(),
		Rows:              rows,
	}
}

type DashboardResponse struct {
	TotalRevenue       decimal.Decimal `json:"total_revenue" swaggertype:"string" example:"350"`
	PendingSettlements int             `json:"pending_settlements" example:"1"`
	AvgCompletionRate  int             `json:"avg_completion_rate" example:"95"`
	OrderStatusCounts  map[string]int  `json:"order_status_counts"`
	PartSalesCount     int             `json:"part_sales_count" example:"2"`
	RecentOrders       []OrderResponse `json:"recent_orders"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	counts := make(map[string]int, len(d.OrderStatusCounts))
	for k, v := range d.OrderStatusCounts {
		counts[string(k)] = v
	}
	return DashboardResponse{
		TotalRevenue:       d.TotalRevenue,
		PendingSettlements: d.PendingSettlements,
		AvgCompletionRate:  d.AvgCompletionRate,
		OrderStatusCounts:  counts,
		PartSalesCount:     d.PartSalesCount,
		RecentOrders:       FromOrders(d.RecentOrders),
	}
}

type CategoryTotalResponse struct {
	Category string          `json:"category" example:"3C"`
	Total    decimal.Decimal `json:"total" swaggertype:"string" example:"200"`
}

type KPIRowResponse struct {
	KPIResponse
	TechnicianName string `json:"technician_name" example:"张伟"`
}

type TypeCountResponse struct {
	Type  string `json:"type" example:"Repair"`
	Count int    `json:"count" example:"2"`
}

type ReportsResponse struct {
	SettlementTotals []CategoryTotalResponse `json:"settlement_totals"`
	KPIs             []KPIRowResponse        `json:"kpis"`
	OrderCounts      []TypeCountResponse     `json:"order_counts"`
}

// FromReports flattens the aggregate maps into lists sorted by key so the
// chart series come out in a stable order.
func FromReports(r usecase.Reports) ReportsResponse {
	out := ReportsResponse{
		SettlementTotals: make([]CategoryTotalResponse, 0, len(r.SettlementTotals)),
		KPIs:             make([]KPIRowResponse, 0, len(r.KPIs)),
		OrderCounts:      make([]TypeCountResponse, 0, len(r.OrderCounts)),
	}
	for c, total := range r.SettlementTotals {
		out.SettlementTotals = append(out.SettlementTotals, CategoryTotalResponse{Category: string(c), Total: total})
	}
	sort.Slice(out.SettlementTotals, func(i, j int) bool {
		return out.SettlementTotals[i].Category < out.SettlementTotals[j].Category
	})
	for _, k := range r.KPIs {
		out.KPIs = append(out.KPIs, KPIRowResponse{KPIResponse: FromKPI(k.KPIRecord), TechnicianName: k.TechnicianName})
	}
	for t, n := range r.OrderCounts {
		out.OrderCounts = append(out.OrderCounts, TypeCountResponse{Type: string(t), Count: n})
	}
	sort.Slice(out.OrderCounts, func(i, j int) bool {
		return out.OrderCounts[i].Type < out.OrderCounts[j].Type
	})
	return out
}
