package response

import (
	"testing"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase"
	"settlement_console/internal/usecase/ingest"

	"github.com/shopspring/decimal"
)

func TestFromImportReport(t *testing.T) {
	r := ingest.Report{
		Kind:              ingest.KindKPI,
		Total:             2,
		Imported:          1,
		SkippedUnresolved: 1,
		Rows: []ingest.RowResult{
			{Line: 1, Outcome: ingest.OutcomeImported, RecordID: "K1"},
			{Line: 2, Outcome: ingest.OutcomeSkippedUnresolved, Reason: "unresolved technician"},
		},
	}

	res := FromImportReport(r)
	if res.Kind != "kpi" || res.Imported != 1 || res.Errors != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if len(res.Rows) != 2 || res.Rows[1].Outcome != "skipped_unresolved_reference" {
		t.Fatalf("unexpected rows: %+v", res.Rows)
	}
}

func TestFromDashboard(t *testing.T) {
	d := usecase.Dashboard{
		TotalRevenue:      decimal.NewFromInt(350),
		AvgCompletionRate: 95,
		OrderStatusCounts: map[entities.OrderStatus]int{entities.OrderStatusPending: 2},
	}

	res := FromDashboard(d)
	if res.OrderStatusCounts["Pending"] != 2 || res.AvgCompletionRate != 95 {
		t.Fatalf("unexpected dashboard: %+v", res)
	}
	if res.RecentOrders == nil {
		t.Fatalf("recent orders should never be nil")
	}
}

func TestFromReports_SortedSeries(t *testing.T) {
	r := usecase.Reports{
		SettlementTotals: map[entities.SettlementCategory]decimal.Decimal{
			entities.SettlementCategoryAppliance: decimal.NewFromInt(350),
			entities.SettlementCategory3C:        decimal.NewFromInt(200),
		},
		KPIs: []usecase.KPIRow{{KPIRecord: entities.KPIRecord{TechnicianID: "T001"}, TechnicianName: "张伟"}},
		OrderCounts: map[entities.OrderType]int{
			entities.OrderTypeRepair:       2,
			entities.OrderTypeInstallation: 1,
		},
	}

	res := FromReports(r)
	if res.SettlementTotals[0].Category != "3C" || res.SettlementTotals[1].Category != "Appliance" {
		t.Fatalf("unexpected settlement order: %+v", res.SettlementTotals)
	}
	if res.OrderCounts[0].Type != "Installation" || res.OrderCounts[1].Count != 2 {
		t.Fatalf("unexpected order counts: %+v", res.OrderCounts)
	}
	if res.KPIs[0].TechnicianName != "张伟" || res.KPIs[0].TechnicianID != "T001" {
		t.Fatalf("unexpected kpi rows: %+v", res.KPIs)
	}
}
