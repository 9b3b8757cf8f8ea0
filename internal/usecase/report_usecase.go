//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/report_usecase_mock.go -package=mocks
package usecase

import (
	"context"
	"math"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const recentLimit = 5

// Dashboard is the landing-page overview.
type Dashboard struct {
	TotalRevenue       decimal.Decimal
	PendingSettlements int
	AvgCompletionRate  int
	OrderStatusCounts  map[entities.OrderStatus]int
	PartSalesCount     int
	RecentOrders       []entities.Order
}

// KPIRow is a KPI record joined with its technician's display name.
type KPIRow struct {
	entities.KPIRecord
	TechnicianName string
}

// Reports holds the aggregates behind the report charts.
type Reports struct {
	SettlementTotals map[entities.SettlementCategory]decimal.Decimal
	KPIs             []KPIRow
	OrderCounts      map[entities.OrderType]int
}

type IReportUseCase interface {
	Dashboard(ctx context.Context) Dashboard
	Reports(ctx context.Context) Reports
	TechnicianOrders(ctx context.Context, technicianID string) ([]entities.Order, error)
}

type ReportUseCase struct {
	store interfaces.IDomainStore
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store interfaces.IDomainStore) *ReportUseCase {
	return &ReportUseCase{store: store}
}

func (u *ReportUseCase) Dashboard(ctx context.Context) Dashboard {
	return BuildDashboard(u.store.Snapshot())
}

func (u *ReportUseCase) Reports(ctx context.Context) Reports {
	return BuildReports(u.store.Snapshot())
}

func (u *ReportUseCase) TechnicianOrders(ctx context.Context, technicianID string) ([]entities.Order, error) {
	snap := u.store.Snapshot()
	if _, ok := snap.FindTechnician(technicianID); !ok {
		return nil, ErrTechnicianNotFound
	}
	out := make([]entities.Order, 0)
	for _, o := range snap.Orders {
		if o.TechnicianID == technicianID {
			out = append(out, o)
		}
	}
	return out, nil
}

// BuildDashboard computes the overview figures. Revenue only counts approved
// settlements; the completion average is rounded to a whole percent.
func BuildDashboard(s entities.Snapshot) Dashboard {
	d := Dashboard{
		TotalRevenue: decimal.Zero,
		OrderStatusCounts: map[entities.OrderStatus]int{
			entities.OrderStatusPending:   0,
			entities.OrderStatusCompleted: 0,
			entities.OrderStatusCancelled: 0,
		},
		PartSalesCount: len(s.PartSales),
	}
	for _, st := range s.Settlements {
		switch st.Status {
		case entities.SettlementStatusApproved:
			d.TotalRevenue = d.TotalRevenue.Add(st.Amount)
		case entities.SettlementStatusPending:
			d.PendingSettlements++
		}
	}
	if len(s.KPIs) > 0 {
		var sum float64
		for _, k := range s.KPIs {
			sum += k.CompletionRate
		}
		d.AvgCompletionRate = int(math.Round(sum / float64(len(s.KPIs))))
	}
	for _, o := range s.Orders {
		d.OrderStatusCounts[o.Status]++
	}
	d.RecentOrders = append([]entities.Order(nil), s.Orders[:min(recentLimit, len(s.Orders))]...)
	return d
}

func BuildReports(s entities.Snapshot) Reports {
	r := Reports{
		SettlementTotals: map[entities.SettlementCategory]decimal.Decimal{
			entities.SettlementCategory3C:        decimal.Zero,
			entities.SettlementCategoryAppliance: decimal.Zero,
		},
		KPIs: make([]KPIRow, 0, len(s.KPIs)),
		OrderCounts: map[entities.OrderType]int{
			entities.OrderTypeInstallation: 0,
			entities.OrderTypeRepair:       0,
		},
	}
	for _, st := range s.Settlements {
		r.SettlementTotals[st.Category] = r.SettlementTotals[st.Category].Add(st.Amount)
	}
	for _, k := range s.KPIs {
		row := KPIRow{KPIRecord: k, TechnicianName: k.TechnicianID}
		if t, ok := s.FindTechnician(k.TechnicianID); ok {
			row.TechnicianName = t.Name
		}
		r.KPIs = append(r.KPIs, row)
	}
	for _, o := range s.Orders {
		r.OrderCounts[o.Type]++
	}
	return r
}
