package usecase

import (
	"time"

	"settlement_console/internal/adapter/persistence/memory"
	"settlement_console/internal/domain/entities"
	"settlement_console/internal/infrastructure/idgen"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2023, 10, 15, 14, 30, 0, 0, time.FixedZone("CST", 8*3600))

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, dd int) time.Time { return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC) }

func seedSnapshot() entities.Snapshot {
	return entities.Snapshot{
		Technicians: []entities.Technician{
			{ID: "T001", Name: "张伟", Phone: "13800138000", Region: "北京朝阳"},
			{ID: "T002", Name: "李强", Phone: "13900139000", Region: "上海浦东"},
			{ID: "T003", Name: "王磊", Phone: "13700137000", Region: "广州天河"},
		},
		Orders: []entities.Order{
			{ID: "O1001", OrderNumber: "JD20231001", CustomerName: "刘先生", Address: "北京市朝阳区", Type: entities.OrderTypeInstallation, Date: day(2023, 10, 1), TechnicianID: "T001", Status: entities.OrderStatusCompleted},
			{ID: "O1002", OrderNumber: "JD20231002", CustomerName: "陈女士", Address: "上海市浦东新区", Type: entities.OrderTypeRepair, Date: day(2023, 10, 2), TechnicianID: "T002", Status: entities.OrderStatusPending},
			{ID: "O1003", OrderNumber: "JD20231003", CustomerName: "王先生", Address: "广州市天河区", Type: entities.OrderTypeInstallation, Date: day(2023, 10, 3), TechnicianID: "T003", Status: entities.OrderStatusCompleted},
			{ID: "O1004", OrderNumber: "JD20231004", CustomerName: "赵女士", Address: "北京市海淀区", Type: entities.OrderTypeRepair, Date: day(2023, 10, 4), TechnicianID: "T001", Status: entities.OrderStatusCancelled},
		},
		Settlements: []entities.Settlement{
			{ID: "S1001", OrderID: "O1001", Category: entities.SettlementCategoryAppliance, Amount: d("150"), Status: entities.SettlementStatusApproved, SubmissionDate: day(2023, 10, 2)},
			{ID: "S1003", OrderID: "O1003", Category: entities.SettlementCategory3C, Amount: d("80"), Status: entities.SettlementStatusPending, SubmissionDate: day(2023, 10, 4)},
			{ID: "S1004", OrderID: "O1004", Category: entities.SettlementCategoryAppliance, Amount: d("200"), Status: entities.SettlementStatusPending, SubmissionDate: day(2023, 10, 5)},
		},
		KPIs: []entities.KPIRecord{
			{ID: "K001", TechnicianID: "T001", Period: "2023-10", SatisfactionScore: 9.5, CompletionRate: 98, TimelinessRate: 95, ComplianceScore: 100},
			{ID: "K002", TechnicianID: "T002", Period: "2023-10", SatisfactionScore: 8.8, CompletionRate: 92, TimelinessRate: 88, ComplianceScore: 95},
			{ID: "K003", TechnicianID: "T003", Period: "2023-10", SatisfactionScore: 9.2, CompletionRate: 95, TimelinessRate: 90, ComplianceScore: 98},
		},
		PartSales: []entities.PartSale{
			entities.NewPartSale("P001", "O1002", entities.PartTypeOriginalBattery, 1, d("299"), day(2023, 10, 2)),
			entities.NewPartSale("P002", "O1004", entities.PartTypeNonOriginalBattery, 1, d("150"), day(2023, 10, 4)),
		},
	}
}

func newTestStore() *memory.Store {
	return memory.NewStore(seedSnapshot(), idgen.NewSequence())
}

func newTestEntryUseCase(store *memory.Store) *EntryUseCase {
	uc := NewEntryUseCase(store, idgen.NewSequence(), nil)
	uc.now = func() time.Time { return fixedNow }
	return uc
}
