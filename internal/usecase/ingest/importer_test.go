package ingest

import (
	"testing"

	"settlement_console/internal/adapter/persistence/memory"
	"settlement_console/internal/domain/entities"
	"settlement_console/internal/infrastructure/idgen"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSink() *memory.Store {
	return memory.NewStore(entities.Snapshot{Technicians: registry}, idgen.NewSequence())
}

func run(t *testing.T, kind RecordKind, text string, bc BatchContext, sink Sink) Report {
	t.Helper()
	b, err := NewRecordBuilder(kind, testEnv())
	require.NoError(t, err)
	return NewImporter(b).Run(NormalizeText(text), bc, sink)
}

func assertBalanced(t *testing.T, r Report) {
	t.Helper()
	assert.Equal(t, r.Total, r.Imported+r.SkippedHeader+r.SkippedInvalid+r.SkippedUnresolved)
	assert.Len(t, r.Rows, r.Total)
}

func TestImporter_Orders(t *testing.T) {
	store := newSink()
	bc := BatchContext{Month: "2023-10", OrderType: entities.OrderTypeInstallation}
	r := run(t, KindOrder, "订单号,客户,地址\nJD001,张三,北京\nJD002,李四", bc, store)

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 2, r.Imported)
	assert.Equal(t, 1, r.SkippedHeader)
	assert.Equal(t, 0, r.ErrorCount())
	assertBalanced(t, r)

	orders := store.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "JD002", orders[0].OrderNumber)
	assert.Equal(t, UnknownAddress, orders[0].Address)
	assert.Equal(t, "JD001", orders[1].OrderNumber)
	assert.Equal(t, OutcomeSkippedHeader, r.Rows[0].Outcome)
	assert.Equal(t, orders[1].ID, r.Rows[1].RecordID)
}

func TestImporter_KPIWithUnknownTechnician(t *testing.T) {
	store := newSink()
	bc := BatchContext{Month: "2023-10", Metric: MetricAll}
	r := run(t, KindKPI, "张伟,9.5,98,95,100\n未知师傅,9,90,90,90", bc, store)

	assert.Equal(t, 1, r.Imported)
	assert.Equal(t, 1, r.ErrorCount())
	assert.Equal(t, OutcomeSkippedUnresolved, r.Rows[1].Outcome)
	assertBalanced(t, r)

	kpis := store.KPIs()
	require.Len(t, kpis, 1)
	assert.Equal(t, "T001", kpis[0].TechnicianID)
	assert.Equal(t, kpis[0].ID, r.Rows[0].RecordID)
}

func TestImporter_KPIPartialMergeAcrossBatches(t *testing.T) {
	store := newSink()
	run(t, KindKPI, "张伟,9.5,90,95,100", BatchContext{Month: "2023-10", Metric: MetricAll}, store)
	r := run(t, KindKPI, "师傅,满意度\n张伟,9.8", BatchContext{Month: "2023-10", Metric: MetricSatisfaction}, store)

	assert.Equal(t, 1, r.Imported)
	assert.Equal(t, 1, r.SkippedHeader)

	kpis := store.KPIs()
	require.Len(t, kpis, 1)
	assert.Equal(t, 9.8, kpis[0].SatisfactionScore)
	assert.Equal(t, 90.0, kpis[0].CompletionRate)
}

func TestImporter_PartSales(t *testing.T) {
	store := newSink()
	bc := BatchContext{Month: "2023-10", PartType: entities.PartTypeNonOriginalBattery}
	r := run(t, KindPartSale, "JD002,2,150\nJD003,0,10\nJD004", bc, store)

	assert.Equal(t, 1, r.Imported)
	assert.Equal(t, 2, r.SkippedInvalid)
	assertBalanced(t, r)

	parts := store.PartSales()
	require.Len(t, parts, 1)
	assert.True(t, decimal.NewFromInt(300).Equal(parts[0].Total))
}

func TestImporter_Settlements(t *testing.T) {
	store := newSink()
	bc := BatchContext{Month: "2023-10", SettlementCategory: entities.SettlementCategoryAppliance}
	r := run(t, KindSettlement, "Order ID,Amount\nO1001,150\nO1002,x\n\n\nO1003,80", bc, store)

	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 2, r.Imported)
	assert.Equal(t, 1, r.SkippedHeader)
	assert.Equal(t, 1, r.SkippedInvalid)
	assertBalanced(t, r)

	for _, s := range store.Settlements() {
		assert.Equal(t, entities.SettlementStatusPending, s.Status)
		assert.Equal(t, entities.SettlementCategoryAppliance, s.Category)
	}
}

func TestImporter_EmptyInput(t *testing.T) {
	r := run(t, KindOrder, "\n\n", BatchContext{Month: "2023-10", OrderType: entities.OrderTypeRepair}, newSink())
	assert.Equal(t, 0, r.Total)
	assert.Empty(t, r.Rows)
}
