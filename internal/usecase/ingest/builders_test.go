package ingest

import (
	"errors"
	"math"
	"testing"
	"time"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/infrastructure/idgen"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv() Env {
	return Env{
		Technicians: registry,
		IDs:         idgen.NewSequence(),
		Dates:       FirstDayPicker{},
		Assigner:    FixedAssigner{TechnicianID: "T002"},
	}
}

func mustBuilder(t *testing.T, kind RecordKind) RecordBuilder {
	t.Helper()
	b, err := NewRecordBuilder(kind, testEnv())
	require.NoError(t, err)
	return b
}

func TestNewRecordBuilder(t *testing.T) {
	_, err := NewRecordBuilder(KindOrder, Env{})
	assert.Error(t, err)

	_, err = NewRecordBuilder("invoice", Env{IDs: idgen.NewSequence()})
	assert.True(t, errors.Is(err, ErrInvalidBatchContext))

	b, err := NewRecordBuilder(KindOrder, Env{IDs: idgen.NewSequence(), Technicians: registry})
	require.NoError(t, err)
	rec, err := b.ParseRow(Row{"JD1", "张三"}, BatchContext{Month: "2023-10", OrderType: entities.OrderTypeRepair})
	require.NoError(t, err)
	assert.Equal(t, "T001", rec.(OrderRecord).Order.TechnicianID)
}

func TestOrderBuilder_ParseRow(t *testing.T) {
	bc := BatchContext{Month: "2023-10", OrderType: entities.OrderTypeInstallation}

	t.Run("valid row", func(t *testing.T) {
		rec, err := mustBuilder(t, KindOrder).ParseRow(Row{"JD001", "张三", "北京"}, bc)
		require.NoError(t, err)
		o := rec.(OrderRecord).Order
		assert.Equal(t, "O000001", o.ID)
		assert.Equal(t, "JD001", o.OrderNumber)
		assert.Equal(t, "张三", o.CustomerName)
		assert.Equal(t, "北京", o.Address)
		assert.Equal(t, entities.OrderTypeInstallation, o.Type)
		assert.Equal(t, entities.OrderStatusPending, o.Status)
		assert.Equal(t, "T002", o.TechnicianID)
		assert.Equal(t, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), o.Date)
	})

	t.Run("missing address defaults", func(t *testing.T) {
		rec, err := mustBuilder(t, KindOrder).ParseRow(Row{"JD002", "李四"}, bc)
		require.NoError(t, err)
		assert.Equal(t, UnknownAddress, rec.(OrderRecord).Order.Address)
	})

	for _, header := range []string{"订单号", "Order Number", "OrderNumber"} {
		_, err := mustBuilder(t, KindOrder).ParseRow(Row{header, "客户", "地址"}, bc)
		assert.True(t, errors.Is(err, ErrHeaderRow), header)
	}

	for name, row := range map[string]Row{
		"single cell":    {"JD003"},
		"empty customer": {"JD003", "", "x"},
		"empty number":   {"", "王五"},
	} {
		_, err := mustBuilder(t, KindOrder).ParseRow(row, bc)
		assert.True(t, errors.Is(err, ErrInvalidRow), name)
	}

	t.Run("no technician", func(t *testing.T) {
		b, err := NewRecordBuilder(KindOrder, Env{IDs: idgen.NewSequence()})
		require.NoError(t, err)
		_, err = b.ParseRow(Row{"JD004", "赵六"}, bc)
		assert.True(t, errors.Is(err, ErrUnresolvedTechnician))
	})
}

func TestSettlementBuilder_ParseRow(t *testing.T) {
	bc := BatchContext{Month: "2023-11", SettlementCategory: entities.SettlementCategory3C}

	rec, err := mustBuilder(t, KindSettlement).ParseRow(Row{"O1001", "¥120.50"}, bc)
	require.NoError(t, err)
	s := rec.(SettlementRecord).Settlement
	assert.Equal(t, "S000001", s.ID)
	assert.Equal(t, "O1001", s.OrderID)
	assert.True(t, decimal.RequireFromString("120.5").Equal(s.Amount))
	assert.Equal(t, entities.SettlementCategory3C, s.Category)
	assert.Equal(t, entities.SettlementStatusPending, s.Status)

	_, err = mustBuilder(t, KindSettlement).ParseRow(Row{"关联订单ID", "金额"}, bc)
	assert.True(t, errors.Is(err, ErrHeaderRow))

	for name, row := range map[string]Row{
		"no amount":       {"O1001"},
		"text amount":     {"O1001", "abc"},
		"negative amount": {"O1001", "-5"},
		"no order":        {"", "10"},
	} {
		_, err := mustBuilder(t, KindSettlement).ParseRow(row, bc)
		assert.True(t, errors.Is(err, ErrInvalidRow), name)
	}
}

func TestKPIBuilder_ParseRow(t *testing.T) {
	all := BatchContext{Month: "2023-10", Metric: MetricAll}

	t.Run("all mode", func(t *testing.T) {
		rec, err := mustBuilder(t, KindKPI).ParseRow(Row{"张伟", "9.5", "98", "95%", "100"}, all)
		require.NoError(t, err)
		p := rec.(KPIRecord).Patch
		assert.Equal(t, "T001", p.TechnicianID)
		assert.Equal(t, "2023-10", p.Period)
		assert.Equal(t, 9.5, *p.SatisfactionScore)
		assert.Equal(t, 98.0, *p.CompletionRate)
		assert.Equal(t, 95.0, *p.TimelinessRate)
		assert.Equal(t, 100.0, *p.ComplianceScore)
	})

	t.Run("single metric", func(t *testing.T) {
		bc := BatchContext{Month: "2023-10", Metric: MetricCompletion}
		rec, err := mustBuilder(t, KindKPI).ParseRow(Row{"T003", "88"}, bc)
		require.NoError(t, err)
		p := rec.(KPIRecord).Patch
		require.NotNil(t, p.CompletionRate)
		assert.Equal(t, 88.0, *p.CompletionRate)
		assert.Nil(t, p.SatisfactionScore)
		assert.Nil(t, p.TimelinessRate)
		assert.Nil(t, p.ComplianceScore)
	})

	t.Run("satisfaction bound", func(t *testing.T) {
		bc := BatchContext{Month: "2023-10", Metric: MetricSatisfaction}
		_, err := mustBuilder(t, KindKPI).ParseRow(Row{"张伟", "11"}, bc)
		assert.True(t, errors.Is(err, ErrInvalidRow))
	})

	for _, header := range []string{"师傅", "师傅姓名", "工号", "Technician"} {
		_, err := mustBuilder(t, KindKPI).ParseRow(Row{header, "满意度"}, all)
		assert.True(t, errors.Is(err, ErrHeaderRow), header)
	}

	_, err := mustBuilder(t, KindKPI).ParseRow(Row{"未知师傅", "9", "90", "90", "90"}, all)
	assert.True(t, errors.Is(err, ErrUnresolvedTechnician))

	for name, row := range map[string]Row{
		"short row":   {"张伟", "9", "90"},
		"not numeric": {"张伟", "good", "90", "90", "90"},
		"over 100":    {"张伟", "9", "101", "90", "90"},
		"negative":    {"张伟", "9", "90", "-1", "90"},
		"NaN":         {"张伟", "NaN", "90", "90", "90"},
	} {
		_, err := mustBuilder(t, KindKPI).ParseRow(row, all)
		assert.True(t, errors.Is(err, ErrInvalidRow), name)
	}
}

func TestPartSaleBuilder_ParseRow(t *testing.T) {
	bc := BatchContext{Month: "2023-10", PartType: entities.PartTypeOriginalBattery}

	rec, err := mustBuilder(t, KindPartSale).ParseRow(Row{"JD002", "2", "150"}, bc)
	require.NoError(t, err)
	p := rec.(PartSaleRecord).PartSale
	assert.Equal(t, "P000001", p.ID)
	assert.Equal(t, int64(2), p.Quantity)
	assert.True(t, decimal.NewFromInt(300).Equal(p.Total))
	assert.Equal(t, entities.PartTypeOriginalBattery, p.PartType)

	t.Run("unreadable price is zero", func(t *testing.T) {
		rec, err := mustBuilder(t, KindPartSale).ParseRow(Row{"JD003", "3", "n/a"}, bc)
		require.NoError(t, err)
		assert.True(t, rec.(PartSaleRecord).PartSale.Total.IsZero())
	})

	_, err = mustBuilder(t, KindPartSale).ParseRow(Row{"Order ID", "数量", "单价"}, bc)
	assert.True(t, errors.Is(err, ErrHeaderRow))

	for name, row := range map[string]Row{
		"zero quantity":     {"JD002", "0", "10"},
		"fractional":        {"JD002", "1.5", "10"},
		"text quantity":     {"JD002", "two", "10"},
		"negative price":    {"JD002", "1", "-10"},
		"uint64 max":        {"JD002", "18446744073709551615", "150"},
		"one past int64":    {"JD002", "9223372036854775808", "150"},
		"exponent overflow": {"JD002", "1e30", "150"},
	} {
		_, err := mustBuilder(t, KindPartSale).ParseRow(row, bc)
		assert.True(t, errors.Is(err, ErrInvalidRow), name)
	}
}

func TestParseQuantity_Bounds(t *testing.T) {
	q, err := ParseQuantity("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), q)

	_, err = ParseQuantity("9223372036854775808")
	assert.Error(t, err)
}

func TestParseMoney(t *testing.T) {
	cases := map[string]string{"12.30": "12.3", " ¥ 8 ": "8", "￥99": "99", "$1.5": "1.5"}
	for in, want := range cases {
		got, err := ParseMoney(in)
		require.NoError(t, err, in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), in)
	}
	_, err := ParseMoney("  ")
	assert.Error(t, err)
}
