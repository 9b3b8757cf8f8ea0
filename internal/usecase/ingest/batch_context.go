package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"settlement_console/internal/domain/entities"
)

var ErrInvalidBatchContext = errors.New("invalid batch context")

// RecordKind selects which builder a batch is parsed with.
type RecordKind string

const (
	KindOrder      RecordKind = "order"
	KindSettlement RecordKind = "settlement"
	KindKPI        RecordKind = "kpi"
	KindPartSale   RecordKind = "part"
)

func ParseRecordKind(s string) (RecordKind, bool) {
	switch RecordKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindOrder, "orders":
		return KindOrder, true
	case KindSettlement, "settlements":
		return KindSettlement, true
	case KindKPI, "kpis":
		return KindKPI, true
	case KindPartSale, "parts", "part_sale", "part_sales":
		return KindPartSale, true
	}
	return "", false
}

// MetricMode says which KPI score columns a KPI batch carries.
type MetricMode string

const (
	MetricAll          MetricMode = "ALL"
	MetricSatisfaction MetricMode = "SATISFACTION"
	MetricCompletion   MetricMode = "COMPLETION"
	MetricTimeliness   MetricMode = "TIMELINESS"
	MetricCompliance   MetricMode = "COMPLIANCE"
)

func ParseMetricMode(s string) (MetricMode, bool) {
	m := MetricMode(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case "":
		return MetricAll, true
	case MetricAll, MetricSatisfaction, MetricCompletion, MetricTimeliness, MetricCompliance:
		return m, true
	}
	return "", false
}

const monthLayout = "2006-01"

// BatchContext holds the values chosen once per batch and applied to every
// row instead of being read from the row itself. Only the field matching the
// batch kind is consulted.
type BatchContext struct {
	Month              string
	OrderType          entities.OrderType
	SettlementCategory entities.SettlementCategory
	PartType           entities.PartType
	Metric             MetricMode
}

// NewBatchContext parses raw selector values (as typed into a form or passed
// on the command line) for the given kind.
func NewBatchContext(kind RecordKind, month, category, metric string) (BatchContext, error) {
	bc := BatchContext{Month: strings.TrimSpace(month)}
	category = strings.TrimSpace(category)

	switch kind {
	case KindOrder:
		t, ok := entities.ParseOrderType(category)
		if !ok {
			return BatchContext{}, fmt.Errorf("%w: unknown order type %q", ErrInvalidBatchContext, category)
		}
		bc.OrderType = t
	case KindSettlement:
		c, ok := entities.ParseSettlementCategory(category)
		if !ok {
			return BatchContext{}, fmt.Errorf("%w: unknown settlement category %q", ErrInvalidBatchContext, category)
		}
		bc.SettlementCategory = c
	case KindPartSale:
		p, ok := entities.ParsePartType(category)
		if !ok {
			return BatchContext{}, fmt.Errorf("%w: unknown part type %q", ErrInvalidBatchContext, category)
		}
		bc.PartType = p
	case KindKPI:
		m, ok := ParseMetricMode(metric)
		if !ok {
			return BatchContext{}, fmt.Errorf("%w: unknown metric mode %q", ErrInvalidBatchContext, metric)
		}
		bc.Metric = m
	default:
		return BatchContext{}, fmt.Errorf("%w: unknown record kind %q", ErrInvalidBatchContext, kind)
	}

	if err := bc.Validate(kind); err != nil {
		return BatchContext{}, err
	}
	return bc, nil
}

// Validate checks the month and the kind-specific selector.
func (bc BatchContext) Validate(kind RecordKind) error {
	if _, err := bc.MonthStart(); err != nil {
		return err
	}
	switch kind {
	case KindOrder:
		if _, ok := entities.ParseOrderType(string(bc.OrderType)); !ok {
			return fmt.Errorf("%w: order type is required", ErrInvalidBatchContext)
		}
	case KindSettlement:
		if _, ok := entities.ParseSettlementCategory(string(bc.SettlementCategory)); !ok {
			return fmt.Errorf("%w: settlement category is required", ErrInvalidBatchContext)
		}
	case KindPartSale:
		if _, ok := entities.ParsePartType(string(bc.PartType)); !ok {
			return fmt.Errorf("%w: part type is required", ErrInvalidBatchContext)
		}
	case KindKPI:
		if m, ok := ParseMetricMode(string(bc.Metric)); !ok || m == "" {
			return fmt.Errorf("%w: metric mode is required", ErrInvalidBatchContext)
		}
	default:
		return fmt.Errorf("%w: unknown record kind %q", ErrInvalidBatchContext, kind)
	}
	return nil
}

// MonthStart returns midnight UTC of the first day of the batch month.
func (bc BatchContext) MonthStart() (time.Time, error) {
	t, err := time.Parse(monthLayout, bc.Month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q is not YYYY-MM", ErrInvalidBatchContext, bc.Month)
	}
	return t, nil
}

func (bc BatchContext) metric() MetricMode {
	if bc.Metric == "" {
		return MetricAll
	}
	return bc.Metric
}
