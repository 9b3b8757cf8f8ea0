package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrHeaderRow  = errors.New("header row")
	ErrInvalidRow = errors.New("invalid row")
)

// UnknownAddress is stored when an imported order has no address cell.
const UnknownAddress = "未知地址"

// Id prefixes per collection.
const (
	PrefixOrder      = "O"
	PrefixSettlement = "S"
	PrefixKPI        = "K"
	PrefixPartSale   = "P"
)

// Header labels: a row whose first cell equals one of these is the pasted
// sheet header and is skipped without being counted as an error.
var (
	orderHeaders    = []string{"订单号", "Order Number", "OrderNumber"}
	orderRefHeaders = []string{"关联订单ID", "Order ID", "OrderID"}
	kpiHeaders      = []string{"师傅", "师傅姓名", "工号", "Technician"}
)

// RecordBuilder parses one normalized row into a record. A nil error means
// the record is valid; otherwise the error wraps ErrHeaderRow, ErrInvalidRow
// or ErrUnresolvedTechnician.
type RecordBuilder interface {
	Kind() RecordKind
	ParseRow(row Row, bc BatchContext) (Record, error)
}

// Env is what the builders need from outside: the technician registry and
// the id, date and assignment policies.
type Env struct {
	Technicians []entities.Technician
	IDs         interfaces.IIDGenerator
	Dates       DatePicker
	Assigner    TechnicianAssigner
}

// NewRecordBuilder selects the builder variant for kind.
func NewRecordBuilder(kind RecordKind, env Env) (RecordBuilder, error) {
	if env.IDs == nil {
		return nil, errors.New("record builder needs an id generator")
	}
	if env.Dates == nil {
		env.Dates = FirstDayPicker{}
	}
	switch kind {
	case KindOrder:
		if env.Assigner == nil {
			env.Assigner = &RoundRobinAssigner{}
		}
		return orderBuilder{env: env}, nil
	case KindSettlement:
		return settlementBuilder{env: env}, nil
	case KindKPI:
		return kpiBuilder{resolver: NewResolver(env.Technicians)}, nil
	case KindPartSale:
		return partSaleBuilder{env: env}, nil
	}
	return nil, fmt.Errorf("%w: unknown record kind %q", ErrInvalidBatchContext, kind)
}

func isHeader(cell string, labels []string) bool {
	for _, l := range labels {
		if cell == l {
			return true
		}
	}
	return false
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRow, fmt.Sprintf(format, args...))
}

type orderBuilder struct{ env Env }

func (orderBuilder) Kind() RecordKind { return KindOrder }

// ParseRow expects [orderNumber, customerName, address].
func (b orderBuilder) ParseRow(row Row, bc BatchContext) (Record, error) {
	orderNumber := row.Cell(0)
	if isHeader(orderNumber, orderHeaders) {
		return nil, ErrHeaderRow
	}
	customer := row.Cell(1)
	if orderNumber == "" {
		return nil, invalid("missing order number")
	}
	if customer == "" {
		return nil, invalid("missing customer name")
	}
	address := row.Cell(2)
	if address == "" {
		address = UnknownAddress
	}

	monthStart, err := bc.MonthStart()
	if err != nil {
		return nil, err
	}
	tech, ok := b.env.Assigner.Assign(b.env.Technicians)
	if !ok {
		return nil, fmt.Errorf("%w: no technician available for order %s", ErrUnresolvedTechnician, orderNumber)
	}

	return OrderRecord{Order: entities.Order{
		ID:           b.env.IDs.NewID(PrefixOrder),
		OrderNumber:  orderNumber,
		CustomerName: customer,
		Address:      address,
		Type:         bc.OrderType,
		Date:         b.env.Dates.PickDate(monthStart),
		TechnicianID: tech.ID,
		Status:       entities.OrderStatusPending,
	}}, nil
}

type settlementBuilder struct{ env Env }

func (settlementBuilder) Kind() RecordKind { return KindSettlement }

// ParseRow expects [orderId, amount].
func (b settlementBuilder) ParseRow(row Row, bc BatchContext) (Record, error) {
	orderID := row.Cell(0)
	if isHeader(orderID, orderRefHeaders) {
		return nil, ErrHeaderRow
	}
	if orderID == "" {
		return nil, invalid("missing order id")
	}
	amount, err := ParseMoney(row.Cell(1))
	if err != nil {
		return nil, invalid("amount: %v", err)
	}
	if amount.IsNegative() {
		return nil, invalid("amount %s is negative", amount)
	}

	monthStart, err := bc.MonthStart()
	if err != nil {
		return nil, err
	}
	return SettlementRecord{Settlement: entities.Settlement{
		ID:             b.env.IDs.NewID(PrefixSettlement),
		OrderID:        orderID,
		Category:       bc.SettlementCategory,
		Amount:         amount,
		Status:         entities.SettlementStatusPending,
		SubmissionDate: b.env.Dates.PickDate(monthStart),
	}}, nil
}

type kpiBuilder struct{ resolver *Resolver }

func (kpiBuilder) Kind() RecordKind { return KindKPI }

// ParseRow expects [technicianToken, scores...]; the score columns depend on
// the batch metric mode.
func (b kpiBuilder) ParseRow(row Row, bc BatchContext) (Record, error) {
	token := row.Cell(0)
	if isHeader(token, kpiHeaders) {
		return nil, ErrHeaderRow
	}
	if token == "" {
		return nil, invalid("missing technician")
	}
	tech, err := b.resolver.Resolve(token)
	if err != nil {
		return nil, err
	}

	patch := entities.KPIPatch{TechnicianID: tech.ID, Period: bc.Month}
	mode := bc.metric()
	if mode == MetricAll {
		if len(row) < 5 {
			return nil, invalid("expected 5 columns, got %d", len(row))
		}
		scores := make([]float64, 4)
		for i := range scores {
			v, err := parseScore(row.Cell(i+1), scoreBound(i))
			if err != nil {
				return nil, invalid("column %d: %v", i+2, err)
			}
			scores[i] = v
		}
		patch = entities.FullKPIPatch(tech.ID, bc.Month, scores[0], scores[1], scores[2], scores[3])
		return KPIRecord{Patch: patch}, nil
	}

	if len(row) < 2 {
		return nil, invalid("expected 2 columns, got %d", len(row))
	}
	var bound float64 = 100
	if mode == MetricSatisfaction {
		bound = 10
	}
	v, err := parseScore(row.Cell(1), bound)
	if err != nil {
		return nil, invalid("column 2: %v", err)
	}
	switch mode {
	case MetricSatisfaction:
		patch.SatisfactionScore = &v
	case MetricCompletion:
		patch.CompletionRate = &v
	case MetricTimeliness:
		patch.TimelinessRate = &v
	case MetricCompliance:
		patch.ComplianceScore = &v
	default:
		return nil, fmt.Errorf("%w: unknown metric mode %q", ErrInvalidBatchContext, mode)
	}
	return KPIRecord{Patch: patch}, nil
}

// scoreBound gives the upper bound of the i-th score in ALL mode.
func scoreBound(i int) float64 {
	if i == 0 {
		return 10
	}
	return 100
}

type partSaleBuilder struct{ env Env }

func (partSaleBuilder) Kind() RecordKind { return KindPartSale }

// ParseRow expects [orderId, quantity, pricePerUnit]. An unreadable price is
// taken as zero; an unreadable quantity drops the row.
func (b partSaleBuilder) ParseRow(row Row, bc BatchContext) (Record, error) {
	orderID := row.Cell(0)
	if isHeader(orderID, orderRefHeaders) {
		return nil, ErrHeaderRow
	}
	if orderID == "" {
		return nil, invalid("missing order id")
	}
	qty, err := ParseQuantity(row.Cell(1))
	if err != nil {
		return nil, invalid("quantity: %v", err)
	}
	price, err := ParseMoney(row.Cell(2))
	if err != nil {
		price = decimal.Zero
	}
	if price.IsNegative() {
		return nil, invalid("price %s is negative", price)
	}

	monthStart, err := bc.MonthStart()
	if err != nil {
		return nil, err
	}
	ps := entities.NewPartSale(b.env.IDs.NewID(PrefixPartSale), orderID, bc.PartType, qty, price, b.env.Dates.PickDate(monthStart))
	return PartSaleRecord{PartSale: ps}, nil
}

// ParseMoney reads a decimal amount, tolerating a leading currency sign.
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "¥￥$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("empty")
	}
	return decimal.NewFromString(s)
}

var maxQuantity = decimal.NewFromInt(math.MaxInt64)

// ParseQuantity reads a strictly positive whole number that fits in an int64.
func ParseQuantity(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if !d.IsInteger() || !d.IsPositive() {
		return 0, fmt.Errorf("%s is not a positive whole number", d)
	}
	if d.GreaterThan(maxQuantity) {
		return 0, fmt.Errorf("%s is too large", d)
	}
	return d.IntPart(), nil
}

func parseScore(s string, upper float64) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, errors.New("empty score")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || v < 0 || v > upper {
		return 0, fmt.Errorf("%g is outside 0-%g", v, upper)
	}
	return v, nil
}
