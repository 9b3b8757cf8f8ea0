//go:generate mockgen -source=entry_usecase.go -destination=../adapter/http/handlers/mocks/entry_usecase_mock.go -package=mocks
package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase/ingest"
	"settlement_console/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrTechnicianNotFound   = errors.New("technician not found")
	ErrSettlementNotFound   = errors.New("settlement not found")
	ErrSettlementNotPending = errors.New("settlement is not pending")
	ErrInvalidOrder         = errors.New("invalid order")
	ErrInvalidSettlement    = errors.New("invalid settlement")
	ErrInvalidKPI           = errors.New("invalid kpi")
	ErrInvalidPartSale      = errors.New("invalid part sale")
	ErrInvalidOrderType     = errors.New("invalid order type")
)

type CreateOrderCommand struct {
	OrderNumber  string             `validate:"required"`
	CustomerName string             `validate:"required"`
	Address      string             `validate:"required"`
	Type         entities.OrderType `validate:"required,oneof=Installation Repair"`
	TechnicianID string             `validate:"required"`
}

type SubmitSettlementCommand struct {
	OrderID  string                      `validate:"required"`
	Category entities.SettlementCategory `validate:"required,oneof=3C Appliance"`
	Amount   decimal.Decimal
}

// RecordKPICommand sets all four scores of a technician's monthly record.
type RecordKPICommand struct {
	TechnicianID      string  `validate:"required"`
	Period            string  `validate:"required"`
	SatisfactionScore float64 `validate:"gte=0,lte=10"`
	CompletionRate    float64 `validate:"gte=0,lte=100"`
	TimelinessRate    float64 `validate:"gte=0,lte=100"`
	ComplianceScore   float64 `validate:"gte=0,lte=100"`
}

type RecordPartSaleCommand struct {
	OrderID      string            `validate:"required"`
	PartType     entities.PartType `validate:"required,oneof=OriginalBattery NonOriginalBattery"`
	Quantity     int64             `validate:"gt=0"`
	PricePerUnit decimal.Decimal
}

// SettlementListing splits settlements the way the review screen shows them.
type SettlementListing struct {
	Pending []entities.Settlement
	History []entities.Settlement
}

// IEntryUseCase covers the single-record forms of the console.
type IEntryUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	SubmitSettlement(ctx context.Context, cmd SubmitSettlementCommand) (entities.Settlement, error)
	ApproveSettlement(ctx context.Context, id string) (entities.Settlement, error)
	RejectSettlement(ctx context.Context, id string) (entities.Settlement, error)
	RecordKPI(ctx context.Context, cmd RecordKPICommand) (entities.KPIRecord, error)
	UpsertKPI(ctx context.Context, patch entities.KPIPatch) (entities.KPIRecord, error)
	RecordPartSale(ctx context.Context, cmd RecordPartSaleCommand) (entities.PartSale, error)

	ListTechnicians(ctx context.Context) []entities.Technician
	ListOrders(ctx context.Context, orderType string) ([]entities.Order, error)
	ListSettlements(ctx context.Context) SettlementListing
	ListKPIs(ctx context.Context) []entities.KPIRecord
	ListPartSales(ctx context.Context) []entities.PartSale
}

type EntryUseCase struct {
	store    interfaces.IDomainStore
	ids      interfaces.IIDGenerator
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time

	// serializes the read-check-write of settlement review
	reviewMu sync.Mutex
}

var _ IEntryUseCase = (*EntryUseCase)(nil)

func NewEntryUseCase(store interfaces.IDomainStore, ids interfaces.IIDGenerator, logger *zap.Logger) *EntryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntryUseCase{
		store:    store,
		ids:      ids,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

func (u *EntryUseCase) today() time.Time {
	y, m, d := u.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (u *EntryUseCase) technicianExists(id string) bool {
	for _, t := range u.store.Technicians() {
		if t.ID == id {
			return true
		}
	}
	return false
}

func validPeriod(period string) bool {
	_, err := time.Parse("2006-01", period)
	return err == nil
}

func (u *EntryUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	cmd.OrderNumber = strings.TrimSpace(cmd.OrderNumber)
	cmd.CustomerName = strings.TrimSpace(cmd.CustomerName)
	cmd.Address = strings.TrimSpace(cmd.Address)
	cmd.TechnicianID = strings.TrimSpace(cmd.TechnicianID)
	if err := u.validate.StructCtx(ctx, cmd); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	if !u.technicianExists(cmd.TechnicianID) {
		return entities.Order{}, ErrTechnicianNotFound
	}

	o := entities.Order{
		ID:           u.ids.NewID(ingest.PrefixOrder),
		OrderNumber:  cmd.OrderNumber,
		CustomerName: cmd.CustomerName,
		Address:      cmd.Address,
		Type:         cmd.Type,
		Date:         u.today(),
		TechnicianID: cmd.TechnicianID,
		Status:       entities.OrderStatusPending,
	}
	u.store.AddOrder(o)
	u.logger.Info("[entry][usecase] order created", zap.String("order_id", o.ID), zap.String("technician_id", o.TechnicianID))
	return o, nil
}

func (u *EntryUseCase) SubmitSettlement(ctx context.Context, cmd SubmitSettlementCommand) (entities.Settlement, error) {
	cmd.OrderID = strings.TrimSpace(cmd.OrderID)
	if err := u.validate.StructCtx(ctx, cmd); err != nil {
		return entities.Settlement{}, fmt.Errorf("%w: %v", ErrInvalidSettlement, err)
	}
	if cmd.Amount.IsNegative() {
		return entities.Settlement{}, fmt.Errorf("%w: amount must not be negative", ErrInvalidSettlement)
	}

	s := entities.Settlement{
		ID:             u.ids.NewID(ingest.PrefixSettlement),
		OrderID:        cmd.OrderID,
		Category:       cmd.Category,
		Amount:         cmd.Amount,
		Status:         entities.SettlementStatusPending,
		SubmissionDate: u.today(),
	}
	u.store.AddSettlement(s)
	u.logger.Info("[settlement][usecase] submitted", zap.String("settlement_id", s.ID), zap.String("amount", s.Amount.String()))
	return s, nil
}

func (u *EntryUseCase) ApproveSettlement(ctx context.Context, id string) (entities.Settlement, error) {
	return u.review(id, entities.SettlementStatusApproved)
}

func (u *EntryUseCase) RejectSettlement(ctx context.Context, id string) (entities.Settlement, error) {
	return u.review(id, entities.SettlementStatusRejected)
}

func (u *EntryUseCase) review(id string, status entities.SettlementStatus) (entities.Settlement, error) {
	id = strings.TrimSpace(id)
	u.reviewMu.Lock()
	defer u.reviewMu.Unlock()

	s, ok := u.store.Settlement(id)
	if !ok {
		return entities.Settlement{}, ErrSettlementNotFound
	}
	if s.Status != entities.SettlementStatusPending {
		return entities.Settlement{}, fmt.Errorf("%w: %s is %s", ErrSettlementNotPending, id, s.Status)
	}
	if err := u.store.UpdateSettlementStatus(id, status); err != nil {
		return entities.Settlement{}, fmt.Errorf("%w: %v", ErrSettlementNotFound, err)
	}
	s.Status = status
	u.logger.Info("[settlement][usecase] reviewed", zap.String("settlement_id", id), zap.String("status", string(status)))
	return s, nil
}

func (u *EntryUseCase) RecordKPI(ctx context.Context, cmd RecordKPICommand) (entities.KPIRecord, error) {
	cmd.TechnicianID = strings.TrimSpace(cmd.TechnicianID)
	cmd.Period = strings.TrimSpace(cmd.Period)
	if err := u.validate.StructCtx(ctx, cmd); err != nil {
		return entities.KPIRecord{}, fmt.Errorf("%w: %v", ErrInvalidKPI, err)
	}
	return u.UpsertKPI(ctx, entities.FullKPIPatch(cmd.TechnicianID, cmd.Period,
		cmd.SatisfactionScore, cmd.CompletionRate, cmd.TimelinessRate, cmd.ComplianceScore))
}

// UpsertKPI applies a partial score update. At least one score is required.
func (u *EntryUseCase) UpsertKPI(ctx context.Context, patch entities.KPIPatch) (entities.KPIRecord, error) {
	patch.TechnicianID = strings.TrimSpace(patch.TechnicianID)
	patch.Period = strings.TrimSpace(patch.Period)
	if !validPeriod(patch.Period) {
		return entities.KPIRecord{}, fmt.Errorf("%w: period %q is not YYYY-MM", ErrInvalidKPI, patch.Period)
	}
	if patch.Empty() {
		return entities.KPIRecord{}, fmt.Errorf("%w: no score supplied", ErrInvalidKPI)
	}
	for _, c := range []struct {
		name  string
		v     *float64
		upper float64
	}{
		{"satisfaction_score", patch.SatisfactionScore, 10},
		{"completion_rate", patch.CompletionRate, 100},
		{"timeliness_rate", patch.TimelinessRate, 100},
		{"compliance_score", patch.ComplianceScore, 100},
	} {
		if c.v != nil && (math.IsNaN(*c.v) || *c.v < 0 || *c.v > c.upper) {
			return entities.KPIRecord{}, fmt.Errorf("%w: %s must be within 0-%g", ErrInvalidKPI, c.name, c.upper)
		}
	}
	if !u.technicianExists(patch.TechnicianID) {
		return entities.KPIRecord{}, ErrTechnicianNotFound
	}

	rec := u.store.UpsertKPI(patch)
	u.logger.Info("[kpi][usecase] upserted", zap.String("kpi_id", rec.ID), zap.String("technician_id", rec.TechnicianID), zap.String("period", rec.Period))
	return rec, nil
}

func (u *EntryUseCase) RecordPartSale(ctx context.Context, cmd RecordPartSaleCommand) (entities.PartSale, error) {
	cmd.OrderID = strings.TrimSpace(cmd.OrderID)
	if err := u.validate.StructCtx(ctx, cmd); err != nil {
		return entities.PartSale{}, fmt.Errorf("%w: %v", ErrInvalidPartSale, err)
	}
	if cmd.PricePerUnit.IsNegative() {
		return entities.PartSale{}, fmt.Errorf("%w: price must not be negative", ErrInvalidPartSale)
	}

	p := entities.NewPartSale(u.ids.NewID(ingest.PrefixPartSale), cmd.OrderID, cmd.PartType, cmd.Quantity, cmd.PricePerUnit, u.today())
	u.store.AddPartSale(p)
	u.logger.Info("[parts][usecase] sale recorded", zap.String("part_sale_id", p.ID), zap.String("total", p.Total.String()))
	return p, nil
}

func (u *EntryUseCase) ListTechnicians(ctx context.Context) []entities.Technician {
	return u.store.Technicians()
}

// ListOrders returns all orders, or only those of orderType when it is set.
func (u *EntryUseCase) ListOrders(ctx context.Context, orderType string) ([]entities.Order, error) {
	orders := u.store.Orders()
	if strings.TrimSpace(orderType) == "" {
		return orders, nil
	}
	t, ok := entities.ParseOrderType(orderType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrderType, orderType)
	}
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.Type == t {
			out = append(out, o)
		}
	}
	return out, nil
}

func (u *EntryUseCase) ListSettlements(ctx context.Context) SettlementListing {
	var l SettlementListing
	for _, s := range u.store.Settlements() {
		if s.Status == entities.SettlementStatusPending {
			l.Pending = append(l.Pending, s)
		} else {
			l.History = append(l.History, s)
		}
	}
	return l
}

func (u *EntryUseCase) ListKPIs(ctx context.Context) []entities.KPIRecord {
	return u.store.KPIs()
}

func (u *EntryUseCase) ListPartSales(ctx context.Context) []entities.PartSale {
	return u.store.PartSales()
}
