package request

import (
	"errors"
	"strings"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownOrderType          = errors.New("unknown order type")
	ErrUnknownSettlementCategory = errors.New("unknown settlement category")
	ErrUnknownPartType           = errors.New("unknown part type")
	ErrMissingAmount             = errors.New("amount is required")
	ErrMissingScores             = errors.New("all four scores are required")
)

type CreateOrderRequest struct {
	OrderNumber  string `json:"order_number" binding:"required" example:"JD2023102701"`
	CustomerName string `json:"customer_name" binding:"required" example:"刘先生"`
	Address      string `json:"address" binding:"required" example:"北京市朝阳区阳光100"`
	Type         string `json:"type" binding:"required" example:"Installation"`
	TechnicianID string `json:"technician_id" binding:"required" example:"T001"`
}

func (r CreateOrderRequest) ToCommand() (usecase.CreateOrderCommand, error) {
	t, ok := entities.ParseOrderType(r.Type)
	if !ok {
		return usecase.CreateOrderCommand{}, ErrUnknownOrderType
	}
	return usecase.CreateOrderCommand{
		OrderNumber:  r.OrderNumber,
		CustomerName: r.CustomerName,
		Address:      r.Address,
		Type:         t,
		TechnicianID: r.TechnicianID,
	}, nil
}

type SubmitSettlementRequest struct {
	OrderID  string           `json:"order_id" binding:"required" example:"O1001"`
	Category string           `json:"category" binding:"required" example:"Appliance"`
	Amount   *decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
}

func (r SubmitSettlementRequest) ToCommand() (usecase.SubmitSettlementCommand, error) {
	c, ok := entities.ParseSettlementCategory(r.Category)
	if !ok {
		return usecase.SubmitSettlementCommand{}, ErrUnknownSettlementCategory
	}
	if r.Amount == nil {
		return usecase.SubmitSettlementCommand{}, ErrMissingAmount
	}
	return usecase.SubmitSettlementCommand{OrderID: r.OrderID, Category: c, Amount: *r.Amount}, nil
}

// KPIRequest serves both the full form (POST) and the partial upsert (PUT).
type KPIRequest struct {
	TechnicianID      string   `json:"technician_id" binding:"required" example:"T001"`
	Period            string   `json:"period" binding:"required" example:"2023-10"`
	SatisfactionScore *float64 `json:"satisfaction_score,omitempty" example:"9.5"`
	CompletionRate    *float64 `json:"completion_rate,omitempty" example:"98"`
	TimelinessRate    *float64 `json:"timeliness_rate,omitempty" example:"95"`
	ComplianceScore   *float64 `json:"compliance_score,omitempty" example:"100"`
}

func (r KPIRequest) ToCommand() (usecase.RecordKPICommand, error) {
	if r.SatisfactionScore == nil || r.CompletionRate == nil || r.TimelinessRate == nil || r.ComplianceScore == nil {
		return usecase.RecordKPICommand{}, ErrMissingScores
	}
	return usecase.RecordKPICommand{
		TechnicianID:      r.TechnicianID,
		Period:            r.Period,
		SatisfactionScore: *r.SatisfactionScore,
		CompletionRate:    *r.CompletionRate,
		TimelinessRate:    *r.TimelinessRate,
		ComplianceScore:   *r.ComplianceScore,
	}, nil
}

func (r KPIRequest) ToPatch() entities.KPIPatch {
	return entities.KPIPatch{
		TechnicianID:      strings.TrimSpace(r.TechnicianID),
		Period:            strings.TrimSpace(r.Period),
		SatisfactionScore: r.SatisfactionScore,
		CompletionRate:    r.CompletionRate,
		TimelinessRate:    r.TimelinessRate,
		ComplianceScore:   r.ComplianceScore,
	}
}

type RecordPartSaleRequest struct {
	OrderID      string           `json:"order_id" binding:"required" example:"O1002"`
	PartType     string           `json:"part_type" binding:"required" example:"OriginalBattery"`
	Quantity     int64            `json:"quantity" binding:"required,gt=0" example:"1"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit" swaggertype:"string" example:"299"`
}

// ToCommand treats a missing price as zero.
func (r RecordPartSaleRequest) ToCommand() (usecase.RecordPartSaleCommand, error) {
	pt, ok := entities.ParsePartType(r.PartType)
	if !ok {
		return usecase.RecordPartSaleCommand{}, ErrUnknownPartType
	}
	price := decimal.Zero
	if r.PricePerUnit != nil {
		price = *r.PricePerUnit
	}
	return usecase.RecordPartSaleCommand{OrderID: r.OrderID, PartType: pt, Quantity: r.Quantity, PricePerUnit: price}, nil
}
