package response

import (
	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type TechnicianResponse struct {
	ID     string `json:"id" example:"T001"`
	Name   string `json:"name" example:"张伟"`
	Phone  string `json:"phone" example:"13800138001"`
	Region string `json:"region" example:"北京"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{ID: t.ID, Name: t.Name, Phone: t.Phone, Region: t.Region}
}

type OrderResponse struct {
	ID           string `json:"id" example:"O1001"`
	OrderNumber  string `json:"order_number" example:"JD2023102701"`
	CustomerName string `json:"customer_name" example:"刘先生"`
	Address      string `json:"address" example:"北京市朝阳区阳光100"`
	Type         string `json:"type" example:"Installation"`
	Date         string `json:"date" example:"2023-10-27"`
	TechnicianID string `json:"technician_id" example:"T001"`
	Status       string `json:"status" example:"Pending"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Address:      o.Address,
		Type:         string(o.Type),
		Date:         o.Date.Format(dateLayout),
		TechnicianID: o.TechnicianID,
		Status:       string(o.Status),
	}
}

type SettlementResponse struct {
	ID             string          `json:"id" example:"S001"`
	OrderID        string          `json:"order_id" example:"O1001"`
	Category       string          `json:"category" example:"Appliance"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"150"`
	Status         string          `json:"status" example:"Pending"`
	SubmissionDate string          `json:"submission_date" example:"2023-10-27"`
}

func FromSettlement(s entities.Settlement) SettlementResponse {
	return SettlementResponse{
		ID:             s.ID,
		OrderID:        s.OrderID,
		Category:       string(s.Category),
		Amount:         s.Amount,
		Status:         string(s.Status),
		SubmissionDate: s.SubmissionDate.Format(dateLayout),
	}
}

type SettlementListResponse struct {
	Pending []SettlementResponse `json:"pending"`
	History []SettlementResponse `json:"history"`
}

func FromSettlementListing(l usecase.SettlementListing) SettlementListResponse {
	return SettlementListResponse{
		Pending: mapAll(l.Pending, FromSettlement),
		History: mapAll(l.History, FromSettlement),
	}
}

type KPIResponse struct {
	ID                string  `json:"id" example:"K001"`
	TechnicianID      string  `json:"technician_id" example:"T001"`
	Period            string  `json:"period" example:"2023-10"`
	SatisfactionScore float64 `json:"satisfaction_score" example:"9.8"`
	CompletionRate    float64 `json:"completion_rate" example:"98"`
	TimelinessRate    float64 `json:"timeliness_rate" example:"95"`
	ComplianceScore   float64 `json:"compliance_score" example:"100"`
}

func FromKPI(k entities.KPIRecord) KPIResponse {
	return KPIResponse{
		ID:                k.ID,
		TechnicianID:      k.TechnicianID,
		Period:            k.Period,
		SatisfactionScore: k.SatisfactionScore,
		CompletionRate:    k.CompletionRate,
		TimelinessRate:    k.TimelinessRate,
		ComplianceScore:   k.ComplianceScore,
	}
}

type PartSaleResponse struct {
	ID           string          `json:"id" example:"P001"`
	OrderID      string          `json:"order_id" example:"O1002"`
	PartType     string          `json:"part_type" example:"OriginalBattery"`
	Quantity     int64           `json:"quantity" example:"1"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" swaggertype:"string" example:"299"`
	Total        decimal.Decimal `json:"total" swaggertype:"string" example:"299"`
	Date         string          `json:"date" example:"2023-10-26"`
}

func FromPartSale(p entities.PartSale) PartSaleResponse {
	return PartSaleResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		PartType:     string(p.PartType),
		Quantity:     p.Quantity,
		PricePerUnit: p.PricePerUnit,
		Total:        p.Total,
		Date:         p.Date.Format(dateLayout),
	}
}

// mapAll never returns nil so empty lists encode as [].
func mapAll[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func FromOrders(in []entities.Order) []OrderResponse {
	return mapAll(in, FromOrder)
}

func FromKPIs(in []entities.KPIRecord) []KPIResponse {
	return mapAll(in, FromKPI)
}

func FromPartSales(in []entities.PartSale) []PartSaleResponse {
	return mapAll(in, FromPartSale)
}

func FromTechnicians(in []entities.Technician) []TechnicianResponse {
	return mapAll(in, FromTechnician)
}
