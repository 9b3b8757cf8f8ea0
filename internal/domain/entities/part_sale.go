package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PartType string

const (
	PartTypeOriginalBattery    PartType = "OriginalBattery"
	PartTypeNonOriginalBattery PartType = "NonOriginalBattery"
)

// PartSale logs parts sold on an order. Total is always derived from
// Quantity and PricePerUnit; use NewPartSale rather than setting it by hand.
type PartSale struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	PartType     PartType        `json:"part_type"`
	Quantity     int64           `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
}

func NewPartSale(id, orderID string, partType PartType, quantity int64, pricePerUnit decimal.Decimal, date time.Time) PartSale {
	return PartSale{
		ID:           id,
		OrderID:      orderID,
		PartType:     partType,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		Total:        pricePerUnit.Mul(decimal.NewFromInt(quantity)),
		Date:         date,
	}
}

// ParsePartType accepts the English tag or the operator label.
func ParsePartType(s string) (PartType, bool) {
	switch strings.TrimSpace(s) {
	case string(PartTypeOriginalBattery), "original_battery", "原装电池":
		return PartTypeOriginalBattery, true
	case string(PartTypeNonOriginalBattery), "non_original_battery", "非原厂电池":
		return PartTypeNonOriginalBattery, true
	}
	return "", false
}
