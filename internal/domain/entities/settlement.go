package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SettlementCategory maps to the 3C and appliance settlement ledgers.
type SettlementCategory string

const (
	SettlementCategory3C        SettlementCategory = "3C"
	SettlementCategoryAppliance SettlementCategory = "Appliance"
)

// SettlementStatus is the approval lifecycle of a settlement claim.
//
// Allowed transitions: Pending -> Approved, Pending -> Rejected. Both targets
// are terminal. The store does not enforce this; callers do.
type SettlementStatus string

const (
	SettlementStatusPending  SettlementStatus = "Pending"
	SettlementStatusApproved SettlementStatus = "Approved"
	SettlementStatusRejected SettlementStatus = "Rejected"
)

// Settlement is a claim submitted against an order. OrderID is a soft
// reference and is never checked for existence.
type Settlement struct {
	ID             string             `json:"id"`
	OrderID        string             `json:"order_id"`
	Category       SettlementCategory `json:"category"`
	Amount         decimal.Decimal    `json:"amount"`
	Status         SettlementStatus   `json:"status"`
	SubmissionDate time.Time          `json:"submission_date"`
}

// ParseSettlementCategory accepts the English tag or the operator label (3C/家电).
func ParseSettlementCategory(s string) (SettlementCategory, bool) {
	switch strings.TrimSpace(s) {
	case string(SettlementCategory3C), "3c":
		return SettlementCategory3C, true
	case string(SettlementCategoryAppliance), "appliance", "家电":
		return SettlementCategoryAppliance, true
	}
	return "", false
}

// ParseSettlementStatus returns false for anything outside the three known states.
func ParseSettlementStatus(s string) (SettlementStatus, bool) {
	switch SettlementStatus(strings.TrimSpace(s)) {
	case SettlementStatusPending:
		return SettlementStatusPending, true
	case SettlementStatusApproved:
		return SettlementStatusApproved, true
	case SettlementStatusRejected:
		return SettlementStatusRejected, true
	}
	return "", false
}
