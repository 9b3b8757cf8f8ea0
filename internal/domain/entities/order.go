package entities

import (
	"strings"
	"time"
)

// OrderType distinguishes installation work from repair work.
type OrderType string

const (
	OrderTypeInstallation OrderType = "Installation"
	OrderTypeRepair       OrderType = "Repair"
)

// OrderStatus is the lifecycle of a service order. The console only ever
// creates orders as Pending; other transitions happen outside of it.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order is a field-service order assigned to a technician.
type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"order_number"`
	CustomerName string      `json:"customer_name"`
	Address      string      `json:"address"`
	Type         OrderType   `json:"type"`
	Date         time.Time   `json:"date"`
	TechnicianID string      `json:"technician_id"`
	Status       OrderStatus `json:"status"`
}

// ParseOrderType accepts the English tag or the operator label (安装/维修).
func ParseOrderType(s string) (OrderType, bool) {
	switch strings.TrimSpace(s) {
	case string(OrderTypeInstallation), "installation", "安装":
		return OrderTypeInstallation, true
	case string(OrderTypeRepair), "repair", "维修":
		return OrderTypeRepair, true
	}
	return "", false
}
