package interfaces

import (
	"settlement_console/internal/domain/entities"
)

// Collection names passed to store observers.
const (
	CollectionOrders      = "orders"
	CollectionSettlements = "settlements"
	CollectionKPIs        = "kpis"
	CollectionPartSales   = "part_sales"
)

// StoreObserver is notified after every store mutation with the name of the
// collection that changed and a copy of the resulting state.
type StoreObserver func(collection string, snapshot entities.Snapshot)

// IDomainStore is the authoritative in-memory state of the console.
//
// Mutations are synchronous and never fail except UpdateSettlementStatus on an
// unknown id. Append-style operations insert at the front so every collection
// reads newest first.
type IDomainStore interface {
	AddOrder(o entities.Order)
	AddSettlement(s entities.Settlement)
	UpdateSettlementStatus(id string, status entities.SettlementStatus) error
	AddKPI(k entities.KPIRecord)
	UpsertKPI(p entities.KPIPatch) entities.KPIRecord
	AddPartSale(p entities.PartSale)

	Technicians() []entities.Technician
	Orders() []entities.Order
	Settlements() []entities.Settlement
	Settlement(id string) (entities.Settlement, bool)
	KPIs() []entities.KPIRecord
	PartSales() []entities.PartSale
	Snapshot() entities.Snapshot

	Subscribe(fn StoreObserver) (unsubscribe func())
}
