package ingest

import "settlement_console/internal/domain/entities"

// Sink receives built records. The domain store satisfies it.
type Sink interface {
	AddOrder(o entities.Order)
	AddSettlement(s entities.Settlement)
	UpsertKPI(p entities.KPIPatch) entities.KPIRecord
	AddPartSale(p entities.PartSale)
}

// Record is a validated row ready to be written. ApplyTo performs exactly one
// store call and returns the id of the affected record.
type Record interface {
	Kind() RecordKind
	ApplyTo(s Sink) string
}

type OrderRecord struct{ Order entities.Order }

func (OrderRecord) Kind() RecordKind { return KindOrder }

func (r OrderRecord) ApplyTo(s Sink) string {
	s.AddOrder(r.Order)
	return r.Order.ID
}

type SettlementRecord struct{ Settlement entities.Settlement }

func (SettlementRecord) Kind() RecordKind { return KindSettlement }

func (r SettlementRecord) ApplyTo(s Sink) string {
	s.AddSettlement(r.Settlement)
	return r.Settlement.ID
}

// KPIRecord carries a partial update; the surrogate id is only known once the
// store has merged it.
type KPIRecord struct{ Patch entities.KPIPatch }

func (KPIRecord) Kind() RecordKind { return KindKPI }

func (r KPIRecord) ApplyTo(s Sink) string {
	return s.UpsertKPI(r.Patch).ID
}

type PartSaleRecord struct{ PartSale entities.PartSale }

func (PartSaleRecord) Kind() RecordKind { return KindPartSale }

func (r PartSaleRecord) ApplyTo(s Sink) string {
	s.AddPartSale(r.PartSale)
	return r.PartSale.ID
}
