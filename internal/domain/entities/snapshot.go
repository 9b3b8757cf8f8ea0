package entities

// Snapshot is a point-in-time copy of every collection, newest first. It is
// also the shape of the seed data the store is built from.
type Snapshot struct {
	Technicians []Technician `json:"technicians"`
	Orders      []Order      `json:"orders"`
	Settlements []Settlement `json:"settlements"`
	KPIs        []KPIRecord  `json:"kpis"`
	PartSales   []PartSale   `json:"part_sales"`
}

// Clone returns a deep enough copy that callers can mutate slices freely.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Technicians: append([]Technician(nil), s.Technicians...),
		Orders:      append([]Order(nil), s.Orders...),
		Settlements: append([]Settlement(nil), s.Settlements...),
		KPIs:        append([]KPIRecord(nil), s.KPIs...),
		PartSales:   append([]PartSale(nil), s.PartSales...),
	}
}

// FindTechnician looks a technician up by id.
func (s Snapshot) FindTechnician(id string) (Technician, bool) {
	for _, t := range s.Technicians {
		if t.ID == id {
			return t, true
		}
	}
	return Technician{}, false
}
