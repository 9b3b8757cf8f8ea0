package memory

import (
	"errors"
	"sync"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase/interfaces"
)

var ErrSettlementNotFound = errors.New("settlement not found")

const kpiIDPrefix = "K"

// Store keeps every collection in process memory, newest first.
//
// All access goes through one mutex so each mutation completes before the
// next is observed. Observers run after the lock is released and receive a
// copy of the state they were notified about.
type Store struct {
	mu          sync.RWMutex
	ids         interfaces.IIDGenerator
	technicians []entities.Technician
	orders      []entities.Order
	settlements []entities.Settlement
	kpis        []entities.KPIRecord
	parts       []entities.PartSale

	observersMu sync.Mutex
	observers   map[int]interfaces.StoreObserver
	nextObs     int
}

var _ interfaces.IDomainStore = (*Store)(nil)

// NewStore builds a store from seed data. The technician registry is fixed
// for the store's lifetime.
func NewStore(seed entities.Snapshot, ids interfaces.IIDGenerator) *Store {
	s := seed.Clone()
	return &Store{
		ids:         ids,
		technicians: s.Technicians,
		orders:      s.Orders,
		settlements: s.Settlements,
		kpis:        s.KPIs,
		parts:       s.PartSales,
		observers:   make(map[int]interfaces.StoreObserver),
	}
}

func prepend[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}

func (s *Store) AddOrder(o entities.Order) {
	s.mutate(interfaces.CollectionOrders, func() bool {
		s.orders = prepend(s.orders, o)
		return true
	})
}

func (s *Store) AddSettlement(st entities.Settlement) {
	s.mutate(interfaces.CollectionSettlements, func() bool {
		s.settlements = prepend(s.settlements, st)
		return true
	})
}

// UpdateSettlementStatus replaces the status in place. It does not check
// that the transition is legal.
func (s *Store) UpdateSettlementStatus(id string, status entities.SettlementStatus) error {
	found := false
	s.mutate(interfaces.CollectionSettlements, func() bool {
		for i := range s.settlements {
			if s.settlements[i].ID == id {
				s.settlements[i].Status = status
				found = true
				return true
			}
		}
		return false
	})
	if !found {
		return ErrSettlementNotFound
	}
	return nil
}

func (s *Store) AddKPI(k entities.KPIRecord) {
	s.mutate(interfaces.CollectionKPIs, func() bool {
		s.kpis = prepend(s.kpis, k)
		return true
	})
}

// UpsertKPI merges the supplied scores into the record keyed by
// (TechnicianID, Period), or creates one with zeroed scores and a fresh id.
func (s *Store) UpsertKPI(p entities.KPIPatch) entities.KPIRecord {
	var out entities.KPIRecord
	s.mutate(interfaces.CollectionKPIs, func() bool {
		key := p.Key()
		for i := range s.kpis {
			if s.kpis[i].Key() == key {
				s.kpis[i] = p.MergeInto(s.kpis[i])
				out = s.kpis[i]
				return true
			}
		}
		out = p.MergeInto(entities.KPIRecord{
			ID:           s.ids.NewID(kpiIDPrefix),
			TechnicianID: p.TechnicianID,
			Period:       p.Period,
		})
		s.kpis = prepend(s.kpis, out)
		return true
	})
	return out
}

func (s *Store) AddPartSale(p entities.PartSale) {
	s.mutate(interfaces.CollectionPartSales, func() bool {
		s.parts = prepend(s.parts, p)
		return true
	})
}

func (s *Store) Technicians() []entities.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Technician(nil), s.technicians...)
}

func (s *Store) Orders() []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Order(nil), s.orders...)
}

func (s *Store) Settlements() []entities.Settlement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Settlement(nil), s.settlements...)
}

func (s *Store) Settlement(id string) (entities.Settlement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.settlements {
		if st.ID == id {
			return st, true
		}
	}
	return entities.Settlement{}, false
}

func (s *Store) KPIs() []entities.KPIRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.KPIRecord(nil), s.kpis...)
}

func (s *Store) PartSales() []entities.PartSale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.PartSale(nil), s.parts...)
}

func (s *Store) Snapshot() entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() entities.Snapshot {
	return entities.Snapshot{
		Technicians: s.technicians,
		Orders:      s.orders,
		Settlements: s.settlements,
		KPIs:        s.kpis,
		PartSales:   s.parts,
	}.Clone()
}

// Subscribe registers fn for every later mutation.
func (s *Store) Subscribe(fn interfaces.StoreObserver) func() {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Store) mutate(collection string, fn func() (changed bool)) {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.observersMu.Lock()
	observers := make([]interfaces.StoreObserver, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.observersMu.Unlock()

	for _, o := range observers {
		o(collection, snap)
	}
}
