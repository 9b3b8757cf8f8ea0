package ingest

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"settlement_console/internal/domain/entities"
)

// Assignment strategy names accepted by NewAssigner.
const (
	AssignRandom     = "random"
	AssignRoundRobin = "round_robin"
	AssignFixed      = "fixed"
)

// TechnicianAssigner picks the technician for a batch-imported order, since
// order sheets carry no technician column. ok is false when nobody can be
// assigned.
type TechnicianAssigner interface {
	Assign(registry []entities.Technician) (tech entities.Technician, ok bool)
}

// NewAssigner builds the strategy named by cfg. rnd is only used by the
// random strategy and may be nil otherwise.
func NewAssigner(strategy, fixedTechnicianID string, rnd *rand.Rand) (TechnicianAssigner, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case AssignRandom:
		if rnd == nil {
			rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		}
		return &RandomAssigner{rnd: rnd}, nil
	case AssignRoundRobin, "":
		return &RoundRobinAssigner{}, nil
	case AssignFixed:
		if strings.TrimSpace(fixedTechnicianID) == "" {
			return nil, fmt.Errorf("fixed assignment needs a technician id")
		}
		return FixedAssigner{TechnicianID: strings.TrimSpace(fixedTechnicianID)}, nil
	}
	return nil, fmt.Errorf("unknown assignment strategy %q", strategy)
}

// RandomAssigner picks uniformly from the registry.
type RandomAssigner struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomAssigner(rnd *rand.Rand) *RandomAssigner {
	return &RandomAssigner{rnd: rnd}
}

func (a *RandomAssigner) Assign(registry []entities.Technician) (entities.Technician, bool) {
	if len(registry) == 0 {
		return entities.Technician{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return registry[a.rnd.IntN(len(registry))], true
}

// RoundRobinAssigner cycles through the registry in order, across batches.
type RoundRobinAssigner struct {
	mu   sync.Mutex
	next int
}

func (a *RoundRobinAssigner) Assign(registry []entities.Technician) (entities.Technician, bool) {
	if len(registry) == 0 {
		return entities.Technician{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	t := registry[a.next%len(registry)]
	a.next++
	return t, true
}

// FixedAssigner always assigns the same technician.
type FixedAssigner struct {
	TechnicianID string
}

func (a FixedAssigner) Assign(registry []entities.Technician) (entities.Technician, bool) {
	for _, t := range registry {
		if t.ID == a.TechnicianID {
			return t, true
		}
	}
	return entities.Technician{}, false
}

// DatePicker chooses the date stamped on a batch-imported record. Batch
// sources report monthly aggregates, so only the month is meaningful.
type DatePicker interface {
	PickDate(monthStart time.Time) time.Time
}

// RandomDayPicker picks a uniformly random day between the 1st and the 28th.
type RandomDayPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomDayPicker(rnd *rand.Rand) *RandomDayPicker {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 1))
	}
	return &RandomDayPicker{rnd: rnd}
}

func (p *RandomDayPicker) PickDate(monthStart time.Time) time.Time {
	p.mu.Lock()
	day := p.rnd.IntN(28)
	p.mu.Unlock()
	return monthStart.AddDate(0, 0, day)
}

// FirstDayPicker always returns the first of the month.
type FirstDayPicker struct{}

func (FirstDayPicker) PickDate(monthStart time.Time) time.Time { return monthStart }
