package idgen

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"settlement_console/internal/usecase/interfaces"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Strategy names accepted by New.
const (
	StrategySequence  = "sequence"
	StrategyULID      = "ulid"
	StrategySnowflake = "snowflake"
	StrategyUUID      = "uuid"
)

// New returns the generator for strategy. node is only used by snowflake.
func New(strategy string, node int64) (interfaces.IIDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategySequence, "":
		return NewSequence(), nil
	case StrategyULID:
		return NewULID(), nil
	case StrategySnowflake:
		return NewSnowflake(node)
	case StrategyUUID:
		return UUID{}, nil
	}
	return nil, fmt.Errorf("unknown id strategy %q", strategy)
}

// Sequence hands out per-prefix monotonic ids (O000001, O000002, ...). It is
// the default because batch outcomes stay reproducible.
type Sequence struct {
	mu    sync.Mutex
	next  map[string]int
	width int
}

func NewSequence() *Sequence {
	return &Sequence{next: make(map[string]int), width: 6}
}

func (g *Sequence) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next[prefix]++
	return fmt.Sprintf("%s%0*d", prefix, g.width, g.next[prefix])
}

// ULID produces lexically sortable ids from a monotonic entropy source.
type ULID struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULID() *ULID {
	return &ULID{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULID) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
	return prefix + "-" + id.String()
}

// Snowflake wraps a snowflake node. The node is safe for concurrent use.
type Snowflake struct {
	node *snowflake.Node
}

func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake.NewNode: %w", err)
	}
	return &Snowflake{node: n}, nil
}

func (g *Snowflake) NewID(prefix string) string {
	return prefix + "-" + g.node.Generate().String()
}

// UUID uses random v4 uuids.
type UUID struct{}

func (UUID) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
