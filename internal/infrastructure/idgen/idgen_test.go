package idgen

import (
	"strings"
	"testing"
)

func TestSequence_NewID(t *testing.T) {
	g := NewSequence()
	if got := g.NewID("O"); got != "O000001" {
		t.Fatalf("expected O000001, got %s", got)
	}
	if got := g.NewID("O"); got != "O000002" {
		t.Fatalf("expected O000002, got %s", got)
	}
	if got := g.NewID("K"); got != "K000001" {
		t.Fatalf("prefixes must count independently, got %s", got)
	}
}

func TestNew(t *testing.T) {
	cases := []struct {
		strategy string
		prefix   string
	}{
		{strategy: "", prefix: "S0"},
		{strategy: "sequence", prefix: "S0"},
		{strategy: "ulid", prefix: "S-"},
		{strategy: "snowflake", prefix: "S-"},
		{strategy: "UUID", prefix: "S-"},
	}

	for _, tc := range cases {
		t.Run(tc.strategy, func(t *testing.T) {
			g, err := New(tc.strategy, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			seen := map[string]bool{}
			for i := 0; i < 50; i++ {
				id := g.NewID("S")
				if !strings.HasPrefix(id, tc.prefix) {
					t.Fatalf("unexpected id format %q", id)
				}
				if seen[id] {
					t.Fatalf("duplicate id %q", id)
				}
				seen[id] = true
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		if _, err := New("dice", 0); err == nil {
			t.Fatalf("expected error for unknown strategy")
		}
	})
}
