package flash

import (
	"testing"

	"flash-ca/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "12", "h": "3", "seed": "77"})
	if c.Width != 12 || c.Height != 3 || c.Seed != 77 {
		t.Fatalf("unexpected config %+v", c)
	}

	def := DefaultConfig()
	if got := FromMap(map[string]string{"w": "-4", "h": "x", "seed": "0"}); got != def {
		t.Fatalf("invalid values should keep defaults, got %+v", got)
	}
	if got := FromMap(nil); got != def {
		t.Fatalf("nil map should yield defaults, got %+v", got)
	}
}

func TestFromMapRejectsOversizedGrids(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{"w": "4294967296", "h": "4294967296", "seed": "3"})
	if c.Width != def.Width || c.Height != def.Height {
		t.Fatalf("oversized dimensions should keep defaults, got %dx%d", c.Width, c.Height)
	}
	if c.Seed != 3 {
		t.Fatalf("seed should still apply, got %d", c.Seed)
	}
}

func TestNewWithConfigFallsBackForOversizedGrids(t *testing.T) {
	// 2^32 x 2^32 wraps to zero cells when multiplied naively.
	s := NewWithConfig(Config{Width: 1 << 32, Height: 1 << 32, Seed: 1})
	size := s.Size()
	if size.W*size.H != s.Grid().Len() {
		t.Fatalf("%dx%d grid holds %d cells", size.W, size.H, s.Grid().Len())
	}
	def := DefaultConfig()
	if size.W != def.Width || size.H != def.Height {
		t.Fatalf("expected the default %dx%d grid, got %dx%d", def.Width, def.Height, size.W, size.H)
	}
	if _, ok := s.LevelAt(0, 0); !ok {
		t.Fatal("origin should be addressable")
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["flash"]
	if !ok {
		t.Fatal("flash sim not registered")
	}
	sim := factory(map[string]string{"w": "7", "h": "5"})
	if sim.Name() != "flash" {
		t.Fatalf("unexpected name %q", sim.Name())
	}
	if size := sim.Size(); size.W != 7 || size.H != 5 {
		t.Fatalf("unexpected size %+v", size)
	}
	if len(sim.Cells()) != 35 {
		t.Fatalf("expected 35 display cells, got %d", len(sim.Cells()))
	}
	for _, lvl := range sim.Cells() {
		if lvl > core.MaxLevel {
			t.Fatalf("seeded level %d above MaxLevel", lvl)
		}
	}
}

func TestNewWithConfigClampsDimensions(t *testing.T) {
	s := NewWithConfig(Config{Width: 0, Height: -3, Seed: 5})
	if size := s.Size(); size.W != 1 || size.H != 1 {
		t.Fatalf("expected a 1x1 grid, got %+v", size)
	}
	// A lone cell can only ever flash by itself.
	tick, ok := FirstSync(s, 20)
	if !ok || tick > 10 {
		t.Fatalf("FirstSync on 1x1 = %d, %v", tick, ok)
	}
}
