package spawn

import (
	"math"
	"testing"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
)

type flatSea struct{}

func (flatSea) HeightAt(_, _, _ float64) float64 { return 0 }

// stillDebris returns debris that neither moves nor turns.
func stillDebris() config.DebrisConfig {
	d := config.DefaultWaveriderConfig().Debris
	d.ForwardInput = 0
	d.TurnInput = 0
	d.RandomizeTurn = false
	return d
}

func testSpawner(chance float64, maxActive int) config.SpawnerConfig {
	s := config.DefaultWaveriderConfig().Spawner
	s.SpawnChance = chance
	s.MaxActive = maxActive
	return s
}

func TestPeriodic(t *testing.T) {
	p := NewPeriodic(1)

	if n := p.Advance(0.5); n != 0 {
		t.Errorf("fired %d times after 0.5s, expected 0", n)
	}
	if n := p.Advance(0.5); n != 1 {
		t.Errorf("fired %d times after 1s, expected 1", n)
	}
	if n := p.Advance(3.25); n != 3 {
		t.Errorf("fired %d times after 3.25s, expected 3", n)
	}
	if n := p.Advance(0.75); n != 1 {
		t.Errorf("carry-over lost: fired %d times, expected 1", n)
	}

	p.Reset()
	if n := p.Advance(0.9); n != 0 {
		t.Errorf("fired %d times after reset, expected 0", n)
	}

	never := NewPeriodic(0)
	if n := never.Advance(100); n != 0 {
		t.Errorf("zero interval fired %d times", n)
	}
}

func TestNoSpawnWithZeroChance(t *testing.T) {
	m := NewManager(testSpawner(0, 10), stillDebris(), 1)

	for i := 0; i < 600; i++ {
		m.Update(flatSea{}, core.Vec2{}, float64(i)/10, 0.1)
	}
	if m.Active() != 0 || len(m.Items()) != 0 {
		t.Errorf("active = %d with spawn chance 0", m.Active())
	}
}

func TestSpawnOnPerimeterUpToCap(t *testing.T) {
	cfg := testSpawner(1, 3)
	m := NewManager(cfg, stillDebris(), 1)
	player := core.NewVec2(7, -3)

	for i := 1; i <= 10; i++ {
		res := m.Update(flatSea{}, player, float64(i), 1)
		if i <= 3 && res.Spawned != 1 {
			t.Errorf("second %d: spawned %d, expected 1", i, res.Spawned)
		}
		if i > 3 && res.Spawned != 0 {
			t.Errorf("second %d: spawned %d above the cap", i, res.Spawned)
		}
	}

	if m.Active() != 3 {
		t.Fatalf("active = %d, expected 3", m.Active())
	}
	for _, d := range m.Items() {
		if dist := d.Pos().Dist(player); math.Abs(dist-cfg.SpawnRadius) > 1e-9 {
			t.Errorf("debris %d spawned %v from the player, expected %v", d.ID, dist, cfg.SpawnRadius)
		}
	}
}

func TestPickupAndExhaustion(t *testing.T) {
	m := NewManager(testSpawner(1, 2), stillDebris(), 3)

	collect := func() {
		t.Helper()
		m.Update(flatSea{}, core.Vec2{}, 0, 1)
		items := m.Items()
		if len(items) == 0 {
			t.Fatal("nothing spawned")
		}
		res := m.Update(flatSea{}, items[len(items)-1].Pos(), 0, 0.1)
		if res.Collected != 1 {
			t.Fatalf("collected %d, expected 1", res.Collected)
		}
	}

	collect()
	if m.Collected() != 1 || m.Active() != 0 {
		t.Errorf("after one pickup collected=%d active=%d, expected 1 and 0", m.Collected(), m.Active())
	}
	if m.Exhausted() {
		t.Error("exhausted after one of two items")
	}

	collect()
	if !m.Exhausted() {
		t.Error("expected exhaustion after collecting the cap")
	}
	if m.Remaining() != 0 {
		t.Errorf("remaining = %d, expected 0", m.Remaining())
	}

	// Collected items count towards the cap, so nothing more spawns.
	for i := 0; i < 5; i++ {
		if res := m.Update(flatSea{}, core.Vec2{}, 0, 1); res.Spawned != 0 {
			t.Fatalf("spawned after exhaustion")
		}
	}
}

func TestEndlessKeepsSpawning(t *testing.T) {
	m := NewManager(testSpawner(1, 1), stillDebris(), 3)
	m.SetEndless(true)

	for i := 0; i < 5; i++ {
		m.Update(flatSea{}, core.Vec2{}, 0, 1)
		items := m.Items()
		if len(items) != 1 {
			t.Fatalf("round %d: %d items, expected 1", i, len(items))
		}
		m.Update(flatSea{}, items[0].Pos(), 0, 0.1)
	}

	if m.Collected() != 5 || m.Exhausted() || m.Remaining() != -1 {
		t.Errorf("endless collected=%d exhausted=%v remaining=%d", m.Collected(), m.Exhausted(), m.Remaining())
	}
}

func TestDespawnBeyondMargin(t *testing.T) {
	cfg := testSpawner(1, 5)
	m := NewManager(cfg, stillDebris(), 9)

	m.Update(flatSea{}, core.Vec2{}, 0, 1)
	if m.Active() != 1 {
		t.Fatalf("active = %d, expected 1", m.Active())
	}
	d := m.Items()[0]

	// Step away from the debris, staying inside radius + margin.
	away := d.Pos().Normalize().Scale(-(cfg.DespawnMargin - 1))
	if res := m.Update(flatSea{}, away, 0, 0.1); res.Despawned != 0 {
		t.Fatalf("despawned inside the margin")
	}

	away = d.Pos().Normalize().Scale(-(cfg.DespawnMargin + 1))
	res := m.Update(flatSea{}, away, 0, 0.1)
	if res.Despawned != 1 || m.Active() != 0 {
		t.Errorf("despawned=%d active=%d, expected 1 and 0", res.Despawned, m.Active())
	}
	if m.Collected() != 0 {
		t.Errorf("despawn counted as pickup")
	}
}

func TestSpawnDeterminism(t *testing.T) {
	a := NewManager(testSpawner(0.5, 10), config.DefaultWaveriderConfig().Debris, 42)
	b := NewManager(testSpawner(0.5, 10), config.DefaultWaveriderConfig().Debris, 42)

	for i := 1; i <= 300; i++ {
		a.Update(flatSea{}, core.Vec2{}, float64(i)/30, 1.0/30)
		b.Update(flatSea{}, core.Vec2{}, float64(i)/30, 1.0/30)
	}

	ia, ib := a.Items(), b.Items()
	if len(ia) != len(ib) {
		t.Fatalf("item counts differ: %d vs %d", len(ia), len(ib))
	}
	for i := range ia {
		if ia[i].ID != ib[i].ID || ia[i].Position != ib[i].Position {
			t.Errorf("item %d differs: %+v vs %+v", i, ia[i].Position, ib[i].Position)
		}
	}
}

func TestResetClearsState(t *testing.T) {
	m := NewManager(testSpawner(1, 4), stillDebris(), 1)
	m.Update(flatSea{}, core.Vec2{}, 0, 2)
	m.Reset(1)

	if m.Active() != 0 || m.Collected() != 0 || len(m.Items()) != 0 {
		t.Errorf("reset left active=%d collected=%d items=%d", m.Active(), m.Collected(), len(m.Items()))
	}
}
