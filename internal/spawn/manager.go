package spawn

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
	"github.com/vovakirdan/waverider/internal/ocean"
	"github.com/vovakirdan/waverider/internal/vessel"
)

// Debris is a single floating item.
type Debris struct {
	ID int
	*vessel.Drifter
}

// UpdateResult reports what happened during one Manager update.
type UpdateResult struct {
	Spawned   int
	Despawned int
	Collected int
}

// Manager owns the debris around the player. It is not safe for concurrent
// use; each session has its own.
type Manager struct {
	cfg     config.SpawnerConfig
	debris  config.DebrisConfig
	rng     *rand.Rand
	timer   Periodic
	items   []*Debris
	nextID  int
	active  int
	picked  int
	endless bool
}

// NewManager creates a spawner seeded for deterministic play.
func NewManager(cfg config.SpawnerConfig, debris config.DebrisConfig, seed int64) *Manager {
	m := &Manager{
		cfg:    cfg,
		debris: debris,
		items:  make([]*Debris, 0, max(cfg.MaxActive, 4)),
	}
	m.Reset(seed)
	return m
}

// Reset removes all debris and restarts the RNG and timer.
func (m *Manager) Reset(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
	m.timer = NewPeriodic(m.cfg.Interval)
	m.items = m.items[:0]
	m.nextID = 1
	m.active = 0
	m.picked = 0
}

// SetEndless makes the cap apply to active debris only, so collecting never
// exhausts the spawner.
func (m *Manager) SetEndless(endless bool) {
	m.endless = endless
}

// Update runs due spawn trials around player, moves the debris on the surface,
// then drops debris that drifted out of range and collects debris in reach.
func (m *Manager) Update(surface ocean.Surface, player core.Vec2, t, dt float64) UpdateResult {
	var res UpdateResult

	for n, i := m.timer.Advance(dt), 0; i < n; i++ {
		if m.trySpawn(player) {
			res.Spawned++
		}
	}

	despawnDist := m.cfg.SpawnRadius + m.cfg.DespawnMargin
	kept := m.items[:0]
	for _, d := range m.items {
		d.Update(surface, t, dt)

		dist := d.Pos().Dist(player)
		switch {
		case dist <= m.cfg.PickupRadius:
			m.picked++
			m.release()
			res.Collected++
		case dist > despawnDist:
			m.release()
			res.Despawned++
		default:
			kept = append(kept, d)
		}
	}
	clear(m.items[len(kept):])
	m.items = kept

	return res
}

// trySpawn runs one Bernoulli trial if the cap allows it.
func (m *Manager) trySpawn(player core.Vec2) bool {
	used := m.active
	if !m.endless {
		used += m.picked
	}
	if used >= m.cfg.MaxActive {
		return false
	}
	if m.rng.Float64() >= m.cfg.SpawnChance {
		return false
	}

	angle := m.rng.Float64() * 2 * math.Pi
	pos := player.Add(core.NewVec2(math.Cos(angle), math.Sin(angle)).Scale(m.cfg.SpawnRadius))

	m.items = append(m.items, &Debris{
		ID:      m.nextID,
		Drifter: vessel.NewDrifter(m.debris, pos, 0, m.rng),
	})
	m.nextID++
	m.active++
	return true
}

// release decrements the active count, never below zero.
func (m *Manager) release() {
	m.active = max(m.active-1, 0)
}

// Items returns the live debris. The slice is only valid until the next Update.
func (m *Manager) Items() []*Debris {
	return m.items
}

// Active returns the number of live debris items.
func (m *Manager) Active() int {
	return m.active
}

// Collected returns the number of debris items picked up.
func (m *Manager) Collected() int {
	return m.picked
}

// Remaining returns how many more items can still be collected, or -1 when
// endless.
func (m *Manager) Remaining() int {
	if m.endless {
		return -1
	}
	return max(m.cfg.MaxActive-m.picked, 0)
}

// Exhausted reports whether every item the spawner may ever produce has been
// collected. Endless spawners are never exhausted.
func (m *Manager) Exhausted() bool {
	return !m.endless && m.picked >= m.cfg.MaxActive
}
