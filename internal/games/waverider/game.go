// Package waverider implements the sailing game: steer a boat across a
// Gerstner-wave ocean and collect the debris drifting around it.
package waverider

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/waverider/internal/camera"
	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
	"github.com/vovakirdan/waverider/internal/ocean"
	"github.com/vovakirdan/waverider/internal/registry"
	"github.com/vovakirdan/waverider/internal/spawn"
	"github.com/vovakirdan/waverider/internal/vessel"
)

// GameState constants
const (
	StateSailing  = "sailing"  // Normal play
	StatePaused   = "paused"   // Game paused
	StateTimeUp   = "timeup"   // Campaign time limit reached
	StateComplete = "complete" // All debris collected (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Collect every item before the time runs out
	ModeEndless                  // Sail forever, debris keeps coming
)

// configPath stores the custom config path set via CLI
var configPath string

// seaState stores the sea-state preset set via CLI
var seaState = config.SeaModerate

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSeaState sets the sea-state preset. Unknown names fall back to moderate.
func SetSeaState(name string) {
	s, err := config.ParseSeaState(name)
	if err != nil {
		s = config.SeaModerate
	}
	seaState = s
}

// Game implements the Waverider game logic.
type Game struct {
	mode GameMode

	// Simulation objects, rebuilt on every Reset
	field    *ocean.WaveField
	boat     *vessel.Boat
	debris   *spawn.Manager
	orbit    *camera.Orbit
	backdrop *camera.Backdrop
	throttle Axis
	rudder   Axis

	// Game state
	state     string
	score     int
	bonus     int
	tickCount int
	dt        float64

	// Configuration
	runtime   core.RuntimeConfig
	base      config.WaveriderConfig // as loaded, before the sea state
	cfg       config.WaveriderConfig // with the sea state applied
	sea       config.SeaState
	preset    config.SeaState // per-instance sea state, overrides the package default
	configErr error

	// Layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Waverider game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new Waverider game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "waverider_endless"
	}
	return "waverider"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Waverider (Endless)"
	}
	return "Waverider"
}

// SetSea sets the sea state for this instance only. SSH sessions use it
// so concurrent players can sail different seas.
func (g *Game) SetSea(s config.SeaState) {
	g.preset = s
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadWaverider(configPath)
	if err != nil {
		log.Warn("using default config", "error", err)
		cfg = config.DefaultWaveriderConfig()
	}
	sea := seaState
	if g.preset != "" {
		sea = g.preset
	}
	g.ResetWithConfig(runtime, cfg, sea)
	g.configErr = err
}

// ResetWithConfig restarts the game with an explicit configuration and
// sea state instead of the loader's.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.WaveriderConfig, sea config.SeaState) {
	g.runtime = runtime
	g.dt = runtime.TickSeconds()
	g.configErr = nil
	g.base = cfg

	cfg.Waves = slices.Clone(cfg.Waves)
	config.ApplySeaState(&cfg, sea)
	field, err := cfg.WaveField()
	if err != nil {
		// Only reachable with an unvalidated config
		g.configErr = err
		cfg = config.DefaultWaveriderConfig()
		config.ApplySeaState(&cfg, sea)
		field, _ = cfg.WaveField()
	}
	g.cfg = cfg
	g.sea = sea
	g.field = field

	g.minScreenW = 30
	g.minScreenH = 10
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.boat = vessel.NewBoat(cfg.Boat, core.Vec2{}, 0)
	g.debris = spawn.NewManager(cfg.Spawner, cfg.Debris, runtime.Seed)
	g.debris.SetEndless(g.mode == ModeEndless)
	g.orbit = camera.NewOrbit(cfg.Camera)
	g.backdrop = camera.NewBackdrop(cfg.Backdrop, 0)
	g.throttle = NewAxis(cfg.Input)
	g.rudder = NewAxis(cfg.Input)

	g.state = StateSailing
	g.score = 0
	g.bonus = 0
	g.tickCount = 0

	// Place everything on the water before the first frame
	g.boat.Settle(g.field, g.boat.Yaw, 0, 1)
	g.orbit.Update(g.field, g.boat.Position, 0)
	g.backdrop.Follow(g.orbit.Position(), g.orbit.Forward())
}

// Resize adapts the game to new screen dimensions. The view scales with the
// screen, so the voyage carries on.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.finished() {
		g.ResetWithConfig(g.runtime, g.base, g.sea)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StateSailing
		} else if g.state == StateSailing {
			g.state = StatePaused
		}
	}

	if g.state != StateSailing {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	t := g.Time()

	g.updateCamera(in)

	throttle := g.throttle.Update(in.Has(core.ActionUp), in.Has(core.ActionDown), g.dt)
	rudder := g.rudder.Update(in.Has(core.ActionRight), in.Has(core.ActionLeft), g.dt)
	g.boat.Steer(throttle, rudder)
	g.boat.Update(g.field, t, g.dt)

	res := g.debris.Update(g.field, g.boat.Pos(), t, g.dt)
	g.score += res.Collected * g.cfg.Session.CollectPoints

	g.orbit.Update(g.field, g.boat.Position, t)
	g.backdrop.Follow(g.orbit.Position(), g.orbit.Forward())

	g.checkEnd(t)

	return core.StepResult{State: g.State()}
}

// updateCamera applies orbit and zoom keys.
func (g *Game) updateCamera(in core.InputFrame) {
	var yaw, pitch float64
	if in.Has(core.ActionOrbitLeft) {
		yaw--
	}
	if in.Has(core.ActionOrbitRight) {
		yaw++
	}
	if in.Has(core.ActionOrbitUp) {
		pitch++
	}
	if in.Has(core.ActionOrbitDown) {
		pitch--
	}
	if yaw != 0 || pitch != 0 {
		g.orbit.Rotate(yaw, pitch)
	}

	if in.Has(core.ActionZoomIn) {
		g.orbit.ZoomBy(1)
	}
	if in.Has(core.ActionZoomOut) {
		g.orbit.ZoomBy(-1)
	}
}

// checkEnd finishes a campaign when every item is collected or time is up.
func (g *Game) checkEnd(t float64) {
	if g.mode != ModeCampaign {
		return
	}

	limit := g.cfg.Session.TimeLimit
	if g.debris.Exhausted() {
		if limit > 0 {
			left := math.Max(limit-t, 0)
			g.bonus = int(left) * g.cfg.Session.TimeBonusPerSecond
			g.score += g.bonus
		}
		g.state = StateComplete
		return
	}

	if limit > 0 && t >= limit {
		g.state = StateTimeUp
	}
}

func (g *Game) finished() bool {
	return g.state == StateTimeUp || g.state == StateComplete
}

// Time returns the simulated time in seconds.
func (g *Game) Time() float64 {
	return float64(g.tickCount) * g.dt
}

// TimeLeft returns the remaining campaign time, or -1 without a limit.
func (g *Game) TimeLeft() float64 {
	limit := g.cfg.Session.TimeLimit
	if g.mode != ModeCampaign || limit <= 0 {
		return -1
	}
	return math.Max(limit-g.Time(), 0)
}

// Field returns the wave field of the current session.
func (g *Game) Field() *ocean.WaveField {
	return g.field
}

// Boat returns the player's boat.
func (g *Game) Boat() *vessel.Boat {
	return g.boat
}

// Debris returns the debris manager.
func (g *Game) Debris() *spawn.Manager {
	return g.debris
}

// ConfigError returns the error that made Reset fall back to defaults, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.finished(),
		Paused:   g.state == StatePaused,
	}
}

// Voyage summarizes the run for the voyage log.
func (g *Game) Voyage() core.Voyage {
	return core.Voyage{
		SeaState:  string(g.sea),
		Collected: g.debris.Collected(),
		Distance:  g.boat.Distance(),
		Duration:  g.Time(),
	}
}

// Register the games with the registry
func init() {
	registry.Register("waverider", func() registry.Game {
		return New()
	})
	registry.Register("waverider_endless", func() registry.Game {
		return NewEndless()
	})
}
