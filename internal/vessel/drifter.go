package vessel

import (
	"math/rand"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
	"github.com/vovakirdan/waverider/internal/ocean"
)

// Drifter is an autonomous floater that sails with fixed inputs.
// Unlike the boat, its turn rate does not depend on speed.
type Drifter struct {
	Hull
	Motion

	ForwardInput float64
	TurnInput    float64
}

// NewDrifter creates a drifter at pos heading yaw. When the config asks for a
// randomized turn, TurnInput is drawn uniformly from [-1, 1) using rng.
func NewDrifter(cfg config.DebrisConfig, pos core.Vec2, yaw float64, rng *rand.Rand) *Drifter {
	d := &Drifter{
		Hull:         NewHull(cfg.Hull, pos, yaw),
		Motion:       NewMotion(cfg.Motion, yaw),
		ForwardInput: core.ClampF(cfg.ForwardInput, -1, 1),
		TurnInput:    core.ClampF(cfg.TurnInput, -1, 1),
	}
	if cfg.RandomizeTurn && rng != nil {
		d.TurnInput = rng.Float64()*2 - 1
	}
	return d
}

// Update advances the drifter by dt and settles it on the surface at time t.
func (d *Drifter) Update(surface ocean.Surface, t, dt float64) {
	d.Accelerate(d.ForwardInput, dt)
	d.Turn(d.TurnInput, 1, dt)

	step := d.Motion.Step(dt)
	d.Position.X += step.X
	d.Position.Z += step.Z

	d.Settle(surface, d.Yaw, t, dt)
}

// Pos returns the drifter's horizontal position.
func (d *Drifter) Pos() core.Vec2 {
	return d.Position.XZ()
}
