package vessel

import (
	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
	"github.com/vovakirdan/waverider/internal/ocean"
)

// Boat is the player's vessel.
type Boat struct {
	Hull
	Motion

	throttle float64
	rudder   float64
	distance float64
}

// NewBoat creates a stopped boat at pos heading yaw.
func NewBoat(cfg config.BoatConfig, pos core.Vec2, yaw float64) *Boat {
	return &Boat{
		Hull:   NewHull(cfg.Hull, pos, yaw),
		Motion: NewMotion(cfg.Motion, yaw),
	}
}

// Steer sets the throttle and rudder inputs, each clamped to [-1, 1].
func (b *Boat) Steer(throttle, rudder float64) {
	b.throttle = core.ClampF(throttle, -1, 1)
	b.rudder = core.ClampF(rudder, -1, 1)
}

// Inputs returns the current throttle and rudder.
func (b *Boat) Inputs() (throttle, rudder float64) {
	return b.throttle, b.rudder
}

// Update advances the boat by dt and settles it on the surface at time t.
// Turning authority scales with speed, so the boat must be moving to turn.
func (b *Boat) Update(surface ocean.Surface, t, dt float64) {
	b.Accelerate(b.throttle, dt)
	b.Turn(b.rudder, b.SteerageScale(), dt)

	step := b.Motion.Step(dt)
	b.Position.X += step.X
	b.Position.Z += step.Z
	b.distance += step.Len()

	b.Settle(surface, b.Yaw, t, dt)
}

// Pos returns the boat's horizontal position.
func (b *Boat) Pos() core.Vec2 {
	return b.Position.XZ()
}

// Distance returns the total distance sailed.
func (b *Boat) Distance() float64 {
	return b.distance
}
