// Package vessel implements everything that floats: the hull that rides the
// wave field, the player's boat and the autonomous drifting debris.
//
// Nothing here owns simulation time. Callers pass the current time and the
// frame delta, so a session can be replayed tick by tick.
package vessel

import (
	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
	"github.com/vovakirdan/waverider/internal/ocean"
)

// HullSample holds the water heights under the four probes of a hull.
type HullSample struct {
	Front, Back, Left, Right float64
}

// Mean returns the average of the four probe heights.
func (s HullSample) Mean() float64 {
	return (s.Front + s.Back + s.Left + s.Right) * 0.25
}

// Hull is a floating body that follows the water surface.
// Position.Y and Rotation are owned by Settle; X, Z and yaw by the caller.
type Hull struct {
	Position core.Vec3
	Rotation core.Quat
	Pitch    float64 // last target pitch in degrees
	Roll     float64 // last target roll in degrees

	cfg config.HullConfig
}

// NewHull creates a level hull at pos.
func NewHull(cfg config.HullConfig, pos core.Vec2, yaw float64) Hull {
	return Hull{
		Position: pos.Lift(0),
		Rotation: core.FromEuler(0, yaw, 0),
		cfg:      cfg,
	}
}

// Config returns the hull configuration.
func (h *Hull) Config() config.HullConfig {
	return h.cfg
}

// ProbePositions returns the world XZ positions of the front, back, left and
// right probes for a hull at pos heading yaw.
func (h *Hull) ProbePositions(pos core.Vec2, yaw float64) (front, back, left, right core.Vec2) {
	fwd := core.Heading(yaw)
	side := core.Vec2{X: fwd.Z, Z: -fwd.X}
	s := h.cfg.Samplers
	return pos.Add(fwd.Scale(s.Front)),
		pos.Sub(fwd.Scale(s.Back)),
		pos.Sub(side.Scale(s.Left)),
		pos.Add(side.Scale(s.Right))
}

// Sample reads the surface under the four probes at time t.
func (h *Hull) Sample(surface ocean.Surface, pos core.Vec2, yaw, t float64) HullSample {
	f, b, l, r := h.ProbePositions(pos, yaw)
	return HullSample{
		Front: surface.HeightAt(f.X, f.Z, t),
		Back:  surface.HeightAt(b.X, b.Z, t),
		Left:  surface.HeightAt(l.X, l.Z, t),
		Right: surface.HeightAt(r.X, r.Z, t),
	}
}

// Attitude converts a sample into clamped pitch and roll in degrees.
func (h *Hull) Attitude(s HullSample) (pitch, roll float64) {
	return Attitude(h.cfg.Tilt, s)
}

// Attitude converts a sample into clamped pitch and roll in degrees.
// A bow sitting higher than the stern gives negative pitch (nose up).
func Attitude(tilt config.TiltConfig, s HullSample) (pitch, roll float64) {
	pitch = core.ClampF((s.Back-s.Front)*tilt.PitchStrength, -tilt.MaxPitch, tilt.MaxPitch)
	roll = core.ClampF((s.Right-s.Left)*tilt.RollStrength, -tilt.MaxRoll, tilt.MaxRoll)
	return pitch, roll
}

// Settle places the hull on the surface for heading yaw at time t and turns
// it towards the surface attitude. A nil surface leaves the hull untouched.
func (h *Hull) Settle(surface ocean.Surface, yaw, t, dt float64) {
	if surface == nil {
		return
	}

	sample := h.Sample(surface, h.Position.XZ(), yaw, t)
	h.Position.Y = sample.Mean()

	h.Pitch, h.Roll = h.Attitude(sample)
	target := core.FromEuler(h.Pitch, yaw, h.Roll)
	h.Rotation = core.Slerp(h.Rotation, target, core.ClampF(dt*h.cfg.Tilt.RotationSmooth, 0, 1))
}

// Euler returns the current (smoothed) pitch, yaw and roll in degrees.
func (h *Hull) Euler() (pitch, yaw, roll float64) {
	return h.Rotation.Euler()
}
