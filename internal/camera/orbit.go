// Package camera implements the orbit camera that follows the boat and the
// horizon backdrop that stays in front of it.
package camera

import (
	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
	"github.com/vovakirdan/waverider/internal/ocean"
)

// Orbit is a camera circling a target at a clamped distance and elevation.
type Orbit struct {
	Yaw   float64 // degrees
	Pitch float64 // degrees above the horizon
	Zoom  float64 // distance to the target

	position core.Vec3
	target   core.Vec3
	floored  bool

	cfg config.CameraConfig
}

// NewOrbit creates an orbit camera. The initial zoom is the length of the
// configured position offset.
func NewOrbit(cfg config.CameraConfig) *Orbit {
	o := &Orbit{cfg: cfg}
	o.Reset()
	return o
}

// Reset restores the initial yaw, pitch and zoom.
func (o *Orbit) Reset() {
	off := core.NewVec3(o.cfg.PositionOffset[0], o.cfg.PositionOffset[1], o.cfg.PositionOffset[2])
	o.Yaw = o.cfg.InitialYaw
	o.Pitch = core.ClampF(o.cfg.InitialPitch, o.cfg.MinPitch, o.cfg.MaxPitch)
	o.Zoom = core.ClampF(off.Len(), o.cfg.MinZoom, o.cfg.MaxZoom)
	o.floored = false
}

// Rotate orbits the camera by yaw and pitch input steps, scaled by the
// rotation speed. Pitch stays within the configured range.
func (o *Orbit) Rotate(yawInput, pitchInput float64) {
	o.Yaw = core.WrapDegrees(o.Yaw + yawInput*o.cfg.RotationSpeed)
	o.Pitch = core.ClampF(o.Pitch+pitchInput*o.cfg.RotationSpeed, o.cfg.MinPitch, o.cfg.MaxPitch)
}

// ZoomBy moves the camera closer for positive scroll and further for negative.
func (o *Orbit) ZoomBy(scroll float64) {
	o.Zoom = core.ClampF(o.Zoom-scroll*o.cfg.ZoomSpeed, o.cfg.MinZoom, o.cfg.MaxZoom)
}

// Offset returns the unfloored camera position relative to the target.
func (o *Orbit) Offset() core.Vec3 {
	return core.FromEuler(o.Pitch, o.Yaw, 0).Rotate(core.Vec3{Z: -o.Zoom})
}

// Update places the camera around target and keeps it above the water at
// time t. A nil surface skips the water check.
func (o *Orbit) Update(surface ocean.Surface, target core.Vec3, t float64) core.Vec3 {
	pos := target.Add(o.Offset())
	o.floored = false

	if surface != nil {
		minY := surface.HeightAt(pos.X, pos.Z, t) + o.cfg.MinHeightAboveWater
		if pos.Y < minY {
			pos.Y = minY
			o.floored = true
		}
	}

	o.position = pos
	o.target = target
	return pos
}

// Position returns the camera position from the last Update.
func (o *Orbit) Position() core.Vec3 {
	return o.position
}

// Floored reports whether the last Update lifted the camera above a wave.
func (o *Orbit) Floored() bool {
	return o.floored
}

// Forward returns the unit view direction towards the target.
func (o *Orbit) Forward() core.Vec3 {
	return o.target.Sub(o.position).Normalize()
}
