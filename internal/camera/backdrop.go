package camera

import (
	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
)

// minFlatForward is the squared horizontal length below which the view is
// treated as straight up or down.
const minFlatForward = 1e-4

// Backdrop is a horizon billboard kept at a fixed distance in front of the
// camera. Its height is never changed by Follow.
type Backdrop struct {
	Position core.Vec3
	Heading  float64 // degrees

	cfg config.BackdropConfig
}

// NewBackdrop creates a backdrop at height y.
func NewBackdrop(cfg config.BackdropConfig, y float64) *Backdrop {
	return &Backdrop{Position: core.Vec3{Y: y}, cfg: cfg}
}

// Follow moves the backdrop in front of a camera at camPos looking along
// forward. It reports false and leaves the backdrop alone when the camera
// looks straight up or down.
func (b *Backdrop) Follow(camPos, forward core.Vec3) bool {
	flat := forward.XZ()
	if flat.LenSq() < minFlatForward {
		return false
	}
	flat = flat.Normalize()

	target := camPos.XZ().Add(flat.Scale(b.cfg.PositionOffset))
	b.Position.X = target.X
	b.Position.Z = target.Z

	b.Heading = core.WrapDegrees(core.Bearing(flat) + b.cfg.RotationOffset)
	return true
}
