package waverider

import (
	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
)

// Axis turns discrete key presses into a smooth value in [-1, 1].
//
// Terminals send key repeats but never key releases, so each press is treated
// as held for HoldTime seconds. While held the value ramps towards the target
// at Sensitivity units per second; once released it returns to zero at
// Gravity units per second. Reversing direction snaps through zero first.
type Axis struct {
	value float64
	hold  float64
	dir   float64

	cfg config.InputConfig
}

// NewAxis creates a centered axis.
func NewAxis(cfg config.InputConfig) Axis {
	return Axis{cfg: cfg}
}

// Update feeds this tick's presses into the axis and advances it by dt.
// Pressing both directions at once cancels out.
func (a *Axis) Update(positive, negative bool, dt float64) float64 {
	switch {
	case positive && !negative:
		a.press(1)
	case negative && !positive:
		a.press(-1)
	case positive && negative:
		a.hold = 0
	}

	target := 0.0
	if a.hold > 0 {
		target = a.dir
		a.hold -= dt
	}

	if target != 0 {
		if a.value*target < 0 {
			a.value = 0
		}
		a.value = core.MoveTowards(a.value, target, a.cfg.Sensitivity*dt)
	} else {
		a.value = core.MoveTowards(a.value, 0, a.cfg.Gravity*dt)
	}
	return a.value
}

func (a *Axis) press(dir float64) {
	a.dir = dir
	a.hold = a.cfg.HoldTime
}

// Value returns the current axis value.
func (a *Axis) Value() float64 {
	return a.value
}

// Reset centers the axis and forgets held keys.
func (a *Axis) Reset() {
	a.value = 0
	a.hold = 0
	a.dir = 0
}
