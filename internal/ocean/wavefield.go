// Package ocean implements the Gerstner wave height field that drives both the
// rendered sea surface and every floating object on it.
//
// A WaveField is built once from a fixed set of components and is read-only
// afterwards, so it can be shared by any number of goroutines.
package ocean

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/waverider/internal/core"
)

// Iterations is the number of fixed-point passes used to undo the horizontal
// Gerstner displacement before the final height is evaluated. More passes
// converge more tightly at proportionally higher cost per query.
const Iterations = 4

// ErrInvalidComponent is returned when a wave component would make the phase
// or height computation degenerate.
var ErrInvalidComponent = errors.New("ocean: invalid wave component")

// Surface is anything that can report the water height at a world XZ position.
type Surface interface {
	HeightAt(x, z, t float64) float64
}

// WaveComponent is a single traveling Gerstner wave.
type WaveComponent struct {
	Amplitude float64 // vertical half-height
	Frequency float64 // spatial angular frequency, radians per world unit
	Speed     float64 // phase speed, world units per second
	Direction core.Vec2
	// Steepness scales the horizontal displacement. Values above 1 make
	// neighbouring crests fold over each other; they are kept as given.
	Steepness float64
}

// Validate reports whether the component can be evaluated safely.
func (c WaveComponent) Validate() error {
	switch {
	case !finite(c.Amplitude) || c.Amplitude <= 0:
		return fmt.Errorf("amplitude %v must be positive", c.Amplitude)
	case !finite(c.Frequency) || c.Frequency <= 0:
		return fmt.Errorf("frequency %v must be positive", c.Frequency)
	case !finite(c.Speed):
		return fmt.Errorf("speed %v must be finite", c.Speed)
	case !finite(c.Steepness):
		return fmt.Errorf("steepness %v must be finite", c.Steepness)
	case !finite(c.Direction.X) || !finite(c.Direction.Z):
		return fmt.Errorf("direction %+v must be finite", c.Direction)
	}
	return nil
}

// Wavelength returns the distance between two crests.
func (c WaveComponent) Wavelength() float64 {
	return 2 * math.Pi / c.Frequency
}

// wave is the precomputed form of a component used on the query path.
type wave struct {
	amp   float64
	k     float64
	omega float64 // k * speed
	dir   core.Vec2
	push  float64 // steepness * amplitude / N
}

// WaveField is an immutable superposition of Gerstner waves.
type WaveField struct {
	components []WaveComponent
	waves      []wave
	ampSum     float64
}

// NewWaveField validates the components and builds a field from them.
// The component slice is copied. An empty field is valid and is flat.
func NewWaveField(components ...WaveComponent) (*WaveField, error) {
	n := len(components)
	f := &WaveField{
		components: make([]WaveComponent, n),
		waves:      make([]wave, n),
	}

	for i, c := range components {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidComponent, i, err)
		}

		dir := c.Direction.Normalize()
		c.Direction = dir
		f.components[i] = c
		f.waves[i] = wave{
			amp:   c.Amplitude,
			k:     c.Frequency,
			omega: c.Frequency * c.Speed,
			dir:   dir,
			push:  c.Steepness * c.Amplitude / float64(n),
		}
		f.ampSum += c.Amplitude
	}

	return f, nil
}

// MustWaveField is like NewWaveField but panics on invalid input.
// Intended for tests and hardcoded defaults.
func MustWaveField(components ...WaveComponent) *WaveField {
	f, err := NewWaveField(components...)
	if err != nil {
		panic(err)
	}
	return f
}

// Len returns the number of wave components.
func (f *WaveField) Len() int {
	return len(f.waves)
}

// Components returns a copy of the components with normalized directions.
func (f *WaveField) Components() []WaveComponent {
	out := make([]WaveComponent, len(f.components))
	copy(out, f.components)
	return out
}

// AmplitudeSum is the largest height magnitude the field can ever report.
func (f *WaveField) AmplitudeSum() float64 {
	return f.ampSum
}

// HeightAt returns the surface height seen at world position (x, z) at time t.
//
// Gerstner waves move surface particles sideways as well as up, so the water
// above (x, z) belongs to a particle whose rest position is somewhere else.
// The rest position is recovered with a few fixed-point passes and the height
// is evaluated there, using the same rest position for every component.
func (f *WaveField) HeightAt(x, z, t float64) float64 {
	sx, sz := f.rest(x, z, t)

	h := 0.0
	for i := range f.waves {
		w := &f.waves[i]
		h += w.amp * math.Sin(w.phase(sx, sz, t))
	}
	return h
}

// RestPosition returns the converged rest position used by HeightAt.
func (f *WaveField) RestPosition(x, z, t float64) core.Vec2 {
	sx, sz := f.rest(x, z, t)
	return core.Vec2{X: sx, Z: sz}
}

// Displacement returns the horizontal offset of the particle resting at (x, z).
func (f *WaveField) Displacement(x, z, t float64) core.Vec2 {
	dx, dz := f.displacement(x, z, t)
	return core.Vec2{X: dx, Z: dz}
}

// Slope returns the surface gradient (dh/dx, dh/dz) at (x, z) estimated by
// central differences with step h.
func (f *WaveField) Slope(x, z, t, h float64) core.Vec2 {
	if h <= 0 {
		h = 0.1
	}
	return core.Vec2{
		X: (f.HeightAt(x+h, z, t) - f.HeightAt(x-h, z, t)) / (2 * h),
		Z: (f.HeightAt(x, z+h, t) - f.HeightAt(x, z-h, t)) / (2 * h),
	}
}

func (f *WaveField) rest(x, z, t float64) (float64, float64) {
	sx, sz := x, z
	if len(f.waves) == 0 {
		return sx, sz
	}
	for i := 0; i < Iterations; i++ {
		dx, dz := f.displacement(sx, sz, t)
		sx, sz = x-dx, z-dz
	}
	return sx, sz
}

func (f *WaveField) displacement(sx, sz, t float64) (float64, float64) {
	dx, dz := 0.0, 0.0
	for i := range f.waves {
		w := &f.waves[i]
		c := math.Cos(w.phase(sx, sz, t)) * w.push
		dx += w.dir.X * c
		dz += w.dir.Z * c
	}
	return dx, dz
}

func (w *wave) phase(sx, sz, t float64) float64 {
	return w.k*(w.dir.X*sx+w.dir.Z*sz) + w.omega*t
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
