package ocean

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/vovakirdan/waverider/internal/core"
)

// referenceWaves mirrors the three-wave sea used by the default config.
func referenceWaves() []WaveComponent {
	return []WaveComponent{
		{Amplitude: 1.0, Frequency: 0.05, Speed: 4, Direction: core.NewVec2(1, 1), Steepness: 0.5},
		{Amplitude: 0.6, Frequency: 0.09, Speed: 3, Direction: core.NewVec2(1, -0.4), Steepness: 0.45},
		{Amplitude: 0.3, Frequency: 0.17, Speed: 2.2, Direction: core.NewVec2(-0.3, 1), Steepness: 0.35},
	}
}

func TestHeightAtDeterminism(t *testing.T) {
	f := MustWaveField(referenceWaves()...)

	points := []struct{ x, z, t float64 }{
		{0, 0, 0},
		{12.5, -3, 1.25},
		{-40, 77, 19.5},
		{1000, 1000, 3600},
	}

	for _, p := range points {
		first := f.HeightAt(p.x, p.z, p.t)
		for i := 0; i < 5; i++ {
			if got := f.HeightAt(p.x, p.z, p.t); got != first {
				t.Fatalf("HeightAt(%v, %v, %v) changed between calls: %v then %v", p.x, p.z, p.t, first, got)
			}
		}
	}
}

func TestEmptyFieldIsFlat(t *testing.T) {
	f, err := NewWaveField()
	if err != nil {
		t.Fatalf("NewWaveField() with no components failed: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		x := rng.Float64()*2000 - 1000
		z := rng.Float64()*2000 - 1000
		tm := rng.Float64() * 1000
		if h := f.HeightAt(x, z, tm); h != 0 {
			t.Fatalf("empty field HeightAt(%v, %v, %v) = %v, expected exactly 0", x, z, tm, h)
		}
	}

	if f.Len() != 0 || f.AmplitudeSum() != 0 {
		t.Errorf("empty field Len=%d AmplitudeSum=%v, expected 0 and 0", f.Len(), f.AmplitudeSum())
	}
}

func TestSingleWaveWithoutSteepnessIsSine(t *testing.T) {
	const (
		a = 1.5
		k = 0.2
		v = 3.0
	)
	f := MustWaveField(WaveComponent{Amplitude: a, Frequency: k, Speed: v, Direction: core.NewVec2(1, 0), Steepness: 0})

	for _, x := range []float64{-25, -3.3, 0, 1, 7.77, 50} {
		for _, tm := range []float64{0, 0.5, 12} {
			want := a * math.Sin(k*x+k*v*tm)
			got := f.HeightAt(x, 42, tm)
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("HeightAt(%v, 42, %v) = %v, expected %v", x, tm, got, want)
			}
		}
	}
}

func TestHeightIsBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(5)
		comps := make([]WaveComponent, n)
		maxPush := 0.0
		for i := range comps {
			comps[i] = WaveComponent{
				Amplitude: 0.1 + rng.Float64()*2,
				Frequency: 0.01 + rng.Float64()*0.3,
				Speed:     rng.Float64()*8 - 2,
				Direction: core.NewVec2(rng.Float64()*2-1, rng.Float64()*2-1),
				Steepness: rng.Float64(),
			}
			maxPush += comps[i].Steepness * comps[i].Amplitude / float64(n)
		}
		f := MustWaveField(comps...)

		for i := 0; i < 50; i++ {
			x := rng.Float64()*400 - 200
			z := rng.Float64()*400 - 200
			tm := rng.Float64() * 100

			h := f.HeightAt(x, z, tm)
			if math.Abs(h) > f.AmplitudeSum()+1e-9 {
				t.Fatalf("trial %d: |HeightAt| = %v exceeds amplitude sum %v", trial, math.Abs(h), f.AmplitudeSum())
			}

			rest := f.RestPosition(x, z, tm)
			if d := rest.Dist(core.NewVec2(x, z)); d > maxPush+1e-9 {
				t.Fatalf("trial %d: rest position drifted %v from query, bound %v", trial, d, maxPush)
			}
		}
	}
}

func TestSpatialPeriodicity(t *testing.T) {
	c := WaveComponent{Amplitude: 1.2, Frequency: 0.3, Speed: 2, Direction: core.NewVec2(1, 0), Steepness: 0.8}
	f := MustWaveField(c)
	period := c.Wavelength()

	for _, x := range []float64{-10, 0, 2.5, 9.1} {
		for _, tm := range []float64{0, 1.7, 30} {
			a := f.HeightAt(x, 0, tm)
			b := f.HeightAt(x+period, 0, tm)
			if math.Abs(a-b) > 1e-9 {
				t.Errorf("HeightAt(%v) = %v but HeightAt(%v + 2π/k) = %v", x, a, x, b)
			}
		}
	}
}

func TestTimeShiftForSingleFlatWave(t *testing.T) {
	c := WaveComponent{Amplitude: 0.8, Frequency: 0.15, Speed: 4, Direction: core.NewVec2(1, 0), Steepness: 0}
	f := MustWaveField(c)

	const dt = 2.5
	for _, x := range []float64{-5, 0, 3, 17} {
		a := f.HeightAt(x, 1, 10)
		b := f.HeightAt(x-c.Speed*dt, 1, 10+dt)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("time shift broke at x=%v: %v vs %v", x, a, b)
		}
	}
}

func TestZeroDirectionContributesNoDisplacement(t *testing.T) {
	c := WaveComponent{Amplitude: 0.5, Frequency: 0.2, Speed: 3, Direction: core.Vec2{}, Steepness: 1}
	f, err := NewWaveField(c)
	if err != nil {
		t.Fatalf("zero direction should be accepted, got %v", err)
	}

	for _, x := range []float64{-20, 0, 33} {
		if d := f.Displacement(x, 4, 1.5); d != (core.Vec2{}) {
			t.Errorf("Displacement(%v) = %+v, expected zero", x, d)
		}
		want := c.Amplitude * math.Sin(c.Frequency*c.Speed*1.5)
		if got := f.HeightAt(x, 4, 1.5); math.Abs(got-want) > 1e-12 {
			t.Errorf("HeightAt(%v) = %v, expected spatially constant %v", x, got, want)
		}
	}
}

func TestNewWaveFieldRejectsDegenerateComponents(t *testing.T) {
	good := WaveComponent{Amplitude: 1, Frequency: 0.1, Speed: 1, Direction: core.NewVec2(1, 0), Steepness: 0.5}

	tests := []struct {
		name   string
		mutate func(*WaveComponent)
	}{
		{"zero frequency", func(c *WaveComponent) { c.Frequency = 0 }},
		{"negative frequency", func(c *WaveComponent) { c.Frequency = -0.1 }},
		{"zero amplitude", func(c *WaveComponent) { c.Amplitude = 0 }},
		{"negative amplitude", func(c *WaveComponent) { c.Amplitude = -1 }},
		{"NaN speed", func(c *WaveComponent) { c.Speed = math.NaN() }},
		{"infinite steepness", func(c *WaveComponent) { c.Steepness = math.Inf(1) }},
		{"NaN direction", func(c *WaveComponent) { c.Direction.X = math.NaN() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bad := good
			tc.mutate(&bad)
			_, err := NewWaveField(good, bad)
			if !errors.Is(err, ErrInvalidComponent) {
				t.Errorf("NewWaveField() error = %v, expected ErrInvalidComponent", err)
			}
		})
	}
}

func TestSteepnessAboveOneIsKept(t *testing.T) {
	c := WaveComponent{Amplitude: 1, Frequency: 0.5, Speed: 1, Direction: core.NewVec2(0, 3), Steepness: 1.6}
	f := MustWaveField(c)

	got := f.Components()[0]
	if got.Steepness != 1.6 {
		t.Errorf("steepness = %v, expected 1.6 unclamped", got.Steepness)
	}
	if math.Abs(got.Direction.Len()-1) > 1e-12 {
		t.Errorf("direction should be normalized, length %v", got.Direction.Len())
	}
}

func TestComponentsAreCopied(t *testing.T) {
	comps := referenceWaves()
	f := MustWaveField(comps...)
	before := f.HeightAt(3, 4, 5)

	comps[0].Amplitude = 100
	out := f.Components()
	out[1].Frequency = 9

	if after := f.HeightAt(3, 4, 5); after != before {
		t.Errorf("field changed after caller mutation: %v -> %v", before, after)
	}
}

func TestRestPositionInvertsDisplacement(t *testing.T) {
	f := MustWaveField(referenceWaves()...)

	for _, p := range []core.Vec2{{X: 0, Z: 0}, {X: 14, Z: -9}, {X: -33, Z: 60}} {
		rest := f.RestPosition(p.X, p.Z, 4)
		landed := rest.Add(f.Displacement(rest.X, rest.Z, 4))
		if d := landed.Dist(p); d > 1e-4 {
			t.Errorf("rest %+v displaced to %+v, expected %+v (off by %v)", rest, landed, p, d)
		}
	}
}

func TestHeightAtConcurrentReaders(t *testing.T) {
	f := MustWaveField(referenceWaves()...)
	want := f.HeightAt(5, 6, 7)

	var wg sync.WaitGroup
	errs := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if got := f.HeightAt(5, 6, 7); got != want {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent HeightAt = %v, expected %v", got, want)
	}
}

func TestHeightAtDoesNotAllocate(t *testing.T) {
	f := MustWaveField(referenceWaves()...)
	allocs := testing.AllocsPerRun(100, func() {
		_ = f.HeightAt(1, 2, 3)
	})
	if allocs != 0 {
		t.Errorf("HeightAt allocated %v times per call, expected 0", allocs)
	}
}

func TestSlopeMatchesAnalyticDerivative(t *testing.T) {
	c := WaveComponent{Amplitude: 1, Frequency: 0.2, Speed: 0, Direction: core.NewVec2(1, 0), Steepness: 0}
	f := MustWaveField(c)

	s := f.Slope(2, 0, 0, 1e-4)
	want := c.Amplitude * c.Frequency * math.Cos(c.Frequency*2)
	if math.Abs(s.X-want) > 1e-6 || math.Abs(s.Z) > 1e-9 {
		t.Errorf("Slope = %+v, expected (%v, 0)", s, want)
	}
}

func BenchmarkHeightAt(b *testing.B) {
	f := MustWaveField(referenceWaves()...)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = f.HeightAt(float64(i%100), 3, 1.5)
	}
}
