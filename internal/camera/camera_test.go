package camera

import (
	"math"
	"testing"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
)

type flatSea float64

func (f flatSea) HeightAt(_, _, _ float64) float64 { return float64(f) }

func testCameraConfig() config.CameraConfig {
	return config.DefaultWaveriderConfig().Camera
}

func TestOrbitInitialState(t *testing.T) {
	o := NewOrbit(testCameraConfig())

	if want := math.Sqrt(125); math.Abs(o.Zoom-want) > 1e-12 {
		t.Errorf("initial zoom = %v, expected |offset| = %v", o.Zoom, want)
	}
	if o.Pitch != 30 || o.Yaw != 0 {
		t.Errorf("initial pitch/yaw = %v/%v, expected 30/0", o.Pitch, o.Yaw)
	}
}

func TestOrbitClamps(t *testing.T) {
	o := NewOrbit(testCameraConfig())

	o.Rotate(0, 100)
	if o.Pitch != 80 {
		t.Errorf("pitch = %v, expected clamp at 80", o.Pitch)
	}
	o.Rotate(0, -100)
	if o.Pitch != 10 {
		t.Errorf("pitch = %v, expected clamp at 10", o.Pitch)
	}

	o.ZoomBy(100)
	if o.Zoom != 5 {
		t.Errorf("zoom = %v, expected clamp at 5", o.Zoom)
	}
	o.ZoomBy(-100)
	if o.Zoom != 20 {
		t.Errorf("zoom = %v, expected clamp at 20", o.Zoom)
	}

	o.Rotate(-1, 0)
	if o.Yaw != 355 {
		t.Errorf("yaw = %v, expected wrap to 355", o.Yaw)
	}
}

func TestOrbitPosition(t *testing.T) {
	o := NewOrbit(testCameraConfig())
	o.Zoom = 10
	o.Pitch = 30
	o.Yaw = 90

	target := core.NewVec3(1, 0, 2)
	pos := o.Update(nil, target, 0)

	// behind a target looking along +X, raised by the pitch
	want := core.NewVec3(1-10*math.Cos(math.Pi/6), 10*math.Sin(math.Pi/6), 2)
	if pos.Sub(want).Len() > 1e-9 {
		t.Errorf("position = %+v, expected %+v", pos, want)
	}

	fwd := o.Forward()
	if math.Abs(fwd.Len()-1) > 1e-12 || fwd.X <= 0 || fwd.Y >= 0 {
		t.Errorf("forward = %+v, expected unit vector pointing down towards +X", fwd)
	}
}

func TestOrbitStaysAboveWater(t *testing.T) {
	o := NewOrbit(testCameraConfig())
	o.Pitch = 10

	pos := o.Update(flatSea(50), core.Vec3{}, 0)
	if pos.Y != 52 {
		t.Errorf("camera y = %v, expected water 50 + 2", pos.Y)
	}
	if !o.Floored() {
		t.Error("Floored() = false after lifting the camera")
	}

	pos = o.Update(flatSea(-50), core.Vec3{}, 0)
	if pos.Y == -48 || o.Floored() {
		t.Errorf("camera above a low sea should not be floored, y = %v", pos.Y)
	}
}

func TestBackdropFollow(t *testing.T) {
	b := NewBackdrop(config.DefaultWaveriderConfig().Backdrop, 7)

	ok := b.Follow(core.NewVec3(10, 5, 0), core.NewVec3(0, -0.5, 1))
	if !ok {
		t.Fatal("Follow rejected a valid forward vector")
	}
	if want := core.NewVec3(10, 7, 100); b.Position.Sub(want).Len() > 1e-9 {
		t.Errorf("backdrop at %+v, expected %+v", b.Position, want)
	}
	if b.Heading != 45 {
		t.Errorf("heading = %v, expected 45", b.Heading)
	}

	ok = b.Follow(core.NewVec3(0, 0, 0), core.NewVec3(-1, 0, 0))
	if !ok || math.Abs(b.Heading-315) > 1e-9 {
		t.Errorf("looking along -X heading = %v, expected 315", b.Heading)
	}
}

func TestBackdropIgnoresVerticalView(t *testing.T) {
	b := NewBackdrop(config.DefaultWaveriderConfig().Backdrop, 7)
	b.Position = core.NewVec3(1, 2, 3)
	b.Heading = 12

	if b.Follow(core.NewVec3(50, 50, 50), core.NewVec3(0.001, -1, 0.001)) {
		t.Error("Follow accepted a near-vertical view")
	}
	if b.Position != core.NewVec3(1, 2, 3) || b.Heading != 12 {
		t.Errorf("backdrop moved: %+v heading %v", b.Position, b.Heading)
	}
}
