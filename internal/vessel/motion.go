package vessel

import (
	"math"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
)

// Motion is the speed and heading model shared by the boat and the debris.
type Motion struct {
	Speed float64 // world units per second, negative when going astern
	Yaw   float64 // degrees clockwise from +Z

	cfg config.MotionConfig
}

// NewMotion creates a stopped motion model heading yaw.
func NewMotion(cfg config.MotionConfig, yaw float64) Motion {
	return Motion{Yaw: yaw, cfg: cfg}
}

// TargetSpeed maps a throttle in [-1, 1] to a speed.
func (m *Motion) TargetSpeed(throttle float64) float64 {
	throttle = core.ClampF(throttle, -1, 1)
	switch {
	case throttle > 0:
		return throttle * m.cfg.MaxForwardSpeed
	case throttle < 0:
		return throttle * m.cfg.MaxBackwardSpeed
	}
	return 0
}

// Accelerate moves the speed towards the throttle target by at most
// Acceleration*dt.
func (m *Motion) Accelerate(throttle, dt float64) {
	m.Speed = core.MoveTowards(m.Speed, m.TargetSpeed(throttle), m.cfg.Acceleration*dt)
}

// Turn changes the heading by rudder*TurnSpeed*scale*dt degrees.
func (m *Motion) Turn(rudder, scale, dt float64) {
	m.Yaw = core.WrapDegrees(m.Yaw + core.ClampF(rudder, -1, 1)*m.cfg.TurnSpeed*scale*dt)
}

// SteerageScale is the fraction of full turning authority available at the
// current speed. A stopped hull cannot turn.
func (m *Motion) SteerageScale() float64 {
	if m.cfg.MaxForwardSpeed <= 0 {
		return 0
	}
	return math.Abs(m.Speed) / m.cfg.MaxForwardSpeed
}

// Step returns the horizontal displacement for this frame.
func (m *Motion) Step(dt float64) core.Vec2 {
	return core.Heading(m.Yaw).Scale(m.Speed * dt)
}
