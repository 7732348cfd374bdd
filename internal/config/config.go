// Package config provides YAML-based configuration loading and sea-state
// presets for Waverider.
package config

import (
	"github.com/vovakirdan/waverider/internal/core"
	"github.com/vovakirdan/waverider/internal/ocean"
)

// WaveriderConfig contains all tunable parameters of a sailing session.
type WaveriderConfig struct {
	Waves    []WaveConfig   `yaml:"waves"`
	Boat     BoatConfig     `yaml:"boat"`
	Debris   DebrisConfig   `yaml:"debris"`
	Camera   CameraConfig   `yaml:"camera"`
	Backdrop BackdropConfig `yaml:"backdrop"`
	Spawner  SpawnerConfig  `yaml:"spawner"`
	Session  SessionConfig  `yaml:"session"`
	Input    InputConfig    `yaml:"input"`
	Render   RenderConfig   `yaml:"render"`
}

// WaveConfig describes a single Gerstner wave.
type WaveConfig struct {
	Amplitude float64    `yaml:"amplitude"`
	Frequency float64    `yaml:"frequency"` // radians per world unit
	Speed     float64    `yaml:"speed"`     // world units per second
	Direction [2]float64 `yaml:"direction"` // x, z; normalized when the field is built
	Steepness float64    `yaml:"steepness"` // 0..1, above 1 loops
}

// Component converts the YAML form into an ocean wave component.
func (w WaveConfig) Component() ocean.WaveComponent {
	return ocean.WaveComponent{
		Amplitude: w.Amplitude,
		Frequency: w.Frequency,
		Speed:     w.Speed,
		Direction: core.NewVec2(w.Direction[0], w.Direction[1]),
		Steepness: w.Steepness,
	}
}

// MotionConfig defines speed and turning limits of anything that sails.
type MotionConfig struct {
	MaxForwardSpeed  float64 `yaml:"max_forward_speed"`
	MaxBackwardSpeed float64 `yaml:"max_backward_speed"`
	Acceleration     float64 `yaml:"acceleration"`
	TurnSpeed        float64 `yaml:"turn_speed"` // degrees per second
}

// SamplerConfig places the four height probes around a hull, in world units.
type SamplerConfig struct {
	Front float64 `yaml:"front"`
	Back  float64 `yaml:"back"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

// TiltConfig controls how strongly a hull follows the surface slope.
type TiltConfig struct {
	PitchStrength  float64 `yaml:"pitch_strength"`  // degrees per unit of height difference
	RollStrength   float64 `yaml:"roll_strength"`   // degrees per unit of height difference
	MaxPitch       float64 `yaml:"max_pitch"`       // degrees
	MaxRoll        float64 `yaml:"max_roll"`        // degrees
	RotationSmooth float64 `yaml:"rotation_smooth"` // slerp rate per second
}

// HullConfig groups the probes and tilt response of a floating body.
type HullConfig struct {
	Samplers SamplerConfig `yaml:"samplers"`
	Tilt     TiltConfig    `yaml:"tilt"`
}

// BoatConfig defines the player's boat.
type BoatConfig struct {
	Motion MotionConfig `yaml:"motion"`
	Hull   HullConfig   `yaml:"hull"`
}

// DebrisConfig defines the autonomous floating debris.
type DebrisConfig struct {
	Motion        MotionConfig `yaml:"motion"`
	Hull          HullConfig   `yaml:"hull"`
	ForwardInput  float64      `yaml:"forward_input"` // -1..1
	TurnInput     float64      `yaml:"turn_input"`    // -1..1
	RandomizeTurn bool         `yaml:"randomize_turn"`
}

// CameraConfig defines the orbit camera.
type CameraConfig struct {
	PositionOffset      [3]float64 `yaml:"position_offset"` // initial zoom is its length
	RotationSpeed       float64    `yaml:"rotation_speed"`  // degrees per input step
	ZoomSpeed           float64    `yaml:"zoom_speed"`
	MinZoom             float64    `yaml:"min_zoom"`
	MaxZoom             float64    `yaml:"max_zoom"`
	MinPitch            float64    `yaml:"min_pitch"`
	MaxPitch            float64    `yaml:"max_pitch"`
	InitialPitch        float64    `yaml:"initial_pitch"`
	InitialYaw          float64    `yaml:"initial_yaw"`
	MinHeightAboveWater float64    `yaml:"min_height_above_water"`
}

// BackdropConfig places the horizon billboard relative to the camera.
type BackdropConfig struct {
	PositionOffset float64 `yaml:"position_offset"`
	RotationOffset float64 `yaml:"rotation_offset"` // degrees
}

// SpawnerConfig defines the debris spawner.
type SpawnerConfig struct {
	Interval      float64 `yaml:"interval"`       // seconds between spawn trials
	SpawnChance   float64 `yaml:"spawn_chance"`   // probability per trial
	MaxActive     int     `yaml:"max_active"`     // cap on active + collected
	SpawnRadius   float64 `yaml:"spawn_radius"`   // spawn perimeter around the boat
	DespawnMargin float64 `yaml:"despawn_margin"` // extra distance before debris is dropped
	PickupRadius  float64 `yaml:"pickup_radius"`
}

// SessionConfig defines scoring and the end of a campaign run.
type SessionConfig struct {
	TimeLimit          float64 `yaml:"time_limit"` // seconds, 0 = unlimited
	CollectPoints      int     `yaml:"collect_points"`
	TimeBonusPerSecond int     `yaml:"time_bonus_per_second"`
}

// InputConfig shapes keyboard presses into smooth steering axes.
// Terminals report key repeats, never key releases, so a press is held for
// HoldTime seconds.
type InputConfig struct {
	HoldTime    float64 `yaml:"hold_time"`
	Sensitivity float64 `yaml:"sensitivity"` // axis units per second towards the target
	Gravity     float64 `yaml:"gravity"`     // axis units per second back to zero
}

// RenderConfig controls the top-down ocean view.
type RenderConfig struct {
	UnitsPerColumn float64 `yaml:"units_per_column"` // world units per cell at the initial zoom
	RowAspect      float64 `yaml:"row_aspect"`       // terminal cell height / width
}

// WaveField builds the immutable wave field described by the config.
func (c WaveriderConfig) WaveField() (*ocean.WaveField, error) {
	comps := make([]ocean.WaveComponent, len(c.Waves))
	for i, w := range c.Waves {
		comps[i] = w.Component()
	}
	return ocean.NewWaveField(comps...)
}
