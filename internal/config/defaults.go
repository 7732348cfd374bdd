package config

import (
	_ "embed"
)

//go:embed defaults/waverider.yaml
var defaultWaveriderYAML []byte

// DefaultWaveriderConfig returns the hardcoded default configuration.
// The embedded YAML carries the same values and is preferred by the loader.
func DefaultWaveriderConfig() WaveriderConfig {
	return WaveriderConfig{
		Waves: []WaveConfig{
			{Amplitude: 1.0, Frequency: 0.05, Speed: 4.0, Direction: [2]float64{1, 1}, Steepness: 0.5},
			{Amplitude: 0.6, Frequency: 0.09, Speed: 3.0, Direction: [2]float64{1, -0.4}, Steepness: 0.45},
			{Amplitude: 0.3, Frequency: 0.17, Speed: 2.2, Direction: [2]float64{-0.3, 1}, Steepness: 0.35},
		},
		Boat: BoatConfig{
			Motion: MotionConfig{
				MaxForwardSpeed:  10,
				MaxBackwardSpeed: 5,
				Acceleration:     5,
				TurnSpeed:        50,
			},
			Hull: HullConfig{
				Samplers: SamplerConfig{Front: 2, Back: 2, Left: 1, Right: 1},
				Tilt: TiltConfig{
					PitchStrength:  25,
					RollStrength:   30,
					MaxPitch:       20,
					MaxRoll:        25,
					RotationSmooth: 6,
				},
			},
		},
		Debris: DebrisConfig{
			Motion: MotionConfig{
				MaxForwardSpeed:  2,
				MaxBackwardSpeed: 1,
				Acceleration:     1,
				TurnSpeed:        15,
			},
			Hull: HullConfig{
				Samplers: SamplerConfig{Front: 0.5, Back: 0.5, Left: 0.5, Right: 0.5},
				Tilt: TiltConfig{
					PitchStrength:  25,
					RollStrength:   30,
					MaxPitch:       20,
					MaxRoll:        25,
					RotationSmooth: 6,
				},
			},
			ForwardInput:  0.5,
			TurnInput:     0,
			RandomizeTurn: true,
		},
		Camera: CameraConfig{
			PositionOffset:      [3]float64{0, 5, -10},
			RotationSpeed:       5,
			ZoomSpeed:           1,
			MinZoom:             5,
			MaxZoom:             20,
			MinPitch:            10,
			MaxPitch:            80,
			InitialPitch:        30,
			InitialYaw:          0,
			MinHeightAboveWater: 2,
		},
		Backdrop: BackdropConfig{
			PositionOffset: 100,
			RotationOffset: 45,
		},
		Spawner: SpawnerConfig{
			Interval:      1,
			SpawnChance:   0.35,
			MaxActive:     10,
			SpawnRadius:   50,
			DespawnMargin: 5,
			PickupRadius:  2.5,
		},
		Session: SessionConfig{
			TimeLimit:          300,
			CollectPoints:      100,
			TimeBonusPerSecond: 2,
		},
		Input: InputConfig{
			HoldTime:    0.55,
			Sensitivity: 3,
			Gravity:     3,
		},
		Render: RenderConfig{
			UnitsPerColumn: 1.0,
			RowAspect:      2.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultWaveriderYAML
}
