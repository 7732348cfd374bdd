package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks the configuration and reports every problem found.
// Wave components with non-positive frequency or amplitude are rejected here
// so they can never reach the per-frame height queries.
func (c WaveriderConfig) Validate() error {
	var errs []error

	for i, w := range c.Waves {
		if err := w.Component().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("waves[%d]: %w", i, err))
		}
	}

	errs = append(errs, c.Boat.validate("boat")...)
	errs = append(errs, c.Debris.Motion.validate("debris.motion")...)
	errs = append(errs, c.Debris.Hull.validate("debris.hull")...)
	if math.Abs(c.Debris.ForwardInput) > 1 {
		errs = append(errs, fmt.Errorf("debris.forward_input: must be within [-1, 1], got %v", c.Debris.ForwardInput))
	}
	if math.Abs(c.Debris.TurnInput) > 1 {
		errs = append(errs, fmt.Errorf("debris.turn_input: must be within [-1, 1], got %v", c.Debris.TurnInput))
	}

	cam := c.Camera
	if cam.MinZoom <= 0 {
		errs = append(errs, fmt.Errorf("camera.min_zoom: must be positive, got %v", cam.MinZoom))
	}
	if cam.MaxZoom < cam.MinZoom {
		errs = append(errs, fmt.Errorf("camera.max_zoom: %v is below min_zoom %v", cam.MaxZoom, cam.MinZoom))
	}
	if cam.MaxPitch < cam.MinPitch {
		errs = append(errs, fmt.Errorf("camera.max_pitch: %v is below min_pitch %v", cam.MaxPitch, cam.MinPitch))
	}
	if cam.MinPitch < -89 || cam.MaxPitch > 89 {
		errs = append(errs, fmt.Errorf("camera pitch range [%v, %v] must stay within [-89, 89]", cam.MinPitch, cam.MaxPitch))
	}

	sp := c.Spawner
	if sp.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawner.interval: must be positive, got %v", sp.Interval))
	}
	if sp.SpawnChance < 0 || sp.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("spawner.spawn_chance: must be within [0, 1], got %v", sp.SpawnChance))
	}
	if sp.MaxActive < 0 {
		errs = append(errs, fmt.Errorf("spawner.max_active: must not be negative, got %d", sp.MaxActive))
	}
	if sp.SpawnRadius <= 0 {
		errs = append(errs, fmt.Errorf("spawner.spawn_radius: must be positive, got %v", sp.SpawnRadius))
	}
	if sp.DespawnMargin < 0 {
		errs = append(errs, fmt.Errorf("spawner.despawn_margin: must not be negative, got %v", sp.DespawnMargin))
	}
	if sp.PickupRadius <= 0 {
		errs = append(errs, fmt.Errorf("spawner.pickup_radius: must be positive, got %v", sp.PickupRadius))
	}

	if c.Session.TimeLimit < 0 {
		errs = append(errs, fmt.Errorf("session.time_limit: must not be negative, got %v", c.Session.TimeLimit))
	}
	if c.Input.HoldTime <= 0 || c.Input.Sensitivity <= 0 || c.Input.Gravity <= 0 {
		errs = append(errs, errors.New("input: hold_time, sensitivity and gravity must be positive"))
	}
	if c.Render.UnitsPerColumn <= 0 || c.Render.RowAspect <= 0 {
		errs = append(errs, errors.New("render: units_per_column and row_aspect must be positive"))
	}

	return errors.Join(errs...)
}

func (b BoatConfig) validate(path string) []error {
	errs := b.Motion.validate(path + ".motion")
	return append(errs, b.Hull.validate(path+".hull")...)
}

func (m MotionConfig) validate(path string) []error {
	var errs []error
	if m.MaxForwardSpeed <= 0 {
		errs = append(errs, fmt.Errorf("%s.max_forward_speed: must be positive, got %v", path, m.MaxForwardSpeed))
	}
	if m.MaxBackwardSpeed < 0 {
		errs = append(errs, fmt.Errorf("%s.max_backward_speed: must not be negative, got %v", path, m.MaxBackwardSpeed))
	}
	if m.Acceleration < 0 {
		errs = append(errs, fmt.Errorf("%s.acceleration: must not be negative, got %v", path, m.Acceleration))
	}
	return errs
}

func (h HullConfig) validate(path string) []error {
	var errs []error
	s := h.Samplers
	if s.Front < 0 || s.Back < 0 || s.Left < 0 || s.Right < 0 {
		errs = append(errs, fmt.Errorf("%s.samplers: distances must not be negative", path))
	}
	t := h.Tilt
	if t.MaxPitch < 0 || t.MaxRoll < 0 {
		errs = append(errs, fmt.Errorf("%s.tilt: max_pitch and max_roll must not be negative", path))
	}
	if t.RotationSmooth < 0 {
		errs = append(errs, fmt.Errorf("%s.tilt.rotation_smooth: must not be negative, got %v", path, t.RotationSmooth))
	}
	return errs
}
