package config

import (
	"fmt"
	"strings"
)

// SeaState is a named preset that rescales the configured swell.
type SeaState string

const (
	SeaCalm     SeaState = "calm"
	SeaModerate SeaState = "moderate"
	SeaRough    SeaState = "rough"
	SeaStorm    SeaState = "storm"
)

// SeaStates lists the presets from gentlest to wildest.
var SeaStates = []SeaState{SeaCalm, SeaModerate, SeaRough, SeaStorm}

// seaScaling multiplies wave parameters for a preset.
type seaScaling struct {
	amplitude float64
	steepness float64
	speed     float64
}

var seaScales = map[SeaState]seaScaling{
	SeaCalm:     {amplitude: 0.5, steepness: 0.6, speed: 0.8},
	SeaModerate: {amplitude: 1.0, steepness: 1.0, speed: 1.0},
	SeaRough:    {amplitude: 1.6, steepness: 1.2, speed: 1.15},
	SeaStorm:    {amplitude: 2.4, steepness: 1.5, speed: 1.3},
}

// ParseSeaState parses a preset name. An empty string means moderate.
func ParseSeaState(s string) (SeaState, error) {
	if s == "" {
		return SeaModerate, nil
	}
	state := SeaState(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := seaScales[state]; !ok {
		return SeaModerate, fmt.Errorf("config: unknown sea state %q (want calm, moderate, rough or storm)", s)
	}
	return state, nil
}

// Title returns the display name of the preset.
func (s SeaState) Title() string {
	switch s {
	case SeaCalm:
		return "Calm"
	case SeaRough:
		return "Rough"
	case SeaStorm:
		return "Storm"
	default:
		return "Moderate"
	}
}

// ApplySeaState rescales every wave for the preset. It must run before the
// wave field is built; the field never changes afterwards.
func ApplySeaState(cfg *WaveriderConfig, state SeaState) {
	scale, ok := seaScales[state]
	if !ok {
		return
	}
	for i := range cfg.Waves {
		cfg.Waves[i].Amplitude *= scale.amplitude
		cfg.Waves[i].Steepness *= scale.steepness
		cfg.Waves[i].Speed *= scale.speed
	}
}
