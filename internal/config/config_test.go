package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultWaveriderConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}

	f, err := cfg.WaveField()
	if err != nil {
		t.Fatalf("default wave field: %v", err)
	}
	if f.Len() != 3 {
		t.Errorf("default field has %d waves, expected 3", f.Len())
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg WaveriderConfig
	if err := decode(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if want := DefaultWaveriderConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded YAML differs from hardcoded defaults:\n got  %+v\n want %+v", cfg, want)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `
waves:
  - amplitude: 2
    frequency: 0.1
    speed: 1
    direction: [0, 1]
    steepness: 0.2
spawner:
  spawn_chance: 0.9
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWaverider(path)
	if err != nil {
		t.Fatalf("LoadWaverider(%q) failed: %v", path, err)
	}

	if len(cfg.Waves) != 1 || cfg.Waves[0].Amplitude != 2 {
		t.Errorf("waves should be replaced by the file, got %+v", cfg.Waves)
	}
	if cfg.Spawner.SpawnChance != 0.9 {
		t.Errorf("spawn_chance = %v, expected 0.9", cfg.Spawner.SpawnChance)
	}

	def := DefaultWaveriderConfig()
	if cfg.Spawner.MaxActive != def.Spawner.MaxActive {
		t.Errorf("max_active = %d, expected default %d to survive the overlay", cfg.Spawner.MaxActive, def.Spawner.MaxActive)
	}
	if cfg.Boat != def.Boat {
		t.Errorf("boat config changed although the file did not mention it")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadWaverider(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
}

func TestLoadRejectsInvalidWave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := `
waves:
  - amplitude: 1
    frequency: 0
    speed: 1
    direction: [1, 0]
    steepness: 0.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadWaverider(path)
	if err == nil {
		t.Fatal("expected zero frequency to be rejected")
	}
	if !strings.Contains(err.Error(), "waves[0]") {
		t.Errorf("error should name the offending wave, got %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultWaveriderConfig()
	cfg.Spawner.SpawnChance = 2
	cfg.Camera.MaxZoom = 1
	cfg.Boat.Motion.MaxForwardSpeed = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	for _, want := range []string{"spawner.spawn_chance", "camera.max_zoom", "boat.motion.max_forward_speed"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestParseSeaState(t *testing.T) {
	tests := []struct {
		in      string
		want    SeaState
		wantErr bool
	}{
		{"", SeaModerate, false},
		{"calm", SeaCalm, false},
		{" Storm ", SeaStorm, false},
		{"rough", SeaRough, false},
		{"tsunami", SeaModerate, true},
	}

	for _, tc := range tests {
		got, err := ParseSeaState(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSeaState(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseSeaState(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplySeaState(t *testing.T) {
	base := DefaultWaveriderConfig()

	moderate := DefaultWaveriderConfig()
	ApplySeaState(&moderate, SeaModerate)
	if !reflect.DeepEqual(moderate.Waves, base.Waves) {
		t.Errorf("moderate should leave waves unchanged")
	}

	storm := DefaultWaveriderConfig()
	ApplySeaState(&storm, SeaStorm)
	calm := DefaultWaveriderConfig()
	ApplySeaState(&calm, SeaCalm)

	for i := range base.Waves {
		if storm.Waves[i].Amplitude <= base.Waves[i].Amplitude {
			t.Errorf("wave %d: storm amplitude %v not above base %v", i, storm.Waves[i].Amplitude, base.Waves[i].Amplitude)
		}
		if calm.Waves[i].Amplitude >= base.Waves[i].Amplitude {
			t.Errorf("wave %d: calm amplitude %v not below base %v", i, calm.Waves[i].Amplitude, base.Waves[i].Amplitude)
		}
		if storm.Waves[i].Frequency != base.Waves[i].Frequency {
			t.Errorf("wave %d: sea state must not change frequency", i)
		}
	}

	// Every preset keeps the defaults valid.
	for _, s := range SeaStates {
		cfg := DefaultWaveriderConfig()
		ApplySeaState(&cfg, s)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s preset produced invalid config: %v", s, err)
		}
	}
}
