package scenario

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/default.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default scenario.
func DefaultYAML() []byte { return defaultYAML }

// Load loads a scenario.
// Search order: customPath -> ~/.gridnav/scenarios/default.yaml -> ./scenarios/default.yaml -> embedded default
func Load(customPath string) (*Scenario, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read scenario %s: %w", customPath, err)
		}
		sc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scenario %s: %w", customPath, err)
		}
		return sc, nil
	}

	// Try user scenario directory
	if userPath := userScenarioPath("default.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if sc, err := Parse(data); err == nil {
				return sc, nil
			}
		}
	}

	// Try local scenarios directory
	if data, err := os.ReadFile(filepath.Join("scenarios", "default.yaml")); err == nil {
		if sc, err := Parse(data); err == nil {
			return sc, nil
		}
	}

	// Use embedded default YAML
	return Parse(defaultYAML)
}

// Parse decodes, defaults and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// userScenarioPath returns the path to a user scenario file, or empty if home is unavailable.
func userScenarioPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridnav", "scenarios", filename)
}
