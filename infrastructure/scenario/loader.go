package scenario

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"ui_verification/domain/entities"

	"gopkg.in/yaml.v3"
)

// envRef matches ${NAME} references only, a bare $ stays literal
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load - reads a YAML scenario file, expanding ${VAR} references from the environment
func Load(path string) (*entities.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse - decodes a YAML scenario, rejecting unknown fields
func Parse(data []byte) (*entities.Scenario, error) {
	expanded := expandEnv(string(data))

	decoder := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	decoder.KnownFields(true)

	var scenario entities.Scenario
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrInvalidScenario, err)
	}
	if scenario.Name == "" {
		scenario.Name = "custom"
	}
	return &scenario, nil
}

// expandEnv - replaces well-formed ${NAME} references with environment values
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		return os.Getenv(envRef.FindStringSubmatch(ref)[1])
	})
}
