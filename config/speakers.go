package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSpeakerNames reads an optional YAML map of diarisation speaker ids to
// display names, e.g. "SPEAKER_00: Alice". An empty path yields nil.
func LoadSpeakerNames(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("speaker names: %w", err)
	}
	names := map[string]string{}
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("speaker names %s: %w", path, err)
	}
	return names, nil
}
