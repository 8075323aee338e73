package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveTo writes the config as YAML. An empty path means FileName in ConfigDir.
// Returns the path written.
func (c *Config) SaveTo(path string) (string, error) {
	if path == "" {
		path = filepath.Join(ConfigDir(), FileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
