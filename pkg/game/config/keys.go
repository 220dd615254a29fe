package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// keysFile is the part of the config file that rebinds keys, e.g.
//
//	keys:
//	  hint: t
//	  toggle camera: v
type keysFile struct {
	Keys map[string]string `yaml:"keys"`
}

// LoadKeys reads the key overrides (action name to key code) from the config
// file. A missing file or section yields no overrides.
func LoadKeys(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load keys %s: %w", path, err)
	}

	var f keysFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse keys %s: %w", path, err)
	}
	return f.Keys, nil
}
