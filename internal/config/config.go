package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the optional YAML config. Pointer fields distinguish
// "unset" from zero values so CLI > local > global precedence works.
type FileConfig struct {
	Enable  *string `yaml:"enable"`  // comma-separated rule IDs
	Disable *string `yaml:"disable"` // comma-separated rule IDs
	NoColor *bool   `yaml:"no_color"`
}

// localNames is the search order inside the scanned tree.
var localNames = []string{".dartvet.yaml", "dartvet.yaml"}

func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal finds a config file in dir, dotfile first.
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range localNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, os.ErrNotExist
}

// LoadGlobal reads the XDG config, falling back to ~/.config.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return FileConfig{}, os.ErrNotExist
		}
		base = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yml", "config.yaml"} {
		p := filepath.Join(base, "dartvet", name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, os.ErrNotExist
}

// PickString returns the first non-empty value: CLI flag, then local, then
// global config.
func PickString(flag string, local, global *string) string {
	if flag != "" {
		return flag
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func PickBool(flag bool, local, global *bool) bool {
	if flag {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
