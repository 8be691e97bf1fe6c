// Package project loads per-directory defaults from subshift.toml.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the working directory and its parents.
const ConfigFileName = "subshift.toml"

// OutputConfig controls where shifted files are written.
type OutputConfig struct {
	// Suffix is inserted before the extension when no explicit output path
	// is given ("" means shift in place).
	Suffix string `toml:"suffix"`
	// Backup writes <file>.bak before overwriting the input.
	Backup bool `toml:"backup"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	Color string `toml:"color"` // auto|on|off
}

// InputConfig controls how files are read.
type InputConfig struct {
	Encoding string `toml:"encoding"` // utf8|latin1|windows-1252
}

// Config is the parsed subshift.toml.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Display DisplayConfig `toml:"display"`
	Input   InputConfig   `toml:"input"`
}

// Default returns the configuration used when no subshift.toml exists.
func Default() Config {
	return Config{
		Output:  OutputConfig{Backup: true},
		Display: DisplayConfig{Color: "auto"},
		Input:   InputConfig{Encoding: "utf8"},
	}
}

// Load parses a subshift.toml file. Fields absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Find ищет subshift.toml в dir и её родителях до корня.
func Find(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadFromDir finds and loads the nearest config, falling back to defaults.
func LoadFromDir(dir string) (Config, error) {
	path, ok := Find(dir)
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
