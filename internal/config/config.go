// Package config loads the CLI's configuration: named base-alphabet
// presets and the resource ceiling used to bound compilation (spec §9's
// alphabet-growth note), from a TOML file. Grounded on
// _examples/dekarrin-tunaq/internal/tqw's TQW-file loading: a struct tagged
// with `toml:"..."` fields decoded with BurntSushi/toml.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// AlphabetPreset is one named base alphabet a caller can select by name on
// the CLI instead of spelling out symbols/arities every time.
type AlphabetPreset struct {
	// Symbols lists the base symbols for a word-mode preset.
	Symbols string `toml:"symbols"`

	// Arity maps symbol to arity for a tree-mode preset; empty for word
	// presets.
	Arity map[string]int `toml:"arity"`
}

// Config is the root of a loaded TOML configuration file.
type Config struct {
	// ResourceCeiling bounds |Σ|·2^k during compilation; 0 means the
	// caller falls back to msologic.DefaultResourceCeiling.
	ResourceCeiling int `toml:"resource_ceiling"`

	// Alphabets holds named presets, keyed by name.
	Alphabets map[string]AlphabetPreset `toml:"alphabets"`
}

// Load reads and decodes the TOML configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Preset looks up a named alphabet preset.
func (c Config) Preset(name string) (AlphabetPreset, bool) {
	p, ok := c.Alphabets[name]
	return p, ok
}

// IsTreePreset reports whether p describes a tree-mode alphabet (has an
// arity map) rather than a word-mode one.
func (p AlphabetPreset) IsTreePreset() bool {
	return len(p.Arity) > 0
}
