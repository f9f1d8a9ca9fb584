// Package config loads CLI preferences from a prism.toml file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the manifest name looked up in the working directory when
// no explicit path is given.
const DefaultFile = "prism.toml"

// Output holds the [output] section.
type Output struct {
	// Format is the default export format (msgpack|json).
	Format string `toml:"format"`
	// Color is the default color mode (auto|on|off).
	Color string `toml:"color"`
}

// File is a parsed prism.toml.
type File struct {
	Output Output `toml:"output"`
}

// ErrUnknownKeys indicates the manifest contains keys prism does not
// understand, which usually means a typo rather than a newer schema.
var ErrUnknownKeys = errors.New("unknown keys in config")

// Default returns the configuration used when no file is present.
func Default() *File {
	return &File{Output: Output{Format: "msgpack", Color: "auto"}}
}

// Load parses the manifest at path. The file must exist; callers that
// tolerate a missing default manifest use LoadDefault.
func Load(path string) (*File, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownKeys, path, undecoded)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads ./prism.toml when it exists and falls back to the
// built-in defaults when it does not.
func LoadDefault() (*File, error) {
	cfg, err := Load(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (f *File) validate() error {
	switch f.Output.Format {
	case "msgpack", "json":
	default:
		return fmt.Errorf("invalid output.format %q (msgpack|json)", f.Output.Format)
	}
	switch f.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid output.color %q (auto|on|off)", f.Output.Color)
	}
	return nil
}
