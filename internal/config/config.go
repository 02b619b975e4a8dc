// Package config loads the optional calc config file.
//
// The file is YAML, validated against an embedded CUE schema before it is
// trusted: unknown fields, wrong types, and out-of-range values are all
// reported with the file path. A missing file is not an error - every
// setting has a usable default and can also be supplied via flags.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// DefaultHistoryLimit is the history listing size when the config file
// does not set one.
const DefaultHistoryLimit = 20

// Config holds the calc CLI settings.
type Config struct {
	// Database is the SQLite history path. Empty disables recording.
	Database string `yaml:"database"`

	// Format is the default output format, "text" or "json".
	Format string `yaml:"format"`

	// HistoryLimit is the default number of entries shown by history.
	HistoryLimit int `yaml:"history_limit"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Format:       "text",
		HistoryLimit: DefaultHistoryLimit,
	}
}

// Load reads and validates the config file at path.
//
// An empty path or a missing file yields Default(). Any other failure -
// unreadable file, invalid YAML, schema violation - is an error; a broken
// config file should never be silently ignored.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// validate unifies the parsed document with the embedded CUE schema.
// An empty document (nil map) is valid.
func validate(raw map[string]any) error {
	if raw == nil {
		return nil
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup schema definition: %w", err)
	}

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		// cue errors carry positions and multiple messages; flatten them
		return errors.New(cueerrors.Details(err, nil))
	}
	return nil
}
