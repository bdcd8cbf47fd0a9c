// Package config holds the emitter-facing configuration surface: the
// reserved-header deny-list, schema naming prefix, and output defaults
// the operation builder, emitter, and writer consult.
package config

import (
	"fmt"
	"os"

	"github.com/talav/mapstructure"
	"gopkg.in/yaml.v3"
)

// EmitterConfig configures how C source is turned into OpenAPI operations
// and how generated client code is emitted back.
type EmitterConfig struct {
	// ReservedHeaders lists header names that parameter classification
	// drops rather than exposing as operation parameters, since the
	// calling framework (not the documented function) governs them.
	// Defaults to Accept, Content-Type, Authorization, Host.
	ReservedHeaders []string `mapstructure:"reservedHeaders" yaml:"reservedHeaders"`

	// SchemaPrefix is prepended to every generated $ref, e.g.
	// "#/components/schemas/".
	SchemaPrefix string `mapstructure:"schemaPrefix" yaml:"schemaPrefix"`

	// DefaultContentType is the request-body media type the C emitter
	// serializes when an operation's request body lists it.
	DefaultContentType string `mapstructure:"defaultContentType" yaml:"defaultContentType"`

	// NamespacePrefix is prepended to the C identifiers the emitter
	// generates (function names, header guard, init/cleanup functions).
	NamespacePrefix string `mapstructure:"namespacePrefix" yaml:"namespacePrefix"`
}

// DefaultEmitterConfig returns the configuration used when no file is
// supplied: the reserved-header deny-list from spec.md §9's resolved
// Open Question, and the OpenAPI/JSON conventions used elsewhere in this
// project.
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		ReservedHeaders:    []string{"Accept", "Content-Type", "Authorization", "Host"},
		SchemaPrefix:       "#/components/schemas/",
		DefaultContentType: "application/json",
	}
}

// LoadFile reads a YAML emitter-configuration file and decodes it onto
// DefaultEmitterConfig, so a file that only sets one field leaves the
// rest at their defaults.
func LoadFile(path string) (EmitterConfig, error) {
	cfg := DefaultEmitterConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}
