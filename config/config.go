// Package config holds the settings of the morton3d command line tool.
// Settings come from (in increasing order of precedence) struct defaults,
// an optional JSON or YAML file and command line flags / environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/pdok/morton3d/morton"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"
	"gopkg.in/yaml.v2"
)

var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

type Config struct {
	// Decode implementation: lut, early-exit or compat
	Strategy string `default:"lut" validate:"required,oneof=lut early-exit compat" json:"strategy" yaml:"strategy"`
	// Output format: dec, hex, bin, json or cbor
	Format string `default:"dec" validate:"required,oneof=dec hex bin json cbor" json:"format" yaml:"format"`
	// Only output this axis when decoding (x, y or z). Empty means all three.
	Axis string `validate:"omitempty,oneof=x y z" json:"axis,omitempty" yaml:"axis,omitempty"`
	// Number of goroutines converting records in batch mode
	Workers int `default:"4" validate:"min=1,max=64" json:"workers" yaml:"workers"`
	// Capacity of the channels between reading, converting and writing
	BufferSize int `default:"1024" validate:"min=1" json:"bufferSize" yaml:"bufferSize"`
}

// Default returns a valid Config with all defaults set
func Default() Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		// only happens with broken default tags
		panic(err)
	}
	return c
}

// Load reads a config file (.json, .yaml or .yml), fills in defaults and validates.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("could not read config file: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = c.UnmarshalJSON(data)
	case ".yaml", ".yml":
		err = c.unmarshalYAML(data)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return c, fmt.Errorf("could not load config from %s: %w", path, err)
	}
	return c, nil
}

// UnmarshalJSON keeps values absent from data as they are, warns about unknown keys and validates the result.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config // no UnmarshalJSON, no recursion
	p := plain(*c)
	unknown, err := marshmallow.Unmarshal(data, &p, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}
	warnUnknownKeys(unknown)
	*c = Config(p)
	return c.Validate()
}

// unmarshalYAML is the YAML counterpart of UnmarshalJSON.
func (c *Config) unmarshalYAML(data []byte) error {
	p := *c
	if err := yaml.Unmarshal(data, &p); err != nil {
		return err
	}
	var all map[string]interface{}
	if err := yaml.Unmarshal(data, &all); err == nil {
		for key := range knownYAMLKeys() {
			delete(all, key)
		}
		warnUnknownKeys(all)
	}
	*c = p
	return c.Validate()
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(c)
}

// Override replaces the values in c with the non-zero values in o and validates the result.
func (c *Config) Override(o Config) error {
	if o.Strategy != "" {
		c.Strategy = o.Strategy
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Axis != "" {
		c.Axis = o.Axis
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.BufferSize != 0 {
		c.BufferSize = o.BufferSize
	}
	return c.Validate()
}

// Codec returns the morton.Codec for the configured strategy
func (c *Config) Codec() (morton.Codec, error) {
	strategy, err := morton.ParseStrategy(c.Strategy)
	if err != nil {
		return morton.Codec{}, err
	}
	return morton.NewCodec(strategy)
}

// AxisFilter returns the configured single axis, ok is false when all axes are wanted.
func (c *Config) AxisFilter() (axis morton.Axis, ok bool, err error) {
	if c.Axis == "" {
		return morton.AxisX, false, nil
	}
	axis, err = morton.ParseAxis(c.Axis)
	return axis, err == nil, err
}

func knownYAMLKeys() map[string]struct{} {
	t := reflect.TypeOf(Config{})
	known := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		known[name] = struct{}{}
	}
	return known
}

func warnUnknownKeys(unknown map[string]interface{}) {
	keys := make([]string, 0, len(unknown))
	for key := range unknown {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		log.Printf("ignoring unknown config key %q", key)
	}
}
