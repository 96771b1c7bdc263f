// Package config loads the parameters of a denomination search from YAML.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default, which reproduces the classic experiment (vary each of the
// US slots 5, 10, 25 over 2..99 with 1000 payments per trial).
//
//	slots: [5, 10, 25]
//	from: 2
//	to: 99
//	length: 1000
//	seed: 1
//	strategy: whole
//	prices: prices.txt
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cointray/search"
	"github.com/katalvlaran/cointray/till"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is shared; validator.Validate caches struct metadata and is concurrency-safe.
var validate = validator.New()

// Config mirrors search.Options plus the location of the price list.
type Config struct {
	Slots              []int  `yaml:"slots" validate:"required,min=1,dive,gt=0"`
	Varied             []int  `yaml:"varied,omitempty" validate:"omitempty,dive,gte=0"`
	From               int    `yaml:"from" validate:"gte=1"`
	To                 int    `yaml:"to" validate:"gtefield=From"`
	Length             int    `yaml:"length" validate:"gt=0"`
	Seed               int64  `yaml:"seed"`
	IndependentStreams bool   `yaml:"independent_streams"`
	Workers            int    `yaml:"workers" validate:"gte=0"` // 0 means GOMAXPROCS
	Strategy           string `yaml:"strategy" validate:"oneof=whole subset"`
	Modulus            int    `yaml:"modulus" validate:"gt=0"`
	Prices             string `yaml:"prices"`
	Top                int    `yaml:"top" validate:"gte=0"` // trials listed in reports
}

// Default returns the classic experiment.
func Default() Config {
	return Config{
		Slots:    []int{5, 10, 25},
		From:     2,
		To:       99,
		Length:   1000,
		Seed:     1,
		Strategy: till.WholeTray.String(),
		Modulus:  till.DefaultModulus,
		Prices:   "prices.txt",
	}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks field constraints and that varied indices address existing slots.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, i := range c.Varied {
		if i >= len(c.Slots) {
			return fmt.Errorf("%w: varied index %d outside %d slots", ErrInvalidConfig, i, len(c.Slots))
		}
	}

	return nil
}

// SearchOptions converts a validated Config into search options.
func (c Config) SearchOptions() ([]search.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	strategy, err := till.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	opts := []search.Option{
		search.WithSlots(c.Slots...),
		search.WithRange(c.From, c.To),
		search.WithLength(c.Length),
		search.WithSeed(c.Seed),
		search.WithStrategy(strategy),
		search.WithModulus(c.Modulus),
	}
	if len(c.Varied) > 0 {
		opts = append(opts, search.WithVaried(c.Varied...))
	}
	if c.IndependentStreams {
		opts = append(opts, search.WithIndependentStreams())
	}
	if c.Workers > 0 {
		opts = append(opts, search.WithWorkers(c.Workers))
	}

	return opts, nil
}
