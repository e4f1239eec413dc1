// Package config reads the CLI configuration from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/rvnd"
	"github.com/katalvlaran/gils/tour"
)

// Environment keys.
const (
	EnvInstance      = "GILS_INSTANCE"
	EnvVariant       = "GILS_VARIANT"
	EnvSeed          = "GILS_SEED"
	EnvRestarts      = "GILS_RESTARTS"
	EnvIterations    = "GILS_ITERATIONS"
	EnvTimeLimit     = "GILS_TIME_LIMIT"
	EnvConstruction  = "GILS_CONSTRUCTION"
	EnvRandomStart   = "GILS_RANDOM_START"
	EnvStartVertex   = "GILS_START"
	EnvNeighborhoods = "GILS_NEIGHBORHOODS"
)

// Variants.
const (
	VariantTSP = "tsp"
	VariantMLP = "mlp"
)

// ErrInvalid is returned for a value that cannot be parsed or is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved CLI configuration.
type Config struct {
	Instance      string
	Variant       string
	Seed          int64
	Restarts      int
	Iterations    int
	TimeLimit     time.Duration
	Construction  string
	RandomStart   bool
	StartVertex   int
	Neighborhoods string
}

// Load applies the given .env files (".env" when none) without overriding
// variables already set, then reads the configuration. Missing files are
// not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	return FromEnv()
}

// Get returns the value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

// FromEnv reads the configuration from the process environment only.
// Values are parsed but not cross-checked, so flags can still override them;
// call Validate once all sources are applied.
func FromEnv() (Config, error) {
	def := ils.DefaultOptions()
	c := Config{
		Instance:      Get(EnvInstance, ""),
		Variant:       strings.ToLower(Get(EnvVariant, VariantTSP)),
		Construction:  strings.ToLower(Get(EnvConstruction, def.Construction.String())),
		Neighborhoods: Get(EnvNeighborhoods, ""),
	}

	var err error
	if c.Seed, err = strconv.ParseInt(Get(EnvSeed, "0"), 10, 64); err != nil {
		return Config{}, invalid(EnvSeed, err)
	}
	if c.Restarts, err = strconv.Atoi(Get(EnvRestarts, strconv.Itoa(def.MaxRestarts))); err != nil {
		return Config{}, invalid(EnvRestarts, err)
	}
	if c.Iterations, err = strconv.Atoi(Get(EnvIterations, "0")); err != nil {
		return Config{}, invalid(EnvIterations, err)
	}
	if c.TimeLimit, err = time.ParseDuration(Get(EnvTimeLimit, "0s")); err != nil {
		return Config{}, invalid(EnvTimeLimit, err)
	}
	if c.RandomStart, err = strconv.ParseBool(Get(EnvRandomStart, "false")); err != nil {
		return Config{}, invalid(EnvRandomStart, err)
	}
	if c.StartVertex, err = strconv.Atoi(Get(EnvStartVertex, "0")); err != nil {
		return Config{}, invalid(EnvStartVertex, err)
	}

	return c, nil
}

func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
}

// Validate checks the fields that SearchOptions does not cover. The variant
// name is matched case-insensitively.
func (c Config) Validate() error {
	if v := strings.ToLower(c.Variant); v != VariantTSP && v != VariantMLP {
		return fmt.Errorf("%w: variant %q (want %s or %s)", ErrInvalid, c.Variant, VariantTSP, VariantMLP)
	}

	return nil
}

// SearchOptions maps the configuration onto ils.Options.
func (c Config) SearchOptions() (ils.Options, error) {
	opts := ils.DefaultOptions()
	opts.Seed = c.Seed
	opts.MaxRestarts = c.Restarts
	opts.MaxIterations = c.Iterations
	opts.TimeLimit = c.TimeLimit
	opts.RandomStart = c.RandomStart
	opts.StartVertex = c.StartVertex

	var err error
	if opts.Construction, err = tour.ParseConstruction(c.Construction); err != nil {
		return ils.Options{}, fmt.Errorf("%w: construction %q", ErrInvalid, c.Construction)
	}
	if opts.Neighborhoods, err = rvnd.ParseList(c.Neighborhoods); err != nil {
		return ils.Options{}, fmt.Errorf("%w: neighborhoods %q: %w", ErrInvalid, c.Neighborhoods, err)
	}
	if err = opts.Validate(); err != nil {
		return ils.Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return opts, nil
}
