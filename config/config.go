// Package config loads the optional tuning file for a run: the RNG
// seed, the annealing time-budget scale factor, and the cleanup walker's
// step cap (SPEC_FULL.md §4.9).
//
// Grounded on tabular/reinforcement/learning.go's FromYaml: viper reads
// the file and decodes the outer document by its mapstructure tags, the
// inner value is re-marshaled through yaml.v3, and yaml tags drive the
// final decode. That two-stage dance is kept
// here for the same reason the teacher used it — viper's own struct
// decoding is tied to its own tag conventions, so round-tripping through
// yaml.v3 keeps the target struct's tags plain "yaml".
package config

import (
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds every spec-default constant a run may override.
type Config struct {
	// Seed is the MT19937 seed for the annealer (§4.4). Default 1.
	Seed uint32 `yaml:"seed"`
	// TimeScale multiplies the annealer's wall-clock budget (§4.4). Default 1.0.
	// viper lowercases every key it reads, so the tag is lowercase; a file
	// may spell the key timeScale.
	TimeScale float64 `yaml:"timescale"`
	// BFSStepCap bounds the cleanup walker's individual moves (§9). Default 100000.
	// Lowercase tag for the same reason; a file may spell it bfsStepCap.
	BFSStepCap int `yaml:"bfsstepcap"`
}

// Default returns the spec's exact defaults.
func Default() *Config {
	return &Config{
		Seed:       1,
		TimeScale:  1.0,
		BFSStepCap: 100000,
	}
}

// outerConfig mirrors the teacher's wrapping convention: a yaml document
// with a top-level kind/def pair, so the same file format could host
// other configuration kinds later without a breaking change.
type outerConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// Load reads path as a YAML document and overlays it on Default. An
// empty path returns Default unmodified.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	outer := &outerConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return nil, err
	}

	spec, err := yaml.Marshal(outer.Def)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(spec, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
