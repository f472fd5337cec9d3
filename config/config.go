// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Default values for the full configuration surface. Registered with
// viper so a settings file or flag can override any of them.
const (
	// DefaultWildCard pads sequence positions past a protein terminus
	DefaultWildCard = "_"

	// DefaultSubstrateLength is the centered substrate/peptide width
	DefaultSubstrateLength = 15

	// DefaultBackground is the only supported null model
	DefaultBackground = "random"

	// DefaultNullSamples is the random peptide count per kinase null
	DefaultNullSamples = 1000

	// DefaultSeed makes scoring and permutation reproducible
	DefaultSeed = 1234

	// DefaultPseudoCount keeps zero-count PWM positions off log(0)
	DefaultPseudoCount = 1.0

	// DefaultPCutPWM is the substrate match significance cutoff
	DefaultPCutPWM = 0.05

	// DefaultPCutFC is the fold-change significance cutoff
	DefaultPCutFC = 0.05

	// DefaultPermutations is the swing label-permutation trial count
	DefaultPermutations = 100

	// DefaultThreads is the worker count over kinases
	DefaultThreads = 1
)

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line.
type Config struct {
	// WildCard is the terminus padding symbol
	WildCard string `mapstructure:"wild-card"`

	// SubstrateLength is the centered sequence width
	SubstrateLength int `mapstructure:"substrate-length"`

	// RemoveCenter drops substrates with this phosphosite residue; empty
	// disables the filter
	RemoveCenter string `mapstructure:"remove-center"`

	// Background selects the null model; only "random" is supported
	Background string `mapstructure:"background"`

	// NullSamples is the random peptide count behind match p-values
	NullSamples int `mapstructure:"null-samples"`

	// ForceTrim is accepted and ignored: adaptive peptide trimming is
	// not yet supported
	ForceTrim bool `mapstructure:"force-trim"`

	// Seed for every random stream; negative means fresh per run
	Seed int64 `mapstructure:"seed"`

	// PseudoCount for the PWM log-odds transform
	PseudoCount float64 `mapstructure:"pseudo-count"`

	// PCutPWM is the match significance cutoff for network edges
	PCutPWM float64 `mapstructure:"p-cut-pwm"`

	// PCutFC is the fold-change significance cutoff for edge weight
	PCutFC float64 `mapstructure:"p-cut-fc"`

	// Permutations is the swing trial count; <= 1 skips permutation
	Permutations int `mapstructure:"permutations"`

	// Verbose prints stage progress markers to stderr
	Verbose bool `mapstructure:"verbose"`

	// Threads is the worker count over kinases
	Threads int `mapstructure:"threads"`
}

// SetDefaults registers every default with viper. Called once from the
// root command before flags are bound.
func SetDefaults() {
	viper.SetDefault("wild-card", DefaultWildCard)
	viper.SetDefault("substrate-length", DefaultSubstrateLength)
	viper.SetDefault("remove-center", "")
	viper.SetDefault("background", DefaultBackground)
	viper.SetDefault("null-samples", DefaultNullSamples)
	viper.SetDefault("force-trim", false)
	viper.SetDefault("seed", DefaultSeed)
	viper.SetDefault("pseudo-count", DefaultPseudoCount)
	viper.SetDefault("p-cut-pwm", DefaultPCutPWM)
	viper.SetDefault("p-cut-fc", DefaultPCutFC)
	viper.SetDefault("permutations", DefaultPermutations)
	viper.SetDefault("verbose", false)
	viper.SetDefault("threads", DefaultThreads)
}

// New returns a new Config struct populated by Viper settings (either
// from a local settings file) and/or command line arguments.
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}
