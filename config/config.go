// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// Default per-base error rates, from Brodin et al. 2013,
// doi:10.1371/journal.pone.0070388
const (
	DefaultSubstitution = 0.000057
	DefaultInsertion    = 0.000069
	DefaultDeletion     = 0.0016
)

// Default shearing parameters
const (
	DefaultDepth  = 50.0
	DefaultLength = 150
)

// Config is the root-level settings struct and is a mix of settings
// available in .sonicat.yaml and those available from the command line
type Config struct {
	// the probability of a substitution error per nucleotide
	Substitution float64 `mapstructure:"substitution"`

	// the probability of an insertion error per nucleotide
	Insertion float64 `mapstructure:"insertion"`

	// the probability of a deletion error per nucleotide
	Deletion float64 `mapstructure:"deletion"`

	// the average read depth across fragments
	Depth float64 `mapstructure:"depth"`

	// the read length in bases
	Length int `mapstructure:"length"`
}

// New returns a new Config struct populated by Viper settings
// (either from .sonicat.yaml) and/or command line arguments
func New() *Config {
	viper.SetDefault("substitution", DefaultSubstitution)
	viper.SetDefault("insertion", DefaultInsertion)
	viper.SetDefault("deletion", DefaultDeletion)
	viper.SetDefault("depth", DefaultDepth)
	viper.SetDefault("length", DefaultLength)

	viper.SetEnvPrefix("sonicat")
	viper.AutomaticEnv()

	viper.SetConfigName(".sonicat")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.ReadInConfig() // a missing settings file is fine, defaults apply

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
