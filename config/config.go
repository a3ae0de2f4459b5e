// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"primerd/design"
	"primerd/primer3"
)

// Primer3Settings locate and scope the primer3_core oracle.
type Primer3Settings struct {
	// path to the primer3_core executable
	Path string `mapstructure:"path"`

	// folder with primer3's thermodynamic parameter tables;
	// empty uses primer3's compiled-in defaults
	ThermoParamsPath string `mapstructure:"thermo-params"`

	// lower bound of the product-size search window in bp
	ProductSizeMin int `mapstructure:"product-size-min"`

	// cap on the window's upper bound in bp; the template
	// length wins below it
	ProductSizeCap int `mapstructure:"product-size-cap"`
}

// Config is the root-level settings struct, a mix of settings available
// in a config file and those bound from the command line.
type Config struct {
	// Primer3 oracle settings
	Primer3 Primer3Settings `mapstructure:"primer3"`

	// Design holds the default primer design parameters
	Design design.Params `mapstructure:"design"`
}

// SetDefaults seeds viper with the protocol defaults. Safe to call before
// flags are bound; bound flags and config files override these.
func SetDefaults() {
	viper.SetDefault("primer3.path", "primer3_core")
	viper.SetDefault("primer3.thermo-params", "")
	viper.SetDefault("primer3.product-size-min", 100)
	viper.SetDefault("primer3.product-size-cap", 1000)

	defaults := design.DefaultParams()
	viper.SetDefault("design.size-min", defaults.SizeMin)
	viper.SetDefault("design.size-opt", defaults.SizeOpt)
	viper.SetDefault("design.size-max", defaults.SizeMax)
	viper.SetDefault("design.tm-min", defaults.TmMin)
	viper.SetDefault("design.tm-opt", defaults.TmOpt)
	viper.SetDefault("design.tm-max", defaults.TmMax)
	viper.SetDefault("design.gc-clamp", defaults.GCClamp)
	viper.SetDefault("design.num-return", defaults.NumReturn)
}

// New returns a Config populated by Viper settings and command line
// arguments.
func New() (*Config, error) {
	SetDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	return &c, nil
}

// Params returns the configured design parameters with the product-size
// window policy threaded in.
func (c *Config) Params() design.Params {
	p := c.Design
	p.ProductSizeMin = c.Primer3.ProductSizeMin
	p.ProductSizeCap = c.Primer3.ProductSizeCap
	return p
}

// Oracle returns the primer3_core binding for the configured paths.
func (c *Config) Oracle() *primer3.Exec {
	return primer3.NewExec(c.Primer3.Path, c.Primer3.ThermoParamsPath)
}
