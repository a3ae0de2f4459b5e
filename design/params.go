package design

import (
	"errors"
	"fmt"
)

// ErrParamRange marks a parameter bundle that violates its ordering
// invariants. Checked with errors.Is.
var ErrParamRange = errors.New("invalid parameter range")

// Params is the primer design constraint bundle. Values are validated
// before any search and never mutated afterwards: relaxation during
// troubleshooting derives fresh copies via the With* methods.
type Params struct {
	// primer length bounds in bp, min < opt <= max
	SizeMin int `json:"primer_size_min" mapstructure:"size-min"`
	SizeOpt int `json:"primer_size_opt" mapstructure:"size-opt"`
	SizeMax int `json:"primer_size_max" mapstructure:"size-max"`

	// melting temperature band in °C, min < opt <= max
	TmMin float64 `json:"primer_tm_min" mapstructure:"tm-min"`
	TmOpt float64 `json:"primer_tm_opt" mapstructure:"tm-opt"`
	TmMax float64 `json:"primer_tm_max" mapstructure:"tm-max"`

	// required count of G/C bases at each primer's 3' end
	GCClamp int `json:"gc_clamp" mapstructure:"gc-clamp"`

	// maximum number of ranked pairs to request
	NumReturn int `json:"num_return" mapstructure:"num-return"`

	// product-size search window policy: the window's lower bound and the
	// cap its upper bound is clipped to (the template length wins below it)
	ProductSizeMin int `json:"-" mapstructure:"product-size-min"`
	ProductSizeCap int `json:"-" mapstructure:"product-size-cap"`
}

// DefaultParams returns the lab protocol defaults: 20/25/30 bp primers,
// a 64-66°C Tm band, a 2-base GC clamp and 5 returned pairs.
func DefaultParams() Params {
	return Params{
		SizeMin:        20,
		SizeOpt:        25,
		SizeMax:        30,
		TmMin:          64.0,
		TmOpt:          65.0,
		TmMax:          66.0,
		GCClamp:        2,
		NumReturn:      5,
		ProductSizeMin: 100,
		ProductSizeCap: 1000,
	}
}

// Validate checks the ordering invariants. A violation fails here, before
// any oracle call, with an error wrapping ErrParamRange.
func (p Params) Validate() error {
	switch {
	case p.SizeOpt <= p.SizeMin:
		return fmt.Errorf("primer_size_opt must be greater than primer_size_min: %w", ErrParamRange)
	case p.SizeMax < p.SizeOpt:
		return fmt.Errorf("primer_size_max must be >= primer_size_opt: %w", ErrParamRange)
	case p.TmOpt <= p.TmMin:
		return fmt.Errorf("primer_tm_opt must be greater than primer_tm_min: %w", ErrParamRange)
	case p.TmMax < p.TmOpt:
		return fmt.Errorf("primer_tm_max must be >= primer_tm_opt: %w", ErrParamRange)
	case p.GCClamp < 0:
		return fmt.Errorf("gc_clamp must be non-negative: %w", ErrParamRange)
	case p.NumReturn < 1:
		return fmt.Errorf("num_return must be positive: %w", ErrParamRange)
	case p.ProductSizeMin < 1:
		return fmt.Errorf("product size minimum must be positive: %w", ErrParamRange)
	case p.ProductSizeCap < p.ProductSizeMin:
		return fmt.Errorf("product size cap must be >= product size minimum: %w", ErrParamRange)
	}

	return nil
}

// WithGCClamp returns a copy of p with the 3' clamp requirement replaced.
func (p Params) WithGCClamp(clamp int) Params {
	p.GCClamp = clamp
	return p
}

// WithTmRange returns a copy of p with the melting temperature band
// widened or narrowed to [tmMin, tmMax].
func (p Params) WithTmRange(tmMin, tmMax float64) Params {
	p.TmMin = tmMin
	p.TmMax = tmMax
	return p
}
