package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	viper.Reset()

	c, err := New()
	require.NoError(t, err)

	assert.Equal(t, "primer3_core", c.Primer3.Path)
	assert.Empty(t, c.Primer3.ThermoParamsPath)
	assert.Equal(t, 100, c.Primer3.ProductSizeMin)
	assert.Equal(t, 1000, c.Primer3.ProductSizeCap)

	p := c.Params()
	require.NoError(t, p.Validate())
	assert.Equal(t, 25, p.SizeOpt)
	assert.Equal(t, 65.0, p.TmOpt)
	assert.Equal(t, 2, p.GCClamp)
}

func TestParamsCarryWindowPolicy(t *testing.T) {
	viper.Reset()
	viper.Set("primer3.product-size-min", 50)
	viper.Set("primer3.product-size-cap", 2000)

	c, err := New()
	require.NoError(t, err)

	p := c.Params()
	assert.Equal(t, 50, p.ProductSizeMin)
	assert.Equal(t, 2000, p.ProductSizeCap)
}

func TestOracle(t *testing.T) {
	viper.Reset()
	viper.Set("primer3.path", "/usr/local/bin/primer3_core")
	viper.Set("primer3.thermo-params", "/opt/primer3/config/")

	c, err := New()
	require.NoError(t, err)

	o := c.Oracle()
	assert.Equal(t, "/usr/local/bin/primer3_core", o.Path)
	assert.Equal(t, "/opt/primer3/config/", o.ThermoParamsPath)
}
