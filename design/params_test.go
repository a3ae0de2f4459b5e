package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	assert.NoError(t, p.Validate())
	assert.Equal(t, 20, p.SizeMin)
	assert.Equal(t, 25, p.SizeOpt)
	assert.Equal(t, 30, p.SizeMax)
	assert.Equal(t, 64.0, p.TmMin)
	assert.Equal(t, 66.0, p.TmMax)
	assert.Equal(t, 2, p.GCClamp)
	assert.Equal(t, 5, p.NumReturn)
	assert.Equal(t, 100, p.ProductSizeMin)
	assert.Equal(t, 1000, p.ProductSizeCap)
}

func TestValidateRejectsBadRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"size max below min", func(p *Params) { p.SizeOpt = p.SizeMin; p.SizeMax = p.SizeMin - 1 }},
		{"size opt below min", func(p *Params) { p.SizeOpt = p.SizeMin }},
		{"size max below opt", func(p *Params) { p.SizeMax = p.SizeOpt - 1 }},
		{"tm opt below min", func(p *Params) { p.TmOpt = p.TmMin }},
		{"tm max below opt", func(p *Params) { p.TmMax = p.TmOpt - 0.5 }},
		{"negative gc clamp", func(p *Params) { p.GCClamp = -1 }},
		{"zero num return", func(p *Params) { p.NumReturn = 0 }},
		{"zero product min", func(p *Params) { p.ProductSizeMin = 0 }},
		{"cap below window", func(p *Params) { p.ProductSizeCap = p.ProductSizeMin - 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			assert.ErrorIs(t, p.Validate(), ErrParamRange)
		})
	}
}

func TestWithGCClampCopies(t *testing.T) {
	p := DefaultParams()

	relaxed := p.WithGCClamp(0)

	assert.Equal(t, 0, relaxed.GCClamp)
	assert.Equal(t, 2, p.GCClamp)
	assert.Equal(t, p.TmMin, relaxed.TmMin)
}

func TestWithTmRangeCopies(t *testing.T) {
	p := DefaultParams()

	relaxed := p.WithTmRange(p.TmMin-1.0, p.TmMax+1.0)

	assert.Equal(t, 63.0, relaxed.TmMin)
	assert.Equal(t, 67.0, relaxed.TmMax)
	assert.Equal(t, 65.0, relaxed.TmOpt)
	assert.Equal(t, 64.0, p.TmMin)
	assert.Equal(t, 66.0, p.TmMax)
}
