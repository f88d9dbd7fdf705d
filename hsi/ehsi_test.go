// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsi

import (
	"testing"

	"cogentcore.org/prism/base/tolassert"
	"cogentcore.org/prism/rgb"
	"github.com/stretchr/testify/assert"
)

func TestEHSIFromRGB(t *testing.T) {
	// white is fully saturated in eHSI, unlike HSI
	c := EHSIFromRGB(rgb.RGB[float64]{R: 1, G: 1, B: 1})
	tolassert.EqualTol(t, 0, c.H, 1e-9)
	tolassert.EqualTol(t, 1, c.S, 1e-6)
	tolassert.EqualTol(t, 1, c.I, 1e-9)

	c = EHSIFromRGB(rgb.RGB[float64]{R: 0.5, G: 1, B: 1})
	tolassert.EqualTol(t, 180, c.H, 1e-6)
	tolassert.EqualTol(t, 1, c.S, 1e-3)
	tolassert.EqualTol(t, 0.8333333, c.I, 1e-6)
}

func TestEHSIRoundTrip(t *testing.T) {
	// the whole cylinder round-trips, including the bright colors
	// HSI cannot represent
	colors := []rgb.RGB[float64]{
		{R: 0.2, G: 0.5, B: 0.8},
		{R: 0.9, G: 0.1, B: 0.4},
		{R: 0.5, G: 1, B: 1},
		{R: 1, G: 0.9, B: 0.2},
		{R: 0.95, G: 0.95, B: 0.95},
		{R: 0.1, G: 0.2, B: 0.15},
	}
	for _, c := range colors {
		back := EHSIFromRGB(c).RGB()
		tolassert.EqualTol(t, c.R, back.R, 2e-3, c.String())
		tolassert.EqualTol(t, c.G, back.G, 2e-3, c.String())
		tolassert.EqualTol(t, c.B, back.B, 2e-3, c.String())
	}
}

func TestEHSIThreshold(t *testing.T) {
	// below the intensity limit, eHSI and HSI coincide
	low := NewEHSI[float64](180, 1, 0.6)
	assert.True(t, low.SameAsHSI())
	h, ok := low.HSI()
	assert.True(t, ok)
	assert.Equal(t, HSI[float64]{180, 1, 0.6}, h)

	hsiBack, ok := EHSIFromHSI(h)
	assert.True(t, ok)
	assert.Equal(t, low, hsiBack)

	// above it, they differ and the mapping refuses
	high := NewEHSI[float64](180, 1, 0.7)
	assert.False(t, high.SameAsHSI())
	_, ok = high.HSI()
	assert.False(t, ok)
	_, ok = EHSIFromHSI(HSI[float64]{180, 1, 0.7})
	assert.False(t, ok)
}

func TestEHSIAgreesWithHSIBelowThreshold(t *testing.T) {
	c := rgb.RGB[float64]{R: 0.3, G: 0.15, B: 0.1}
	e := EHSIFromRGB(c)
	h := FromRGB(c)
	assert.True(t, e.SameAsHSI())
	tolassert.EqualTol(t, h.H, e.H, 1e-9)
	tolassert.EqualTol(t, h.S, e.S, 1e-9)
	tolassert.EqualTol(t, h.I, e.I, 1e-9)
}

func TestEHSILerp(t *testing.T) {
	a := EHSI[float64]{350, 0.2, 0.4}
	b := EHSI[float64]{10, 0.4, 0.6}
	mid := a.Lerp(b, 0.5)
	tolassert.EqualTol(t, 0, mid.H, 1e-9)
	tolassert.EqualTol(t, 0.3, mid.S, 1e-12)
	tolassert.EqualTol(t, 0.5, mid.I, 1e-12)
}
