// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/prism/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLChab(t *testing.T) {
	c := LChabFromLab(Lab[float32]{50, 3, 4})
	tolassert.Equal(t, float32(50), c.L)
	tolassert.Equal(t, float32(5), c.C)
	tolassert.Equal(t, float32(53.130102), c.H)

	back := c.Lab()
	tolassert.Equal(t, float32(3), back.A)
	tolassert.Equal(t, float32(4), back.B)

	// negative channels land in the right quadrant
	q := LChabFromLab(Lab[float64]{50, -3, -4})
	tolassert.EqualTol(t, 233.13010235, q.H, 1e-6)
}

func TestLChAchromatic(t *testing.T) {
	// zero chroma has hue 0, and survives the round-trip
	c := LChabFromLab(Lab[float32]{70, 0, 0})
	assert.Equal(t, float32(0), c.C)
	assert.Equal(t, float32(0), c.H)
	assert.Equal(t, Lab[float32]{70, 0, 0}, c.Lab())

	u := LChuvFromLuv(Luv[float64]{70, 0, 0})
	assert.Equal(t, 0.0, u.C)
	assert.Equal(t, 0.0, u.H)
}

func TestLChuv(t *testing.T) {
	c := LChuvFromLuv(Luv[float64]{61.2, -30, 42})
	back := c.Luv()
	tolassert.EqualTol(t, -30, back.U, 1e-9)
	tolassert.EqualTol(t, 42, back.V, 1e-9)
	assert.True(t, c.H >= 0 && c.H < 360)
	assert.True(t, c.C >= 0)
}

func TestNewLCh(t *testing.T) {
	c := NewLChab[float32](50, -2, 380)
	assert.Equal(t, float32(0), c.C)
	assert.Equal(t, float32(20), c.H)

	u := NewLChuv[float32](50, 7, -90)
	assert.Equal(t, float32(7), u.C)
	assert.Equal(t, float32(270), u.H)
}
