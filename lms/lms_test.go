// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lms

import (
	"testing"

	"cogentcore.org/prism/base/tolassert"
	"cogentcore.org/prism/cie"
	"cogentcore.org/prism/linalg"
	"github.com/stretchr/testify/assert"
)

func TestHPE(t *testing.T) {
	c := FromXYZ(cie.XYZ[float32]{X: 0.4, Y: 0.6, Z: 0.23}, HuntPointerEstevez[float32]())
	tolassert.Equal(t, float32(0.5511756), c.L)
	tolassert.Equal(t, float32(0.6287903), c.M)
	tolassert.Equal(t, float32(0.23), c.S)

	back := c.XYZ(HuntPointerEstevez[float32]())
	tolassert.Equal(t, float32(0.4), back.X)
	tolassert.Equal(t, float32(0.6), back.Y)
	tolassert.Equal(t, float32(0.23), back.Z)
}

func TestModelRoundTrips(t *testing.T) {
	models := []Model[float64]{
		Bradford[float64](),
		CAT02[float64](),
		CIECAM97s[float64](),
		HuntPointerEstevez[float64](),
		VonKries[float64](),
	}
	c := cie.XYZ[float64]{X: 0.3, Y: 0.4, Z: 0.2}
	for _, m := range models {
		back := FromXYZ(c, m).XYZ(m)
		tolassert.EqualTol(t, c.X, back.X, 1e-9, m.Name)
		tolassert.EqualTol(t, c.Y, back.Y, 1e-9, m.Name)
		tolassert.EqualTol(t, c.Z, back.Z, 1e-9, m.Name)
	}
}

func TestModelByName(t *testing.T) {
	for _, name := range []string{"bradford", "cat02", "ciecam97s", "hunt-pointer-estevez", "von-kries"} {
		m, ok := ModelByName[float32](name)
		assert.True(t, ok, name)
		assert.Equal(t, name, m.Name)
	}
	_, ok := ModelByName[float32]("sharp")
	assert.False(t, ok)
}

func TestAdaptIdentity(t *testing.T) {
	m := Bradford[float64]()
	c := cie.XYZ[float64]{X: 0.22, Y: 0.31, Z: 0.16}
	for _, name := range cie.WhitePointNames() {
		wp, _ := cie.WhitePointByName[float64](name, cie.Deg2)
		out := Adapt(c, wp, wp, m)
		assert.Equal(t, c, out, name)
	}
}

func TestAdapt(t *testing.T) {
	m := Bradford[float64]()

	// the source white maps exactly onto the destination white
	w := Adapt(cie.D65[float64](), cie.D65[float64](), cie.D50[float64](), m)
	tolassert.EqualTol(t, 0.96422, w.X, 1e-9)
	tolassert.EqualTol(t, 1, w.Y, 1e-9)
	tolassert.EqualTol(t, 0.82521, w.Z, 1e-9)

	c := Adapt(cie.XYZ[float64]{X: 0.3, Y: 0.4, Z: 0.2}, cie.D65[float64](), cie.D50[float64](), m)
	tolassert.EqualTol(t, 0.31347262, c.X, 1e-6)
	tolassert.EqualTol(t, 0.40164666, c.Y, 1e-6)
	tolassert.EqualTol(t, 0.15367343, c.Z, 1e-6)

	// adapting there and back is the identity
	back := Adapt(c, cie.D50[float64](), cie.D65[float64](), m)
	tolassert.EqualTol(t, 0.3, back.X, 1e-9)
	tolassert.EqualTol(t, 0.4, back.Y, 1e-9)
	tolassert.EqualTol(t, 0.2, back.Z, 1e-9)
}

func TestNewModel(t *testing.T) {
	_, err := NewModel("flat", linalg.Matrix3[float64]{1, 2, 3, 2, 4, 6, 0, 0, 1})
	assert.ErrorIs(t, err, linalg.ErrSingular)
}
