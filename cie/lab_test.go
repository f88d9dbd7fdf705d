// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/prism/base/tolassert"
)

func TestLabCompress(t *testing.T) {
	tolassert.Equal(t, float32(0.887904), LabCompress(float32(0.7)))
	tolassert.Equal(t, float32(0.1379544), LabCompress(float32(0.000003)))
	tolassert.Equal(t, float32(0.21600002), LabUncompress(float32(0.6)))

	// inverse of each other on both sides of the threshold
	tolassert.EqualTol(t, 0.5, LabUncompress(LabCompress(0.5)), 1e-12)
	tolassert.EqualTol(t, 0.004, LabUncompress(LabCompress(0.004)), 1e-12)
	tolassert.EqualTol(t, Epsilon, LabUncompress(LabCompress(Epsilon)), 1e-12)
}

func TestLightness(t *testing.T) {
	tolassert.Equal(t, float32(0.023023315), LToY(float32(17)))
	tolassert.Equal(t, float32(21.579497), YToL(float32(0.034)))
	tolassert.Equal(t, float32(100), YToL(float32(1)))
	tolassert.Equal(t, float32(0), YToL(float32(0)))
	tolassert.EqualTol(t, 0.4, LToY(YToL(0.4)), 1e-12)
	tolassert.EqualTol(t, 0.0005, LToY(YToL(0.0005)), 1e-12)
}

func TestLab(t *testing.T) {
	c := LabFromXYZ(XYZ[float32]{0.1, 0.3, 0.5}, D65[float32]())
	tolassert.Equal(t, float32(61.65422), c.L)
	tolassert.EqualTol(t, float32(-98.673805), c.A, 0.01)
	tolassert.EqualTol(t, float32(-20.413673), c.B, 0.01)

	back := c.XYZ(D65[float32]())
	tolassert.Equal(t, float32(0.1), back.X)
	tolassert.Equal(t, float32(0.3), back.Y)
	tolassert.Equal(t, float32(0.5), back.Z)

	// the reference white itself is L*=100, a*=b*=0
	w := LabFromXYZ(D50[float64](), D50[float64]())
	tolassert.EqualTol(t, 100, w.L, 1e-9)
	tolassert.EqualTol(t, 0, w.A, 1e-9)
	tolassert.EqualTol(t, 0, w.B, 1e-9)

	// black is the origin
	z := LabFromXYZ(XYZ[float64]{}, D65[float64]())
	tolassert.EqualTol(t, 0, z.L, 1e-9)
	tolassert.EqualTol(t, 0, z.A, 1e-9)
	tolassert.EqualTol(t, 0, z.B, 1e-9)
}

func TestLabRoundTripDarkColors(t *testing.T) {
	// exercise the linear segment of the companding function
	wp := D65[float64]()
	for _, y := range []float64{0, 0.001, 0.005, 0.0088, 0.009, 0.05} {
		c := XYZ[float64]{y * 0.9, y, y * 1.1}
		back := LabFromXYZ(c, wp).XYZ(wp)
		tolassert.EqualTol(t, c.X, back.X, 1e-9)
		tolassert.EqualTol(t, c.Y, back.Y, 1e-9)
		tolassert.EqualTol(t, c.Z, back.Z, 1e-9)
	}
}
