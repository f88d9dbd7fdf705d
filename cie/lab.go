// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"

	"cogentcore.org/prism/channel"
)

// Epsilon and Kappa are the constants of the CIE L* companding
// function, in their exact rational form (216/24389 and 24389/27).
const (
	Epsilon = 216.0 / 24389.0
	Kappa   = 24389.0 / 27.0
)

// Lab is a CIE L*a*b* value. L* is in [0, 100] for in-gamut colors;
// a* and b* are unbounded opponent channels (negative a* toward green,
// negative b* toward blue). Channels are free: no clamping is applied.
type Lab[T channel.Float] struct {
	L, A, B T
}

// NewLab returns a new [Lab] value.
func NewLab[T channel.Float](l, a, b T) Lab[T] {
	return Lab[T]{l, a, b}
}

// LabCompress applies the forward CIE companding function f(t):
// a cube root above [Epsilon], continued linearly below it.
// It is shared by the Lab and Luv lightness computations.
func LabCompress[T channel.Float](t T) T {
	if t > Epsilon {
		return channel.Cbrt(t)
	}
	return (T(Kappa)*t + 16) / 116
}

// LabUncompress inverts [LabCompress].
func LabUncompress[T channel.Float](f T) T {
	f3 := f * f * f
	if f3 > Epsilon {
		return f3
	}
	return (116*f - 16) / Kappa
}

// YToL converts a relative luminance Y in [0, 1] to an L* in [0, 100].
func YToL[T channel.Float](y T) T {
	return 116*LabCompress(y) - 16
}

// LToY converts an L* in [0, 100] to a relative luminance Y in [0, 1].
func LToY[T channel.Float](l T) T {
	if l > Kappa*Epsilon {
		v := (l + 16) / 116
		return v * v * v
	}
	return l / Kappa
}

// LabFromXYZ converts a tristimulus value to L*a*b* relative to the
// reference white wp.
func LabFromXYZ[T channel.Float](c XYZ[T], wp XYZ[T]) Lab[T] {
	fx := LabCompress(c.X / wp.X)
	fy := LabCompress(c.Y / wp.Y)
	fz := LabCompress(c.Z / wp.Z)
	return Lab[T]{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// XYZ converts L*a*b* back to tristimulus values relative to the
// reference white wp.
func (c Lab[T]) XYZ(wp XYZ[T]) XYZ[T] {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200
	return XYZ[T]{
		X: LabUncompress(fx) * wp.X,
		Y: LToY(c.L) * wp.Y,
		Z: LabUncompress(fz) * wp.Z,
	}
}

// Lerp returns the linear interpolation between c and o by pos.
func (c Lab[T]) Lerp(o Lab[T], pos T) Lab[T] {
	return Lab[T]{
		L: channel.Lerp(c.L, o.L, pos),
		A: channel.Lerp(c.A, o.A, pos),
		B: channel.Lerp(c.B, o.B, pos),
	}
}

func (c Lab[T]) String() string {
	return fmt.Sprintf("lab(%g, %g, %g)", c.L, c.A, c.B)
}
