// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"

	"cogentcore.org/prism/channel"
)

// Luv is a CIE L*u*v* value. L* matches the L* of [Lab]; u* and v*
// are unbounded chromaticity-derived channels. Channels are free:
// no clamping is applied.
type Luv[T channel.Float] struct {
	L, U, V T
}

// NewLuv returns a new [Luv] value.
func NewLuv[T channel.Float](l, u, v T) Luv[T] {
	return Luv[T]{l, u, v}
}

// uvPrime returns the u', v' chromaticity coordinates of a
// tristimulus value. The zero value maps to (0, 0).
func uvPrime[T channel.Float](c XYZ[T]) (T, T) {
	denom := c.X + 15*c.Y + 3*c.Z
	if denom == 0 {
		return 0, 0
	}
	return 4 * c.X / denom, 9 * c.Y / denom
}

// LuvFromXYZ converts a tristimulus value to L*u*v* relative to the
// reference white wp.
func LuvFromXYZ[T channel.Float](c XYZ[T], wp XYZ[T]) Luv[T] {
	l := YToL(c.Y / wp.Y)
	up, vp := uvPrime(c)
	upr, vpr := uvPrime(wp)
	return Luv[T]{
		L: l,
		U: 13 * l * (up - upr),
		V: 13 * l * (vp - vpr),
	}
}

// XYZ converts L*u*v* back to tristimulus values relative to the
// reference white wp. The achromatic zero-lightness value maps to the
// zero XYZ value.
func (c Luv[T]) XYZ(wp XYZ[T]) XYZ[T] {
	if c.L == 0 {
		return XYZ[T]{}
	}
	u0, v0 := uvPrime(wp)
	y := LToY(c.L)

	up := c.U/(13*c.L) + u0
	vp := c.V/(13*c.L) + v0
	if vp == 0 {
		return XYZ[T]{Y: y}
	}
	x := y * (9 * up) / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)
	return XYZ[T]{X: x, Y: y, Z: z}
}

// Lerp returns the linear interpolation between c and o by pos.
func (c Luv[T]) Lerp(o Luv[T], pos T) Luv[T] {
	return Luv[T]{
		L: channel.Lerp(c.L, o.L, pos),
		U: channel.Lerp(c.U, o.U, pos),
		V: channel.Lerp(c.V, o.V, pos),
	}
}

func (c Luv[T]) String() string {
	return fmt.Sprintf("luv(%g, %g, %g)", c.L, c.U, c.V)
}
