// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"

	"cogentcore.org/prism/channel"
)

// The LCh spaces are the cylindrical forms of Lab and Luv: chroma is
// the length of the (a*, b*) or (u*, v*) vector and hue is its angle in
// degrees, normalized to [0, 360). An achromatic color (zero chroma)
// has hue 0 by convention, so round-trips are stable.

// LChab is the cylindrical form of [Lab].
type LChab[T channel.Float] struct {
	L, C, H T
}

// NewLChab returns a new [LChab] value, with the hue
// normalized to [0, 360) and the chroma clamped to be non-negative.
func NewLChab[T channel.Float](l, c, h T) LChab[T] {
	return LChab[T]{l, max(c, 0), channel.NormDeg(h)}
}

// LChabFromLab converts a rectangular Lab value to polar form.
func LChabFromLab[T channel.Float](c Lab[T]) LChab[T] {
	ch, h := polar(c.A, c.B)
	return LChab[T]{L: c.L, C: ch, H: h}
}

// Lab converts the polar form back to rectangular Lab.
func (c LChab[T]) Lab() Lab[T] {
	a, b := rect(c.C, c.H)
	return Lab[T]{L: c.L, A: a, B: b}
}

func (c LChab[T]) String() string {
	return fmt.Sprintf("lch(ab)(%g, %g, %g)", c.L, c.C, c.H)
}

// LChuv is the cylindrical form of [Luv].
type LChuv[T channel.Float] struct {
	L, C, H T
}

// NewLChuv returns a new [LChuv] value, with the hue
// normalized to [0, 360) and the chroma clamped to be non-negative.
func NewLChuv[T channel.Float](l, c, h T) LChuv[T] {
	return LChuv[T]{l, max(c, 0), channel.NormDeg(h)}
}

// LChuvFromLuv converts a rectangular Luv value to polar form.
func LChuvFromLuv[T channel.Float](c Luv[T]) LChuv[T] {
	ch, h := polar(c.U, c.V)
	return LChuv[T]{L: c.L, C: ch, H: h}
}

// Luv converts the polar form back to rectangular Luv.
func (c LChuv[T]) Luv() Luv[T] {
	u, v := rect(c.C, c.H)
	return Luv[T]{L: c.L, U: u, V: v}
}

func (c LChuv[T]) String() string {
	return fmt.Sprintf("lch(uv)(%g, %g, %g)", c.L, c.C, c.H)
}

// polar converts rectangular chromatic channels to (chroma, hue in
// degrees in [0, 360)). Both channels zero gives hue 0.
func polar[T channel.Float](a, b T) (T, T) {
	c := channel.Hypot(a, b)
	if c == 0 {
		return 0, 0
	}
	return c, channel.NormDeg(channel.RadToDeg(channel.Atan2(b, a)))
}

// rect converts (chroma, hue in degrees) back to rectangular channels.
func rect[T channel.Float](c, h T) (T, T) {
	r := channel.DegToRad(h)
	return c * channel.Cos(r), c * channel.Sin(r)
}
