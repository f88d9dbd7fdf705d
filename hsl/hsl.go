// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the HSL (hue, saturation, lightness)
// cylindrical color space, a hexagonal transform of RGB.
package hsl

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/rgb"
)

// HSL is a hue, saturation, lightness triple. H is in degrees in
// [0, 360); S and L are in [0, 1]. An achromatic color has S = 0 and
// hue 0 by convention.
type HSL[T channel.Float] struct {
	H, S, L T
}

// New returns a new [HSL] value with the hue wrapped into [0, 360)
// and saturation and lightness clamped to [0, 1].
func New[T channel.Float](h, s, l T) HSL[T] {
	return HSL[T]{channel.NormDeg(h), channel.Clamp01(s), channel.Clamp01(l)}
}

// FromRGB converts an RGB value to HSL using the 6-sector hexagonal
// hue.
func FromRGB[T channel.Float](c rgb.RGB[T]) HSL[T] {
	hue, chroma := c.HexHue()
	l := (c.MaxChannel() + c.MinChannel()) / 2
	var s T
	if chroma != 0 {
		s = chroma / (1 - channel.Abs(2*l-1))
	}
	return HSL[T]{H: hue, S: s, L: l}
}

// RGB converts the value back to RGB, reconstructing the channels
// from the hue sector.
func (c HSL[T]) RGB() rgb.RGB[T] {
	chroma := (1 - channel.Abs(2*c.L-1)) * c.S
	h := channel.NormDeg(c.H) / 60
	x := chroma * (1 - channel.Abs(channel.Mod(h, 2)-1))
	m := c.L - chroma/2

	var r, g, b T
	switch int(channel.Floor(h)) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return rgb.RGB[T]{R: r + m, G: g + m, B: b + m}
}

// Lerp returns the linear interpolation between c and o by pos,
// taking the short way around the hue circle.
func (c HSL[T]) Lerp(o HSL[T], pos T) HSL[T] {
	return HSL[T]{
		H: channel.LerpDeg(c.H, o.H, pos),
		S: channel.Lerp(c.S, o.S, pos),
		L: channel.Lerp(c.L, o.L, pos),
	}
}

func (c HSL[T]) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", c.H, c.S, c.L)
}
