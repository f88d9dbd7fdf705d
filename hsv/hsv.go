// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsv provides the HSV (hue, saturation, value) cylindrical
// color space, a hexagonal transform of RGB.
package hsv

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/rgb"
)

// HSV is a hue, saturation, value triple. H is in degrees in
// [0, 360); S and V are in [0, 1]. An achromatic color has S = 0 and
// hue 0 by convention.
type HSV[T channel.Float] struct {
	H, S, V T
}

// New returns a new [HSV] value with the hue wrapped into [0, 360)
// and saturation and value clamped to [0, 1].
func New[T channel.Float](h, s, v T) HSV[T] {
	return HSV[T]{channel.NormDeg(h), channel.Clamp01(s), channel.Clamp01(v)}
}

// FromRGB converts an RGB value to HSV using the 6-sector hexagonal
// hue.
func FromRGB[T channel.Float](c rgb.RGB[T]) HSV[T] {
	hue, chroma := c.HexHue()
	v := c.MaxChannel()
	var s T
	if v != 0 {
		s = chroma / v
	}
	return HSV[T]{H: hue, S: s, V: v}
}

// RGB converts the value back to RGB, reconstructing the channels
// from the hue sector.
func (c HSV[T]) RGB() rgb.RGB[T] {
	h := channel.NormDeg(c.H) / 60
	seg := channel.Floor(h)
	f := h - seg

	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*f)
	t := c.V * (1 - c.S*(1-f))

	switch int(seg) {
	case 0:
		return rgb.RGB[T]{R: c.V, G: t, B: p}
	case 1:
		return rgb.RGB[T]{R: q, G: c.V, B: p}
	case 2:
		return rgb.RGB[T]{R: p, G: c.V, B: t}
	case 3:
		return rgb.RGB[T]{R: p, G: q, B: c.V}
	case 4:
		return rgb.RGB[T]{R: t, G: p, B: c.V}
	default:
		return rgb.RGB[T]{R: c.V, G: p, B: q}
	}
}

// Lerp returns the linear interpolation between c and o by pos,
// taking the short way around the hue circle.
func (c HSV[T]) Lerp(o HSV[T], pos T) HSV[T] {
	return HSV[T]{
		H: channel.LerpDeg(c.H, o.H, pos),
		S: channel.Lerp(c.S, o.S, pos),
		V: channel.Lerp(c.V, o.V, pos),
	}
}

func (c HSV[T]) String() string {
	return fmt.Sprintf("hsv(%g, %g, %g)", c.H, c.S, c.V)
}
