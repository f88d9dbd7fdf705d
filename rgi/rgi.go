// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rgi provides the rg-chromaticity color space: normalized
// red and green chromaticity coordinates plus intensity.
package rgi

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/rgb"
)

// RGI is a red chromaticity, green chromaticity, intensity triple.
// R and G are the fractions of the channel sum held by red and green,
// so R + G <= 1 with the blue fraction implied as 1 - R - G.
// I is the mean of the RGB channels. All components are in [0, 1].
type RGI[T channel.Float] struct {
	R, G, I T
}

// New returns a new [RGI] value with the components clamped to [0, 1].
func New[T channel.Float](r, g, i T) RGI[T] {
	return RGI[T]{channel.Clamp01(r), channel.Clamp01(g), channel.Clamp01(i)}
}

// FromRGB converts an RGB value to rg-chromaticity. Black maps to
// zero chromaticity with zero intensity.
func FromRGB[T channel.Float](c rgb.RGB[T]) RGI[T] {
	sum := c.R + c.G + c.B
	if sum == 0 {
		return RGI[T]{}
	}
	return RGI[T]{R: c.R / sum, G: c.G / sum, I: sum / 3}
}

// RGB converts the value back to RGB, reconstructing the blue
// fraction as 1 - R - G.
func (c RGI[T]) RGB() rgb.RGB[T] {
	sum := 3 * c.I
	return rgb.RGB[T]{
		R: c.R * sum,
		G: c.G * sum,
		B: (1 - c.R - c.G) * sum,
	}
}

// Lerp returns the linear interpolation between c and o by pos.
func (c RGI[T]) Lerp(o RGI[T], pos T) RGI[T] {
	return RGI[T]{
		R: channel.Lerp(c.R, o.R, pos),
		G: channel.Lerp(c.G, o.G, pos),
		I: channel.Lerp(c.I, o.I, pos),
	}
}

func (c RGI[T]) String() string {
	return fmt.Sprintf("rgi(%g, %g, %g)", c.R, c.G, c.I)
}
