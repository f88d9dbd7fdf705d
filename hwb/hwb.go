// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hwb provides the HWB (hue, whiteness, blackness) cylindrical
// color space, sharing the hexagonal hue of HSV.
package hwb

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/hsv"
	"cogentcore.org/prism/rgb"
)

// HWB is a hue, whiteness, blackness triple. H is in degrees in
// [0, 360); W and B are in [0, 1]. When W + B >= 1 the color is an
// achromatic gray and the hue is irrelevant.
type HWB[T channel.Float] struct {
	H, W, B T
}

// New returns a new [HWB] value with the hue wrapped into [0, 360)
// and whiteness and blackness clamped to [0, 1].
func New[T channel.Float](h, w, b T) HWB[T] {
	return HWB[T]{channel.NormDeg(h), channel.Clamp01(w), channel.Clamp01(b)}
}

// FromRGB converts an RGB value to HWB: whiteness is the minimum
// channel, blackness the distance of the maximum from 1.
func FromRGB[T channel.Float](c rgb.RGB[T]) HWB[T] {
	hue, _ := c.HexHue()
	return HWB[T]{H: hue, W: c.MinChannel(), B: 1 - c.MaxChannel()}
}

// RGB converts the value back to RGB by routing through HSV.
// When W + B > 1 the channels are rescaled to the gray they denote.
func (c HWB[T]) RGB() rgb.RGB[T] {
	return c.HSV().RGB()
}

// HSV converts the value to HSV directly: V = 1 - B,
// S = 1 - W/V. When W + B > 1 the denormalized channels are rescaled
// first.
func (c HWB[T]) HSV() hsv.HSV[T] {
	w, b := c.W, c.B
	if sum := w + b; sum > 1 {
		w /= sum
		b /= sum
	}
	v := 1 - b
	var s T
	if v != 0 {
		s = 1 - w/v
	}
	return hsv.HSV[T]{H: c.H, S: s, V: v}
}

// FromHSV converts an HSV value to HWB directly:
// W = (1 - S) * V, B = 1 - V.
func FromHSV[T channel.Float](c hsv.HSV[T]) HWB[T] {
	return HWB[T]{H: c.H, W: (1 - c.S) * c.V, B: 1 - c.V}
}

// Lerp returns the linear interpolation between c and o by pos,
// taking the short way around the hue circle.
func (c HWB[T]) Lerp(o HWB[T], pos T) HWB[T] {
	return HWB[T]{
		H: channel.LerpDeg(c.H, o.H, pos),
		W: channel.Lerp(c.W, o.W, pos),
		B: channel.Lerp(c.B, o.B, pos),
	}
}

func (c HWB[T]) String() string {
	return fmt.Sprintf("hwb(%g, %g, %g)", c.H, c.W, c.B)
}
