// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsi provides the HSI (hue, saturation, intensity) color
// space and its extended eHSI variant.
//
// Unlike HSV and HSL, HSI uses the circular hue derived from the RGB
// chromaticity coordinates rather than the hexagonal approximation,
// and its gamut is not the unit cube: some valid HSI values fall
// outside RGB. [HSI.RGBMode] exposes the out-of-gamut policies;
// [EHSI] instead reshapes the space so that every value round-trips.
package hsi

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/rgb"
)

// OutOfGamutMode selects how [HSI.RGBMode] handles HSI values whose
// exact RGB image falls outside the unit cube.
type OutOfGamutMode int32

const (
	// Preserve returns the exact out-of-range channels unchanged.
	Preserve OutOfGamutMode = iota

	// Clip clamps each channel into range, losing hue fidelity.
	Clip

	// SimpleRescale divides all channels by the maximum, preserving
	// hue but darkening the color.
	SimpleRescale

	// SaturationRescale reduces the saturation until the color fits,
	// preserving hue and intensity (Yoshinari, Hoshi and Taguchi,
	// ISCCSP 2014).
	SaturationRescale
)

// HSI is a hue, saturation, intensity triple. H is in degrees in
// [0, 360); S and I are in [0, 1] with I the mean of the RGB
// channels. An achromatic color has S = 0 and hue 0 by convention.
type HSI[T channel.Float] struct {
	H, S, I T
}

// New returns a new [HSI] value with the hue wrapped into [0, 360)
// and saturation and intensity clamped to [0, 1].
func New[T channel.Float](h, s, i T) HSI[T] {
	return HSI[T]{channel.NormDeg(h), channel.Clamp01(s), channel.Clamp01(i)}
}

// FromRGB converts an RGB value to HSI using the circular hue.
func FromRGB[T channel.Float](c rgb.RGB[T]) HSI[T] {
	i := (c.R + c.G + c.B) / 3
	var s T
	if i != 0 {
		s = 1 - c.MinChannel()/i
	}
	return HSI[T]{H: c.CircularHue(), S: s, I: i}
}

// RGB converts the value back to RGB with the [Preserve] policy:
// out-of-gamut colors keep their exact out-of-range channels.
func (c HSI[T]) RGB() rgb.RGB[T] {
	return c.RGBMode(Preserve)
}

// InGamut reports whether the exact RGB image of the value lies
// inside the unit cube.
func (c HSI[T]) InGamut() bool {
	r := c.RGBMode(Preserve)
	return r.MaxChannel() <= 1
}

// RGBMode converts the value back to RGB, resolving out-of-gamut
// colors with the given policy.
func (c HSI[T]) RGBMode(mode OutOfGamutMode) rgb.RGB[T] {
	const third = 1.0 / 3.0
	sector := channel.DegToRad[T](120)
	hf := channel.Mod(channel.DegToRad(channel.NormDeg(c.H)), sector)

	c1 := c.I * (1 - c.S)
	c2 := c.I * (1 + c.S*channel.Cos(hf)/channel.Cos(sector/2-hf))
	c3 := 3*c.I - (c1 + c2)
	c1, c2, c3 = c.resolveGamut(mode, hf, c1, c2, c3)

	switch turns := channel.NormDeg(c.H) / 360; {
	case turns < third:
		return rgb.RGB[T]{R: c2, G: c3, B: c1}
	case turns < 2*third:
		return rgb.RGB[T]{R: c1, G: c2, B: c3}
	default:
		return rgb.RGB[T]{R: c3, G: c1, B: c2}
	}
}

// resolveGamut applies an [OutOfGamutMode] to the raw sector
// channels. c2 is the channel that can exceed 1 in the first half of
// a sector, c3 in the second half.
func (c HSI[T]) resolveGamut(mode OutOfGamutMode, hf, c1, c2, c3 T) (T, T, T) {
	switch mode {
	case Clip:
		return min(c1, 1), min(c2, 1), min(c3, 1)
	case SimpleRescale:
		if mx := max(c1, c2, c3); mx > 1 {
			return c1 / mx, c2 / mx, c3 / mx
		}
	case SaturationRescale:
		half := channel.DegToRad[T](60)
		cosDiff := channel.Cos(half - hf)
		cosHue := channel.Cos(hf)
		if hf < half {
			if c2 > 1 {
				s := ((1 - c.I) * cosDiff) / (c.I * cosHue)
				c1 = c.I * (1 - s)
				c2 = 1
				c3 = c.I * (1 + s*(cosDiff-cosHue)/cosDiff)
			}
		} else if c3 > 1 {
			s := ((1 - c.I) * cosDiff) / (c.I * (cosDiff - cosHue))
			c1 = c.I * (1 - s)
			c2 = c.I * (1 + s*cosHue/cosDiff)
			c3 = 1
		}
	}
	return c1, c2, c3
}

func (c HSI[T]) String() string {
	return fmt.Sprintf("hsi(%g, %g, %g)", c.H, c.S, c.I)
}
