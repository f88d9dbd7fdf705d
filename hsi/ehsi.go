// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsi

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/rgb"
)

// EHSI is the extended HSI color model of Yoshinari, Hoshi and Taguchi
// (ISCCSP 2014). It has the same channels as [HSI], but above an
// intensity threshold the saturation is remapped so that the whole
// cylinder converts to in-gamut RGB and back without loss.
//
// Below the threshold an EHSI value is numerically identical to the
// HSI value with the same channels; [EHSI.SameAsHSI] reports whether
// that holds.
type EHSI[T channel.Float] struct {
	H, S, I T
}

// NewEHSI returns a new [EHSI] value with the hue wrapped into
// [0, 360) and saturation and intensity clamped to [0, 1].
func NewEHSI[T channel.Float](h, s, i T) EHSI[T] {
	return EHSI[T]{channel.NormDeg(h), channel.Clamp01(s), channel.Clamp01(i)}
}

// intensityLimit is the intensity below which eHSI and HSI coincide
// for the given hue in degrees.
func intensityLimit[T channel.Float](hue T) T {
	const third = 1.0 / 3.0
	return 2*third - channel.Abs(channel.Mod(hue, 120)-60)/180
}

// SameAsHSI reports whether the value is below the intensity
// threshold, where it equals the [HSI] value with the same channels.
func (c EHSI[T]) SameAsHSI() bool {
	return c.I <= intensityLimit(channel.NormDeg(c.H))
}

// EHSIFromRGB converts an RGB value to eHSI using the circular hue.
func EHSIFromRGB[T channel.Float](c rgb.RGB[T]) EHSI[T] {
	const eps = 1e-10
	hue := c.CircularHue()
	mn, mx := c.MinChannel(), c.MaxChannel()
	sum := c.R + c.G + c.B
	i := sum / 3

	var s T
	if i <= intensityLimit(hue) {
		if i != 0 {
			s = 1 - mn/i
		}
	} else {
		s = 1 - (3*(1-mx))/(3-sum+eps)
	}
	return EHSI[T]{H: hue, S: s, I: i}
}

// RGB converts the value back to RGB. Below the intensity threshold
// this is the standard HSI conversion; above it the inverted eHSI
// mapping applies, and the result is always in gamut.
func (c EHSI[T]) RGB() rgb.RGB[T] {
	hue := channel.NormDeg(c.H)
	seg := int(channel.Floor(hue / 60))
	frac := channel.Mod(hue, 120)

	if c.I < intensityLimit(hue) {
		fr := channel.DegToRad(frac)
		c1 := c.I * (1 - c.S)
		c2 := c.I * (1 + c.S*channel.Cos(fr)/channel.Cos(channel.DegToRad[T](60)-fr))
		c3 := 3*c.I - (c1 + c2)
		switch seg {
		case 0, 1:
			return rgb.RGB[T]{R: c2, G: c3, B: c1}
		case 2, 3:
			return rgb.RGB[T]{R: c1, G: c2, B: c3}
		default:
			return rgb.RGB[T]{R: c3, G: c1, B: c2}
		}
	}

	var shifted T
	switch seg {
	case 1, 2:
		shifted = hue - 240
	case 3, 4:
		shifted = hue
	default: // 5, 0
		shifted = hue - 120
	}
	sh := channel.DegToRad(shifted)

	c1 := c.I*(1-c.S) + c.S
	c2 := 1 - (1-c.I)*(1+c.S*channel.Cos(sh)/channel.Cos(channel.DegToRad[T](60)-sh))
	c3 := 3*c.I - (c1 + c2)
	switch seg {
	case 1, 2:
		return rgb.RGB[T]{R: c3, G: c1, B: c2}
	case 3, 4:
		return rgb.RGB[T]{R: c2, G: c3, B: c1}
	default: // 5, 0
		return rgb.RGB[T]{R: c1, G: c2, B: c3}
	}
}

// HSI returns the equivalent [HSI] value, or false if the value is
// above the intensity threshold and has no HSI equivalent.
func (c EHSI[T]) HSI() (HSI[T], bool) {
	if !c.SameAsHSI() {
		return HSI[T]{}, false
	}
	return HSI[T]{H: c.H, S: c.S, I: c.I}, true
}

// EHSIFromHSI converts an HSI value to eHSI, or returns false if the
// value is above the intensity threshold where the two models differ.
func EHSIFromHSI[T channel.Float](c HSI[T]) (EHSI[T], bool) {
	out := EHSI[T]{H: c.H, S: c.S, I: c.I}
	if !out.SameAsHSI() {
		return EHSI[T]{}, false
	}
	return out, true
}

// Lerp returns the linear interpolation between c and o by pos,
// taking the short way around the hue circle.
func (c EHSI[T]) Lerp(o EHSI[T], pos T) EHSI[T] {
	return EHSI[T]{
		H: channel.LerpDeg(c.H, o.H, pos),
		S: channel.Lerp(c.S, o.S, pos),
		I: channel.Lerp(c.I, o.I, pos),
	}
}

func (c EHSI[T]) String() string {
	return fmt.Sprintf("ehsi(%g, %g, %g)", c.H, c.S, c.I)
}
