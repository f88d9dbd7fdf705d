// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import "cogentcore.org/prism/channel"

// Encoding is the transfer function of a working space: Encode maps a
// linear-light channel to its display form, Decode inverts it. Both
// directions are sign-preserving so that slightly negative
// intermediates from wide-gamut math survive a round-trip, and
// Decode(Encode(x)) == x within floating tolerance across the whole
// domain, including the linear segment of the piecewise encodings.
type Encoding[T channel.Float] interface {
	Name() string

	// Encode converts a linear-light channel to display form.
	Encode(v T) T

	// Decode converts a display-form channel to linear light.
	Decode(v T) T
}

// LinearEncoding is the identity transfer function.
type LinearEncoding[T channel.Float] struct{}

func (LinearEncoding[T]) Name() string { return "linear" }

func (LinearEncoding[T]) Encode(v T) T { return v }

func (LinearEncoding[T]) Decode(v T) T { return v }

// SRGBEncoding is the sRGB transfer function: linear below a small
// threshold, a 2.4 power law with offset above it.
type SRGBEncoding[T channel.Float] struct{}

func (SRGBEncoding[T]) Name() string { return "srgb" }

func (SRGBEncoding[T]) Encode(v T) T {
	a := channel.Abs(v)
	if a < 0.0031308 {
		return 12.92 * v
	}
	return channel.Copysign(1.055*channel.Pow(a, 1.0/2.4)-0.055, v)
}

func (SRGBEncoding[T]) Decode(v T) T {
	a := channel.Abs(v)
	if a < 0.04045 {
		return v / 12.92
	}
	return channel.Copysign(channel.Pow((a+0.055)/1.055, 2.4), v)
}

// GammaEncoding is a pure power-law transfer function with the given
// gamma exponent.
type GammaEncoding[T channel.Float] struct {
	Gamma T
}

func (e GammaEncoding[T]) Name() string { return "gamma" }

func (e GammaEncoding[T]) Encode(v T) T {
	return channel.Copysign(channel.Pow(channel.Abs(v), 1/e.Gamma), v)
}

func (e GammaEncoding[T]) Decode(v T) T {
	return channel.Copysign(channel.Pow(channel.Abs(v), e.Gamma), v)
}

// Rec709Encoding is the ITU-R BT.709 opto-electronic transfer
// function, linear below 0.018 with a 0.45 power law above it.
// Note that sRGB and Rec. 709 share primaries but not transfer
// functions.
type Rec709Encoding[T channel.Float] struct{}

func (Rec709Encoding[T]) Name() string { return "rec709" }

func (Rec709Encoding[T]) Encode(v T) T {
	a := channel.Abs(v)
	if a < 0.018 {
		return 4.5 * v
	}
	return channel.Copysign(1.099*channel.Pow(a, 0.45)-0.099, v)
}

func (Rec709Encoding[T]) Decode(v T) T {
	a := channel.Abs(v)
	if a < 0.081 {
		return v / 4.5
	}
	return channel.Copysign(channel.Pow((a+0.099)/1.099, 1.0/0.45), v)
}

// Encode returns the value with each channel encoded by e.
func (c RGB[T]) Encode(e Encoding[T]) RGB[T] {
	return RGB[T]{e.Encode(c.R), e.Encode(c.G), e.Encode(c.B)}
}

// Decode returns the value with each channel decoded to linear light
// by e.
func (c RGB[T]) Decode(e Encoding[T]) RGB[T] {
	return RGB[T]{e.Decode(c.R), e.Decode(c.G), e.Decode(c.B)}
}
