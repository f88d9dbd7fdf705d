// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rgb provides the device-dependent RGB value type, the working
// space parameterization (primaries, reference white, transfer
// function), and the linear transforms between RGB and CIE XYZ.
//
// RGB is the hub for the cylindrical spaces (hsv, hsl, hwb, hsi, rgi,
// ycbcr): those convert to and from RGB without needing a working
// space. Converting to the colorimetric spaces requires a [Space],
// passed explicitly; the presets in this package cover the common
// standard spaces.
package rgb

import (
	"fmt"
	"image/color"

	"cogentcore.org/prism/channel"
)

// RGB is an RGB triple with normalized channels in [0, 1]. Whether the
// channels are gamma-encoded or linear, and which working space they
// belong to, is not part of the value; it is supplied to the
// conversions that need it. [New] clamps; composite literals are left
// unvalidated so intermediate and HDR math may go out of range, with
// [RGB.Clamp] restoring the normal form.
type RGB[T channel.Float] struct {
	R, G, B T
}

// New returns a new [RGB] value with each channel clamped to [0, 1].
func New[T channel.Float](r, g, b T) RGB[T] {
	return RGB[T]{channel.Clamp01(r), channel.Clamp01(g), channel.Clamp01(b)}
}

// Broadcast returns an achromatic [RGB] with every channel set to v.
func Broadcast[T channel.Float](v T) RGB[T] {
	return RGB[T]{v, v, v}
}

// Clamp returns the value with each channel clamped to [0, 1].
func (c RGB[T]) Clamp() RGB[T] {
	return RGB[T]{channel.Clamp01(c.R), channel.Clamp01(c.G), channel.Clamp01(c.B)}
}

// Invert returns the value with each channel replaced by 1 - channel.
func (c RGB[T]) Invert() RGB[T] {
	return RGB[T]{1 - c.R, 1 - c.G, 1 - c.B}
}

// Lerp returns the linear interpolation between c and o by pos.
func (c RGB[T]) Lerp(o RGB[T], pos T) RGB[T] {
	return RGB[T]{
		R: channel.Lerp(c.R, o.R, pos),
		G: channel.Lerp(c.G, o.G, pos),
		B: channel.Lerp(c.B, o.B, pos),
	}
}

// MaxChannel returns the largest of the three channels.
func (c RGB[T]) MaxChannel() T {
	return max(c.R, c.G, c.B)
}

// MinChannel returns the smallest of the three channels.
func (c RGB[T]) MinChannel() T {
	return min(c.R, c.G, c.B)
}

// Chroma returns the difference between the largest and smallest
// channels.
func (c RGB[T]) Chroma() T {
	return c.MaxChannel() - c.MinChannel()
}

// HexHue returns the hexagonal hue of the value in degrees in
// [0, 360), together with its chroma. This is the hue used by the HSV,
// HSL and HWB spaces. An achromatic value (zero chroma) has hue 0 by
// convention, so round-trips through the cylindrical spaces are
// stable.
func (c RGB[T]) HexHue() (hue, chroma T) {
	mx := c.MaxChannel()
	chroma = mx - c.MinChannel()
	if chroma == 0 {
		return 0, 0
	}
	switch mx {
	case c.R:
		hue = (c.G - c.B) / chroma
	case c.G:
		hue = (c.B-c.R)/chroma + 2
	default:
		hue = (c.R-c.G)/chroma + 4
	}
	return channel.NormDeg(60 * hue), chroma
}

// Chromaticity returns the circular chromaticity coordinates of the
// value: alpha is redness versus blue-greenness, beta is greenness
// versus blueness. The HSI spaces derive their circular hue
// (atan2(beta, alpha)) and chroma from these instead of the hexagonal
// approximation.
func (c RGB[T]) Chromaticity() (alpha, beta T) {
	alpha = 0.5 * (2*c.R - c.G - c.B)
	beta = sqrt3 * 0.5 * (c.G - c.B)
	return alpha, beta
}

// CircularHue returns the circular hue of the value in degrees in
// [0, 360), from the [RGB.Chromaticity] coordinates. An achromatic
// value has hue 0.
func (c RGB[T]) CircularHue() T {
	alpha, beta := c.Chromaticity()
	if alpha == 0 && beta == 0 {
		return 0
	}
	return channel.NormDeg(channel.RadToDeg(channel.Atan2(beta, alpha)))
}

const sqrt3 = 1.7320508075688772935274463415058723669428052538103806280558

// RGBA implements the [color.Color] interface, treating the channels
// as sRGB-encoded with full alpha.
func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	r = uint32(channel.ToUint16(c.R))
	g = uint32(channel.ToUint16(c.G))
	b = uint32(channel.ToUint16(c.B))
	return r, g, b, 0xffff
}

// FromColor returns the sRGB-encoded normalized form of a standard
// [color.Color], un-premultiplying the alpha. The alpha itself is
// dropped: prism color values do not carry alpha.
func FromColor[T channel.Float](ci color.Color) RGB[T] {
	r, g, b, a := ci.RGBA()
	if a == 0 {
		return RGB[T]{}
	}
	fa := T(a)
	return RGB[T]{T(r) / fa, T(g) / fa, T(b) / fa}
}

// Model is the [color.Model] converting any color to a float32 [RGB].
var Model = color.ModelFunc(model)

func model(ci color.Color) color.Color {
	if c, ok := ci.(RGB[float32]); ok {
		return c
	}
	return FromColor[float32](ci)
}

func (c RGB[T]) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}
