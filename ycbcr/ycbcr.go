// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ycbcr provides the YCbCr family of luma plus chroma color
// spaces: BT.601 (JPEG), BT.709, YIQ and custom models built from
// luma weights.
package ycbcr

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/linalg"
	"cogentcore.org/prism/rgb"
)

// YCbCr is a luma, blue-difference chroma, red-difference chroma
// triple. Y is in [0, 1]; Cb and Cr are centered on zero, in
// [-0.5, 0.5] for the YUV-derived models and up to [-1, 1] for
// rotated-axis models such as YIQ.
//
// A value carries no model; conversions take the [Model] explicitly,
// and converting back with a different model than the one that
// produced the value yields a different color.
type YCbCr[T channel.Float] struct {
	Y, Cb, Cr T
}

// New returns a new [YCbCr] value with Y clamped to [0, 1] and the
// chroma channels clamped to [-1, 1].
func New[T channel.Float](y, cb, cr T) YCbCr[T] {
	return YCbCr[T]{
		Y:  channel.Clamp01(y),
		Cb: channel.Clamp(cb, -1, 1),
		Cr: channel.Clamp(cr, -1, 1),
	}
}

// FromRGB converts an RGB value to YCbCr under the given model.
func FromRGB[T channel.Float](c rgb.RGB[T], m Model[T]) YCbCr[T] {
	v := m.forward.MulVector3(linalg.V3(c.R, c.G, c.B))
	return YCbCr[T]{Y: v.X, Cb: v.Y, Cr: v.Z}
}

// RGB converts the value back to RGB under the given model. Values
// outside the RGB gamut keep their exact out-of-range channels; use
// [rgb.RGB.Clamp] on the result to clip instead.
func (c YCbCr[T]) RGB(m Model[T]) rgb.RGB[T] {
	v := m.inverse.MulVector3(linalg.V3(c.Y, c.Cb, c.Cr))
	return rgb.RGB[T]{R: v.X, G: v.Y, B: v.Z}
}

// Canonical returns the channels in the canonical range of the
// model's standard, rescaling the chroma channels from their
// normalized form (for YUV, U in [-0.436, 0.436] and V in
// [-0.615, 0.615]).
func (c YCbCr[T]) Canonical(m Model[T]) (y, cb, cr T) {
	return c.Y, c.Cb * m.cbScale, c.Cr * m.crScale
}

// Quantize8 returns the full-range 8-bit quantization of the value,
// with the chroma channels shifted to center on 128. This matches the
// JPEG layout when used with the [BT601] model.
func (c YCbCr[T]) Quantize8() (y, cb, cr uint8) {
	return channel.ToUint8(c.Y),
		channel.ToUint8(c.Cb + 0.5),
		channel.ToUint8(c.Cr + 0.5)
}

// FromQuantized8 reconstructs a value from full-range 8-bit channels
// with 128-centered chroma.
func FromQuantized8[T channel.Float](y, cb, cr uint8) YCbCr[T] {
	return YCbCr[T]{
		Y:  channel.FromUint8[T](y),
		Cb: channel.FromUint8[T](cb) - 0.5,
		Cr: channel.FromUint8[T](cr) - 0.5,
	}
}

// Invert returns the photographic negative: luma reflected around
// 0.5, chroma negated.
func (c YCbCr[T]) Invert() YCbCr[T] {
	return YCbCr[T]{Y: 1 - c.Y, Cb: -c.Cb, Cr: -c.Cr}
}

// Lerp returns the linear interpolation between c and o by pos.
func (c YCbCr[T]) Lerp(o YCbCr[T], pos T) YCbCr[T] {
	return YCbCr[T]{
		Y:  channel.Lerp(c.Y, o.Y, pos),
		Cb: channel.Lerp(c.Cb, o.Cb, pos),
		Cr: channel.Lerp(c.Cr, o.Cr, pos),
	}
}

func (c YCbCr[T]) String() string {
	return fmt.Sprintf("ycbcr(%g, %g, %g)", c.Y, c.Cb, c.Cr)
}
