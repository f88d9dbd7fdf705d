// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the device-independent CIE color spaces: the XYZ
// tristimulus hub, the xyY chromaticity form, and the perceptually
// uniform L*a*b* and L*u*v* spaces with their cylindrical LCh variants,
// plus the table of standard reference whites they are defined against.
//
// XYZ is the hub for all of these: every other CIE space converts to and
// from XYZ, normalized so that the reference white has Y = 1.
package cie

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/linalg"
)

// XYZ is a CIE 1931 tristimulus value. The channels are unbounded;
// colors inside the spectral locus have non-negative channels, and a
// reference white is normalized to Y = 1.
type XYZ[T channel.Float] struct {
	X, Y, Z T
}

// NewXYZ returns a new [XYZ] value. No clamping is applied:
// the space has free channels.
func NewXYZ[T channel.Float](x, y, z T) XYZ[T] {
	return XYZ[T]{x, y, z}
}

// Vector returns the value as a column vector for matrix transforms.
func (c XYZ[T]) Vector() linalg.Vector3[T] {
	return linalg.V3(c.X, c.Y, c.Z)
}

// XYZFromVector returns an [XYZ] from a column vector.
func XYZFromVector[T channel.Float](v linalg.Vector3[T]) XYZ[T] {
	return XYZ[T]{v.X, v.Y, v.Z}
}

// Lerp returns the linear interpolation between c and o by pos.
func (c XYZ[T]) Lerp(o XYZ[T], pos T) XYZ[T] {
	return XYZ[T]{
		X: channel.Lerp(c.X, o.X, pos),
		Y: channel.Lerp(c.Y, o.Y, pos),
		Z: channel.Lerp(c.Z, o.Z, pos),
	}
}

func (c XYZ[T]) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g)", c.X, c.Y, c.Z)
}

// XyY is the chromaticity form of [XYZ]: the x, y chromaticity
// coordinates plus the luminance Y (stored as Lum).
type XyY[T channel.Float] struct {
	X, Y T

	// Lum is the luminance, the Y channel of the XYZ form.
	Lum T
}

// NewXyY returns a new [XyY] value.
func NewXyY[T channel.Float](x, y, lum T) XyY[T] {
	return XyY[T]{x, y, lum}
}

// XyYFromXYZ converts a tristimulus value to chromaticity form.
// The zero XYZ value has no defined chromaticity and maps to the
// zero XyY value.
func XyYFromXYZ[T channel.Float](c XYZ[T]) XyY[T] {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return XyY[T]{}
	}
	return XyY[T]{X: c.X / sum, Y: c.Y / sum, Lum: c.Y}
}

// XYZ converts the chromaticity form back to tristimulus values.
// A zero y chromaticity maps to the zero XYZ value.
func (c XyY[T]) XYZ() XYZ[T] {
	if c.Y == 0 {
		return XYZ[T]{}
	}
	z := 1 - c.X - c.Y
	return XYZ[T]{
		X: (c.Lum / c.Y) * c.X,
		Y: c.Lum,
		Z: (c.Lum / c.Y) * z,
	}
}

func (c XyY[T]) String() string {
	return fmt.Sprintf("xyY(%g, %g, %g)", c.X, c.Y, c.Lum)
}
