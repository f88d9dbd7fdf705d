// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert composes the color space conversions into a single
// parameter bundle, the [Converter].
//
// Conversions are arranged hub-and-spoke: the device-dependent spaces
// (HSV, HSL, HWB, HSI, eHSI, YCbCr, rg-chromaticity) convert through
// RGB, and the colorimetric spaces (Lab, Luv, LCh, xyY, LMS) convert
// through XYZ. Any pair of spaces is reachable in at most two calls
// through the hubs. Crossing between the hubs decodes or encodes the
// working space transfer function and inserts chromatic adaptation
// when the working space white differs from the converter's white.
package convert

import (
	"errors"
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/cie"
	"cogentcore.org/prism/hsi"
	"cogentcore.org/prism/lms"
	"cogentcore.org/prism/rgb"
	"cogentcore.org/prism/ycbcr"
)

// ErrNoCone is returned by the LMS conversions when the converter has
// no cone model configured.
var ErrNoCone = errors.New("convert: no cone model configured")

// WhiteMismatchError is returned when a conversion needs to move
// between the working space white and the converter white but no cone
// model is configured to adapt between them.
type WhiteMismatchError[T channel.Float] struct {
	SpaceWhite cie.XYZ[T]
	White      cie.XYZ[T]
}

func (e *WhiteMismatchError[T]) Error() string {
	return fmt.Sprintf("convert: working space white %v differs from reference white %v and no cone model is configured", e.SpaceWhite, e.White)
}

// Converter is the parameter bundle for color conversions: the RGB
// working space, the reference white the colorimetric values are
// relative to, and the models the parameterized families use. The
// zero value is not usable; construct with [New] or [NewIn] and
// adjust fields before converting.
//
// A Converter is immutable once in use and safe for concurrent use.
type Converter[T channel.Float] struct {
	// Space is the RGB working space.
	Space *rgb.Space[T]

	// White is the reference white of the XYZ hub and everything
	// derived from it. It defaults to the working space white; setting
	// it to another illuminant makes the hub crossing adapt with Cone.
	White cie.XYZ[T]

	// Cone is the cone model used for chromatic adaptation and the
	// LMS conversions. If nil, conversions fail with
	// [WhiteMismatchError] rather than guess when the whites differ.
	Cone *lms.Model[T]

	// YCbCr is the model used by the YCbCr conversions.
	YCbCr ycbcr.Model[T]

	// Gamut is the out-of-gamut policy of the HSI conversions.
	Gamut hsi.OutOfGamutMode
}

// New returns a converter for the sRGB working space with the
// Bradford cone model and the BT.601 YCbCr model.
func New[T channel.Float]() *Converter[T] {
	return NewIn(rgb.SRGB[T]())
}

// NewIn returns a converter for the given working space, with the
// reference white taken from the space, the Bradford cone model and
// the BT.601 YCbCr model.
func NewIn[T channel.Float](space *rgb.Space[T]) *Converter[T] {
	cone := lms.Bradford[T]()
	return &Converter[T]{
		Space: space,
		White: space.White,
		Cone:  &cone,
		YCbCr: ycbcr.BT601[T](),
	}
}

// toWhite adapts an XYZ value from the working space white to the
// converter white.
func (cv *Converter[T]) toWhite(x cie.XYZ[T]) (cie.XYZ[T], error) {
	if cv.Space.White == cv.White {
		return x, nil
	}
	if cv.Cone == nil {
		return cie.XYZ[T]{}, &WhiteMismatchError[T]{SpaceWhite: cv.Space.White, White: cv.White}
	}
	return lms.Adapt(x, cv.Space.White, cv.White, *cv.Cone), nil
}

// toSpaceWhite adapts an XYZ value from the converter white back to
// the working space white.
func (cv *Converter[T]) toSpaceWhite(x cie.XYZ[T]) (cie.XYZ[T], error) {
	if cv.Space.White == cv.White {
		return x, nil
	}
	if cv.Cone == nil {
		return cie.XYZ[T]{}, &WhiteMismatchError[T]{SpaceWhite: cv.Space.White, White: cv.White}
	}
	return lms.Adapt(x, cv.White, cv.Space.White, *cv.Cone), nil
}

// RGBToXYZ converts an encoded RGB value in the working space to XYZ
// relative to the converter white.
func (cv *Converter[T]) RGBToXYZ(c rgb.RGB[T]) (cie.XYZ[T], error) {
	return cv.toWhite(c.XYZ(cv.Space))
}

// XYZToRGB converts an XYZ value relative to the converter white to
// encoded RGB in the working space. Out-of-gamut results are not
// clamped.
func (cv *Converter[T]) XYZToRGB(x cie.XYZ[T]) (rgb.RGB[T], error) {
	x, err := cv.toSpaceWhite(x)
	if err != nil {
		return rgb.RGB[T]{}, err
	}
	return rgb.FromXYZ(x, cv.Space), nil
}
