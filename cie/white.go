// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/prism/channel"

// Standard illuminant reference whites, as XYZ values normalized to
// Y = 1, for the CIE 1931 2 degree and CIE 1964 10 degree standard
// observers. Data from Bruce Lindbloom's reference tables.
//
// A color value never stores a white point; conversions that need one
// (Lab, Luv, chromatic adaptation) take it as an explicit parameter,
// typically one of these.

// StdObserver selects the standard observer a white point is defined for.
type StdObserver int32

const (
	// Deg2 is the CIE 1931 2 degree standard observer.
	Deg2 StdObserver = iota

	// Deg10 is the CIE 1964 10 degree standard observer.
	Deg10
)

// Standard illuminants for the 2 degree observer.

// A is incandescent / tungsten light.
func A[T channel.Float]() XYZ[T] { return XYZ[T]{1.09850, 1, 0.35585} }

// B is obsolete direct sunlight at noon.
func B[T channel.Float]() XYZ[T] { return XYZ[T]{0.99072, 1, 0.85223} }

// C is obsolete average north sky daylight.
func C[T channel.Float]() XYZ[T] { return XYZ[T]{0.98074, 1, 1.18232} }

// D50 is horizon light, the ICC profile connection space illuminant.
func D50[T channel.Float]() XYZ[T] { return XYZ[T]{0.96422, 1, 0.82521} }

// D55 is mid-morning / mid-afternoon daylight.
func D55[T channel.Float]() XYZ[T] { return XYZ[T]{0.95682, 1, 0.92149} }

// D65 is noon daylight, the illuminant of sRGB and television spaces.
func D65[T channel.Float]() XYZ[T] { return XYZ[T]{0.95047, 1, 1.08883} }

// D75 is north sky daylight.
func D75[T channel.Float]() XYZ[T] { return XYZ[T]{0.94972, 1, 1.22638} }

// E is the equal-energy illuminant.
func E[T channel.Float]() XYZ[T] { return XYZ[T]{1, 1, 1.00003} }

// F2 is cool white fluorescent.
func F2[T channel.Float]() XYZ[T] { return XYZ[T]{0.99186, 1, 0.67393} }

// F7 is a broadband D65 simulator fluorescent.
func F7[T channel.Float]() XYZ[T] { return XYZ[T]{0.95041, 1, 1.08747} }

// F11 is a narrow tri-band fluorescent of TL84 type.
func F11[T channel.Float]() XYZ[T] { return XYZ[T]{1.00962, 1, 0.64350} }

// whites2 is the 2 degree observer table.
func whites2[T channel.Float]() map[string]XYZ[T] {
	return map[string]XYZ[T]{
		"A":   A[T](),
		"B":   B[T](),
		"C":   C[T](),
		"D50": D50[T](),
		"D55": D55[T](),
		"D65": D65[T](),
		"D75": D75[T](),
		"E":   E[T](),
		"F2":  F2[T](),
		"F7":  F7[T](),
		"F11": F11[T](),
	}
}

// whites10 is the 10 degree observer table.
func whites10[T channel.Float]() map[string]XYZ[T] {
	return map[string]XYZ[T]{
		"A":   {1.11144, 1, 0.35200},
		"B":   {0.99178, 1, 0.84349},
		"C":   {0.97285, 1, 1.16145},
		"D50": {0.96720, 1, 0.81427},
		"D55": {0.95799, 1, 0.90926},
		"D65": {0.94811, 1, 1.07304},
		"D75": {0.94416, 1, 1.20641},
		"E":   {1, 1, 1.00003},
		"F2":  {1.03280, 1, 0.69026},
		"F7":  {0.95792, 1, 1.07687},
		"F11": {1.03866, 1, 0.65627},
	}
}

// WhitePointByName returns the reference white with the given name
// ("A", "B", "C", "D50", "D55", "D65", "D75", "E", "F2", "F7", "F11")
// for the given observer, and whether the name is known.
func WhitePointByName[T channel.Float](name string, obs StdObserver) (XYZ[T], bool) {
	var tab map[string]XYZ[T]
	switch obs {
	case Deg10:
		tab = whites10[T]()
	default:
		tab = whites2[T]()
	}
	wp, ok := tab[name]
	return wp, ok
}

// WhitePointNames returns the names in the reference white registry.
func WhitePointNames() []string {
	return []string{"A", "B", "C", "D50", "D55", "D65", "D75", "E", "F2", "F7", "F11"}
}
