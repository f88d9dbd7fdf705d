// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

// Angular channels (hue) are held in degrees. The normal form is the
// half-open interval [0, 360); NormDeg is applied by every constructor
// of a hue-bearing color type.

// DegPerTurn is the number of degrees in a full turn of hue.
const DegPerTurn = 360

// NormDeg wraps an angle in degrees into [0, 360).
// NaN is returned unchanged.
func NormDeg[T Float](deg T) T {
	if IsNaN(deg) {
		return deg
	}
	d := Mod(deg, DegPerTurn)
	if d < 0 {
		d += DegPerTurn
	}
	return d
}

// LerpDeg interpolates between two hue angles in degrees along the
// shorter arc, returning a result in [0, 360).
func LerpDeg[T Float](a, b, pos T) T {
	d := NormDeg(b - a)
	if d > 180 {
		d -= DegPerTurn
	}
	return NormDeg(a + d*pos)
}

// DegToRad converts an angle from degrees to radians.
func DegToRad[T Float](deg T) T {
	return deg * (pi / 180)
}

// RadToDeg converts an angle from radians to degrees.
func RadToDeg[T Float](rad T) T {
	return rad * (180 / pi)
}

const pi = 3.14159265358979323846264338327950288419716939937510582097494459
