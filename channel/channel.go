// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package channel defines the scalar channel abstraction shared by every
// color space in prism. All space types are generic over [Float], so a
// caller may hold channels as float32 or float64 (or any type defined on
// them) without conversion at the boundaries.
//
// The math kernels here dispatch 32 bit values to the optimized float32
// implementations in chewxy/math32 and everything else to the standard
// math package. NaN is propagated, never coerced to zero: a NaN channel
// stays NaN through every function in this package.
package channel

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint satisfied by every channel type.
type Float interface {
	constraints.Float
}

// is32 reports whether T is a 32 bit float type.
func is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Float](x T) T {
	if is32[T]() {
		return T(math32.Floor(float32(x)))
	}
	return T(math.Floor(float64(x)))
}

// Mod returns the floating-point remainder of x/y,
// with the sign of x.
func Mod[T Float](x, y T) T {
	if is32[T]() {
		return T(math32.Mod(float32(x), float32(y)))
	}
	return T(math.Mod(float64(x), float64(y)))
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

// Cbrt returns the cube root of x.
func Cbrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cbrt(float32(x)))
	}
	return T(math.Cbrt(float64(x)))
}

// Pow returns x**y.
func Pow[T Float](x, y T) T {
	if is32[T]() {
		return T(math32.Pow(float32(x), float32(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

// Hypot returns Sqrt(x*x + y*y) without unwarranted overflow.
func Hypot[T Float](x, y T) T {
	if is32[T]() {
		return T(math32.Hypot(float32(x), float32(y)))
	}
	return T(math.Hypot(float64(x), float64(y)))
}

// Atan2 returns the arc tangent of y/x, using the signs
// of the two to determine the quadrant.
func Atan2[T Float](y, x T) T {
	if is32[T]() {
		return T(math32.Atan2(float32(y), float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

// Copysign returns a value with the magnitude of x
// and the sign of y.
func Copysign[T Float](x, y T) T {
	if is32[T]() {
		return T(math32.Copysign(float32(x), float32(y)))
	}
	return T(math.Copysign(float64(x), float64(y)))
}

// IsNaN reports whether x is a NaN value.
func IsNaN[T Float](x T) bool {
	return x != x
}

// Clamp returns x clamped to [lo, hi]. NaN is returned unchanged.
func Clamp[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 returns x clamped to the normalized channel range [0, 1].
func Clamp01[T Float](x T) T {
	return Clamp(x, 0, 1)
}

// Lerp returns the linear interpolation between a and b by
// pos, such that pos = 0 returns a and pos = 1 returns b.
func Lerp[T Float](a, b, pos T) T {
	return a + (b-a)*pos
}
