// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

import "golang.org/x/image/math/fixed"

// Conversions between the canonical floating representation of a
// normalized channel and the integer and fixed-point formats used for
// interchange with images and rasterizers. The float to integer
// direction clamps, because the integer formats cannot represent
// out-of-range intermediates.

// ToUint8 converts a normalized channel to an 8 bit value.
func ToUint8[T Float](x T) uint8 {
	return uint8(Clamp01(x)*255 + 0.5)
}

// FromUint8 converts an 8 bit value to a normalized channel.
func FromUint8[T Float](x uint8) T {
	return T(x) / 255
}

// ToUint16 converts a normalized channel to a 16 bit value.
func ToUint16[T Float](x T) uint16 {
	return uint16(Clamp01(x)*65535 + 0.5)
}

// FromUint16 converts a 16 bit value to a normalized channel.
func FromUint16[T Float](x uint16) T {
	return T(x) / 65535
}

// ToFixed converts a channel to a 26.6 fixed-point value.
func ToFixed[T Float](x T) fixed.Int26_6 {
	return fixed.Int26_6(Floor(x*64 + 0.5))
}

// FromFixed converts a 26.6 fixed-point value to a channel.
func FromFixed[T Float](x fixed.Int26_6) T {
	return T(x) / 64
}

// ToFixed52 converts a channel to a 52.12 fixed-point value,
// which holds a normalized channel with more precision than
// an Int26_6.
func ToFixed52[T Float](x T) fixed.Int52_12 {
	return fixed.Int52_12(Floor(x*4096 + 0.5))
}

// FromFixed52 converts a 52.12 fixed-point value to a channel.
func FromFixed52[T Float](x fixed.Int52_12) T {
	return T(x) / 4096
}
