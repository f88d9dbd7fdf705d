// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/cie"
	"cogentcore.org/prism/linalg"
)

// Chromaticity is an xy chromaticity coordinate pair, as used to state
// the primaries of a working space.
type Chromaticity[T channel.Float] struct {
	X, Y T
}

// xyz returns the coordinate as an XYZ column with Y normalized to 1.
func (c Chromaticity[T]) xyz() linalg.Vector3[T] {
	return linalg.V3(c.X/c.Y, 1, (1-c.X-c.Y)/c.Y)
}

// Primaries are the red, green and blue primary chromaticities of a
// working space.
type Primaries[T channel.Float] struct {
	Red, Green, Blue Chromaticity[T]
}

// Space is an RGB working space: primaries, reference white, and
// transfer function. The RGB <-> XYZ matrices are derived from the
// primaries and white once, at construction; a Space is immutable
// afterwards and safe for concurrent use.
type Space[T channel.Float] struct {
	Name      string
	Primaries Primaries[T]

	// White is the reference white of the space, normalized to Y = 1.
	White cie.XYZ[T]

	// Encoding is the transfer function of the space.
	Encoding Encoding[T]

	toXYZ   linalg.Matrix3[T]
	fromXYZ linalg.Matrix3[T]
}

// NewSpace derives a working space from its primaries, reference white
// and transfer function. It fails only for a pathologically singular
// primaries set (all three on one line); for any standard space that
// is a programming error, not a runtime condition.
func NewSpace[T channel.Float](name string, p Primaries[T], white cie.XYZ[T], enc Encoding[T]) (*Space[T], error) {
	r, g, b := p.Red.xyz(), p.Green.xyz(), p.Blue.xyz()
	prim := linalg.Matrix3[T]{
		r.X, g.X, b.X,
		r.Y, g.Y, b.Y,
		r.Z, g.Z, b.Z,
	}
	inv, err := prim.Inverse()
	if err != nil {
		return nil, fmt.Errorf("rgb: space %s: degenerate primaries: %w", name, err)
	}
	s := inv.MulVector3(white.Vector())
	toXYZ := linalg.Matrix3[T]{
		s.X * r.X, s.Y * g.X, s.Z * b.X,
		s.X * r.Y, s.Y * g.Y, s.Z * b.Y,
		s.X * r.Z, s.Y * g.Z, s.Z * b.Z,
	}
	fromXYZ, err := toXYZ.Inverse()
	if err != nil {
		return nil, fmt.Errorf("rgb: space %s: degenerate transform: %w", name, err)
	}
	return &Space[T]{
		Name:      name,
		Primaries: p,
		White:     white,
		Encoding:  enc,
		toXYZ:     toXYZ,
		fromXYZ:   fromXYZ,
	}, nil
}

// RGBToXYZ returns the derived linear RGB to XYZ matrix.
func (s *Space[T]) RGBToXYZ() linalg.Matrix3[T] { return s.toXYZ }

// XYZToRGB returns the derived XYZ to linear RGB matrix.
func (s *Space[T]) XYZToRGB() linalg.Matrix3[T] { return s.fromXYZ }

// LinearToXYZ converts an already-linear RGB value in this space to
// XYZ. The transform is exactly the matrix product: no clamping.
func (s *Space[T]) LinearToXYZ(c RGB[T]) cie.XYZ[T] {
	return cie.XYZFromVector(s.toXYZ.MulVector3(linalg.V3(c.R, c.G, c.B)))
}

// LinearFromXYZ converts an XYZ value to linear RGB in this space.
// The transform is exactly the matrix product: no clamping, so
// out-of-gamut colors come back with channels outside [0, 1].
func (s *Space[T]) LinearFromXYZ(x cie.XYZ[T]) RGB[T] {
	v := s.fromXYZ.MulVector3(x.Vector())
	return RGB[T]{v.X, v.Y, v.Z}
}

// XYZ converts an encoded RGB value in the space s to XYZ,
// decoding to linear light first.
func (c RGB[T]) XYZ(s *Space[T]) cie.XYZ[T] {
	return s.LinearToXYZ(c.Decode(s.Encoding))
}

// FromXYZ converts an XYZ value to encoded RGB in the space s.
// Out-of-gamut results are not clamped; apply [RGB.Clamp] if a
// displayable value is required.
func FromXYZ[T channel.Float](x cie.XYZ[T], s *Space[T]) RGB[T] {
	return s.LinearFromXYZ(x).Encode(s.Encoding)
}
