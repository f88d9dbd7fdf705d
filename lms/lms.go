// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lms provides the LMS cone response space and von Kries style
// chromatic adaptation between reference whites.
//
// There is no single LMS space: each [Model] defines a linear transform
// from XYZ into its own cone coordinates. The model is always an
// explicit parameter of the conversions, never a hardcoded constant.
package lms

import (
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/cie"
	"cogentcore.org/prism/linalg"
)

// LMS is a long, medium, short cone response value. The channels are
// free (unbounded); no clamping is applied.
type LMS[T channel.Float] struct {
	L, M, S T
}

// New returns a new [LMS] value.
func New[T channel.Float](l, m, s T) LMS[T] {
	return LMS[T]{l, m, s}
}

// FromXYZ converts a tristimulus value to cone responses under the
// given model.
func FromXYZ[T channel.Float](c cie.XYZ[T], m Model[T]) LMS[T] {
	v := m.Forward.MulVector3(c.Vector())
	return LMS[T]{v.X, v.Y, v.Z}
}

// XYZ converts cone responses back to tristimulus values under the
// given model.
func (c LMS[T]) XYZ(m Model[T]) cie.XYZ[T] {
	return cie.XYZFromVector(m.Inverse.MulVector3(linalg.V3(c.L, c.M, c.S)))
}

func (c LMS[T]) String() string {
	return fmt.Sprintf("lms(%g, %g, %g)", c.L, c.M, c.S)
}

// Adapt transforms a tristimulus value viewed under the reference
// white from into the corresponding value under the reference white
// to, by diagonal von Kries scaling in the cone space of model m.
// When from == to this is the identity transform.
func Adapt[T channel.Float](c cie.XYZ[T], from, to cie.XYZ[T], m Model[T]) cie.XYZ[T] {
	if from == to {
		return c
	}
	src := FromXYZ(from, m)
	dst := FromXYZ(to, m)
	v := FromXYZ(c, m)
	v.L *= dst.L / src.L
	v.M *= dst.M / src.M
	v.S *= dst.S / src.S
	return v.XYZ(m)
}
