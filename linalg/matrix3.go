// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg provides the small 3x3 matrix kernel underlying every
// linear color transform in prism: RGB <-> XYZ working space matrices,
// cone response models, and the YCbCr coefficient matrices.
package linalg

import (
	"errors"

	"cogentcore.org/prism/channel"
)

// ErrSingular is returned by [Matrix3.Inverse] for a singular matrix.
// The standard primaries and coefficient sets are all well-conditioned,
// so hitting this with a built-in space indicates a programming error.
var ErrSingular = errors.New("linalg: matrix is singular")

// Matrix3 is a 3x3 matrix of channel values, stored row-major.
type Matrix3[T channel.Float] [9]T

// Vector3 is a column vector of three channel values.
type Vector3[T channel.Float] struct {
	X, Y, Z T
}

// V3 returns a new [Vector3] from the given values.
func V3[T channel.Float](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[T channel.Float]() Matrix3[T] {
	return Matrix3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul returns the matrix product m * o.
func (m Matrix3[T]) Mul(o Matrix3[T]) Matrix3[T] {
	var r Matrix3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[3*i+j] = m[3*i]*o[j] + m[3*i+1]*o[3+j] + m[3*i+2]*o[6+j]
		}
	}
	return r
}

// MulVector3 returns the matrix-vector product m * v.
func (m Matrix3[T]) MulVector3(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// MulScalar returns the matrix with every cell multiplied by s.
func (m Matrix3[T]) MulScalar(s T) Matrix3[T] {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Transpose returns the transposed matrix.
func (m Matrix3[T]) Transpose() Matrix3[T] {
	return Matrix3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of the matrix.
func (m Matrix3[T]) Determinant() T {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]
	return a*e*i + b*f*g + c*d*h - c*e*g - b*d*i - a*f*h
}

// Inverse returns the inverse of the matrix, or [ErrSingular]
// if the determinant is zero.
func (m Matrix3[T]) Inverse() (Matrix3[T], error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3[T]{}, ErrSingular
	}
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]
	adj := Matrix3[T]{
		e*i - f*h, c*h - b*i, b*f - c*e,
		f*g - d*i, a*i - c*g, c*d - a*f,
		d*h - e*g, b*g - a*h, a*e - b*d,
	}
	return adj.MulScalar(1 / det), nil
}
