// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"testing"

	"cogentcore.org/prism/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestMulVector3(t *testing.T) {
	m := Matrix3[float32]{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	v := m.MulVector3(V3[float32](1, 0, -1))
	assert.Equal(t, V3[float32](-2, -2, -2), v)

	assert.Equal(t, V3(2.0, 3.0, 4.0), Identity3[float64]().MulVector3(V3(2.0, 3.0, 4.0)))
}

func TestMul(t *testing.T) {
	m := Matrix3[float64]{
		0, 1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	assert.Equal(t, Identity3[float64](), m.Mul(m))
	assert.Equal(t, m, m.Mul(Identity3[float64]()))
}

func TestTranspose(t *testing.T) {
	m := Matrix3[float32]{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, float32(4), m.Transpose()[1])
}

func TestInverse(t *testing.T) {
	m := Matrix3[float64]{
		2, 0, 1,
		1, 1, 0,
		0, 3, 1,
	}
	inv, err := m.Inverse()
	assert.NoError(t, err)
	r := m.Mul(inv)
	id := Identity3[float64]()
	for i := range r {
		tolassert.EqualTol(t, id[i], r[i], 1e-12)
	}

	v := V3(0.2, -0.7, 1.4)
	back := inv.MulVector3(m.MulVector3(v))
	tolassert.EqualTol(t, v.X, back.X, 1e-12)
	tolassert.EqualTol(t, v.Y, back.Y, 1e-12)
	tolassert.EqualTol(t, v.Z, back.Z, 1e-12)
}

func TestInverseSingular(t *testing.T) {
	m := Matrix3[float64]{
		1, 2, 3,
		2, 4, 6,
		0, 0, 1,
	}
	_, err := m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, 1.0, Identity3[float64]().Determinant())
	m := Matrix3[float64]{
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	}
	assert.Equal(t, 24.0, m.Determinant())
	assert.Equal(t, 192.0, m.MulScalar(2).Determinant())
}
