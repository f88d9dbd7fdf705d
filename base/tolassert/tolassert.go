// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (allowed error).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the two numbers are with 0.001 of each other.
func Equal[T constraints.Float](t *testing.T, expected, actual T, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 1.0e-3, msgAndArgs...)
}

// EqualTol asserts that the two numbers are within the given
// tolerance of each other.
func EqualTol[T constraints.Float](t *testing.T, expected, actual, tol T, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, float64(expected), float64(actual), float64(tol), msgAndArgs...)
}
