// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lms

import (
	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/linalg"
)

// Model is an XYZ to LMS cone transform: a named forward matrix and
// its precomputed inverse.
type Model[T channel.Float] struct {
	Name    string
	Forward linalg.Matrix3[T]
	Inverse linalg.Matrix3[T]
}

// NewModel returns a model with the given forward matrix, computing
// the inverse. It returns [linalg.ErrSingular] for a degenerate
// matrix; all the standard models are well-conditioned.
func NewModel[T channel.Float](name string, fwd linalg.Matrix3[T]) (Model[T], error) {
	inv, err := fwd.Inverse()
	if err != nil {
		return Model[T]{}, err
	}
	return Model[T]{Name: name, Forward: fwd, Inverse: inv}, nil
}

// mustModel builds one of the standard models, whose matrices are
// known to be invertible.
func mustModel[T channel.Float](name string, fwd linalg.Matrix3[T]) Model[T] {
	m, err := NewModel(name, fwd)
	if err != nil {
		panic("lms: standard model " + name + ": " + err.Error())
	}
	return m
}

// Bradford is the Bradford cone transform, the usual default for
// chromatic adaptation.
func Bradford[T channel.Float]() Model[T] {
	return mustModel("bradford", linalg.Matrix3[T]{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	})
}

// CAT02 is the CAT02 transform from the CIECAM02 appearance model.
func CAT02[T channel.Float]() Model[T] {
	return mustModel("cat02", linalg.Matrix3[T]{
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	})
}

// CIECAM97s is the transform from the older CIECAM97s appearance model.
func CIECAM97s[T channel.Float]() Model[T] {
	return mustModel("ciecam97s", linalg.Matrix3[T]{
		0.8562, 0.3372, -0.1934,
		-0.8360, 1.8327, 0.0033,
		0.0357, -0.0469, 1.0112,
	})
}

// HuntPointerEstevez is the Hunt-Pointer-Estevez transform normalized
// to the equal-energy illuminant, used by the Hunt and RLAB models.
func HuntPointerEstevez[T channel.Float]() Model[T] {
	return mustModel("hunt-pointer-estevez", linalg.Matrix3[T]{
		0.38971, 0.68898, -0.07868,
		-0.22981, 1.18340, 0.04641,
		0, 0, 1,
	})
}

// VonKries is the Hunt-Pointer-Estevez transform normalized to D65,
// the matrix of the classic von Kries adaptation method.
func VonKries[T channel.Float]() Model[T] {
	return mustModel("von-kries", linalg.Matrix3[T]{
		0.40024, 0.70760, -0.08081,
		-0.22630, 1.16532, 0.04570,
		0, 0, 0.91822,
	})
}

// ModelByName returns the standard model with the given name
// ("bradford", "cat02", "ciecam97s", "hunt-pointer-estevez",
// "von-kries"), and whether the name is known.
func ModelByName[T channel.Float](name string) (Model[T], bool) {
	switch name {
	case "bradford":
		return Bradford[T](), true
	case "cat02":
		return CAT02[T](), true
	case "ciecam97s":
		return CIECAM97s[T](), true
	case "hunt-pointer-estevez":
		return HuntPointerEstevez[T](), true
	case "von-kries":
		return VonKries[T](), true
	}
	return Model[T]{}, false
}
