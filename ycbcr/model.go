// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ycbcr

import (
	"errors"
	"fmt"

	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/linalg"
)

// ErrWeights is returned by [NewModel] when the luma weights do not
// describe a usable model.
var ErrWeights = errors.New("ycbcr: luma weights must be nonnegative with kr + kb < 1")

// Model defines a member of the YCbCr family through its RGB
// transform matrices. A YCbCr value is only meaningful relative to a
// model; converting with a different model than the one that produced
// the value yields a different color.
//
// The chroma scale factors give the canonical (standard-defined)
// range of the chroma channels, used by [YCbCr.Canonical].
type Model[T channel.Float] struct {
	name     string
	forward  linalg.Matrix3[T]
	inverse  linalg.Matrix3[T]
	cbScale  T
	crScale  T
}

// yuvCbScale and yuvCrScale are the canonical U and V extrema shared
// by the YUV-derived standards.
const (
	yuvCbScale = 0.436
	yuvCrScale = 0.615
)

// NewModel derives a custom YCbCr model from the red and blue luma
// weights kr and kb; the green weight is implied as 1 - kr - kb.
// It returns an error wrapping [ErrWeights] if either weight is
// negative or the pair leaves no green contribution.
func NewModel[T channel.Float](name string, kr, kb T) (Model[T], error) {
	if kr < 0 || kb < 0 || kr+kb >= 1 {
		return Model[T]{}, fmt.Errorf("%w: kr=%v kb=%v", ErrWeights, kr, kb)
	}
	kg := 1 - kr - kb
	fwd := linalg.Matrix3[T]{
		kr, kg, kb,
		0.5 * (-kr / (1 - kb)), 0.5 * (-kg / (1 - kb)), 0.5,
		0.5, 0.5 * (-kg / (1 - kr)), 0.5 * (-kb / (1 - kr)),
	}
	inv, err := fwd.Inverse()
	if err != nil {
		return Model[T]{}, fmt.Errorf("ycbcr: weights kr=%v kb=%v: %w", kr, kb, err)
	}
	return Model[T]{
		name:    name,
		forward: fwd,
		inverse: inv,
		cbScale: yuvCbScale,
		crScale: yuvCrScale,
	}, nil
}

// Name returns the model name.
func (m Model[T]) Name() string { return m.name }

// Forward returns the RGB to YCbCr matrix.
func (m Model[T]) Forward() linalg.Matrix3[T] { return m.forward }

// Inverse returns the YCbCr to RGB matrix.
func (m Model[T]) Inverse() linalg.Matrix3[T] { return m.inverse }

// BT601 is the ITU-R BT.601 model with full-range channels, as used
// by JPEG. This is the default model of the conversion layer.
func BT601[T channel.Float]() Model[T] {
	return Model[T]{
		name: "BT.601",
		forward: linalg.Matrix3[T]{
			0.299, 0.587, 0.114,
			-0.168736, -0.331264, 0.5,
			0.5, -0.418688, -0.081312,
		},
		inverse: linalg.Matrix3[T]{
			1, 0, 1.402,
			1, -0.3441, -0.7141,
			1, 1.772, 0,
		},
		cbScale: yuvCbScale,
		crScale: yuvCrScale,
	}
}

// BT709 is the ITU-R BT.709 model used by HDTV.
func BT709[T channel.Float]() Model[T] {
	return Model[T]{
		name: "BT.709",
		forward: linalg.Matrix3[T]{
			0.2126, 0.7152, 0.0722,
			-0.11457210605733996, -0.38542789394266, 0.5,
			0.5, -0.45415290830581656, -0.04584709169418339,
		},
		inverse: linalg.Matrix3[T]{
			1, 0, 1.5748,
			1, -0.1873242729306488, -0.4681242729306488,
			1, 1.8556, 0,
		},
		cbScale: yuvCbScale,
		crScale: yuvCrScale,
	}
}

// YIQ is the NTSC YIQ model. Its chroma axes are rotated relative to
// the YUV standards, so its matrices are not derivable from luma
// weights alone.
func YIQ[T channel.Float]() Model[T] {
	return Model[T]{
		name: "YIQ",
		forward: linalg.Matrix3[T]{
			0.299, 0.587, 0.114,
			1.0, -0.4599631, -0.540541,
			0.403750, -1.0, 0.597015,
		},
		inverse: linalg.Matrix3[T]{
			1, 0.569795, 0.324938,
			1, -0.162529, -0.338139,
			1, -0.657578, 0.888868,
		},
		cbScale: 0.5957,
		crScale: 0.5226,
	}
}

// ModelByName returns the standard model with the given name
// (as reported by [Model.Name]), or false if there is none.
func ModelByName[T channel.Float](name string) (Model[T], bool) {
	switch name {
	case "BT.601":
		return BT601[T](), true
	case "BT.709":
		return BT709[T](), true
	case "YIQ":
		return YIQ[T](), true
	}
	return Model[T]{}, false
}
