// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prism is a typed color representation and conversion library.
//
// Each color space is a distinct value type in its own package (rgb, hsv,
// hsl, hwb, hsi, rgi, ycbcr, cie, lms), generic over the scalar channel
// type, with pure functions connecting it to the two hub spaces: RGB for
// the device and cylindrical spaces, and CIE XYZ for the colorimetric ones.
// The [convert] package composes these edges, inserting chromatic
// adaptation where the reference whites differ.
//
// All operations are pure functions of their inputs and explicit
// parameters (working space, reference white, coefficient model); there is
// no global state anywhere, so everything is safe for concurrent use.
package prism
