// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import (
	"cogentcore.org/prism/channel"
	"cogentcore.org/prism/cie"
)

// Preset working spaces. Primaries and whites follow Bruce Lindbloom's
// reference tables; each preset derives its matrices on construction,
// so the returned Space is independent of all others.

// mustSpace builds a preset, whose primaries are known to be
// non-degenerate.
func mustSpace[T channel.Float](name string, p Primaries[T], white cie.XYZ[T], enc Encoding[T]) *Space[T] {
	s, err := NewSpace(name, p, white, enc)
	if err != nil {
		panic("rgb: preset " + name + ": " + err.Error())
	}
	return s
}

// SRGB is the sRGB working space: BT.709 primaries, D65 white, and
// the piecewise sRGB transfer function.
func SRGB[T channel.Float]() *Space[T] {
	return mustSpace("srgb", Primaries[T]{
		Red:   Chromaticity[T]{0.6400, 0.3300},
		Green: Chromaticity[T]{0.3000, 0.6000},
		Blue:  Chromaticity[T]{0.1500, 0.0600},
	}, cie.D65[T](), SRGBEncoding[T]{})
}

// AdobeRGB is the Adobe RGB (1998) working space, with a pure 2.2
// (563/256) gamma.
func AdobeRGB[T channel.Float]() *Space[T] {
	return mustSpace("adobe-rgb", Primaries[T]{
		Red:   Chromaticity[T]{0.6400, 0.3300},
		Green: Chromaticity[T]{0.2100, 0.7100},
		Blue:  Chromaticity[T]{0.1500, 0.0600},
	}, cie.D65[T](), GammaEncoding[T]{Gamma: 563.0 / 256.0})
}

// AppleRGB is the legacy Apple RGB working space, with a 1.8 gamma.
func AppleRGB[T channel.Float]() *Space[T] {
	return mustSpace("apple-rgb", Primaries[T]{
		Red:   Chromaticity[T]{0.6250, 0.3400},
		Green: Chromaticity[T]{0.2800, 0.5950},
		Blue:  Chromaticity[T]{0.1550, 0.0700},
	}, cie.D65[T](), GammaEncoding[T]{Gamma: 1.8})
}

// ProPhotoRGB is the ProPhoto (ROMM) working space: very wide gamut,
// D50 white, 1.8 gamma.
func ProPhotoRGB[T channel.Float]() *Space[T] {
	return mustSpace("prophoto-rgb", Primaries[T]{
		Red:   Chromaticity[T]{0.7347, 0.2653},
		Green: Chromaticity[T]{0.1596, 0.8404},
		Blue:  Chromaticity[T]{0.0366, 0.0001},
	}, cie.D50[T](), GammaEncoding[T]{Gamma: 1.8})
}

// WideGamutRGB is the Adobe Wide Gamut working space: D50 white, 2.2
// gamma.
func WideGamutRGB[T channel.Float]() *Space[T] {
	return mustSpace("wide-gamut-rgb", Primaries[T]{
		Red:   Chromaticity[T]{0.7350, 0.2650},
		Green: Chromaticity[T]{0.1150, 0.8260},
		Blue:  Chromaticity[T]{0.1570, 0.0180},
	}, cie.D50[T](), GammaEncoding[T]{Gamma: 563.0 / 256.0})
}

// Rec709 is the ITU-R BT.709 television space: the sRGB primaries and
// white with the BT.709 transfer function.
func Rec709[T channel.Float]() *Space[T] {
	return mustSpace("rec709", Primaries[T]{
		Red:   Chromaticity[T]{0.6400, 0.3300},
		Green: Chromaticity[T]{0.3000, 0.6000},
		Blue:  Chromaticity[T]{0.1500, 0.0600},
	}, cie.D65[T](), Rec709Encoding[T]{})
}

// Rec2020 is the ITU-R BT.2020 ultra-high-definition television
// space. It shares the BT.709 transfer function in its nominal form.
func Rec2020[T channel.Float]() *Space[T] {
	return mustSpace("rec2020", Primaries[T]{
		Red:   Chromaticity[T]{0.7080, 0.2920},
		Green: Chromaticity[T]{0.1700, 0.7970},
		Blue:  Chromaticity[T]{0.1310, 0.0460},
	}, cie.D65[T](), Rec709Encoding[T]{})
}

// SpaceByName returns the preset working space with the given name
// ("srgb", "adobe-rgb", "apple-rgb", "prophoto-rgb", "wide-gamut-rgb",
// "rec709", "rec2020"), and whether the name is known.
func SpaceByName[T channel.Float](name string) (*Space[T], bool) {
	switch name {
	case "srgb":
		return SRGB[T](), true
	case "adobe-rgb":
		return AdobeRGB[T](), true
	case "apple-rgb":
		return AppleRGB[T](), true
	case "prophoto-rgb":
		return ProPhotoRGB[T](), true
	case "wide-gamut-rgb":
		return WideGamutRGB[T](), true
	case "rec709":
		return Rec709[T](), true
	case "rec2020":
		return Rec2020[T](), true
	}
	return nil, false
}

// SpaceNames returns the names in the preset working space registry.
func SpaceNames() []string {
	return []string{"srgb", "adobe-rgb", "apple-rgb", "prophoto-rgb", "wide-gamut-rgb", "rec709", "rec2020"}
}
