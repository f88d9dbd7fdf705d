// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"testing"

	"cogentcore.org/prism/base/tolassert"
	"cogentcore.org/prism/cie"
	"cogentcore.org/prism/hsi"
	"cogentcore.org/prism/hwb"
	"cogentcore.org/prism/lms"
	"cogentcore.org/prism/rgb"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cv := New[float64]()
	assert.Equal(t, "srgb", cv.Space.Name)
	assert.Equal(t, cv.Space.White, cv.White)
	assert.NotNil(t, cv.Cone)
	assert.Equal(t, "bradford", cv.Cone.Name)
	assert.Equal(t, "BT.601", cv.YCbCr.Name())
	assert.Equal(t, hsi.Preserve, cv.Gamut)
}

func TestHubCrossing(t *testing.T) {
	cv := New[float64]()

	// sRGB white lands on D65, and on Lab (100, 0, 0)
	x, err := cv.RGBToXYZ(rgb.RGB[float64]{R: 1, G: 1, B: 1})
	assert.NoError(t, err)
	tolassert.EqualTol(t, 0.95047, x.X, 1e-9)
	tolassert.EqualTol(t, 1, x.Y, 1e-9)
	tolassert.EqualTol(t, 1.08883, x.Z, 1e-9)

	lab := cv.XYZToLab(x)
	tolassert.EqualTol(t, 100, lab.L, 1e-9)
	tolassert.EqualTol(t, 0, lab.A, 1e-9)
	tolassert.EqualTol(t, 0, lab.B, 1e-9)

	c := rgb.RGB[float64]{R: 0.2, G: 0.5, B: 0.8}
	x, err = cv.RGBToXYZ(c)
	assert.NoError(t, err)
	tolassert.EqualTol(t, 0.19914335, x.X, 1e-7)
	tolassert.EqualTol(t, 0.20369370, x.Y, 1e-7)
	tolassert.EqualTol(t, 0.59997162, x.Z, 1e-7)

	back, err := cv.XYZToRGB(x)
	assert.NoError(t, err)
	tolassert.EqualTol(t, c.R, back.R, 1e-9)
	tolassert.EqualTol(t, c.G, back.G, 1e-9)
	tolassert.EqualTol(t, c.B, back.B, 1e-9)
}

func TestLabLuvValues(t *testing.T) {
	cv := New[float64]()
	c := rgb.RGB[float64]{R: 0.2, G: 0.5, B: 0.8}

	lab, err := cv.RGBToLab(c)
	assert.NoError(t, err)
	tolassert.EqualTol(t, 52.252284, lab.L, 1e-5)
	tolassert.EqualTol(t, 2.779046, lab.A, 1e-4)
	tolassert.EqualTol(t, -46.289549, lab.B, 1e-4)

	luv, err := cv.RGBToLuv(c)
	assert.NoError(t, err)
	tolassert.EqualTol(t, 52.252284, luv.L, 1e-5)
	tolassert.EqualTol(t, -27.335451, luv.U, 1e-4)
	tolassert.EqualTol(t, -71.758031, luv.V, 1e-4)

	back, err := cv.LabToRGB(lab)
	assert.NoError(t, err)
	tolassert.EqualTol(t, c.R, back.R, 1e-9)
	tolassert.EqualTol(t, c.G, back.G, 1e-9)
	tolassert.EqualTol(t, c.B, back.B, 1e-9)
}

func TestAdaptingConverter(t *testing.T) {
	cv := New[float64]()
	cv.White = cie.D50[float64]()

	// the working space white adapts onto the converter white
	x, err := cv.RGBToXYZ(rgb.RGB[float64]{R: 1, G: 1, B: 1})
	assert.NoError(t, err)
	tolassert.EqualTol(t, 0.96422, x.X, 1e-6)
	tolassert.EqualTol(t, 1, x.Y, 1e-6)
	tolassert.EqualTol(t, 0.82521, x.Z, 1e-6)

	// so white is still achromatic in Lab under the new white
	lab := cv.XYZToLab(x)
	tolassert.EqualTol(t, 100, lab.L, 1e-4)
	tolassert.EqualTol(t, 0, lab.A, 1e-4)
	tolassert.EqualTol(t, 0, lab.B, 1e-4)

	// and the full trip back is the identity
	c := rgb.RGB[float64]{R: 0.3, G: 0.6, B: 0.1}
	x, err = cv.RGBToXYZ(c)
	assert.NoError(t, err)
	back, err := cv.XYZToRGB(x)
	assert.NoError(t, err)
	tolassert.EqualTol(t, c.R, back.R, 1e-9)
	tolassert.EqualTol(t, c.G, back.G, 1e-9)
	tolassert.EqualTol(t, c.B, back.B, 1e-9)
}

func TestWhiteMismatch(t *testing.T) {
	cv := New[float64]()
	cv.White = cie.D50[float64]()
	cv.Cone = nil

	_, err := cv.RGBToXYZ(rgb.RGB[float64]{R: 1, G: 1, B: 1})
	var mismatch *WhiteMismatchError[float64]
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, cie.D65[float64](), mismatch.SpaceWhite)
	assert.Equal(t, cie.D50[float64](), mismatch.White)

	_, err = cv.XYZToRGB(cie.XYZ[float64]{X: 0.3, Y: 0.4, Z: 0.2})
	assert.ErrorAs(t, err, &mismatch)

	// with matching whites, no cone model is needed
	cv.White = cv.Space.White
	_, err = cv.RGBToXYZ(rgb.RGB[float64]{R: 1, G: 1, B: 1})
	assert.NoError(t, err)
}

func TestNoCone(t *testing.T) {
	cv := New[float64]()
	cv.Cone = nil

	_, err := cv.XYZToLMS(cie.XYZ[float64]{X: 0.3, Y: 0.4, Z: 0.2})
	assert.ErrorIs(t, err, ErrNoCone)
	_, err = cv.LMSToXYZ(lms.LMS[float64]{})
	assert.ErrorIs(t, err, ErrNoCone)
	_, err = cv.Adapt(cie.XYZ[float64]{X: 0.3, Y: 0.4, Z: 0.2}, cie.D65[float64](), cie.D50[float64]())
	assert.ErrorIs(t, err, ErrNoCone)
}

func TestLMS(t *testing.T) {
	cv := New[float64]()
	x := cie.XYZ[float64]{X: 0.3, Y: 0.4, Z: 0.2}
	c, err := cv.XYZToLMS(x)
	assert.NoError(t, err)
	back, err := cv.LMSToXYZ(c)
	assert.NoError(t, err)
	tolassert.EqualTol(t, x.X, back.X, 1e-9)
	tolassert.EqualTol(t, x.Y, back.Y, 1e-9)
	tolassert.EqualTol(t, x.Z, back.Z, 1e-9)
}

func TestDeviceSpokes(t *testing.T) {
	cv := New[float64]()
	c := rgb.RGB[float64]{R: 0.2, G: 0.5, B: 0.8}

	// every device spoke composes with the hub consistently
	hsvBack := cv.HSVToRGB(cv.RGBToHSV(c))
	hslBack := cv.HSLToRGB(cv.RGBToHSL(c))
	hwbBack := cv.HWBToRGB(cv.RGBToHWB(c))
	hsiBack := cv.HSIToRGB(cv.RGBToHSI(c))
	ehsiBack := cv.EHSIToRGB(cv.RGBToEHSI(c))
	ycc := cv.YCbCrToRGB(cv.RGBToYCbCr(c))
	rgiBack := cv.RGIToRGB(cv.RGBToRGI(c))
	for _, back := range []rgb.RGB[float64]{hsvBack, hslBack, hwbBack, hsiBack, rgiBack} {
		tolassert.EqualTol(t, c.R, back.R, 1e-9)
		tolassert.EqualTol(t, c.G, back.G, 1e-9)
		tolassert.EqualTol(t, c.B, back.B, 1e-9)
	}
	for _, back := range []rgb.RGB[float64]{ehsiBack, ycc} {
		tolassert.EqualTol(t, c.R, back.R, 2e-3)
		tolassert.EqualTol(t, c.G, back.G, 2e-3)
		tolassert.EqualTol(t, c.B, back.B, 2e-3)
	}

	// HWB through the converter equals HWB directly
	assert.Equal(t, hwb.FromRGB(c), cv.RGBToHWB(c))

	// a CIE spoke through XYZ and back
	v, err := cv.HSVToXYZ(cv.RGBToHSV(c))
	assert.NoError(t, err)
	h, err := cv.XYZToHSV(v)
	assert.NoError(t, err)
	rt := cv.HSVToRGB(h)
	tolassert.EqualTol(t, c.R, rt.R, 1e-9)
	tolassert.EqualTol(t, c.G, rt.G, 1e-9)
	tolassert.EqualTol(t, c.B, rt.B, 1e-9)
}

func TestLChSpokes(t *testing.T) {
	cv := New[float64]()
	c := rgb.RGB[float64]{R: 0.7, G: 0.3, B: 0.2}

	lch, err := cv.RGBToLChab(c)
	assert.NoError(t, err)
	assert.True(t, lch.C >= 0)
	assert.True(t, lch.H >= 0 && lch.H < 360)
	back, err := cv.LChabToRGB(lch)
	assert.NoError(t, err)
	tolassert.EqualTol(t, c.R, back.R, 1e-9)
	tolassert.EqualTol(t, c.G, back.G, 1e-9)
	tolassert.EqualTol(t, c.B, back.B, 1e-9)

	lchuv, err := cv.RGBToLChuv(c)
	assert.NoError(t, err)
	backuv, err := cv.LChuvToRGB(lchuv)
	assert.NoError(t, err)
	tolassert.EqualTol(t, c.R, backuv.R, 1e-9)
	tolassert.EqualTol(t, c.G, backuv.G, 1e-9)
	tolassert.EqualTol(t, c.B, backuv.B, 1e-9)

	xyy, err := cv.RGBToXyY(c)
	assert.NoError(t, err)
	backxy, err := cv.XyYToRGB(xyy)
	assert.NoError(t, err)
	tolassert.EqualTol(t, c.R, backxy.R, 1e-9)
}

func TestGamutPolicy(t *testing.T) {
	cv := New[float64]()
	out := hsi.New[float64](0, 1, 0.8)

	// default policy preserves the out-of-range channels
	raw := cv.HSIToRGB(out)
	assert.True(t, raw.R > 1)

	cv.Gamut = hsi.SaturationRescale
	sat := cv.HSIToRGB(out)
	tolassert.EqualTol(t, 1, sat.R, 1e-9)
	tolassert.EqualTol(t, 0.7, sat.G, 1e-9)
}
