// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"cogentcore.org/prism/cie"
	"cogentcore.org/prism/hsi"
	"cogentcore.org/prism/hsl"
	"cogentcore.org/prism/hsv"
	"cogentcore.org/prism/hwb"
	"cogentcore.org/prism/rgb"
	"cogentcore.org/prism/rgi"
	"cogentcore.org/prism/ycbcr"
)

// Device-dependent spokes. Each space converts to and from the RGB
// hub directly, and to and from XYZ by crossing the hub.

// RGBToHSV converts encoded RGB to HSV.
func (cv *Converter[T]) RGBToHSV(c rgb.RGB[T]) hsv.HSV[T] { return hsv.FromRGB(c) }

// HSVToRGB converts HSV to encoded RGB.
func (cv *Converter[T]) HSVToRGB(c hsv.HSV[T]) rgb.RGB[T] { return c.RGB() }

// HSVToXYZ converts HSV to XYZ relative to the converter white.
func (cv *Converter[T]) HSVToXYZ(c hsv.HSV[T]) (cie.XYZ[T], error) {
	return cv.RGBToXYZ(c.RGB())
}

// XYZToHSV converts XYZ relative to the converter white to HSV.
func (cv *Converter[T]) XYZToHSV(x cie.XYZ[T]) (hsv.HSV[T], error) {
	c, err := cv.XYZToRGB(x)
	if err != nil {
		return hsv.HSV[T]{}, err
	}
	return hsv.FromRGB(c), nil
}

// RGBToHSL converts encoded RGB to HSL.
func (cv *Converter[T]) RGBToHSL(c rgb.RGB[T]) hsl.HSL[T] { return hsl.FromRGB(c) }

// HSLToRGB converts HSL to encoded RGB.
func (cv *Converter[T]) HSLToRGB(c hsl.HSL[T]) rgb.RGB[T] { return c.RGB() }

// HSLToXYZ converts HSL to XYZ relative to the converter white.
func (cv *Converter[T]) HSLToXYZ(c hsl.HSL[T]) (cie.XYZ[T], error) {
	return cv.RGBToXYZ(c.RGB())
}

// XYZToHSL converts XYZ relative to the converter white to HSL.
func (cv *Converter[T]) XYZToHSL(x cie.XYZ[T]) (hsl.HSL[T], error) {
	c, err := cv.XYZToRGB(x)
	if err != nil {
		return hsl.HSL[T]{}, err
	}
	return hsl.FromRGB(c), nil
}

// RGBToHWB converts encoded RGB to HWB.
func (cv *Converter[T]) RGBToHWB(c rgb.RGB[T]) hwb.HWB[T] { return hwb.FromRGB(c) }

// HWBToRGB converts HWB to encoded RGB.
func (cv *Converter[T]) HWBToRGB(c hwb.HWB[T]) rgb.RGB[T] { return c.RGB() }

// HWBToXYZ converts HWB to XYZ relative to the converter white.
func (cv *Converter[T]) HWBToXYZ(c hwb.HWB[T]) (cie.XYZ[T], error) {
	return cv.RGBToXYZ(c.RGB())
}

// XYZToHWB converts XYZ relative to the converter white to HWB.
func (cv *Converter[T]) XYZToHWB(x cie.XYZ[T]) (hwb.HWB[T], error) {
	c, err := cv.XYZToRGB(x)
	if err != nil {
		return hwb.HWB[T]{}, err
	}
	return hwb.FromRGB(c), nil
}

// RGBToHSI converts encoded RGB to HSI.
func (cv *Converter[T]) RGBToHSI(c rgb.RGB[T]) hsi.HSI[T] { return hsi.FromRGB(c) }

// HSIToRGB converts HSI to encoded RGB, resolving out-of-gamut colors
// with the converter's gamut policy.
func (cv *Converter[T]) HSIToRGB(c hsi.HSI[T]) rgb.RGB[T] { return c.RGBMode(cv.Gamut) }

// HSIToXYZ converts HSI to XYZ relative to the converter white.
func (cv *Converter[T]) HSIToXYZ(c hsi.HSI[T]) (cie.XYZ[T], error) {
	return cv.RGBToXYZ(c.RGBMode(cv.Gamut))
}

// XYZToHSI converts XYZ relative to the converter white to HSI.
func (cv *Converter[T]) XYZToHSI(x cie.XYZ[T]) (hsi.HSI[T], error) {
	c, err := cv.XYZToRGB(x)
	if err != nil {
		return hsi.HSI[T]{}, err
	}
	return hsi.FromRGB(c), nil
}

// RGBToEHSI converts encoded RGB to eHSI.
func (cv *Converter[T]) RGBToEHSI(c rgb.RGB[T]) hsi.EHSI[T] { return hsi.EHSIFromRGB(c) }

// EHSIToRGB converts eHSI to encoded RGB.
func (cv *Converter[T]) EHSIToRGB(c hsi.EHSI[T]) rgb.RGB[T] { return c.RGB() }

// EHSIToXYZ converts eHSI to XYZ relative to the converter white.
func (cv *Converter[T]) EHSIToXYZ(c hsi.EHSI[T]) (cie.XYZ[T], error) {
	return cv.RGBToXYZ(c.RGB())
}

// XYZToEHSI converts XYZ relative to the converter white to eHSI.
func (cv *Converter[T]) XYZToEHSI(x cie.XYZ[T]) (hsi.EHSI[T], error) {
	c, err := cv.XYZToRGB(x)
	if err != nil {
		return hsi.EHSI[T]{}, err
	}
	return hsi.EHSIFromRGB(c), nil
}

// RGBToYCbCr converts encoded RGB to YCbCr under the converter's
// YCbCr model.
func (cv *Converter[T]) RGBToYCbCr(c rgb.RGB[T]) ycbcr.YCbCr[T] {
	return ycbcr.FromRGB(c, cv.YCbCr)
}

// YCbCrToRGB converts YCbCr under the converter's YCbCr model to
// encoded RGB.
func (cv *Converter[T]) YCbCrToRGB(c ycbcr.YCbCr[T]) rgb.RGB[T] {
	return c.RGB(cv.YCbCr)
}

// YCbCrToXYZ converts YCbCr to XYZ relative to the converter white.
func (cv *Converter[T]) YCbCrToXYZ(c ycbcr.YCbCr[T]) (cie.XYZ[T], error) {
	return cv.RGBToXYZ(c.RGB(cv.YCbCr))
}

// XYZToYCbCr converts XYZ relative to the converter white to YCbCr.
func (cv *Converter[T]) XYZToYCbCr(x cie.XYZ[T]) (ycbcr.YCbCr[T], error) {
	c, err := cv.XYZToRGB(x)
	if err != nil {
		return ycbcr.YCbCr[T]{}, err
	}
	return ycbcr.FromRGB(c, cv.YCbCr), nil
}

// RGBToRGI converts encoded RGB to rg-chromaticity.
func (cv *Converter[T]) RGBToRGI(c rgb.RGB[T]) rgi.RGI[T] { return rgi.FromRGB(c) }

// RGIToRGB converts rg-chromaticity to encoded RGB.
func (cv *Converter[T]) RGIToRGB(c rgi.RGI[T]) rgb.RGB[T] { return c.RGB() }

// RGIToXYZ converts rg-chromaticity to XYZ relative to the converter
// white.
func (cv *Converter[T]) RGIToXYZ(c rgi.RGI[T]) (cie.XYZ[T], error) {
	return cv.RGBToXYZ(c.RGB())
}

// XYZToRGI converts XYZ relative to the converter white to
// rg-chromaticity.
func (cv *Converter[T]) XYZToRGI(x cie.XYZ[T]) (rgi.RGI[T], error) {
	c, err := cv.XYZToRGB(x)
	if err != nil {
		return rgi.RGI[T]{}, err
	}
	return rgi.FromRGB(c), nil
}
