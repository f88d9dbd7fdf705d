// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"cogentcore.org/prism/cie"
	"cogentcore.org/prism/lms"
	"cogentcore.org/prism/rgb"
)

// Colorimetric spokes. Each space converts to and from the XYZ hub
// relative to the converter white, and to and from RGB by crossing
// the hub.

// XYZToLab converts XYZ to Lab, both relative to the converter white.
func (cv *Converter[T]) XYZToLab(x cie.XYZ[T]) cie.Lab[T] {
	return cie.LabFromXYZ(x, cv.White)
}

// LabToXYZ converts Lab to XYZ, both relative to the converter white.
func (cv *Converter[T]) LabToXYZ(c cie.Lab[T]) cie.XYZ[T] {
	return c.XYZ(cv.White)
}

// RGBToLab converts encoded RGB in the working space to Lab.
func (cv *Converter[T]) RGBToLab(c rgb.RGB[T]) (cie.Lab[T], error) {
	x, err := cv.RGBToXYZ(c)
	if err != nil {
		return cie.Lab[T]{}, err
	}
	return cie.LabFromXYZ(x, cv.White), nil
}

// LabToRGB converts Lab to encoded RGB in the working space.
func (cv *Converter[T]) LabToRGB(c cie.Lab[T]) (rgb.RGB[T], error) {
	return cv.XYZToRGB(c.XYZ(cv.White))
}

// XYZToLuv converts XYZ to Luv, both relative to the converter white.
func (cv *Converter[T]) XYZToLuv(x cie.XYZ[T]) cie.Luv[T] {
	return cie.LuvFromXYZ(x, cv.White)
}

// LuvToXYZ converts Luv to XYZ, both relative to the converter white.
func (cv *Converter[T]) LuvToXYZ(c cie.Luv[T]) cie.XYZ[T] {
	return c.XYZ(cv.White)
}

// RGBToLuv converts encoded RGB in the working space to Luv.
func (cv *Converter[T]) RGBToLuv(c rgb.RGB[T]) (cie.Luv[T], error) {
	x, err := cv.RGBToXYZ(c)
	if err != nil {
		return cie.Luv[T]{}, err
	}
	return cie.LuvFromXYZ(x, cv.White), nil
}

// LuvToRGB converts Luv to encoded RGB in the working space.
func (cv *Converter[T]) LuvToRGB(c cie.Luv[T]) (rgb.RGB[T], error) {
	return cv.XYZToRGB(c.XYZ(cv.White))
}

// XYZToLChab converts XYZ to the cylindrical form of Lab.
func (cv *Converter[T]) XYZToLChab(x cie.XYZ[T]) cie.LChab[T] {
	return cie.LChabFromLab(cie.LabFromXYZ(x, cv.White))
}

// LChabToXYZ converts the cylindrical form of Lab to XYZ.
func (cv *Converter[T]) LChabToXYZ(c cie.LChab[T]) cie.XYZ[T] {
	return c.Lab().XYZ(cv.White)
}

// RGBToLChab converts encoded RGB to the cylindrical form of Lab.
func (cv *Converter[T]) RGBToLChab(c rgb.RGB[T]) (cie.LChab[T], error) {
	lab, err := cv.RGBToLab(c)
	if err != nil {
		return cie.LChab[T]{}, err
	}
	return cie.LChabFromLab(lab), nil
}

// LChabToRGB converts the cylindrical form of Lab to encoded RGB.
func (cv *Converter[T]) LChabToRGB(c cie.LChab[T]) (rgb.RGB[T], error) {
	return cv.XYZToRGB(c.Lab().XYZ(cv.White))
}

// XYZToLChuv converts XYZ to the cylindrical form of Luv.
func (cv *Converter[T]) XYZToLChuv(x cie.XYZ[T]) cie.LChuv[T] {
	return cie.LChuvFromLuv(cie.LuvFromXYZ(x, cv.White))
}

// LChuvToXYZ converts the cylindrical form of Luv to XYZ.
func (cv *Converter[T]) LChuvToXYZ(c cie.LChuv[T]) cie.XYZ[T] {
	return c.Luv().XYZ(cv.White)
}

// RGBToLChuv converts encoded RGB to the cylindrical form of Luv.
func (cv *Converter[T]) RGBToLChuv(c rgb.RGB[T]) (cie.LChuv[T], error) {
	luv, err := cv.RGBToLuv(c)
	if err != nil {
		return cie.LChuv[T]{}, err
	}
	return cie.LChuvFromLuv(luv), nil
}

// LChuvToRGB converts the cylindrical form of Luv to encoded RGB.
func (cv *Converter[T]) LChuvToRGB(c cie.LChuv[T]) (rgb.RGB[T], error) {
	return cv.XYZToRGB(c.Luv().XYZ(cv.White))
}

// XYZToXyY converts XYZ to chromaticity plus luminance. The mapping
// does not depend on the white point.
func (cv *Converter[T]) XYZToXyY(x cie.XYZ[T]) cie.XyY[T] {
	return cie.XyYFromXYZ(x)
}

// XyYToXYZ converts chromaticity plus luminance to XYZ.
func (cv *Converter[T]) XyYToXYZ(c cie.XyY[T]) cie.XYZ[T] {
	return c.XYZ()
}

// RGBToXyY converts encoded RGB to chromaticity plus luminance.
func (cv *Converter[T]) RGBToXyY(c rgb.RGB[T]) (cie.XyY[T], error) {
	x, err := cv.RGBToXYZ(c)
	if err != nil {
		return cie.XyY[T]{}, err
	}
	return cie.XyYFromXYZ(x), nil
}

// XyYToRGB converts chromaticity plus luminance to encoded RGB.
func (cv *Converter[T]) XyYToRGB(c cie.XyY[T]) (rgb.RGB[T], error) {
	return cv.XYZToRGB(c.XYZ())
}

// XYZToLMS converts XYZ to cone responses under the converter's cone
// model. It returns [ErrNoCone] if none is configured.
func (cv *Converter[T]) XYZToLMS(x cie.XYZ[T]) (lms.LMS[T], error) {
	if cv.Cone == nil {
		return lms.LMS[T]{}, ErrNoCone
	}
	return lms.FromXYZ(x, *cv.Cone), nil
}

// LMSToXYZ converts cone responses under the converter's cone model
// back to XYZ. It returns [ErrNoCone] if none is configured.
func (cv *Converter[T]) LMSToXYZ(c lms.LMS[T]) (cie.XYZ[T], error) {
	if cv.Cone == nil {
		return cie.XYZ[T]{}, ErrNoCone
	}
	return c.XYZ(*cv.Cone), nil
}

// Adapt transforms an XYZ value between two reference whites with the
// converter's cone model. It returns [ErrNoCone] if none is
// configured.
func (cv *Converter[T]) Adapt(x cie.XYZ[T], from, to cie.XYZ[T]) (cie.XYZ[T], error) {
	if cv.Cone == nil {
		return cie.XYZ[T]{}, ErrNoCone
	}
	return lms.Adapt(x, from, to, *cv.Cone), nil
}
