package common

import "image/color"

func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Premultiply converts a straight-alpha color to the alpha-premultiplied
// form color.RGBA requires, so no channel exceeds alpha.
func Premultiply(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FloatRGBA converts straight-alpha 0..1 channels to a premultiplied color.
func FloatRGBA(r, g, b, a float32) color.RGBA {
	return Premultiply(color.NRGBA{
		R: uint8(Clamp01(r) * 255),
		G: uint8(Clamp01(g) * 255),
		B: uint8(Clamp01(b) * 255),
		A: uint8(Clamp01(a) * 255),
	})
}
