package colorconv

import "math"

// Lighten returns c with its HSL lightness raised by delta, where delta is a
// fraction of full lightness (0.1 adds ten percent). The result is clamped so
// white stays white. A negative delta darkens.
func Lighten(c RGB, delta float64, opts ...Option) (RGB, error) {
	return adjustLightness("Lighten", c, delta, opts)
}

// Darken returns c with its HSL lightness lowered by delta.
func Darken(c RGB, delta float64, opts ...Option) (RGB, error) {
	return adjustLightness("Darken", c, -delta, opts)
}

func adjustLightness(fn string, c RGB, delta float64, opts []Option) (RGB, error) {
	m, err := Resolve(opts...)
	if err != nil {
		return RGB{}, err
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return RGB{}, &RangeError{Func: fn, Channel: "delta", Value: delta, Max: 1}
	}
	r, g, b, err := m.RGB.normalize(fn, c.R, c.G, c.B)
	if err != nil {
		return RGB{}, err
	}
	h, s, l := rgbToHSL(r, g, b)
	l = clamp01(l + delta)
	return m.RGB.scale(hslToRGB(h, s, l)), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
