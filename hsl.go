package colorconv

import "math"

// RGBToHSL converts an RGB color to HSL.
// It returns a *RangeError if a channel lies outside [0, max].
func RGBToHSL(r, g, b float64, opts ...Option) (HSL, error) {
	m, err := Resolve(opts...)
	if err != nil {
		return HSL{}, err
	}
	rn, gn, bn, err := m.RGB.normalize("RGBToHSL", r, g, b)
	if err != nil {
		return HSL{}, err
	}
	return m.HSL.scale(rgbToHSL(rn, gn, bn)), nil
}

// HSLToRGB converts an HSL color to RGB.
// A hue equal to the hue maximum is treated as 0.
func HSLToRGB(h, s, l float64, opts ...Option) (RGB, error) {
	m, err := Resolve(opts...)
	if err != nil {
		return RGB{}, err
	}
	hn, sn, ln, err := m.HSL.normalize("HSLToRGB", h, s, l)
	if err != nil {
		return RGB{}, err
	}
	return m.RGB.scale(hslToRGB(hn, sn, ln)), nil
}

// rgbToHSL works on channels in [0, 1] and returns the hue in degrees
// [0, 360) and saturation and lightness in [0, 1].
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	cMax := max(r, g, b)
	cMin := min(r, g, b)
	delta := cMax - cMin

	switch {
	case delta == 0:
		h = 0
	case cMax == b:
		h = 60 * ((r-g)/delta + 4)
	case cMax == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * mod((g-b)/delta, 6)
	}
	if h < 0 {
		h += 360
	}

	l = (cMax + cMin) / 2
	if delta != 0 {
		// rounding can push fully saturated colors a hair past 1
		s = min(delta/(1-math.Abs(2*l-1)), 1)
	}
	return h, s, l
}

// hslToRGB expects the hue in degrees [0, 360) and s, l in [0, 1].
func hslToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// mod is the floored modulo; the result has the sign of n.
func mod(a, n float64) float64 {
	return math.Mod(math.Mod(a, n)+n, n)
}
