package colorconv

// CMYKToRGB converts a CMYK color to RGB.
func CMYKToRGB(c, m, y, k float64, opts ...Option) (RGB, error) {
	mx, err := Resolve(opts...)
	if err != nil {
		return RGB{}, err
	}
	cn, mn, yn, kn, err := mx.CMYK.normalize("CMYKToRGB", c, m, y, k)
	if err != nil {
		return RGB{}, err
	}
	return mx.RGB.scale(cmykToRGB(cn, mn, yn, kn)), nil
}

// RGBToCMYK converts an RGB color to CMYK. Black maps to {0, 0, 0, max K}.
func RGBToCMYK(r, g, b float64, opts ...Option) (CMYK, error) {
	mx, err := Resolve(opts...)
	if err != nil {
		return CMYK{}, err
	}
	rn, gn, bn, err := mx.RGB.normalize("RGBToCMYK", r, g, b)
	if err != nil {
		return CMYK{}, err
	}
	return mx.CMYK.scale(rgbToCMYK(rn, gn, bn)), nil
}

// HSLToCMYK converts an HSL color to CMYK by way of RGB.
func HSLToCMYK(h, s, l float64, opts ...Option) (CMYK, error) {
	mx, err := Resolve(opts...)
	if err != nil {
		return CMYK{}, err
	}
	hn, sn, ln, err := mx.HSL.normalize("HSLToCMYK", h, s, l)
	if err != nil {
		return CMYK{}, err
	}
	return mx.CMYK.scale(rgbToCMYK(hslToRGB(hn, sn, ln))), nil
}

// CMYKToHSL converts a CMYK color to HSL by way of RGB.
func CMYKToHSL(c, m, y, k float64, opts ...Option) (HSL, error) {
	mx, err := Resolve(opts...)
	if err != nil {
		return HSL{}, err
	}
	cn, mn, yn, kn, err := mx.CMYK.normalize("CMYKToHSL", c, m, y, k)
	if err != nil {
		return HSL{}, err
	}
	return mx.HSL.scale(rgbToHSL(cmykToRGB(cn, mn, yn, kn))), nil
}

func cmykToRGB(c, m, y, k float64) (r, g, b float64) {
	return (1 - c) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
}

// rgbToCMYK leaves c, m and y at 0 for pure black, where (1-k) is zero.
func rgbToCMYK(r, g, b float64) (c, m, y, k float64) {
	k = 1 - max(r, g, b)
	if k == 1 {
		return 0, 0, 0, 1
	}
	c = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return c, m, y, k
}
