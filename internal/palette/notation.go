package palette

import "github.com/jsvensson/colorconv"

// Notation is one color written in every model, each on the scale of a
// palette's maximums.
type Notation struct {
	Hex  string
	RGB  colorconv.RGB
	HSL  colorconv.HSL
	CMYK colorconv.CMYK
}

// Notate expresses c, a stored color on the default 0-255 scale, under m.
func Notate(c colorconv.RGB, m colorconv.Maximums) (Notation, error) {
	hex, err := colorconv.RGBToHex(c.R, c.G, c.B)
	if err != nil {
		return Notation{}, err
	}
	rgb, err := colorconv.HexToRGB(hex, colorconv.WithRGBMax(m.RGB))
	if err != nil {
		return Notation{}, err
	}
	hsl, err := colorconv.RGBToHSL(c.R, c.G, c.B, colorconv.WithHSLMax(m.HSL))
	if err != nil {
		return Notation{}, err
	}
	cmyk, err := colorconv.RGBToCMYK(c.R, c.G, c.B, colorconv.WithCMYKMax(m.CMYK))
	if err != nil {
		return Notation{}, err
	}
	return Notation{Hex: hex, RGB: rgb, HSL: hsl, CMYK: cmyk}, nil
}

// Notate expresses c under the palette's own maximums.
func (p *Palette) Notate(c colorconv.RGB) (Notation, error) {
	return Notate(c, p.Maximums)
}
