// Package colorconv converts colors between the RGB, HSL, CMYK and hexadecimal
// color models.
//
// Every channel is measured against a configurable maximum, so callers can work
// in 0-255, 0-1, percentages or any other range. With no options the defaults
// are RGB 255, HSL 360/100/100 and CMYK 1.
package colorconv

import (
	"fmt"
	"math"
	"strconv"
)

// RGB is a color in the additive red, green, blue model.
type RGB struct {
	R, G, B float64
}

// HSL is a color in the cylindrical hue, saturation, lightness model.
type HSL struct {
	H, S, L float64
}

// CMYK is a color in the subtractive cyan, magenta, yellow, key model.
type CMYK struct {
	C, M, Y, K float64
}

// String returns the color in functional notation, e.g. "rgb(235, 111, 146)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%s, %s, %s)", formatComponent(c.R), formatComponent(c.G), formatComponent(c.B))
}

// String returns the color in functional notation, e.g. "hsl(343, 76.1, 67.8)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s, %s)", formatComponent(c.H), formatComponent(c.S), formatComponent(c.L))
}

// String returns the color in functional notation, e.g. "cmyk(0, 0.53, 0.38, 0.08)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%s, %s, %s, %s)",
		formatComponent(c.C), formatComponent(c.M), formatComponent(c.Y), formatComponent(c.K))
}

// formatComponent renders v with at most three decimals and no trailing zeros.
func formatComponent(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		// avoid "-0"
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
