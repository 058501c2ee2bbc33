package colorconv

import (
	"strings"

	"golang.org/x/image/colornames"
)

// NamedToRGB looks up an SVG 1.1 / CSS color keyword such as "tomato"
// or "SkyBlue" and scales it to the RGB maximums.
func NamedToRGB(name string, opts ...Option) (RGB, error) {
	m, err := Resolve(opts...)
	if err != nil {
		return RGB{}, err
	}
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGB{}, &FormatError{Func: "NamedToRGB", Input: name, Reason: "unknown color name"}
	}
	return m.RGB.scale(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255), nil
}
