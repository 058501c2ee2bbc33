package colorconv

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// HexToRGB parses a color like "#eb6f92" or "EB6F92" and scales it to the
// RGB maximums.
func HexToRGB(hex string, opts ...Option) (RGB, error) {
	m, err := Resolve(opts...)
	if err != nil {
		return RGB{}, err
	}

	groups := hexPattern.FindStringSubmatch(hex)
	if groups == nil {
		return RGB{}, &FormatError{Func: "HexToRGB", Input: hex, Reason: "must be 6 hex digits with an optional leading #"}
	}

	var ch [3]float64
	for i, g := range groups[1:] {
		v, err := strconv.ParseUint(g, 16, 8)
		if err != nil {
			return RGB{}, &FormatError{Func: "HexToRGB", Input: hex, Reason: err.Error()}
		}
		ch[i] = float64(v) / 255
	}
	return m.RGB.scale(ch[0], ch[1], ch[2]), nil
}

// RGBToHex formats an RGB color as "#rrggbb". Channels are rounded to the
// nearest integer in [0, 255].
func RGBToHex(r, g, b float64, opts ...Option) (string, error) {
	m, err := Resolve(opts...)
	if err != nil {
		return "", err
	}
	rn, gn, bn, err := m.RGB.normalize("RGBToHex", r, g, b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", to8bit(rn), to8bit(gn), to8bit(bn)), nil
}

func to8bit(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
