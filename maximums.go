package colorconv

import (
	"fmt"
	"math"
)

// RGBMax holds the maximum value of each RGB channel.
type RGBMax struct {
	R, G, B float64
}

// HSLMax holds the maximum value of each HSL channel. H is the value that
// corresponds to a full turn of the hue circle.
type HSLMax struct {
	H, S, L float64
}

// CMYKMax holds the maximum value of each CMYK channel.
type CMYKMax struct {
	C, M, Y, K float64
}

// Maximums groups the channel maximums of every color model.
type Maximums struct {
	RGB  RGBMax
	HSL  HSLMax
	CMYK CMYKMax
}

// Defaults returns the default maximums: RGB 255, HSL 360/100/100, CMYK 1.
func Defaults() Maximums {
	return Maximums{
		RGB:  RGBMax{R: 255, G: 255, B: 255},
		HSL:  HSLMax{H: 360, S: 100, L: 100},
		CMYK: CMYKMax{C: 1, M: 1, Y: 1, K: 1},
	}
}

// Option overrides part of the maximums used by a conversion.
// Options are applied in order on top of Defaults.
type Option func(*Maximums)

// Channel names a single channel maximum.
type Channel int

const (
	RGBRed Channel = iota
	RGBGreen
	RGBBlue
	HSLHue
	HSLSaturation
	HSLLightness
	CMYKCyan
	CMYKMagenta
	CMYKYellow
	CMYKKey
)

var channelNames = [...]string{
	"rgb.r", "rgb.g", "rgb.b",
	"hsl.h", "hsl.s", "hsl.l",
	"cmyk.c", "cmyk.m", "cmyk.y", "cmyk.k",
}

func (c Channel) String() string {
	if c >= 0 && int(c) < len(channelNames) {
		return channelNames[c]
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// field returns the maximum c refers to, or nil for an unknown channel.
func (m *Maximums) field(c Channel) *float64 {
	switch c {
	case RGBRed:
		return &m.RGB.R
	case RGBGreen:
		return &m.RGB.G
	case RGBBlue:
		return &m.RGB.B
	case HSLHue:
		return &m.HSL.H
	case HSLSaturation:
		return &m.HSL.S
	case HSLLightness:
		return &m.HSL.L
	case CMYKCyan:
		return &m.CMYK.C
	case CMYKMagenta:
		return &m.CMYK.M
	case CMYKYellow:
		return &m.CMYK.Y
	case CMYKKey:
		return &m.CMYK.K
	}
	return nil
}

// WithChannelMax sets the maximum of one channel and leaves every other
// channel as it is. Unknown channels are ignored.
func WithChannelMax(c Channel, v float64) Option {
	return func(dst *Maximums) {
		if f := dst.field(c); f != nil {
			*f = v
		}
	}
}

// WithRGBMax sets the maximums of all three RGB channels. A field left at
// zero is an explicit 0 and fails validation; use WithChannelMax to change
// a single channel.
func WithRGBMax(m RGBMax) Option {
	return func(dst *Maximums) {
		dst.RGB = m
	}
}

// WithHSLMax sets the maximums of all three HSL channels. As with WithRGBMax,
// every field must be set.
func WithHSLMax(m HSLMax) Option {
	return func(dst *Maximums) {
		dst.HSL = m
	}
}

// WithCMYKMax sets the maximums of all four CMYK channels. As with
// WithRGBMax, every field must be set.
func WithCMYKMax(m CMYKMax) Option {
	return func(dst *Maximums) {
		dst.CMYK = m
	}
}

// WithMaximums replaces every maximum at once.
func WithMaximums(m Maximums) Option {
	return func(dst *Maximums) {
		*dst = m
	}
}

// Resolve applies opts on top of Defaults and validates the result.
func Resolve(opts ...Option) (Maximums, error) {
	m := Defaults()
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	if err := m.Validate(); err != nil {
		return Maximums{}, err
	}
	return m, nil
}

// Validate reports a *MaximumError for the first channel whose maximum is not
// a finite positive number.
func (m Maximums) Validate() error {
	for c := RGBRed; c <= CMYKKey; c++ {
		if v := *m.field(c); !(v > 0) || math.IsInf(v, 1) {
			return &MaximumError{Channel: c.String(), Value: v}
		}
	}
	return nil
}

// normalize divides v by limit and checks that the result lies in [0, 1].
func normalize(fn, channel string, v, limit float64) (float64, error) {
	n := v / limit
	if math.IsNaN(n) || n < 0 || n > 1 {
		return 0, &RangeError{Func: fn, Channel: channel, Value: v, Max: limit}
	}
	return n, nil
}

func (m RGBMax) normalize(fn string, r, g, b float64) (float64, float64, float64, error) {
	rn, err := normalize(fn, "r", r, m.R)
	if err != nil {
		return 0, 0, 0, err
	}
	gn, err := normalize(fn, "g", g, m.G)
	if err != nil {
		return 0, 0, 0, err
	}
	bn, err := normalize(fn, "b", b, m.B)
	if err != nil {
		return 0, 0, 0, err
	}
	return rn, gn, bn, nil
}

func (m RGBMax) scale(r, g, b float64) RGB {
	return RGB{R: r * m.R, G: g * m.G, B: b * m.B}
}

// normalize maps h to degrees in [0, 360) and s, l to [0, 1].
// A hue equal to its maximum is the same angle as 0.
func (m HSLMax) normalize(fn string, h, s, l float64) (float64, float64, float64, error) {
	hn, err := normalize(fn, "h", h, m.H)
	if err != nil {
		return 0, 0, 0, err
	}
	sn, err := normalize(fn, "s", s, m.S)
	if err != nil {
		return 0, 0, 0, err
	}
	ln, err := normalize(fn, "l", l, m.L)
	if err != nil {
		return 0, 0, 0, err
	}
	deg := hn * 360
	if deg == 360 {
		deg = 0
	}
	return deg, sn, ln, nil
}

func (m HSLMax) scale(h, s, l float64) HSL {
	return HSL{H: h / 360 * m.H, S: s * m.S, L: l * m.L}
}

func (m CMYKMax) normalize(fn string, c, mg, y, k float64) (float64, float64, float64, float64, error) {
	cn, err := normalize(fn, "c", c, m.C)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	mn, err := normalize(fn, "m", mg, m.M)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	yn, err := normalize(fn, "y", y, m.Y)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	kn, err := normalize(fn, "k", k, m.K)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return cn, mn, yn, kn, nil
}

func (m CMYKMax) scale(c, mg, y, k float64) CMYK {
	return CMYK{C: c * m.C, M: mg * m.M, Y: y * m.Y, K: k * m.K}
}
