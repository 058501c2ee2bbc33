package colorconv

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
)

var approx = cmpopts.EquateApprox(1e-6, 1e-9)

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    HSL
	}{
		{"black", 0, 0, 0, HSL{0, 0, 0}},
		{"white", 255, 255, 255, HSL{0, 0, 100}},
		{"red", 255, 0, 0, HSL{0, 100, 50}},
		{"green", 0, 255, 0, HSL{120, 100, 50}},
		{"blue", 0, 0, 255, HSL{240, 100, 50}},
		{"yellow", 255, 255, 0, HSL{60, 100, 50}},
		{"magenta", 255, 0, 255, HSL{300, 100, 50}},
		{"gray", 128, 128, 128, HSL{0, 0, 128.0 / 255 * 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RGBToHSL(tt.r, tt.g, tt.b)
			if err != nil {
				t.Fatalf("RGBToHSL(%v, %v, %v) error: %v", tt.r, tt.g, tt.b, err)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("RGBToHSL(%v, %v, %v) mismatch (-want +got):\n%s", tt.r, tt.g, tt.b, diff)
			}
		})
	}
}

func TestRGBToHSL_CustomMaximums(t *testing.T) {
	want, err := RGBToHSL(255, 255, 255)
	if err != nil {
		t.Fatal(err)
	}
	got, err := RGBToHSL(50, 50, 50, WithRGBMax(RGBMax{R: 50, G: 50, B: 50}))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("RGBToHSL with max 50 = %v, want %v", got, want)
	}

	got, err = RGBToHSL(1, 0, 0,
		WithRGBMax(RGBMax{R: 1, G: 1, B: 1}),
		WithHSLMax(HSLMax{H: 1, S: 1, L: 1}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(HSL{0, 1, 0.5}, got, approx); diff != "" {
		t.Errorf("unit maximums mismatch (-want +got):\n%s", diff)
	}
}

func TestRGBToHSL_OutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		channel string
	}{
		{"red too high", 300, 0, 0, "r"},
		{"green negative", 0, -1, 0, "g"},
		{"blue too high", 0, 0, 256, "b"},
		{"NaN", math.NaN(), 0, 0, "r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RGBToHSL(tt.r, tt.g, tt.b)
			if !errors.Is(err, ErrRange) {
				t.Fatalf("RGBToHSL(%v, %v, %v) error = %v, want ErrRange", tt.r, tt.g, tt.b, err)
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("error %T is not a *RangeError", err)
			}
			if rangeErr.Channel != tt.channel {
				t.Errorf("Channel = %q, want %q", rangeErr.Channel, tt.channel)
			}
			if rangeErr.Func != "RGBToHSL" {
				t.Errorf("Func = %q, want RGBToHSL", rangeErr.Func)
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 100, 50, RGB{255, 0, 0}},
		{"hue 360 is red", 360, 100, 50, RGB{255, 0, 0}},
		{"yellow", 60, 100, 50, RGB{255, 255, 0}},
		{"green", 120, 100, 50, RGB{0, 255, 0}},
		{"cyan", 180, 100, 50, RGB{0, 255, 255}},
		{"blue", 240, 100, 50, RGB{0, 0, 255}},
		{"magenta", 300, 100, 50, RGB{255, 0, 255}},
		{"black", 0, 0, 0, RGB{0, 0, 0}},
		{"white", 0, 0, 100, RGB{255, 255, 255}},
		{"gray", 200, 0, 50, RGB{127.5, 127.5, 127.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HSLToRGB(tt.h, tt.s, tt.l)
			if err != nil {
				t.Fatalf("HSLToRGB(%v, %v, %v) error: %v", tt.h, tt.s, tt.l, err)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("HSLToRGB(%v, %v, %v) mismatch (-want +got):\n%s", tt.h, tt.s, tt.l, diff)
			}
		})
	}
}

func TestHSLToRGB_OutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		channel string
	}{
		{"hue past a full turn", 361, 50, 50, "h"},
		{"negative hue", -1, 50, 50, "h"},
		{"saturation too high", 0, 101, 50, "s"},
		{"lightness negative", 0, 50, -0.5, "l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HSLToRGB(tt.h, tt.s, tt.l)
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("HSLToRGB(%v, %v, %v) error = %v, want *RangeError", tt.h, tt.s, tt.l, err)
			}
			if rangeErr.Channel != tt.channel {
				t.Errorf("Channel = %q, want %q", rangeErr.Channel, tt.channel)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	maximums := []Maximums{
		Defaults(),
		{
			RGB:  RGBMax{R: 1, G: 1, B: 1},
			HSL:  HSLMax{H: 1, S: 1, L: 1},
			CMYK: CMYKMax{C: 1, M: 1, Y: 1, K: 1},
		},
		{
			RGB:  RGBMax{R: 65535, G: 1023, B: 7},
			HSL:  HSLMax{H: 400, S: 240, L: 240},
			CMYK: CMYKMax{C: 100, M: 100, Y: 100, K: 100},
		},
	}

	for _, m := range maximums {
		for range 1000 {
			in := RGB{
				R: rng.Float64() * m.RGB.R,
				G: rng.Float64() * m.RGB.G,
				B: rng.Float64() * m.RGB.B,
			}
			hsl, err := RGBToHSL(in.R, in.G, in.B, WithMaximums(m))
			if err != nil {
				t.Fatalf("RGBToHSL(%v) error: %v", in, err)
			}
			out, err := HSLToRGB(hsl.H, hsl.S, hsl.L, WithMaximums(m))
			if err != nil {
				t.Fatalf("HSLToRGB(%v) error: %v", hsl, err)
			}
			if diff := cmp.Diff(in, out, approx); diff != "" {
				t.Fatalf("round trip through %v mismatch (-in +out):\n%s", hsl, diff)
			}
		}
	}
}

func TestRGBToHSL_MatchesColorful(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		col := colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
		wantH, wantS, wantL := col.Hsl()

		got, err := RGBToHSL(col.R, col.G, col.B, WithRGBMax(RGBMax{R: 1, G: 1, B: 1}))
		if err != nil {
			t.Fatalf("RGBToHSL(%v) error: %v", col, err)
		}
		if d := hueDistance(got.H, wantH); d > 1e-9 {
			t.Errorf("hue for %v = %v, want %v", col, got.H, wantH)
		}
		if math.Abs(got.S/100-wantS) > 1e-9 || math.Abs(got.L/100-wantL) > 1e-9 {
			t.Errorf("s, l for %v = %v, %v, want %v, %v", col, got.S/100, got.L/100, wantS, wantL)
		}
	}
}

func TestHSLToRGB_MatchesColorful(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 1000 {
		h, s, l := rng.Float64()*360, rng.Float64(), rng.Float64()
		want := colorful.Hsl(h, s, l)

		got, err := HSLToRGB(h, s*100, l*100)
		if err != nil {
			t.Fatalf("HSLToRGB(%v, %v, %v) error: %v", h, s, l, err)
		}
		if diff := cmp.Diff(RGB{want.R * 255, want.G * 255, want.B * 255}, got, approx); diff != "" {
			t.Errorf("HSLToRGB(%v, %v, %v) mismatch (-colorful +got):\n%s", h, s, l, diff)
		}
	}
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}
