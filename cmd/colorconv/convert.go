package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/jsvensson/colorconv"
	"github.com/spf13/cobra"
)

// sourceModels maps each accepted input model to its number of values.
var sourceModels = map[string]int{
	"rgb":  3,
	"hsl":  3,
	"cmyk": 4,
	"hex":  1,
	"name": 1,
}

var targetModels = []string{"rgb", "hsl", "cmyk", "hex"}

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to> <values...>",
	Short: "Convert a color from one model to another",
	Long: `Convert a color from one model to another.

<from> is one of rgb, hsl, cmyk, hex or name; <to> is one of rgb, hsl, cmyk
or hex. Channel values are read and printed on the configured maximums.`,
	Example: `  colorconv convert rgb hsl 235 111 146
  colorconv convert hex cmyk '#eb6f92'
  colorconv convert name hex tomato
  colorconv convert --hsl-max 1 hsl rgb 0.5 1 0.5`,
	Args: cobra.MinimumNArgs(3),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	out, err := convert(args[0], args[1], args[2:], opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// convert reads values in the from model and writes them in the to model.
func convert(from, to string, values []string, opts ...colorconv.Option) (string, error) {
	n, ok := sourceModels[from]
	if !ok {
		return "", fmt.Errorf("unknown source model %q (want rgb, hsl, cmyk, hex or name)", from)
	}
	if !slices.Contains(targetModels, to) {
		return "", fmt.Errorf("unknown target model %q (want rgb, hsl, cmyk or hex)", to)
	}
	if len(values) != n {
		return "", fmt.Errorf("%s takes %d value(s), got %d", from, n, len(values))
	}

	switch {
	case from == "hsl" && to == "cmyk":
		v, err := parseNumbers(values)
		if err != nil {
			return "", err
		}
		c, err := colorconv.HSLToCMYK(v[0], v[1], v[2], opts...)
		if err != nil {
			return "", err
		}
		return c.String(), nil
	case from == "cmyk" && to == "hsl":
		v, err := parseNumbers(values)
		if err != nil {
			return "", err
		}
		c, err := colorconv.CMYKToHSL(v[0], v[1], v[2], v[3], opts...)
		if err != nil {
			return "", err
		}
		return c.String(), nil
	}

	c, err := toRGB(from, values, opts)
	if err != nil {
		return "", err
	}
	return fromRGB(to, c, opts)
}

// toRGB reads values in model onto the RGB maximums.
func toRGB(model string, values []string, opts []colorconv.Option) (colorconv.RGB, error) {
	switch model {
	case "hex":
		return colorconv.HexToRGB(values[0], opts...)
	case "name":
		return colorconv.NamedToRGB(values[0], opts...)
	}

	v, err := parseNumbers(values)
	if err != nil {
		return colorconv.RGB{}, err
	}
	switch model {
	case "hsl":
		return colorconv.HSLToRGB(v[0], v[1], v[2], opts...)
	case "cmyk":
		return colorconv.CMYKToRGB(v[0], v[1], v[2], v[3], opts...)
	default:
		return colorconv.RGB{R: v[0], G: v[1], B: v[2]}, nil
	}
}

// fromRGB writes c, given on the RGB maximums, in model.
func fromRGB(model string, c colorconv.RGB, opts []colorconv.Option) (string, error) {
	switch model {
	case "hsl":
		hsl, err := colorconv.RGBToHSL(c.R, c.G, c.B, opts...)
		if err != nil {
			return "", err
		}
		return hsl.String(), nil
	case "cmyk":
		cmyk, err := colorconv.RGBToCMYK(c.R, c.G, c.B, opts...)
		if err != nil {
			return "", err
		}
		return cmyk.String(), nil
	case "hex":
		return colorconv.RGBToHex(c.R, c.G, c.B, opts...)
	default:
		// range check only
		if _, err := colorconv.RGBToHex(c.R, c.G, c.B, opts...); err != nil {
			return "", err
		}
		return c.String(), nil
	}
}

func parseNumbers(values []string) ([]float64, error) {
	nums := make([]float64, len(values))
	for i, s := range values {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", s)
		}
		nums[i] = v
	}
	return nums, nil
}
