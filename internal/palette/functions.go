package palette

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/colorconv"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// resolveColor extracts a hex string from a cty.Value. Strings are returned
// as-is; objects (palette groups) yield their "color" key.
func resolveColor(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("color must not be null")
	}
	if val.Type() == cty.String {
		return val.AsString(), nil
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			colorVal := val.GetAttr("color")
			if colorVal.Type() == cty.String {
				return colorVal.AsString(), nil
			}
		}
		return "", fmt.Errorf("object has no 'color' attribute; reference a specific child or add a color attribute")
	}
	return "", fmt.Errorf("expected string or object with color attribute, got %s", val.Type().FriendlyName())
}

// parseColor resolves val and parses it onto the default 0-255 scale.
func parseColor(val cty.Value) (colorconv.RGB, error) {
	s, err := resolveColor(val)
	if err != nil {
		return colorconv.RGB{}, err
	}
	return colorconv.HexToRGB(s)
}

func number(v cty.Value) float64 {
	f, _ := v.AsBigFloat().Float64()
	return f
}

func numberParams(names ...string) []function.Parameter {
	params := make([]function.Parameter, len(names))
	for i, name := range names {
		params[i] = function.Parameter{Name: name, Type: cty.Number}
	}
	return params
}

// hexResult formats c, given on the scale of opt's RGB maximums, as a
// cty hex string.
func hexResult(c colorconv.RGB, opt colorconv.Option) (cty.Value, error) {
	h, err := colorconv.RGBToHex(c.R, c.G, c.B, opt)
	if err != nil {
		return cty.NilVal, err
	}
	return cty.StringVal(h), nil
}

// makeRGBFunc creates rgb(r, g, b), reading channels on the file's RGB scale.
func makeRGBFunc(opt colorconv.Option) function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from red, green and blue channels",
		Params:      numberParams("r", "g", "b"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return hexResult(colorconv.RGB{R: number(args[0]), G: number(args[1]), B: number(args[2])}, opt)
		},
	})
}

// makeHSLFunc creates hsl(h, s, l).
func makeHSLFunc(opt colorconv.Option) function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from hue, saturation and lightness",
		Params:      numberParams("h", "s", "l"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorconv.HSLToRGB(number(args[0]), number(args[1]), number(args[2]), opt)
			if err != nil {
				return cty.NilVal, err
			}
			return hexResult(c, opt)
		},
	})
}

// makeCMYKFunc creates cmyk(c, m, y, k).
func makeCMYKFunc(opt colorconv.Option) function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from cyan, magenta, yellow and key",
		Params:      numberParams("c", "m", "y", "k"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorconv.CMYKToRGB(number(args[0]), number(args[1]), number(args[2]), number(args[3]), opt)
			if err != nil {
				return cty.NilVal, err
			}
			return hexResult(c, opt)
		},
	})
}

// makeHexFunc creates hex(s), which validates s and returns it in canonical
// lowercase form.
func makeHexFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Validates and normalizes a hex color",
		Params:      []function.Parameter{{Name: "hex", Type: cty.String}},
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorconv.HexToRGB(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return hexResult(c, nil)
		},
	})
}

// makeNamedFunc creates named(name) for CSS color keywords.
func makeNamedFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Looks up a CSS color keyword",
		Params:      []function.Parameter{{Name: "name", Type: cty.String}},
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorconv.NamedToRGB(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return hexResult(c, nil)
		},
	})
}

// makeLightnessFunc creates lighten(color, amount) or darken(color, amount).
// color may be a hex string or a palette group with a color attribute.
func makeLightnessFunc(description string, adjust func(colorconv.RGB, float64, ...colorconv.Option) (colorconv.RGB, error)) function.Function {
	return function.New(&function.Spec{
		Description: description,
		Params: []function.Parameter{
			{Name: "color", Type: cty.DynamicPseudoType},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parseColor(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			adjusted, err := adjust(c, number(args[1]))
			if err != nil {
				return cty.NilVal, err
			}
			return hexResult(adjusted, nil)
		},
	})
}

// buildEvalContext exposes the palette built so far and the color functions.
// opt carries the file's maximums for functions that take channel values.
func buildEvalContext(root *Node, opt colorconv.Option) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": root.toCty(),
		},
		Functions: map[string]function.Function{
			"rgb":     makeRGBFunc(opt),
			"hsl":     makeHSLFunc(opt),
			"cmyk":    makeCMYKFunc(opt),
			"hex":     makeHexFunc(),
			"named":   makeNamedFunc(),
			"lighten": makeLightnessFunc("Raises the HSL lightness of a color by amount (0 to 1)", colorconv.Lighten),
			"darken":  makeLightnessFunc("Lowers the HSL lightness of a color by amount (0 to 1)", colorconv.Darken),
		},
	}
}
