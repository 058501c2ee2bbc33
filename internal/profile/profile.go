// Package profile loads channel maximums from HCL files.
//
// A profile sets any subset of channels; everything it leaves out keeps the
// colorconv defaults:
//
//	rgb {
//	  r = 1
//	  g = 1
//	  b = 1
//	}
//	cmyk {
//	  k = 100
//	}
package profile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorconv"
)

// RGBBlock holds optional RGB channel maximums.
type RGBBlock struct {
	R *float64 `hcl:"r,optional"`
	G *float64 `hcl:"g,optional"`
	B *float64 `hcl:"b,optional"`
}

// HSLBlock holds optional HSL channel maximums.
type HSLBlock struct {
	H *float64 `hcl:"h,optional"`
	S *float64 `hcl:"s,optional"`
	L *float64 `hcl:"l,optional"`
}

// CMYKBlock holds optional CMYK channel maximums.
type CMYKBlock struct {
	C *float64 `hcl:"c,optional"`
	M *float64 `hcl:"m,optional"`
	Y *float64 `hcl:"y,optional"`
	K *float64 `hcl:"k,optional"`
}

// Block is the body of a profile. Palette files embed the same schema in a
// maximums block.
type Block struct {
	RGB  *RGBBlock  `hcl:"rgb,block"`
	HSL  *HSLBlock  `hcl:"hsl,block"`
	CMYK *CMYKBlock `hcl:"cmyk,block"`
}

// Load reads and validates a profile file.
func Load(path string) (*Block, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(path, src)
}

// Parse decodes profile source. The maximums it sets must be finite and
// positive.
func Parse(filename string, src []byte) (*Block, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var b Block
	if diags := gohcl.DecodeBody(file.Body, nil, &b); diags.HasErrors() {
		return nil, fmt.Errorf("decoding profile: %s", diags.Error())
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &b, nil
}

// Validate checks the resulting maximums without converting anything.
func (b *Block) Validate() error {
	_, err := colorconv.Resolve(b.Option())
	return err
}

// Option returns a colorconv.Option that overrides exactly the channels set
// in b. A nil Block yields a no-op option.
func (b *Block) Option() colorconv.Option {
	set := b.channels()
	return func(m *colorconv.Maximums) {
		for c, v := range set {
			colorconv.WithChannelMax(c, v)(m)
		}
	}
}

// channels lists the channel maximums present in b.
func (b *Block) channels() map[colorconv.Channel]float64 {
	set := make(map[colorconv.Channel]float64)
	if b == nil {
		return set
	}
	add := func(c colorconv.Channel, v *float64) {
		if v != nil {
			set[c] = *v
		}
	}
	if b.RGB != nil {
		add(colorconv.RGBRed, b.RGB.R)
		add(colorconv.RGBGreen, b.RGB.G)
		add(colorconv.RGBBlue, b.RGB.B)
	}
	if b.HSL != nil {
		add(colorconv.HSLHue, b.HSL.H)
		add(colorconv.HSLSaturation, b.HSL.S)
		add(colorconv.HSLLightness, b.HSL.L)
	}
	if b.CMYK != nil {
		add(colorconv.CMYKCyan, b.CMYK.C)
		add(colorconv.CMYKMagenta, b.CMYK.M)
		add(colorconv.CMYKYellow, b.CMYK.Y)
		add(colorconv.CMYKKey, b.CMYK.K)
	}
	return set
}
