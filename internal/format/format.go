package format

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/colorconv"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// channelOrder is the canonical attribute order inside maximums blocks.
var channelOrder = map[string][]string{
	"rgb":  {"r", "g", "b"},
	"hsl":  {"h", "s", "l"},
	"cmyk": {"c", "m", "y", "k"},
}

// Format takes HCL source content and returns it formatted according to
// HCL canonical style rules. It uses hclwrite.Format which handles
// indentation, spacing, and newline normalization. On top of that it
// lowercases "#RRGGBB" string literals and sorts the channels of maximums
// blocks.
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing.
func Format(content string) (string, error) {
	src := canonicalHex([]byte(content))
	src = sortChannels(src)

	formatted := hclwrite.Format(src)
	// Collapse multiple consecutive blank lines into a single blank line.
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	// Remove blank lines immediately after opening braces.
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	// Remove blank lines immediately before closing braces.
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

// canonicalHex rewrites every quoted string that is exactly a hex color
// into its lowercase "#rrggbb" form. Tokens the lexer cannot make sense of
// are left alone.
func canonicalHex(src []byte) []byte {
	tokens, _ := hclsyntax.LexConfig(src, "", hcl.Pos{Line: 1, Column: 1})

	var b strings.Builder
	last := 0
	for i, tok := range tokens {
		if tok.Type != hclsyntax.TokenQuotedLit || i == 0 || i+1 >= len(tokens) {
			continue
		}
		if tokens[i-1].Type != hclsyntax.TokenOQuote || tokens[i+1].Type != hclsyntax.TokenCQuote {
			continue
		}
		lit := string(tok.Bytes)
		if !strings.HasPrefix(lit, "#") {
			continue
		}
		c, err := colorconv.HexToRGB(lit)
		if err != nil {
			continue
		}
		hex, err := colorconv.RGBToHex(c.R, c.G, c.B)
		if err != nil || hex == lit {
			continue
		}
		b.Write(src[last:tok.Range.Start.Byte])
		b.WriteString(hex)
		last = tok.Range.End.Byte
	}
	if last == 0 {
		return src
	}
	b.Write(src[last:])
	return []byte(b.String())
}

// sortChannels puts the attributes of maximums.rgb, maximums.hsl and
// maximums.cmyk in channel order. Comments attached to an attribute travel
// with it. Source that does not parse is returned unchanged.
func sortChannels(src []byte) []byte {
	f, diags := hclwrite.ParseConfig(src, "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return src
	}

	changed := false
	for _, block := range f.Body().Blocks() {
		if block.Type() != "maximums" {
			continue
		}
		for _, model := range block.Body().Blocks() {
			order, ok := channelOrder[model.Type()]
			if !ok {
				continue
			}
			if sortBody(model.Body(), order) {
				changed = true
			}
		}
	}
	if !changed {
		return src
	}
	return f.Bytes()
}

// sortBody rebuilds body with its attributes in order. Bodies holding
// nested blocks or unknown attributes are skipped.
func sortBody(body *hclwrite.Body, order []string) bool {
	if len(body.Blocks()) > 0 {
		return false
	}
	attrs := body.Attributes()
	if len(attrs) < 2 {
		return false
	}
	known := 0
	for _, name := range order {
		if _, ok := attrs[name]; ok {
			known++
		}
	}
	if known != len(attrs) {
		return false
	}

	var sorted hclwrite.Tokens
	for _, name := range order {
		attr, ok := attrs[name]
		if !ok {
			continue
		}
		sorted = attr.BuildTokens(sorted)
		body.RemoveAttribute(name)
	}
	body.AppendUnstructuredTokens(sorted)
	return true
}
