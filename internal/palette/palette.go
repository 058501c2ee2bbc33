// Package palette evaluates HCL palette files. Entries are colors written as
// hex strings, color-model functions or references to earlier entries:
//
//	maximums {
//	  hsl {
//	    s = 1
//	    l = 1
//	  }
//	}
//
//	palette {
//	  base = "#191724"
//	  love = hsl(343, 0.76, 0.68)
//	  accent {
//	    color = rgb(235, 111, 146)
//	    soft  = lighten(palette.accent, 0.1)
//	  }
//	}
//
// Function arguments are read on the scale of the file's maximums block, which
// uses the same schema as a standalone profile.
package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorconv"
	"github.com/jsvensson/colorconv/internal/profile"
)

// Kind classifies the expression a color was written as.
type Kind int

const (
	// Literal is a quoted hex string.
	Literal Kind = iota
	// Call is a function call on literals only, such as hsl(343, 76, 68).
	Call
	// Computed is a reference to another entry, a call that takes one, or
	// any other expression.
	Computed
)

// Location records a resolved color at a source range.
type Location struct {
	Range hcl.Range
	Color colorconv.RGB
	Kind  Kind
}

// Palette is the evaluated content of a palette file.
type Palette struct {
	Root *Node
	// Maximums are the file's maximums merged over the caller's options.
	Maximums colorconv.Maximums
	// Colors lists every color expression in source order.
	Colors []Location
}

// rawFile is decoded first, without an EvalContext.
type rawFile struct {
	Maximums *profile.Block `hcl:"maximums,block"`
	Palette  *entriesBlock  `hcl:"palette,block"`
}

type entriesBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// Load reads and evaluates a palette file. opts apply before the file's own
// maximums block.
func Load(path string, opts ...colorconv.Option) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	p, diags := Parse(path, src, opts...)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing palette: %s", diags.Error())
	}
	return p, nil
}

// Parse evaluates palette source. It collects every diagnostic rather than
// stopping at the first, and returns a nil Palette only when the source
// cannot be parsed at all.
func Parse(filename string, src []byte, opts ...colorconv.Option) (*Palette, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "internal error: parsed body is not *hclsyntax.Body",
		}}
	}

	var raw rawFile
	diags = append(diags, gohcl.DecodeBody(file.Body, nil, &raw)...)

	p := &Palette{Root: &Node{}}

	resolveOpts := append(append([]colorconv.Option{}, opts...), raw.Maximums.Option())
	m, err := colorconv.Resolve(resolveOpts...)
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid maximums",
			Detail:   err.Error(),
			Subject:  blockRange(body, "maximums", filename).Ptr(),
		})
		m = colorconv.Defaults()
	}
	p.Maximums = m

	if raw.Palette == nil {
		if !diags.HasErrors() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing palette block",
				Detail:   "A palette file must contain a palette block.",
				Subject:  blockRange(body, "palette", filename).Ptr(),
			})
		}
		return p, diags
	}

	entries, ok := raw.Palette.Entries.(*hclsyntax.Body)
	if !ok {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "internal error: palette block is not an hclsyntax.Body",
		})
		return p, diags
	}

	e := &evaluator{palette: p, opt: colorconv.WithMaximums(m)}
	e.evalBody(entries, p.Root, "palette")
	diags = append(diags, e.diags...)

	return p, diags
}

// Lookup resolves a dotted path such as "accent.soft" or
// "palette.accent.soft".
func (p *Palette) Lookup(path string) (colorconv.RGB, error) {
	return p.Root.Lookup(splitPath(path))
}

// Entries lists every named color, sorted by name.
func (p *Palette) Entries() []Entry {
	return p.Root.Flatten()
}

type evaluator struct {
	palette *Palette
	opt     colorconv.Option
	diags   hcl.Diagnostics
}

// item is an attribute or block in source order.
type item struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

// evalBody evaluates items in source order so later entries can reference
// earlier ones.
func (e *evaluator) evalBody(body *hclsyntax.Body, node *Node, prefix string) {
	var items []item
	for _, attr := range body.Attributes {
		items = append(items, item{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, item{pos: block.DefRange().Start, block: block})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].pos.Byte < items[j].pos.Byte
	})

	for _, it := range items {
		if it.block != nil {
			e.evalBlock(it.block, node, prefix)
			continue
		}
		e.evalAttribute(it.attr, node, prefix)
	}
}

func (e *evaluator) evalBlock(block *hclsyntax.Block, node *Node, prefix string) {
	if len(block.Labels) > 0 {
		e.diags = append(e.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected block labels",
			Detail:   fmt.Sprintf("Palette group %s.%s does not take labels.", prefix, block.Type),
			Subject:  block.DefRange().Ptr(),
		})
		return
	}
	if existing, ok := node.Children[block.Type]; ok && existing.Children == nil {
		e.duplicate(prefix+"."+block.Type, block.DefRange())
		return
	}
	e.evalBody(block.Body, node.child(block.Type), prefix+"."+block.Type)
}

func (e *evaluator) evalAttribute(attr *hclsyntax.Attribute, node *Node, prefix string) {
	name := prefix + "." + attr.Name
	if attr.Name != "color" {
		if _, ok := node.Children[attr.Name]; ok {
			e.duplicate(name, attr.SrcRange)
			return
		}
	}

	ctx := buildEvalContext(e.palette.Root, e.opt)
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		e.diags = append(e.diags, diags...)
		return
	}

	c, err := parseColor(val)
	if err != nil {
		e.diags = append(e.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid color",
			Detail:   fmt.Sprintf("%s: %s", name, err),
			Subject:  attr.Expr.Range().Ptr(),
		})
		return
	}

	e.palette.Colors = append(e.palette.Colors, Location{
		Range: attr.Expr.Range(),
		Color: c,
		Kind:  kindOf(attr.Expr),
	})

	if attr.Name == "color" {
		node.Color = &c
		return
	}
	if node.Children == nil {
		node.Children = make(map[string]*Node)
	}
	node.Children[attr.Name] = &Node{Color: &c}
}

func (e *evaluator) duplicate(name string, rng hcl.Range) {
	e.diags = append(e.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Duplicate palette entry",
		Detail:   fmt.Sprintf("%s is already defined.", name),
		Subject:  rng.Ptr(),
	})
}

func kindOf(expr hclsyntax.Expression) Kind {
	switch expr := expr.(type) {
	case *hclsyntax.TemplateExpr:
		if expr.IsStringLiteral() {
			return Literal
		}
		return Computed
	case *hclsyntax.FunctionCallExpr:
		if len(expr.Variables()) > 0 {
			return Computed
		}
		return Call
	default:
		return Computed
	}
}

// blockRange returns the definition range of the first block of the given
// type, or the start of the file when there is none.
func blockRange(body *hclsyntax.Body, blockType, filename string) hcl.Range {
	for _, block := range body.Blocks {
		if block.Type == blockType {
			return block.DefRange()
		}
	}
	return hcl.Range{
		Filename: filename,
		Start:    hcl.Pos{Line: 1, Column: 1, Byte: 0},
		End:      hcl.Pos{Line: 1, Column: 1, Byte: 0},
	}
}
