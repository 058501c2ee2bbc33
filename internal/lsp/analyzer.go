package lsp

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorconv"
	"github.com/jsvensson/colorconv/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

const diagSource = "colorconv"

// AnalysisResult holds all information produced by analyzing a palette file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	// Palette is nil when the document has syntax errors.
	Palette *palette.Palette
	// Previous is the last palette of the same document that did evaluate,
	// so completion keeps working while a reference is half typed.
	Previous *palette.Palette
	Symbols  map[string]protocol.Range // "palette.base", "palette.highlight.low" -> definition range
	Colors   []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color colorconv.RGB
	Kind  palette.Kind
}

// Maximums returns the scales declared by the document, or the defaults
// when it could not be evaluated.
func (r *AnalysisResult) Maximums() colorconv.Maximums {
	if r == nil || r.Palette == nil {
		return colorconv.Defaults()
	}
	return r.Palette.Maximums
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(pos.Line-1, 0)),
		Character: uint32(max(pos.Column-1, 0)),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze evaluates a palette document from memory and produces diagnostics,
// a symbol table and color locations. Every diagnostic is collected rather
// than stopping at the first.
func Analyze(filename, content string, opts ...colorconv.Option) *AnalysisResult {
	result := &AnalysisResult{
		Diagnostics: []protocol.Diagnostic{},
		Symbols:     make(map[string]protocol.Range),
	}

	p, diags := palette.Parse(filename, []byte(content), opts...)
	for _, d := range diags {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}
	if p == nil {
		return result
	}
	result.Palette = p

	for _, loc := range p.Colors {
		result.Colors = append(result.Colors, ColorLocation{
			Range: hclRangeToLSP(loc.Range),
			Color: loc.Color,
			Kind:  loc.Kind,
		})
	}

	result.collectSymbols(filename, content)
	return result
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

func strPtr(s string) *string {
	return &s
}

// collectSymbols records where every palette entry is defined. Groups point
// at their block header, colors at their attribute.
func (r *AnalysisResult) collectSymbols(filename, content string) {
	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return
	}
	for _, block := range body.Blocks {
		if block.Type == "palette" {
			r.collectBodySymbols(block.Body, "palette")
		}
	}
}

func (r *AnalysisResult) collectBodySymbols(body *hclsyntax.Body, prefix string) {
	for name, attr := range body.Attributes {
		if name == "color" {
			continue
		}
		r.Symbols[prefix+"."+name] = hclRangeToLSP(attr.SrcRange)
	}
	for _, block := range body.Blocks {
		name := prefix + "." + block.Type
		if _, ok := r.Symbols[name]; !ok {
			r.Symbols[name] = hclRangeToLSP(block.DefRange())
		}
		r.collectBodySymbols(block.Body, name)
	}
}
