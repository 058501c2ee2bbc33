package lsp

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/colorconv"
	"github.com/jsvensson/colorconv/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color on the default 0-255 scale to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c colorconv.RGB) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R / 255.0),
		Green: float32(c.G / 255.0),
		Blue:  float32(c.B / 255.0),
		Alpha: 1.0,
	}
}

// colorFromLSP quantizes a picker color to whole 0-255 channels so every
// notation describes the same hex value.
func colorFromLSP(c protocol.Color) colorconv.RGB {
	quantize := func(v float32) float64 {
		return math.Round(math.Min(math.Max(float64(v), 0), 1) * 255)
	}
	return colorconv.RGB{R: quantize(c.Red), G: quantize(c.Green), B: quantize(c.Blue)}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers the picked color as a hex literal and as rgb(),
// hsl() and cmyk() calls on the document's scales. The notation the range
// is already written in comes first. References and other computed
// expressions get no presentations so they are never replaced by a value.
func colorPresentation(result *AnalysisResult, content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	if result == nil {
		return []protocol.ColorPresentation{}
	}

	var loc *ColorLocation
	for i := range result.Colors {
		if result.Colors[i].Range == params.Range {
			loc = &result.Colors[i]
			break
		}
	}
	if loc == nil || loc.Kind == palette.Computed {
		return []protocol.ColorPresentation{}
	}

	n, err := palette.Notate(colorFromLSP(params.Color), result.Maximums())
	if err != nil {
		log.Errorf("color presentation: %s", err)
		return []protocol.ColorPresentation{}
	}

	options := []struct {
		model string
		text  string
	}{
		{"hex", fmt.Sprintf("%q", n.Hex)},
		{"rgb", n.RGB.String()},
		{"hsl", n.HSL.String()},
		{"cmyk", n.CMYK.String()},
	}

	current := "hex"
	text := extractText(content, params.Range)
	if name, _, ok := strings.Cut(text, "("); ok {
		current = strings.TrimSpace(name)
	}

	presentations := make([]protocol.ColorPresentation, 0, len(options))
	for _, opt := range options {
		p := protocol.ColorPresentation{
			Label: strings.Trim(opt.text, `"`),
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: opt.text,
			},
		}
		if opt.model == current {
			presentations = append([]protocol.ColorPresentation{p}, presentations...)
			continue
		}
		presentations = append(presentations, p)
	}
	return presentations
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(s.getResult(uri), content, params), nil
}
