package lsp

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorconv"
	"github.com/jsvensson/colorconv/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext is the kind of block the cursor is in.
type blockContext int

const (
	contextRoot     blockContext = iota
	contextMaximums              // maximums {}
	contextModel                 // maximums { rgb {} } and friends
	contextPalette               // palette {} or one of its groups
	contextUnknown
)

var topLevelBlocks = []string{"maximums", "palette"}

// modelChannels lists the channels of each maximums model block in order.
var modelChannels = map[string][]string{
	"rgb":  {"r", "g", "b"},
	"hsl":  {"h", "s", "l"},
	"cmyk": {"c", "m", "y", "k"},
}

// paletteFunctions are offered at value positions inside palette blocks.
var paletteFunctions = []struct {
	name    string
	detail  string
	snippet string
}{
	{"rgb", "rgb(r, g, b)", "rgb(${1:r}, ${2:g}, ${3:b})"},
	{"hsl", "hsl(h, s, l)", "hsl(${1:h}, ${2:s}, ${3:l})"},
	{"cmyk", "cmyk(c, m, y, k)", "cmyk(${1:c}, ${2:m}, ${3:y}, ${4:k})"},
	{"hex", "hex(color)", "hex(${1:\"#000000\"})"},
	{"named", "named(name)", "named(${1:\"tomato\"})"},
	{"lighten", "lighten(color, amount)", "lighten(${1:color}, ${2:0.1})"},
	{"darken", "darken(color, amount)", "darken(${1:color}, ${2:0.1})"},
}

// scope is the block nesting at a line, found by counting braces so it works
// on documents that do not parse.
type scope struct {
	path  []string // block types, outermost first
	start int      // line that opened the innermost block, -1 at the root
}

func scopeAt(lines []string, line int) scope {
	var path []string
	var starts []int
	for i := 0; i <= line; i++ {
		text := strings.TrimSpace(lines[i])
		name := blockName(text)
		for range strings.Count(text, "{") {
			path = append(path, name)
			starts = append(starts, i)
		}
		for range strings.Count(text, "}") {
			if len(path) > 0 {
				path = path[:len(path)-1]
				starts = starts[:len(starts)-1]
			}
		}
	}

	s := scope{path: path, start: -1}
	if len(starts) > 0 {
		s.start = starts[len(starts)-1]
	}
	return s
}

// blockName is the first word of a line that opens a block.
func blockName(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSuffix(fields[0], "{")
}

// context classifies the scope. For contextModel it also returns the model.
func (s scope) context() (blockContext, string) {
	if len(s.path) == 0 {
		return contextRoot, ""
	}
	switch s.path[0] {
	case "palette":
		return contextPalette, ""
	case "maximums":
		switch len(s.path) {
		case 1:
			return contextMaximums, ""
		case 2:
			if _, ok := modelChannels[s.path[1]]; ok {
				return contextModel, s.path[1]
			}
		}
	}
	return contextUnknown, ""
}

// members returns the attributes and blocks declared directly inside the
// innermost block, anywhere in it.
func (s scope) members(lines []string) (attrs, blocks map[string]bool) {
	attrs = make(map[string]bool)
	blocks = make(map[string]bool)

	depth := 0
	for i := s.start + 1; i < len(lines); i++ {
		text := strings.TrimSpace(lines[i])
		if depth == 0 {
			if name, _, ok := strings.Cut(text, "="); ok && hclsyntax.ValidIdentifier(strings.TrimSpace(name)) {
				attrs[strings.TrimSpace(name)] = true
			}
			if strings.Contains(text, "{") {
				blocks[blockName(text)] = true
			}
		}
		depth += strings.Count(text, "{") - strings.Count(text, "}")
		if depth < 0 {
			break
		}
	}
	return attrs, blocks
}

// complete produces completion items for the cursor at pos.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}
	line := lines[pos.Line]
	before := line[:min(int(pos.Character), len(line))]

	s := scopeAt(lines, int(pos.Line))
	ctx, model := s.context()

	switch ctx {
	case contextRoot:
		return blockSnippets(topLevelBlocks, nil, protocol.CompletionItemKindSnippet)
	case contextMaximums:
		_, declared := s.members(lines)
		return blockSnippets([]string{"rgb", "hsl", "cmyk"}, declared, protocol.CompletionItemKindModule)
	case contextModel:
		if isValuePosition(before) {
			return nil
		}
		set, _ := s.members(lines)
		return channelCompletions(model, set)
	case contextPalette:
		if p := result.lastPalette(); p != nil {
			if items := referenceCompletions(p, before); items != nil {
				return items
			}
		}
		if isValuePosition(before) {
			return valueCompletions()
		}
	}
	return nil
}

// lastPalette is the current palette, or the last one that evaluated while
// the document is broken.
func (r *AnalysisResult) lastPalette() *palette.Palette {
	if r == nil {
		return nil
	}
	if r.Palette != nil {
		return r.Palette
	}
	return r.Previous
}

// referenceCompletions offers the entries under the palette path the cursor
// is typing. The last segment is partial and left to the client to filter.
func referenceCompletions(p *palette.Palette, before string) []protocol.CompletionItem {
	idx := strings.LastIndex(before, "palette.")
	if idx < 0 {
		return nil
	}

	segments := strings.Split(before[idx+len("palette."):], ".")
	node := p.Root
	for _, seg := range segments[:len(segments)-1] {
		node = node.Children[seg]
		if node == nil {
			return nil
		}
	}
	if len(node.Children) == 0 {
		return nil
	}

	items := make([]protocol.CompletionItem, 0, len(node.Children))
	for _, name := range slices.Sorted(maps.Keys(node.Children)) {
		child := node.Children[name]
		item := protocol.CompletionItem{
			Label: name,
			Kind:  completionKindPtr(protocol.CompletionItemKindColor),
		}
		switch {
		case child.Color != nil:
			item.Detail = strPtr(palette.Hex(*child.Color))
		case len(child.Children) > 0:
			item.Kind = completionKindPtr(protocol.CompletionItemKindModule)
			item.Detail = strPtr("color group")
		}
		items = append(items, item)
	}
	return items
}

// isValuePosition reports whether the cursor sits right after an "=".
func isValuePosition(before string) bool {
	idx := strings.LastIndex(before, "=")
	return idx >= 0 && strings.TrimSpace(before[idx+1:]) == ""
}

// valueCompletions offers the palette functions and the palette namespace.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	items := make([]protocol.CompletionItem, 0, len(paletteFunctions)+1)
	for _, fn := range paletteFunctions {
		items = append(items, protocol.CompletionItem{
			Label:            fn.name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(fn.detail),
			InsertText:       strPtr(fn.snippet),
			InsertTextFormat: &snippetFormat,
		})
	}
	return append(items, protocol.CompletionItem{
		Label:      "palette",
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("palette reference"),
		InsertText: strPtr("palette."),
	})
}

// blockSnippets offers a block snippet for each name not in skip.
func blockSnippets(names []string, skip map[string]bool, kind protocol.CompletionItemKind) []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	var items []protocol.CompletionItem
	for _, name := range names {
		if skip[name] {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(kind),
			InsertText:       strPtr(name + " {\n  $0\n}"),
			InsertTextFormat: &snippetFormat,
		})
	}
	return items
}

// channelCompletions offers the channels of model not in set, with their
// default maximum as detail.
func channelCompletions(model string, set map[string]bool) []protocol.CompletionItem {
	defaults := channelDefaults(model)

	var items []protocol.CompletionItem
	for i, name := range modelChannels[model] {
		if set[name] {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   completionKindPtr(protocol.CompletionItemKindProperty),
			Detail: strPtr(fmt.Sprintf("default %g", defaults[i])),
		})
	}
	return items
}

// channelDefaults returns the default maximums of model in channel order.
func channelDefaults(model string) []float64 {
	d := colorconv.Defaults()
	switch model {
	case "rgb":
		return []float64{d.RGB.R, d.RGB.G, d.RGB.B}
	case "hsl":
		return []float64{d.HSL.H, d.HSL.S, d.HSL.L}
	case "cmyk":
		return []float64{d.CMYK.C, d.CMYK.M, d.CMYK.Y, d.CMYK.K}
	}
	return nil
}

func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}
	return complete(result, content, params.Position), nil
}
