package lsp

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorconv"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

// Indices into semanticTokenTypes.
const (
	tokKeyword uint32 = iota
	tokProperty
	tokVariable
	tokNamespace
	tokString
	tokFunction
	tokNumber
	tokComment
)

const modDeclaration uint32 = 1

// semanticTokenTypes is the legend advertised on initialize. Order matters.
var semanticTokenTypes = []string{
	"keyword",
	"property",
	"variable", // unused; keeps the indices stable for clients
	"namespace",
	"string",
	"function",
	"number",
	"comment",
}

var semanticTokenModifiers = []string{
	"declaration",
}

// SemanticToken is one token before delta encoding. Positions are 0-based.
type SemanticToken struct {
	Line      uint32
	StartChar uint32
	Length    uint32
	Type      uint32
	Modifiers uint32
}

// encodeTokens sorts tokens by position and packs them into the relative
// five-integer form the protocol expects.
func encodeTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	slices.SortFunc(tokens, func(a, b SemanticToken) int {
		if a.Line != b.Line {
			return int(a.Line) - int(b.Line)
		}
		return int(a.StartChar) - int(b.StartChar)
	})

	var prev SemanticToken
	for _, tok := range tokens {
		start := tok.StartChar
		if tok.Line == prev.Line {
			start -= prev.StartChar
		}
		data = append(data, tok.Line-prev.Line, start, tok.Length, tok.Type, tok.Modifiers)
		prev = tok
	}
	return data
}

// tokenizer walks a parsed body and collects tokens.
type tokenizer struct {
	tokens []SemanticToken
}

func (t *tokenizer) add(start hcl.Pos, length int, typ, mods uint32) {
	t.tokens = append(t.tokens, SemanticToken{
		Line:      uint32(start.Line - 1),
		StartChar: uint32(start.Column - 1),
		Length:    uint32(length),
		Type:      typ,
		Modifiers: mods,
	})
}

func (t *tokenizer) body(body *hclsyntax.Body) {
	for _, block := range body.Blocks {
		t.add(block.TypeRange.Start, len(block.Type), tokKeyword, 0)
		t.body(block.Body)
	}
	for name, attr := range body.Attributes {
		t.add(attr.NameRange.Start, len(name), tokProperty, modDeclaration)
		t.expr(attr.Expr)
	}
}

func (t *tokenizer) expr(expr hclsyntax.Expression) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		t.literal(e)
	case *hclsyntax.TemplateExpr:
		for _, part := range e.Parts {
			t.expr(part)
		}
	case *hclsyntax.UnaryOpExpr:
		t.expr(e.Val)
	case *hclsyntax.ScopeTraversalExpr:
		t.traversal(e.Traversal)
	case *hclsyntax.RelativeTraversalExpr:
		t.expr(e.Source)
	case *hclsyntax.FunctionCallExpr:
		t.add(e.NameRange.Start, len(e.Name), tokFunction, 0)
		for _, arg := range e.Args {
			t.expr(arg)
		}
	}
}

// literal marks numbers, and strings that read as hex colors.
func (t *tokenizer) literal(e *hclsyntax.LiteralValueExpr) {
	rng := e.SrcRange
	switch e.Val.Type() {
	case cty.Number:
		t.add(rng.Start, rng.End.Column-rng.Start.Column, tokNumber, 0)
	case cty.String:
		s := e.Val.AsString()
		if !strings.HasPrefix(s, "#") {
			return
		}
		if _, err := colorconv.HexToRGB(s); err == nil {
			t.add(rng.Start, len(s), tokString, 0)
		}
	}
}

// traversal marks references such as palette.accent.soft. Other roots are
// left to the client's own highlighting.
func (t *tokenizer) traversal(trav hcl.Traversal) {
	if len(trav) == 0 {
		return
	}
	root, ok := trav[0].(hcl.TraverseRoot)
	if !ok {
		return
	}
	if _, ok := referenceRoots[root.Name]; !ok {
		return
	}

	t.add(root.SrcRange.Start, len(root.Name), tokNamespace, 0)
	for _, step := range trav[1:] {
		if attr, ok := step.(hcl.TraverseAttr); ok {
			// SrcRange includes the leading dot
			t.add(hcl.Pos{Line: attr.SrcRange.Start.Line, Column: attr.SrcRange.End.Column - len(attr.Name)}, len(attr.Name), tokProperty, 0)
		}
	}
}

// comments marks every comment that fits on one line.
func (t *tokenizer) comments(src []byte) {
	lexed, _ := hclsyntax.LexConfig(src, "", hcl.Pos{Line: 1, Column: 1})
	for _, tok := range lexed {
		if tok.Type != hclsyntax.TokenComment {
			continue
		}
		text := strings.TrimRight(string(tok.Bytes), "\r\n")
		if strings.Contains(text, "\n") {
			continue
		}
		t.add(tok.Range.Start, utf8.RuneCountInString(text), tokComment, 0)
	}
}

// semanticTokensFull tokenizes a whole document. Documents that do not parse
// get no tokens.
func semanticTokensFull(content string) []uint32 {
	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return []uint32{}
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return []uint32{}
	}

	var t tokenizer
	t.body(body)
	t.comments([]byte(content))
	return encodeTokens(t.tokens)
}

func (s *Server) textDocumentSemanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokensFull(content)}, nil
}
