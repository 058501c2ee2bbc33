package lsp

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// referenceRoots are the variables an expression can traverse from.
var referenceRoots = map[string]struct{}{
	"palette": {},
}

// referenceAt finds the reference expression under pos and returns its path
// up to and including the segment the cursor is on. On "highlight" in
// palette.highlight.low it returns "palette.highlight".
func referenceAt(body *hclsyntax.Body, pos protocol.Position) string {
	var ref string
	hclsyntax.VisitAll(body, func(node hclsyntax.Node) hcl.Diagnostics {
		expr, ok := node.(*hclsyntax.ScopeTraversalExpr)
		if !ok || ref != "" || !posInRange(pos, hclRangeToLSP(expr.SrcRange)) {
			return nil
		}
		ref = traversalPrefix(expr.Traversal, pos)
		return nil
	})
	return ref
}

func traversalPrefix(trav hcl.Traversal, pos protocol.Position) string {
	if len(trav) == 0 {
		return ""
	}
	root, ok := trav[0].(hcl.TraverseRoot)
	if !ok {
		return ""
	}
	if _, ok := referenceRoots[root.Name]; !ok {
		return ""
	}

	parts := []string{root.Name}
	if posInRange(pos, hclRangeToLSP(root.SrcRange)) {
		return root.Name
	}
	for _, step := range trav[1:] {
		attr, ok := step.(hcl.TraverseAttr)
		if !ok {
			break
		}
		parts = append(parts, attr.Name)
		if posInRange(pos, hclRangeToLSP(attr.SrcRange)) {
			break
		}
	}
	return strings.Join(parts, ".")
}

// definition resolves the palette reference under pos to where that entry
// is declared.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil
	}

	rng, ok := result.Symbols[referenceAt(body, pos)]
	if !ok {
		return nil
	}
	return &protocol.Location{URI: protocol.DocumentUri(uri), Range: rng}
}

func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	if loc := definition(result, content, uri, params.Position); loc != nil {
		return loc, nil
	}
	return nil, nil
}
