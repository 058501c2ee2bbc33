package lsp

import (
	"strings"

	"github.com/jsvensson/colorconv/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatting returns the edits that bring content to canonical style: a
// single whole-document replacement, or no edits when it is already
// formatted.
func formatting(content string) ([]protocol.TextEdit, error) {
	formatted, err := format.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{{
		Range:   fullRange(content),
		NewText: formatted,
	}}, nil
}

// fullRange spans the whole document.
func fullRange(content string) protocol.Range {
	lines := strings.Split(content, "\n")
	last := lines[len(lines)-1]
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: uint32(len(lines) - 1), Character: uint32(len(last))},
	}
}

// textDocumentFormatting handles textDocument/formatting requests.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return formatting(content)
}
