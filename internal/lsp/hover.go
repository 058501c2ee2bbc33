package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorconv/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange reports whether pos lies in the half-open range r.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	return !before(pos, r.Start) && before(pos, r.End)
}

func before(a, b protocol.Position) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Character < b.Character)
}

// extractText returns the source text covered by r. Characters past the end
// of a line are clamped to it.
func extractText(content string, r protocol.Range) string {
	start, ok := offsetOf(content, r.Start)
	if !ok {
		return ""
	}
	end, _ := offsetOf(content, r.End)
	if end < start {
		return ""
	}
	return content[start:end]
}

// offsetOf maps pos to a byte offset in content. ok is false when the line
// does not exist.
func offsetOf(content string, pos protocol.Position) (int, bool) {
	off := 0
	for range pos.Line {
		i := strings.IndexByte(content[off:], '\n')
		if i < 0 {
			return len(content), false
		}
		off += i + 1
	}
	lineLen := strings.IndexByte(content[off:], '\n')
	if lineLen < 0 {
		lineLen = len(content) - off
	}
	return off + min(int(pos.Character), lineLen), true
}

// hover shows the color under pos in every model, on the document's
// maximums. Computed colors are headed by their source expression.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		n, err := palette.Notate(cl.Color, result.Maximums())
		if err != nil {
			log.Errorf("hover: %s", err)
			return nil
		}

		md := fmt.Sprintf("`%s` \u00b7 `%s` \u00b7 `%s` \u00b7 `%s`", n.Hex, n.RGB, n.HSL, n.CMYK)
		if cl.Kind == palette.Computed {
			md = fmt.Sprintf("**%s**\n\n", extractText(content, cl.Range)) + md
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md,
			},
			Range: &cl.Range,
		}
	}

	return nil
}

func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}
