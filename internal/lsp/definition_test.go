package lsp

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDefinition_PaletteBase(t *testing.T) {
	content := `palette {
  base = "#191724"
  bg   = palette.base
}
`
	result := Analyze("test.hcl", content)

	symRange, ok := result.Symbols["palette.base"]
	if !ok {
		t.Fatal("expected palette.base in symbol table")
	}

	// Line 2 is "  bg   = palette.base"; "palette.base" starts at character 9
	pos := protocol.Position{Line: 2, Character: 17} // on "base"
	uri := "file:///test.hcl"

	loc := definition(result, content, uri, pos)
	if loc == nil {
		t.Fatal("expected non-nil definition location for palette.base reference")
	}

	if loc.URI != protocol.DocumentUri(uri) {
		t.Errorf("URI = %q, want %q", loc.URI, uri)
	}

	if loc.Range != symRange {
		t.Errorf("Range = %v, want %v", loc.Range, symRange)
	}
	if loc.Range.Start.Line != 1 {
		t.Errorf("definition on line %d, want 1", loc.Range.Start.Line)
	}
}

func TestDefinition_NestedPalette(t *testing.T) {
	content := `palette {
  highlight {
    low  = "#21202e"
    high = "#524f67"
  }
  bg = palette.highlight.low
}
`
	result := Analyze("test.hcl", content)

	tests := []struct {
		name      string
		character uint32
		symbol    string
		wantLine  uint32
	}{
		{"leaf", 25, "palette.highlight.low", 2},
		{"group", 16, "palette.highlight", 1},
	}

	uri := "file:///test.hcl"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := definition(result, content, uri, protocol.Position{Line: 5, Character: tt.character})
			if loc == nil {
				t.Fatalf("expected definition for %s", tt.symbol)
			}
			if loc.Range != result.Symbols[tt.symbol] {
				t.Errorf("Range = %v, want %v", loc.Range, result.Symbols[tt.symbol])
			}
			if loc.Range.Start.Line != tt.wantLine {
				t.Errorf("definition on line %d, want %d", loc.Range.Start.Line, tt.wantLine)
			}
		})
	}
}

func TestDefinition_InsideFunctionCall(t *testing.T) {
	content := `palette {
  base = "#191724"
  soft = lighten(palette.base, 0.1)
}
`
	result := Analyze("test.hcl", content)

	// "palette.base" starts at character 17 on line 2
	loc := definition(result, content, "file:///test.hcl", protocol.Position{Line: 2, Character: 26})
	if loc == nil {
		t.Fatal("expected definition for reference inside lighten()")
	}
	if loc.Range.Start.Line != 1 {
		t.Errorf("definition on line %d, want 1", loc.Range.Start.Line)
	}
}

func TestDefinition_HexLiteral(t *testing.T) {
	content := `palette {
  base = "#191724"
}
`
	result := Analyze("test.hcl", content)

	pos := protocol.Position{Line: 1, Character: 12} // inside "#191724"
	loc := definition(result, content, "file:///test.hcl", pos)
	if loc != nil {
		t.Errorf("expected nil for hex literal, got %+v", loc)
	}
}

func TestDefinition_PlainText(t *testing.T) {
	content := `palette {
  base = "#191724"
  bg   = palette.base
}
`
	result := Analyze("test.hcl", content)

	pos := protocol.Position{Line: 0, Character: 2} // on "palette" keyword in block header
	loc := definition(result, content, "file:///test.hcl", pos)
	if loc != nil {
		t.Errorf("expected nil for plain text, got %+v", loc)
	}
}

func TestDefinition_UnknownSymbol(t *testing.T) {
	content := `palette {
  bg = palette.nope
}
`
	result := Analyze("test.hcl", content)

	loc := definition(result, content, "file:///test.hcl", protocol.Position{Line: 1, Character: 16})
	if loc != nil {
		t.Errorf("expected nil for undefined reference, got %+v", loc)
	}
}

func TestDefinition_NilResult(t *testing.T) {
	uri := "file:///test.hcl"
	pos := protocol.Position{Line: 0, Character: 0}

	loc := definition(nil, "", uri, pos)
	if loc != nil {
		t.Errorf("expected nil for nil result, got %+v", loc)
	}
}

func TestReferenceAt(t *testing.T) {
	content := `palette {
  soft = lighten(palette.highlight.low, 0.1)
}
`
	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		t.Fatal(diags.Error())
	}
	body := file.Body.(*hclsyntax.Body)

	tests := []struct {
		name      string
		character uint32
		want      string
	}{
		{"on root", 18, "palette"},
		{"on group", 27, "palette.highlight"},
		{"on leaf", 36, "palette.highlight.low"},
		{"on function name", 10, ""},
		{"on number", 41, ""},
		{"past end", 80, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := protocol.Position{Line: 1, Character: tt.character}
			if got := referenceAt(body, pos); got != tt.want {
				t.Errorf("referenceAt(%d) = %q, want %q", tt.character, got, tt.want)
			}
		})
	}
}
