package lsp

import (
	"reflect"
	"testing"
)

func TestEncodeTokens_Empty(t *testing.T) {
	result := encodeTokens([]SemanticToken{})
	expected := []uint32{}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens([]) = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_SingleToken(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 2, StartChar: 5, Length: 7, Type: 0, Modifiers: 0},
	}
	result := encodeTokens(tokens)
	expected := []uint32{2, 5, 7, 0, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_MultipleTokensSameLine(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 7, Type: 0, Modifiers: 0}, // "palette"
		{Line: 0, StartChar: 8, Length: 4, Type: 1, Modifiers: 1}, // "base"
	}
	result := encodeTokens(tokens)
	// Second token: deltaLine=0, deltaStart=8-0=8
	expected := []uint32{0, 0, 7, 0, 0, 0, 8, 4, 1, 1}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_MultipleTokensDifferentLines(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 7, Type: 0, Modifiers: 0}, // line 0
		{Line: 2, StartChar: 2, Length: 4, Type: 1, Modifiers: 0}, // line 2
	}
	result := encodeTokens(tokens)
	// Second token: deltaLine=2-0=2, deltaStart=2 (new line, not relative)
	expected := []uint32{0, 0, 7, 0, 0, 2, 2, 4, 1, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_SortsTokens(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 1, StartChar: 0, Length: 4, Type: 1, Modifiers: 0},
		{Line: 0, StartChar: 0, Length: 7, Type: 0, Modifiers: 0},
	}
	result := encodeTokens(tokens)
	expected := []uint32{0, 0, 7, 0, 0, 1, 0, 4, 1, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestSemanticTokensFull_Empty(t *testing.T) {
	result := semanticTokensFull("")
	if len(result) != 0 {
		t.Errorf("semanticTokensFull(\"\") = %v, want empty", result)
	}
}

func TestSemanticTokensFull_SimplePalette(t *testing.T) {
	content := `palette {
  base = "#191724"
}`
	result := semanticTokensFull(content)

	// palette (keyword), base (property, declaration), "#191724" (string)
	expected := []uint32{
		0, 0, 7, 0, 0,
		1, 2, 4, 1, 1,
		0, 8, 7, 4, 0,
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("semanticTokensFull() = %v, want %v", result, expected)
	}
}

func TestSemanticTokensFull_Counts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		tokens  int
	}{
		{
			// palette, base, string, bg, palette(namespace), base
			name: "reference",
			content: `palette {
  base = "#191724"
  bg   = palette.base
}`,
			tokens: 6,
		},
		{
			// palette, base, string, soft, lighten, palette(namespace), base, 0.1
			name: "function call",
			content: `palette {
  base = "#191724"
  soft = lighten(palette.base, 0.1)
}`,
			tokens: 8,
		},
		{
			// palette, red, hsl, 0, 100, 50
			name: "numeric arguments",
			content: `palette {
  red = hsl(0, 100, 50)
}`,
			tokens: 6,
		},
		{
			// comment, palette, base, string, comment
			name: "comments",
			content: `# night colors
palette {
  base = "#191724" # background
}`,
			tokens: 5,
		},
		{
			// palette, name, named
			name: "non-hex string",
			content: `palette {
  sky = named("skyblue")
}`,
			tokens: 3,
		},
		{
			// maximums, hsl, s, 1, l, 1
			name: "maximums block",
			content: `maximums {
  hsl {
    s = 1
    l = 1
  }
}`,
			tokens: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := semanticTokensFull(tt.content)
			if len(result) != tt.tokens*5 {
				t.Errorf("semanticTokensFull() returned %d integers, want %d", len(result), tt.tokens*5)
			}
		})
	}
}

func TestSemanticTokensFull_ParseError(t *testing.T) {
	result := semanticTokensFull(`palette {`)
	if len(result) != 0 {
		t.Errorf("semanticTokensFull(parse error) = %v, want empty", result)
	}
}
