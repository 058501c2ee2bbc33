package lsp

import (
	"slices"
	"sort"
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// paletteForCompletion is a valid palette file used to produce an
// AnalysisResult for completion tests.
const paletteForCompletion = `
maximums {
  rgb {
    r = 1
  }
}

palette {
  base = "#191724"
  love = "#eb6f92"

  highlight {
    color = "#524f67"
    low   = "#21202e"
  }
}
`

func completionLabels(items []protocol.CompletionItem) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	sort.Strings(labels)
	return labels
}

func hasLabel(items []protocol.CompletionItem, label string) bool {
	for _, item := range items {
		if item.Label == label {
			return true
		}
	}
	return false
}

// splitCursor removes the "|" marker from src and returns the cursor
// position it marked.
func splitCursor(t *testing.T, src string) (string, protocol.Position) {
	t.Helper()
	lines := splitLines(src)
	for i, line := range lines {
		if idx := strings.Index(line, "|"); idx >= 0 {
			lines[i] = line[:idx] + line[idx+1:]
			return strings.Join(lines, "\n"), protocol.Position{Line: uint32(i), Character: uint32(idx)}
		}
	}
	t.Fatal("no cursor marker in source")
	return "", protocol.Position{}
}

func TestCompletion(t *testing.T) {
	result := Analyze("test.hcl", paletteForCompletion)
	if result.Palette == nil {
		t.Fatalf("expected palette from analysis, got diagnostics %v", result.Diagnostics)
	}

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "top-level blocks",
			src:  "maximums {\n}\n|\npalette {\n}\n",
			want: []string{"maximums", "palette"},
		},
		{
			name: "palette children",
			src:  "palette {\n  base = \"#191724\"\n  x = palette.|\n}\n",
			want: []string{"base", "highlight", "love"},
		},
		{
			name: "palette partial name",
			src:  "palette {\n  x = palette.lo|\n}\n",
			want: []string{"base", "highlight", "love"},
		},
		{
			name: "nested group children",
			src:  "palette {\n  x = palette.highlight.|\n}\n",
			want: []string{"low"},
		},
		{
			name: "inside function call",
			src:  "palette {\n  x = lighten(palette.highlight.|\n}\n",
			want: []string{"low"},
		},
		{
			name: "value position",
			src:  "palette {\n  x = |\n}\n",
			want: []string{"cmyk", "darken", "hex", "hsl", "lighten", "named", "palette", "rgb"},
		},
		{
			name: "attribute name position",
			src:  "palette {\n  |\n}\n",
			want: []string{},
		},
		{
			name: "maximums models not yet declared",
			src:  "maximums {\n  rgb {\n    r = 1\n  }\n  |\n}\n",
			want: []string{"cmyk", "hsl"},
		},
		{
			name: "model channels not yet set",
			src:  "maximums {\n  rgb {\n    r = 1\n    |\n  }\n}\n",
			want: []string{"b", "g"},
		},
		{
			name: "model channel value",
			src:  "maximums {\n  hsl {\n    h = |\n  }\n}\n",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, pos := splitCursor(t, tt.src)
			got := completionLabels(complete(result, content, pos))
			if !slices.Equal(got, tt.want) {
				t.Errorf("labels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletion_Details(t *testing.T) {
	result := Analyze("test.hcl", paletteForCompletion)

	content, pos := splitCursor(t, "palette {\n  x = palette.|\n}\n")
	for _, item := range complete(result, content, pos) {
		if item.Label == "base" && (item.Detail == nil || *item.Detail != "#191724") {
			t.Errorf("base detail = %v, want #191724", item.Detail)
		}
	}

	content, pos = splitCursor(t, "maximums {\n  cmyk {\n    |\n  }\n}\n")
	items := complete(result, content, pos)
	if len(items) != 4 {
		t.Fatalf("expected 4 cmyk channels, got %v", completionLabels(items))
	}
	for _, item := range items {
		if item.Detail == nil || *item.Detail != "default 1" {
			t.Errorf("%s detail = %v, want default 1", item.Label, item.Detail)
		}
	}
}

func TestCompletion_ColorIsNotSuggested(t *testing.T) {
	result := Analyze("test.hcl", paletteForCompletion)

	content, pos := splitCursor(t, "palette {\n  x = palette.highlight.|\n}\n")
	if hasLabel(complete(result, content, pos), "color") {
		t.Error("should not suggest reserved keyword 'color' as palette completion")
	}
}

func TestCompletion_PaletteWithSyntaxError(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///palette.hcl"
	store.Open(uri, paletteForCompletion)

	broken := strings.Replace(paletteForCompletion, "  love = \"#eb6f92\"\n", "  love = \"#eb6f92\"\n  soft = palette.highlight.\n", 1)
	result := store.Update(uri, broken)
	if result.Palette != nil {
		t.Fatal("expected the broken document not to evaluate")
	}
	if result.Previous == nil {
		t.Fatal("expected the previous palette to be carried over")
	}

	lines := splitLines(broken)
	var targetLine uint32
	for i, line := range lines {
		if strings.Contains(line, "soft = palette.highlight.") {
			targetLine = uint32(i)
			break
		}
	}
	pos := protocol.Position{Line: targetLine, Character: uint32(len(lines[targetLine]))}

	items := complete(result, broken, pos)
	if !hasLabel(items, "low") {
		t.Errorf("expected completion item 'low' despite syntax error, got %v", completionLabels(items))
	}

	// A second broken edit still remembers the last good palette.
	result = store.Update(uri, broken+"\n{")
	if result.Previous == nil {
		t.Error("expected the previous palette to survive consecutive broken edits")
	}
}

func TestCompletion_NoPalette(t *testing.T) {
	result := Analyze("test.hcl", "palette {")

	content, pos := splitCursor(t, "palette {\n  x = palette.|\n}\n")
	if items := complete(result, content, pos); len(items) != 0 {
		t.Errorf("expected no completions without an evaluated palette, got %v", completionLabels(items))
	}
}
