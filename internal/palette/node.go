package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsvensson/colorconv"
	"github.com/zclconf/go-cty/cty"
)

// Node is a palette entry that can be both a color and a namespace.
// Color is nil for namespace-only nodes (blocks without a color attribute).
// Children is nil for leaf nodes.
//
// Colors are stored on the default 0-255 RGB scale, quantized to whole
// numbers since every entry round-trips through its hex form.
type Node struct {
	Color    *colorconv.RGB
	Children map[string]*Node
}

// Entry is one named color of a flattened palette.
type Entry struct {
	Name  string
	Color colorconv.RGB
}

// Lookup resolves a path of segments to a color.
func (n *Node) Lookup(path []string) (colorconv.RGB, error) {
	current := n
	for _, part := range path {
		if current.Children == nil {
			return colorconv.RGB{}, fmt.Errorf("path not found: %s is a leaf, cannot traverse further", part)
		}
		child, ok := current.Children[part]
		if !ok {
			return colorconv.RGB{}, fmt.Errorf("path not found: %q does not exist", part)
		}
		current = child
	}
	if current.Color == nil {
		return colorconv.RGB{}, fmt.Errorf("path is a group, not a color; add a color attribute or reference a specific child")
	}
	return *current.Color, nil
}

// Flatten lists every color under n with dotted names, sorted by name.
func (n *Node) Flatten() []Entry {
	var entries []Entry
	n.flatten("", &entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

func (n *Node) flatten(prefix string, dst *[]Entry) {
	if n.Color != nil && prefix != "" {
		*dst = append(*dst, Entry{Name: prefix, Color: *n.Color})
	}
	for name, child := range n.Children {
		if prefix != "" {
			name = prefix + "." + name
		}
		child.flatten(name, dst)
	}
}

func (n *Node) child(name string) *Node {
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	c, ok := n.Children[name]
	if !ok {
		c = &Node{}
		n.Children[name] = c
	}
	return c
}

// toCty converts the node for use as an HCL variable. Leaves become hex
// strings; nodes with children become objects with the node's own color
// under the "color" key.
func (n *Node) toCty() cty.Value {
	if n.Children == nil {
		if n.Color != nil {
			return cty.StringVal(Hex(*n.Color))
		}
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(n.Children)+1)
	if n.Color != nil {
		vals["color"] = cty.StringVal(Hex(*n.Color))
	}
	for k, child := range n.Children {
		vals[k] = child.toCty()
	}
	return cty.ObjectVal(vals)
}

// Hex formats a stored palette color as "#rrggbb".
func Hex(c colorconv.RGB) string {
	h, err := colorconv.RGBToHex(c.R, c.G, c.B)
	if err != nil {
		// only reachable for colors built outside this package
		return "#000000"
	}
	return h
}

// splitPath splits "accent.soft" or "palette.accent.soft" into segments
// relative to the palette root.
func splitPath(path string) []string {
	parts := strings.Split(path, ".")
	if len(parts) > 1 && parts[0] == "palette" {
		parts = parts[1:]
	}
	return parts
}
