package treeprint

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var connectorStyle = lipgloss.NewStyle().Faint(true)

// node is one level of the tree built from a flat list of slash-separated
// names; name holds a single path segment, the full entry name is the
// join of the segments from the root, and only nodes with isLeaf set
// correspond to real entries.
type node struct {
	name     string
	isLeaf   bool
	children map[string]*node
	order    []string
}

func newNode(name string) *node {
	return &node{name: name, children: map[string]*node{}}
}

func (n *node) child(name string) *node {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := newNode(name)
	n.children[name] = c
	n.order = append(n.order, name)
	return c
}

func build(names []string) *node {
	sorted := append([]string{}, names...)
	sort.Strings(sorted)

	root := newNode("")
	for _, name := range sorted {
		cur := root
		segments := strings.Split(name, "/")
		for i, seg := range segments {
			cur = cur.child(seg)
			if i == len(segments)-1 {
				cur.isLeaf = true
			}
		}
	}
	return root
}

// Render returns names as an indented tree with box-drawing connectors,
// sorted lexicographically at every level. An empty slice renders as an
// empty string.
func Render(names []string) string {
	root := build(names)
	var b strings.Builder
	renderChildren(&b, root, "")
	return strings.TrimRight(b.String(), "\n")
}

func renderChildren(b *strings.Builder, n *node, prefix string) {
	sort.Strings(n.order)
	for i, name := range n.order {
		child := n.children[name]
		last := i == len(n.order)-1

		connector := "├── "
		nextPrefix := prefix + "│   "
		if last {
			connector = "└── "
			nextPrefix = prefix + "    "
		}

		b.WriteString(prefix)
		b.WriteString(connectorStyle.Render(connector))
		b.WriteString(name)
		b.WriteString("\n")

		renderChildren(b, child, nextPrefix)
	}
}
