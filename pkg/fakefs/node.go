// Package fakefs provides the read-only directory tree listed by the
// terminal's ls command.
package fakefs

import "strings"

// RootName is the name of the tree's root directory.
const RootName = "/"

// Node is a directory or a leaf. Directories keep their children in
// declaration order. Nodes are never modified after construction.
type Node struct {
	Name     string
	Children []*Node
	dir      bool
}

// Dir returns a directory node.
func Dir(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children, dir: true}
}

// File returns a leaf node.
func File(name string) *Node {
	return &Node{Name: name}
}

// IsDir reports whether n is a directory, including an empty one.
func (n *Node) IsDir() bool {
	return n.dir
}

// Child returns the direct child called name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, child := range n.Children {
		if child.Name == name {
			return child, true
		}
	}
	return nil, false
}

// Label maps an entry name to the name shown to the visitor.
type Label func(name string) string

// Resolve walks path from n. Empty segments are skipped, so "Extras",
// "/Extras" and "/Extras/" are the same path. Only directories resolve.
func (n *Node) Resolve(path string) (*Node, bool) {
	return n.ResolveLabelled(path, nil)
}

// ResolveLabelled is Resolve where a segment may also name an entry by its
// label.
func (n *Node) ResolveLabelled(path string, label Label) (*Node, bool) {
	node := n
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		child, ok := node.labelledChild(part, label)
		if !ok || !child.dir {
			return nil, false
		}
		node = child
	}
	return node, node.dir
}

func (n *Node) labelledChild(part string, label Label) (*Node, bool) {
	if child, ok := n.Child(part); ok {
		return child, true
	}
	if label == nil {
		return nil, false
	}
	for _, child := range n.Children {
		if label(child.Name) == part {
			return child, true
		}
	}
	return nil, false
}

// Tree renders the subtree below n, one line per descendant, depth first.
func (n *Node) Tree() []string {
	return n.TreeLabelled(nil)
}

// TreeLabelled is Tree with every name passed through label.
func (n *Node) TreeLabelled(label Label) []string {
	var lines []string
	n.tree("", label, &lines)
	return lines
}

func (n *Node) tree(prefix string, label Label, lines *[]string) {
	for i, child := range n.Children {
		connector, indent := "├─ ", "│  "
		if i == len(n.Children)-1 {
			connector, indent = "└─ ", "   "
		}
		name := child.Name
		if label != nil {
			name = label(name)
		}
		if child.dir {
			name += "/"
		}
		*lines = append(*lines, prefix+connector+name)
		if child.dir {
			child.tree(prefix+indent, label, lines)
		}
	}
}
