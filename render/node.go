// Package render holds the node tree a widget draws into. The tree stores
// tags, class tags, flags and text, and answers class-based queries.
// Whatever draws it to a screen (the terminal host in cmd/search-select/tui)
// treats it as read-only.
package render

import "slices"

// Node is one element of the rendered tree.
type Node struct {
	Tag         string
	ID          string
	Text        string // rendered content
	Value       string // editable content, for input-like nodes
	Placeholder string
	Hidden      bool
	Focused     bool
	ScrollTop   int // first visible row, for scrollable containers
	Height      int // visible rows for scrollable containers, 0 = unbounded

	classes  []string
	attrs    map[string]string
	children []*Node
	parent   *Node
}

// New creates a detached node with the given class tags.
func New(tag string, classes ...string) *Node {
	n := &Node{Tag: tag}
	for _, c := range classes {
		n.AddClass(c)
	}
	return n
}

// Classes returns a copy of the node's class tags in insertion order.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool {
	return slices.Contains(n.classes, c)
}

// AddClass adds c if absent.
func (n *Node) AddClass(c string) {
	if c == "" || n.HasClass(c) {
		return
	}
	n.classes = append(n.classes, c)
}

// RemoveClass drops c if present.
func (n *Node) RemoveClass(c string) {
	n.classes = slices.DeleteFunc(n.classes, func(s string) bool { return s == c })
}

// SetClass adds c when on is true and removes it otherwise.
func (n *Node) SetClass(c string, on bool) {
	if on {
		n.AddClass(c)
	} else {
		n.RemoveClass(c)
	}
}

// SetAttr sets a data attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attr returns a data attribute, or "" when unset.
func (n *Node) Attr(key string) string {
	return n.attrs[key]
}

// Append adds children to the end of n, detaching them from any previous parent.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil {
			c.parent.removeChild(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

func (n *Node) removeChild(c *Node) {
	n.children = slices.DeleteFunc(n.children, func(x *Node) bool { return x == c })
	c.parent = nil
}

// Clear detaches every child.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Children returns the direct children.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn stops descent into that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Query returns the first descendant (excluding n) carrying class c.
func (n *Node) Query(c string) *Node {
	var found *Node
	for _, child := range n.children {
		child.Walk(func(x *Node) bool {
			if found != nil {
				return false
			}
			if x.HasClass(c) {
				found = x
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant (excluding n) carrying class c, in
// document order.
func (n *Node) QueryAll(c string) []*Node {
	var out []*Node
	for _, child := range n.children {
		child.Walk(func(x *Node) bool {
			if x.HasClass(c) {
				out = append(out, x)
			}
			return true
		})
	}
	return out
}

// Contains reports whether x is n or one of its descendants.
func (n *Node) Contains(x *Node) bool {
	for ; x != nil; x = x.parent {
		if x == n {
			return true
		}
	}
	return false
}

// Closest walks from n up through its ancestors and returns the first node
// carrying class c.
func (n *Node) Closest(c string) *Node {
	for x := n; x != nil; x = x.parent {
		if x.HasClass(c) {
			return x
		}
	}
	return nil
}

// Visible reports whether n and all its ancestors are not hidden.
func (n *Node) Visible() bool {
	for x := n; x != nil; x = x.parent {
		if x.Hidden {
			return false
		}
	}
	return true
}
