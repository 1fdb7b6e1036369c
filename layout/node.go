// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "gioui.org/overlay/f32"

// Node is the result of laying out a widget or overlay: its bounds
// and the nodes of its children. Child bounds are relative to the
// parent's position. A Node is not modified once its producer
// returns it.
type Node struct {
	bounds   f32.Rectangle
	children []Node
}

// Layout is a positioned, read-only view of a Node. Bounds are
// absolute.
type Layout struct {
	offset f32.Point
	node   *Node
}

// NewNode returns a childless node of the given size at the origin.
func NewNode(size f32.Point) Node {
	return Node{bounds: f32.Rectangle{Max: size}}
}

// WithChildren returns a node of the given size at the origin with
// children.
func WithChildren(size f32.Point, children ...Node) Node {
	return Node{bounds: f32.Rectangle{Max: size}, children: children}
}

// Size returns the node size.
func (n Node) Size() f32.Point {
	return n.bounds.Size()
}

// Bounds returns the bounds of the node relative to its parent.
func (n Node) Bounds() f32.Rectangle {
	return n.bounds
}

// Children returns the child nodes.
func (n Node) Children() []Node {
	return n.children
}

// MoveTo returns n positioned at p.
func (n Node) MoveTo(p f32.Point) Node {
	n.bounds = f32.Rectangle{Min: p, Max: p.Add(n.bounds.Size())}
	return n
}

// Translate returns n offset by v.
func (n Node) Translate(v f32.Point) Node {
	n.bounds = n.bounds.Add(v)
	return n
}

// Count returns the number of nodes in the tree rooted at n.
func (n Node) Count() int {
	c := 1
	for _, ch := range n.children {
		c += ch.Count()
	}
	return c
}

// NewLayout returns a view of n positioned at the origin.
func NewLayout(n *Node) Layout {
	return Layout{node: n}
}

// Bounds returns the absolute bounds of the layout.
func (l Layout) Bounds() f32.Rectangle {
	if l.node == nil {
		return f32.Rectangle{}
	}
	return l.node.bounds.Add(l.offset)
}

// Position returns the absolute position of the layout.
func (l Layout) Position() f32.Point {
	return l.Bounds().Min
}

// NumChildren returns the number of children.
func (l Layout) NumChildren() int {
	if l.node == nil {
		return 0
	}
	return len(l.node.children)
}

// Child returns the view of child i, or false if it doesn't exist.
func (l Layout) Child(i int) (Layout, bool) {
	if i < 0 || i >= l.NumChildren() {
		return Layout{}, false
	}
	return Layout{offset: l.Position(), node: &l.node.children[i]}, true
}

// Children returns the views of all children.
func (l Layout) Children() []Layout {
	n := l.NumChildren()
	if n == 0 {
		return nil
	}
	ls := make([]Layout, n)
	for i := range ls {
		ls[i], _ = l.Child(i)
	}
	return ls
}

// Translate returns l offset by v.
func (l Layout) Translate(v f32.Point) Layout {
	l.offset = l.offset.Add(v)
	return l
}
