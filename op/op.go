// SPDX-License-Identifier: Unlicense OR MIT

/*

Package op implements operations for updating a user interface.

Overlays and widgets describe their appearance by adding operations,
or ops, to an Ops list. The list is later executed by a backend such
as package raster. Ops is the renderer contract of the toolkit:
filling quads (package paint), filling text (package text) and
scoping drawing to clipped layers (package clip).

State

An Ops list can be viewed as a very simple virtual machine with an
implicit mutable state stack.

The TransformStack saves the current offset and restores it later:

	ops := new(op.Ops)
	// Apply an offset to subsequent operations.
	stack := op.Offset(f32.Pt(0, -scroll)).Push(ops)
	...
	// Restore the previous offset.
	stack.Pop()

Pushes and pops must be balanced; popping out of order panics.

*/
package op

import (
	"gioui.org/overlay/f32"
	"gioui.org/overlay/internal/ops"
)

// Ops holds a list of operations. Operations are stored in
// serialized form to avoid garbage during construction of
// the ops list.
type Ops struct {
	// Internal is for internal use, despite being exported.
	Internal ops.Ops
}

// TransformOp represents a transformation that can be pushed
// on the transformation stack.
type TransformOp struct {
	offset f32.Point
}

// TransformStack represents a TransformOp pushed on the
// transformation stack.
type TransformStack struct {
	id  ops.StackID
	ops *ops.Ops
}

// Offset creates a TransformOp with the offset o.
func Offset(o f32.Point) TransformOp {
	return TransformOp{offset: o}
}

// Reset the Ops, preparing it for re-use. Reset invalidates
// any recorded references to the list.
func (o *Ops) Reset() {
	o.Internal.Reset()
}

// Push the current transformation to the stack and then multiply the
// current transformation with t.
func (t TransformOp) Push(o *Ops) TransformStack {
	id := o.Internal.PushOp(ops.TransStack)
	data := o.Internal.Write(ops.TypeTransformLen)
	ops.EncodeTransform(data, t.offset)
	return TransformStack{ops: &o.Internal, id: id}
}

// Transform a point.
func (t TransformOp) Transform(p f32.Point) f32.Point {
	return p.Add(t.offset)
}

// Pop restores the transformation from before the matching Push.
func (t TransformStack) Pop() {
	t.ops.PopOp(ops.TransStack, t.id)
	data := t.ops.Write(ops.TypePopTransformLen)
	data[0] = byte(ops.TypePopTransform)
}
