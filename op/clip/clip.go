// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"gioui.org/overlay/f32"
	"gioui.org/overlay/internal/ops"
	"gioui.org/overlay/op"
)

// Rect represents the clip area of a rectangle, in the
// coordinate space of the current transformation.
type Rect f32.Rectangle

// Stack represents a Rect pushed on the clip stack.
type Stack struct {
	ops *ops.Ops
	id  ops.StackID
}

// Push saves the current clip state on the stack and updates the current
// state to the intersection of the current clip and r.
func (r Rect) Push(o *op.Ops) Stack {
	id := o.Internal.PushOp(ops.ClipStack)
	data := o.Internal.Write(ops.TypeClipLen)
	ops.EncodeClip(data, f32.Rectangle(r))
	return Stack{ops: &o.Internal, id: id}
}

// Pop pops the clip state restoring the state before its
// matching Push.
func (s Stack) Pop() {
	s.ops.PopOp(ops.ClipStack, s.id)
	data := s.ops.Write(ops.TypePopClipLen)
	data[0] = byte(ops.TypePopClip)
}

// Layer runs draw inside the clip area of r.
func Layer(o *op.Ops, r f32.Rectangle, draw func()) {
	defer Rect(r).Push(o).Pop()
	draw()
}
