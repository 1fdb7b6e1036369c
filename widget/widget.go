// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/widget/material"
)

// Offscreen is the cursor position that is over nothing. It is
// substituted for the real cursor when a widget must not react to
// the pointer, for example when another layer covers it.
var Offscreen = f32.Point{X: -1, Y: -1}

// Widget is the capability set of a user interface element that
// publishes messages of type M.
//
// Layout is called before any of the other methods in a pass, and
// the resulting node is passed back to them as an absolute Layout.
type Widget[M any] interface {
	// Width and Height report the sizing policies of the widget.
	Width() layout.Length
	Height() layout.Length
	Layout(gtx layout.Context, limits layout.Limits) layout.Node
	// Draw adds the drawing operations of the widget to gtx.Ops.
	// Only the part inside viewport needs to be drawn.
	Draw(gtx layout.Context, th *material.Theme, style Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle)
	// Update processes an event and reports whether it was
	// captured.
	Update(gtx layout.Context, e event.Event, l layout.Layout, cursor f32.Point, sh *Shell[M]) event.Status
	// Cursor returns the preferred mouse cursor, or
	// pointer.CursorDefault for no preference.
	Cursor(gtx layout.Context, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) pointer.Cursor
	// Operate applies o to the widget and its children.
	Operate(gtx layout.Context, l layout.Layout, o Operation)
}

// Style is the inherited drawing style of a widget tree.
type Style struct {
	TextColor color.NRGBA
}

// Shell collects the messages published by widgets during
// event handling.
type Shell[M any] struct {
	messages []M
}

// Publish queues m for the application.
func (s *Shell[M]) Publish(m M) {
	s.messages = append(s.messages, m)
}

// Len returns the number of queued messages.
func (s *Shell[M]) Len() int {
	return len(s.messages)
}

// Messages returns and removes the queued messages.
func (s *Shell[M]) Messages() []M {
	m := s.messages
	s.messages = nil
	return m
}
