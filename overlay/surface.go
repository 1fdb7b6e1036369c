// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"gioui.org/overlay/f32"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/widget"
	"gioui.org/overlay/widget/material"
)

// Surface is a floating layer that publishes messages of type M.
type Surface[M any] interface {
	// Layout computes the node of the surface anchored at position
	// inside a window of size bounds. The node's bounds are
	// absolute.
	Layout(gtx layout.Context, bounds f32.Point, position f32.Point) layout.Node
	Draw(gtx layout.Context, th *material.Theme, style widget.Style, l layout.Layout, cursor f32.Point)
	Operate(gtx layout.Context, l layout.Layout, o widget.Operation)
	Update(gtx layout.Context, e event.Event, l layout.Layout, cursor f32.Point, sh *widget.Shell[M]) event.Status
	Cursor(gtx layout.Context, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) pointer.Cursor
	// IsOver reports whether cursor is over the surface.
	IsOver(gtx layout.Context, l layout.Layout, cursor f32.Point) bool
	// Overlay returns the surface nested beneath this one, or nil.
	// It is called on every pass; the result depends on the current
	// state of the surface.
	Overlay(gtx layout.Context, l layout.Layout) *Element[M]
}

// Element is a Surface anchored at a position.
type Element[M any] struct {
	position f32.Point
	surface  Surface[M]
	leased   bool
}

// New returns an element for s anchored at position.
func New[M any](position f32.Point, s Surface[M]) *Element[M] {
	return &Element[M]{position: position, surface: s}
}

// Position returns the anchor of the element.
func (e *Element[M]) Position() f32.Point {
	return e.position
}

// Translate moves the anchor of e by v and returns e.
func (e *Element[M]) Translate(v f32.Point) *Element[M] {
	e.position = e.position.Add(v)
	return e
}

// Surface returns the surface of e.
func (e *Element[M]) Surface() Surface[M] {
	return e.surface
}

// Layout lays out the surface at the anchor translated by
// translation.
func (e *Element[M]) Layout(gtx layout.Context, bounds f32.Point, translation f32.Point) layout.Node {
	return e.surface.Layout(gtx, bounds, e.position.Add(translation))
}

func (e *Element[M]) Draw(gtx layout.Context, th *material.Theme, style widget.Style, l layout.Layout, cursor f32.Point) {
	e.surface.Draw(gtx, th, style, l, cursor)
}

func (e *Element[M]) Operate(gtx layout.Context, l layout.Layout, o widget.Operation) {
	e.surface.Operate(gtx, l, o)
}

func (e *Element[M]) Update(gtx layout.Context, ev event.Event, l layout.Layout, cursor f32.Point, sh *widget.Shell[M]) event.Status {
	return e.surface.Update(gtx, ev, l, cursor, sh)
}

func (e *Element[M]) Cursor(gtx layout.Context, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) pointer.Cursor {
	return e.surface.Cursor(gtx, l, cursor, viewport)
}

func (e *Element[M]) IsOver(gtx layout.Context, l layout.Layout, cursor f32.Point) bool {
	return e.surface.IsOver(gtx, l, cursor)
}

// Overlay returns the element nested beneath e, if any.
func (e *Element[M]) Overlay(gtx layout.Context, l layout.Layout) *Element[M] {
	return e.surface.Overlay(gtx, l)
}

// acquire takes the exclusive lease on e.
func (e *Element[M]) acquire() error {
	if e.leased {
		return ErrLeased
	}
	e.leased = true
	return nil
}

func (e *Element[M]) release() {
	e.leased = false
}
