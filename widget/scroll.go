// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/overlay/f32"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/op"
	"gioui.org/overlay/op/clip"
	"gioui.org/overlay/op/paint"
	"gioui.org/overlay/widget/material"
)

// Scrollable is the state of a vertical scroll region.
type Scrollable struct {
	offset float32
	// Extents from the most recent layout.
	viewport float32
	content  float32
	laidOut  bool
}

// Scroll is a vertical scroll region around Content. Its state
// is kept in State; a Scroll value itself is cheap and is typically
// created for each pass.
type Scroll[M any] struct {
	State   *Scrollable
	Content Widget[M]
}

// Offset returns the current scroll offset.
func (s *Scrollable) Offset() float32 {
	return s.offset
}

// ScrollTo sets the scroll offset. The offset is clamped to the
// content at the next layout.
func (s *Scrollable) ScrollTo(y float32) {
	s.offset = y
	s.clamp()
}

// ScrollBy scrolls by dy.
func (s *Scrollable) ScrollBy(dy float32) {
	s.ScrollTo(s.offset + dy)
}

// Overflows reports whether the content is taller than the region.
func (s *Scrollable) Overflows() bool {
	return s.content > s.viewport
}

func (s *Scrollable) clamp() {
	if limit := s.content - s.viewport; s.laidOut && s.offset > limit {
		s.offset = limit
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

func (s Scroll[M]) Width() layout.Length {
	return s.Content.Width()
}

func (s Scroll[M]) Height() layout.Length {
	return layout.Shrink
}

func (s Scroll[M]) Layout(gtx layout.Context, limits layout.Limits) layout.Node {
	cl := limits
	cl.Min.Y, cl.Max.Y = 0, f32.Inf.Y
	content := s.Content.Layout(gtx, cl)
	size := limits.Resolve(s.Width(), s.Height(), content.Size())
	s.State.viewport = size.Y
	s.State.content = content.Size().Y
	s.State.laidOut = true
	s.State.clamp()
	return layout.WithChildren(size, content)
}

// child returns the content layout and the cursor in content
// coordinates.
func (s Scroll[M]) child(l layout.Layout, cursor f32.Point) (layout.Layout, f32.Point) {
	c, _ := l.Child(0)
	if !l.Bounds().Contains(cursor) {
		return c, Offscreen
	}
	return c, cursor.Add(f32.Pt(0, s.State.offset))
}

func (s Scroll[M]) Draw(gtx layout.Context, th *material.Theme, style Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	b := l.Bounds()
	vp := b
	if !viewport.Empty() {
		vp = vp.Intersect(viewport)
	}
	c, cursor := s.child(l, cursor)
	off := f32.Pt(0, s.State.offset)
	clip.Layer(gtx.Ops, b, func() {
		defer op.Offset(off.Mul(-1)).Push(gtx.Ops).Pop()
		s.Content.Draw(gtx, th, style, c, cursor, vp.Add(off))
	})
	if !s.State.Overflows() {
		return
	}
	sb := th.Scrollbar()
	track := f32.Rect(b.Max.X-sb.Width, b.Min.Y, b.Max.X, b.Max.Y)
	paint.Quad{Bounds: track, Radius: sb.Radius}.Fill(gtx.Ops, sb.Track)
	h := b.Dy()
	thumb := track
	thumb.Min.Y = b.Min.Y + h*s.State.offset/s.State.content
	thumb.Max.Y = thumb.Min.Y + h*s.State.viewport/s.State.content
	paint.Quad{Bounds: thumb, Radius: sb.Radius}.Fill(gtx.Ops, sb.Thumb)
}

func (s Scroll[M]) Update(gtx layout.Context, e event.Event, l layout.Layout, cursor f32.Point, sh *Shell[M]) event.Status {
	if pe, ok := e.(pointer.Event); ok && pe.Kind == pointer.Scroll {
		if l.Bounds().Contains(cursor) && s.State.Overflows() {
			s.State.ScrollBy(pe.Scroll.Y)
			return event.Captured
		}
	}
	c, cursor := s.child(l, cursor)
	return s.Content.Update(gtx, e, c, cursor, sh)
}

func (s Scroll[M]) Cursor(gtx layout.Context, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) pointer.Cursor {
	c, cursor := s.child(l, cursor)
	return s.Content.Cursor(gtx, c, cursor, l.Bounds().Add(f32.Pt(0, s.State.offset)))
}

func (s Scroll[M]) Operate(gtx layout.Context, l layout.Layout, o Operation) {
	c, _ := l.Child(0)
	o.Scrollable(s.State, l.Bounds(), c.Bounds())
	o.Container(l.Bounds(), func(o Operation) {
		s.Content.Operate(gtx, c, o)
	})
}
