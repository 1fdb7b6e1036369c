// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"testing"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/font/gofont"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/op"
	"gioui.org/overlay/widget"
	"gioui.org/overlay/widget/material"
)

// block is a widget of fixed height that records what it is passed.
type block struct {
	height   float32
	cursor   f32.Point
	viewport f32.Rectangle
	events   int
}

func (b *block) Width() layout.Length  { return layout.Fill }
func (b *block) Height() layout.Length { return layout.Shrink }

func (b *block) Layout(gtx layout.Context, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Resolve(b.Width(), b.Height(), f32.Pt(0, b.height)))
}

func (b *block) Draw(gtx layout.Context, th *material.Theme, style widget.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	b.cursor = cursor
	b.viewport = viewport
}

func (b *block) Update(gtx layout.Context, e event.Event, l layout.Layout, cursor f32.Point, sh *widget.Shell[string]) event.Status {
	b.events++
	b.cursor = cursor
	sh.Publish("event")
	return event.Ignored
}

func (b *block) Cursor(gtx layout.Context, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) pointer.Cursor {
	if l.Bounds().Contains(cursor) {
		return pointer.CursorPointer
	}
	return pointer.CursorDefault
}

func (b *block) Operate(gtx layout.Context, l layout.Layout, o widget.Operation) {
	o.Custom(b)
}

func layoutScroll(t *testing.T, s widget.Scroll[string], size f32.Point) layout.Layout {
	t.Helper()
	gtx := layout.Context{Ops: new(op.Ops)}
	n := s.Layout(gtx, layout.NewLimits(f32.Point{}, size))
	return layout.NewLayout(&n)
}

func TestScrollLayout(t *testing.T) {
	var st widget.Scrollable
	s := widget.Scroll[string]{State: &st, Content: &block{height: 500}}
	l := layoutScroll(t, s, f32.Pt(100, 200))
	if got, want := l.Bounds(), f32.Rect(0, 0, 100, 200); got != want {
		t.Errorf("got bounds %v; want %v", got, want)
	}
	c, ok := l.Child(0)
	if !ok {
		t.Fatal("missing content layout")
	}
	if got, want := c.Bounds(), f32.Rect(0, 0, 100, 500); got != want {
		t.Errorf("got content bounds %v; want %v", got, want)
	}
	if !st.Overflows() {
		t.Error("taller content does not overflow")
	}

	short := widget.Scroll[string]{State: new(widget.Scrollable), Content: &block{height: 50}}
	if got, want := layoutScroll(t, short, f32.Pt(100, 200)).Bounds().Dy(), float32(50); got != want {
		t.Errorf("got height %v; want %v", got, want)
	}
}

func TestScrollWheel(t *testing.T) {
	var st widget.Scrollable
	content := &block{height: 500}
	s := widget.Scroll[string]{State: &st, Content: content}
	l := layoutScroll(t, s, f32.Pt(100, 200))
	gtx := layout.Context{Ops: new(op.Ops)}
	var sh widget.Shell[string]
	wheel := func(dy float32) event.Status {
		return s.Update(gtx, pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, dy)}, l, f32.Pt(50, 50), &sh)
	}
	tests := []struct {
		dy   float32
		want float32
	}{
		{dy: 120, want: 120},
		{dy: 1000, want: 300},
		{dy: -50, want: 250},
		{dy: -1000, want: 0},
	}
	for _, tc := range tests {
		if status := wheel(tc.dy); status != event.Captured {
			t.Errorf("scroll by %v: got %v; want Captured", tc.dy, status)
		}
		if got := st.Offset(); got != tc.want {
			t.Errorf("scroll by %v: got offset %v; want %v", tc.dy, got, tc.want)
		}
	}
	if content.events != 0 {
		t.Errorf("content received %d wheel events", content.events)
	}

	// Outside the region the wheel is passed on.
	s.Update(gtx, pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, 10)}, l, f32.Pt(50, 300), &sh)
	if st.Offset() != 0 || content.events != 1 {
		t.Errorf("wheel outside: got offset %v and %d events", st.Offset(), content.events)
	}
}

func TestScrollCursorTranslation(t *testing.T) {
	var st widget.Scrollable
	content := &block{height: 500}
	s := widget.Scroll[string]{State: &st, Content: content}
	l := layoutScroll(t, s, f32.Pt(100, 200))
	st.ScrollTo(100)
	gtx := layout.Context{Ops: new(op.Ops)}
	var sh widget.Shell[string]

	s.Update(gtx, pointer.Event{Kind: pointer.Move}, l, f32.Pt(10, 20), &sh)
	if got, want := content.cursor, f32.Pt(10, 120); got != want {
		t.Errorf("got content cursor %v; want %v", got, want)
	}
	s.Update(gtx, pointer.Event{Kind: pointer.Move}, l, f32.Pt(10, 220), &sh)
	if got, want := content.cursor, widget.Offscreen; got != want {
		t.Errorf("got content cursor %v; want %v", got, want)
	}
	if got, want := len(sh.Messages()), 2; got != want {
		t.Errorf("got %d messages; want %d", got, want)
	}
	if sh.Len() != 0 {
		t.Error("Messages did not drain the shell")
	}
	if got, want := s.Cursor(gtx, l, f32.Pt(10, 20), l.Bounds()), pointer.CursorPointer; got != want {
		t.Errorf("got cursor %v; want %v", got, want)
	}
}

func TestScrollDraw(t *testing.T) {
	var st widget.Scrollable
	content := &block{height: 500}
	s := widget.Scroll[string]{State: &st, Content: content}
	l := layoutScroll(t, s, f32.Pt(100, 200))
	st.ScrollTo(40)
	gtx := layout.Context{Ops: new(op.Ops)}
	th := material.NewTheme(gofont.Regular())
	s.Draw(gtx, th, widget.Style{}, l, f32.Pt(5, 5), l.Bounds())
	if got, want := content.viewport, f32.Rect(0, 40, 100, 240); got != want {
		t.Errorf("got content viewport %v; want %v", got, want)
	}
	if got, want := content.cursor, f32.Pt(5, 45); got != want {
		t.Errorf("got content cursor %v; want %v", got, want)
	}
	if !gtx.Ops.Internal.Balanced() {
		t.Error("unbalanced ops after draw")
	}
}

func TestScrollToOperation(t *testing.T) {
	var st widget.Scrollable
	content := &block{height: 500}
	s := widget.Scroll[string]{State: &st, Content: content}
	l := layoutScroll(t, s, f32.Pt(100, 200))
	gtx := layout.Context{Ops: new(op.Ops)}
	s.Operate(gtx, l, widget.ScrollTo(1e6))
	if got, want := st.Offset(), float32(300); got != want {
		t.Errorf("got offset %v; want %v", got, want)
	}
	var visited []any
	s.Operate(gtx, l, widget.Visit(func(state any) {
		visited = append(visited, state)
	}))
	if len(visited) != 1 || visited[0] != content {
		t.Errorf("got visited %v; want the content widget", visited)
	}
}

func TestScrollToBeforeLayout(t *testing.T) {
	var st widget.Scrollable
	st.ScrollTo(150)
	if got, want := st.Offset(), float32(150); got != want {
		t.Errorf("got offset %v; want %v", got, want)
	}
	st.ScrollTo(-10)
	if got := st.Offset(); got != 0 {
		t.Errorf("got offset %v; want 0", got)
	}
}
