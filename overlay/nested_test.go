// SPDX-License-Identifier: Unlicense OR MIT

package overlay_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/font/gofont"
	"gioui.org/overlay/internal/ops"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/op"
	"gioui.org/overlay/overlay"
	"gioui.org/overlay/widget"
	"gioui.org/overlay/widget/material"
)

// box is a rectangular surface that records the calls it receives.
type box struct {
	name   string
	size   f32.Point
	status event.Status
	cursor pointer.Cursor
	nested func(l layout.Layout) *overlay.Element[string]
	calls  *[]string

	drawCursor   f32.Point
	updateCursor f32.Point
	events       []event.Event
}

func (b *box) record(call string) {
	if b.calls != nil {
		*b.calls = append(*b.calls, b.name+" "+call)
	}
}

func (b *box) Layout(gtx layout.Context, bounds f32.Point, position f32.Point) layout.Node {
	return layout.NewNode(b.size).MoveTo(position)
}

func (b *box) Draw(gtx layout.Context, th *material.Theme, style widget.Style, l layout.Layout, cursor f32.Point) {
	b.record("draw")
	b.drawCursor = cursor
}

func (b *box) Operate(gtx layout.Context, l layout.Layout, o widget.Operation) {
	b.record("operate")
	o.Custom(b.name)
}

func (b *box) Update(gtx layout.Context, e event.Event, l layout.Layout, cursor f32.Point, sh *widget.Shell[string]) event.Status {
	b.record("update")
	b.updateCursor = cursor
	b.events = append(b.events, e)
	return b.status
}

func (b *box) Cursor(gtx layout.Context, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) pointer.Cursor {
	b.record("cursor")
	return b.cursor
}

func (b *box) IsOver(gtx layout.Context, l layout.Layout, cursor f32.Point) bool {
	b.record("isover")
	return overlay.Contains(l, cursor)
}

func (b *box) Overlay(gtx layout.Context, l layout.Layout) *overlay.Element[string] {
	if b.nested == nil {
		return nil
	}
	return b.nested(l)
}

// twoLevel returns a chain of two 100x100 boxes, the inner anchored
// at (50, 50).
func twoLevel() (outer, inner *box, n *overlay.Nested[string], calls *[]string) {
	calls = new([]string)
	inner = &box{name: "inner", size: f32.Pt(100, 100), calls: calls}
	outer = &box{name: "outer", size: f32.Pt(100, 100), calls: calls,
		nested: func(layout.Layout) *overlay.Element[string] {
			return overlay.New[string](f32.Pt(50, 50), inner)
		},
	}
	n = overlay.NewNested(overlay.New[string](f32.Point{}, outer))
	return outer, inner, n, calls
}

func layoutNested(n *overlay.Nested[string], translation f32.Point) (*layout.Node, layout.Layout) {
	gtx := layout.Context{Ops: new(op.Ops)}
	node := n.Layout(gtx, f32.Pt(800, 600), translation)
	return &node, layout.NewLayout(&node)
}

func TestNestedLayout(t *testing.T) {
	// The innermost box is anchored at the bottom right corner of its
	// parent's layout.
	calls := new([]string)
	third := &box{name: "third", size: f32.Pt(10, 10), calls: calls}
	second := &box{name: "second", size: f32.Pt(20, 20), calls: calls,
		nested: func(l layout.Layout) *overlay.Element[string] {
			return overlay.New[string](l.Bounds().Max, third)
		},
	}
	first := &box{name: "first", size: f32.Pt(30, 30), calls: calls,
		nested: func(layout.Layout) *overlay.Element[string] {
			return overlay.New[string](f32.Pt(100, 100), second)
		},
	}
	n := overlay.NewNested(overlay.New[string](f32.Pt(10, 10), first))
	node, l := layoutNested(n, f32.Pt(5, 0))
	if got, want := node.Count(), 1+3; got != want {
		t.Fatalf("got %d nodes; want %d", got, want)
	}
	want := []f32.Rectangle{
		f32.Rect(15, 10, 45, 40),
		f32.Rect(105, 100, 125, 120),
		f32.Rect(125, 120, 135, 130),
	}
	for i, w := range want {
		c, _ := l.Child(i)
		if got := c.Bounds(); got != w {
			t.Errorf("level %d: got bounds %v; want %v", i, got, w)
		}
	}
	gtx := layout.Context{Ops: new(op.Ops)}
	if got := n.Depth(gtx, l); got != 3 {
		t.Errorf("got depth %d; want 3", got)
	}
}

func TestNestedSingleLevel(t *testing.T) {
	b := &box{name: "only", size: f32.Pt(10, 10)}
	n := overlay.NewNested(overlay.New[string](f32.Pt(1, 2), b))
	node, l := layoutNested(n, f32.Point{})
	if got := len(node.Children()); got != 1 {
		t.Errorf("got %d children; want 1", got)
	}
	gtx := layout.Context{Ops: new(op.Ops)}
	if !n.IsOver(gtx, l, f32.Pt(5, 5)) {
		t.Error("cursor inside the only level is not over the chain")
	}
	if n.Err() != nil {
		t.Errorf("unexpected error: %v", n.Err())
	}
}

func TestNestedDrawOcclusion(t *testing.T) {
	tests := []struct {
		cursor    f32.Point
		outerSees f32.Point
		innerSees f32.Point
	}{
		{cursor: f32.Pt(75, 75), outerSees: widget.Offscreen, innerSees: f32.Pt(75, 75)},
		{cursor: f32.Pt(25, 25), outerSees: f32.Pt(25, 25), innerSees: f32.Pt(25, 25)},
		{cursor: f32.Pt(125, 125), outerSees: widget.Offscreen, innerSees: f32.Pt(125, 125)},
	}
	for _, tc := range tests {
		outer, inner, n, calls := twoLevel()
		_, l := layoutNested(n, f32.Point{})
		*calls = nil
		gtx := layout.Context{Ops: new(op.Ops)}
		th := material.NewTheme(gofont.Regular())
		n.Draw(gtx, th, widget.Style{}, l, tc.cursor)
		if outer.drawCursor != tc.outerSees {
			t.Errorf("cursor %v: outer drawn with %v; want %v", tc.cursor, outer.drawCursor, tc.outerSees)
		}
		if inner.drawCursor != tc.innerSees {
			t.Errorf("cursor %v: inner drawn with %v; want %v", tc.cursor, inner.drawCursor, tc.innerSees)
		}
		// Occlusion is resolved before anything is drawn.
		want := []string{"inner isover", "outer draw", "inner draw"}
		if got := strings.Join(*calls, ", "); got != strings.Join(want, ", ") {
			t.Errorf("got calls %q; want %q", got, want)
		}
		if !gtx.Ops.Internal.Balanced() {
			t.Error("unbalanced ops after draw")
		}
		var r ops.Reader
		r.Reset(&gtx.Ops.Internal)
		clips := 0
		for {
			enc, ok := r.Decode()
			if !ok {
				break
			}
			if ops.OpType(enc.Data[0]) == ops.TypeClip {
				clips++
			}
		}
		if clips != 2 {
			t.Errorf("got %d clipped layers; want 2", clips)
		}
	}
}

func TestNestedUpdateBubbling(t *testing.T) {
	press := pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary}
	gtx := layout.Context{Ops: new(op.Ops)}
	var sh widget.Shell[string]

	// Ignored by the inner level: the outer level gets the same event
	// with the cursor hidden.
	outer, inner, n, calls := twoLevel()
	_, l := layoutNested(n, f32.Point{})
	*calls = nil
	status, over := n.Update(gtx, press, l, f32.Pt(75, 75), &sh)
	if status != event.Ignored || !over {
		t.Errorf("got (%v, %v); want (Ignored, true)", status, over)
	}
	if len(outer.events) != 1 || outer.events[0] != inner.events[0] {
		t.Errorf("outer got events %v; want %v", outer.events, inner.events)
	}
	if outer.updateCursor != widget.Offscreen {
		t.Errorf("outer got cursor %v; want %v", outer.updateCursor, widget.Offscreen)
	}
	if got, want := (*calls)[:2], []string{"inner isover", "inner update"}; got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got calls %v; want innermost first", *calls)
	}

	// Cursor over the outer level only.
	outer.events = nil
	status, over = n.Update(gtx, press, l, f32.Pt(25, 25), &sh)
	if status != event.Ignored || !over || outer.updateCursor != f32.Pt(25, 25) {
		t.Errorf("got (%v, %v, %v); want (Ignored, true, (25,25))", status, over, outer.updateCursor)
	}

	// Captured by the inner level: the outer level is not invoked.
	inner.status = event.Captured
	outer.events = nil
	status, over = n.Update(gtx, press, l, f32.Pt(75, 75), &sh)
	if status != event.Captured || !over {
		t.Errorf("got (%v, %v); want (Captured, true)", status, over)
	}
	if len(outer.events) != 0 {
		t.Errorf("outer got %d events; want none", len(outer.events))
	}

	// Captured by the outer level.
	inner.status, outer.status = event.Ignored, event.Captured
	status, over = n.Update(gtx, press, l, f32.Pt(500, 500), &sh)
	if status != event.Captured || over {
		t.Errorf("got (%v, %v); want (Captured, false)", status, over)
	}
}

func TestNestedCursor(t *testing.T) {
	gtx := layout.Context{Ops: new(op.Ops)}
	tests := []struct {
		outer, inner, want pointer.Cursor
	}{
		{outer: pointer.CursorText, inner: pointer.CursorDefault, want: pointer.CursorText},
		{outer: pointer.CursorText, inner: pointer.CursorPointer, want: pointer.CursorPointer},
		{outer: pointer.CursorDefault, inner: pointer.CursorDefault, want: pointer.CursorDefault},
	}
	for _, tc := range tests {
		outer, inner, n, _ := twoLevel()
		outer.cursor, inner.cursor = tc.outer, tc.inner
		_, l := layoutNested(n, f32.Point{})
		if got := n.Cursor(gtx, l, f32.Pt(75, 75), f32.Rect(0, 0, 800, 600)); got != tc.want {
			t.Errorf("outer %v, inner %v: got %v; want %v", tc.outer, tc.inner, got, tc.want)
		}
	}
}

func TestNestedIsOver(t *testing.T) {
	gtx := layout.Context{Ops: new(op.Ops)}
	_, _, n, calls := twoLevel()
	_, l := layoutNested(n, f32.Point{})

	*calls = nil
	if !n.IsOver(gtx, l, f32.Pt(10, 10)) {
		t.Error("not over the outer level")
	}
	if got := strings.Join(*calls, ", "); got != "outer isover" {
		t.Errorf("got calls %q; want only the outer level", got)
	}
	if !n.IsOver(gtx, l, f32.Pt(140, 140)) {
		t.Error("not over the inner level")
	}
	if n.IsOver(gtx, l, f32.Pt(300, 10)) {
		t.Error("over the chain outside every level")
	}
}

func TestNestedOperate(t *testing.T) {
	gtx := layout.Context{Ops: new(op.Ops)}
	_, _, n, _ := twoLevel()
	_, l := layoutNested(n, f32.Point{})
	var visited []string
	n.Operate(gtx, l, widget.Visit(func(state any) {
		visited = append(visited, state.(string))
	}))
	if got, want := strings.Join(visited, ","), "outer,inner"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestNestedLeaseConflict(t *testing.T) {
	var buf bytes.Buffer
	overlay.SetLogOutput(&buf)
	defer overlay.SetLogOutput(os.Stderr)

	b := &box{name: "loop", size: f32.Pt(10, 10)}
	root := overlay.New[string](f32.Point{}, b)
	cyclic := true
	b.nested = func(layout.Layout) *overlay.Element[string] {
		if cyclic {
			return root
		}
		return nil
	}
	n := overlay.NewNested(root)
	node, _ := layoutNested(n, f32.Point{})
	if !errors.Is(n.Err(), overlay.ErrLeased) {
		t.Errorf("got error %v; want %v", n.Err(), overlay.ErrLeased)
	}
	if len(node.Children()) != 0 {
		t.Errorf("aborted layout has %d children", len(node.Children()))
	}
	if !strings.Contains(buf.String(), "layout aborted") {
		t.Errorf("abort not logged: %q", buf.String())
	}

	// The aborted pass released its leases.
	cyclic = false
	node, _ = layoutNested(n, f32.Point{})
	if n.Err() != nil || len(node.Children()) != 1 {
		t.Fatalf("got (%v, %d children); want a single level", n.Err(), len(node.Children()))
	}

	// A surface that exposes the root from a later pass aborts that
	// pass without reaching the surfaces.
	cyclic = true
	two := layout.WithChildren(f32.Pt(10, 10), layout.NewNode(f32.Pt(10, 10)), layout.NewNode(f32.Pt(10, 10)))
	gtx := layout.Context{Ops: new(op.Ops)}
	var sh widget.Shell[string]
	status, over := n.Update(gtx, pointer.Event{Kind: pointer.Press}, layout.NewLayout(&two), f32.Pt(1, 1), &sh)
	if status != event.Ignored || over || len(b.events) != 0 {
		t.Errorf("aborted update got (%v, %v, %d events)", status, over, len(b.events))
	}
	if !errors.Is(n.Err(), overlay.ErrLeased) {
		t.Errorf("got error %v; want %v", n.Err(), overlay.ErrLeased)
	}
}

func TestNestedMaxDepth(t *testing.T) {
	var buf bytes.Buffer
	overlay.SetLogOutput(&buf)
	defer overlay.SetLogOutput(os.Stderr)

	var endless func(layout.Layout) *overlay.Element[string]
	endless = func(l layout.Layout) *overlay.Element[string] {
		return overlay.New[string](l.Bounds().Min.Add(f32.Pt(1, 1)), &box{size: f32.Pt(10, 10), nested: endless})
	}
	n := overlay.NewNested(overlay.New[string](f32.Point{}, &box{size: f32.Pt(10, 10), nested: endless}))
	node, _ := layoutNested(n, f32.Point{})
	if !errors.Is(n.Err(), overlay.ErrDepth) {
		t.Errorf("got error %v; want %v", n.Err(), overlay.ErrDepth)
	}
	if len(node.Children()) != 0 {
		t.Errorf("aborted layout has %d children", len(node.Children()))
	}
}

func TestOcclude(t *testing.T) {
	p := f32.Pt(3, 4)
	if got := overlay.Occlude(p, false); got != p {
		t.Errorf("got %v; want %v", got, p)
	}
	if got := overlay.Occlude(p, true); got != widget.Offscreen {
		t.Errorf("got %v; want %v", got, widget.Offscreen)
	}
}

func TestElementTranslate(t *testing.T) {
	b := &box{size: f32.Pt(10, 10)}
	e := overlay.New[string](f32.Pt(1, 1), b).Translate(f32.Pt(2, 3))
	if got, want := e.Position(), f32.Pt(3, 4); got != want {
		t.Errorf("got position %v; want %v", got, want)
	}
	gtx := layout.Context{}
	n := e.Layout(gtx, f32.Pt(100, 100), f32.Pt(10, 0))
	if got, want := n.Bounds().Min, f32.Pt(13, 4); got != want {
		t.Errorf("got layout origin %v; want %v", got, want)
	}
}
