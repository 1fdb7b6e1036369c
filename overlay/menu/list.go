// SPDX-License-Identifier: Unlicense OR MIT

package menu

import (
	"fmt"
	"math"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/font"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/op/paint"
	"gioui.org/overlay/text"
	"gioui.org/overlay/unit"
	"gioui.org/overlay/widget"
	"gioui.org/overlay/widget/material"
)

// List is a single column of selectable options with a fixed row
// height. It keeps no state of its own; Bind supplies the hovered
// option and menu status for one call.
type List[T, M any] struct {
	Options    []T
	OnSelected func(T) M
	Padding    layout.Inset
	// TextSize is the text size of the options. The zero value
	// means the context default.
	TextSize unit.Value
	Font     font.Font
	Style    material.MenuStyle
	// Label formats an option. The default is fmt.Sprint.
	Label func(T) string
	// Selected, if set, reports the options marked with a check.
	Selected func(T) bool
}

// binding is a List attached to the hover and status of a menu.
type binding[T, M any] struct {
	list    *List[T, M]
	hovered *Hover
	status  *Status
}

// Bind returns the widget for l using hovered and status.
func (l *List[T, M]) Bind(hovered *Hover, status *Status) widget.Widget[M] {
	return binding[T, M]{list: l, hovered: hovered, status: status}
}

// RowHeight returns the height of one option in pixels.
func (l *List[T, M]) RowHeight(gtx layout.Context) float32 {
	return gtx.TextPx(l.TextSize) + l.Padding.Vertical(gtx.Metric)
}

// Row returns the bounds of option i in a list laid out at bounds.
func (l *List[T, M]) Row(gtx layout.Context, bounds f32.Rectangle, i int) f32.Rectangle {
	h := l.RowHeight(gtx)
	y := bounds.Min.Y + float32(i)*h
	return f32.Rect(bounds.Min.X, y, bounds.Max.X, y+h)
}

func (l *List[T, M]) label(o T) string {
	if l.Label != nil {
		return l.Label(o)
	}
	return fmt.Sprint(o)
}

// VisibleRange returns the range [start, end) of the rows of height
// rowHeight that intersect a viewport of the given height scrolled
// offset pixels into a list of n rows.
func VisibleRange(offset, height, rowHeight float32, n int) (start, end int) {
	if rowHeight <= 0 || n <= 0 {
		return 0, 0
	}
	start = int(math.Floor(float64(offset / rowHeight)))
	end = int(math.Ceil(float64((offset + height) / rowHeight)))
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}

func (b binding[T, M]) Width() layout.Length {
	return layout.Fill
}

func (b binding[T, M]) Height() layout.Length {
	return layout.Shrink
}

func (b binding[T, M]) Layout(gtx layout.Context, limits layout.Limits) layout.Node {
	intrinsic := f32.Pt(0, b.list.RowHeight(gtx)*float32(len(b.list.Options)))
	return layout.NewNode(limits.Resolve(b.Width(), b.Height(), intrinsic))
}

// hover updates the hovered option from cursor.
func (b binding[T, M]) hover(gtx layout.Context, bounds f32.Rectangle, cursor f32.Point) {
	if h := b.list.RowHeight(gtx); h > 0 {
		b.hovered.Set(int((cursor.Y - bounds.Min.Y) / h))
	}
}

// selectHovered publishes the hovered option, if any.
func (b binding[T, M]) selectHovered(sh *widget.Shell[M]) event.Status {
	i, ok := b.hovered.Index()
	if !ok || i < 0 || i >= len(b.list.Options) {
		return event.Ignored
	}
	sh.Publish(b.list.OnSelected(b.list.Options[i]))
	*b.status = Closed
	return event.Captured
}

func (b binding[T, M]) Update(gtx layout.Context, e event.Event, l layout.Layout, cursor f32.Point, sh *widget.Shell[M]) event.Status {
	pe, ok := e.(pointer.Event)
	if !ok {
		return event.Ignored
	}
	bounds := l.Bounds()
	inside := bounds.Contains(cursor)
	switch {
	case pe.Kind == pointer.Move:
		if inside {
			b.hover(gtx, bounds, cursor)
		}
	case pe.IsPrimaryPress(), pe.IsTouchBegin():
		if *b.status == Closed {
			break
		}
		if !inside {
			*b.status = Closing
			break
		}
		if pe.Source == pointer.Touch {
			b.hover(gtx, bounds, cursor)
		}
		return b.selectHovered(sh)
	}
	return event.Ignored
}

func (b binding[T, M]) Draw(gtx layout.Context, th *material.Theme, style widget.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	a := th.Menu(b.list.Style)
	bounds := l.Bounds()
	h := b.list.RowHeight(gtx)
	size := gtx.TextPx(b.list.TextSize)
	pad := b.list.Padding
	left, right := gtx.Metric.Px(pad.Left), gtx.Metric.Px(pad.Right)
	hovered, hok := b.hovered.Index()

	start, end := VisibleRange(viewport.Min.Y-bounds.Min.Y, viewport.Dy(), h, len(b.list.Options))
	for i := start; i < end; i++ {
		opt := b.list.Options[i]
		row := b.list.Row(gtx, bounds, i)
		c := a.TextColor
		if hok && hovered == i {
			paint.Quad{Bounds: row, Radius: a.BorderRadius}.Fill(gtx.Ops, a.SelectedBackground)
			c = a.SelectedTextColor
		}
		txt := f32.Rect(row.Min.X+left, row.Min.Y, row.Max.X-right, row.Max.Y)
		if b.list.Selected != nil && b.list.Selected(opt) {
			icon := f32.Rect(txt.Max.X-size, row.Center().Y-size/2, txt.Max.X, row.Center().Y+size/2)
			th.Icon.Check.Paint(gtx.Ops, icon, c)
			txt.Max.X = icon.Min.X
		}
		text.Label{
			Font:       b.list.Font,
			Size:       size,
			Color:      c,
			Alignment:  text.Start,
			VAlignment: text.Center,
		}.Add(gtx.Ops, txt, b.list.label(opt))
	}
}

func (b binding[T, M]) Cursor(gtx layout.Context, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) pointer.Cursor {
	if l.Bounds().Contains(cursor) {
		return pointer.CursorPointer
	}
	return pointer.CursorDefault
}

func (b binding[T, M]) Operate(gtx layout.Context, l layout.Layout, o widget.Operation) {
	o.Custom(b.hovered)
}
