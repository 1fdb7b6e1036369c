// SPDX-License-Identifier: Unlicense OR MIT

package menu

import (
	"gioui.org/overlay/f32"
	"gioui.org/overlay/font"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/op/paint"
	"gioui.org/overlay/overlay"
	"gioui.org/overlay/unit"
	"gioui.org/overlay/widget"
	"gioui.org/overlay/widget/material"
)

// Status is the lifecycle of a menu.
type Status uint8

const (
	// Closed menus are inert.
	Closed Status = iota
	// Open menus track hover and accept selections.
	Open
	// Closing menus were dismissed by a press outside the list.
	// The owner is expected to close them, for example after an
	// exit animation.
	Closing
)

// State is the persistent state of a menu.
type State struct {
	status Status
	scroll widget.Scrollable
}

// Hover is the option under the pointer.
type Hover struct {
	index int
	ok    bool
}

// Menu is a list of selectable options shown as an overlay. A Menu
// refers to, and does not copy, its options and state.
type Menu[T, M any] struct {
	state      *State
	options    []T
	hovered    *Hover
	onSelected func(T) M

	// Width of the menu. Zero means all the space to the right of
	// the anchor.
	Width   float32
	Padding layout.Inset
	// TextSize of the options. The zero value means the context
	// default.
	TextSize unit.Value
	Font     font.Font
	Style    material.MenuStyle
	// Label formats an option. The default is fmt.Sprint.
	Label func(T) string
	// Selected, if set, reports the options marked with a check.
	Selected func(T) bool
	// Submenu, if set, returns the overlay nested beneath the
	// hovered option, whose row has the given bounds.
	Submenu func(index int, row f32.Rectangle) *overlay.Element[M]
}

// surface is the overlay of a Menu.
type surface[T, M any] struct {
	menu         *Menu[T, M]
	targetHeight float32
}

// Status returns the current status.
func (s *State) Status() Status {
	return s.status
}

// IsOpen reports whether the menu is open.
func (s *State) IsOpen() bool {
	return s.status == Open
}

// IsClosing reports whether the menu was dismissed and waits to be
// closed by its owner.
func (s *State) IsClosing() bool {
	return s.status == Closing
}

// Open the menu.
func (s *State) Open() {
	s.status = Open
}

// Close the menu.
func (s *State) Close() {
	s.status = Closed
}

// Scroll returns the scroll state of the menu.
func (s *State) Scroll() *widget.Scrollable {
	return &s.scroll
}

// Set marks option i as hovered.
func (h *Hover) Set(i int) {
	h.index, h.ok = i, true
}

// Clear removes the hovered option.
func (h *Hover) Clear() {
	*h = Hover{}
}

// Index returns the hovered option, if any.
func (h *Hover) Index() (int, bool) {
	return h.index, h.ok
}

// New returns a menu of options. onSelected maps the chosen option to
// the message published for it.
func New[T, M any](state *State, options []T, hovered *Hover, onSelected func(T) M) *Menu[T, M] {
	return &Menu[T, M]{
		state:      state,
		options:    options,
		hovered:    hovered,
		onSelected: onSelected,
	}
}

// Overlay returns the menu as an overlay anchored at position. The
// menu is shown below a target of height targetHeight at position if
// there is more space below it than above it; otherwise it is shown
// above.
func (m *Menu[T, M]) Overlay(position f32.Point, targetHeight float32) *overlay.Element[M] {
	return overlay.New[M](position, &surface[T, M]{menu: m, targetHeight: targetHeight})
}

func (m *Menu[T, M]) list() *List[T, M] {
	return &List[T, M]{
		Options:    m.options,
		OnSelected: m.onSelected,
		Padding:    m.Padding,
		TextSize:   m.TextSize,
		Font:       m.Font,
		Style:      m.Style,
		Label:      m.Label,
		Selected:   m.Selected,
	}
}

func (m *Menu[T, M]) scroll() widget.Scroll[M] {
	return widget.Scroll[M]{
		State:   &m.state.scroll,
		Content: m.list().Bind(m.hovered, &m.state.status),
	}
}

func (s *surface[T, M]) Layout(gtx layout.Context, bounds f32.Point, position f32.Point) layout.Node {
	spaceBelow := bounds.Y - (position.Y + s.targetHeight)
	spaceAbove := position.Y
	below := spaceBelow > spaceAbove
	space := spaceAbove
	if below {
		space = spaceBelow
	}
	limits := layout.NewLimits(f32.Point{}, f32.Pt(bounds.X-position.X, space))
	if w := s.menu.Width; w > 0 {
		limits = limits.Width(layout.Fixed(w))
	}
	node := s.menu.scroll().Layout(gtx, limits)
	if below {
		return node.MoveTo(position.Add(f32.Pt(0, s.targetHeight)))
	}
	return node.MoveTo(position.Sub(f32.Pt(0, node.Size().Y)))
}

func (s *surface[T, M]) Draw(gtx layout.Context, th *material.Theme, style widget.Style, l layout.Layout, cursor f32.Point) {
	a := th.Menu(s.menu.Style)
	bounds := l.Bounds()
	paint.Quad{
		Bounds:      bounds,
		Radius:      a.BorderRadius,
		BorderWidth: a.BorderWidth,
		BorderColor: a.BorderColor,
	}.Fill(gtx.Ops, a.Background)
	s.menu.scroll().Draw(gtx, th, style, l, cursor, bounds)
}

func (s *surface[T, M]) Operate(gtx layout.Context, l layout.Layout, o widget.Operation) {
	o.Container(l.Bounds(), func(o widget.Operation) {
		s.menu.scroll().Operate(gtx, l, o)
	})
}

func (s *surface[T, M]) Update(gtx layout.Context, e event.Event, l layout.Layout, cursor f32.Point, sh *widget.Shell[M]) event.Status {
	return s.menu.scroll().Update(gtx, e, l, cursor, sh)
}

func (s *surface[T, M]) Cursor(gtx layout.Context, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) pointer.Cursor {
	return s.menu.scroll().Cursor(gtx, l, cursor, viewport)
}

func (s *surface[T, M]) IsOver(gtx layout.Context, l layout.Layout, cursor f32.Point) bool {
	return overlay.Contains(l, cursor)
}

// Overlay returns the submenu of the hovered option while the menu is
// open.
func (s *surface[T, M]) Overlay(gtx layout.Context, l layout.Layout) *overlay.Element[M] {
	m := s.menu
	if m.Submenu == nil || m.state.status != Open {
		return nil
	}
	i, ok := m.hovered.Index()
	if !ok || i < 0 || i >= len(m.options) {
		return nil
	}
	content, ok := l.Child(0)
	if !ok {
		return nil
	}
	row := m.list().Row(gtx, content.Bounds(), i).Sub(f32.Pt(0, m.state.scroll.Offset()))
	if row.Intersect(l.Bounds()).Empty() {
		return nil
	}
	return m.Submenu(i, row)
}

func (s Status) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	case Closing:
		return "Closing"
	default:
		panic("invalid Status")
	}
}
