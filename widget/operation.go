// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "gioui.org/overlay/f32"

// Operation is a visitor applied depth first to a widget tree
// through Widget.Operate.
type Operation interface {
	// Container is called for a widget with children. Calling
	// operate visits the children with the given operation.
	Container(bounds f32.Rectangle, operate func(Operation))
	// Scrollable is called for scroll regions. content is the
	// bounds of the unscrolled content.
	Scrollable(s *Scrollable, bounds, content f32.Rectangle)
	// Custom is called with widget specific state.
	Custom(state any)
}

// ScrollTo returns an Operation that scrolls every scroll region it
// visits to the vertical offset y.
func ScrollTo(y float32) Operation {
	return scrollTo{y: y}
}

type scrollTo struct {
	y float32
}

func (s scrollTo) Container(_ f32.Rectangle, operate func(Operation)) {
	operate(s)
}

func (s scrollTo) Scrollable(st *Scrollable, _, _ f32.Rectangle) {
	st.ScrollTo(s.y)
}

func (scrollTo) Custom(any) {}

// Visit returns an Operation that calls f with the state of every
// custom node it visits.
func Visit(f func(state any)) Operation {
	return visit(f)
}

type visit func(state any)

func (v visit) Container(_ f32.Rectangle, operate func(Operation)) {
	operate(v)
}

func (visit) Scrollable(*Scrollable, f32.Rectangle, f32.Rectangle) {}

func (v visit) Custom(state any) {
	v(state)
}
