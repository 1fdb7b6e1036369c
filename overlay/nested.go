// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/op/clip"
	"gioui.org/overlay/widget"
	"gioui.org/overlay/widget/material"
)

// MaxDepth is the maximum number of levels in a chain.
const MaxDepth = 64

var (
	// ErrLeased is reported when a pass reaches an element that is
	// already leased, for example a surface exposing an element of
	// its own chain.
	ErrLeased = errors.New("overlay: element already leased")
	// ErrDepth is reported when a chain is deeper than MaxDepth.
	ErrDepth = errors.New("overlay: chain deeper than MaxDepth")
)

var logger = log.New(os.Stderr, "overlay: ", log.LstdFlags)

// SetLogOutput redirects the log of aborted passes.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Nested walks a chain of overlays: the root element, the element
// nested beneath it, and so on until a surface exposes none. The
// chain is derived again on every pass.
//
// Every pass leases each element it walks and releases them when the
// pass ends. A pass that meets an element already leased, or a chain
// deeper than MaxDepth, is aborted: it is logged and has no effect.
type Nested[M any] struct {
	root *Element[M]
	// translation from the most recent Layout.
	translation f32.Point
	err         error
}

type level[M any] struct {
	elem *Element[M]
	l    layout.Layout
}

// NewNested returns a Nested for the chain starting at root.
func NewNested[M any](root *Element[M]) *Nested[M] {
	return &Nested[M]{root: root}
}

// Root returns the outermost element.
func (n *Nested[M]) Root() *Element[M] {
	return n.root
}

// Err returns the reason the most recent pass was aborted, or nil.
func (n *Nested[M]) Err() error {
	return n.err
}

// Layout lays out the chain inside a window of size bounds, with
// every anchor translated by position. The returned node has one
// child per level, outermost first.
func (n *Nested[M]) Layout(gtx layout.Context, bounds f32.Point, position f32.Point) layout.Node {
	n.err = nil
	n.translation = position
	var nodes []layout.Node
	var leased []*Element[M]
	defer func() {
		for _, e := range leased {
			e.release()
		}
	}()
	for e := n.root; e != nil; {
		if len(nodes) == MaxDepth {
			n.abort("layout", ErrDepth)
			return layout.Node{}
		}
		if err := e.acquire(); err != nil {
			n.abort("layout", fmt.Errorf("level %d: %w", len(nodes), err))
			return layout.Node{}
		}
		leased = append(leased, e)
		node := e.Layout(gtx, bounds, position)
		nodes = append(nodes, node)
		e = e.Overlay(gtx, n.anchorSpace(layout.NewLayout(&node)))
	}
	if len(nodes) == 0 {
		return layout.Node{}
	}
	return layout.WithChildren(nodes[0].Size(), nodes...)
}

// Draw draws every level, outermost first, each inside a layer
// clipped to its bounds. A level covered at cursor by the level
// nested beneath it is drawn with widget.Offscreen as cursor.
func (n *Nested[M]) Draw(gtx layout.Context, th *material.Theme, style widget.Style, l layout.Layout, cursor f32.Point) {
	chain, ok := n.acquire(gtx, l, "draw")
	defer release(chain)
	if !ok {
		return
	}
	occluded := make([]bool, len(chain))
	for i := 0; i+1 < len(chain); i++ {
		next := chain[i+1]
		occluded[i] = next.elem.IsOver(gtx, next.l, cursor)
	}
	for i, lv := range chain {
		c := Occlude(cursor, occluded[i])
		clip.Layer(gtx.Ops, lv.l.Bounds(), func() {
			lv.elem.Draw(gtx, th, style, lv.l, c)
		})
	}
}

// Operate applies o to every level, outermost first.
func (n *Nested[M]) Operate(gtx layout.Context, l layout.Layout, o widget.Operation) {
	chain, ok := n.acquire(gtx, l, "operate")
	defer release(chain)
	if !ok {
		return
	}
	for _, lv := range chain {
		lv.elem.Operate(gtx, lv.l, o)
	}
}

// Update delivers e to the innermost level first. While the event is
// ignored it bubbles to the next level outward, which sees the cursor
// as widget.Offscreen if any level inside it is under the cursor.
// Update reports whether some level captured the event, and whether
// the cursor is over any of the levels that were offered the event.
func (n *Nested[M]) Update(gtx layout.Context, e event.Event, l layout.Layout, cursor f32.Point, sh *widget.Shell[M]) (event.Status, bool) {
	chain, ok := n.acquire(gtx, l, "update")
	defer release(chain)
	if !ok {
		return event.Ignored, false
	}
	status, over := event.Ignored, false
	for i := len(chain) - 1; i >= 0 && status == event.Ignored; i-- {
		lv := chain[i]
		overHere := over || lv.elem.IsOver(gtx, lv.l, cursor)
		status = lv.elem.Update(gtx, e, lv.l, Occlude(cursor, over), sh)
		over = overHere
	}
	return status, over
}

// Cursor returns the cursor of the innermost level with a
// preference.
func (n *Nested[M]) Cursor(gtx layout.Context, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) pointer.Cursor {
	chain, ok := n.acquire(gtx, l, "cursor")
	defer release(chain)
	if !ok {
		return pointer.CursorDefault
	}
	c := pointer.CursorDefault
	for i := len(chain) - 1; i >= 0 && c == pointer.CursorDefault; i-- {
		lv := chain[i]
		c = lv.elem.Cursor(gtx, lv.l, cursor, viewport)
	}
	return c
}

// IsOver reports whether cursor is over any level.
func (n *Nested[M]) IsOver(gtx layout.Context, l layout.Layout, cursor f32.Point) bool {
	chain, ok := n.acquire(gtx, l, "is over")
	defer release(chain)
	if !ok {
		return false
	}
	for _, lv := range chain {
		if lv.elem.IsOver(gtx, lv.l, cursor) {
			return true
		}
	}
	return false
}

// Depth returns the number of levels materialized in l.
func (n *Nested[M]) Depth(gtx layout.Context, l layout.Layout) int {
	chain, ok := n.acquire(gtx, l, "depth")
	defer release(chain)
	if !ok {
		return 0
	}
	return len(chain)
}

// acquire derives and leases the chain laid out in l. The chain ends
// at the first surface without a nested element or at the last child
// of l. The returned chain must be released even when ok is false.
func (n *Nested[M]) acquire(gtx layout.Context, l layout.Layout, pass string) (chain []level[M], ok bool) {
	n.err = nil
	e := n.root
	for i := 0; e != nil; i++ {
		cl, exists := l.Child(i)
		if !exists {
			break
		}
		if i == MaxDepth {
			n.abort(pass, ErrDepth)
			return chain, false
		}
		if err := e.acquire(); err != nil {
			n.abort(pass, fmt.Errorf("level %d: %w", i, err))
			return chain, false
		}
		chain = append(chain, level[M]{elem: e, l: cl})
		if i+1 == l.NumChildren() {
			break
		}
		e = e.Overlay(gtx, n.anchorSpace(cl))
	}
	return chain, true
}

// anchorSpace converts a laid out level to the coordinates of the
// anchors, so nested elements are translated like the root.
func (n *Nested[M]) anchorSpace(l layout.Layout) layout.Layout {
	return l.Translate(n.translation.Mul(-1))
}

func (n *Nested[M]) abort(pass string, err error) {
	n.err = err
	logger.Printf("%s aborted: %v", pass, err)
}

func release[M any](chain []level[M]) {
	for _, lv := range chain {
		lv.elem.release()
	}
}
