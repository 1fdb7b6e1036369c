// SPDX-License-Identifier: Unlicense OR MIT

/*
Package overlay implements floating layers drawn above the widget
tree.

A Surface is a layer positioned relative to a trigger. A surface may
expose one further surface nested beneath it, such as a submenu, so
the layers that are open at any time form a chain. Nested walks that
chain for every pass of a frame:

	n := overlay.NewNested(menu.Overlay(pos, triggerHeight))
	node := n.Layout(gtx, windowSize, f32.Point{})
	l := layout.NewLayout(&node)
	status, over := n.Update(gtx, e, l, cursor, shell)
	n.Draw(gtx, th, style, l, cursor)

Events reach the innermost layer first and bubble outward while
ignored. A layer covered by the layer above it sees the cursor as
widget.Offscreen.
*/
package overlay
