// SPDX-License-Identifier: Unlicense OR MIT

/*
Package menu implements dropdown menus.

A Menu shows a scrollable List of options as an overlay positioned
below or above the control that opened it:

	var (
		state   menu.State
		hovered menu.Hover
	)
	state.Open()
	m := menu.New(&state, fruits, &hovered, func(f string) Message {
		return Picked(f)
	})
	m.Width = 200
	root := overlay.NewNested(m.Overlay(triggerPos, triggerHeight))

Selecting an option publishes its message and closes the menu. A press
outside the list marks the menu Closing; the owner decides when to
close it and drop the overlay.
*/
package menu
