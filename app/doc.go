// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app runs a user interface in a desktop or mobile window.

A Window drives a Handler once per frame. The handler receives the
input events of the frame, adds its drawing operations to the
context's Ops and returns the cursor it wants shown:

	w := app.NewWindow(ui, shaper, app.Title("Demo"), app.Size(unit.Dp(640), unit.Dp(480)))
	if err := w.Run(); err != nil {
		log.Fatal(err)
	}

The operations are rendered in software by package raster and
uploaded to the window. Windowing and input are provided by
Ebitengine.
*/
package app
