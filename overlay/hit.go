// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"gioui.org/overlay/f32"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/widget"
)

// Contains reports whether cursor lies within the bounds of l. It is
// the usual implementation of Surface.IsOver.
func Contains(l layout.Layout, cursor f32.Point) bool {
	return l.Bounds().Contains(cursor)
}

// Occlude returns the cursor seen by a layer that is covered at the
// cursor position when occluded is true.
func Occlude(cursor f32.Point, occluded bool) f32.Point {
	if occluded {
		return widget.Offscreen
	}
	return cursor
}
