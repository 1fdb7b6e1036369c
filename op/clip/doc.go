// SPDX-License-Identifier: Unlicense OR MIT

/*
Package clip provides operations for clipping paint operations.
Drawing outside the current clip area is ignored.

The current clip is initially the infinite set. Pushing a Rect sets the
clip to the intersection of the current clip and the rectangle. Popping
restores the clip to its state before pushing. A pushed Rect is the
"clipped layer" overlays draw into: each level of an overlay chain is
drawn inside its own layer so it cannot bleed outside its bounds.
*/
package clip
