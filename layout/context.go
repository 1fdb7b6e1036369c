// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"time"

	"gioui.org/overlay/op"
	"gioui.org/overlay/text"
	"gioui.org/overlay/unit"
)

// DefaultTextSize is the text size used when neither a widget nor
// the Context specifies one.
var DefaultTextSize = unit.Sp(16)

// Context carries the state needed by almost all layouts, widgets
// and overlays during one pass.
type Context struct {
	// Metric converts device independent values to pixels.
	Metric unit.Metric
	// Now is the animation time.
	Now time.Time
	// Ops receives the drawing operations of the pass.
	Ops *op.Ops
	// Shaper measures text. It may be nil.
	Shaper *text.Shaper
	// TextSize is the default text size. The zero value means
	// DefaultTextSize.
	TextSize unit.Value
}

// Dp converts v to pixels.
func (c Context) Dp(v float32) float32 {
	return c.Metric.Dp(v)
}

// Sp converts v to pixels.
func (c Context) Sp(v float32) float32 {
	return c.Metric.Sp(v)
}

// TextPx converts the text size v to pixels, falling back to the
// context default when v is zero.
func (c Context) TextPx(v unit.Value) float32 {
	if v.IsZero() {
		v = c.TextSize
	}
	if v.IsZero() {
		v = DefaultTextSize
	}
	return c.Metric.Px(v)
}

// Reset prepares the context for a new pass.
func (c *Context) Reset(now time.Time) {
	c.Now = now
	if c.Ops == nil {
		c.Ops = new(op.Ops)
	}
	c.Ops.Reset()
}
