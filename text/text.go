// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text implements text measurement and the fill-text
operation.

A Shaper resolves fonts to sized faces and measures single lines.
A Label adds an operation that draws one line of text aligned inside
a rectangle; backends such as package raster execute it.
*/
package text

import (
	"image/color"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/font"
	"gioui.org/overlay/internal/ops"
	"gioui.org/overlay/op"
)

// Alignment is the horizontal alignment of text.
type Alignment uint8

// VAlignment is the vertical alignment of text.
type VAlignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

const (
	Top VAlignment = iota
	Center
	Bottom
)

// Label draws a single line of text.
type Label struct {
	Font font.Font
	// Size is the text size in pixels.
	Size       float32
	Color      color.NRGBA
	Alignment  Alignment
	VAlignment VAlignment
}

// Add the operation for drawing txt aligned within bounds.
// The text is not clipped to bounds.
func (l Label) Add(o *op.Ops, bounds f32.Rectangle, txt string) {
	if txt == "" || l.Size <= 0 {
		return
	}
	data := o.Internal.Write(ops.TypeTextLen, txt, l.Font)
	ops.EncodeText(data, ops.Text{
		Bounds: bounds,
		Size:   l.Size,
		Color:  l.Color,
		Align:  uint8(l.Alignment),
		VAlign: uint8(l.VAlignment),
	})
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("invalid Alignment")
	}
}

func (a VAlignment) String() string {
	switch a {
	case Top:
		return "Top"
	case Center:
		return "Center"
	case Bottom:
		return "Bottom"
	default:
		panic("invalid VAlignment")
	}
}
