// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"
	"image/draw"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/internal/ops"
	"gioui.org/overlay/op"
)

// Quad describes a filled rectangle with an optional border.
type Quad struct {
	Bounds      f32.Rectangle
	Radius      float32
	BorderWidth float32
	BorderColor color.NRGBA
}

// ImageOp is an image ready to be drawn. Create one with NewImageOp.
type ImageOp struct {
	src *image.RGBA
}

// Fill adds the operation for filling q with the color c.
func (q Quad) Fill(o *op.Ops, c color.NRGBA) {
	data := o.Internal.Write(ops.TypeQuadLen)
	ops.EncodeQuad(data, ops.Quad{
		Bounds:      q.Bounds,
		Radius:      q.Radius,
		BorderWidth: q.BorderWidth,
		BorderColor: q.BorderColor,
		Color:       c,
	})
}

// FillRect fills r with the color c.
func FillRect(o *op.Ops, r f32.Rectangle, c color.NRGBA) {
	Quad{Bounds: r}.Fill(o, c)
}

// NewImageOp creates an ImageOp backed by src. The image is
// copied unless it is already an *image.RGBA with origin at
// (0, 0).
func NewImageOp(src image.Image) ImageOp {
	if src, ok := src.(*image.RGBA); ok && src.Bounds().Min == (image.Point{}) {
		return ImageOp{src: src}
	}
	sz := src.Bounds().Size()
	dst := image.NewRGBA(image.Rectangle{
		Max: sz,
	})
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return ImageOp{src: dst}
}

// Size returns the size of the image in pixels.
func (i ImageOp) Size() image.Point {
	if i.src == nil {
		return image.Point{}
	}
	return i.src.Bounds().Size()
}

// Paint adds the operation for drawing the image scaled
// into r.
func (i ImageOp) Paint(o *op.Ops, r f32.Rectangle) {
	if i.src == nil {
		return
	}
	data := o.Internal.Write(ops.TypeImageLen, i.src)
	ops.EncodeImage(data, r)
}
