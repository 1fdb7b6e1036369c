// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software renderer for operation lists.

A Rasterizer executes the quads, text and images of an op.Ops list
onto an *image.RGBA, honoring offsets and clipped layers. It is
the backend of package app and is handy in tests.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/font"
	"gioui.org/overlay/internal/ops"
	"gioui.org/overlay/op"
	"gioui.org/overlay/text"
)

// kappa is the distance from an end point to its control point of a
// cubic Bézier approximating a quarter circle of radius 1.
const kappa = 0.5522847498

type Rasterizer struct {
	// Shaper provides the faces for text operations. Text is
	// skipped if Shaper is nil.
	Shaper *text.Shaper

	reader ops.Reader
	vec    vector.Rasterizer

	scratch struct {
		offsets []f32.Point
		clips   []image.Rectangle
	}
}

// Frame draws the operations of frame onto frameBuf. It does not
// clear frameBuf.
func (r *Rasterizer) Frame(frame *op.Ops, frameBuf *image.RGBA) {
	if frame == nil {
		return
	}
	d := &r.reader
	d.Reset(&frame.Internal)

	offsets := r.scratch.offsets[:0]
	clips := r.scratch.clips[:0]
	defer func() {
		r.scratch.offsets = offsets
		r.scratch.clips = clips
	}()
	var off f32.Point
	clip := frameBuf.Bounds()
	for encOp, ok := d.Decode(); ok; encOp, ok = d.Decode() {
		switch ops.OpType(encOp.Data[0]) {
		case ops.TypeTransform:
			offsets = append(offsets, off)
			off = off.Add(ops.DecodeTransform(encOp.Data))
		case ops.TypePopTransform:
			off = offsets[len(offsets)-1]
			offsets = offsets[:len(offsets)-1]
		case ops.TypeClip:
			clips = append(clips, clip)
			clip = clip.Intersect(toRect(ops.DecodeClip(encOp.Data).Add(off)))
		case ops.TypePopClip:
			clip = clips[len(clips)-1]
			clips = clips[:len(clips)-1]
		case ops.TypeQuad:
			q := ops.DecodeQuad(encOp.Data)
			q.Bounds = q.Bounds.Add(off)
			r.fillQuad(frameBuf, clip, q)
		case ops.TypeText:
			t := ops.DecodeText(encOp.Data)
			t.Bounds = t.Bounds.Add(off)
			r.fillText(frameBuf, clip, t, encOp.Refs[0].(string), encOp.Refs[1].(font.Font))
		case ops.TypeImage:
			dr := toRect(ops.DecodeImage(encOp.Data).Add(off))
			drawImage(frameBuf, clip, dr, encOp.Refs[0].(*image.RGBA))
		}
	}
}

func (r *Rasterizer) fillQuad(dst *image.RGBA, clip image.Rectangle, q ops.Quad) {
	area := clip.Intersect(toRect(q.Bounds))
	if area.Empty() {
		return
	}
	if q.Color.A > 0 {
		r.fillPath(dst, area, q.Color, func(z *vector.Rasterizer, o f32.Point) {
			roundRect(z, q.Bounds.Sub(o), q.Radius, false)
		})
	}
	bw := q.BorderWidth
	if bw <= 0 || q.BorderColor.A == 0 {
		return
	}
	inner := q.Bounds
	inner.Min = inner.Min.Add(f32.Pt(bw, bw))
	inner.Max = inner.Max.Sub(f32.Pt(bw, bw))
	r.fillPath(dst, area, q.BorderColor, func(z *vector.Rasterizer, o f32.Point) {
		roundRect(z, q.Bounds.Sub(o), q.Radius, false)
		if !inner.Empty() {
			roundRect(z, inner.Sub(o), q.Radius-bw, true)
		}
	})
}

// fillPath fills the path built by path inside area. Coordinates
// passed to path are relative to o, the top left corner of area.
func (r *Rasterizer) fillPath(dst *image.RGBA, area image.Rectangle, c color.NRGBA, path func(z *vector.Rasterizer, o f32.Point)) {
	z := &r.vec
	z.Reset(area.Dx(), area.Dy())
	z.DrawOp = draw.Over
	path(z, f32.Pt(float32(area.Min.X), float32(area.Min.Y)))
	z.Draw(dst, area, image.NewUniform(c), image.Point{})
}

func (r *Rasterizer) fillText(dst *image.RGBA, clip image.Rectangle, t ops.Text, str string, f font.Font) {
	if r.Shaper == nil {
		return
	}
	face := r.Shaper.Face(f, t.Size)
	if face == nil {
		return
	}
	m := face.Metrics()
	ascent, descent := fromFixed(m.Ascent), fromFixed(m.Descent)
	width := r.Shaper.Measure(f, t.Size, str).X
	b := t.Bounds
	x := b.Min.X
	switch text.Alignment(t.Align) {
	case text.End:
		x = b.Max.X - width
	case text.Middle:
		x = b.Min.X + (b.Dx()-width)/2
	}
	y := b.Min.Y + ascent
	switch text.VAlignment(t.VAlign) {
	case text.Center:
		y = b.Center().Y + (ascent-descent)/2
	case text.Bottom:
		y = b.Max.Y - descent
	}
	sub, ok := dst.SubImage(clip).(*image.RGBA)
	if !ok || sub.Bounds().Empty() {
		return
	}
	d := xfont.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(t.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(str)
}

func drawImage(dst *image.RGBA, clip, dr image.Rectangle, src *image.RGBA) {
	if clip.Intersect(dr).Empty() {
		return
	}
	sub := dst.SubImage(clip).(*image.RGBA)
	if dr.Size() == src.Bounds().Size() {
		draw.Draw(sub, dr, src, src.Bounds().Min, draw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(sub, dr, src, src.Bounds(), draw.Over, nil)
}

// roundRect adds a rectangle with rounded corners to z. The path runs
// clockwise, or counter-clockwise when ccw is set so that it cuts a
// hole in a clockwise path.
func roundRect(z *vector.Rasterizer, b f32.Rectangle, radius float32, ccw bool) {
	if limit := min(b.Dx(), b.Dy()) / 2; radius > limit {
		radius = limit
	}
	if radius < 0 {
		radius = 0
	}
	x0, y0, x1, y1 := b.Min.X, b.Min.Y, b.Max.X, b.Max.Y
	rad, k := radius, radius*(1-kappa)
	if !ccw {
		z.MoveTo(x0+rad, y0)
		z.LineTo(x1-rad, y0)
		z.CubeTo(x1-k, y0, x1, y0+k, x1, y0+rad)
		z.LineTo(x1, y1-rad)
		z.CubeTo(x1, y1-k, x1-k, y1, x1-rad, y1)
		z.LineTo(x0+rad, y1)
		z.CubeTo(x0+k, y1, x0, y1-k, x0, y1-rad)
		z.LineTo(x0, y0+rad)
		z.CubeTo(x0, y0+k, x0+k, y0, x0+rad, y0)
	} else {
		z.MoveTo(x0+rad, y0)
		z.CubeTo(x0+k, y0, x0, y0+k, x0, y0+rad)
		z.LineTo(x0, y1-rad)
		z.CubeTo(x0, y1-k, x0+k, y1, x0+rad, y1)
		z.LineTo(x1-rad, y1)
		z.CubeTo(x1-k, y1, x1, y1-k, x1, y1-rad)
		z.LineTo(x1, y0+rad)
		z.CubeTo(x1, y0+k, x1-k, y0, x1-rad, y0)
		z.LineTo(x0+rad, y0)
	}
	z.ClosePath()
}

// toRect returns the integer rectangle covering r.
func toRect(r f32.Rectangle) image.Rectangle {
	x0, y0, x1, y1 := r.Round()
	return image.Rect(x0, y0, x1, y1)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + .5)
}
