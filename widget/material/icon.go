// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/op"
	"gioui.org/overlay/op/paint"
)

type Icon struct {
	src []byte
	// Cached values.
	op       paint.ImageOp
	imgSize  int
	imgColor color.NRGBA
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	_, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	return &Icon{src: data}, nil
}

// Paint adds the operations for drawing the icon in color c, scaled
// to fit the height of r and aligned to its top left corner.
func (ic *Icon) Paint(o *op.Ops, r f32.Rectangle, c color.NRGBA) {
	sz := int(r.Dy() + .5)
	if sz <= 0 {
		return
	}
	ico := ic.image(sz, c)
	isz := ico.Size()
	ico.Paint(o, f32.Rectangle{
		Min: r.Min,
		Max: r.Min.Add(f32.Pt(float32(isz.X), float32(isz.Y))),
	})
}

func (ic *Icon) image(sz int, c color.NRGBA) paint.ImageOp {
	if sz == ic.imgSize && c == ic.imgColor {
		return ic.op
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = color.RGBAModel.Convert(c).(color.RGBA)
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.op = paint.NewImageOp(img)
	ic.imgSize = sz
	ic.imgColor = c
	return ic.op
}
