// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/overlay/font"
	"gioui.org/overlay/text"
	"gioui.org/overlay/unit"
)

// Palette contains the minimal set of colors that a widget may need to
// draw itself.
type Palette struct {
	// Bg is the background color atop which content is currently being
	// drawn.
	Bg color.NRGBA

	// Fg is a color suitable for drawing on top of Bg.
	Fg color.NRGBA

	// ContrastBg is a color used to draw attention to active,
	// important, interactive widgets such as hovered menu options.
	ContrastBg color.NRGBA

	// ContrastFg is a color suitable for content drawn on top of
	// ContrastBg.
	ContrastFg color.NRGBA
}

type Theme struct {
	Palette
	Shaper   *text.Shaper
	TextSize unit.Value
	Icon     struct {
		Check *Icon
	}
}

// MenuStyle is a style token resolved by Theme.Menu.
type MenuStyle uint8

const (
	// MenuDefault draws menus on the palette background.
	MenuDefault MenuStyle = iota
	// MenuContrast draws menus on the contrast background.
	MenuContrast
)

// MenuAppearance is the resolved look of a menu.
type MenuAppearance struct {
	TextColor          color.NRGBA
	Background         color.NRGBA
	BorderWidth        float32
	BorderRadius       float32
	BorderColor        color.NRGBA
	SelectedTextColor  color.NRGBA
	SelectedBackground color.NRGBA
}

// ScrollbarAppearance is the resolved look of a scrollbar.
type ScrollbarAppearance struct {
	Width  float32
	Radius float32
	Track  color.NRGBA
	Thumb  color.NRGBA
}

func NewTheme(fontCollection []font.FontFace) *Theme {
	t := &Theme{
		Shaper: text.NewShaper(fontCollection),
	}
	t.Palette = Palette{
		Fg:         rgb(0x000000),
		Bg:         rgb(0xffffff),
		ContrastBg: rgb(0x3f51b5),
		ContrastFg: rgb(0xffffff),
	}
	t.TextSize = unit.Sp(16)

	t.Icon.Check = mustIcon(NewIcon(icons.NavigationCheck))

	return t
}

// Menu resolves the appearance of a menu drawn in style s.
func (t *Theme) Menu(s MenuStyle) MenuAppearance {
	a := MenuAppearance{
		TextColor:          t.Fg,
		Background:         t.Bg,
		BorderWidth:        1,
		BorderRadius:       0,
		BorderColor:        mulAlpha(t.Fg, 0x60),
		SelectedTextColor:  t.ContrastFg,
		SelectedBackground: t.ContrastBg,
	}
	if s == MenuContrast {
		a.TextColor, a.Background = t.ContrastFg, t.ContrastBg
		a.SelectedTextColor, a.SelectedBackground = t.ContrastBg, t.ContrastFg
		a.BorderColor = mulAlpha(t.ContrastFg, 0x60)
	}
	return a
}

// Scrollbar resolves the appearance of scrollbars.
func (t *Theme) Scrollbar() ScrollbarAppearance {
	return ScrollbarAppearance{
		Width:  4,
		Radius: 2,
		Track:  mulAlpha(t.Fg, 0x10),
		Thumb:  mulAlpha(t.Fg, 0x80),
	}
}

// Fade returns a copy of t with every palette color's alpha scaled by
// alpha, clamped to [0, 1].
func (t *Theme) Fade(alpha float32) *Theme {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c := *t
	a := func(col color.NRGBA) color.NRGBA {
		return mulAlpha(col, uint8(alpha*255+.5))
	}
	c.Palette = Palette{
		Bg:         a(t.Bg),
		Fg:         a(t.Fg),
		ContrastBg: a(t.ContrastBg),
		ContrastFg: a(t.ContrastFg),
	}
	return &c
}

func mustIcon(ic *Icon, err error) *Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// mulAlpha applies the alpha to the color.
func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}
