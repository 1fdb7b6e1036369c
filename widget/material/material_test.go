// SPDX-License-Identifier: Unlicense OR MIT

package material_test

import (
	"image/color"
	"strings"
	"testing"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/font/gofont"
	"gioui.org/overlay/internal/ops"
	"gioui.org/overlay/op"
	"gioui.org/overlay/widget/material"
)

func TestMenuAppearance(t *testing.T) {
	th := material.NewTheme(gofont.Regular())
	def := th.Menu(material.MenuDefault)
	if def.Background != th.Bg || def.SelectedBackground != th.ContrastBg {
		t.Errorf("got %+v; want background from palette", def)
	}
	con := th.Menu(material.MenuContrast)
	if con.Background != th.ContrastBg || con.TextColor != th.ContrastFg {
		t.Errorf("got %+v; want contrast background", con)
	}
}

func TestFade(t *testing.T) {
	th := material.NewTheme(gofont.Regular())
	half := th.Fade(.5)
	if got, want := half.Bg.A, uint8(0x80); got != want {
		t.Errorf("got alpha %#x; want %#x", got, want)
	}
	if th.Bg.A != 0xff {
		t.Error("Fade modified the original theme")
	}
	if got := th.Fade(-1).Fg.A; got != 0 {
		t.Errorf("got alpha %#x for negative fade; want 0", got)
	}
}

func TestLoadPalette(t *testing.T) {
	base := material.NewTheme(gofont.Regular()).Palette
	src := "bg: \"#101820\"\ncontrastBg: \"#ff000080\"\n"
	p, err := material.LoadPalette(strings.NewReader(src), base)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Bg, (color.NRGBA{R: 0x10, G: 0x18, B: 0x20, A: 0xff}); got != want {
		t.Errorf("bg: got %v; want %v", got, want)
	}
	if got, want := p.ContrastBg, (color.NRGBA{R: 0xff, A: 0x80}); got != want {
		t.Errorf("contrastBg: got %v; want %v", got, want)
	}
	if p.Fg != base.Fg {
		t.Errorf("fg: got %v; want unchanged %v", p.Fg, base.Fg)
	}
	if _, err := material.LoadPalette(strings.NewReader(""), base); err != nil {
		t.Errorf("empty palette: %v", err)
	}
}

func TestLoadPaletteErrors(t *testing.T) {
	for _, src := range []string{
		"bg: \"#12\"\n",
		"bg: \"#zzzzzz\"\n",
		"unknown: \"#ffffff\"\n",
	} {
		if _, err := material.LoadPalette(strings.NewReader(src), material.Palette{}); err == nil {
			t.Errorf("LoadPalette(%q) succeeded; want error", src)
		}
	}
}

func TestIconPaint(t *testing.T) {
	th := material.NewTheme(gofont.Regular())
	var o op.Ops
	th.Icon.Check.Paint(&o, f32.Rect(10, 10, 34, 34), th.Fg)
	var rd ops.Reader
	rd.Reset(&o.Internal)
	enc, ok := rd.Decode()
	if !ok || ops.OpType(enc.Data[0]) != ops.TypeImage {
		t.Fatal("no image op for icon")
	}
	if got, want := ops.DecodeImage(enc.Data).Min, f32.Pt(10, 10); got != want {
		t.Errorf("got icon origin %v; want %v", got, want)
	}
	var empty op.Ops
	th.Icon.Check.Paint(&empty, f32.Rectangle{}, th.Fg)
	if len(empty.Internal.Data()) != 0 {
		t.Error("empty rectangle produced ops")
	}
}
