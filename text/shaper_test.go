// SPDX-License-Identifier: Unlicense OR MIT

package text_test

import (
	"testing"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/font"
	"gioui.org/overlay/font/gofont"
	"gioui.org/overlay/internal/ops"
	"gioui.org/overlay/op"
	"gioui.org/overlay/text"
)

func TestMeasureGrowsWithText(t *testing.T) {
	s := text.NewShaper(gofont.Regular())
	short := s.Measure(font.Font{}, 16, "ab")
	long := s.Measure(font.Font{}, 16, "abcdef")
	if short.X <= 0 || long.X <= short.X {
		t.Errorf("got widths %v, %v; want 0 < short < long", short.X, long.X)
	}
	if short.Y <= 0 || short.Y != long.Y {
		t.Errorf("got line heights %v, %v; want equal and positive", short.Y, long.Y)
	}
	// Cached result must match.
	if again := s.Measure(font.Font{}, 16, "ab"); again != short {
		t.Errorf("got %v from cache; want %v", again, short)
	}
}

func TestFontFallback(t *testing.T) {
	s := text.NewShaper(gofont.Regular())
	bold := font.Font{Weight: font.Bold, Typeface: "Missing"}
	if s.Face(bold, 12) == nil {
		t.Error("no fallback face for unregistered font")
	}
	if s.Face(font.Font{}, 0) != nil {
		t.Error("got face for zero size")
	}
	empty := text.NewShaper(nil)
	if got := empty.Measure(font.Font{}, 12, "x"); got != (f32.Point{}) {
		t.Errorf("got %v from empty shaper; want zero", got)
	}
}

func TestLabelOp(t *testing.T) {
	var o op.Ops
	r := f32.Rect(0, 0, 100, 20)
	text.Label{Size: 14, VAlignment: text.Center}.Add(&o, r, "hello")
	text.Label{Size: 14}.Add(&o, r, "")
	var rd ops.Reader
	rd.Reset(&o.Internal)
	n := 0
	for enc, ok := rd.Decode(); ok; enc, ok = rd.Decode() {
		n++
		txt := ops.DecodeText(enc.Data)
		if txt.Bounds != r || txt.Size != 14 || txt.VAlign != uint8(text.Center) {
			t.Errorf("got %+v; want bounds %v size 14 centered", txt, r)
		}
		if got := enc.Refs[0].(string); got != "hello" {
			t.Errorf("got text %q; want %q", got, "hello")
		}
	}
	if n != 1 {
		t.Errorf("got %d text ops; want 1", n)
	}
}
