// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/font"
)

// Shaper measures text and provides sized font faces from a set of
// registered fonts.
//
// If a font matches no registered face, Shaper falls back to the
// regular face of the same typeface, and then to the first
// registered face.
//
// Measurements are cached and re-used if possible. A Shaper must
// not be used concurrently.
type Shaper struct {
	def   font.Typeface
	faces map[font.Font]font.Face
	sized map[sizedKey]xfont.Face
	cache measureCache
}

type sizedKey struct {
	font font.Font
	ppem fixed.Int26_6
}

// NewShaper constructs a shaper for the fonts in collection.
func NewShaper(collection []font.FontFace) *Shaper {
	s := &Shaper{
		faces: make(map[font.Font]font.Face),
		sized: make(map[sizedKey]xfont.Face),
	}
	for _, ff := range collection {
		if len(s.faces) == 0 {
			s.def = ff.Font.Typeface
		}
		if _, exists := s.faces[ff.Font]; !exists {
			s.faces[ff.Font] = ff.Face
		}
	}
	return s
}

func (s *Shaper) faceForFont(f font.Font) (font.Font, font.Face) {
	if f.Typeface == "" {
		f.Typeface = s.def
	}
	if tf, ok := s.faces[f]; ok {
		return f, tf
	}
	f.Style = font.Regular
	f.Weight = font.Normal
	f.Variant = ""
	if tf, ok := s.faces[f]; ok {
		return f, tf
	}
	f = font.Font{Typeface: s.def}
	return f, s.faces[f]
}

// Face returns the font face for f at size pixels, or nil if no
// face is registered or size is not positive.
func (s *Shaper) Face(f font.Font, size float32) xfont.Face {
	if size <= 0 {
		return nil
	}
	f, tf := s.faceForFont(f)
	if tf == nil {
		return nil
	}
	k := sizedKey{font: f, ppem: fixed.Int26_6(size * 64)}
	if face, ok := s.sized[k]; ok {
		return face
	}
	face, err := opentype.NewFace(tf.Font(), &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil
	}
	s.sized[k] = face
	return face
}

// Measure returns the advance width and line height of a single line
// of text set in f at size pixels.
func (s *Shaper) Measure(f font.Font, size float32, str string) f32.Point {
	face := s.Face(f, size)
	if face == nil {
		return f32.Point{}
	}
	k := measureKey{ppem: fixed.Int26_6(size * 64), str: str, font: f}
	w, ok := s.cache.Get(k)
	if !ok {
		w = xfont.MeasureString(face, str)
		s.cache.Put(k, w)
	}
	return f32.Point{X: fromFixed(w), Y: fromFixed(face.Metrics().Height)}
}

// Metrics returns the font metrics for f at size pixels.
func (s *Shaper) Metrics(f font.Font, size float32) xfont.Metrics {
	face := s.Face(f, size)
	if face == nil {
		return xfont.Metrics{}
	}
	return face.Metrics()
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
