// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font provides type describing font faces attributes.
*/
package font

import "golang.org/x/image/font/sfnt"

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style and weight.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face is an opaque handle to a parsed typeface.
type Face interface {
	Font() *sfnt.Font
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Normal Weight = 0
	Medium Weight = 100
	Bold   Weight = 300
)

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case Bold:
		return "Bold"
	default:
		panic("invalid Weight")
	}
}
