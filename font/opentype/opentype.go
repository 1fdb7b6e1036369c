// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements text layout and shaping for OpenType
// files.
package opentype

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// Face is a thread-safe representation of a loaded font. For efficiency,
// applications should construct a face for any given font file once,
// reusing it across different text shapers.
type Face struct {
	font *sfnt.Font
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("opentype: %w", err)
	}
	return Face{font: f}, nil
}

// Font returns the parsed font.
func (f Face) Font() *sfnt.Font {
	return f.font
}

// Name returns the full name of the face, if present.
func (f Face) Name() string {
	var buf sfnt.Buffer
	name, err := f.font.Name(&buf, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}
