// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// paletteFile is the YAML form of a Palette. Colors are written
// as "#rrggbb" or "#rrggbbaa".
type paletteFile struct {
	Bg         string `yaml:"bg"`
	Fg         string `yaml:"fg"`
	ContrastBg string `yaml:"contrastBg"`
	ContrastFg string `yaml:"contrastFg"`
}

// LoadPalette decodes a YAML palette from r. Colors missing from the
// file keep their values from base.
func LoadPalette(r io.Reader, base Palette) (Palette, error) {
	var f paletteFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Palette{}, fmt.Errorf("material: decode palette: %w", err)
	}
	p := base
	for _, c := range []struct {
		name string
		src  string
		dst  *color.NRGBA
	}{
		{"bg", f.Bg, &p.Bg},
		{"fg", f.Fg, &p.Fg},
		{"contrastBg", f.ContrastBg, &p.ContrastBg},
		{"contrastFg", f.ContrastFg, &p.ContrastFg},
	} {
		if c.src == "" {
			continue
		}
		col, err := parseColor(c.src)
		if err != nil {
			return Palette{}, fmt.Errorf("material: palette %s: %w", c.name, err)
		}
		*c.dst = col
	}
	return p, nil
}

func parseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return rgb(uint32(v)), nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
