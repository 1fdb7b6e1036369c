// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements the Material design look of overlays
// and menus.
//
// A Theme resolves opaque style tokens into concrete appearances. For
// example, a menu asks the theme for the MenuAppearance of its
// MenuStyle when it draws:
//
//     th := material.NewTheme(gofont.Collection())
//     appearance := th.Menu(material.MenuDefault)
//
// Customization
//
// Theme-global parameters: for changing the look of everything drawn
// with a theme, adjust the Palette:
//
//     th.Palette.ContrastBg = color.NRGBA{...}
//
// A Palette can also be loaded from a YAML file with LoadPalette.
//
// Widget-local parameters: a menu carries its own MenuStyle token,
// so two menus drawn with the same theme can look different.
package material
