// SPDX-License-Identifier: Unlicense OR MIT

// Package widget defines the capability contract shared by widgets and
// overlays: sizing, layout, drawing, event handling, cursor feedback
// and tree operations. Widgets publish application messages to a
// Shell. Scroll is the scroll region used by menus.
package widget
