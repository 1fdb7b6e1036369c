// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides drawing operations for 2D graphics.

A Quad fills a rectangle with a solid color, optionally with rounded
corners and a border, taking the current clip and transformation into
account. An ImageOp draws an image scaled into a rectangle.
*/
package paint
