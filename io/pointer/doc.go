// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events and cursor feedback.
Pointer devices include mice and touch screens.

Events

A pointer Event carries its Kind (Press, Release, Move or Scroll), the
Source device and the position of the pointer in window coordinates.
A finger touching the screen is reported as a Press from the Touch
source.

Cursor

Widgets and overlays report the Cursor shape they want while the
pointer hovers them. CursorDefault means no preference and lets an
underlying layer decide.
*/
package pointer
