// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units and values.

A Value is a value with a Unit attached.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays.

Overlay layout is computed in float32 pixels; a Metric converts
Values at the boundary.

*/
package unit

import "fmt"

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

const (
	// UnitPx represent device pixels in the resolution of
	// the underlying display.
	UnitPx Unit = iota
	// UnitDp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	UnitDp
	// UnitSp is like UnitDp but for font sizes.
	UnitSp
)

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Dp returns the Value for v device independent
// pixels.
func Dp(v float32) Value {
	return Value{V: v, U: UnitDp}
}

// Sp returns the Value for v scaled dps.
func Sp(v float32) Value {
	return Value{V: v, U: UnitSp}
}

// Scale returns the value scaled by s.
func (v Value) Scale(s float32) Value {
	v.V *= s
	return v
}

// IsZero reports whether v has no magnitude, regardless of unit.
func (v Value) IsZero() bool {
	return v.V == 0
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	case UnitSp:
		return "sp"
	default:
		panic("unknown unit")
	}
}

// Px converts v to pixels.
func (c Metric) Px(v Value) float32 {
	switch v.U {
	case UnitPx:
		return v.V
	case UnitDp:
		return v.V * nonZero(c.PxPerDp)
	case UnitSp:
		return v.V * nonZero(c.PxPerSp)
	default:
		panic("unknown unit")
	}
}

// Dp converts v dp to pixels.
func (c Metric) Dp(v float32) float32 {
	return c.Px(Dp(v))
}

// Sp converts v sp to pixels.
func (c Metric) Sp(v float32) float32 {
	return c.Px(Sp(v))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
