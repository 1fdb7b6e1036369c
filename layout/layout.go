// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/unit"
)

// Limits represent the acceptable range of sizes for a widget
// or overlay.
type Limits struct {
	Min, Max f32.Point
}

// Length is a sizing policy along one axis.
type Length struct {
	kind lengthKind
	px   float32
}

type lengthKind uint8

const (
	lengthShrink lengthKind = iota
	lengthFill
	lengthFixed
)

var (
	// Shrink sizes to the intrinsic content size.
	Shrink = Length{kind: lengthShrink}
	// Fill takes all the available space.
	Fill = Length{kind: lengthFill}
)

// Fixed returns a Length of exactly px pixels, subject to the
// limits in effect.
func Fixed(px float32) Length {
	return Length{kind: lengthFixed, px: px}
}

// Inset adds space around a widget.
type Inset struct {
	Top, Right, Bottom, Left unit.Value
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Value) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Vertical returns the sum of the top and bottom insets in pixels.
func (in Inset) Vertical(m unit.Metric) float32 {
	return m.Px(in.Top) + m.Px(in.Bottom)
}

// Horizontal returns the sum of the left and right insets in pixels.
func (in Inset) Horizontal(m unit.Metric) float32 {
	return m.Px(in.Left) + m.Px(in.Right)
}

// Exact returns the limits that can only be satisfied by the given
// size.
func Exact(size f32.Point) Limits {
	return Limits{Min: size, Max: size}
}

// NewLimits returns the limits for sizes between min and max.
func NewLimits(min, max f32.Point) Limits {
	return Limits{Min: min, Max: max}
}

// Loose returns the limits with the minimum size removed.
func (l Limits) Loose() Limits {
	l.Min = f32.Point{}
	return l
}

// Width constrains the width according to the policy w. A Fixed
// width is clamped to the current range; Fill and Shrink leave the
// range untouched and are applied by Resolve.
func (l Limits) Width(w Length) Limits {
	if w.kind == lengthFixed {
		v := clamp(w.px, l.Min.X, l.Max.X)
		l.Min.X, l.Max.X = v, v
	}
	return l
}

// Height is like Width for the vertical axis.
func (l Limits) Height(h Length) Limits {
	if h.kind == lengthFixed {
		v := clamp(h.px, l.Min.Y, l.Max.Y)
		l.Min.Y, l.Max.Y = v, v
	}
	return l
}

// MaxHeight caps the maximum height at h.
func (l Limits) MaxHeight(h float32) Limits {
	if h < l.Max.Y {
		l.Max.Y = max32(h, l.Min.Y)
	}
	return l
}

// Shrink returns the limits reduced by size on both ends.
func (l Limits) Shrink(size f32.Point) Limits {
	l.Min = f32.Point{X: max32(l.Min.X-size.X, 0), Y: max32(l.Min.Y-size.Y, 0)}
	l.Max = f32.Point{X: max32(l.Max.X-size.X, 0), Y: max32(l.Max.Y-size.Y, 0)}
	return l
}

// Constrain a size to the Min and Max ranges.
func (l Limits) Constrain(size f32.Point) f32.Point {
	return f32.Point{
		X: clamp(size.X, l.Min.X, l.Max.X),
		Y: clamp(size.Y, l.Min.Y, l.Max.Y),
	}
}

// Resolve computes the final size for a widget with the given
// intrinsic size and sizing policies. Fill takes the maximum
// (or the intrinsic size when the maximum is unbounded); Shrink and
// Fixed take the intrinsic size constrained to the limits.
func (l Limits) Resolve(width, height Length, intrinsic f32.Point) f32.Point {
	sz := l.Constrain(intrinsic)
	if width.kind == lengthFill && !isInf(l.Max.X) {
		sz.X = l.Max.X
	}
	if height.kind == lengthFill && !isInf(l.Max.Y) {
		sz.Y = l.Max.Y
	}
	return sz
}

func clamp(v, min, max float32) float32 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func isInf(v float32) bool {
	return math.IsInf(float64(v), +1)
}

func (l Length) String() string {
	switch l.kind {
	case lengthShrink:
		return "Shrink"
	case lengthFill:
		return "Fill"
	default:
		return "Fixed"
	}
}
