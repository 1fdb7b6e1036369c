// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"encoding/binary"
	"image/color"
	"math"

	"gioui.org/overlay/f32"
)

type Ops struct {
	// version is incremented at each Reset.
	version int
	// data contains the serialized operations.
	data []byte
	// refs hold external references for operations.
	refs []interface{}

	stacks [2]stack
}

type OpType byte

// Start at a high number for easier debugging.
const firstOpIndex = 200

const (
	TypeTransform OpType = iota + firstOpIndex
	TypePopTransform
	TypeClip
	TypePopClip
	TypeQuad
	TypeText
	TypeImage
)

type StackID struct {
	id   int
	prev int
}

// stack tracks the integer identities of stack operations to ensure correct
// pairing of their push and pop methods.
type stack struct {
	currentID int
	nextID    int
}

type StackKind uint8

const (
	ClipStack StackKind = iota
	TransStack
)

const (
	TypeTransformLen    = 1 + 4*2
	TypePopTransformLen = 1
	TypeClipLen         = 1 + 4*4
	TypePopClipLen      = 1
	TypeQuadLen         = 1 + 4*4 + 4 + 4 + 4 + 4
	TypeTextLen         = 1 + 4*4 + 4 + 4 + 1 + 1
	TypeImageLen        = 1 + 4*4
)

// Quad is the decoded form of a fill-quad operation.
type Quad struct {
	Bounds      f32.Rectangle
	Radius      float32
	BorderWidth float32
	BorderColor color.NRGBA
	Color       color.NRGBA
}

// Text is the decoded form of a fill-text operation. The string
// and font are carried as references.
type Text struct {
	Bounds f32.Rectangle
	Size   float32
	Color  color.NRGBA
	// Alignment of the text relative to Bounds.Min, as the
	// byte values of text.Alignment and text.VAlignment.
	Align, VAlign uint8
}

func (o *Ops) Reset() {
	for i := range o.stacks {
		o.stacks[i] = stack{}
	}
	// Leave references to the GC.
	for i := range o.refs {
		o.refs[i] = nil
	}
	o.data = o.data[:0]
	o.refs = o.refs[:0]
	o.version++
}

func (o *Ops) Data() []byte {
	return o.data
}

func (o *Ops) Refs() []interface{} {
	return o.refs
}

func (o *Ops) Version() int {
	return o.version
}

func (o *Ops) Write(n int, refs ...interface{}) []byte {
	o.data = append(o.data, make([]byte, n)...)
	o.refs = append(o.refs, refs...)
	return o.data[len(o.data)-n:]
}

func (o *Ops) PushOp(kind StackKind) StackID {
	return o.stacks[kind].push()
}

func (o *Ops) PopOp(kind StackKind, sid StackID) {
	o.stacks[kind].pop(sid)
}

// Balanced reports whether every pushed stack operation has been
// popped.
func (o *Ops) Balanced() bool {
	for _, s := range o.stacks {
		if s.currentID != 0 {
			return false
		}
	}
	return true
}

func (s *stack) push() StackID {
	s.nextID++
	sid := StackID{
		id:   s.nextID,
		prev: s.currentID,
	}
	s.currentID = s.nextID
	return sid
}

func (s *stack) check(sid StackID) {
	if s.currentID != sid.id {
		panic("unbalanced operation")
	}
}

func (s *stack) pop(sid StackID) {
	s.check(sid)
	s.currentID = sid.prev
}

func EncodeTransform(data []byte, off f32.Point) {
	data[0] = byte(TypeTransform)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], math.Float32bits(off.X))
	bo.PutUint32(data[5:], math.Float32bits(off.Y))
}

func DecodeTransform(data []byte) f32.Point {
	if OpType(data[0]) != TypeTransform {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	return f32.Point{
		X: math.Float32frombits(bo.Uint32(data[1:])),
		Y: math.Float32frombits(bo.Uint32(data[5:])),
	}
}

func EncodeClip(data []byte, r f32.Rectangle) {
	data[0] = byte(TypeClip)
	encodeRect(data[1:], r)
}

func DecodeClip(data []byte) f32.Rectangle {
	if OpType(data[0]) != TypeClip {
		panic("invalid op")
	}
	return decodeRect(data[1:])
}

func EncodeQuad(data []byte, q Quad) {
	data[0] = byte(TypeQuad)
	bo := binary.LittleEndian
	encodeRect(data[1:], q.Bounds)
	bo.PutUint32(data[17:], math.Float32bits(q.Radius))
	bo.PutUint32(data[21:], math.Float32bits(q.BorderWidth))
	encodeColor(data[25:], q.BorderColor)
	encodeColor(data[29:], q.Color)
}

func DecodeQuad(data []byte) Quad {
	if OpType(data[0]) != TypeQuad {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	return Quad{
		Bounds:      decodeRect(data[1:]),
		Radius:      math.Float32frombits(bo.Uint32(data[17:])),
		BorderWidth: math.Float32frombits(bo.Uint32(data[21:])),
		BorderColor: decodeColor(data[25:]),
		Color:       decodeColor(data[29:]),
	}
}

func EncodeText(data []byte, t Text) {
	data[0] = byte(TypeText)
	bo := binary.LittleEndian
	encodeRect(data[1:], t.Bounds)
	bo.PutUint32(data[17:], math.Float32bits(t.Size))
	encodeColor(data[21:], t.Color)
	data[25] = t.Align
	data[26] = t.VAlign
}

func DecodeText(data []byte) Text {
	if OpType(data[0]) != TypeText {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	return Text{
		Bounds: decodeRect(data[1:]),
		Size:   math.Float32frombits(bo.Uint32(data[17:])),
		Color:  decodeColor(data[21:]),
		Align:  data[25],
		VAlign: data[26],
	}
}

func EncodeImage(data []byte, r f32.Rectangle) {
	data[0] = byte(TypeImage)
	encodeRect(data[1:], r)
}

func DecodeImage(data []byte) f32.Rectangle {
	if OpType(data[0]) != TypeImage {
		panic("invalid op")
	}
	return decodeRect(data[1:])
}

func encodeRect(data []byte, r f32.Rectangle) {
	bo := binary.LittleEndian
	bo.PutUint32(data[0:], math.Float32bits(r.Min.X))
	bo.PutUint32(data[4:], math.Float32bits(r.Min.Y))
	bo.PutUint32(data[8:], math.Float32bits(r.Max.X))
	bo.PutUint32(data[12:], math.Float32bits(r.Max.Y))
}

func decodeRect(data []byte) f32.Rectangle {
	bo := binary.LittleEndian
	return f32.Rectangle{
		Min: f32.Point{
			X: math.Float32frombits(bo.Uint32(data[0:])),
			Y: math.Float32frombits(bo.Uint32(data[4:])),
		},
		Max: f32.Point{
			X: math.Float32frombits(bo.Uint32(data[8:])),
			Y: math.Float32frombits(bo.Uint32(data[12:])),
		},
	}
}

func encodeColor(data []byte, c color.NRGBA) {
	data[0] = c.R
	data[1] = c.G
	data[2] = c.B
	data[3] = c.A
}

func decodeColor(data []byte) color.NRGBA {
	return color.NRGBA{R: data[0], G: data[1], B: data[2], A: data[3]}
}

func (t OpType) Size() int {
	return [...]int{
		TypeTransformLen,
		TypePopTransformLen,
		TypeClipLen,
		TypePopClipLen,
		TypeQuadLen,
		TypeTextLen,
		TypeImageLen,
	}[t-firstOpIndex]
}

// NumRefs returns the number of external references carried by
// an operation of type t.
func (t OpType) NumRefs() int {
	switch t {
	case TypeText:
		return 2
	case TypeImage:
		return 1
	default:
		return 0
	}
}

func (t OpType) String() string {
	switch t {
	case TypeTransform:
		return "Transform"
	case TypePopTransform:
		return "PopTransform"
	case TypeClip:
		return "Clip"
	case TypePopClip:
		return "PopClip"
	case TypeQuad:
		return "Quad"
	case TypeText:
		return "Text"
	case TypeImage:
		return "Image"
	default:
		panic("unknown OpType")
	}
}
