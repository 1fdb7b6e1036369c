// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
)

// scrollStep is the distance in pixels of one wheel notch.
const scrollStep = 40

// input translates Ebitengine input state to pointer events.
type input struct {
	cursor  f32.Point
	started bool
	ids     []ebiten.TouchID
}

// snapshot is the input state of one tick.
type snapshot struct {
	t        time.Duration
	cursor   f32.Point
	buttons  pointer.Buttons
	pressed  pointer.Buttons
	released pointer.Buttons
	wheel    f32.Point
	touches  []touch
}

type touch struct {
	id      pointer.ID
	pos     f32.Point
	release bool
}

var mouseButtons = []struct {
	eb ebiten.MouseButton
	b  pointer.Buttons
}{
	{ebiten.MouseButtonLeft, pointer.ButtonPrimary},
	{ebiten.MouseButtonRight, pointer.ButtonSecondary},
	{ebiten.MouseButtonMiddle, pointer.ButtonTertiary},
}

// collect reads the input state of the current tick and returns its
// events.
func (in *input) collect(t time.Duration) []event.Event {
	s := snapshot{t: t}
	x, y := ebiten.CursorPosition()
	s.cursor = f32.Pt(float32(x), float32(y))
	for _, mb := range mouseButtons {
		if ebiten.IsMouseButtonPressed(mb.eb) {
			s.buttons |= mb.b
		}
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			s.pressed |= mb.b
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			s.released |= mb.b
		}
	}
	wx, wy := ebiten.Wheel()
	s.wheel = f32.Pt(float32(wx), float32(wy))
	in.ids = inpututil.AppendJustPressedTouchIDs(in.ids[:0])
	for _, id := range in.ids {
		tx, ty := ebiten.TouchPosition(id)
		s.touches = append(s.touches, touch{id: pointer.ID(id), pos: f32.Pt(float32(tx), float32(ty))})
	}
	in.ids = inpututil.AppendJustReleasedTouchIDs(in.ids[:0])
	for _, id := range in.ids {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		s.touches = append(s.touches, touch{id: pointer.ID(id), pos: f32.Pt(float32(tx), float32(ty)), release: true})
	}
	return in.translate(s)
}

// translate converts s to events, in the order move, scroll, press,
// release, touches.
func (in *input) translate(s snapshot) []event.Event {
	var evts []event.Event
	mouse := func(k pointer.Kind) pointer.Event {
		return pointer.Event{
			Kind:     k,
			Source:   pointer.Mouse,
			Time:     s.t,
			Buttons:  s.buttons,
			Position: s.cursor,
		}
	}
	if !in.started || s.cursor != in.cursor {
		in.started = true
		in.cursor = s.cursor
		evts = append(evts, mouse(pointer.Move))
	}
	if s.wheel != (f32.Point{}) {
		e := mouse(pointer.Scroll)
		// Wheel deltas are positive away from the user.
		e.Scroll = s.wheel.Mul(-scrollStep)
		evts = append(evts, e)
	}
	if s.pressed != 0 {
		e := mouse(pointer.Press)
		e.Buttons |= s.pressed
		evts = append(evts, e)
	}
	if s.released != 0 {
		evts = append(evts, mouse(pointer.Release))
	}
	for _, t := range s.touches {
		k := pointer.Press
		if t.release {
			k = pointer.Release
		}
		evts = append(evts, pointer.Event{
			Kind:      k,
			Source:    pointer.Touch,
			PointerID: t.id,
			Time:      s.t,
			Position:  t.pos,
		})
	}
	return evts
}
