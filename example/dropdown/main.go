// SPDX-License-Identifier: Unlicense OR MIT

package main

// A program that demonstrates a drop down list with a nested submenu.

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"gioui.org/overlay/app"
	"gioui.org/overlay/f32"
	"gioui.org/overlay/font/gofont"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/op/paint"
	"gioui.org/overlay/overlay"
	"gioui.org/overlay/overlay/menu"
	"gioui.org/overlay/text"
	"gioui.org/overlay/unit"
	"gioui.org/overlay/widget"
	"gioui.org/overlay/widget/material"
)

var palette = flag.String("palette", "", "load theme colors from a YAML file")

const fadeOut = 0.15

// item is an option of the main menu. Items with a submenu open it
// while hovered.
type item struct {
	name string
	sub  []string
}

var items = []item{
	{name: "Apple"},
	{name: "Banana"},
	{name: "Cherry"},
	{name: "Colors", sub: []string{"Red", "Green", "Blue", "Purple"}},
	{name: "Date"},
	{name: "Elderberry"},
	{name: "Fig"},
	{name: "Grape"},
	{name: "Kiwi"},
	{name: "Lemon"},
	{name: "Mango"},
	{name: "Orange"},
}

type ui struct {
	th     *material.Theme
	picked string

	trigger f32.Rectangle
	state   menu.State
	hovered menu.Hover
	sub     menu.State
	subHov  menu.Hover
	shell   widget.Shell[string]

	fade *gween.Tween
	last time.Time
}

func main() {
	flag.Parse()
	th := material.NewTheme(gofont.Collection())
	if *palette != "" {
		f, err := os.Open(*palette)
		if err != nil {
			log.Fatal(err)
		}
		p, err := material.LoadPalette(f, th.Palette)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		th.Palette = p
	}
	u := &ui{
		th:      th,
		picked:  items[0].name,
		trigger: f32.Rect(20, 20, 240, 52),
	}
	w := app.NewWindow(u, th.Shaper,
		app.Title("Dropdown"),
		app.Size(unit.Dp(480), unit.Dp(360)),
		app.Background(th.Bg),
	)
	if err := w.Run(); err != nil {
		log.Fatal(err)
	}
}

func (u *ui) Frame(gtx layout.Context, e app.FrameEvent) (pointer.Cursor, error) {
	dt := float32(0)
	if !u.last.IsZero() {
		dt = float32(e.Now.Sub(u.last).Seconds())
	}
	u.last = e.Now
	gtx.TextSize = u.th.TextSize

	nested := overlay.NewNested(u.menu().Overlay(f32.Pt(u.trigger.Min.X, u.trigger.Min.Y), u.trigger.Dy()))
	var root layout.Layout
	relayout := func() {
		node := nested.Layout(gtx, e.Size, f32.Point{})
		root = layout.NewLayout(&node)
	}
	relayout()

	cursor := e.Cursor
	for _, ev := range e.Events {
		if pe, ok := ev.(pointer.Event); ok {
			cursor = pe.Position
		}
		u.event(gtx, nested, root, ev, cursor)
		// Hover changes may expose or hide the submenu.
		relayout()
	}
	for _, m := range u.shell.Messages() {
		log.Printf("selected %s", m)
		u.picked = m
		u.state.Close()
		u.sub.Close()
		relayout()
	}
	if i, ok := u.hovered.Index(); !ok || i < 0 || i >= len(items) || items[i].sub == nil {
		u.sub.Close()
	}

	th := u.th
	if u.state.IsClosing() {
		if u.fade == nil {
			u.fade = gween.New(1, 0, fadeOut, ease.OutQuad)
		}
		alpha, done := u.fade.Update(dt)
		if done {
			u.state.Close()
			u.sub.Close()
			u.fade = nil
		}
		th = th.Fade(alpha)
	}

	u.drawTrigger(gtx, cursor)
	if u.state.Status() != menu.Closed {
		nested.Draw(gtx, th, widget.Style{TextColor: th.Fg}, root, cursor)
		if c := nested.Cursor(gtx, root, cursor, f32.Rect(0, 0, e.Size.X, e.Size.Y)); c != pointer.CursorDefault {
			return c, nil
		}
		if nested.IsOver(gtx, root, cursor) {
			return pointer.CursorDefault, nil
		}
	}
	if cursor.In(u.trigger) {
		return pointer.CursorPointer, nil
	}
	return pointer.CursorDefault, nil
}

func (u *ui) event(gtx layout.Context, nested *overlay.Nested[string], root layout.Layout, ev event.Event, cursor f32.Point) {
	if u.state.Status() == menu.Open {
		status, _ := nested.Update(gtx, ev, root, cursor, &u.shell)
		if status == event.Captured {
			return
		}
	}
	pe, ok := ev.(pointer.Event)
	if !ok || !(pe.IsPrimaryPress() || pe.IsTouchBegin()) || !cursor.In(u.trigger) {
		return
	}
	switch u.state.Status() {
	case menu.Closed:
		u.state.Open()
		u.hovered.Clear()
		u.fade = nil
	case menu.Open:
		u.state.Close()
	}
}

func (u *ui) menu() *menu.Menu[item, string] {
	m := menu.New(&u.state, items, &u.hovered, func(it item) string { return it.name })
	m.Width = u.trigger.Dx()
	m.Padding = layout.UniformInset(unit.Dp(6))
	m.Label = func(it item) string {
		if it.sub != nil {
			return it.name + " >"
		}
		return it.name
	}
	m.Selected = func(it item) bool { return it.name == u.picked }
	m.Submenu = func(i int, row f32.Rectangle) *overlay.Element[string] {
		if items[i].sub == nil {
			return nil
		}
		if u.sub.Status() == menu.Closed {
			u.sub.Open()
			u.subHov.Clear()
		}
		sm := menu.New(&u.sub, items[i].sub, &u.subHov, func(c string) string { return c })
		sm.Width = 140
		sm.Padding = m.Padding
		sm.Style = material.MenuContrast
		sm.Selected = func(c string) bool { return c == u.picked }
		return sm.Overlay(f32.Pt(row.Max.X, row.Min.Y), 0)
	}
	return m
}

func (u *ui) drawTrigger(gtx layout.Context, cursor f32.Point) {
	a := u.th.Menu(material.MenuDefault)
	bg := a.Background
	if cursor.In(u.trigger) {
		bg = u.th.Fade(.9).ContrastBg
	}
	paint.Quad{
		Bounds:      u.trigger,
		Radius:      4,
		BorderWidth: 1,
		BorderColor: a.BorderColor,
	}.Fill(gtx.Ops, bg)
	pad := gtx.Dp(8)
	text.Label{
		Size:       gtx.TextPx(unit.Value{}),
		Color:      a.TextColor,
		VAlignment: text.Center,
	}.Add(gtx.Ops, f32.Rect(u.trigger.Min.X+pad, u.trigger.Min.Y, u.trigger.Max.X-pad, u.trigger.Max.Y), u.picked)
}
