// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gioui.org/overlay/f32"
	"gioui.org/overlay/io/event"
	"gioui.org/overlay/io/pointer"
	"gioui.org/overlay/layout"
	"gioui.org/overlay/op"
	"gioui.org/overlay/raster"
	"gioui.org/overlay/text"
	"gioui.org/overlay/unit"
)

// ErrClosed is returned by a Handler to close its window.
var ErrClosed = errors.New("app: window closed")

// Option configures a window.
type Option func(*Config)

// Config describes a Window configuration.
type Config struct {
	// Title is the window title.
	Title string
	// Size is the initial window size in device independent
	// pixels.
	Size image.Point
	// Background fills the window before every frame.
	Background color.NRGBA
}

// FrameEvent describes a frame.
type FrameEvent struct {
	Now time.Time
	// Size of the window in pixels.
	Size f32.Point
	// Cursor is the mouse position at the end of the frame.
	Cursor f32.Point
	// Events received since the previous frame, in order.
	Events []event.Event
}

// Handler is a user interface run by a Window.
type Handler interface {
	// Frame processes e and adds the frame's drawing operations to
	// gtx.Ops. It returns the cursor to show, or ErrClosed to
	// close the window.
	Frame(gtx layout.Context, e FrameEvent) (pointer.Cursor, error)
}

// Window is an operating system window.
type Window struct {
	cfg     Config
	handler Handler
	gtx     layout.Context
	ops     op.Ops
	raster  raster.Rasterizer
	input   input
	buf     *image.RGBA
	size    image.Point
	scale   float64
	cursor  pointer.Cursor
	start   time.Time
}

// game adapts a Window to ebiten.Game.
type game struct {
	w *Window
}

// Title sets the title of the window.
func Title(t string) Option {
	return func(cnf *Config) {
		cnf.Title = t
	}
}

// Size sets the size of the window.
func Size(w, h unit.Value) Option {
	if w.V <= 0 {
		panic("width must be larger than 0")
	}
	if h.V <= 0 {
		panic("height must be larger than 0")
	}
	return func(cnf *Config) {
		var m unit.Metric
		cnf.Size = image.Point{
			X: int(m.Px(w) + .5),
			Y: int(m.Px(h) + .5),
		}
	}
}

// Background sets the color the window is cleared with.
func Background(c color.NRGBA) Option {
	return func(cnf *Config) {
		cnf.Background = c
	}
}

// NewWindow returns a window for h. Text is measured and drawn with
// shaper.
func NewWindow(h Handler, shaper *text.Shaper, options ...Option) *Window {
	w := &Window{
		cfg: Config{
			Title:      "Overlay",
			Size:       image.Pt(800, 600),
			Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		},
		handler: h,
		scale:   1,
	}
	for _, o := range options {
		o(&w.cfg)
	}
	w.gtx.Ops = &w.ops
	w.gtx.Shaper = shaper
	w.raster.Shaper = shaper
	return w
}

// Run shows the window and runs its handler until the handler
// returns ErrClosed or the window is closed. Run must be called
// from the main goroutine.
func (w *Window) Run() error {
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowSize(w.cfg.Size.X, w.cfg.Size.Y)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w.start = time.Now()
	err := ebiten.RunGame(game{w: w})
	if errors.Is(err, ErrClosed) {
		return nil
	}
	if err != nil {
		log.Printf("app: frame: %v", err)
	}
	return err
}

func (w *Window) frame() error {
	if w.size == (image.Point{}) {
		return nil
	}
	now := time.Now()
	evts := w.input.collect(now.Sub(w.start))
	w.gtx.Metric = unit.Metric{PxPerDp: float32(w.scale), PxPerSp: float32(w.scale)}
	w.gtx.Reset(now)
	cur, err := w.handler.Frame(w.gtx, FrameEvent{
		Now:    now,
		Size:   f32.Pt(float32(w.size.X), float32(w.size.Y)),
		Cursor: w.input.cursor,
		Events: evts,
	})
	if err != nil {
		return err
	}
	if cur != w.cursor {
		w.cursor = cur
		setCursor(cur)
	}
	return nil
}

func (w *Window) draw(screen *ebiten.Image) {
	sz := screen.Bounds().Size()
	if w.buf == nil || w.buf.Bounds().Size() != sz {
		w.buf = image.NewRGBA(image.Rectangle{Max: sz})
	}
	draw.Draw(w.buf, w.buf.Bounds(), image.NewUniform(w.cfg.Background), image.Point{}, draw.Src)
	w.raster.Frame(&w.ops, w.buf)
	screen.WritePixels(w.buf.Pix)
}

func (g game) Update() error {
	return g.w.frame()
}

func (g game) Draw(screen *ebiten.Image) {
	g.w.draw(screen)
}

func (g game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.w
	w.scale = ebiten.Monitor().DeviceScaleFactor()
	w.size = image.Point{
		X: int(float64(outsideWidth) * w.scale),
		Y: int(float64(outsideHeight) * w.scale),
	}
	return w.size.X, w.size.Y
}

func setCursor(c pointer.Cursor) {
	shape, visible := cursorShape(c)
	if !visible {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetCursorShape(shape)
}

// cursorShape maps c to the closest Ebitengine cursor shape. It
// reports false for a hidden cursor.
func cursorShape(c pointer.Cursor) (ebiten.CursorShapeType, bool) {
	switch c {
	case pointer.CursorNone:
		return ebiten.CursorShapeDefault, false
	case pointer.CursorText:
		return ebiten.CursorShapeText, true
	case pointer.CursorPointer:
		return ebiten.CursorShapePointer, true
	case pointer.CursorCrosshair:
		return ebiten.CursorShapeCrosshair, true
	case pointer.CursorGrab:
		return ebiten.CursorShapeMove, true
	case pointer.CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed, true
	default:
		return ebiten.CursorShapeDefault, true
	}
}
