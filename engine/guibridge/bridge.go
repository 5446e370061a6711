// Package guibridge connects a gui.Context to the engine: it translates
// engine input events into the GUI's pending input batch and paints the
// GUI's tessellated meshes with the engine renderer.
//
// A frame runs BeginFrame, content building, EndFrame, Render strictly in
// that order on the render thread. Events arriving between frames go to
// HandleEvent and are handed to the GUI at the next BeginFrame.
package guibridge

import (
	"time"

	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/gui"
)

type Bridge struct {
	ctx     gui.Context
	painter *Painter

	pending gui.RawInput
	clock   FrameClock
	screen  Screen
	output  gui.Output
}

func New(ctx gui.Context, painter *Painter) *Bridge {
	return &Bridge{ctx: ctx, painter: painter}
}

func (b *Bridge) Painter() *Painter { return b.painter }

// Output is what the GUI reported at the end of the last frame.
func (b *Bridge) Output() gui.Output { return b.output }

// Pending returns the batch collected since the last BeginFrame.
func (b *Bridge) Pending() gui.RawInput { return b.pending }

// HandleEvent translates ev into the pending batch.
func (b *Bridge) HandleEvent(host HostInput, ev core.Event) {
	HandleEvent(host, &b.pending, ev)
}

// BeginFrame advances the GUI clock by dt and hands the pending batch over.
func (b *Bridge) BeginFrame(dt time.Duration, screen Screen) {
	b.screen = screen
	b.pending.Time = b.clock.Advance(dt)
	b.pending.ScreenSize = screen.Size
	b.pending.PixelsPerPoint = screen.pixelsPerPoint()
	b.ctx.BeginFrame(b.pending.Take())
}

func (b *Bridge) EndFrame() (gui.Output, gui.Shapes) {
	out, shapes := b.ctx.EndFrame()
	b.output = out
	return out, shapes
}

// Render tessellates shapes and paints them onto the screen given to the
// matching BeginFrame.
func (b *Bridge) Render(shapes gui.Shapes) error {
	meshes := b.ctx.Tessellate(shapes)
	return b.painter.Paint(b.screen, meshes, b.ctx.FontImage())
}

// ScreenOf measures win: size in screen coordinates, pixels per point from
// the framebuffer ratio.
func ScreenOf(win core.Window) Screen {
	w, h := win.Size()
	fw, _ := win.FramebufferSize()
	s := Screen{Size: gui.Vec2{X: float32(w), Y: float32(h)}, PixelsPerPoint: 1}
	if w > 0 && fw > 0 {
		s.PixelsPerPoint = float32(fw) / float32(w)
	}
	return s
}
