package main

import (
	"github.com/hubastard/grovegui/engine/colors"
	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/gfx/renderer2d"
	"github.com/hubastard/grovegui/engine/guibridge"
	"github.com/hubastard/grovegui/engine/profiler"
	"github.com/hubastard/grovegui/engine/scene"
)

// sceneLayer draws an animated 2D scene under the GUI. It sits below the GUI
// layer, so it only sees input the GUI let through.
type sceneLayer struct {
	gui    *guibridge.Bridge
	sprite core.Texture // optional

	cam    *scene.OrthoCamera2D
	ctrl   *scene.OrthoController2D
	r2d    *renderer2d.Renderer2D
	t      float32
	paused bool
}

var tileColors = [...]colors.Color{colors.Lavender, colors.Cyan, colors.Magenta, colors.Gray}

func newSceneLayer(gui *guibridge.Bridge, sprite core.Texture) *sceneLayer {
	return &sceneLayer{gui: gui, sprite: sprite}
}

func (l *sceneLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)
	l.ctrl = scene.NewOrthoController2D(l.cam)

	r2d, err := renderer2d.New(e.Renderer, 0)
	if err != nil {
		panic(err)
	}
	l.r2d = r2d
}

func (l *sceneLayer) OnDetach(e *core.Engine) { l.r2d.Destroy() }

func (l *sceneLayer) OnUpdate(e *core.Engine, dt float64) {
	// Keys typed into a GUI text field still reach Input.
	if !l.gui.Output().WantKeyboardInput {
		l.ctrl.Update(e, float32(dt))
	}
	if !l.paused {
		l.t += float32(dt)
	}
}

func (l *sceneLayer) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("sceneLayer.OnRender")()

	l.r2d.BeginScene(l.cam.VP())
	for ix := -6; ix <= 6; ix++ {
		for iy := -4; iy <= 4; iy++ {
			c := tileColors[(ix+iy)&3].WithAlpha(0.6)
			rot := l.t * 0.25 * float32(1+(ix^iy)&1)
			l.r2d.DrawQuad(float32(ix)*96, float32(iy)*96, 64, 64, c, rot)
		}
	}
	if l.sprite != nil {
		w, h := l.sprite.Size()
		size := float32(160)
		l.r2d.DrawTexturedQuad(0, 0, size, size*float32(h)/float32(w), l.sprite, colors.White, -l.t*0.5)
	}
	if err := l.r2d.EndScene(); err != nil {
		panic(err)
	}
}

func (l *sceneLayer) Stats() renderer2d.Statistics { return l.r2d.Stats() }

func (l *sceneLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		if v.W > 0 && v.H > 0 {
			l.cam.SetViewportPixels(v.W, v.H)
		}
	case core.EventScroll:
		return l.ctrl.HandleEvent(ev)
	}
	return false
}
