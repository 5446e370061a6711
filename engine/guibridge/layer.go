package guibridge

import (
	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/profiler"
)

// Layer runs a Bridge inside the engine's layer stack. Push it last so it
// sees events first and draws on top.
type Layer struct {
	Bridge *Bridge
	// Build defines the GUI content; it runs between BeginFrame and EndFrame.
	Build func(e *core.Engine)
}

var _ core.Layer = (*Layer)(nil)

func NewLayer(b *Bridge, build func(e *core.Engine)) *Layer {
	return &Layer{Bridge: b, Build: build}
}

func (l *Layer) OnAttach(e *core.Engine)            {}
func (l *Layer) OnDetach(e *core.Engine)            {}
func (l *Layer) OnUpdate(e *core.Engine, _ float64) {}

// OnEvent feeds the GUI and stops propagation for input the GUI captured
// during the previous frame.
func (l *Layer) OnEvent(e *core.Engine, ev core.Event) bool {
	l.Bridge.HandleEvent(e.Input, ev)

	out := l.Bridge.Output()
	switch ev.(type) {
	case core.EventMouseButton, core.EventScroll:
		return out.WantPointerInput
	case core.EventKey:
		return out.WantKeyboardInput
	case core.EventText:
		return out.WantTextInput || out.WantKeyboardInput
	}
	return false
}

// OnRender runs one GUI frame. Render failures mean the translation produced
// something the renderer cannot draw; they are not recoverable.
func (l *Layer) OnRender(e *core.Engine, _ float64) {
	defer profiler.Start("guibridge.Layer.OnRender")()

	l.Bridge.BeginFrame(e.DeltaTime(), ScreenOf(e.Window))
	if l.Build != nil {
		l.Build(e)
	}
	_, shapes := l.Bridge.EndFrame()
	if err := l.Bridge.Render(shapes); err != nil {
		panic(err)
	}
}
