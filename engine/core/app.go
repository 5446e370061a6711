package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events not handled by a layer
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack

	start time.Time
	delta time.Duration
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// DeltaTime is the wall time between the last two rendered frames.
func (e *Engine) DeltaTime() time.Duration { return e.delta }

// PushLayer attaches l on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	Size() (int, int)            // in screen coordinates
	FramebufferSize() (int, int) // in pixels
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy() // releases the window; called once after the loop ends
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}
