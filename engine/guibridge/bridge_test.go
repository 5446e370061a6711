package guibridge

import (
	"testing"
	"time"

	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/gui"
)

func newTestBridge(t *testing.T, ctx *fakeContext) (*Bridge, *fakeRenderer) {
	t.Helper()
	p, r := newTestPainter(t, PainterOptions{})
	return New(ctx, p), r
}

func TestKeyAThenBeginFrameClearsBatch(t *testing.T) {
	ctx := &fakeContext{font: smallFont()}
	b, _ := newTestBridge(t, ctx)
	host := &fakeHost{}

	b.HandleEvent(host, core.EventKey{Key: core.KeyA, Down: true})
	pending := b.Pending()
	if len(pending.Events) != 1 {
		t.Fatalf("pending = %v", pending.Events)
	}
	want := gui.EventKey{Key: gui.KeyA, Pressed: true}
	if pending.Events[0] != want {
		t.Fatalf("event = %+v, want %+v", pending.Events[0], want)
	}

	b.BeginFrame(16*time.Millisecond, testScreen)
	if len(ctx.frames) != 1 || len(ctx.frames[0].Events) != 1 || ctx.frames[0].Events[0] != want {
		t.Fatalf("context got %+v", ctx.frames)
	}
	if n := len(b.Pending().Events); n != 0 {
		t.Fatalf("batch not cleared: %d events", n)
	}
}

func TestBeginFrameScreenAndClock(t *testing.T) {
	ctx := &fakeContext{font: smallFont()}
	b, _ := newTestBridge(t, ctx)
	screen := Screen{Size: gui.Vec2{X: 640, Y: 360}, PixelsPerPoint: 2}

	b.HandleEvent(&fakeHost{}, core.EventScroll{Yoff: 1})
	b.BeginFrame(250*time.Millisecond, screen)
	b.BeginFrame(-time.Second, screen)
	b.BeginFrame(500*time.Millisecond, Screen{Size: screen.Size})

	if len(ctx.frames) != 3 {
		t.Fatalf("got %d frames", len(ctx.frames))
	}
	f0, f1, f2 := ctx.frames[0], ctx.frames[1], ctx.frames[2]
	if f0.ScreenSize != screen.Size || f0.PixelsPerPoint != 2 || f0.ScrollDelta != (gui.Vec2{Y: 1}) {
		t.Fatalf("frame 0 = %+v", f0)
	}
	if f1.ScrollDelta != (gui.Vec2{}) {
		t.Fatal("scroll carried into the next frame")
	}
	if f0.Time != 0.25 || f1.Time != 0.25 || f2.Time != 0.75 {
		t.Fatalf("times = %v %v %v", f0.Time, f1.Time, f2.Time)
	}
	if f2.PixelsPerPoint != 1 {
		t.Fatalf("unset pixels per point = %v, want 1", f2.PixelsPerPoint)
	}
}

func TestBridgeRenderPaintsTessellatedMeshes(t *testing.T) {
	ctx := &fakeContext{font: smallFont(), meshes: []gui.ClippedMesh{quad(gui.FontTexture), quad(gui.FontTexture)}}
	b, r := newTestBridge(t, ctx)

	b.BeginFrame(time.Millisecond, testScreen)
	_, shapes := b.EndFrame()
	if err := b.Render(shapes); err != nil {
		t.Fatal(err)
	}
	if len(r.draws) != 2 {
		t.Fatalf("drew %d meshes", len(r.draws))
	}
	if b.Painter().Stats().TextureUploads != 1 {
		t.Fatalf("stats = %+v", b.Painter().Stats())
	}
}

func TestFrameClock(t *testing.T) {
	var c FrameClock
	steps := []struct {
		dt   time.Duration
		want float64
	}{
		{0, 0},
		{500 * time.Millisecond, 0.5},
		{-time.Hour, 0.5},
		{1500 * time.Millisecond, 2},
	}
	for i, s := range steps {
		if got := c.Advance(s.dt); got != s.want {
			t.Fatalf("step %d: Advance = %v, want %v", i, got, s.want)
		}
	}
	if c.Seconds() != 2 {
		t.Fatalf("Seconds = %v", c.Seconds())
	}
}

func TestTextureRegistry(t *testing.T) {
	reg := NewTextureRegistry()
	a, b := &fakeTexture{w: 1, h: 1}, &fakeTexture{w: 2, h: 2}
	ida, idb := reg.Register(a), reg.Register(b)
	if ida == idb || !ida.User || ida.ID != 1 || idb.ID != 2 {
		t.Fatalf("ids = %v, %v", ida, idb)
	}
	if tex, ok := reg.ResolveTexture(idb.ID); !ok || tex != core.Texture(b) {
		t.Fatalf("resolve %v = %v %v", idb, tex, ok)
	}

	reg.Unregister(ida)
	reg.Unregister(gui.FontTexture)
	if _, ok := reg.ResolveTexture(ida.ID); ok || reg.Len() != 1 {
		t.Fatalf("after unregister: len %d", reg.Len())
	}
	if idc := reg.Register(a); idc.ID != 3 {
		t.Fatalf("ids must not be reused, got %v", idc)
	}
}

func TestTextureRegistryZeroValue(t *testing.T) {
	var reg TextureRegistry
	if _, ok := reg.ResolveTexture(1); ok {
		t.Fatal("empty registry resolved an id")
	}
	reg.Unregister(gui.UserTexture(1))

	tex := &fakeTexture{w: 1, h: 1}
	id := reg.Register(tex)
	if got, ok := reg.ResolveTexture(id.ID); !ok || got != core.Texture(tex) || reg.Len() != 1 {
		t.Fatalf("resolve %v = %v %v", id, got, ok)
	}
}

type fakeWindow struct {
	w, h, fbW, fbH int
}

func (w *fakeWindow) PollEvents()                       {}
func (w *fakeWindow) SwapBuffers()                      {}
func (w *fakeWindow) ShouldClose() bool                 { return false }
func (w *fakeWindow) RequestClose()                     {}
func (w *fakeWindow) Size() (int, int)                  { return w.w, w.h }
func (w *fakeWindow) FramebufferSize() (int, int)       { return w.fbW, w.fbH }
func (w *fakeWindow) SetTitle(string)                   {}
func (w *fakeWindow) SetEventCallback(func(core.Event)) {}
func (w *fakeWindow) Destroy()                          {}

func TestScreenOf(t *testing.T) {
	s := ScreenOf(&fakeWindow{w: 800, h: 600, fbW: 1600, fbH: 1200})
	if s.Size != (gui.Vec2{X: 800, Y: 600}) || s.PixelsPerPoint != 2 {
		t.Fatalf("screen = %+v", s)
	}
	if s := ScreenOf(&fakeWindow{}); s.PixelsPerPoint != 1 {
		t.Fatalf("minimised window pixels per point = %v", s.PixelsPerPoint)
	}
}

func TestLayerCapture(t *testing.T) {
	tests := []struct {
		name string
		out  gui.Output
		ev   core.Event
		want bool
	}{
		{"click over gui", gui.Output{WantPointerInput: true}, core.EventMouseButton{Down: true}, true},
		{"click elsewhere", gui.Output{}, core.EventMouseButton{Down: true}, false},
		{"scroll over gui", gui.Output{WantPointerInput: true}, core.EventScroll{Yoff: 1}, true},
		{"typing", gui.Output{WantKeyboardInput: true}, core.EventKey{Key: core.KeyA, Down: true}, true},
		{"key without focus", gui.Output{WantPointerInput: true}, core.EventKey{Key: core.KeyA, Down: true}, false},
		{"text input", gui.Output{WantTextInput: true}, core.EventText{Text: "a"}, true},
		{"move never captured", gui.Output{WantPointerInput: true}, core.EventMouseMove{X: 1}, false},
		{"resize never captured", gui.Output{WantKeyboardInput: true}, core.EventResize{W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &fakeContext{font: smallFont(), out: tt.out}
			b, _ := newTestBridge(t, ctx)
			b.BeginFrame(0, testScreen)
			b.EndFrame()

			e := &core.Engine{Input: core.NewInput()}
			l := NewLayer(b, nil)
			if got := l.OnEvent(e, tt.ev); got != tt.want {
				t.Fatalf("OnEvent = %v, want %v", got, tt.want)
			}
		})
	}
}

// sceneStub stands in for a layer pushed below the GUI.
type sceneStub struct{ seen []core.Event }

func (s *sceneStub) OnAttach(*core.Engine)          {}
func (s *sceneStub) OnDetach(*core.Engine)          {}
func (s *sceneStub) OnUpdate(*core.Engine, float64) {}
func (s *sceneStub) OnRender(*core.Engine, float64) {}
func (s *sceneStub) OnEvent(_ *core.Engine, ev core.Event) bool {
	s.seen = append(s.seen, ev)
	return true
}

func TestLayerShieldsLowerLayers(t *testing.T) {
	tests := []struct {
		name      string
		out       gui.Output
		ev        core.Event
		wantBelow bool
	}{
		{"scroll over gui", gui.Output{WantPointerInput: true}, core.EventScroll{Yoff: 1}, false},
		{"scroll over scene", gui.Output{}, core.EventScroll{Yoff: 1}, true},
		{"typing in a field", gui.Output{WantKeyboardInput: true}, core.EventKey{Key: core.KeyW, Down: true}, false},
		{"resize reaches both", gui.Output{WantPointerInput: true, WantKeyboardInput: true}, core.EventResize{W: 2, H: 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &fakeContext{font: smallFont(), out: tt.out}
			b, _ := newTestBridge(t, ctx)
			b.BeginFrame(0, testScreen)
			b.EndFrame()

			e := &core.Engine{Input: core.NewInput()}
			below := &sceneStub{}
			e.PushLayer(below)
			e.PushLayer(NewLayer(b, nil))

			handled := e.Layers.Dispatch(e, tt.ev)
			if got := len(below.seen) == 1; got != tt.wantBelow {
				t.Fatalf("lower layer saw event = %v, want %v", got, tt.wantBelow)
			}
			if !handled {
				t.Fatal("either the GUI or the lower layer handles the event")
			}
		})
	}
}

func TestLayerForwardsEventsEvenWhenNotCapturing(t *testing.T) {
	ctx := &fakeContext{font: smallFont()}
	b, _ := newTestBridge(t, ctx)
	e := &core.Engine{Input: core.NewInput()}
	e.Input.Handle(core.EventMouseMove{X: 5, Y: 6})
	l := NewLayer(b, nil)

	l.OnEvent(e, core.EventMouseButton{Button: core.MouseButtonLeft, Down: true, X: 100, Y: 100})
	ev, ok := b.Pending().Events[0].(gui.EventPointerButton)
	if !ok || ev.Pos != (gui.Vec2{X: 5, Y: 6}) {
		t.Fatalf("pending = %+v", b.Pending().Events)
	}
}

func TestLayerOnRenderRunsOneFrame(t *testing.T) {
	ctx := &fakeContext{font: smallFont(), meshes: []gui.ClippedMesh{quad(gui.FontTexture)}}
	b, r := newTestBridge(t, ctx)
	built := 0
	l := NewLayer(b, func(*core.Engine) { built++ })
	e := &core.Engine{Window: &fakeWindow{w: 100, h: 100, fbW: 100, fbH: 100}, Renderer: r, Input: core.NewInput()}

	l.OnRender(e, 0)
	if built != 1 || len(ctx.frames) != 1 || len(r.draws) != 1 {
		t.Fatalf("built %d, frames %d, draws %d", built, len(ctx.frames), len(r.draws))
	}
}

func TestLayerOnRenderPanicsOnUnresolvedTexture(t *testing.T) {
	ctx := &fakeContext{font: smallFont(), meshes: []gui.ClippedMesh{quad(gui.UserTexture(1))}}
	b, r := newTestBridge(t, ctx)
	l := NewLayer(b, nil)
	e := &core.Engine{Window: &fakeWindow{w: 10, h: 10, fbW: 10, fbH: 10}, Renderer: r, Input: core.NewInput()}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	l.OnRender(e, 0)
}
