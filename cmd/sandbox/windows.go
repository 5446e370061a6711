package main

import (
	"github.com/hubastard/grovegui/engine/colors"
	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/gui/imguictx"
	"github.com/hubastard/grovegui/engine/profiler"
	"github.com/inkyblackness/imgui-go/v2"
)

type demoState struct {
	clicks  int
	checked bool
	scale   float32
	name    string
}

func newDemoState() demoState {
	return demoState{scale: 1, name: "grove"}
}

func vec4(c colors.Color) imgui.Vec4 { return imgui.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]} }

func heading(label string) {
	imgui.PushStyleColor(imgui.StyleColorText, vec4(colors.Yellow))
	imgui.Text(label)
	imgui.PopStyleColor()
}

func (a *App) statsWindow(e *core.Engine) {
	t := a.text
	t.Reset()

	imgui.SetNextWindowPosV(imgui.Vec2{X: 16, Y: 16}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.PushStyleColor(imgui.StyleColorWindowBg, vec4(colors.Black.WithAlpha(0.5)))
	defer imgui.PopStyleColor()
	if imgui.Begin("Stats") {
		heading(t.S("Frame: ").I(a.tick).Line())
		if a.frameMS > 0 {
			imgui.Text(t.S("\t").F(float64(a.frameMS), 3).S(" ms (").F(1000.0/float64(a.frameMS), 2).S(" FPS)").Line())
		}

		st := a.bridge.Painter().Stats()
		heading("GUI Painter")
		imgui.Text(t.S("\tMeshes: ").I(st.Meshes).Line())
		imgui.Text(t.S("\tDraw Calls: ").I(st.DrawCalls).Line())
		imgui.Text(t.S("\tVertices: ").I(st.Vertices).Line())
		imgui.Text(t.S("\tIndices: ").I(st.Indices).Line())
		imgui.Text(t.S("\tTexture Uploads: ").I(st.TextureUploads).Line())
		imgui.Text(t.S("\tUser Textures: ").I(a.registry.Len()).Line())

		sc := a.scene.Stats()
		heading("Scene")
		imgui.Text(t.S("\tDraw Calls: ").I(sc.DrawCalls).Line())
		imgui.Text(t.S("\tQuads: ").I(sc.QuadCount).Line())
		imgui.Text(t.S("\tVertices: ").I(sc.TotalVertexCount()).Line())
		imgui.Text(t.S("\tIndices: ").I(sc.TotalIndexCount()).Line())
		imgui.Text(t.S("\tTextures: ").I(sc.TextureCount).Line())

		heading("Memory")
		imgui.Text(t.S("\tUsage: ").F(float64(profiler.MemoryUsage())/(1<<20), 3).S(" MB").Line())
		imgui.Text(t.S("\tAllocs: ").U(profiler.MemoryAllocs()).Line())
		imgui.Text(t.S("\tGoroutines: ").I(profiler.NumGoroutine()).Line())

		heading("CPU")
		imgui.Text(t.S("\tCount: ").I(profiler.NumCPU()).Line())

		heading("GPU")
		imgui.Text(t.S("\tVendor: ").S(e.Renderer.GPUVendor()).Line())
		imgui.Text(t.S("\tRenderer: ").S(e.Renderer.GPURenderer()).Line())
		imgui.Text(t.S("\tVersion: ").S(e.Renderer.GPUVersion()).Line())

		out := a.bridge.Output()
		heading("Capture")
		imgui.Text(t.S("\tPointer: ").Bool(out.WantPointerInput).
			S("  Keyboard: ").Bool(out.WantKeyboardInput).
			S("  Text: ").Bool(out.WantTextInput).Line())
	}
	imgui.End()
}

func (a *App) demoWindow(e *core.Engine) {
	d := &a.demo
	imgui.SetNextWindowPosV(imgui.Vec2{X: 360, Y: 16}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if imgui.Begin("Demo") {
		if imgui.Button("Click me") {
			d.clicks++
		}
		imgui.Text(a.text.S("clicked ").I(d.clicks).S(" times").Line())
		imgui.Checkbox("Checkbox", &d.checked)
		imgui.Checkbox("Pause scene", &a.scene.paused)
		imgui.SliderFloat("Image scale", &d.scale, 0.25, 4)
		imgui.InputText("Name", &d.name)
		imgui.Text("Hello, " + d.name)

		if a.hasImage {
			imgui.Separator()
			w, h := a.image.Size()
			imgui.Image(imguictx.TextureRef(a.imageID), imgui.Vec2{X: float32(w) * d.scale, Y: float32(h) * d.scale})
		}

		imgui.Separator()
		imgui.Text("WASD pan, Q/E rotate, wheel zooms the scene")
		if imgui.Button("Quit") {
			e.Window.RequestClose()
		}
	}
	imgui.End()
}
