package guibridge

import (
	"fmt"

	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/gui"
)

type fakeHost struct {
	x, y float64
	mods core.Mod
}

func (h *fakeHost) MousePosition() (float64, float64) { return h.x, h.y }
func (h *fakeHost) IsModDown(m core.Mod) bool         { return m != core.ModNone && h.mods&m == m }

type fakeTexture struct{ w, h int }

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type fakeMesh struct {
	desc core.MeshDesc
}

func (m *fakeMesh) VertexCount() int { return len(m.desc.Vertices) / m.desc.Layout.FloatsPerVertex() }
func (m *fakeMesh) IndexCount() int  { return len(m.desc.Indices) }

// fakeRenderer records every call in order.
type fakeRenderer struct {
	calls    []string
	draws    []core.DrawCmd
	meshes   map[*fakeMesh]bool
	textures map[*fakeTexture][]byte
	failMesh bool
	fbW, fbH int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{meshes: map[*fakeMesh]bool{}, textures: map[*fakeTexture][]byte{}}
}

func (r *fakeRenderer) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *fakeRenderer) Init() error              { return nil }
func (r *fakeRenderer) Resize(w, h int)          { r.fbW, r.fbH = w, h }
func (r *fakeRenderer) Clear(_, _, _, _ float32) {}
func (r *fakeRenderer) Shutdown()                {}
func (r *fakeRenderer) GPUVendor() string        { return "fake" }
func (r *fakeRenderer) GPURenderer() string      { return "fake" }
func (r *fakeRenderer) GPUVersion() string       { return "0" }

func (r *fakeRenderer) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	r.log("pipeline blend=%v depth=%v", desc.Blend, desc.DepthTest)
	return "gui-pipeline", nil
}

func (r *fakeRenderer) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if err := core.ValidateTexture(desc); err != nil {
		return nil, err
	}
	t := &fakeTexture{w: desc.Width, h: desc.Height}
	r.textures[t] = desc.Pixels
	r.log("texture %dx%d", desc.Width, desc.Height)
	return t, nil
}

func (r *fakeRenderer) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if r.failMesh {
		return nil, core.ErrInvalidMesh
	}
	if err := core.ValidateMesh(desc); err != nil {
		return nil, err
	}
	m := &fakeMesh{desc: desc}
	r.meshes[m] = true
	r.log("mesh v=%d i=%d", m.VertexCount(), m.IndexCount())
	return m, nil
}

func (r *fakeRenderer) UpdateMesh(core.Mesh, []float32, []uint32) error { return nil }

func (r *fakeRenderer) DestroyTexture(t core.Texture) {
	delete(r.textures, t.(*fakeTexture))
	r.log("destroy texture")
}

func (r *fakeRenderer) DestroyMesh(m core.Mesh) {
	delete(r.meshes, m.(*fakeMesh))
	r.log("destroy mesh")
}

func (r *fakeRenderer) Draw(cmd core.DrawCmd) {
	r.draws = append(r.draws, cmd)
	r.log("draw i=%d", cmd.Mesh.IndexCount())
}

// fakeContext is a gui.Context that returns canned meshes and records the
// input batches it was handed.
type fakeContext struct {
	frames []gui.RawInput
	meshes []gui.ClippedMesh
	out    gui.Output
	font   gui.FontImage
}

func (c *fakeContext) BeginFrame(in gui.RawInput)              { c.frames = append(c.frames, in) }
func (c *fakeContext) EndFrame() (gui.Output, gui.Shapes)      { return c.out, len(c.meshes) }
func (c *fakeContext) Tessellate(gui.Shapes) []gui.ClippedMesh { return c.meshes }
func (c *fakeContext) FontImage() gui.FontImage                { return c.font }

var _ gui.Context = (*fakeContext)(nil)

func quad(tex gui.TextureID) gui.ClippedMesh {
	return gui.ClippedMesh{
		Clip: gui.Rect{Max: gui.Vec2{X: 100, Y: 100}},
		Mesh: gui.Mesh{
			Vertices: []gui.Vertex{
				{Pos: gui.Vec2{X: 0, Y: 0}},
				{Pos: gui.Vec2{X: 10, Y: 0}},
				{Pos: gui.Vec2{X: 10, Y: 10}},
				{Pos: gui.Vec2{X: 0, Y: 10}},
			},
			Indices: []uint32{0, 1, 2, 0, 2, 3},
			Texture: tex,
		},
	}
}

func smallFont() gui.FontImage {
	return gui.FontImage{Width: 2, Height: 2, Pixels: []byte{0, 64, 128, 255}}
}
