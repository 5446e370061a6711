package main

import (
	"testing"

	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/guibridge"
)

type stubWindow struct{ core.Window }

func (stubWindow) FramebufferSize() (int, int) { return 640, 480 }

type stubTexture struct{ w, h int }

func (t *stubTexture) Size() (int, int) { return t.w, t.h }

type stubMesh struct{ vertices, indices int }

func (m *stubMesh) VertexCount() int { return m.vertices }
func (m *stubMesh) IndexCount() int  { return m.indices }

// stubRenderer counts what the scene asks of the GPU.
type stubRenderer struct {
	core.Renderer

	live    int
	draws   []core.DrawCmd
	indices int
}

func (r *stubRenderer) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) { return "p", nil }
func (r *stubRenderer) CreateTexture(core.TextureDesc) (core.Texture, error) {
	r.live++
	return &stubTexture{w: 1, h: 1}, nil
}
func (r *stubRenderer) CreateMesh(core.MeshDesc) (core.Mesh, error) {
	r.live++
	return &stubMesh{}, nil
}
func (r *stubRenderer) UpdateMesh(_ core.Mesh, _ []float32, indices []uint32) error {
	r.indices = len(indices)
	return nil
}
func (r *stubRenderer) Draw(cmd core.DrawCmd)       { r.draws = append(r.draws, cmd) }
func (r *stubRenderer) DestroyMesh(core.Mesh)       { r.live-- }
func (r *stubRenderer) DestroyTexture(core.Texture) { r.live-- }

const sceneQuads = 13 * 9

func attachScene(t *testing.T, sprite core.Texture) (*sceneLayer, *core.Engine, *stubRenderer) {
	t.Helper()
	r := &stubRenderer{}
	e := &core.Engine{Window: stubWindow{}, Renderer: r, Input: core.NewInput()}
	l := newSceneLayer(guibridge.New(nil, nil), sprite)
	e.PushLayer(l)
	return l, e, r
}

func TestSceneLayerRendersOneBatch(t *testing.T) {
	tests := []struct {
		name      string
		sprite    core.Texture
		wantQuads int
	}{
		{"tiles only", nil, sceneQuads},
		{"with sprite", &stubTexture{w: 32, h: 16}, sceneQuads + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, e, r := attachScene(t, tt.sprite)
			l.OnRender(e, 0)
			if len(r.draws) != 1 || r.indices != tt.wantQuads*6 {
				t.Fatalf("draws = %d, indices = %d", len(r.draws), r.indices)
			}
			if st := l.Stats(); st.QuadCount != tt.wantQuads || st.DrawCalls != 1 {
				t.Fatalf("stats = %+v", st)
			}
			if _, ok := r.draws[0].Uniforms["uVP"].([16]float32); !ok {
				t.Fatal("scene draws without a view-projection matrix")
			}

			l.OnDetach(e)
			if r.live != 0 {
				t.Fatalf("%d renderer resources leaked", r.live)
			}
		})
	}
}

func TestSceneLayerInput(t *testing.T) {
	l, e, _ := attachScene(t, nil)

	if !l.OnEvent(e, core.EventScroll{Yoff: 1}) || l.cam.Zoom <= 1 {
		t.Fatalf("wheel did not zoom: %v", l.cam.Zoom)
	}
	if l.OnEvent(e, core.EventResize{W: 100, H: 50}) || l.cam.Right != 50 || l.cam.Top != 25 {
		t.Fatalf("resize: right=%v top=%v", l.cam.Right, l.cam.Top)
	}
	if l.OnEvent(e, core.EventKey{Key: core.KeyEscape, Down: true}) {
		t.Fatal("keys must fall through to the app")
	}

	e.Input.Handle(core.EventKey{Key: core.KeyW, Down: true})
	l.OnUpdate(e, 0.1)
	if l.cam.Y <= 0 {
		t.Fatalf("camera y = %v after holding W", l.cam.Y)
	}
}

func TestSceneLayerPause(t *testing.T) {
	l, e, _ := attachScene(t, nil)
	l.OnUpdate(e, 0.5)
	l.paused = true
	l.OnUpdate(e, 0.5)
	if l.t != 0.5 {
		t.Fatalf("t = %v, want 0.5", l.t)
	}
}
