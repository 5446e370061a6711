package glbackend

import (
	"log/slog"
	"sort"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grovegui/engine/core"
)

type RendererGL struct {
	win            core.Window
	fbW, fbH       int
	maxTextureSize int

	pipelines []*glPipeline
	meshes    map[*glMesh]struct{}
	textures  map[*glTexture]struct{}
}

var _ core.Renderer = (*RendererGL)(nil)

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{
		win:      win,
		meshes:   map[*glMesh]struct{}{},
		textures: map[*glTexture]struct{}{},
	}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var maxTex int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTex)
	r.maxTextureSize = int(maxTex)

	r.fbW, r.fbH = r.win.FramebufferSize()
	gl.Viewport(0, 0, int32(r.fbW), int32(r.fbH))

	slog.Info("gl renderer ready",
		"vendor", r.GPUVendor(),
		"renderer", r.GPURenderer(),
		"version", r.GPUVersion(),
		"maxTextureSize", r.maxTextureSize)
	return nil
}

// Shutdown releases everything the renderer still tracks.
func (r *RendererGL) Shutdown() {
	if n := len(r.meshes) + len(r.textures); n != 0 {
		slog.Warn("gl resources still alive at shutdown", "meshes", len(r.meshes), "textures", len(r.textures))
	}
	for m := range r.meshes {
		r.DestroyMesh(m)
	}
	for t := range r.textures {
		r.DestroyTexture(t)
	}
	for _, p := range r.pipelines {
		gl.DeleteProgram(p.program)
	}
	r.pipelines = nil
}

func (r *RendererGL) Resize(w, h int) {
	r.fbW, r.fbH = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

// Draw issues one indexed draw. All fixed-function state the command
// describes is set on every call; nothing carries over between draws.
func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*glPipeline)
	if !ok {
		slog.Error("draw with foreign pipeline", "type", cmd.Pipe)
		return
	}
	m, ok := cmd.Mesh.(*glMesh)
	if !ok {
		slog.Error("draw with foreign mesh", "type", cmd.Mesh)
		return
	}

	setEnabled(gl.DEPTH_TEST, p.depthTest)
	setEnabled(gl.BLEND, p.blend)
	if p.blend {
		gl.BlendEquation(gl.FUNC_ADD)
		gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	}
	setEnabled(gl.CULL_FACE, cmd.CullBackFaces)
	gl.CullFace(gl.BACK)
	if cmd.FrontFace == core.WindingCW {
		gl.FrontFace(gl.CW)
	} else {
		gl.FrontFace(gl.CCW)
	}
	if s := cmd.Scissor; s != nil {
		gl.Enable(gl.SCISSOR_TEST)
		// GL scissor origin is bottom-left.
		gl.Scissor(int32(s.X), int32(r.fbH-s.Y-s.H), int32(s.W), int32(s.H))
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}

	gl.UseProgram(p.program)
	for name, v := range cmd.Uniforms {
		setUniform(p.location(name), name, v)
	}

	names := make([]string, 0, len(cmd.Samplers))
	for name := range cmd.Samplers {
		names = append(names, name)
	}
	sort.Strings(names)
	for unit, name := range names {
		t, ok := cmd.Samplers[name].(*glTexture)
		if !ok {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		gl.Uniform1i(p.location(name), int32(unit))
	}

	if m.indices > 0 {
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, int32(m.indices), gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	}

	for unit := range names {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.UseProgram(0)
}

func setEnabled(flag uint32, on bool) {
	if on {
		gl.Enable(flag)
	} else {
		gl.Disable(flag)
	}
}

func setUniform(loc int32, name string, v any) {
	if loc < 0 {
		return
	}
	switch u := v.(type) {
	case float32:
		gl.Uniform1f(loc, u)
	case float64:
		gl.Uniform1f(loc, float32(u))
	case int32:
		gl.Uniform1i(loc, u)
	case int:
		gl.Uniform1i(loc, int32(u))
	case [2]float32:
		gl.Uniform2f(loc, u[0], u[1])
	case [4]float32:
		gl.Uniform4f(loc, u[0], u[1], u[2], u[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &u[0])
	default:
		slog.Warn("unsupported uniform type", "name", name, "type", v)
	}
}
