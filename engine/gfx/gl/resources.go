package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grovegui/engine/core"
	"github.com/pkg/errors"
)

type glPipeline struct {
	program   uint32
	depthTest bool
	blend     bool
	locations map[string]int32
}

func (p *glPipeline) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(cstr(name)))
	p.locations[name] = loc
	return loc
}

type glMesh struct {
	vao, vbo, ebo uint32
	fpv           int
	vertices      int
	indices       int
	usage         uint32
}

func (m *glMesh) VertexCount() int { return m.vertices }
func (m *glMesh) IndexCount() int  { return m.indices }

type glTexture struct {
	id   uint32
	w, h int
}

func (t *glTexture) Size() (int, int) { return t.w, t.h }

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, err
	}
	p := &glPipeline{
		program:   prog,
		depthTest: desc.DepthTest,
		blend:     desc.Blend,
		locations: map[string]int32{},
	}
	r.pipelines = append(r.pipelines, p)
	return p, nil
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if err := core.ValidateMesh(desc); err != nil {
		return nil, err
	}
	m := &glMesh{fpv: desc.Layout.FloatsPerVertex(), usage: gl.STATIC_DRAW}
	if desc.Dynamic {
		m.usage = gl.DYNAMIC_DRAW
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)
	m.upload(desc.Vertices, desc.Indices)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointerWithOffset(uint32(a.Location), int32(a.Size), attribType(a.Type), false, int32(desc.Layout.Stride), uintptr(a.Offset))
	}
	gl.BindVertexArray(0)

	r.meshes[m] = struct{}{}
	return m, nil
}

func (r *RendererGL) UpdateMesh(mesh core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := mesh.(*glMesh)
	if !ok {
		return errors.Errorf("glbackend: foreign mesh %T", mesh)
	}
	desc := core.MeshDesc{Vertices: vertices, Indices: indices, Layout: core.VertexLayout{Stride: m.fpv * 4}}
	if err := core.ValidateMesh(desc); err != nil {
		return err
	}
	gl.BindVertexArray(m.vao)
	m.upload(vertices, indices)
	gl.BindVertexArray(0)
	return nil
}

// upload replaces both buffers; the VAO must be bound.
func (m *glMesh) upload(vertices []float32, indices []uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, ptr(vertices), m.usage)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, ptr(indices), m.usage)
	m.vertices = len(vertices) / m.fpv
	m.indices = len(indices)
}

func (r *RendererGL) DestroyMesh(mesh core.Mesh) {
	m, ok := mesh.(*glMesh)
	if !ok {
		return
	}
	if _, live := r.meshes[m]; !live {
		return
	}
	delete(r.meshes, m)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if err := core.ValidateTexture(desc); err != nil {
		return nil, err
	}
	if desc.Width > r.maxTextureSize || desc.Height > r.maxTextureSize {
		return nil, errors.Wrapf(core.ErrInvalidTexture, "%dx%d exceeds GL_MAX_TEXTURE_SIZE %d", desc.Width, desc.Height, r.maxTextureSize)
	}

	t := &glTexture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(desc.WrapV))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures[t] = struct{}{}
	return t, nil
}

func (r *RendererGL) DestroyTexture(tex core.Texture) {
	t, ok := tex.(*glTexture)
	if !ok {
		return
	}
	if _, live := r.textures[t]; !live {
		return
	}
	delete(r.textures, t)
	gl.DeleteTextures(1, &t.id)
}

func ptr[T float32 | uint32](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return gl.Ptr(s)
}

func attribType(t core.AttribType) uint32 {
	switch t {
	case core.AttribFloat32:
		return gl.FLOAT
	}
	return gl.FLOAT
}

func filterMode(s string) int32 {
	if s == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrapMode(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
