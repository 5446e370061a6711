package core

// Renderer is the GPU surface backends implement. Handles returned by the
// Create* calls are opaque and only valid for the renderer that made them.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Shutdown()

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	DestroyTexture(t Texture)
	DestroyMesh(m Mesh)
	Draw(cmd DrawCmd)

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

type Pipeline interface{}

type Texture interface {
	Size() (w, h int)
}

type Mesh interface {
	VertexCount() int
	IndexCount() int
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool // straight alpha: src*a + dst*(1-a)
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte // tightly packed rows, top row first
	MinFilter, MagFilter string // "nearest" | "linear"
	WrapU, WrapV         string // "clamp" | "repeat"
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

// FloatsPerVertex is the number of float32 values one vertex occupies.
func (l VertexLayout) FloatsPerVertex() int { return l.Stride / 4 }

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
	Dynamic  bool // hint: contents will be replaced with UpdateMesh
}

// Winding selects which triangle orientation is front facing. The zero value
// is counter-clockwise, the GL default.
type Winding int

const (
	WindingCCW Winding = iota
	WindingCW
)

// ScissorRect is in framebuffer pixels with a top-left origin.
type ScissorRect struct {
	X, Y, W, H int
}

type DrawCmd struct {
	Pipe          Pipeline
	Mesh          Mesh
	Uniforms      map[string]any
	Samplers      map[string]Texture
	CullBackFaces bool
	FrontFace     Winding
	Scissor       *ScissorRect // nil disables the scissor test
}
