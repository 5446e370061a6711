// Package renderer2d batches coloured and textured quads into as few draw
// calls as the texture slots allow.
package renderer2d

import (
	_ "embed"
	"math"
	"strconv"

	"github.com/hubastard/grovegui/engine/colors"
	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/profiler"
	"github.com/pkg/errors"
)

var (
	//go:embed shaders/quad.vert
	vertexSource string
	//go:embed shaders/quad.frag
	fragmentSource string
)

// Texture slots per batch; must match uTex in quad.frag.
const maxTexSlots = 8

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const vStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

const defaultMaxQuads = 10000

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4}, // texIndex
	},
}

// Statistics captures the counts generated during a scene.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this scene.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this scene.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

type Renderer2D struct {
	r      core.Renderer
	pipe   core.Pipeline
	white  core.Texture // 1x1 white (slot 0)
	texArr [maxTexSlots]core.Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	mesh     core.Mesh
	samplers map[string]core.Texture
	uniforms map[string]any
	texNames [maxTexSlots]string

	vp    [16]float32
	stats Statistics
	err   error
}

// New compiles the quad pipeline and allocates the batch. maxQuads <= 0
// picks a default.
func New(r core.Renderer, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = defaultMaxQuads
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertexSource,
		FragmentSource: fragmentSource,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "renderer2d pipeline")
	}

	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, errors.Wrap(err, "renderer2d white texture")
	}

	// Contents arrive with every flush.
	mesh, err := r.CreateMesh(core.MeshDesc{Layout: quadVertexLayout, Dynamic: true})
	if err != nil {
		r.DestroyTexture(white)
		return nil, errors.Wrap(err, "renderer2d batch mesh")
	}

	rd := &Renderer2D{
		r: r, pipe: pipe, white: white, mesh: mesh, maxQuads: maxQuads,
		verts:    make([]float32, 0, min(maxQuads, 1024)*vertsPerQuad*vStride),
		inds:     make([]uint32, 0, min(maxQuads, 1024)*indsPerQuad),
		samplers: make(map[string]core.Texture, maxTexSlots),
		uniforms: make(map[string]any, 1),
	}
	for i := range rd.texNames {
		rd.texNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	rd.resetBatch()
	return rd, nil
}

// Destroy frees the batch mesh and the white texture.
func (rd *Renderer2D) Destroy() {
	rd.r.DestroyMesh(rd.mesh)
	rd.r.DestroyTexture(rd.white)
}

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.err = nil
	rd.resetBatch()
}

// EndScene flushes what is left and reports the first upload error of the
// scene. Quads of a failed batch are dropped.
func (rd *Renderer2D) EndScene() error {
	rd.flush()
	return rd.err
}

// Stats returns the current scene statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawQuad draws a solid colour quad centred on (x, y).
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, color colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(x, y, w, h, color, rotationRad, rd.texSlot(rd.white), 0, 0, 1, 1)
}

// DrawTexturedQuad draws all of tex, tinted.
func (rd *Renderer2D) DrawTexturedQuad(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(x, y, w, h, tint, rotationRad, rd.texSlot(tex), 0, 0, 1, 1)
}

// DrawSubTexQuad draws one region of an atlas.
func (rd *Renderer2D) DrawSubTexQuad(x, y, w, h float32, sub SubTexture2D, tint colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(x, y, w, h, tint, rotationRad, rd.texSlot(sub.Texture), sub.U0, sub.V0, sub.U1, sub.V1)
}

func (rd *Renderer2D) texSlot(t core.Texture) float32 {
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	if rd.texCnt >= maxTexSlots {
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.texCnt)
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) drawQuadInternal(x, y, w, h float32, color colors.Color, rotationRad float32, texIndex float32, u0, v0, u1, v1 float32) {
	halfW := w * 0.5
	halfH := h * 0.5

	// corners (BL, BR, TL, TR) with UVs. Textures are stored top row first
	// and world y points up, so v0 goes on the +y edge.
	corners := [4][4]float32{
		{-halfW, -halfH, u0, v1},
		{halfW, -halfH, u1, v1},
		{-halfW, halfH, u0, v0},
		{halfW, halfH, u1, v0},
	}
	c, s := float32(math.Cos(float64(rotationRad))), float32(math.Sin(float64(rotationRad)))

	start := uint32(len(rd.verts) / vStride)
	for _, p := range corners {
		rx := p[0]*c - p[1]*s + x
		ry := p[0]*s + p[1]*c + y
		rd.verts = append(rd.verts,
			rx, ry,
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			texIndex,
		)
	}
	rd.inds = append(rd.inds,
		start+0, start+2, start+1,
		start+1, start+2, start+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}
	defer profiler.Start("renderer2d.flush")()
	defer rd.resetBatch()

	if err := rd.r.UpdateMesh(rd.mesh, rd.verts, rd.inds); err != nil {
		if rd.err == nil {
			rd.err = errors.Wrap(err, "renderer2d upload")
		}
		return
	}

	clear(rd.samplers)
	for i := 0; i < rd.texCnt; i++ {
		rd.samplers[rd.texNames[i]] = rd.texArr[i]
	}
	rd.uniforms["uVP"] = rd.vp

	rd.r.Draw(core.DrawCmd{
		Pipe:     rd.pipe,
		Mesh:     rd.mesh,
		Uniforms: rd.uniforms,
		Samplers: rd.samplers,
	})
	rd.stats.DrawCalls++
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
	clear(rd.texArr[:])
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}
