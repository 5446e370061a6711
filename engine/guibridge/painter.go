package guibridge

import (
	_ "embed"
	"math"
	"slices"

	"github.com/hubastard/grovegui/engine/colors"
	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/gui"
	"github.com/hubastard/grovegui/engine/profiler"
	"github.com/pkg/errors"
)

var (
	//go:embed shaders/gui.vert
	vertexSource string
	//go:embed shaders/gui.frag
	fragmentSource string
)

// ErrUnresolvedTexture is returned when a mesh samples a user texture that no
// TextureResolver knows. Such a mesh is never drawn.
var ErrUnresolvedTexture = errors.New("unresolved gui texture")

// Vertex: pos2 + uv2 + color4 => 8 floats
const floatsPerVertex = 8

var guiVertexLayout = core.VertexLayout{
	Stride: floatsPerVertex * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 2, Type: core.AttribFloat32, Offset: 2 * 4}, // uv
		{Location: 2, Size: 4, Type: core.AttribFloat32, Offset: 4 * 4}, // color
	},
}

// TextureResolver supplies textures for user texture ids. Returned textures
// stay owned by the resolver.
type TextureResolver interface {
	ResolveTexture(id uint64) (core.Texture, bool)
}

// Screen describes the target surface for one frame.
type Screen struct {
	Size           gui.Vec2 // points
	PixelsPerPoint float32  // 0 means 1
}

func (s Screen) pixelsPerPoint() float32 {
	if s.PixelsPerPoint <= 0 {
		return 1
	}
	return s.PixelsPerPoint
}

// Stats counts what the last Paint submitted.
type Stats struct {
	Meshes         int
	Vertices       int
	Indices        int
	DrawCalls      int
	TextureUploads int
}

type PainterOptions struct {
	Resolver TextureResolver // nil: any user texture fails the frame
	Scissor  bool            // clip meshes to their clip rect
}

// Painter draws tessellated GUI meshes through a core.Renderer.
type Painter struct {
	r     core.Renderer
	pipe  core.Pipeline
	opts  PainterOptions
	stats Stats
}

func NewPainter(r core.Renderer, opts PainterOptions) (*Painter, error) {
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertexSource,
		FragmentSource: fragmentSource,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gui pipeline")
	}
	return &Painter{r: r, pipe: pipe, opts: opts}, nil
}

func (p *Painter) Stats() Stats { return p.stats }

// SetResolver replaces the user texture resolver.
func (p *Painter) SetResolver(r TextureResolver) { p.opts.Resolver = r }

// Paint issues one draw per mesh, in order, so later meshes land on top. The
// font atlas is expanded and uploaded as a fresh texture for this frame only.
// Any error aborts the rest of the frame.
func (p *Painter) Paint(screen Screen, meshes []gui.ClippedMesh, font gui.FontImage) error {
	defer profiler.Start("guibridge.Painter.Paint")()

	p.stats = Stats{}
	var fontTex core.Texture
	defer func() {
		if fontTex != nil {
			p.r.DestroyTexture(fontTex)
		}
	}()

	uniforms := map[string]any{"uScreenSize": [2]float32{screen.Size.X, screen.Size.Y}}
	for i, cm := range meshes {
		mesh, err := p.r.CreateMesh(core.MeshDesc{
			Vertices: ConvertVertices(cm.Mesh.Vertices),
			Indices:  ConvertIndices(cm.Mesh.Indices),
			Layout:   guiVertexLayout,
		})
		if err != nil {
			return errors.Wrapf(err, "gui mesh %d", i)
		}

		tex, err := p.texture(cm.Mesh.Texture, font, &fontTex)
		if err != nil {
			p.r.DestroyMesh(mesh)
			return errors.Wrapf(err, "gui mesh %d", i)
		}

		cmd := core.DrawCmd{
			Pipe:          p.pipe,
			Mesh:          mesh,
			Uniforms:      uniforms,
			Samplers:      map[string]core.Texture{"uTex": tex},
			CullBackFaces: false,
			FrontFace:     core.WindingCW,
		}
		if p.opts.Scissor {
			cmd.Scissor = ScissorFor(screen, cm.Clip)
		}
		p.r.Draw(cmd)
		p.r.DestroyMesh(mesh)

		p.stats.Meshes++
		p.stats.DrawCalls++
		p.stats.Vertices += len(cm.Mesh.Vertices)
		p.stats.Indices += len(cm.Mesh.Indices)
	}
	return nil
}

func (p *Painter) texture(id gui.TextureID, font gui.FontImage, fontTex *core.Texture) (core.Texture, error) {
	if id.User {
		if p.opts.Resolver == nil {
			return nil, errors.Wrapf(ErrUnresolvedTexture, "%s: no resolver", id)
		}
		tex, ok := p.opts.Resolver.ResolveTexture(id.ID)
		if !ok {
			return nil, errors.Wrapf(ErrUnresolvedTexture, "%s", id)
		}
		return tex, nil
	}

	if *fontTex != nil {
		return *fontTex, nil
	}
	if err := font.Validate(); err != nil {
		return nil, errors.Wrap(err, "font atlas")
	}
	tex, err := p.r.CreateTexture(core.TextureDesc{
		Width:     font.Width,
		Height:    font.Height,
		Format:    core.TextureRGBA8,
		Pixels:    ExpandAlpha(font.Pixels),
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return nil, errors.Wrap(err, "upload font atlas")
	}
	p.stats.TextureUploads++
	*fontTex = tex
	return tex, nil
}

// ConvertVertices interleaves GUI vertices into the engine layout. Position
// and UV pass through; colour goes through colors.RGBA8.
func ConvertVertices(vs []gui.Vertex) []float32 {
	out := make([]float32, 0, len(vs)*floatsPerVertex)
	for _, v := range vs {
		c := colors.RGBA8(v.Color.R, v.Color.G, v.Color.B, v.Color.A)
		out = append(out, v.Pos.X, v.Pos.Y, v.UV.X, v.UV.Y, c[0], c[1], c[2], c[3])
	}
	return out
}

// ConvertIndices copies the index list into a buffer the painter owns.
func ConvertIndices(idx []uint32) []uint32 { return slices.Clone(idx) }

// ExpandAlpha turns a coverage atlas into white RGBA with the coverage in
// alpha, the premultiplied-white convention the GUI tints via vertex colour.
func ExpandAlpha(alpha []byte) []byte {
	out := make([]byte, len(alpha)*4)
	for i, a := range alpha {
		px := out[i*4 : i*4+4 : i*4+4]
		px[0], px[1], px[2], px[3] = 255, 255, 255, a
	}
	return out
}

// ScissorFor converts a clip rect in points to framebuffer pixels, clamped to
// the framebuffer.
func ScissorFor(screen Screen, clip gui.Rect) *core.ScissorRect {
	ppp := screen.pixelsPerPoint()
	fbW := int(math.Round(float64(screen.Size.X * ppp)))
	fbH := int(math.Round(float64(screen.Size.Y * ppp)))
	px := func(v float32, limit int) int {
		return min(max(int(math.Round(float64(v*ppp))), 0), limit)
	}
	x0, y0 := px(clip.Min.X, fbW), px(clip.Min.Y, fbH)
	x1, y1 := px(clip.Max.X, fbW), px(clip.Max.Y, fbH)
	return &core.ScissorRect{X: x0, Y: y0, W: max(x1-x0, 0), H: max(y1-y0, 0)}
}
