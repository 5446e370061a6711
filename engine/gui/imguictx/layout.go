package imguictx

import (
	"encoding/binary"
	"math"

	"github.com/hubastard/grovegui/engine/gui"
	"github.com/pkg/errors"
)

// vertexLayout mirrors what imgui.VertexBufferLayout reports for ImDrawVert.
type vertexLayout struct {
	size, posOffset, uvOffset, colOffset int
}

func f32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

// decodeVertices reads ImDrawVert records out of raw vertex memory. Colours
// are IM_COL32 packed, so bytes are already in R, G, B, A order.
func decodeVertices(raw []byte, l vertexLayout) ([]gui.Vertex, error) {
	if l.size <= 0 || len(raw)%l.size != 0 {
		return nil, errors.Errorf("vertex buffer of %d bytes is not a multiple of %d", len(raw), l.size)
	}
	out := make([]gui.Vertex, len(raw)/l.size)
	for i := range out {
		rec := raw[i*l.size : (i+1)*l.size]
		col := rec[l.colOffset : l.colOffset+4]
		out[i] = gui.Vertex{
			Pos:   gui.Vec2{X: f32At(rec, l.posOffset), Y: f32At(rec, l.posOffset+4)},
			UV:    gui.Vec2{X: f32At(rec, l.uvOffset), Y: f32At(rec, l.uvOffset+4)},
			Color: gui.Color32{R: col[0], G: col[1], B: col[2], A: col[3]},
		}
	}
	return out, nil
}

// decodeIndices widens ImDrawIdx values (16 or 32 bit) to uint32.
func decodeIndices(raw []byte, size int) ([]uint32, error) {
	if size != 2 && size != 4 {
		return nil, errors.Errorf("unsupported index size %d", size)
	}
	if len(raw)%size != 0 {
		return nil, errors.Errorf("index buffer of %d bytes is not a multiple of %d", len(raw), size)
	}
	out := make([]uint32, len(raw)/size)
	for i := range out {
		if size == 2 {
			out[i] = uint32(binary.LittleEndian.Uint16(raw[i*2:]))
		} else {
			out[i] = binary.LittleEndian.Uint32(raw[i*4:])
		}
	}
	return out, nil
}

// splitCommands cuts one command list into meshes, one per draw command, in
// command order. counts are the commands' element counts. Each mesh carries
// only the vertex range its indices reach, with indices rebased onto it.
func splitCommands(verts []gui.Vertex, indices []uint32, counts []int, clips []gui.Rect, textures []gui.TextureID) ([]gui.ClippedMesh, error) {
	out := make([]gui.ClippedMesh, 0, len(counts))
	offset := 0
	for i, n := range counts {
		if offset+n > len(indices) {
			return nil, errors.Errorf("draw command %d wants indices [%d, %d) of %d", i, offset, offset+n, len(indices))
		}
		vs, is, err := narrow(verts, indices[offset:offset+n])
		if err != nil {
			return nil, errors.Wrapf(err, "draw command %d", i)
		}
		out = append(out, gui.ClippedMesh{
			Clip: clips[i],
			Mesh: gui.Mesh{Vertices: vs, Indices: is, Texture: textures[i]},
		})
		offset += n
	}
	return out, nil
}

func narrow(verts []gui.Vertex, indices []uint32) ([]gui.Vertex, []uint32, error) {
	if len(indices) == 0 {
		return nil, nil, nil
	}
	lo, hi := indices[0], indices[0]
	for _, ix := range indices[1:] {
		lo, hi = min(lo, ix), max(hi, ix)
	}
	if int(hi) >= len(verts) {
		return nil, nil, errors.Errorf("index %d out of %d vertices", hi, len(verts))
	}
	rebased := make([]uint32, len(indices))
	for j, ix := range indices {
		rebased[j] = ix - lo
	}
	return verts[lo : hi+1], rebased, nil
}
