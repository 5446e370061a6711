package renderer2d

import "github.com/hubastard/grovegui/engine/core"

// SubTexture2D describes a UV sub-rect of a full texture.
type SubTexture2D struct {
	Texture core.Texture
	U0, V0  float32 // top-left, in image space
	U1, V1  float32 // bottom-right
}

// FromPixels builds a subtexture from a pixel rect of tex, origin top-left.
func FromPixels(tex core.Texture, x, y, w, h int) SubTexture2D {
	atlasW, atlasH := tex.Size()
	return SubTexture2D{
		Texture: tex,
		U0:      float32(x) / float32(atlasW),
		V0:      float32(y) / float32(atlasH),
		U1:      float32(x+w) / float32(atlasW),
		V1:      float32(y+h) / float32(atlasH),
	}
}

// FromGrid builds a subtexture from tile (cx, cy) of a grid of cw x ch cells.
func FromGrid(tex core.Texture, cx, cy, cw, ch int) SubTexture2D {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch)
}
