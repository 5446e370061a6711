package guibridge

import (
	"github.com/hubastard/grovegui/engine/core"
	"github.com/hubastard/grovegui/engine/gui"
)

// TextureRegistry is a TextureResolver over textures the application created.
// Ids start at 1 and are never reused. The zero value is ready to use.
type TextureRegistry struct {
	next uint64
	byID map[uint64]core.Texture
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{byID: map[uint64]core.Texture{}}
}

// Register makes tex drawable from GUI code under the returned id. The
// registry does not take ownership; destroy tex after unregistering it.
func (tr *TextureRegistry) Register(tex core.Texture) gui.TextureID {
	if tr.byID == nil {
		tr.byID = make(map[uint64]core.Texture)
	}
	tr.next++
	tr.byID[tr.next] = tex
	return gui.UserTexture(tr.next)
}

func (tr *TextureRegistry) Unregister(id gui.TextureID) {
	if id.User {
		delete(tr.byID, id.ID)
	}
}

func (tr *TextureRegistry) ResolveTexture(id uint64) (core.Texture, bool) {
	tex, ok := tr.byID[id]
	return tex, ok
}

func (tr *TextureRegistry) Len() int { return len(tr.byID) }
