package gui

import (
	"strconv"

	"github.com/pkg/errors"
)

// Color32 is the library's packed colour, channels in R, G, B, A order.
type Color32 struct{ R, G, B, A uint8 }

type Vertex struct {
	Pos   Vec2 // points
	UV    Vec2 // normalized
	Color Color32
}

// TextureID names the texture a mesh samples. The zero value is the
// library's built-in font/shape atlas.
type TextureID struct {
	User bool
	ID   uint64
}

var FontTexture = TextureID{}

func UserTexture(id uint64) TextureID { return TextureID{User: true, ID: id} }

func (t TextureID) String() string {
	if !t.User {
		return "font"
	}
	return "user:" + strconv.FormatUint(t.ID, 10)
}

// Mesh is an indexed triangle list. Indices address Vertices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
}

// ClippedMesh pairs a mesh with the rectangle (in points) it must not draw
// outside of.
type ClippedMesh struct {
	Clip Rect
	Mesh Mesh
}

// FontImage is the library's single-channel coverage atlas. Pixels belongs to
// the library and must be treated as read-only.
type FontImage struct {
	Width, Height int
	Pixels        []byte
}

func (img FontImage) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return errors.Errorf("font image has invalid size %dx%d", img.Width, img.Height)
	}
	if len(img.Pixels) != img.Width*img.Height {
		return errors.Errorf("font image %dx%d has %d pixels, want %d",
			img.Width, img.Height, len(img.Pixels), img.Width*img.Height)
	}
	return nil
}
