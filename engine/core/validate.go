package core

import "github.com/pkg/errors"

var (
	ErrInvalidMesh    = errors.New("invalid mesh")
	ErrInvalidTexture = errors.New("invalid texture")
)

// ValidateMesh checks that the vertex data fills whole vertices and that every
// index addresses one of them. Backends call it before touching the GPU.
func ValidateMesh(desc MeshDesc) error {
	fpv := desc.Layout.FloatsPerVertex()
	if fpv <= 0 || desc.Layout.Stride%4 != 0 {
		return errors.Wrapf(ErrInvalidMesh, "stride %d", desc.Layout.Stride)
	}
	if len(desc.Vertices)%fpv != 0 {
		return errors.Wrapf(ErrInvalidMesh, "%d floats do not make whole vertices of %d", len(desc.Vertices), fpv)
	}
	if len(desc.Indices)%3 != 0 {
		return errors.Wrapf(ErrInvalidMesh, "%d indices do not make whole triangles", len(desc.Indices))
	}
	n := uint32(len(desc.Vertices) / fpv)
	for i, idx := range desc.Indices {
		if idx >= n {
			return errors.Wrapf(ErrInvalidMesh, "index %d is %d, only %d vertices", i, idx, n)
		}
	}
	return nil
}

// ValidateTexture checks the pixel buffer against the declared size.
func ValidateTexture(desc TextureDesc) error {
	if desc.Width <= 0 || desc.Height <= 0 {
		return errors.Wrapf(ErrInvalidTexture, "size %dx%d", desc.Width, desc.Height)
	}
	if desc.Format != TextureRGBA8 {
		return errors.Wrapf(ErrInvalidTexture, "format %d", desc.Format)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return errors.Wrapf(ErrInvalidTexture, "%dx%d needs %d bytes, got %d", desc.Width, desc.Height, want, len(desc.Pixels))
	}
	return nil
}
