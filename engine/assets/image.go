// Package assets decodes files from disk into renderer-ready data.
package assets

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image is tightly packed RGBA8, row-major with a top-left origin.
type Image struct {
	Width, Height int
	Pixels        []byte
}

// LoadImage decodes a PNG, JPEG, BMP or WebP file.
func LoadImage(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return Image{}, errors.Wrapf(err, "image %q", path)
	}
	return img, nil
}

func DecodeImage(r io.Reader) (Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return Image{}, errors.Wrap(err, "decode")
	}
	b := src.Bounds()
	if b.Empty() {
		return Image{}, errors.Errorf("empty %s image", format)
	}
	rgba := toRGBA(src)
	return Image{Width: b.Dx(), Height: b.Dy(), Pixels: rgba.Pix}, nil
}

// toRGBA returns an image whose Pix has stride 4*width, origin (0,0) and
// exactly width*height pixels.
func toRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) && m.Stride == m.Rect.Dx()*4 &&
		len(m.Pix) == m.Rect.Dx()*m.Rect.Dy()*4 {
		return m
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
