package atlas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenStore is an Inserter that uploads every sliced frame as an
// *ebiten.Image, so a registry built with BuildInto holds handles to
// GPU-resident textures ready for drawing.
//
// Insert requires 4-byte pixels; the bytes are written as premultiplied
// RGBA, which is what FromImage and FromEbitenImage produce.
type EbitenStore struct {
	images []*ebiten.Image
}

// NewEbitenStore returns an empty store.
func NewEbitenStore() *EbitenStore {
	return &EbitenStore{}
}

// Insert uploads the buffer as a new ebiten image and returns its
// handle. A buffer whose pixels are not 4 bytes wide is a caller error
// and panics.
func (s *EbitenStore) Insert(img *PixelBuffer) Handle {
	if img.PixelSize != 4 {
		panic(fmt.Sprintf("atlas: ebiten store requires 4-byte pixels, got %d", img.PixelSize))
	}
	tex := ebiten.NewImage(img.Width, img.Height)
	tex.WritePixels(img.Data[:4*img.Width*img.Height])
	s.images = append(s.images, tex)
	return Handle(len(s.images) - 1)
}

// Image resolves a handle previously returned by Insert. An unknown
// handle is a caller error and panics.
func (s *EbitenStore) Image(h Handle) *ebiten.Image {
	if int(h) >= len(s.images) {
		panic(fmt.Sprintf("atlas: unknown handle %d (store holds %d images)", h, len(s.images)))
	}
	return s.images[h]
}

// Len returns the number of images inserted so far.
func (s *EbitenStore) Len() int {
	return len(s.images)
}

// FromEbitenImage reads an atlas page back into a PixelBuffer tagged
// with the given logical path, ready for matching. The pixels are
// premultiplied RGBA as reported by ReadPixels.
func FromEbitenImage(path string, img *ebiten.Image) SourceImage {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pix := make([]byte, 4*w*h)
	img.ReadPixels(pix)
	return SourceImage{
		Path: path,
		Image: &PixelBuffer{
			Width:     w,
			Height:    h,
			PixelSize: 4,
			Layers:    1,
			Format:    FormatRGBA8,
			Data:      pix,
		},
	}
}
