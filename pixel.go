package atlas

import (
	"fmt"
	"image"
	"image/draw"
)

// FormatRGBA8 is the Format tag for 4-byte premultiplied RGBA pixels,
// the format produced by FromImage and FromEbitenImage and consumed by
// EbitenStore and PixelBuffer.RGBA.
const FormatRGBA8 = "rgba8"

// PixelBuffer is one decoded image: a contiguous, row-major,
// top-to-bottom byte buffer plus the metadata needed to address it.
// Data holds exactly Width*Height*PixelSize*Layers bytes with no row
// padding.
//
// Format is an opaque tag describing the pixel encoding; the slicing
// pipeline never interprets it, only carries it through. A PixelBuffer
// used as a slicing source is treated as read-only.
type PixelBuffer struct {
	Width     int
	Height    int
	PixelSize int    // bytes per pixel
	Layers    int    // depth / array layer count, usually 1
	Format    string // opaque pixel-format tag, e.g. FormatRGBA8
	Data      []byte
}

// NewPixelBuffer validates the dimensions against the data length and
// wraps them as a PixelBuffer.
func NewPixelBuffer(width, height, pixelSize, layers int, format string, data []byte) (*PixelBuffer, error) {
	if width < 0 || height < 0 || pixelSize <= 0 || layers <= 0 {
		return nil, fmt.Errorf("atlas: invalid buffer dimensions %dx%d, %d bytes/pixel, %d layers",
			width, height, pixelSize, layers)
	}
	if want := width * height * pixelSize * layers; len(data) != want {
		return nil, fmt.Errorf("atlas: buffer is %d bytes, want %d for %dx%d at %d bytes/pixel, %d layers",
			len(data), want, width, height, pixelSize, layers)
	}
	return &PixelBuffer{
		Width:     width,
		Height:    height,
		PixelSize: pixelSize,
		Layers:    layers,
		Format:    format,
		Data:      data,
	}, nil
}

// FromImage converts any decoded image into a premultiplied-RGBA
// PixelBuffer tagged with the given logical path, ready for matching.
func FromImage(path string, img image.Image) SourceImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return SourceImage{
		Path: path,
		Image: &PixelBuffer{
			Width:     w,
			Height:    h,
			PixelSize: 4,
			Layers:    1,
			Format:    FormatRGBA8,
			Data:      rgba.Pix,
		},
	}
}

// RGBA views a 4-byte-pixel buffer as a stdlib *image.RGBA sharing the
// same backing bytes, for encoding or further processing. Only the first
// layer of a multi-layer buffer is visible through the view.
func (b *PixelBuffer) RGBA() (*image.RGBA, error) {
	if b.PixelSize != 4 {
		return nil, fmt.Errorf("atlas: cannot view %d-byte pixels as RGBA", b.PixelSize)
	}
	return &image.RGBA{
		Pix:    b.Data[:4*b.Width*b.Height],
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}, nil
}
