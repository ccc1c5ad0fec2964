package atlas

import "fmt"

// ExtractRect copies the rectangle r out of a row-strided source buffer
// into a new, tightly packed buffer of exactly
// r.Width*r.Height*pixelSize bytes (the output's row stride equals its
// own width; the source's row padding, if any region to the right of r,
// is not carried over).
//
// src is row-major, top-to-bottom; rowWidthPx is the pixel width of one
// full source row (the stride divisor, not r's width). A rectangle that
// falls outside the source is a caller error and is reported before any
// byte is read; the copy never clamps or truncates.
func ExtractRect(src []byte, rowWidthPx, pixelSize int, r Rect) ([]byte, error) {
	if rowWidthPx <= 0 || pixelSize <= 0 {
		return nil, fmt.Errorf("invalid source geometry: %d pixels/row, %d bytes/pixel", rowWidthPx, pixelSize)
	}
	if r.X < 0 || r.Y < 0 || r.Width < 0 || r.Height < 0 {
		return nil, fmt.Errorf("rect (%d,%d %dx%d) has negative components", r.X, r.Y, r.Width, r.Height)
	}
	if r.X+r.Width > rowWidthPx {
		return nil, fmt.Errorf("rect (%d,%d %dx%d) exceeds source row width %d", r.X, r.Y, r.Width, r.Height, rowWidthPx)
	}
	rowBytes := rowWidthPx * pixelSize
	if r.Height > 0 {
		last := (r.Y+r.Height-1)*rowBytes + (r.X+r.Width)*pixelSize
		if last > len(src) {
			return nil, fmt.Errorf("rect (%d,%d %dx%d) needs %d source bytes, have %d", r.X, r.Y, r.Width, r.Height, last, len(src))
		}
	}

	out := make([]byte, 0, r.Width*r.Height*pixelSize)
	for y := 0; y < r.Height; y++ {
		start := (r.Y+y)*rowBytes + r.X*pixelSize
		out = append(out, src[start:start+r.Width*pixelSize]...)
	}
	return out, nil
}

// Extract slices the rectangle r out of the buffer, producing a new
// standalone PixelBuffer. Pixel size, layer count, and format metadata
// are carried over unchanged; only the spatial extent changes. Rows are
// read from the buffer's first layer.
func (b *PixelBuffer) Extract(r Rect) (*PixelBuffer, error) {
	if !r.In(b.Width, b.Height) {
		return nil, fmt.Errorf("rect (%d,%d %dx%d) exceeds source extent %dx%d", r.X, r.Y, r.Width, r.Height, b.Width, b.Height)
	}
	data, err := ExtractRect(b.Data, b.Width, b.PixelSize, r)
	if err != nil {
		return nil, err
	}
	return &PixelBuffer{
		Width:     r.Width,
		Height:    r.Height,
		PixelSize: b.PixelSize,
		Layers:    b.Layers,
		Format:    b.Format,
		Data:      data,
	}, nil
}

// Slice extracts every rectangle in order, producing one standalone
// sub-image per rectangle. The result preserves the input order exactly;
// any out-of-bounds rectangle fails the whole slice.
func Slice(img *PixelBuffer, rects []Rect) ([]*PixelBuffer, error) {
	frames := make([]*PixelBuffer, 0, len(rects))
	for i, r := range rects {
		frame, err := img.Extract(r)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
