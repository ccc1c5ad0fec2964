package atlas

// GridConfig describes a uniformly packed sheet: equally sized cells
// laid out in rows, optionally separated by padding and offset from the
// image's top-left corner.
type GridConfig struct {
	CellWidth  int // width of one cell in pixels
	CellHeight int // height of one cell in pixels
	Columns    int // cells per row
	Rows       int // number of rows
	PaddingX   int // horizontal gap between adjacent cells
	PaddingY   int // vertical gap between adjacent rows
	OffsetX    int // x of the first cell's top-left corner
	OffsetY    int // y of the first cell's top-left corner
}

// GridRects returns the cell rectangles of a uniform grid in row-major
// order (left to right, then top to bottom), which is the frame order
// virtually all grid-packed sheets are authored in.
//
// Sheets packed this way need no descriptor file; pair the result with a
// path in a [Descriptor] and build as usual.
func GridRects(cfg GridConfig) []Rect {
	if cfg.Columns <= 0 || cfg.Rows <= 0 {
		return nil
	}
	rects := make([]Rect, 0, cfg.Columns*cfg.Rows)
	for row := 0; row < cfg.Rows; row++ {
		y := cfg.OffsetY + row*(cfg.CellHeight+cfg.PaddingY)
		for col := 0; col < cfg.Columns; col++ {
			rects = append(rects, Rect{
				X:      cfg.OffsetX + col*(cfg.CellWidth+cfg.PaddingX),
				Y:      y,
				Width:  cfg.CellWidth,
				Height: cfg.CellHeight,
			})
		}
	}
	return rects
}
