package atlas

// Rect is an axis-aligned rectangle in source-image pixel coordinates.
// The origin is the top-left corner with Y increasing downward.
// Value type, copied freely; equality is field equality (==).
//
// A Rect only describes where to slice: it carries no pixel data and is
// validated against a concrete source only when applied to one.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// In reports whether r lies fully within a source of the given pixel
// dimensions. This is the invariant every rectangle must satisfy before
// it is used to slice that source.
func (r Rect) In(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Width >= 0 && r.Height >= 0 &&
		r.X+r.Width <= width && r.Y+r.Height <= height
}
