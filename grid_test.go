package atlas

import (
	"bytes"
	"testing"
)

func TestGridRects_RowMajor(t *testing.T) {
	rects := GridRects(GridConfig{CellWidth: 8, CellHeight: 8, Columns: 3, Rows: 2})
	if len(rects) != 6 {
		t.Fatalf("rect count = %d, want 6", len(rects))
	}
	want := []Rect{
		{0, 0, 8, 8}, {8, 0, 8, 8}, {16, 0, 8, 8},
		{0, 8, 8, 8}, {8, 8, 8, 8}, {16, 8, 8, 8},
	}
	for i, r := range rects {
		if r != want[i] {
			t.Errorf("rect[%d] = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestGridRects_PaddingAndOffset(t *testing.T) {
	rects := GridRects(GridConfig{
		CellWidth: 4, CellHeight: 4,
		Columns: 2, Rows: 2,
		PaddingX: 1, PaddingY: 2,
		OffsetX: 3, OffsetY: 5,
	})
	want := []Rect{
		{3, 5, 4, 4}, {8, 5, 4, 4},
		{3, 11, 4, 4}, {8, 11, 4, 4},
	}
	for i, r := range rects {
		if r != want[i] {
			t.Errorf("rect[%d] = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestGridRects_DegenerateGrid(t *testing.T) {
	if got := GridRects(GridConfig{CellWidth: 8, CellHeight: 8, Columns: 0, Rows: 3}); got != nil {
		t.Errorf("zero columns: got %d rects, want nil", len(got))
	}
	if got := GridRects(GridConfig{CellWidth: 8, CellHeight: 8, Columns: 3, Rows: 0}); got != nil {
		t.Errorf("zero rows: got %d rects, want nil", len(got))
	}
}

func TestGridRects_SliceWholeAtlas(t *testing.T) {
	// A 4×2 atlas of 2×1 cells slices into four frames covering every
	// byte exactly once, in row-major order.
	src := fourByTwo()
	frames, err := Slice(src, GridRects(GridConfig{CellWidth: 2, CellHeight: 1, Columns: 2, Rows: 2}))
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	want := [][]byte{{0, 1}, {2, 3}, {4, 5}, {6, 7}}
	if len(frames) != len(want) {
		t.Fatalf("frame count = %d, want %d", len(frames), len(want))
	}
	for i, f := range frames {
		if !bytes.Equal(f.Data, want[i]) {
			t.Errorf("frame[%d] = %v, want %v", i, f.Data, want[i])
		}
	}
}
