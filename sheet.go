package atlas

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Sheet is the ordered collection of sub-images sliced from one atlas,
// indexed by frame number in the order the originating descriptor listed
// its rectangles. Immutable once built; the sheet owns its frames.
type Sheet struct {
	frames []*PixelBuffer
}

// Len returns the number of frames in the sheet.
func (s *Sheet) Len() int {
	return len(s.frames)
}

// ImageAt returns the frame at the given 0-based index. An out-of-range
// index is a caller error and panics.
func (s *Sheet) ImageAt(index int) *PixelBuffer {
	if index < 0 || index >= len(s.frames) {
		panic(fmt.Sprintf("atlas: frame index %d out of range [0,%d)", index, len(s.frames)))
	}
	return s.frames[index]
}

// ImagesAt returns the frames at the given indices in the given order.
// Indices may repeat and need not be contiguous, so an animation
// sequence can be assembled from a shared pool of unique frames.
func (s *Sheet) ImagesAt(indices ...int) []*PixelBuffer {
	frames := make([]*PixelBuffer, len(indices))
	for i, index := range indices {
		frames[i] = s.ImageAt(index)
	}
	return frames
}

// Sheets is the registry of all built sheets, keyed by normalized
// logical path. It is immutable after construction and safe for
// unsynchronized concurrent reads, so it can be published once as
// process-wide shared state.
type Sheets struct {
	byPath map[string]*Sheet
}

// GetSheet returns the sheet for the given normalized path (no file
// extension, "/" separators — see [NormalizePath]).
//
// Querying a path that was never loaded is a caller error and panics
// naming the path; use Lookup to probe.
func (s *Sheets) GetSheet(path string) *Sheet {
	sheet, ok := s.byPath[path]
	if !ok {
		panic(fmt.Sprintf("atlas: sheet %q was not loaded", path))
	}
	return sheet
}

// Lookup returns the sheet for the given normalized path, reporting
// whether it exists.
func (s *Sheets) Lookup(path string) (*Sheet, bool) {
	sheet, ok := s.byPath[path]
	return sheet, ok
}

// Len returns the number of sheets in the registry.
func (s *Sheets) Len() int {
	return len(s.byPath)
}

// Paths returns the registry keys in sorted order.
func (s *Sheets) Paths() []string {
	paths := make([]string, 0, len(s.byPath))
	for p := range s.byPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Build slices every matched atlas and collects the results into a
// Sheets registry. For each triple, the image is sliced once per
// descriptor rectangle in order; the resulting sheet is keyed by the
// triple's normalized path.
//
// Two triples with the same path, or any out-of-bounds rectangle, fail
// the whole build: a partially built registry is never returned.
func Build(matches []Match) (*Sheets, error) {
	byPath := make(map[string]*Sheet, len(matches))
	for _, m := range matches {
		if _, dup := byPath[m.Path]; dup {
			return nil, fmt.Errorf("atlas: duplicate sheet path %q", m.Path)
		}
		frames, err := Slice(m.Image, m.Descriptor.Rects)
		if err != nil {
			return nil, fmt.Errorf("atlas: sheet %q: %w", m.Path, err)
		}
		byPath[m.Path] = &Sheet{frames: frames}
	}
	return &Sheets{byPath: byPath}, nil
}

// BuildParallel is Build with one goroutine per triple. Triples share no
// mutable state, so sheets can be sliced independently; frame order
// within each sheet is still the descriptor's rectangle order. The
// result is identical to Build's except for which error is reported
// when several triples fail.
func BuildParallel(matches []Match) (*Sheets, error) {
	byPath := make(map[string]*Sheet, len(matches))
	for _, m := range matches {
		if _, dup := byPath[m.Path]; dup {
			return nil, fmt.Errorf("atlas: duplicate sheet path %q", m.Path)
		}
		byPath[m.Path] = nil // reserve the key before the workers run
	}

	sliced := make([][]*PixelBuffer, len(matches))
	var g errgroup.Group
	for i, m := range matches {
		g.Go(func() error {
			frames, err := Slice(m.Image, m.Descriptor.Rects)
			if err != nil {
				return fmt.Errorf("atlas: sheet %q: %w", m.Path, err)
			}
			sliced[i] = frames
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, m := range matches {
		byPath[m.Path] = &Sheet{frames: sliced[i]}
	}
	return &Sheets{byPath: byPath}, nil
}

// CreateSheets runs the whole pipeline: match descriptors to images by
// normalized path, slice every matched atlas, and return the finished
// registry. This is the single entry point most callers want, run once
// after both inputs are fully loaded.
func CreateSheets(descriptors []Descriptor, images []SourceImage) (*Sheets, error) {
	return Build(MatchPairs(descriptors, images))
}
