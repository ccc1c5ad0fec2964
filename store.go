package atlas

import "fmt"

// Handle identifies one sub-image inserted into an external store.
// Handles are opaque to this package; a store hands them out from Insert
// and resolves them through its own getter.
type Handle uint32

// Inserter is the capability an external asset store exposes to the
// sheet builder: accept ownership of one sliced frame and return a
// handle for it. BuildInto needs nothing else from the store; retrieval
// stays on the concrete store type so each store can return its own
// image representation.
//
// BuildInto calls Insert sequentially, so implementations need not be
// goroutine-safe.
type Inserter interface {
	Insert(img *PixelBuffer) Handle
}

// MemoryStore is a slice-backed in-memory store: the simplest Inserter,
// resolving handles back to the inserted pixel buffers.
type MemoryStore struct {
	images []*PixelBuffer
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Insert takes ownership of the buffer and returns its handle.
func (m *MemoryStore) Insert(img *PixelBuffer) Handle {
	m.images = append(m.images, img)
	return Handle(len(m.images) - 1)
}

// Image resolves a handle previously returned by Insert. An unknown
// handle is a caller error and panics.
func (m *MemoryStore) Image(h Handle) *PixelBuffer {
	if int(h) >= len(m.images) {
		panic(fmt.Sprintf("atlas: unknown handle %d (store holds %d images)", h, len(m.images)))
	}
	return m.images[h]
}

// Len returns the number of images inserted so far.
func (m *MemoryStore) Len() int {
	return len(m.images)
}

// HandleSheet is a Sheet whose frames live in an external store: it
// holds one handle per descriptor rectangle, in rectangle order, and no
// pixel data of its own.
type HandleSheet struct {
	handles []Handle
}

// Len returns the number of frames in the sheet.
func (s *HandleSheet) Len() int {
	return len(s.handles)
}

// ImageAt returns the handle of the frame at the given 0-based index.
// An out-of-range index is a caller error and panics.
func (s *HandleSheet) ImageAt(index int) Handle {
	if index < 0 || index >= len(s.handles) {
		panic(fmt.Sprintf("atlas: frame index %d out of range [0,%d)", index, len(s.handles)))
	}
	return s.handles[index]
}

// ImagesAt returns the handles at the given indices in the given order.
// Indices may repeat and need not be contiguous.
func (s *HandleSheet) ImagesAt(indices ...int) []Handle {
	handles := make([]Handle, len(indices))
	for i, index := range indices {
		handles[i] = s.ImageAt(index)
	}
	return handles
}

// HandleSheets is the handle-typed registry counterpart of Sheets,
// produced by BuildInto. Immutable after construction; safe for
// unsynchronized concurrent reads.
type HandleSheets struct {
	byPath map[string]*HandleSheet
}

// GetSheet returns the sheet for the given normalized path, panicking
// if the path was never loaded; use Lookup to probe.
func (s *HandleSheets) GetSheet(path string) *HandleSheet {
	sheet, ok := s.byPath[path]
	if !ok {
		panic(fmt.Sprintf("atlas: sheet %q was not loaded", path))
	}
	return sheet
}

// Lookup returns the sheet for the given normalized path, reporting
// whether it exists.
func (s *HandleSheets) Lookup(path string) (*HandleSheet, bool) {
	sheet, ok := s.byPath[path]
	return sheet, ok
}

// Len returns the number of sheets in the registry.
func (s *HandleSheets) Len() int {
	return len(s.byPath)
}

// BuildInto is Build for callers whose sub-images are managed by an
// external asset store: every sliced frame is inserted into the store,
// and the sheets record the returned handles in rectangle order instead
// of owning pixel data. Insertion order is deterministic: matches in
// slice order, frames in rectangle order within each match.
//
// Duplicate paths and out-of-bounds rectangles fail the build; frames
// inserted before the failure remain in the store, but no registry is
// returned.
func BuildInto(store Inserter, matches []Match) (*HandleSheets, error) {
	byPath := make(map[string]*HandleSheet, len(matches))
	for _, m := range matches {
		if _, dup := byPath[m.Path]; dup {
			return nil, fmt.Errorf("atlas: duplicate sheet path %q", m.Path)
		}
		frames, err := Slice(m.Image, m.Descriptor.Rects)
		if err != nil {
			return nil, fmt.Errorf("atlas: sheet %q: %w", m.Path, err)
		}
		handles := make([]Handle, len(frames))
		for i, frame := range frames {
			handles[i] = store.Insert(frame)
		}
		byPath[m.Path] = &HandleSheet{handles: handles}
	}
	return &HandleSheets{byPath: byPath}, nil
}
