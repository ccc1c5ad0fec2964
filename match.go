package atlas

import "strings"

// Descriptor associates an ordered sequence of frame rectangles with the
// logical path of the sheet they describe. The rectangle order is
// significant: it defines the frame indices of the resulting sheet and
// is preserved exactly.
//
// Path may carry any metadata-file suffix ("sprites/hero.aseprite.json",
// "sprites/hero.sheet"); matching strips it.
type Descriptor struct {
	Path  string
	Rects []Rect
}

// SourceImage associates a decoded atlas image with its logical path.
type SourceImage struct {
	Path  string
	Image *PixelBuffer
}

// Match is one (path, descriptor, image) triple produced by MatchPairs.
// Path is already normalized and becomes the sheet's registry key.
type Match struct {
	Path       string
	Descriptor Descriptor
	Image      *PixelBuffer
}

// NormalizePath unifies directory separators to "/" and strips the
// extension suffix — everything from the first dot of the final path
// element — so that a descriptor path and its image path reduce to the
// same stem:
//
//	NormalizePath(`sprites\hero.aseprite.json`) == "sprites/hero"
//	NormalizePath("sprites/hero.png")           == "sprites/hero"
//
// Dots in directory names are left alone. Registry lookups take paths in
// this normalized form.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	base := strings.LastIndexByte(p, '/') + 1
	if dot := strings.IndexByte(p[base:], '.'); dot >= 0 {
		p = p[:base+dot]
	}
	return p
}

// MatchPairs pairs each descriptor with the image whose normalized path
// equals the descriptor's normalized path.
//
// Entries without a resolvable path (empty path, or a nil image buffer)
// are skipped: some platforms report spurious pathless image resources,
// and one such entry must not fail the pipeline. Descriptors with no
// matching image, and images with no matching descriptor, are silently
// excluded — unrelated assets are legitimate. When several images
// normalize to the same path, the first occurrence in the images slice
// wins; the rule is deterministic because the caller controls the slice
// order.
//
// The images are indexed once by normalized path, then each descriptor
// does a single lookup.
func MatchPairs(descriptors []Descriptor, images []SourceImage) []Match {
	index := make(map[string]*PixelBuffer, len(images))
	for _, src := range images {
		if src.Path == "" || src.Image == nil {
			continue
		}
		key := NormalizePath(src.Path)
		if _, taken := index[key]; taken {
			continue // first image wins
		}
		index[key] = src.Image
	}

	matches := make([]Match, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Path == "" {
			continue
		}
		key := NormalizePath(d.Path)
		img, ok := index[key]
		if !ok {
			continue
		}
		matches = append(matches, Match{Path: key, Descriptor: d, Image: img})
	}
	return matches
}
