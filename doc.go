// Package atlas slices packed sprite-sheet images into independent,
// tightly-packed frame images and organizes them into path-keyed,
// frame-indexed sheets.
//
// The pipeline is a single synchronous pass: descriptors (ordered frame
// rectangles tagged with a source path) are paired with source images by
// normalized path, each matched image is sliced once per rectangle, and
// the results are collected into an immutable [Sheets] registry that is
// safe for unsynchronized concurrent reads.
//
// # Quick start
//
//	descriptors := []atlas.Descriptor{{
//		Path:  "sprites/hero.aseprite.json",
//		Rects: []atlas.Rect{{X: 0, Y: 0, Width: 16, Height: 16}},
//	}}
//	images := []atlas.SourceImage{atlas.FromImage("sprites/hero.png", img)}
//
//	sheets, err := atlas.CreateSheets(descriptors, images)
//	if err != nil {
//		log.Fatal(err)
//	}
//	frame := sheets.GetSheet("sprites/hero").ImageAt(0)
//
// Paths are matched with separators unified and extensions stripped, so
// "sprites\hero.aseprite.json" and "sprites/hero.png" both key the sheet
// "sprites/hero".
//
// # Frame ownership
//
// By default each [Sheet] owns its sliced [PixelBuffer] frames directly.
// For callers with an external asset store, [BuildInto] inserts every
// frame into an injected [Inserter] and records [Handle] values instead;
// [MemoryStore] and [EbitenStore] are ready-made stores, the latter
// uploading frames as [ebiten.Image] textures for rendering with
// [Ebitengine].
//
// # Uniform grids
//
// Sheets packed on a uniform grid need no descriptor file: [GridRects]
// generates the row-major rectangle sequence from a [GridConfig].
//
// [Ebitengine]: https://ebitengine.org
package atlas
