// Atlascut slices a grid-packed atlas image into one PNG per frame.
//
// Usage:
//
//	atlascut -in atlas.png -out frames/ -cellw 32 -cellh 32
//
// Columns and rows default to as many whole cells as fit the image after
// the offset; padding and offset follow the packing parameters the atlas
// was authored with.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/phanxgames/atlas"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("atlascut: ")

	var (
		in    = flag.String("in", "", "atlas image file (required)")
		out   = flag.String("out", ".", "output directory for frame PNGs")
		cellW = flag.Int("cellw", 0, "cell width in pixels (required)")
		cellH = flag.Int("cellh", 0, "cell height in pixels (required)")
		cols  = flag.Int("cols", 0, "columns (default: as many as fit)")
		rows  = flag.Int("rows", 0, "rows (default: as many as fit)")
		padX  = flag.Int("padx", 0, "horizontal padding between cells")
		padY  = flag.Int("pady", 0, "vertical padding between cells")
		offX  = flag.Int("offx", 0, "x offset of the first cell")
		offY  = flag.Int("offy", 0, "y offset of the first cell")
	)
	flag.Parse()

	if *in == "" || *cellW <= 0 || *cellH <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	img, err := imaging.Open(*in)
	if err != nil {
		log.Fatalf("open %s: %v", *in, err)
	}
	src := atlas.FromImage(*in, img)

	cfg := atlas.GridConfig{
		CellWidth: *cellW, CellHeight: *cellH,
		Columns: *cols, Rows: *rows,
		PaddingX: *padX, PaddingY: *padY,
		OffsetX: *offX, OffsetY: *offY,
	}
	if cfg.Columns <= 0 {
		cfg.Columns = fit(src.Image.Width-cfg.OffsetX, cfg.CellWidth, cfg.PaddingX)
	}
	if cfg.Rows <= 0 {
		cfg.Rows = fit(src.Image.Height-cfg.OffsetY, cfg.CellHeight, cfg.PaddingY)
	}

	frames, err := atlas.Slice(src.Image, atlas.GridRects(cfg))
	if err != nil {
		log.Fatalf("slice %s: %v", *in, err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}

	stem := strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
	for i, frame := range frames {
		view, err := frame.RGBA()
		if err != nil {
			log.Fatalf("frame %d: %v", i, err)
		}
		name := filepath.Join(*out, fmt.Sprintf("%s_%03d.png", stem, i))
		if err := imaging.Save(view, name); err != nil {
			log.Fatalf("save %s: %v", name, err)
		}
	}
	log.Printf("wrote %d frames to %s", len(frames), *out)
}

// fit returns how many padded cells of size cell fit into total pixels.
func fit(total, cell, pad int) int {
	if total < cell {
		return 0
	}
	return 1 + (total-cell)/(cell+pad)
}
