package atlas

import "testing"

func onePixel() *PixelBuffer {
	return &PixelBuffer{Width: 1, Height: 1, PixelSize: 1, Layers: 1, Data: []byte{0}}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"sprites/hero.png", "sprites/hero"},
		{`sprites\hero.png`, "sprites/hero"},
		{"sprites/hero.aseprite.json", "sprites/hero"},
		{`sprites\sub\hero.aseprite.json`, "sprites/sub/hero"},
		{"hero", "hero"},
		{"hero.png", "hero"},
		{"v1.2/hero.png", "v1.2/hero"}, // dot in a directory name survives
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePath(tc.in); got != tc.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchPairs_SeparatorAndSuffixInvariance(t *testing.T) {
	// Descriptor uses backslashes and a double suffix, image uses forward
	// slashes and a plain extension: same stem, so they must pair.
	descriptors := []Descriptor{{Path: `sprites\hero.aseprite.json`}}
	images := []SourceImage{{Path: "sprites/hero.png", Image: onePixel()}}

	matches := MatchPairs(descriptors, images)
	if len(matches) != 1 {
		t.Fatalf("match count = %d, want 1", len(matches))
	}
	if matches[0].Path != "sprites/hero" {
		t.Errorf("match path = %q, want \"sprites/hero\"", matches[0].Path)
	}
}

func TestMatchPairs_UnmatchedExcludedSilently(t *testing.T) {
	descriptors := []Descriptor{
		{Path: "sprites/hero.json"},
		{Path: "sprites/orphan.json"}, // no image
	}
	images := []SourceImage{
		{Path: "sprites/hero.png", Image: onePixel()},
		{Path: "backgrounds/sky.png", Image: onePixel()}, // no descriptor
	}

	matches := MatchPairs(descriptors, images)
	if len(matches) != 1 {
		t.Fatalf("match count = %d, want 1", len(matches))
	}
	if matches[0].Path != "sprites/hero" {
		t.Errorf("match path = %q, want \"sprites/hero\"", matches[0].Path)
	}
}

func TestMatchPairs_PathlessEntriesFiltered(t *testing.T) {
	// Some platforms report a spurious image resource without a path; it
	// must not match anything or fail the pipeline.
	descriptors := []Descriptor{{Path: "hero.json"}, {Path: ""}}
	images := []SourceImage{
		{Path: "", Image: onePixel()},
		{Path: "hero.png", Image: nil},
		{Path: "hero.png", Image: onePixel()},
	}

	matches := MatchPairs(descriptors, images)
	if len(matches) != 1 {
		t.Fatalf("match count = %d, want 1", len(matches))
	}
	if matches[0].Image == nil {
		t.Error("matched image is nil, want the resolvable entry")
	}
}

func TestMatchPairs_DuplicateImagePath_FirstWins(t *testing.T) {
	first := onePixel()
	second := onePixel()
	descriptors := []Descriptor{{Path: "hero.json"}}
	images := []SourceImage{
		{Path: "hero.png", Image: first},
		{Path: `hero.jpg`, Image: second}, // same stem
	}

	matches := MatchPairs(descriptors, images)
	if len(matches) != 1 {
		t.Fatalf("match count = %d, want 1", len(matches))
	}
	if matches[0].Image != first {
		t.Error("duplicate image path: second entry won, want first in slice order")
	}
}

func TestMatchPairs_PreservesDescriptorOrder(t *testing.T) {
	descriptors := []Descriptor{
		{Path: "b.json"},
		{Path: "a.json"},
		{Path: "c.json"},
	}
	images := []SourceImage{
		{Path: "a.png", Image: onePixel()},
		{Path: "b.png", Image: onePixel()},
		{Path: "c.png", Image: onePixel()},
	}

	matches := MatchPairs(descriptors, images)
	want := []string{"b", "a", "c"}
	if len(matches) != len(want) {
		t.Fatalf("match count = %d, want %d", len(matches), len(want))
	}
	for i, w := range want {
		if matches[i].Path != w {
			t.Errorf("match[%d].Path = %q, want %q", i, matches[i].Path, w)
		}
	}
}
