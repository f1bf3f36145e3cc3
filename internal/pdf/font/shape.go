package font

import (
	"fmt"
	"math"
)

// ShapedGlyph is one positioned glyph from a shaped run, in user-space units
// at the size the run was shaped for.
type ShapedGlyph struct {
	GlyphID  uint16
	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64
}

type shapeKey struct {
	text    string
	sizeKey int64
}

// Font is the facade over a parsed TrueType face: shaping, measurement, and
// the metrics the font embedder needs. It presents a conceptually immutable
// API while caching shaped runs internally — callers must not share one Font
// across goroutines without external synchronization.
type Font struct {
	face  *Face
	name  string
	cache map[shapeKey][]ShapedGlyph
}

// FromBytes parses face data and wraps it in a Font. Fails if the bytes do
// not form a valid TrueType font.
func FromBytes(data []byte, name string) (*Font, error) {
	face, err := ParseFace(data)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}
	return &Font{face: face, name: name, cache: make(map[shapeKey][]ShapedGlyph)}, nil
}

// Name returns the display name this font was registered under.
func (f *Font) Name() string { return f.name }

// Face exposes the underlying parsed face for the subsetter.
func (f *Font) Face() *Face { return f.face }

// UnitsPerEm returns the font's design-space resolution.
func (f *Font) UnitsPerEm() uint16 { return f.face.unitsPerEm }

// Shape maps text to a glyph run, scaling raw advances by size/unitsPerEm.
// There is no shaping engine in this stack (no ligature/kerning lookups are
// available without a HarfBuzz-equivalent binding) — each rune maps 1:1
// through cmap to its glyph id, which satisfies the "no features beyond the
// font's default" requirement. Results are cached by (text, floor(size*100))
// for the lifetime of the Font.
func (f *Font) Shape(text string, size float64) []ShapedGlyph {
	key := shapeKey{text: text, sizeKey: int64(size * 100)}
	if cached, ok := f.cache[key]; ok {
		return cached
	}

	scale := size / float64(f.face.unitsPerEm)
	glyphs := make([]ShapedGlyph, 0, len(text))
	for _, r := range text {
		gid := f.face.GlyphIndex(r) // 0 (.notdef) on a miss
		glyphs = append(glyphs, ShapedGlyph{
			GlyphID:  gid,
			XAdvance: float64(f.face.AdvanceOf(gid)) * scale,
		})
	}

	f.cache[key] = glyphs
	return glyphs
}

// Measure sums raw glyph advances scaled to size, ignoring kerning — this
// intentionally matches the Tj-only rendering path, which never applies
// positional adjustments.
func (f *Font) Measure(text string, size float64) float64 {
	var total float64
	for _, g := range f.Shape(text, size) {
		total += g.XAdvance
	}
	return total
}

// scale1000 truncates x*1000/unitsPerEm. Truncation, not rounding, keeps
// emitted widths byte-reproducible.
func scale1000(x int32, unitsPerEm uint16) int32 {
	return int32(math.Trunc(float64(x) * 1000.0 / float64(unitsPerEm)))
}

// Ascent returns the font ascender scaled to the 1000-unit PDF glyph space.
func (f *Font) Ascent() int32 { return scale1000(int32(f.face.ascender), f.face.unitsPerEm) }

// Descent returns the font descender (negative) scaled to 1000 units.
func (f *Font) Descent() int32 { return scale1000(int32(f.face.descender), f.face.unitsPerEm) }

// CapHeight returns the capital-letter height, falling back to 70% of the
// ascent when the face doesn't carry one.
func (f *Font) CapHeight() int32 {
	if f.face.capHeight != 0 {
		return scale1000(int32(f.face.capHeight), f.face.unitsPerEm)
	}
	return f.Ascent() * 70 / 100
}

// BBox returns (xMin, yMin, xMax, yMax) scaled to 1000 units.
func (f *Font) BBox() [4]int32 {
	return [4]int32{
		scale1000(int32(f.face.bbox[0]), f.face.unitsPerEm),
		scale1000(int32(f.face.bbox[1]), f.face.unitsPerEm),
		scale1000(int32(f.face.bbox[2]), f.face.unitsPerEm),
		scale1000(int32(f.face.bbox[3]), f.face.unitsPerEm),
	}
}

// ItalicAngle returns the face's italic slant angle in degrees.
func (f *Font) ItalicAngle() float64 { return f.face.italicAngle }

// GlyphWidth returns the raw hmtx advance for gid, in font design units.
func (f *Font) GlyphWidth(gid uint16) uint16 { return f.face.AdvanceOf(gid) }

// GlyphWidth1000 returns the gid's advance scaled to 1000 units per em, the
// form the W array and DW entry need.
func (f *Font) GlyphWidth1000(gid uint16) int32 {
	return scale1000(int32(f.face.AdvanceOf(gid)), f.face.unitsPerEm)
}

// GlyphCount returns the total number of glyphs in the face.
func (f *Font) GlyphCount() uint16 { return f.face.NumGlyphs() }

// RawData returns the original, unsubsetted font bytes.
func (f *Font) RawData() []byte { return f.face.Raw() }
