package pdf

import (
	"fmt"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/writer"
)

// embeddedFontObjectCount is the number of indirect objects each registered
// font contributes: FontFile2 stream, FontDescriptor, CIDFontType2,
// Type0.
const embeddedFontObjectCount = 4

// embedFont writes the four-object Type 0 / CIDFontType2 bundle for f at
// consecutive ids starting at startID, returning the Type0 font's object id
// (the one a page's /Resources /Font entry should reference).
//
// usage is the set of referenced glyph ids for the buffered, post-pagination
// case: when non-nil the font bytes are subsetted and the W array covers
// only those glyphs. When nil (streaming mode, where usage isn't known until
// after the font is already on disk) the full unsubsetted font is embedded
// and the W array covers every glyph.
func embedFont(w *writer.Writer, startID int, f *font.Font, usage *font.Usage) (int, error) {
	fontFileID := startID
	descriptorID := startID + 1
	cidFontID := startID + 2
	type0ID := startID + 3

	fontBytes := f.RawData()
	if usage != nil && !usage.Empty() {
		subset, err := font.Subset(f.Face(), usage.Sorted())
		if err != nil {
			warnf("subsetting failed for font %q, embedding full font: %v", f.Name(), err)
		} else {
			fontBytes = subset
		}
	}

	if err := w.WriteObject(fontFileID, writer.Stream(
		[]writer.DictEntry{
			writer.Entry("Length1", writer.Int(int64(len(fontBytes)))),
		},
		fontBytes,
	)); err != nil {
		return 0, fmt.Errorf("embed font %q: write FontFile2: %w", f.Name(), err)
	}

	bbox := f.BBox()
	descriptor := writer.Dict(
		writer.Entry("Type", writer.Name("FontDescriptor")),
		writer.Entry("FontName", writer.Name(sanitizeFontName(f.Name()))),
		writer.Entry("Flags", writer.Int(4)),
		writer.Entry("FontBBox", writer.Array(
			writer.Int(int64(bbox[0])), writer.Int(int64(bbox[1])),
			writer.Int(int64(bbox[2])), writer.Int(int64(bbox[3])),
		)),
		writer.Entry("Ascent", writer.Int(int64(f.Ascent()))),
		writer.Entry("Descent", writer.Int(int64(f.Descent()))),
		writer.Entry("CapHeight", writer.Int(int64(f.CapHeight()))),
		writer.Entry("ItalicAngle", writer.Real(f.ItalicAngle())),
		writer.Entry("StemV", writer.Int(80)),
		writer.Entry("FontFile2", writer.Reference(fontFileID)),
	)
	if err := w.WriteObject(descriptorID, descriptor); err != nil {
		return 0, fmt.Errorf("embed font %q: write FontDescriptor: %w", f.Name(), err)
	}

	widths := buildWidthsArray(f, usage)
	cidFont := writer.Dict(
		writer.Entry("Type", writer.Name("Font")),
		writer.Entry("Subtype", writer.Name("CIDFontType2")),
		writer.Entry("BaseFont", writer.Name(sanitizeFontName(f.Name()))),
		writer.Entry("CIDSystemInfo", writer.Dict(
			writer.Entry("Registry", writer.String("Adobe")),
			writer.Entry("Ordering", writer.String("Identity")),
			writer.Entry("Supplement", writer.Int(0)),
		)),
		writer.Entry("FontDescriptor", writer.Reference(descriptorID)),
		writer.Entry("CIDToGIDMap", writer.Name("Identity")),
		writer.Entry("DW", writer.Int(1000)),
		writer.Entry("W", widths),
	)
	if err := w.WriteObject(cidFontID, cidFont); err != nil {
		return 0, fmt.Errorf("embed font %q: write CIDFontType2: %w", f.Name(), err)
	}

	type0 := writer.Dict(
		writer.Entry("Type", writer.Name("Font")),
		writer.Entry("Subtype", writer.Name("Type0")),
		writer.Entry("BaseFont", writer.Name(sanitizeFontName(f.Name()))),
		writer.Entry("Encoding", writer.Name("Identity-H")),
		writer.Entry("DescendantFonts", writer.Array(writer.Reference(cidFontID))),
	)
	if err := w.WriteObject(type0ID, type0); err != nil {
		return 0, fmt.Errorf("embed font %q: write Type0: %w", f.Name(), err)
	}

	return type0ID, nil
}

// buildWidthsArray emits one of the two W-array shapes: per-glyph entries
// when usage is known, a single full-coverage run from gid 0 otherwise.
func buildWidthsArray(f *font.Font, usage *font.Usage) writer.Value {
	if usage != nil && !usage.Empty() {
		entries := make([]writer.Value, 0, len(usage.Sorted())*2)
		for _, gid := range usage.Sorted() {
			entries = append(entries,
				writer.Int(int64(gid)),
				writer.Array(writer.Int(int64(f.GlyphWidth1000(gid)))),
			)
		}
		return writer.Array(entries...)
	}

	n := f.GlyphCount()
	all := make([]writer.Value, 0, n)
	for gid := uint16(0); gid < n; gid++ {
		all = append(all, writer.Int(int64(f.GlyphWidth1000(gid))))
	}
	return writer.Array(writer.Int(0), writer.Array(all...))
}

// sanitizeFontName strips characters PDF name objects can't carry raw
// (space, slash) so a caller-chosen display name is always a safe /BaseFont.
func sanitizeFontName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch c {
		case ' ', '/', '(', ')', '<', '>', '[', ']', '{', '}':
			continue
		default:
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return "CustomFont"
	}
	return string(out)
}
