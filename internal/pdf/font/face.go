// Package font parses TrueType faces, shapes text into glyph runs, and
// produces the subset byte streams the font embedder needs.
package font

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Face is a parsed TrueType font: the metrics, glyph advances, and character
// map the layout engine consumes, plus the raw table ranges the subsetter
// slices from. All metric fields are in font design units.
type Face struct {
	unitsPerEm  uint16
	ascender    int16
	descender   int16 // negative
	lineGap     int16
	capHeight   int16 // 0 when the face carries no OS/2 cap height
	italicAngle float64
	fixedPitch  bool
	bbox        [4]int16 // xMin, yMin, xMax, yMax

	numGlyphs uint16
	advances  []uint16        // hmtx advance per glyph id
	cmap      map[rune]uint16 // unicode -> glyph id

	raw    []byte
	tables map[string]tableRange
}

type tableRange struct {
	offset, length uint32
}

var (
	errNotTrueType = errors.New("not a TrueType font")
	errTruncated   = errors.New("font data truncated")
)

// ParseFace parses TrueType font data. The byte slice is retained for
// subsetting and embedding; callers must not mutate it afterwards.
func ParseFace(data []byte) (*Face, error) {
	if len(data) < 12 {
		return nil, errTruncated
	}
	// 0x00010000 = TrueType, 'OTTO' = OpenType/CFF (glyf-less, so rejected:
	// the subsetter and CIDFontType2 embedding both assume glyf outlines)
	if be32(data, 0) != 0x00010000 {
		return nil, fmt.Errorf("%w: version 0x%08X", errNotTrueType, be32(data, 0))
	}

	f := &Face{raw: data, tables: make(map[string]tableRange)}

	numTables := int(be16(data, 4))
	if len(data) < 12+numTables*16 {
		return nil, errTruncated
	}
	for i := 0; i < numTables; i++ {
		rec := 12 + i*16
		tag := string(data[rec : rec+4])
		rng := tableRange{offset: be32(data, rec+8), length: be32(data, rec+12)}
		if int64(rng.offset)+int64(rng.length) > int64(len(data)) {
			return nil, fmt.Errorf("%w: table %q out of bounds", errTruncated, tag)
		}
		f.tables[tag] = rng
	}

	if err := f.parseHead(); err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}
	if err := f.parseHheaAndHmtx(); err != nil {
		return nil, fmt.Errorf("hmtx: %w", err)
	}
	if err := f.parseCmap(); err != nil {
		return nil, fmt.Errorf("cmap: %w", err)
	}
	f.parseOS2()
	f.parsePost()
	return f, nil
}

// table returns the raw bytes of tag, or nil when the face lacks it.
func (f *Face) table(tag string) []byte {
	rng, ok := f.tables[tag]
	if !ok {
		return nil
	}
	return f.raw[rng.offset : rng.offset+rng.length]
}

func (f *Face) parseHead() error {
	head := f.table("head")
	if len(head) < 54 {
		return errTruncated
	}
	f.unitsPerEm = be16(head, 18)
	if f.unitsPerEm == 0 {
		return errors.New("unitsPerEm is zero")
	}
	f.bbox[0] = int16(be16(head, 36))
	f.bbox[1] = int16(be16(head, 38))
	f.bbox[2] = int16(be16(head, 40))
	f.bbox[3] = int16(be16(head, 42))
	return nil
}

// longLoca reports whether the loca table uses 32-bit offsets.
func (f *Face) longLoca() bool {
	head := f.table("head")
	return len(head) >= 52 && be16(head, 50) == 1
}

func (f *Face) parseHheaAndHmtx() error {
	hhea := f.table("hhea")
	if len(hhea) < 36 {
		return errTruncated
	}
	f.ascender = int16(be16(hhea, 4))
	f.descender = int16(be16(hhea, 6))
	f.lineGap = int16(be16(hhea, 8))
	numHMetrics := int(be16(hhea, 34))

	maxp := f.table("maxp")
	if len(maxp) < 6 {
		return errTruncated
	}
	f.numGlyphs = be16(maxp, 4)

	hmtx := f.table("hmtx")
	if len(hmtx) < numHMetrics*4 {
		return errTruncated
	}
	f.advances = make([]uint16, f.numGlyphs)
	var last uint16
	for gid := 0; gid < int(f.numGlyphs); gid++ {
		if gid < numHMetrics {
			last = be16(hmtx, gid*4)
		}
		// glyphs past numberOfHMetrics repeat the final advance
		f.advances[gid] = last
	}
	return nil
}

func (f *Face) parseCmap() error {
	cmap := f.table("cmap")
	if len(cmap) < 4 {
		return errTruncated
	}

	// pick the best unicode subtable: format 12 beats format 4
	var subOffset uint32
	var subFormat uint16
	numSub := int(be16(cmap, 2))
	for i := 0; i < numSub; i++ {
		rec := 4 + i*8
		if len(cmap) < rec+8 {
			return errTruncated
		}
		platform := be16(cmap, rec)
		encoding := be16(cmap, rec+2)
		offset := be32(cmap, rec+4)
		unicode := platform == 0 || (platform == 3 && (encoding == 1 || encoding == 10))
		if !unicode || int(offset)+2 > len(cmap) {
			continue
		}
		format := be16(cmap, int(offset))
		if format == 12 || (format == 4 && subFormat != 12) {
			subOffset, subFormat = offset, format
		}
	}

	f.cmap = make(map[rune]uint16)
	switch subFormat {
	case 4:
		return f.parseCmap4(cmap[subOffset:])
	case 12:
		return f.parseCmap12(cmap[subOffset:])
	default:
		return errors.New("no unicode subtable")
	}
}

func (f *Face) parseCmap4(sub []byte) error {
	if len(sub) < 14 {
		return errTruncated
	}
	segCount := int(be16(sub, 6)) / 2
	endAt := 14
	startAt := endAt + segCount*2 + 2
	deltaAt := startAt + segCount*2
	rangeAt := deltaAt + segCount*2
	if len(sub) < rangeAt+segCount*2 {
		return errTruncated
	}

	for seg := 0; seg < segCount; seg++ {
		start := be16(sub, startAt+seg*2)
		end := be16(sub, endAt+seg*2)
		if start == 0xFFFF {
			break
		}
		delta := be16(sub, deltaAt+seg*2)
		rangeOffset := be16(sub, rangeAt+seg*2)
		for c := uint32(start); c <= uint32(end); c++ {
			var gid uint16
			if rangeOffset == 0 {
				gid = uint16(c) + delta
			} else {
				// offset is relative to its own idRangeOffset slot
				at := rangeAt + seg*2 + int(rangeOffset) + int(c-uint32(start))*2
				if at+2 > len(sub) {
					continue
				}
				gid = be16(sub, at)
				if gid != 0 {
					gid += delta
				}
			}
			if gid != 0 && gid < f.numGlyphs {
				f.cmap[rune(c)] = gid
			}
		}
	}
	return nil
}

func (f *Face) parseCmap12(sub []byte) error {
	if len(sub) < 16 {
		return errTruncated
	}
	numGroups := int(be32(sub, 12))
	if len(sub) < 16+numGroups*12 {
		return errTruncated
	}
	for g := 0; g < numGroups; g++ {
		rec := 16 + g*12
		start := be32(sub, rec)
		end := be32(sub, rec+4)
		first := be32(sub, rec+8)
		for c := start; c <= end; c++ {
			gid := uint16(first + (c - start))
			if gid < f.numGlyphs {
				f.cmap[rune(c)] = gid
			}
			if c == 0xFFFFFFFF {
				break
			}
		}
	}
	return nil
}

// parseOS2 pulls the cap height when the table version carries one. Absence
// leaves capHeight at 0 and the facade falls back to a fraction of the
// ascender.
func (f *Face) parseOS2() {
	os2 := f.table("OS/2")
	if len(os2) < 90 {
		return
	}
	if be16(os2, 0) >= 2 {
		f.capHeight = int16(be16(os2, 88))
	}
}

func (f *Face) parsePost() {
	post := f.table("post")
	if len(post) < 16 {
		return
	}
	// italicAngle is 16.16 fixed point
	f.italicAngle = float64(int32(be32(post, 4))) / 65536.0
	f.fixedPitch = be32(post, 12) != 0
}

// GlyphIndex maps a rune through the character map, 0 (.notdef) on a miss.
func (f *Face) GlyphIndex(r rune) uint16 { return f.cmap[r] }

// AdvanceOf returns the hmtx advance width of gid in design units.
func (f *Face) AdvanceOf(gid uint16) uint16 {
	if int(gid) < len(f.advances) {
		return f.advances[gid]
	}
	return 0
}

// GlyphsForText returns the sorted set of glyph ids text references,
// always including glyph 0.
func (f *Face) GlyphsForText(text string) []uint16 {
	u := NewUsage()
	u.Mark(0)
	for _, r := range text {
		u.Mark(f.GlyphIndex(r))
	}
	return u.Sorted()
}

// NumGlyphs returns the glyph count from maxp.
func (f *Face) NumGlyphs() uint16 { return f.numGlyphs }

// Raw returns the original font bytes the face was parsed from.
func (f *Face) Raw() []byte { return f.raw }

func be16(b []byte, off int) uint16 { return binary.BigEndian.Uint16(b[off:]) }
func be32(b []byte, off int) uint32 { return binary.BigEndian.Uint32(b[off:]) }
