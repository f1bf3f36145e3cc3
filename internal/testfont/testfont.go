// Package testfont builds a minimal, deterministic TrueType face in memory
// for tests. Printable ASCII (0x20-0x7E) maps to consecutive glyph ids
// starting at 3, every glyph advances 500 design units at 1000 units per em,
// so text widths are exactly size/2 per character.
package testfont

import (
	"bytes"
	"encoding/binary"
	"sort"
)

const (
	UnitsPerEm   = 1000
	Ascender     = 800
	Descender    = -200
	AdvanceWidth = 500

	firstChar = 0x20
	lastChar  = 0x7E
	firstGID  = 3

	// NumGlyphs covers gid 0 (.notdef), two unused gids, and one gid per
	// printable ASCII character.
	NumGlyphs = lastChar - firstChar + 1 + firstGID
)

// GlyphID returns the glyph id the face maps r to, 0 outside printable ASCII.
func GlyphID(r rune) uint16 {
	if r < firstChar || r > lastChar {
		return 0
	}
	return uint16(r) - firstChar + firstGID
}

// Bytes assembles the face. The output is stable across calls.
func Bytes() []byte {
	glyf, loca := glyfAndLoca()
	tables := map[string][]byte{
		"head": headTable(),
		"hhea": hheaTable(),
		"maxp": maxpTable(),
		"hmtx": hmtxTable(),
		"cmap": cmapTable(),
		"glyf": glyf,
		"loca": loca,
	}
	return assemble(tables)
}

func headTable() []byte {
	var b bytes.Buffer
	be(&b, uint32(0x00010000)) // version
	be(&b, uint32(0))          // fontRevision
	be(&b, uint32(0))          // checkSumAdjustment
	be(&b, uint32(0x5F0F3CF5)) // magicNumber
	be(&b, uint16(0))          // flags
	be(&b, uint16(UnitsPerEm))
	be(&b, uint64(0)) // created
	be(&b, uint64(0)) // modified
	be(&b, int16(0))  // xMin
	be(&b, int16(Descender))
	be(&b, int16(UnitsPerEm)) // xMax
	be(&b, int16(Ascender))   // yMax
	be(&b, uint16(0))         // macStyle
	be(&b, uint16(8))         // lowestRecPPEM
	be(&b, int16(2))          // fontDirectionHint
	be(&b, int16(0))          // indexToLocFormat: short
	be(&b, int16(0))          // glyphDataFormat
	return b.Bytes()
}

func hheaTable() []byte {
	var b bytes.Buffer
	be(&b, uint32(0x00010000))
	be(&b, int16(Ascender))
	be(&b, int16(Descender))
	be(&b, int16(0))             // lineGap
	be(&b, uint16(AdvanceWidth)) // advanceWidthMax
	be(&b, int16(0))             // minLeftSideBearing
	be(&b, int16(0))             // minRightSideBearing
	be(&b, int16(AdvanceWidth))  // xMaxExtent
	be(&b, int16(1))             // caretSlopeRise
	be(&b, int16(0))             // caretSlopeRun
	be(&b, int16(0))             // caretOffset
	be(&b, uint64(0))            // reserved
	be(&b, int16(0))             // metricDataFormat
	be(&b, uint16(NumGlyphs))    // numberOfHMetrics
	return b.Bytes()
}

func maxpTable() []byte {
	var b bytes.Buffer
	be(&b, uint32(0x00005000))
	be(&b, uint16(NumGlyphs))
	return b.Bytes()
}

func hmtxTable() []byte {
	var b bytes.Buffer
	for gid := 0; gid < NumGlyphs; gid++ {
		be(&b, uint16(AdvanceWidth))
		be(&b, int16(0)) // lsb
	}
	return b.Bytes()
}

// cmapTable emits one format-4 subtable with a single segment covering
// printable ASCII plus the required 0xFFFF terminator segment.
func cmapTable() []byte {
	var b bytes.Buffer
	be(&b, uint16(0)) // version
	be(&b, uint16(1)) // numTables
	be(&b, uint16(3)) // platformID: Windows
	be(&b, uint16(1)) // encodingID: Unicode BMP
	be(&b, uint32(12))

	const segCount = 2
	subLen := 14 + segCount*2*4 + 2
	be(&b, uint16(4)) // format
	be(&b, uint16(subLen))
	be(&b, uint16(0))                 // language
	be(&b, uint16(segCount*2))        // segCountX2
	be(&b, uint16(4))                 // searchRange
	be(&b, uint16(1))                 // entrySelector
	be(&b, uint16(0))                 // rangeShift
	be(&b, uint16(lastChar))          // endCode[0]
	be(&b, uint16(0xFFFF))            // endCode[1]
	be(&b, uint16(0))                 // reservedPad
	be(&b, uint16(firstChar))         // startCode[0]
	be(&b, uint16(0xFFFF))            // startCode[1]
	be(&b, int16(firstGID-firstChar)) // idDelta[0]
	be(&b, int16(1))                  // idDelta[1]
	be(&b, uint16(0))                 // idRangeOffset[0]
	be(&b, uint16(0))                 // idRangeOffset[1]
	return b.Bytes()
}

// glyfAndLoca gives the glyph for 'A' a one-contour outline and leaves every
// other glyph empty, so subsetting has real outline bytes to carry or drop.
func glyfAndLoca() (glyf, loca []byte) {
	outline := simpleOutline()

	var g bytes.Buffer
	offsets := make([]uint16, NumGlyphs+1)
	aGID := GlyphID('A')
	for gid := 0; gid < NumGlyphs; gid++ {
		offsets[gid] = uint16(g.Len() / 2)
		if uint16(gid) == aGID {
			g.Write(outline)
		}
	}
	offsets[NumGlyphs] = uint16(g.Len() / 2)

	var l bytes.Buffer
	for _, off := range offsets {
		be(&l, off)
	}
	return g.Bytes(), l.Bytes()
}

func simpleOutline() []byte {
	var b bytes.Buffer
	be(&b, int16(1))   // numberOfContours
	be(&b, int16(0))   // xMin
	be(&b, int16(0))   // yMin
	be(&b, int16(100)) // xMax
	be(&b, int16(100)) // yMax
	be(&b, uint16(2))  // endPtsOfContours[0]: 3 points
	be(&b, uint16(0))  // instructionLength
	for i := 0; i < 3; i++ {
		b.WriteByte(0x07) // onCurve | xShort | yShort
	}
	b.Write([]byte{0, 100, 0}) // x deltas
	b.Write([]byte{0, 0, 100}) // y deltas
	for b.Len()%2 != 0 {
		b.WriteByte(0)
	}
	return b.Bytes()
}

func assemble(tables map[string][]byte) []byte {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	var b bytes.Buffer
	numTables := uint16(len(names))
	searchRange := uint16(1)
	entrySelector := uint16(0)
	for searchRange*2 <= numTables {
		searchRange *= 2
		entrySelector++
	}
	searchRange *= 16
	be(&b, uint32(0x00010000))
	be(&b, numTables)
	be(&b, searchRange)
	be(&b, entrySelector)
	be(&b, numTables*16-searchRange)

	offset := uint32(12 + int(numTables)*16)
	for _, name := range names {
		data := tables[name]
		b.WriteString(name)
		be(&b, uint32(0)) // checksum, unchecked by the parser
		be(&b, offset)
		be(&b, uint32(len(data)))
		offset += (uint32(len(data)) + 3) &^ 3
	}
	for _, name := range names {
		data := tables[name]
		b.Write(data)
		for pad := (4 - len(data)%4) % 4; pad > 0; pad-- {
			b.WriteByte(0)
		}
	}
	return b.Bytes()
}

func be(b *bytes.Buffer, v any) {
	binary.Write(b, binary.BigEndian, v)
}
