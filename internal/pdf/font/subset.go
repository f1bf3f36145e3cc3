package font

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sort"
)

// Subset produces a reduced TrueType byte stream containing only the glyphs
// in used (plus glyph 0, the .notdef glyph, which is always kept). Unlike a
// compacting subsetter, glyph ids are never renumbered: the embedded font
// keeps its original gid space up to the highest referenced glyph, with the
// glyf entries for every gid outside used zeroed out. This is what lets the
// PDF font bundle declare /CIDToGIDMap /Identity — the CIDs written into
// content streams (which are the original glyph ids, chosen before
// subsetting ever runs) stay valid without a remapping step.
func Subset(f *Face, used []uint16) ([]byte, error) {
	if len(used) == 0 {
		return nil, errors.New("font: no glyphs to subset")
	}

	keep := make(map[uint16]bool, len(used)+1)
	keep[0] = true
	maxGID := uint16(0)
	for _, g := range used {
		if g < f.numGlyphs {
			keep[g] = true
			if g > maxGID {
				maxGID = g
			}
		}
	}

	numGlyphs := maxGID + 1

	tables := make(map[string][]byte)
	tables["head"] = copyTable(f, "head")
	if len(tables["head"]) >= 12 {
		// clear checkSumAdjustment; recomputed after assembly
		tables["head"][8], tables["head"][9], tables["head"][10], tables["head"][11] = 0, 0, 0, 0
	}
	tables["hhea"] = subsetHhea(f, numGlyphs)
	tables["maxp"] = subsetMaxp(f, numGlyphs)

	glyf, loca, shortLoca := subsetGlyfAndLoca(f, keep, maxGID)
	tables["glyf"] = glyf
	tables["loca"] = loca
	if len(tables["head"]) >= 52 {
		if shortLoca {
			tables["head"][50], tables["head"][51] = 0, 0
		} else {
			tables["head"][50], tables["head"][51] = 0, 1
		}
	}

	tables["hmtx"] = subsetHmtx(f, numGlyphs)
	for _, tag := range []string{"cmap", "post", "name", "OS/2", "cvt ", "fpgm", "prep"} {
		if data := copyTable(f, tag); data != nil {
			tables[tag] = data
		}
	}

	return assembleSFNT(tables)
}

// SubsetForText is a convenience wrapper that collects the glyph set from
// text before subsetting.
func SubsetForText(f *Face, text string) ([]byte, error) {
	return Subset(f, f.GlyphsForText(text))
}

func copyTable(f *Face, tag string) []byte {
	src := f.table(tag)
	if src == nil {
		return nil
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

func subsetHhea(f *Face, numGlyphs uint16) []byte {
	data := copyTable(f, "hhea")
	if len(data) >= 36 {
		// numberOfHMetrics must not exceed the reduced glyph count
		binary.BigEndian.PutUint16(data[34:], numGlyphs)
	}
	return data
}

func subsetMaxp(f *Face, numGlyphs uint16) []byte {
	data := copyTable(f, "maxp")
	if len(data) >= 6 {
		binary.BigEndian.PutUint16(data[4:], numGlyphs)
	}
	return data
}

// subsetGlyfAndLoca rebuilds glyf/loca over gids [0, maxGID] inclusive,
// keeping the original outline bytes for gids in keep and emitting
// zero-length entries for everything else.
func subsetGlyfAndLoca(f *Face, keep map[uint16]bool, maxGID uint16) (glyf, loca []byte, shortLoca bool) {
	glyfData := f.table("glyf")
	locaData := f.table("loca")
	if glyfData == nil || locaData == nil {
		return []byte{}, []byte{0, 0}, true
	}

	origLong := f.longLoca()
	glyphRange := func(gid uint32) (uint32, uint32) {
		if origLong {
			if int(gid)*4+8 > len(locaData) {
				return 0, 0
			}
			return binary.BigEndian.Uint32(locaData[gid*4:]),
				binary.BigEndian.Uint32(locaData[gid*4+4:])
		}
		if int(gid)*2+4 > len(locaData) {
			return 0, 0
		}
		return uint32(binary.BigEndian.Uint16(locaData[gid*2:])) * 2,
			uint32(binary.BigEndian.Uint16(locaData[gid*2+2:])) * 2
	}

	var newGlyf bytes.Buffer
	offsets := make([]uint32, int(maxGID)+2)

	for gid := uint32(0); gid <= uint32(maxGID); gid++ {
		offsets[gid] = uint32(newGlyf.Len())
		if !keep[uint16(gid)] {
			continue
		}
		start, end := glyphRange(gid)
		if end <= start || start >= uint32(len(glyfData)) {
			continue
		}
		if end > uint32(len(glyfData)) {
			end = uint32(len(glyfData))
		}
		newGlyf.Write(glyfData[start:end])
		if newGlyf.Len()%2 != 0 {
			newGlyf.WriteByte(0)
		}
	}
	offsets[maxGID+1] = uint32(newGlyf.Len())

	useShort := offsets[len(offsets)-1] <= 0xFFFF*2
	var newLoca bytes.Buffer
	for _, off := range offsets {
		if useShort {
			binary.Write(&newLoca, binary.BigEndian, uint16(off/2))
		} else {
			binary.Write(&newLoca, binary.BigEndian, off)
		}
	}

	return newGlyf.Bytes(), newLoca.Bytes(), useShort
}

func subsetHmtx(f *Face, numGlyphs uint16) []byte {
	var buf bytes.Buffer
	for gid := uint16(0); gid < numGlyphs; gid++ {
		binary.Write(&buf, binary.BigEndian, f.AdvanceOf(gid))
		binary.Write(&buf, binary.BigEndian, int16(0))
	}
	return buf.Bytes()
}

func tableChecksum(data []byte) uint32 {
	padded := data
	if len(data)%4 != 0 {
		padded = make([]byte, len(data)+(4-len(data)%4))
		copy(padded, data)
	}
	var sum uint32
	for i := 0; i < len(padded); i += 4 {
		sum += binary.BigEndian.Uint32(padded[i:])
	}
	return sum
}

func assembleSFNT(tables map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer

	tags := make([]string, 0, len(tables))
	for tag, data := range tables {
		if data == nil {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	numTables := uint16(len(tags))
	searchRange := uint16(1)
	entrySelector := uint16(0)
	for searchRange*2 <= numTables {
		searchRange *= 2
		entrySelector++
	}
	searchRange *= 16
	rangeShift := numTables*16 - searchRange

	binary.Write(&buf, binary.BigEndian, uint32(0x00010000))
	binary.Write(&buf, binary.BigEndian, numTables)
	binary.Write(&buf, binary.BigEndian, searchRange)
	binary.Write(&buf, binary.BigEndian, entrySelector)
	binary.Write(&buf, binary.BigEndian, rangeShift)

	tableOffset := uint32(12 + int(numTables)*16)
	offsets := make(map[string]uint32, len(tags))
	for _, tag := range tags {
		data := tables[tag]
		padded := []byte(tag)
		for len(padded) < 4 {
			padded = append(padded, ' ')
		}
		buf.Write(padded[:4])
		binary.Write(&buf, binary.BigEndian, tableChecksum(data))
		binary.Write(&buf, binary.BigEndian, tableOffset)
		binary.Write(&buf, binary.BigEndian, uint32(len(data)))

		offsets[tag] = tableOffset
		tableOffset += (uint32(len(data)) + 3) &^ 3
	}

	for _, tag := range tags {
		data := tables[tag]
		buf.Write(data)
		for pad := (4 - len(data)%4) % 4; pad > 0; pad-- {
			buf.WriteByte(0)
		}
	}

	result := buf.Bytes()
	if headOffset, ok := offsets["head"]; ok {
		// whole-font checksum folds to 0xB1B0AFBA via checkSumAdjustment
		adjustment := uint32(0xB1B0AFBA) - tableChecksum(result)
		binary.BigEndian.PutUint32(result[headOffset+8:], adjustment)
	}
	return result, nil
}
