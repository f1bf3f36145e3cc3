package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay-sawant/gopdflayout/internal/testfont"
)

func TestSubsetKeepsUsedGlyphsAndNotdef(t *testing.T) {
	face, err := ParseFace(testfont.Bytes())
	require.NoError(t, err)

	aGID := testfont.GlyphID('A')
	bGID := testfont.GlyphID('B')
	out, err := Subset(face, []uint16{aGID, bGID})
	require.NoError(t, err)

	sub, err := ParseFace(out)
	require.NoError(t, err)

	// gid space is preserved up to the highest referenced glyph
	assert.Equal(t, bGID+1, sub.NumGlyphs())

	// hmtx advances survive for every kept gid
	assert.Equal(t, uint16(testfont.AdvanceWidth), sub.AdvanceOf(0))
	assert.Equal(t, uint16(testfont.AdvanceWidth), sub.AdvanceOf(aGID))
	assert.Equal(t, uint16(testfont.AdvanceWidth), sub.AdvanceOf(bGID))

	// 'A' carries the only outline in the fixture, and it must survive
	assert.NotEmpty(t, sub.table("glyf"))

	// the cmap is copied through, so char lookups still resolve
	assert.Equal(t, aGID, sub.GlyphIndex('A'))
}

func TestSubsetDropsUnreferencedOutlines(t *testing.T) {
	face, err := ParseFace(testfont.Bytes())
	require.NoError(t, err)

	// subset to a glyph past 'A' without including 'A': its outline goes
	zGID := testfont.GlyphID('Z')
	out, err := Subset(face, []uint16{zGID})
	require.NoError(t, err)

	sub, err := ParseFace(out)
	require.NoError(t, err)
	assert.Equal(t, zGID+1, sub.NumGlyphs())
	assert.Empty(t, sub.table("glyf"))
}

func TestSubsetEmptySetFails(t *testing.T) {
	face, err := ParseFace(testfont.Bytes())
	require.NoError(t, err)

	_, err = Subset(face, nil)
	assert.Error(t, err)
}

func TestSubsetForText(t *testing.T) {
	face, err := ParseFace(testfont.Bytes())
	require.NoError(t, err)

	out, err := SubsetForText(face, "AB")
	require.NoError(t, err)

	sub, err := ParseFace(out)
	require.NoError(t, err)
	assert.Equal(t, testfont.GlyphID('B')+1, sub.NumGlyphs())

	// a subset is smaller than the original face
	assert.Less(t, len(out), len(testfont.Bytes()))
}

func TestSubsetIgnoresOutOfRangeGids(t *testing.T) {
	face, err := ParseFace(testfont.Bytes())
	require.NoError(t, err)

	out, err := Subset(face, []uint16{testfont.GlyphID('A'), 60000})
	require.NoError(t, err)

	sub, err := ParseFace(out)
	require.NoError(t, err)
	assert.Equal(t, testfont.GlyphID('A')+1, sub.NumGlyphs())
}
