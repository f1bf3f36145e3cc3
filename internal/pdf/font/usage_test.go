package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageMarkAndSorted(t *testing.T) {
	u := NewUsage()
	assert.True(t, u.Empty())

	u.Mark(40)
	u.Mark(3)
	u.Mark(40) // duplicate
	u.Mark(17)

	assert.False(t, u.Empty())
	assert.Equal(t, 3, u.Count())
	assert.Equal(t, []uint16{3, 17, 40}, u.Sorted())
	assert.True(t, u.Is(17))
	assert.False(t, u.Is(18))
}

func TestUsageMarkGlyphs(t *testing.T) {
	u := NewUsage()
	u.MarkGlyphs([]ShapedGlyph{{GlyphID: 5}, {GlyphID: 9}, {GlyphID: 5}})
	assert.Equal(t, []uint16{5, 9}, u.Sorted())
}

func TestUsageUnion(t *testing.T) {
	a := NewUsage()
	a.Mark(1)
	a.Mark(2)
	b := NewUsage()
	b.Mark(2)
	b.Mark(3)

	a.Union(b)
	assert.Equal(t, []uint16{1, 2, 3}, a.Sorted())
	// b unchanged
	assert.Equal(t, []uint16{2, 3}, b.Sorted())
}
