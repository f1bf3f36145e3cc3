package pdf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
	"github.com/chinmay-sawant/gopdflayout/internal/testfont"
)

func loadTestFont(t *testing.T) *font.Font {
	t.Helper()
	f, err := font.FromBytes(testfont.Bytes(), "TestSans")
	require.NoError(t, err)
	return f
}

func TestTextBuiltinOperators(t *testing.T) {
	p := NewPage(595, 842)
	p.Text("Hello", 50, 800, 12)
	assert.Equal(t, "BT /F1 12 Tf 50 800 Td (Hello) Tj ET ", string(p.Content()))
}

func TestTextEscapesMetacharacters(t *testing.T) {
	p := NewPage(595, 842)
	p.Text(`(a)\`, 0, 0, 10)
	assert.Contains(t, string(p.Content()), `(\(a\)\\) Tj`)
}

func TestTextWithFontEmitsHexCIDs(t *testing.T) {
	f := loadTestFont(t)
	p := NewPage(595, 842)
	p.TextWithFont("AB", 50, 700, 14, 0, f)

	want := fmt.Sprintf("q BT /F2 14 Tf 50 700 Td <%04x%04x> Tj ET Q ",
		testfont.GlyphID('A'), testfont.GlyphID('B'))
	assert.Equal(t, want, string(p.Content()))

	// the referenced glyphs are recorded against the font index
	u := p.UsedGlyphs()[0]
	require.NotNil(t, u)
	assert.Equal(t, []uint16{testfont.GlyphID('A'), testfont.GlyphID('B')}, u.Sorted())
}

func TestTextWithFontIndexMapsToResourceName(t *testing.T) {
	f := loadTestFont(t)
	p := NewPage(595, 842)
	p.TextWithFont("x", 0, 0, 10, 2, f)
	assert.Contains(t, string(p.Content()), "/F4 10 Tf")
	assert.NotNil(t, p.UsedGlyphs()[2])
}

func TestTextWithFontColored(t *testing.T) {
	f := loadTestFont(t)
	p := NewPage(595, 842)
	p.TextWithFontColored("x", 10, 20, 10, 0, f, RGB{R: 1})

	content := string(p.Content())
	assert.True(t, strings.HasPrefix(content, "1.000 0.000 0.000 rg q BT "), content)
}

func TestTextMultilineStepsBaselines(t *testing.T) {
	f := loadTestFont(t)
	p := NewPage(595, 842)
	// chars are size/2 wide: "aa bb" at size 10 wraps at width 20 into two lines
	p.TextMultiline("aa bb", 50, 800, 20, 10, 0, f)

	content := string(p.Content())
	assert.Contains(t, content, "50 790 Td") // first baseline: y - size
	assert.Contains(t, content, "50 778 Td") // next: stepped by size*1.2
}

func TestTextMultilineEmptyRendersNothing(t *testing.T) {
	f := loadTestFont(t)
	p := NewPage(595, 842)
	p.TextMultiline("", 50, 800, 100, 10, 0, f)
	assert.Empty(t, p.Content())
}

func TestDrawLine(t *testing.T) {
	p := NewPage(595, 842)
	p.DrawLine(1, 2, 3, 4, 0.5)
	assert.Equal(t, "0.5 w 1 2 m 3 4 l S ", string(p.Content()))
}

func TestDrawRect(t *testing.T) {
	p := NewPage(595, 842)
	p.DrawRect(10, 20, 100, 50, 1)
	assert.Equal(t, "1 w 10 20 100 50 re S ", string(p.Content()))
}

func TestDrawFillRect(t *testing.T) {
	p := NewPage(595, 842)
	p.DrawFillRect(10, 20, 100, 50, 0.9)
	assert.Equal(t, "0.9 g 10 20 100 50 re f ", string(p.Content()))
}

func TestDrawFillRectColor(t *testing.T) {
	p := NewPage(595, 842)
	p.DrawFillRectColor(10, 20, 100, 50, RGB{R: 0.2, G: 0.4, B: 0.6})
	assert.Equal(t, "q 0.200 0.400 0.600 rg 10 20 100 50 re f Q ", string(p.Content()))
}

func TestDrawImageRecordsUsage(t *testing.T) {
	p := NewPage(595, 842)
	p.DrawImage(1, 50, 600, 200, 100)
	assert.Equal(t, "q 200 0 0 100 50 600 cm /Im1 Do Q ", string(p.Content()))
	_, ok := p.UsedImages()[1]
	assert.True(t, ok)
}

func TestContentIsAppendOnly(t *testing.T) {
	p := NewPage(595, 842)
	p.Text("one", 0, 0, 10)
	p.DrawLine(0, 0, 1, 1, 1)
	content := string(p.Content())
	assert.Less(t, strings.Index(content, "(one)"), strings.Index(content, " l S"))
}
