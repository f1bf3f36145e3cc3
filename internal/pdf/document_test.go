package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay-sawant/gopdflayout/internal/testfont"
)

func writeBuffered(t *testing.T, d *Document) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, d.WriteTo(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

var xrefEntryRe = regexp.MustCompile(`(?m)^(\d{10}) 00000 n $`)

func xrefOffsets(t *testing.T, out []byte) []int {
	t.Helper()
	matches := xrefEntryRe.FindAllStringSubmatch(string(out), -1)
	offsets := make([]int, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		offsets = append(offsets, v)
	}
	return offsets
}

// checkWellFormed asserts the framing and xref-accuracy invariants every
// output must satisfy.
func checkWellFormed(t *testing.T, out []byte) {
	t.Helper()
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-1.7\n")))
	require.True(t, bytes.HasSuffix(out, []byte("%%EOF\n")))
	for id, offset := range xrefOffsets(t, out) {
		prefix := fmt.Sprintf("%d 0 obj", id+1)
		require.True(t, bytes.HasPrefix(out[offset:], []byte(prefix)),
			"xref offset for object %d", id+1)
	}
}

func TestSinglePageBuiltinFont(t *testing.T) {
	d := NewDocument()
	p := NewPage(595, 842)
	p.Text("Hello", 50, 800, 12)
	require.NoError(t, d.AddPage(p))

	out := writeBuffered(t, d)
	checkWellFormed(t, out)

	content := string(out)
	assert.Equal(t, 1, strings.Count(content, "BT /F1 12 Tf 50 800 Td (Hello) Tj ET"))
	// catalog, pages, Helvetica, content, page
	assert.Len(t, xrefOffsets(t, out), 5)
	assert.Contains(t, content, "/Count 1")
	assert.Contains(t, content, "/BaseFont /Helvetica")
	assert.Contains(t, content, "/MediaBox [0 0 595 842]")
}

func TestCustomFontSubsetting(t *testing.T) {
	d := NewDocument()
	f := loadTestFont(t)
	idx, err := d.AddFont(f)
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	for i := 0; i < 2; i++ {
		p := NewPage(595, 842)
		p.TextWithFont("AB", 50, 800, 12, idx, f)
		require.NoError(t, d.AddPage(p))
	}

	out := writeBuffered(t, d)
	checkWellFormed(t, out)

	content := string(out)
	assert.Contains(t, content, "/Encoding /Identity-H")
	assert.Contains(t, content, "/BaseFont /TestSans")
	assert.Contains(t, content, "/Subtype /CIDFontType2")
	assert.Contains(t, content, "/CIDToGIDMap /Identity")
	assert.Contains(t, content, "/DW 1000")

	// W array lists exactly the used glyphs, ascending, at truncated widths
	aGID, bGID := testfont.GlyphID('A'), testfont.GlyphID('B')
	assert.Contains(t, content, fmt.Sprintf("/W [%d [500] %d [500]]", aGID, bGID))

	// both pages reference /F2, which maps to the Type0 at id 7
	assert.Contains(t, content, "/F2 7 0 R")
	assert.Equal(t, 2, strings.Count(content, fmt.Sprintf("<%04x%04x> Tj", aGID, bGID)))
}

func TestBufferedObjectIDLayout(t *testing.T) {
	d := NewDocument()
	f := loadTestFont(t)
	_, err := d.AddFont(f)
	require.NoError(t, err)

	img, err := NewJPEGImage(2, 2, ColorSpaceRGB, []byte{0xFF, 0xD8, 1, 2})
	require.NoError(t, err)
	imgIdx, err := d.AddImage(img)
	require.NoError(t, err)

	p := NewPage(595, 842)
	p.TextWithFont("A", 50, 800, 12, 0, f)
	p.DrawImage(imgIdx, 50, 600, 100, 100)
	require.NoError(t, d.AddPage(p))

	out := writeBuffered(t, d)
	checkWellFormed(t, out)

	// catalog=1 pages=2 helvetica=3, font bundle 4-7, image 8, content 9, page 10
	content := string(out)
	assert.Len(t, xrefOffsets(t, out), 10)
	assert.Contains(t, content, "/Kids [10 0 R]")
	assert.Contains(t, content, "/FontFile2 4 0 R")
	assert.Contains(t, content, "/Im0 8 0 R")
	assert.Contains(t, content, "/Contents 9 0 R")
	assert.Contains(t, content, "/Parent 2 0 R")
}

func TestPagesCountMatchesKids(t *testing.T) {
	d := NewDocument()
	for i := 0; i < 3; i++ {
		p := NewPage(300, 300)
		p.Text(fmt.Sprintf("page %d", i+1), 10, 280, 10)
		require.NoError(t, d.AddPage(p))
	}
	out := writeBuffered(t, d)
	checkWellFormed(t, out)

	content := string(out)
	assert.Contains(t, content, "/Count 3")
	// pages get content/page id pairs after Helvetica: pages are 5, 7, 9
	assert.Contains(t, content, "/Kids [5 0 R 7 0 R 9 0 R]")
	assert.Equal(t, 3, strings.Count(content, "/Parent 2 0 R"))
}

func TestStreamingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.pdf")
	d, err := NewStreamingDocument(path)
	require.NoError(t, err)

	f := loadTestFont(t)
	idx, err := d.AddFont(f)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		p := NewPage(595, 842)
		p.TextWithFont("AB", 50, 800, 12, idx, f)
		require.NoError(t, d.AddPage(p))
	}
	require.NoError(t, d.Finalize())

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	checkWellFormed(t, out)

	content := string(out)
	assert.Contains(t, content, "/Count 3")
	// streaming can't subset: the W array covers every glyph from gid 0
	assert.Contains(t, content, "/W [0 [500")

	// the Pages object is written after every page object
	pagesAt := bytes.Index(out, []byte("\n2 0 obj"))
	lastPageAt := bytes.LastIndex(out, []byte("/Type /Page /Parent"))
	require.Greater(t, pagesAt, 0)
	assert.Greater(t, pagesAt, lastPageAt)
}

func TestStreamingAndBufferedEmitSameText(t *testing.T) {
	f := loadTestFont(t)
	aGID, bGID := testfont.GlyphID('A'), testfont.GlyphID('B')
	wantOp := fmt.Sprintf("<%04x%04x> Tj", aGID, bGID)

	build := func(d *Document) {
		idx, err := d.AddFont(f)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			p := NewPage(595, 842)
			p.TextWithFont("AB", 50, 800, 12, idx, f)
			require.NoError(t, d.AddPage(p))
		}
	}

	buffered := NewDocument()
	build(buffered)
	bufOut := writeBuffered(t, buffered)

	streamPath := filepath.Join(t.TempDir(), "stream.pdf")
	streaming, err := NewStreamingDocument(streamPath)
	require.NoError(t, err)
	build(streaming)
	require.NoError(t, streaming.Finalize())
	streamOut, err := os.ReadFile(streamPath)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(string(bufOut), wantOp))
	assert.Equal(t, 3, strings.Count(string(streamOut), wantOp))

	// buffered subsets; streaming embeds the full glyph range
	assert.Contains(t, string(bufOut), fmt.Sprintf("/W [%d [500] %d [500]]", aGID, bGID))
	assert.Contains(t, string(streamOut), "/W [0 [500")
}

func TestStreamingAddImageWritesImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.pdf")
	d, err := NewStreamingDocument(path)
	require.NoError(t, err)

	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	img, err := NewJPEGImage(2, 2, ColorSpaceRGB, jpeg)
	require.NoError(t, err)
	imgIdx, err := d.AddImage(img)
	require.NoError(t, err)

	p := NewPage(595, 842)
	p.DrawImage(imgIdx, 50, 600, 100, 100)
	require.NoError(t, d.AddPage(p))
	require.NoError(t, d.Finalize())

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	checkWellFormed(t, out)
	assert.Contains(t, string(out), "/Filter /DCTDecode")
	assert.Contains(t, string(out), "/Im0 Do")
}

func TestTerminalStateErrors(t *testing.T) {
	d := NewDocument()
	require.NoError(t, d.AddPage(NewPage(100, 100)))
	path := filepath.Join(t.TempDir(), "a.pdf")
	require.NoError(t, d.WriteTo(path))

	assert.ErrorIs(t, d.WriteTo(path), ErrDocumentFinalized)
	assert.ErrorIs(t, d.AddPage(NewPage(100, 100)), ErrDocumentFinalized)
	_, err := d.AddFont(loadTestFont(t))
	assert.ErrorIs(t, err, ErrDocumentFinalized)
	img, err := NewJPEGImage(1, 1, ColorSpaceGray, []byte{1})
	require.NoError(t, err)
	_, err = d.AddImage(img)
	assert.ErrorIs(t, err, ErrDocumentFinalized)
}

func TestWrongModeErrors(t *testing.T) {
	buffered := NewDocument()
	assert.ErrorIs(t, buffered.Finalize(), ErrWrongMode)

	path := filepath.Join(t.TempDir(), "s.pdf")
	streaming, err := NewStreamingDocument(path)
	require.NoError(t, err)
	assert.ErrorIs(t, streaming.WriteTo(path), ErrWrongMode)
	require.NoError(t, streaming.Finalize())
	assert.ErrorIs(t, streaming.Finalize(), ErrDocumentFinalized)
}

func TestGlyphUsageClosure(t *testing.T) {
	// the union of per-page usage equals the W array's declared glyph set
	d := NewDocument()
	f := loadTestFont(t)
	idx, err := d.AddFont(f)
	require.NoError(t, err)

	p1 := NewPage(595, 842)
	p1.TextWithFont("AC", 50, 800, 12, idx, f)
	p2 := NewPage(595, 842)
	p2.TextWithFont("CE", 50, 800, 12, idx, f)
	require.NoError(t, d.AddPage(p1))
	require.NoError(t, d.AddPage(p2))

	out := writeBuffered(t, d)

	want := fmt.Sprintf("/W [%d [500] %d [500] %d [500]]",
		testfont.GlyphID('A'), testfont.GlyphID('C'), testfont.GlyphID('E'))
	assert.Contains(t, string(out), want)
}
