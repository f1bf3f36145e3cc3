package pdf

import (
	"bytes"
	"fmt"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/writer"
)

// TextAlign is the horizontal alignment of text within its box, shared by
// table cells and the PageNumber layout node.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Page accumulates one page's content-stream bytes and the glyph/image
// usage that stream references: every custom-font text operation records
// its glyph ids, every /Im{k} Do records the image index, so the document
// can subset fonts and build complete Resources dictionaries later.
type Page struct {
	Width, Height float64
	content       bytes.Buffer
	usedGlyphs    map[int]*font.Usage // font index -> referenced glyph ids
	usedImages    map[int]struct{}
}

// NewPage creates a blank page of the given size (PDF points).
func NewPage(width, height float64) *Page {
	return &Page{
		Width: width, Height: height,
		usedGlyphs: make(map[int]*font.Usage),
		usedImages: make(map[int]struct{}),
	}
}

// Content returns the accumulated content-stream bytes.
func (p *Page) Content() []byte { return p.content.Bytes() }

// UsedGlyphs returns the page's per-font glyph usage, keyed by font index
// (0-based, matching document.AddFont's return value — NOT the /Fn name,
// which is font index + 2).
func (p *Page) UsedGlyphs() map[int]*font.Usage { return p.usedGlyphs }

// UsedImages returns the set of image indices referenced by this page.
func (p *Page) UsedImages() map[int]struct{} { return p.usedImages }

func (p *Page) glyphUsage(fontIndex int) *font.Usage {
	u, ok := p.usedGlyphs[fontIndex]
	if !ok {
		u = font.NewUsage()
		p.usedGlyphs[fontIndex] = u
	}
	return u
}

// Text appends built-in-Helvetica text at (x, y):
// BT /F1 s Tf x y Td (escaped) Tj ET.
func (p *Page) Text(text string, x, y, size float64) {
	fmt.Fprintf(&p.content, "BT /F1 %s Tf %s %s Td (%s) Tj ET ",
		num(size), num(x), num(y), writer.EscapeString(text))
}

// TextWithFont shapes text through f, appends its hex-CID custom-text
// operator sequence, and records the referenced glyph ids against
// fontIndex for later subsetting.
func (p *Page) TextWithFont(text string, x, y, size float64, fontIndex int, f *font.Font) {
	shaped := f.Shape(text, size)
	p.glyphUsage(fontIndex).MarkGlyphs(shaped)

	p.content.WriteString("q BT ")
	fmt.Fprintf(&p.content, "/F%d %s Tf %s %s Td ", fontIndex+2, num(size), num(x), num(y))
	p.content.WriteByte('<')
	for _, g := range shaped {
		fmt.Fprintf(&p.content, "%04x", g.GlyphID)
	}
	p.content.WriteString("> Tj ET Q ")
}

// TextWithFontColored prepends a fill-color-set operator before the same
// custom-text sequence TextWithFont emits.
func (p *Page) TextWithFontColored(text string, x, y, size float64, fontIndex int, f *font.Font, color RGB) {
	p.content.WriteString(color.fillOp())
	p.content.WriteByte(' ')
	p.TextWithFont(text, x, y, size, fontIndex, f)
}

// TextMultiline word-wraps text at width and draws each line downward from
// (x, y) stepping by size*1.2, each line through TextWithFont with the
// custom font f. y is the top of the text box; the first baseline sits one
// font size below it.
func (p *Page) TextMultiline(text string, x, y, width, size float64, fontIndex int, f *font.Font) {
	if text == "" {
		return
	}
	leading := size * 1.2
	lines := WrapText(text, f, size, width)
	cy := y - size
	for _, line := range lines {
		p.TextWithFont(line, x, cy, size, fontIndex, f)
		cy -= leading
	}
}

// TextMultilineColored is TextMultiline with a leading fill-color-set
// operator: the color is set once, then every line runs through the same
// per-line TextWithFont path.
func (p *Page) TextMultilineColored(text string, x, y, width, size float64, fontIndex int, f *font.Font, color RGB) {
	if text == "" {
		return
	}
	p.content.WriteString(color.fillOp())
	p.content.WriteByte(' ')
	p.TextMultiline(text, x, y, width, size, fontIndex, f)
}

// DrawLine strokes a line from (x1,y1) to (x2,y2) at the given width.
func (p *Page) DrawLine(x1, y1, x2, y2, width float64) {
	fmt.Fprintf(&p.content, "%s w %s %s m %s %s l S ", num(width), num(x1), num(y1), num(x2), num(y2))
}

// DrawRect strokes a rectangle outline.
func (p *Page) DrawRect(x, y, w, h, lineWidth float64) {
	fmt.Fprintf(&p.content, "%s w %s %s %s %s re S ", num(lineWidth), num(x), num(y), num(w), num(h))
}

// DrawFillRect fills a rectangle with a gray level (0=black, 1=white).
func (p *Page) DrawFillRect(x, y, w, h, gray float64) {
	fmt.Fprintf(&p.content, "%s g %s %s %s %s re f ", num(gray), num(x), num(y), num(w), num(h))
}

// DrawFillRectColor fills a rectangle with an RGB color, restoring the
// previous fill color afterwards via q/Q.
func (p *Page) DrawFillRectColor(x, y, w, h float64, color RGB) {
	p.content.WriteString("q ")
	p.content.WriteString(color.fillOp())
	p.content.WriteByte(' ')
	fmt.Fprintf(&p.content, "%s %s %s %s re f Q ", num(x), num(y), num(w), num(h))
}

// DrawImage places image index imgIndex at (x, y) scaled to (w, h), and
// records the reference in used_images.
func (p *Page) DrawImage(imgIndex int, x, y, w, h float64) {
	p.usedImages[imgIndex] = struct{}{}
	fmt.Fprintf(&p.content, "q %s 0 0 %s %s %s cm /Im%d Do Q ", num(w), num(h), num(x), num(y), imgIndex)
}

// num formats a coordinate/size operand. A stable, short decimal
// representation isn't required by PDF, but it keeps content streams
// predictable and byte-comparable.
func num(v float64) string {
	return trimFloat(v)
}
