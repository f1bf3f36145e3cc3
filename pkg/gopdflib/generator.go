// Package gopdflib provides PDF generation from declarative layout trees.
package gopdflib

import (
	"fmt"
	"log"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/layout"
)

// NewDocument creates a buffered document: all output is deferred to
// WriteTo, which lets custom fonts be subsetted against the glyphs the
// document actually used.
func NewDocument() *Document {
	return pdf.NewDocument()
}

// NewStreamingDocument creates a document bound to path. Pages and images
// are written to disk as they are added; call Finalize to complete the file.
func NewStreamingDocument(path string) (*Document, error) {
	return pdf.NewStreamingDocument(path)
}

// NewPage creates a blank page of the given size in points.
func NewPage(width, height float64) *Page {
	return pdf.NewPage(width, height)
}

// FontFromBytes parses TrueType face data into a Font usable with
// Document.AddFont and Page.TextWithFont. Unparseable data reports
// ErrInvalidFont.
func FontFromBytes(data []byte, name string) (*Font, error) {
	f, err := font.FromBytes(data, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	return f, nil
}

// NewJPEGImage wraps already-encoded JPEG bytes for DCTDecode passthrough
// embedding.
func NewJPEGImage(width, height int, colorSpace ColorSpace, data []byte) (*Image, error) {
	return pdf.NewJPEGImage(width, height, colorSpace, data)
}

// NewRawImage wraps raw interleaved 8-bit samples (e.g. a decoded PNG's RGB
// pixels) for FlateDecode embedding.
func NewRawImage(width, height int, colorSpace ColorSpace, data []byte) (*Image, error) {
	return pdf.NewRawImage(width, height, colorSpace, data)
}

// NewTable builds an empty table with default settings over the given
// columns.
func NewTable(columns []TableColumn) *Table {
	return pdf.NewTable(columns)
}

// PageSize resolves a named paper size ("A4", "Letter", ...) to dimensions
// in points, swapping width and height when landscape is set.
func PageSize(name string, landscape bool) (width, height float64) {
	return pdf.PageSize(name, landscape)
}

// RenderLayout renders a single layout subtree into page at (x, y) within
// width w, without pagination. ctx may be nil when node contains no
// PageNumber placeholders.
func RenderLayout(page *Page, node LayoutNode, x, y, w float64, f *Font, fontIndex int, ctx *PageContext) {
	layout.RenderLayout(page, node, x, y, w, f, fontIndex, ctx)
}

// RenderFlow paginates root across as many pages as it takes to fit,
// appending each page to doc, with optional header/footer nodes whose
// {page}/{total} placeholders resolve against the final page count.
// Passing a nil f renders with the document's system fallback face (see
// Document.DefaultFont); fontIndex is ignored in that case.
func RenderFlow(doc *Document, root LayoutNode, pageWidth, pageHeight float64, f *Font, fontIndex int, opts FlowOptions) error {
	return layout.RenderFlow(doc, root, pageWidth, pageHeight, f, fontIndex, opts)
}

// SetLogger redirects the engine's internal warnings (the font-subsetting
// fallback) to l. Passing nil restores the default stderr logger.
func SetLogger(l *log.Logger) {
	pdf.SetLogger(l)
}
