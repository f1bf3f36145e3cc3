// Package gopdflib provides a Go library for generating PDF 1.7 documents
// from a declarative layout tree.
//
// This package can be imported into your Go application to produce PDFs with
// embedded, subsetted TrueType fonts, compressed images, and automatic
// pagination with header/footer support.
//
// # Quick Start
//
// To generate a single-page PDF with the built-in Helvetica font:
//
//	import "github.com/chinmay-sawant/gopdflayout/pkg/gopdflib"
//
//	doc := gopdflib.NewDocument()
//	page := gopdflib.NewPage(595, 842) // A4
//	page.Text("Hello, world", 50, 800, 12)
//	doc.AddPage(page)
//	err := doc.WriteTo("out.pdf")
//
// # Custom Fonts
//
// Register a TrueType font once per document, then reference it by index:
//
//	face, err := gopdflib.FontFromBytes(ttfBytes, "DejaVuSans")
//	idx, err := doc.AddFont(face)
//	page.TextWithFont("Shaped text", 50, 760, 14, idx, face)
//
// In buffered mode (NewDocument + WriteTo) each custom font is subsetted to
// the glyphs the document actually uses. In streaming mode
// (NewStreamingDocument + Finalize) pages are written to disk as they are
// added and fonts are embedded whole, trading output size for bounded memory.
//
// Callers without their own TrueType file can render with the host
// system's sans-serif face instead: Document.DefaultFont locates one via
// the fontutils package and registers it, and RenderFlow does the same
// implicitly when passed a nil font.
//
// # Layout Trees
//
// The layout package's node set (Column, Row, Text, Container, Image, Table,
// PageNumber) is re-exported here. A tree is paginated across as many pages
// as it needs with RenderFlow, which resolves {page}/{total} placeholders in
// headers and footers:
//
//	body := &gopdflib.Column{Children: []gopdflib.LayoutNode{
//	    &gopdflib.LayoutText{Content: "First paragraph...", Size: 12},
//	    &gopdflib.LayoutText{Content: "Second paragraph...", Size: 12},
//	}}
//	footer := &gopdflib.PageNumber{Format: "{page}/{total}", Size: 10, Align: gopdflib.AlignCenter}
//	err := gopdflib.RenderFlow(doc, body, 595, 842, face, idx, gopdflib.FlowOptions{Footer: footer})
//
// # Thread Safety
//
// A Font caches shaped runs internally and must not be shared across
// goroutines without external synchronization. A Document's AddFont/AddImage
// registration calls are safe to make concurrently, but page rendering and
// the terminal WriteTo/Finalize calls require exclusive access.
package gopdflib
