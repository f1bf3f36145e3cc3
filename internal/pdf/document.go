package pdf

import (
	"fmt"
	"os"
	"sync"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/writer"
)

// Document orchestrates object-id assignment and final assembly of the
// Catalog/Pages tree. It has two mutually exclusive modes, selected at
// construction: buffered (NewDocument, terminal WriteTo) defers all output
// until every page is known, so it can subset fonts against the union of
// their usage; streaming (NewStreamingDocument, terminal Finalize) writes
// pages and images to disk as they arrive and can't subset because usage
// isn't known until the font is already written.
//
// The mutex covers font/image registration from multiple goroutines before
// rendering begins; the Document is not safe to drive concurrently once
// pages start rendering.
type Document struct {
	mu sync.RWMutex

	streaming bool
	finalized bool

	fonts  []*font.Font
	images []*Image
	pages  []*Page // buffered mode only

	defaultFont    *font.Font // lazily loaded system fallback face
	defaultFontIdx int

	// streaming mode state
	file          *os.File
	w             *writer.Writer
	catalogID     int
	pagesID       int
	helveticaID   int
	nextObjectID  int
	customFontIDs []int // type0 object ids, index-aligned with fonts
	imageIDs      []int // index-aligned with images
	pageIDs       []int
	fontsEmbedded bool
}

// NewDocument creates a buffered document: all output is deferred to WriteTo.
func NewDocument() *Document {
	return &Document{}
}

// NewStreamingDocument creates a document bound to path. The Catalog and
// built-in Helvetica font are written immediately; the Pages tree and xref
// are deferred to Finalize.
func NewStreamingDocument(path string) (*Document, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("gopdflayout: create %s: %w", path, err)
	}
	w, err := writer.New(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	d := &Document{
		streaming:    true,
		file:         f,
		w:            w,
		catalogID:    1,
		pagesID:      2,
		helveticaID:  3,
		nextObjectID: 4,
	}

	if err := w.WriteObject(d.catalogID, writer.Dict(
		writer.Entry("Type", writer.Name("Catalog")),
		writer.Entry("Pages", writer.Reference(d.pagesID)),
	)); err != nil {
		f.Close()
		return nil, err
	}
	if err := w.WriteObject(d.helveticaID, helveticaDict()); err != nil {
		f.Close()
		return nil, err
	}

	return d, nil
}

func helveticaDict() writer.Value {
	return writer.Dict(
		writer.Entry("Type", writer.Name("Font")),
		writer.Entry("Subtype", writer.Name("Type1")),
		writer.Entry("BaseFont", writer.Name("Helvetica")),
	)
}

// AddFont registers a custom font and returns its index, used as the
// font_index argument to Page.TextWithFont and as n in /F{n+2}.
func (d *Document) AddFont(f *font.Font) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.finalized {
		return 0, ErrDocumentFinalized
	}
	d.fonts = append(d.fonts, f)
	return len(d.fonts) - 1, nil
}

// AddImage registers an image and returns its index. In buffered mode the
// image is merely recorded; in streaming mode it is written to disk
// immediately.
func (d *Document) AddImage(img *Image) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.finalized {
		return 0, ErrDocumentFinalized
	}

	idx := len(d.images)
	d.images = append(d.images, img)

	if d.streaming {
		id := d.nextObjectID
		d.nextObjectID++
		if err := embedImage(d.w, id, img); err != nil {
			return 0, err
		}
		d.imageIDs = append(d.imageIDs, id)
	}

	return idx, nil
}

// AddPage appends a page to the document. In streaming mode this embeds
// any unembedded custom fonts (lazily, on the first call) and writes the
// page's content stream and page object immediately.
func (d *Document) AddPage(p *Page) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.finalized {
		return ErrDocumentFinalized
	}

	if !d.streaming {
		d.pages = append(d.pages, p)
		return nil
	}

	if !d.fontsEmbedded && len(d.fonts) > 0 {
		for _, f := range d.fonts {
			id := d.nextObjectID
			d.nextObjectID += embeddedFontObjectCount
			type0ID, err := embedFont(d.w, id, f, nil) // usage unknown: full font
			if err != nil {
				return err
			}
			d.customFontIDs = append(d.customFontIDs, type0ID)
		}
		d.fontsEmbedded = true
	}

	contentID := d.nextObjectID
	d.nextObjectID++
	if err := d.w.WriteObject(contentID, writer.Stream(nil, p.Content())); err != nil {
		return err
	}

	pageID := d.nextObjectID
	d.nextObjectID++
	pageDict := buildPageDict(p, d.pagesID, contentID, d.helveticaID, d.customFontIDs, d.imageIDs)
	if err := d.w.WriteObject(pageID, pageDict); err != nil {
		return err
	}

	d.pageIDs = append(d.pageIDs, pageID)
	return nil
}

// buildPageDict assembles one page's /Page dictionary: MediaBox, a
// Resources dict listing every registered font and image (/F1 is the
// built-in Helvetica, /F{n+2} the n-th registered Type0, /Im{k} the k-th
// image), and the Contents reference.
func buildPageDict(p *Page, pagesID, contentID, helveticaID int, customFontIDs, imageIDs []int) writer.Value {
	fontEntries := []writer.DictEntry{writer.Entry("F1", writer.Reference(helveticaID))}
	for i, id := range customFontIDs {
		fontEntries = append(fontEntries, writer.Entry(fmt.Sprintf("F%d", i+2), writer.Reference(id)))
	}

	resourceEntries := []writer.DictEntry{
		writer.Entry("Font", writer.Dict(fontEntries...)),
	}
	if len(imageIDs) > 0 {
		var imgEntries []writer.DictEntry
		for i, id := range imageIDs {
			imgEntries = append(imgEntries, writer.Entry(fmt.Sprintf("Im%d", i), writer.Reference(id)))
		}
		resourceEntries = append(resourceEntries, writer.Entry("XObject", writer.Dict(imgEntries...)))
	}

	return writer.Dict(
		writer.Entry("Type", writer.Name("Page")),
		writer.Entry("Parent", writer.Reference(pagesID)),
		writer.Entry("MediaBox", writer.Array(
			writer.Int(0), writer.Int(0), writer.Real(p.Width), writer.Real(p.Height),
		)),
		writer.Entry("Resources", writer.Dict(resourceEntries...)),
		writer.Entry("Contents", writer.Reference(contentID)),
	)
}

// Finalize completes a streaming document: writes the Pages object with
// the accumulated Kids, then the xref and trailer. Only valid in streaming
// mode.
func (d *Document) Finalize() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.finalized {
		return ErrDocumentFinalized
	}
	if !d.streaming {
		return ErrWrongMode
	}

	kids := make([]writer.Value, len(d.pageIDs))
	for i, id := range d.pageIDs {
		kids[i] = writer.Reference(id)
	}
	pagesDict := writer.Dict(
		writer.Entry("Type", writer.Name("Pages")),
		writer.Entry("Kids", writer.Array(kids...)),
		writer.Entry("Count", writer.Int(int64(len(d.pageIDs)))),
	)
	if err := d.w.WriteObject(d.pagesID, pagesDict); err != nil {
		return err
	}
	if err := d.w.WriteXrefAndTrailer(d.catalogID); err != nil {
		return err
	}

	d.finalized = true
	return d.file.Close()
}

// WriteTo assembles and writes the complete buffered document to path:
// glyph usage is unioned across all pages first so custom fonts can be
// subsetted, object ids are assigned deterministically (Catalog=1, Pages=2,
// Helvetica=3, then 4 ids per custom font, then one id per image, then a
// content+page id pair per page), and everything is written in that order.
// Only valid in buffered mode.
func (d *Document) WriteTo(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.finalized {
		return ErrDocumentFinalized
	}
	if d.streaming {
		return ErrWrongMode
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gopdflayout: create %s: %w", path, err)
	}
	defer file.Close()

	w, err := writer.New(file)
	if err != nil {
		return err
	}

	catalogID, pagesID, helveticaID := 1, 2, 3
	nextID := 4

	customFontIDs := make([]int, len(d.fonts))
	for i := range d.fonts {
		customFontIDs[i] = nextID
		nextID += embeddedFontObjectCount
	}

	imageIDs := make([]int, len(d.images))
	for i := range d.images {
		imageIDs[i] = nextID
		nextID++
	}

	contentIDs := make([]int, len(d.pages))
	pageIDs := make([]int, len(d.pages))
	for i := range d.pages {
		contentIDs[i] = nextID
		pageIDs[i] = nextID + 1
		nextID += 2
	}

	if err := w.WriteObject(catalogID, writer.Dict(
		writer.Entry("Type", writer.Name("Catalog")),
		writer.Entry("Pages", writer.Reference(pagesID)),
	)); err != nil {
		return err
	}

	kids := make([]writer.Value, len(pageIDs))
	for i, id := range pageIDs {
		kids[i] = writer.Reference(id)
	}
	if err := w.WriteObject(pagesID, writer.Dict(
		writer.Entry("Type", writer.Name("Pages")),
		writer.Entry("Kids", writer.Array(kids...)),
		writer.Entry("Count", writer.Int(int64(len(pageIDs)))),
	)); err != nil {
		return err
	}

	if err := w.WriteObject(helveticaID, helveticaDict()); err != nil {
		return err
	}

	usage := unionGlyphUsage(d.pages, len(d.fonts))
	for i, f := range d.fonts {
		type0ID, err := embedFont(w, customFontIDs[i], f, usage[i])
		if err != nil {
			return err
		}
		// pages reference the bundle's Type0 object, not its first object
		customFontIDs[i] = type0ID
	}

	for i, img := range d.images {
		if err := embedImage(w, imageIDs[i], img); err != nil {
			return err
		}
	}

	for i, p := range d.pages {
		if err := w.WriteObject(contentIDs[i], writer.Stream(nil, p.Content())); err != nil {
			return err
		}
		pageDict := buildPageDict(p, pagesID, contentIDs[i], helveticaID, customFontIDs, imageIDs)
		if err := w.WriteObject(pageIDs[i], pageDict); err != nil {
			return err
		}
	}

	if err := w.WriteXrefAndTrailer(catalogID); err != nil {
		return err
	}

	d.finalized = true
	return nil
}

// unionGlyphUsage merges every page's per-font glyph usage into one Usage
// per registered font, the buffered-mode prerequisite for subsetting.
func unionGlyphUsage(pages []*Page, numFonts int) []*font.Usage {
	usage := make([]*font.Usage, numFonts)
	for i := range usage {
		usage[i] = font.NewUsage()
	}
	for _, p := range pages {
		for idx, u := range p.UsedGlyphs() {
			if idx >= 0 && idx < numFonts {
				usage[idx].Union(u)
			}
		}
	}
	return usage
}
