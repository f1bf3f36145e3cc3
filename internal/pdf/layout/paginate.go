package layout

import (
	"math"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// sideMargin is the fixed left/right margin reserved on every page.
const sideMargin = 50.0

// FlowOptions configures RenderFlow. Header and Footer are optional nodes
// reserved out of every page's body area; MarginTop/MarginBottom add
// further blank space above the header and below the footer.
type FlowOptions struct {
	Header, Footer          Node
	MarginTop, MarginBottom float64
}

// RenderFlow paginates root across as many pages as it takes to fit,
// appending each to doc. It runs two passes: a count pass that repeatedly
// splits root to learn the total page count (needed so {total} can be
// resolved before the first page is rendered), and a render pass that
// repeats the identical splitting, this time drawing each head segment
// into a freshly created page alongside the header and footer.
//
// Both passes call Split identically given the same inputs, so they stay
// in lockstep without the render pass needing to remember the count
// pass's intermediate nodes.
//
// A nil f resolves through doc.DefaultFont: the system fallback face is
// loaded and registered, and fontIndex is replaced with its index.
func RenderFlow(doc *pdf.Document, root Node, pageWidth, pageHeight float64, f *font.Font, fontIndex int, opts FlowOptions) error {
	if f == nil {
		var err error
		f, fontIndex, err = doc.DefaultFont()
		if err != nil {
			return err
		}
	}

	contentWidth := pageWidth - 2*sideMargin

	headerHeight := 0.0
	if opts.Header != nil {
		headerHeight = opts.Header.Measure(Loose(contentWidth, math.Inf(1)), f).Height
	}
	footerHeight := 0.0
	if opts.Footer != nil {
		footerHeight = opts.Footer.Measure(Loose(contentWidth, math.Inf(1)), f).Height
	}

	topReserved := opts.MarginTop + headerHeight
	bottomReserved := opts.MarginBottom + footerHeight
	bodyAvailable := nonNegative(pageHeight - topReserved - bottomReserved)

	total := countPages(root, contentWidth, bodyAvailable, f)

	cur := root
	for i := 1; i <= total; i++ {
		ctx := &PageContext{Page: i, Total: total}
		page := pdf.NewPage(pageWidth, pageHeight)

		if opts.Header != nil {
			headerRect := Rect{X: sideMargin, Y: pageHeight - opts.MarginTop, Width: contentWidth, Height: headerHeight}
			opts.Header.Render(page, headerRect, f, fontIndex, ctx)
		}
		if opts.Footer != nil {
			footerRect := Rect{X: sideMargin, Y: opts.MarginBottom + footerHeight, Width: contentWidth, Height: footerHeight}
			opts.Footer.Render(page, footerRect, f, fontIndex, ctx)
		}

		res := cur.Split(contentWidth, bodyAvailable, f)
		var head Node
		switch res.Kind {
		case SplitSplit:
			head = res.Head
			cur = res.Tail
		default:
			head = cur
		}

		size := head.Measure(Loose(contentWidth, math.Inf(1)), f)
		bodyRect := Rect{X: sideMargin, Y: pageHeight - topReserved, Width: contentWidth, Height: size.Height}
		head.Render(page, bodyRect, f, fontIndex, ctx)

		if err := doc.AddPage(page); err != nil {
			return err
		}
	}

	return nil
}

// countPages runs the same Split loop RenderFlow's render pass will run,
// but only to find out how many iterations it takes: Fit or Push ends the
// loop, counting one more page; Split advances to the tail and continues.
func countPages(root Node, availWidth, availHeight float64, f *font.Font) int {
	total := 0
	cur := root
	for {
		total++
		res := cur.Split(availWidth, availHeight, f)
		if res.Kind != SplitSplit {
			return total
		}
		cur = res.Tail
	}
}
