package layout

import (
	"math"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// RenderLayout renders a single layout subtree into page at (x, y, w).
// It measures node at the given width (unbounded height) and renders it
// without any pagination — the caller is responsible for fitting it on
// the page. ctx may be nil when node contains no PageNumber placeholders.
func RenderLayout(page *pdf.Page, node Node, x, y, w float64, f *font.Font, fontIndex int, ctx *PageContext) {
	size := node.Measure(Loose(w, math.Inf(1)), f)
	rect := Rect{X: x, Y: y, Width: w, Height: size.Height}
	node.Render(page, rect, f, fontIndex, ctx)
}
