package layout

import (
	"math"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// Row lays its children left to right, separated by Spacing. Unlike
// Column, a Row never breaks mid-row: it either fits on the current page
// or is pushed whole to the next one.
type Row struct {
	Children []Node
	Spacing  float64
}

// Measure sums every child's width (plus inter-child spacing) and takes
// the tallest child's height.
func (row *Row) Measure(c Constraints, f *font.Font) Size {
	var width, height float64
	for i, child := range row.Children {
		size := child.Measure(c, f)
		if i > 0 {
			width += row.Spacing
		}
		width += size.Width
		if size.Height > height {
			height = size.Height
		}
	}
	return Size{
		Width:  clampMin(width, c.MinWidth),
		Height: clampMin(height, c.MinHeight),
	}
}

// Split reports Fit if the row's measured height fits in availHeight,
// otherwise Push — rows are atomic with respect to page breaks.
func (row *Row) Split(availWidth, availHeight float64, f *font.Font) SplitResult {
	size := row.Measure(Loose(availWidth, math.Inf(1)), f)
	if size.Height <= availHeight {
		return SplitResult{Kind: SplitFit}
	}
	return SplitResult{Kind: SplitPush}
}

// Render lays each child out left to right at the row's full height,
// advancing by the child's own measured width plus Spacing.
func (row *Row) Render(page *pdf.Page, rect Rect, f *font.Font, fontIndex int, ctx *PageContext) {
	x := rect.X
	for _, child := range row.Children {
		size := child.Measure(Loose(math.Inf(1), rect.Height), f)
		childRect := Rect{X: x, Y: rect.Y, Width: size.Width, Height: rect.Height}
		child.Render(page, childRect, f, fontIndex, ctx)
		x += size.Width + row.Spacing
	}
}
