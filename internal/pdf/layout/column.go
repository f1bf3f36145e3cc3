package layout

import (
	"math"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// Column stacks its children top to bottom, separated by Spacing. It is
// the only node that can break between children, which makes it the usual
// root of a paginated flow.
type Column struct {
	Children []Node
	Spacing  float64
}

// Measure sums every child's height (plus inter-child spacing) and takes
// the widest child's width, raised to c's minimums.
func (col *Column) Measure(c Constraints, f *font.Font) Size {
	var width, height float64
	for i, child := range col.Children {
		size := child.Measure(c, f)
		if size.Width > width {
			width = size.Width
		}
		if i > 0 {
			height += col.Spacing
		}
		height += size.Height
	}
	return Size{
		Width:  clampMin(width, c.MinWidth),
		Height: clampMin(height, c.MinHeight),
	}
}

// Split walks the children accumulating used height (plus a safetyMargin
// below the running total); the first child that doesn't fit is delegated
// to its own Split. A Head/Tail pair of Columns is built around whatever
// that delegation returns. If the very first child can't even partially
// fit, the whole column is pushed to the next page.
func (col *Column) Split(availWidth, availHeight float64, f *font.Font) SplitResult {
	used := 0.0
	for i, child := range col.Children {
		size := child.Measure(Loose(availWidth, math.Inf(1)), f)
		needed := size.Height
		if i > 0 {
			needed += col.Spacing
		}
		remaining := availHeight - used - safetyMargin
		if needed <= remaining {
			used += needed
			continue
		}

		childAvail := nonNegative(remaining)
		sub := child.Split(availWidth, childAvail, f)
		switch sub.Kind {
		case SplitFit:
			tailChildren := append([]Node{}, col.Children[i+1:]...)
			if len(tailChildren) == 0 {
				return SplitResult{Kind: SplitFit}
			}
			head := &Column{Children: append(append([]Node{}, col.Children[:i]...), child), Spacing: col.Spacing}
			tail := &Column{Children: tailChildren, Spacing: col.Spacing}
			return SplitResult{Kind: SplitSplit, Head: head, Tail: tail}

		case SplitSplit:
			headChildren := append(append([]Node{}, col.Children[:i]...), sub.Head)
			tailChildren := append([]Node{sub.Tail}, col.Children[i+1:]...)
			if len(headChildren) == 0 {
				return SplitResult{Kind: SplitPush}
			}
			head := &Column{Children: headChildren, Spacing: col.Spacing}
			tail := &Column{Children: tailChildren, Spacing: col.Spacing}
			return SplitResult{Kind: SplitSplit, Head: head, Tail: tail}

		case SplitPush:
			if i == 0 {
				return SplitResult{Kind: SplitPush}
			}
			head := &Column{Children: append([]Node{}, col.Children[:i]...), Spacing: col.Spacing}
			tail := &Column{Children: append([]Node{}, col.Children[i:]...), Spacing: col.Spacing}
			return SplitResult{Kind: SplitSplit, Head: head, Tail: tail}
		}
	}
	return SplitResult{Kind: SplitFit}
}

// Render lays each child out at full rect width, top to bottom, advancing
// by the child's own measured height plus Spacing.
func (col *Column) Render(page *pdf.Page, rect Rect, f *font.Font, fontIndex int, ctx *PageContext) {
	y := rect.Y
	for _, child := range col.Children {
		size := child.Measure(Loose(rect.Width, math.Inf(1)), f)
		childRect := Rect{X: rect.X, Y: y, Width: rect.Width, Height: size.Height}
		child.Render(page, childRect, f, fontIndex, ctx)
		y -= size.Height + col.Spacing
	}
}
