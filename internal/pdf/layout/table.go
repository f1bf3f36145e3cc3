package layout

import (
	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// Table wraps a *pdf.Table as a layout node, so it can take part in flow
// pagination: splitting re-renders the header band on every page the
// table's rows spill onto.
type Table struct {
	Table *pdf.Table
}

// Measure reports the table's fixed column width and its header-plus-rows
// height; tables don't shrink to fit a narrower constraint.
func (t *Table) Measure(c Constraints, f *font.Font) Size {
	height := t.Table.Settings.HeaderHeight
	for _, row := range t.Table.Rows {
		height += t.Table.RowHeight(row, f)
	}
	return Size{Width: t.Table.TotalWidth(), Height: height}
}

// Split finds how many rows fit under the header within availHeight,
// re-issuing the header on both the head and (if there's a tail) the
// continuation table. A table whose header alone doesn't fit is pushed
// whole to the next page.
func (t *Table) Split(availWidth, availHeight float64, f *font.Font) SplitResult {
	header := t.Table.Settings.HeaderHeight
	dataAvail := availHeight - header
	if dataAvail <= 0 {
		return SplitResult{Kind: SplitPush}
	}

	used := 0.0
	splitAt := len(t.Table.Rows)
	for i, row := range t.Table.Rows {
		h := t.Table.RowHeight(row, f)
		if used+h > dataAvail {
			splitAt = i
			break
		}
		used += h
	}

	if splitAt == len(t.Table.Rows) {
		return SplitResult{Kind: SplitFit}
	}
	if splitAt == 0 {
		return SplitResult{Kind: SplitPush}
	}

	headTable := &pdf.Table{Columns: t.Table.Columns, Settings: t.Table.Settings, Rows: t.Table.Rows[:splitAt]}
	tailTable := &pdf.Table{Columns: t.Table.Columns, Settings: t.Table.Settings, Rows: t.Table.Rows[splitAt:]}
	return SplitResult{
		Kind: SplitSplit,
		Head: &Table{Table: headTable},
		Tail: &Table{Table: tailTable},
	}
}

// Render paints the table starting at rect's top-left corner.
func (t *Table) Render(page *pdf.Page, rect Rect, f *font.Font, fontIndex int, ctx *PageContext) {
	page.DrawTable(t.Table, rect.X, rect.Y, fontIndex, f)
}
