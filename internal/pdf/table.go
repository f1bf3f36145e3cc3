package pdf

import (
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// TableColumn is one column definition: a header label, a fixed width, and
// an alignment. Field is an optional data-binding name for callers that
// map rows from structured records; DrawTable never consults it.
type TableColumn struct {
	Header string
	Width  float64
	Align  TextAlign
	Field  *string
}

// TableSettings configures a table's padding, borders, and body font size.
// A nil FontColor means "inherit the current fill color", which resolves
// to black when nothing set one.
type TableSettings struct {
	Padding      float64
	BorderWidth  float64
	HeaderHeight float64
	FontSize     float64
	FontColor    *RGB
}

// DefaultTableSettings returns the settings DrawTable assumes when a
// caller doesn't override them.
func DefaultTableSettings() TableSettings {
	return TableSettings{
		Padding:      5,
		BorderWidth:  1,
		HeaderHeight: 30,
		FontSize:     10,
	}
}

// Table is a header row plus data rows. Every row has exactly one cell
// per column: AddRow pads short rows with empty strings.
type Table struct {
	Columns  []TableColumn
	Rows     [][]string
	Settings TableSettings
}

// NewTable builds an empty table with default settings.
func NewTable(columns []TableColumn) *Table {
	return &Table{Columns: columns, Settings: DefaultTableSettings()}
}

// AddRow appends row, padding with empty strings if it's shorter than the
// column count.
func (t *Table) AddRow(row []string) {
	if len(row) < len(t.Columns) {
		padded := make([]string, len(t.Columns))
		copy(padded, row)
		row = padded
	}
	t.Rows = append(t.Rows, row)
}

// resolvedFontColor returns the table's font color, defaulting to black
// when Settings.FontColor is nil.
func (t *Table) resolvedFontColor() RGB {
	if t.Settings.FontColor != nil {
		return *t.Settings.FontColor
	}
	return Black
}

// RowHeight computes the auto height of a data row: the tallest cell's
// wrapped-line count times leading, plus vertical padding and an 8-unit
// allowance for the baseline inset.
func (t *Table) RowHeight(row []string, f *font.Font) float64 {
	s := t.Settings
	leading := s.FontSize * 1.2
	maxLines := 1
	for i, cell := range row {
		width := 100.0
		if i < len(t.Columns) {
			width = t.Columns[i].Width
		}
		lines := CountLines(cell, f, s.FontSize, width-2*s.Padding)
		if lines == 0 {
			lines = 1
		}
		if lines > maxLines {
			maxLines = lines
		}
	}
	return float64(maxLines)*leading + 2*s.Padding + 8
}

// TotalWidth sums the declared column widths.
func (t *Table) TotalWidth() float64 {
	var w float64
	for _, c := range t.Columns {
		w += c.Width
	}
	return w
}

// DrawTable paints the header band then every data row starting at the
// top-left corner (x, y), returning the y position immediately below the
// table.
func (p *Page) DrawTable(t *Table, x, y float64, fontIndex int, f *font.Font) float64 {
	cy := y
	s := t.Settings
	totalWidth := t.TotalWidth()

	p.DrawFillRect(x, cy-s.HeaderHeight, totalWidth, s.HeaderHeight, 0.9)
	p.DrawRect(x, cy-s.HeaderHeight, totalWidth, s.HeaderHeight, s.BorderWidth)

	cx := x
	headerColor := t.resolvedFontColor()
	for _, col := range t.Columns {
		textY := cy - s.HeaderHeight/2 - 4
		p.TextWithFontColored(col.Header, cx+s.Padding, textY, 10, fontIndex, f, headerColor)
		p.DrawRect(cx, cy-s.HeaderHeight, col.Width, s.HeaderHeight, s.BorderWidth)
		cx += col.Width
	}
	cy -= s.HeaderHeight

	for _, row := range t.Rows {
		rowHeight := t.RowHeight(row, f)

		cx = x
		for i, cell := range row {
			width := 100.0
			if i < len(t.Columns) {
				width = t.Columns[i].Width
			}
			p.TextMultilineColored(cell, cx+s.Padding, cy-s.Padding-8, width-2*s.Padding, s.FontSize, fontIndex, f, headerColor)
			p.DrawRect(cx, cy-rowHeight, width, rowHeight, s.BorderWidth)
			cx += width
		}
		cy -= rowHeight
	}

	return cy
}
