package layout

import (
	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// Text is a run of wrapped text. Color defaults to black when nil, the
// same Open Question resolution TableSettings.FontColor uses. Background,
// when set, fills the node's rect before the text is painted.
type Text struct {
	Content    string
	Size       float64
	Color      *pdf.RGB
	Background *pdf.RGB
}

func (t *Text) color() pdf.RGB {
	if t.Color != nil {
		return *t.Color
	}
	return pdf.Black
}

// Measure wraps Content at c.MaxWidth and reports lines * Size * 1.2 as
// the height and the widest wrapped line as the width; empty content
// measures to zero, matching the content builder's "empty input renders
// nothing" rule.
func (t *Text) Measure(c Constraints, f *font.Font) Size {
	lines := pdf.WrapText(t.Content, f, t.Size, c.MaxWidth)
	var width float64
	for _, line := range lines {
		if w := f.Measure(line, t.Size); w > width {
			width = w
		}
	}
	height := float64(len(lines)) * t.Size * 1.2
	return Size{
		Width:  clampMin(width, c.MinWidth),
		Height: clampMin(height, c.MinHeight),
	}
}

// Split breaks Content at a word boundary so the head fits within
// availHeight's line budget; Push only when not even one line fits.
func (t *Text) Split(availWidth, availHeight float64, f *font.Font) SplitResult {
	leading := t.Size * 1.2
	maxLines := int(availHeight / leading)
	if maxLines <= 0 {
		return SplitResult{Kind: SplitPush}
	}

	head, tail := pdf.SplitTextAtLines(t.Content, f, t.Size, availWidth, maxLines)
	if tail == "" {
		return SplitResult{Kind: SplitFit}
	}
	return SplitResult{
		Kind: SplitSplit,
		Head: &Text{Content: head, Size: t.Size, Color: t.Color, Background: t.Background},
		Tail: &Text{Content: tail, Size: t.Size, Color: t.Color, Background: t.Background},
	}
}

// Render fills the optional background, then word-wraps Content into rect,
// top-down, in t.color().
func (t *Text) Render(page *pdf.Page, rect Rect, f *font.Font, fontIndex int, ctx *PageContext) {
	if t.Background != nil {
		page.DrawFillRectColor(rect.X, rect.bottom(), rect.Width, rect.Height, *t.Background)
	}
	page.TextMultilineColored(t.Content, rect.X, rect.Y, rect.Width, t.Size, fontIndex, f, t.color())
}
