package layout

import (
	"strconv"
	"strings"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// PageNumber renders a "{page}/{total}" style placeholder, resolved at
// render time from the PageContext RenderFlow supplies. Format may use
// either or both placeholders, or neither. Align reuses pdf.TextAlign
// rather than introducing a parallel enum.
type PageNumber struct {
	Format string
	Size   float64
	Align  pdf.TextAlign
	Color  *pdf.RGB
}

func (n *PageNumber) color() pdf.RGB {
	if n.Color != nil {
		return *n.Color
	}
	return pdf.Black
}

// worstCase substitutes "999" for both placeholders, the widest plausible
// rendering, so Measure never under-reports a node's footprint.
func (n *PageNumber) worstCase() string {
	r := strings.NewReplacer("{page}", "999", "{total}", "999")
	return r.Replace(n.Format)
}

func (n *PageNumber) resolve(ctx *PageContext) string {
	page, total := 0, 0
	if ctx != nil {
		page, total = ctx.Page, ctx.Total
	}
	r := strings.NewReplacer("{page}", strconv.Itoa(page), "{total}", strconv.Itoa(total))
	return r.Replace(n.Format)
}

// Measure uses the worst-case substitution as the width, so layout never
// has to re-flow once the real page numbers are known.
func (n *PageNumber) Measure(c Constraints, f *font.Font) Size {
	width := f.Measure(n.worstCase(), n.Size)
	if c.MaxWidth > 0 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	height := n.Size * 1.2
	return Size{Width: clampMin(width, c.MinWidth), Height: clampMin(height, c.MinHeight)}
}

// Split never breaks a page-number placeholder across pages.
func (n *PageNumber) Split(availWidth, availHeight float64, f *font.Font) SplitResult {
	if n.Size*1.2 <= availHeight {
		return SplitResult{Kind: SplitFit}
	}
	return SplitResult{Kind: SplitPush}
}

// Render resolves Format against ctx and draws it aligned within rect.
func (n *PageNumber) Render(page *pdf.Page, rect Rect, f *font.Font, fontIndex int, ctx *PageContext) {
	text := n.resolve(ctx)
	width := f.Measure(text, n.Size)

	x := rect.X
	switch n.Align {
	case pdf.AlignCenter:
		x = rect.X + (rect.Width-width)/2
	case pdf.AlignRight:
		x = rect.X + rect.Width - width
	}

	baseline := rect.Y - n.Size
	page.TextWithFontColored(text, x, baseline, n.Size, fontIndex, f, n.color())
}
