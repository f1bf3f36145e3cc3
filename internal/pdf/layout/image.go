package layout

import (
	"math"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// Image places a previously-registered document image at its intrinsic
// size, clamped to whatever constraints it's measured against.
type Image struct {
	ImageIndex    int
	Width, Height float64
}

// Measure clamps the image's intrinsic size to c's maximums.
func (img *Image) Measure(c Constraints, f *font.Font) Size {
	w := img.Width
	if c.MaxWidth > 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	h := img.Height
	if c.MaxHeight > 0 && !math.IsInf(c.MaxHeight, 1) && h > c.MaxHeight {
		h = c.MaxHeight
	}
	return Size{Width: clampMin(w, c.MinWidth), Height: clampMin(h, c.MinHeight)}
}

// Split never partially renders an image: Fit if its full height is
// available, Push otherwise.
func (img *Image) Split(availWidth, availHeight float64, f *font.Font) SplitResult {
	size := img.Measure(Loose(availWidth, math.Inf(1)), f)
	if size.Height <= availHeight {
		return SplitResult{Kind: SplitFit}
	}
	return SplitResult{Kind: SplitPush}
}

// Render draws the XObject at rect's bounds.
func (img *Image) Render(page *pdf.Page, rect Rect, f *font.Font, fontIndex int, ctx *PageContext) {
	page.DrawImage(img.ImageIndex, rect.X, rect.bottom(), rect.Width, rect.Height)
}
