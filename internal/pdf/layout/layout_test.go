package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
	"github.com/chinmay-sawant/gopdflayout/internal/testfont"
)

// stubBox is a fixed-size test node. Splittable boxes divide at exactly the
// available height; others push. Render paints a gray marker rect so page
// content can be counted.
type stubBox struct {
	W, H       float64
	Splittable bool
}

func (b *stubBox) Measure(c Constraints, f *font.Font) Size {
	return Size{Width: b.W, Height: b.H}
}

func (b *stubBox) Split(availWidth, availHeight float64, f *font.Font) SplitResult {
	if b.H <= availHeight {
		return SplitResult{Kind: SplitFit}
	}
	if !b.Splittable || availHeight <= 0 {
		return SplitResult{Kind: SplitPush}
	}
	return SplitResult{
		Kind: SplitSplit,
		Head: &stubBox{W: b.W, H: availHeight, Splittable: true},
		Tail: &stubBox{W: b.W, H: b.H - availHeight, Splittable: true},
	}
}

func (b *stubBox) Render(page *pdf.Page, rect Rect, f *font.Font, fontIndex int, ctx *PageContext) {
	page.DrawFillRect(rect.X, rect.bottom(), rect.Width, rect.Height, 0.5)
}

func loadTestFont(t *testing.T) *font.Font {
	t.Helper()
	f, err := font.FromBytes(testfont.Bytes(), "TestSans")
	require.NoError(t, err)
	return f
}

func boxes(n int, h float64) []Node {
	out := make([]Node, n)
	for i := range out {
		out[i] = &stubBox{W: 10, H: h}
	}
	return out
}
