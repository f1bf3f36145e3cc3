package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
)

func TestContainerMeasureInflatesByPaddingAndBorder(t *testing.T) {
	c := &Container{Child: &stubBox{W: 10, H: 20}, Padding: 3, BorderWidth: 2}
	size := c.Measure(Loose(100, math.Inf(1)), nil)
	assert.Equal(t, 20.0, size.Width)  // 10 + 2*(3+2)
	assert.Equal(t, 30.0, size.Height) // 20 + 2*(3+2)
}

func TestContainerSplitRewrapsBothParts(t *testing.T) {
	c := &Container{Child: &stubBox{W: 10, H: 200, Splittable: true}, Padding: 4, BorderWidth: 1}
	res := c.Split(300, 100, nil)
	require.Equal(t, SplitSplit, res.Kind)

	head := res.Head.(*Container)
	tail := res.Tail.(*Container)
	assert.Equal(t, 4.0, head.Padding)
	assert.Equal(t, 1.0, head.BorderWidth)
	assert.Equal(t, 4.0, tail.Padding)
	assert.Equal(t, 1.0, tail.BorderWidth)

	// child was split against the deflated box: 100 - 2*(4+1) = 90
	assert.Equal(t, 90.0, head.Child.(*stubBox).H)
	assert.Equal(t, 110.0, tail.Child.(*stubBox).H)
}

func TestContainerSplitPassthroughKinds(t *testing.T) {
	fit := &Container{Child: &stubBox{W: 10, H: 20}, Padding: 2}
	assert.Equal(t, SplitFit, fit.Split(300, 100, nil).Kind)

	push := &Container{Child: &stubBox{W: 10, H: 200}, Padding: 2}
	assert.Equal(t, SplitPush, push.Split(300, 100, nil).Kind)
}

func TestContainerRenderBorderAndInnerRect(t *testing.T) {
	page := pdf.NewPage(595, 842)
	c := &Container{Child: &stubBox{W: 10, H: 20}, Padding: 3, BorderWidth: 2}
	c.Render(page, Rect{X: 50, Y: 800, Width: 100, Height: 30}, nil, 0, nil)

	content := string(page.Content())
	// border strokes the outer rect
	assert.Contains(t, content, "2 w 50 770 100 30 re S")
	// child fills the inner rect, inset by padding+border on every side
	assert.Contains(t, content, "55 775 90 20 re f")
}

func TestContainerRenderNoBorderSkipsStroke(t *testing.T) {
	page := pdf.NewPage(595, 842)
	c := &Container{Child: &stubBox{W: 10, H: 20}, Padding: 3}
	c.Render(page, Rect{X: 50, Y: 800, Width: 100, Height: 26}, nil, 0, nil)
	assert.NotContains(t, string(page.Content()), "re S")
}
