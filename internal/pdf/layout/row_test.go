package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
)

func TestRowMeasure(t *testing.T) {
	row := &Row{Children: []Node{
		&stubBox{W: 40, H: 100},
		&stubBox{W: 60, H: 50},
	}, Spacing: 10}
	size := row.Measure(Loose(300, math.Inf(1)), nil)
	assert.Equal(t, 110.0, size.Width)
	assert.Equal(t, 100.0, size.Height)
}

func TestRowNeverSplitsInternally(t *testing.T) {
	row := &Row{Children: boxes(2, 100)}

	res := row.Split(300, 150, nil)
	assert.Equal(t, SplitFit, res.Kind)

	res = row.Split(300, 50, nil)
	assert.Equal(t, SplitPush, res.Kind)
}

func TestRowRenderStacksLeftToRight(t *testing.T) {
	page := pdf.NewPage(595, 842)
	row := &Row{Children: []Node{
		&stubBox{W: 40, H: 100},
		&stubBox{W: 60, H: 100},
	}, Spacing: 10}
	row.Render(page, Rect{X: 50, Y: 800, Width: 300, Height: 100}, nil, 0, nil)

	content := string(page.Content())
	assert.Contains(t, content, "50 700 40 100 re f")
	assert.Contains(t, content, "100 700 60 100 re f")
	assert.Equal(t, 2, strings.Count(content, "re f"))
}
