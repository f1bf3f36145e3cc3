package layout

import (
	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// Container wraps a single child with padding and an optional stroked
// border. BorderWidth of zero skips the stroke.
type Container struct {
	Child       Node
	Padding     float64
	BorderWidth float64
}

func (c *Container) reduction() float64 {
	return c.Padding + c.BorderWidth
}

// Measure deflates the incoming constraints by 2*reduction(), measures
// the child against the shrunk box, then inflates the result back out.
func (c *Container) Measure(cons Constraints, f *font.Font) Size {
	r := c.reduction()
	shrunk := Constraints{
		MinWidth:  nonNegative(cons.MinWidth - 2*r),
		MaxWidth:  nonNegative(cons.MaxWidth - 2*r),
		MinHeight: nonNegative(cons.MinHeight - 2*r),
		MaxHeight: nonNegative(cons.MaxHeight - 2*r),
	}
	size := c.Child.Measure(shrunk, f)
	return Size{Width: size.Width + 2*r, Height: size.Height + 2*r}
}

// Split deflates the available space by 2*reduction(), delegates to the
// child, and re-wraps whatever Head/Tail comes back in fresh Containers
// carrying the same padding and border.
func (c *Container) Split(availWidth, availHeight float64, f *font.Font) SplitResult {
	r := c.reduction()
	sub := c.Child.Split(nonNegative(availWidth-2*r), nonNegative(availHeight-2*r), f)
	switch sub.Kind {
	case SplitFit, SplitPush:
		return SplitResult{Kind: sub.Kind}
	default:
		return SplitResult{
			Kind: SplitSplit,
			Head: &Container{Child: sub.Head, Padding: c.Padding, BorderWidth: c.BorderWidth},
			Tail: &Container{Child: sub.Tail, Padding: c.Padding, BorderWidth: c.BorderWidth},
		}
	}
}

// Render strokes the border (if BorderWidth > 0) and recurses into the
// padded inner rect.
func (c *Container) Render(page *pdf.Page, rect Rect, f *font.Font, fontIndex int, ctx *PageContext) {
	if c.BorderWidth > 0 {
		page.DrawRect(rect.X, rect.bottom(), rect.Width, rect.Height, c.BorderWidth)
	}
	r := c.reduction()
	inner := Rect{
		X:      rect.X + r,
		Y:      rect.Y - r,
		Width:  nonNegative(rect.Width - 2*r),
		Height: nonNegative(rect.Height - 2*r),
	}
	c.Child.Render(page, inner, f, fontIndex, ctx)
}
