package pdf

import "fmt"

// RGB is a color triplet in the 0..1 range, the same scale the content
// stream's rg operator takes (not 0..255 bytes).
type RGB struct {
	R, G, B float64
}

// Black is the default fill/stroke color when no context overrides it.
var Black = RGB{0, 0, 0}

// fillOp renders the "r g b rg" fill-color-set operator prefix.
func (c RGB) fillOp() string {
	return fmt.Sprintf("%.3f %.3f %.3f rg", c.R, c.G, c.B)
}
