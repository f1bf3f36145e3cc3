package pdf

import "strings"

// Page size constants in points (1 inch = 72 points)
var pageSizes = map[string][2]float64{
	"A4":     {595, 842},  // A4: 8.27 × 11.69 inches
	"LETTER": {612, 792},  // Letter: 8.5 × 11 inches
	"LEGAL":  {612, 1008}, // Legal: 8.5 × 14 inches
	"A3":     {842, 1191}, // A3: 11.69 × 16.54 inches
	"A5":     {420, 595},  // A5: 5.83 × 8.27 inches
}

// PageSize resolves a named paper size ("A4", "Letter", ...) to its
// dimensions in points, swapping width and height when landscape is set.
// Unknown names fall back to A4.
func PageSize(name string, landscape bool) (width, height float64) {
	size, exists := pageSizes[strings.ToUpper(name)]
	if !exists {
		size = pageSizes["A4"]
	}
	width, height = size[0], size[1]
	if landscape {
		width, height = height, width
	}
	return width, height
}
