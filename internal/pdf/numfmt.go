package pdf

import "strconv"

// trimFloat renders v as a content-stream-safe decimal: no exponent, no
// trailing zeros beyond what round-tripping needs. Content-stream operands
// aren't PdfValue objects (no escaping/typing concerns), so a single shared
// helper is enough, unlike writer.formatReal's Real-value-specific home.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
