package pdf

import (
	"log"
	"os"
)

// logger is the package-level destination for non-fatal warnings; the
// font-subsetting fallback in embedFont is the one warning emitted. It is a
// bracket-tagged plain log.Logger rather than a structured logging
// dependency the rest of the module doesn't otherwise need.
var logger = log.New(os.Stderr, "[gopdflayout] ", log.LstdFlags)

// SetLogger redirects gopdflayout's internal warnings to l. Passing nil
// restores the default stderr logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = log.New(os.Stderr, "[gopdflayout] ", log.LstdFlags)
		return
	}
	logger = l
}

func warnf(format string, args ...any) {
	logger.Printf(format, args...)
}
