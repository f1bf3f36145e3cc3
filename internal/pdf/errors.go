package pdf

import "errors"

// Sentinel errors, checked with errors.Is by callers. Each corresponds to
// one of the non-overlapping error kinds the document orchestrator and its
// subcomponents can raise.
var (
	// ErrInvalidFont is returned when a font's byte stream cannot be parsed
	// as TrueType.
	ErrInvalidFont = errors.New("gopdflayout: invalid font data")

	// ErrInvalidImage is returned when an image has non-positive dimensions,
	// empty JPEG data, or raw sample data of the wrong length.
	ErrInvalidImage = errors.New("gopdflayout: invalid image data")

	// ErrDocumentFinalized is returned when a mutating call is made after
	// the document's terminal operation (WriteTo / Finalize) has run.
	ErrDocumentFinalized = errors.New("gopdflayout: document already finalized")

	// ErrWrongMode is returned when Finalize is called on a buffered
	// document, or WriteTo on a streaming one.
	ErrWrongMode = errors.New("gopdflayout: operation not valid for this document mode")
)
