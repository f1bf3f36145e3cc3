// Package gopdflib provides public type aliases for PDF generation.
// These types are re-exported from the internal engine packages for use by
// external consumers.
package gopdflib

import (
	"github.com/chinmay-sawant/gopdflayout/internal/pdf"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
	"github.com/chinmay-sawant/gopdflayout/internal/pdf/layout"
)

// Document assembles pages, fonts, and images into one PDF file, in either
// buffered (WriteTo) or streaming (Finalize) mode.
type Document = pdf.Document

// Page accumulates one page's content-stream operators and resource usage.
type Page = pdf.Page

// Font is a parsed TrueType face: shaping, measurement, and embed metrics.
type Font = font.Font

// ShapedGlyph is one positioned glyph from a shaped run.
type ShapedGlyph = font.ShapedGlyph

// Image is an already-decoded raster image ready for embedding.
type Image = pdf.Image

// ColorSpace names an image's color space (DeviceRGB or DeviceGray).
type ColorSpace = pdf.ColorSpace

// RGB is a fill color triplet in the 0..1 range.
type RGB = pdf.RGB

// TextAlign is the horizontal alignment of text within its box.
type TextAlign = pdf.TextAlign

// Table is a header row plus data rows with per-column widths.
type Table = pdf.Table

// TableColumn is one column definition of a Table.
type TableColumn = pdf.TableColumn

// TableSettings configures a table's padding, borders, and fonts.
type TableSettings = pdf.TableSettings

// LayoutNode is the measure/split/render capability every layout element
// implements.
type LayoutNode = layout.Node

// Column stacks children top to bottom and can split across pages.
type Column = layout.Column

// Row lays children left to right; it never breaks internally.
type Row = layout.Row

// LayoutText is a run of word-wrapped text.
type LayoutText = layout.Text

// Container wraps a child with padding and an optional border.
type Container = layout.Container

// LayoutImage places a registered document image in the flow.
type LayoutImage = layout.Image

// LayoutTable wraps a Table as a flow node that repeats its header on every
// page its rows spill onto.
type LayoutTable = layout.Table

// PageNumber renders a "{page}/{total}" placeholder resolved at render time.
type PageNumber = layout.PageNumber

// PageContext carries the current/total page numbers into a render.
type PageContext = layout.PageContext

// FlowOptions configures RenderFlow's header, footer, and vertical margins.
type FlowOptions = layout.FlowOptions

// Size is a measured width/height pair.
type Size = layout.Size

// Rect is a layout box with a top-left origin.
type Rect = layout.Rect

// Constraints bounds a node's measured size.
type Constraints = layout.Constraints

// Alignment values for table cells and PageNumber nodes.
const (
	AlignLeft   = pdf.AlignLeft
	AlignCenter = pdf.AlignCenter
	AlignRight  = pdf.AlignRight
)

// Image color spaces.
const (
	ColorSpaceRGB  = pdf.ColorSpaceRGB
	ColorSpaceGray = pdf.ColorSpaceGray
)

// Sentinel errors, matched with errors.Is.
var (
	ErrInvalidFont       = pdf.ErrInvalidFont
	ErrInvalidImage      = pdf.ErrInvalidImage
	ErrDocumentFinalized = pdf.ErrDocumentFinalized
	ErrWrongMode         = pdf.ErrWrongMode
)
