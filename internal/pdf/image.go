package pdf

import (
	"fmt"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf/writer"
)

// ColorSpace names the two color spaces this engine emits. There is no ICC
// profile support; everything is DeviceRGB or DeviceGray.
type ColorSpace string

const (
	ColorSpaceRGB  ColorSpace = "DeviceRGB"
	ColorSpaceGray ColorSpace = "DeviceGray"
)

// ImageFilter names the stream filter an Image is emitted with.
type ImageFilter string

const (
	FilterDCTDecode   ImageFilter = "DCTDecode"
	FilterFlateDecode ImageFilter = "FlateDecode"
	FilterNone        ImageFilter = ""
)

// Image is an already-decoded raster image, ready for PDF embedding.
// Decoding JPEG/PNG bytes into this shape is the caller's job — they hand
// in either the original JPEG bytes (passthrough, DCTDecode) or raw
// interleaved samples (re-compressed here with Flate).
type Image struct {
	Width            int
	Height           int
	ColorSpace       ColorSpace
	BitsPerComponent int
	Data             []byte
	Filter           ImageFilter
}

// NewJPEGImage wraps already-encoded JPEG bytes for DCTDecode passthrough.
// width/height/colorSpace must match what the caller's JPEG decoder reported
// (this package does not parse JPEG headers — that's the decoder's job).
func NewJPEGImage(width, height int, colorSpace ColorSpace, data []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image: invalid dimensions %dx%d: %w", width, height, ErrInvalidImage)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image: empty JPEG data: %w", ErrInvalidImage)
	}
	return &Image{
		Width: width, Height: height, ColorSpace: colorSpace,
		BitsPerComponent: 8, Data: data, Filter: FilterDCTDecode,
	}, nil
}

// NewRawImage wraps raw interleaved 8-bit samples (e.g. a decoded PNG's RGB
// pixels) for FlateDecode re-compression at embed time.
func NewRawImage(width, height int, colorSpace ColorSpace, data []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image: invalid dimensions %dx%d: %w", width, height, ErrInvalidImage)
	}
	comps := 3
	if colorSpace == ColorSpaceGray {
		comps = 1
	}
	if len(data) != width*height*comps {
		return nil, fmt.Errorf("image: sample data length %d does not match %dx%d at %d components: %w",
			len(data), width, height, comps, ErrInvalidImage)
	}
	return &Image{
		Width: width, Height: height, ColorSpace: colorSpace,
		BitsPerComponent: 8, Data: data, Filter: FilterFlateDecode,
	}, nil
}

// embedImage writes the single-object XObject stream for img at id.
// DCTDecode images pass their bytes through untouched; everything else is
// zlib-compressed here.
func embedImage(w *writer.Writer, id int, img *Image) error {
	body := img.Data
	dict := []writer.DictEntry{
		writer.Entry("Type", writer.Name("XObject")),
		writer.Entry("Subtype", writer.Name("Image")),
		writer.Entry("Width", writer.Int(int64(img.Width))),
		writer.Entry("Height", writer.Int(int64(img.Height))),
		writer.Entry("ColorSpace", writer.Name(string(img.ColorSpace))),
		writer.Entry("BitsPerComponent", writer.Int(int64(img.BitsPerComponent))),
	}

	switch img.Filter {
	case FilterDCTDecode:
		dict = append(dict, writer.Entry("Filter", writer.Name(string(FilterDCTDecode))))
	case FilterFlateDecode:
		compressed, err := flateCompress(img.Data)
		if err != nil {
			return fmt.Errorf("embed image: %w", err)
		}
		body = compressed
		dict = append(dict, writer.Entry("Filter", writer.Name(string(FilterFlateDecode))))
	case FilterNone:
		// no /Filter entry
	}

	if err := w.WriteObject(id, writer.Stream(dict, body)); err != nil {
		return fmt.Errorf("embed image: %w", err)
	}
	return nil
}
