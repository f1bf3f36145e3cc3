package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"sync"
)

// zlibWriterPool recycles zlib writers across image embeds; each
// zlib.NewWriter allocates its compression tables fresh, which adds up when
// a document carries many FlateDecode images.
var zlibWriterPool = sync.Pool{
	New: func() any {
		return zlib.NewWriter(nil)
	},
}

// flateCompress zlib-compresses data, the FlateDecode stream body form.
func flateCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlibWriterPool.Get().(*zlib.Writer)
	zw.Reset(&buf)
	if _, err := zw.Write(data); err != nil {
		zlibWriterPool.Put(zw)
		return nil, fmt.Errorf("flate compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		zlibWriterPool.Put(zw)
		return nil, fmt.Errorf("flate close: %w", err)
	}
	zlibWriterPool.Put(zw)
	return buf.Bytes(), nil
}
