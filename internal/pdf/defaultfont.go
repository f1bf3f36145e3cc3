package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
	"github.com/chinmay-sawant/gopdflayout/pkg/fontutils"
)

// DefaultFont returns the document's fallback face, loading a sans-serif
// TrueType from the host system via fontutils and registering it on first
// use. The layout flow renderer goes through this when the caller supplies
// no font. The lookup is offline; on hosts with no fonts installed, set
// GOPDFLAYOUT_FONTS_DIR or call fontutils.Ensure first.
//
// In streaming mode the default font must be requested before the first
// page is written — fonts embedded after that point would be unreachable
// from any page's Resources.
func (d *Document) DefaultFont() (*font.Font, int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.finalized {
		return nil, 0, ErrDocumentFinalized
	}
	if d.defaultFont != nil {
		return d.defaultFont, d.defaultFontIdx, nil
	}
	if d.streaming && d.fontsEmbedded {
		return nil, 0, fmt.Errorf("gopdflayout: default font must be requested before the first page is written: %w", ErrWrongMode)
	}

	path := fontutils.Locate()
	if path == "" {
		return nil, 0, fmt.Errorf("%w: no fallback face installed (set GOPDFLAYOUT_FONTS_DIR or run fontutils.Ensure)", ErrInvalidFont)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("gopdflayout: read fallback face %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	f, err := font.FromBytes(data, name)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: fallback face %s: %v", ErrInvalidFont, path, err)
	}

	d.fonts = append(d.fonts, f)
	d.defaultFont = f
	d.defaultFontIdx = len(d.fonts) - 1
	return f, d.defaultFontIdx, nil
}
