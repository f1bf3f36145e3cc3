// Package fontutils locates a general-purpose sans-serif TrueType face on
// the host system, so callers always have a real face to embed when they
// don't bring their own. Locate is offline; Ensure downloads a face into a
// local cache only when the system carries none of the known ones.
package fontutils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// fontFiles are the face file names probed for, in preference order.
var fontFiles = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
}

// downloadURL maps a face file name to a pinned upstream copy, used only
// when no known face is installed anywhere.
var downloadURL = map[string]string{
	"DejaVuSans.ttf":             "https://github.com/dejavu-fonts/dejavu-fonts/raw/refs/heads/master/src/DejaVuSans.ttf",
	"LiberationSans-Regular.ttf": "https://github.com/liberationfonts/liberation-fonts/raw/refs/heads/main/src/LiberationSans-Regular.ttf",
}

// maxFontSize bounds a download so a misbehaving mirror can't fill the
// cache directory.
const maxFontSize = 20 << 20

// cacheDir is where downloaded faces land, and the first directory Locate
// probes. GOPDFLAYOUT_FONTS_DIR overrides the default temp location
// (useful on App Engine / Cloud Run, where only /tmp is writable, and for
// pointing the engine at a specific face).
func cacheDir() string {
	if dir := os.Getenv("GOPDFLAYOUT_FONTS_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(os.TempDir(), "gopdflayout-fonts")
}

// searchDirs returns the directories probed for known faces. The cache
// comes first so an explicit GOPDFLAYOUT_FONTS_DIR wins over system faces.
func searchDirs() []string {
	dirs := []string{cacheDir()}
	switch runtime.GOOS {
	case "darwin":
		dirs = append(dirs,
			"/Library/Fonts",
			filepath.Join(os.Getenv("HOME"), "Library/Fonts"),
		)
	case "windows":
		dirs = append(dirs, filepath.Join(os.Getenv("WINDIR"), "Fonts"))
	default: // linux and friends
		dirs = append(dirs,
			"/usr/share/fonts/truetype/dejavu",
			"/usr/share/fonts/dejavu",
			"/usr/share/fonts/truetype/liberation2",
			"/usr/share/fonts/truetype/liberation",
			"/usr/share/fonts/liberation",
		)
	}
	return dirs
}

// Candidates returns every path Locate would probe, in probe order: every
// face name in the cache directory first, then each face name tried across
// all system directories before the next name is considered.
func Candidates() []string {
	dirs := searchDirs()
	paths := make([]string, 0, len(fontFiles)*len(dirs))
	for _, name := range fontFiles {
		paths = append(paths, filepath.Join(dirs[0], name))
	}
	for _, name := range fontFiles {
		for _, dir := range dirs[1:] {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}

// Locate returns the path of the first known face present on this system,
// or the empty string when none is installed. It never touches the network.
func Locate() string {
	for _, p := range Candidates() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Ensure returns a usable face path, downloading the preferred face into
// the cache when the system has none installed.
func Ensure() (string, error) {
	if p := Locate(); p != "" {
		return p, nil
	}
	name := fontFiles[0]
	if err := download(name); err != nil {
		return "", err
	}
	return filepath.Join(cacheDir(), name), nil
}

func download(name string) error {
	url := downloadURL[name]
	if url == "" {
		return fmt.Errorf("fontutils: no download source for %s", name)
	}
	if err := os.MkdirAll(cacheDir(), 0o755); err != nil {
		return fmt.Errorf("fontutils: create cache dir: %w", err)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url) //nolint:gosec // URLs are hardcoded constants, not user input
	if err != nil {
		return fmt.Errorf("fontutils: download %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fontutils: download %s: HTTP %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFontSize))
	if err != nil {
		return fmt.Errorf("fontutils: read %s: %w", name, err)
	}
	dest := filepath.Join(cacheDir(), name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("fontutils: write %s: %w", name, err)
	}
	return nil
}
