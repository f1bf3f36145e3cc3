package pdf

import (
	"strings"

	"github.com/chinmay-sawant/gopdflayout/internal/pdf/font"
)

// WrapText greedily fills lines up to maxWidth, falling back to
// character-level breaking for any single word wider than maxWidth.
// Widths are measured through the shaped font, so wrap decisions agree
// with what rendering will actually advance.
func WrapText(text string, f *font.Font, size, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	if maxWidth <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current string

	for _, word := range words {
		wordWidth := f.Measure(word, size)
		if wordWidth > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, wrapLongWord(word, f, size, maxWidth)...)
			continue
		}

		test := word
		if current != "" {
			test = current + " " + word
		}
		if f.Measure(test, size) <= maxWidth {
			current = test
		} else {
			if current != "" {
				lines = append(lines, current)
			}
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// wrapLongWord breaks a single overwide word at the character boundary
// nearest maxWidth, always making progress by at least one rune per line.
func wrapLongWord(word string, f *font.Font, size, maxWidth float64) []string {
	var lines []string
	runes := []rune(word)
	start := 0

	for start < len(runes) {
		end := start + 1
		for end <= len(runes) {
			if f.Measure(string(runes[start:end]), size) > maxWidth {
				break
			}
			end++
		}
		if end > start+1 {
			end--
		}
		lines = append(lines, string(runes[start:end]))
		start = end
	}
	return lines
}

// CountLines reports how many lines WrapText(text, f, size, maxWidth)
// produces (zero for empty text) — used by measure() passes that only need
// a height.
func CountLines(text string, f *font.Font, size, maxWidth float64) int {
	if text == "" {
		return 0
	}
	return len(WrapText(text, f, size, maxWidth))
}

// SplitTextAtLines splits text into a head that wraps to at most maxLines
// lines at (f, size, maxWidth), and a tail holding what's left (empty if
// everything fit). The split always falls on a word boundary.
func SplitTextAtLines(text string, f *font.Font, size, maxWidth float64, maxLines int) (head, tail string) {
	if maxLines <= 0 {
		return "", text
	}
	lines := WrapText(text, f, size, maxWidth)
	if len(lines) <= maxLines {
		return text, ""
	}
	return strings.Join(lines[:maxLines], " "), strings.Join(lines[maxLines:], " ")
}
