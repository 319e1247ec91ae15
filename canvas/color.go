package canvas

import (
	"strings"

	"golang.org/x/image/colornames"

	"github.com/hogaku/shakufu/internal/logging"
)

// NormalizeColor validates a color string and returns its canonical
// form. Accepted inputs:
//
//   - "none" (keyword, passed through)
//   - hex colors: #rgb, #rrggbb, #rrggbbaa (lowercased)
//   - SVG 1.1 named colors (lowercased; see golang.org/x/image/colornames)
//
// Anything else degrades to "black" with a logged warning; color
// normalization is total and never fails a render.
func NormalizeColor(s string) string {
	c := strings.ToLower(strings.TrimSpace(s))
	switch {
	case c == "":
		return ""
	case c == "none":
		return "none"
	case strings.HasPrefix(c, "#"):
		if validHex(c[1:]) {
			return c
		}
	default:
		if _, ok := colornames.Map[c]; ok {
			return c
		}
	}
	logging.Logger().Warn("canvas: unknown color, using black", "color", s)
	return "black"
}

func validHex(s string) bool {
	switch len(s) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		isDigit := r >= '0' && r <= '9'
		isHexLetter := r >= 'a' && r <= 'f'
		if !isDigit && !isHexLetter {
			return false
		}
	}
	return true
}
