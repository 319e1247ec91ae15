package notation

import "golang.org/x/text/width"

// Style identifies a notation tradition.
type Style string

// Supported notation traditions.
const (
	StyleKinko Style = "kinko" // kana glyphs
	StyleTozan Style = "tozan" // numeral glyphs
)

// kinkoSymbols maps fingering identifiers to kinko-tradition kana.
var kinkoSymbols = map[string]string{
	"ro":  "ロ",
	"tsu": "ツ",
	"re":  "レ",
	"chi": "チ",
	"ri":  "リ",
	"u":   "ウ",
	"hi":  "ヒ",
}

// tozanSymbols maps fingering identifiers to tozan-tradition numerals.
var tozanSymbols = map[string]string{
	"ro":  "一",
	"tsu": "二",
	"re":  "三",
	"chi": "四",
	"ri":  "五",
	"u":   "六",
	"hi":  "七",
}

// LookupSymbol resolves a fingering identifier to its display glyph for
// the given style. An unresolved identifier or unknown style returns
// ("", false); callers render such notes as rests rather than failing.
func LookupSymbol(step string, style Style) (string, bool) {
	var table map[string]string
	switch style {
	case StyleKinko:
		table = kinkoSymbols
	case StyleTozan:
		table = tozanSymbols
	default:
		return "", false
	}
	glyph, ok := table[step]
	return glyph, ok
}

// KnownStep reports whether step is a recognized fingering identifier.
func KnownStep(step string) bool {
	_, ok := kinkoSymbols[step]
	return ok
}

// IsFullwidth reports whether the glyph's first rune occupies a
// fullwidth (East Asian wide) cell. Fullwidth glyphs are roughly twice
// as wide as Latin text at the same font size, which shifts where
// adjacent labels should sit.
func IsFullwidth(glyph string) bool {
	for _, r := range glyph {
		k := width.LookupRune(r).Kind()
		return k == width.EastAsianWide || k == width.EastAsianFullwidth
	}
	return false
}
