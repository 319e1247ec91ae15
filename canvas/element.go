package canvas

import (
	"math"
	"strconv"
	"strings"
)

// node is one entry in the canvas element tree.
type node interface {
	write(b *strings.Builder, depth int)
}

// group is a nesting context, serialized as an SVG <g> element.
type group struct {
	class    string
	id       string
	children []node
}

func (g *group) write(b *strings.Builder, depth int) {
	writeIndent(b, depth)
	b.WriteString("<g")
	if g.class != "" {
		writeAttr(b, "class", g.class)
	}
	if g.id != "" {
		writeAttr(b, "id", g.id)
	}
	if len(g.children) == 0 {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">\n")
	for _, child := range g.children {
		child.write(b, depth+1)
	}
	writeIndent(b, depth)
	b.WriteString("</g>\n")
}

// element is a leaf drawing primitive with ordered attributes and
// optional text content.
type element struct {
	name  string
	attrs []attribute
	text  string
}

type attribute struct {
	key   string
	value string
}

func (e *element) attr(key, value string) {
	e.attrs = append(e.attrs, attribute{key: key, value: value})
}

func (e *element) write(b *strings.Builder, depth int) {
	writeIndent(b, depth)
	b.WriteString("<")
	b.WriteString(e.name)
	for _, a := range e.attrs {
		writeAttr(b, a.key, a.value)
	}
	if e.text == "" {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">")
	b.WriteString(escapeText(e.text))
	b.WriteString("</")
	b.WriteString(e.name)
	b.WriteString(">\n")
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(escapeAttr(value))
	b.WriteString(`"`)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// fmtCoord formats a coordinate rounded to 3 decimal places with
// trailing zeros trimmed, so output never carries floating-point noise.
func fmtCoord(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		// Avoid "-0".
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
