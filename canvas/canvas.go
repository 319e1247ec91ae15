package canvas

import (
	"io"
	"strings"

	"github.com/hogaku/shakufu/internal/logging"
)

// Anchor controls horizontal text alignment relative to the x coordinate.
type Anchor string

// Text anchors, matching SVG text-anchor values.
const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// TextStyle describes the presentation of a text primitive.
// Color is normalized via NormalizeColor before output.
type TextStyle struct {
	FontSize   float64
	FontFamily string
	Color      string
	Anchor     Anchor
	FontWeight string
}

// LineStyle describes the presentation of a line primitive.
type LineStyle struct {
	Stroke string
	Width  float64
}

// ShapeStyle describes fill and stroke for closed shapes.
// Fill and Stroke are independently optional: an empty string omits the
// attribute entirely, and "none" is passed through.
type ShapeStyle struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Canvas is a drawing surface of fixed width and height.
// Primitives mutate the element tree immediately. Canvas is not safe
// for concurrent use; each render pass owns its own Canvas.
type Canvas struct {
	width  float64
	height float64
	root   *group
	stack  []*group
}

// New creates an empty Canvas with the given viewport size.
func New(width, height float64) *Canvas {
	root := &group{}
	return &Canvas{
		width:  width,
		height: height,
		root:   root,
		stack:  []*group{root},
	}
}

// Width returns the viewport width.
func (c *Canvas) Width() float64 { return c.width }

// Height returns the viewport height.
func (c *Canvas) Height() float64 { return c.height }

// Resize updates the viewport size without discarding drawn content.
func (c *Canvas) Resize(width, height float64) {
	c.width = width
	c.height = height
}

// Clear removes all drawn content and resets the group stack.
func (c *Canvas) Clear() {
	c.root = &group{}
	c.stack = []*group{c.root}
}

// OpenGroup pushes a new nesting context. Subsequent primitives target
// the new group until the matching CloseGroup. class and id may be
// empty; non-empty values become the SVG class and id attributes.
func (c *Canvas) OpenGroup(class, id string) {
	g := &group{class: class, id: id}
	c.current().children = append(c.current().children, g)
	c.stack = append(c.stack, g)
}

// CloseGroup pops one nesting level. Calling CloseGroup with no open
// group logs a warning and is a no-op; it never fails.
func (c *Canvas) CloseGroup() {
	if len(c.stack) <= 1 {
		logging.Logger().Warn("canvas: CloseGroup called with no open group")
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// DrawText places anchored text with its baseline at (x, y).
func (c *Canvas) DrawText(s string, x, y float64, style TextStyle) {
	e := &element{name: "text", text: s}
	e.attr("x", fmtCoord(x))
	e.attr("y", fmtCoord(y))
	if style.FontSize > 0 {
		e.attr("font-size", fmtCoord(style.FontSize))
	}
	if style.FontFamily != "" {
		e.attr("font-family", style.FontFamily)
	}
	if style.FontWeight != "" {
		e.attr("font-weight", style.FontWeight)
	}
	anchor := style.Anchor
	if anchor == "" {
		anchor = AnchorStart
	}
	e.attr("text-anchor", string(anchor))
	if style.Color != "" {
		e.attr("fill", NormalizeColor(style.Color))
	}
	c.append(e)
}

// DrawLine draws a straight line segment from (x1, y1) to (x2, y2).
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, style LineStyle) {
	e := &element{name: "line"}
	e.attr("x1", fmtCoord(x1))
	e.attr("y1", fmtCoord(y1))
	e.attr("x2", fmtCoord(x2))
	e.attr("y2", fmtCoord(y2))
	if style.Stroke != "" {
		e.attr("stroke", NormalizeColor(style.Stroke))
	}
	if style.Width > 0 {
		e.attr("stroke-width", fmtCoord(style.Width))
	}
	c.append(e)
}

// DrawCircle draws a circle centered at (cx, cy) with radius r.
func (c *Canvas) DrawCircle(cx, cy, r float64, style ShapeStyle) {
	e := &element{name: "circle"}
	e.attr("cx", fmtCoord(cx))
	e.attr("cy", fmtCoord(cy))
	e.attr("r", fmtCoord(r))
	c.shapeAttrs(e, style)
	c.append(e)
}

// DrawPath draws a path described in SVG path-data syntax.
func (c *Canvas) DrawPath(d string, style ShapeStyle) {
	e := &element{name: "path"}
	e.attr("d", d)
	c.shapeAttrs(e, style)
	c.append(e)
}

// DrawRect draws an axis-aligned rectangle.
func (c *Canvas) DrawRect(x, y, w, h float64, style ShapeStyle) {
	e := &element{name: "rect"}
	e.attr("x", fmtCoord(x))
	e.attr("y", fmtCoord(y))
	e.attr("width", fmtCoord(w))
	e.attr("height", fmtCoord(h))
	c.shapeAttrs(e, style)
	c.append(e)
}

// SVG serializes the canvas to a complete SVG document.
func (c *Canvas) SVG() string {
	var b strings.Builder
	c.writeSVG(&b)
	return b.String()
}

// WriteSVG serializes the canvas to w as a complete SVG document.
func (c *Canvas) WriteSVG(w io.Writer) error {
	var b strings.Builder
	c.writeSVG(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

func (c *Canvas) writeSVG(b *strings.Builder) {
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	b.WriteString(fmtCoord(c.width))
	b.WriteString(`" height="`)
	b.WriteString(fmtCoord(c.height))
	b.WriteString(`" viewBox="0 0 `)
	b.WriteString(fmtCoord(c.width))
	b.WriteString(" ")
	b.WriteString(fmtCoord(c.height))
	b.WriteString("\">\n")
	for _, child := range c.root.children {
		child.write(b, 1)
	}
	b.WriteString("</svg>\n")
}

func (c *Canvas) current() *group {
	return c.stack[len(c.stack)-1]
}

func (c *Canvas) append(n node) {
	c.current().children = append(c.current().children, n)
}

func (c *Canvas) shapeAttrs(e *element, style ShapeStyle) {
	if style.Fill != "" {
		e.attr("fill", NormalizeColor(style.Fill))
	} else {
		// An unfilled shape must say so explicitly; the SVG default
		// fill is black.
		e.attr("fill", "none")
	}
	if style.Stroke != "" {
		e.attr("stroke", NormalizeColor(style.Stroke))
	}
	if style.StrokeWidth > 0 {
		e.attr("stroke-width", fmtCoord(style.StrokeWidth))
	}
}
