// Package canvas provides a 2D vector drawing surface that serializes
// to SVG.
//
// # Overview
//
// A Canvas holds a fixed-size viewport and an ordered tree of drawing
// elements. Primitives (text, line, circle, path, rect) append to the
// tree immediately; there is no batching or diffing. OpenGroup and
// CloseGroup maintain a nesting stack that maps to SVG <g> elements.
//
// # Quick Start
//
//	c := canvas.New(800, 600)
//	c.OpenGroup("column", "")
//	c.DrawText("ロ", 400, 60, canvas.TextStyle{
//		FontSize:   24,
//		FontFamily: "serif",
//		Color:      "black",
//		Anchor:     canvas.AnchorMiddle,
//	})
//	c.CloseGroup()
//	svg := c.SVG()
//
// # Coordinate Precision
//
// All coordinates and lengths are rounded to 3 decimal places on
// output, with trailing zeros trimmed, so that repeated renders of the
// same input produce byte-identical documents.
package canvas
