package notation

import "github.com/hogaku/shakufu/canvas"

// DurationClass is the rhythmic class of a note.
type DurationClass uint8

// Duration classes, longest first.
const (
	Whole DurationClass = iota
	Half
	Quarter
	Eighth
	Sixteenth
)

var durationClassNames = [...]string{
	Whole:     "whole",
	Half:      "half",
	Quarter:   "quarter",
	Eighth:    "eighth",
	Sixteenth: "sixteenth",
}

// String returns the duration class name.
func (d DurationClass) String() string {
	if int(d) < len(durationClassNames) {
		return durationClassNames[d]
	}
	return "unknown"
}

// durationBeats maps each class to its length in quarter-note beats.
var durationBeats = [...]float64{
	Whole:     4,
	Half:      2,
	Quarter:   1,
	Eighth:    0.5,
	Sixteenth: 0.25,
}

const beatEpsilon = 1e-6

// DurationFromBeats maps an interchange duration (in quarter-note
// beats) to a duration class, reporting whether the value is a dotted
// form of the class (1.5x its plain length). Durations that match no
// class exactly snap to the longest class not exceeding the value;
// values below a sixteenth snap to Sixteenth.
func DurationFromBeats(beats float64) (class DurationClass, dotted bool) {
	for c, base := range durationBeats {
		if approxEqual(beats, base) {
			return DurationClass(c), false
		}
		if approxEqual(beats, base*1.5) {
			return DurationClass(c), true
		}
	}
	for c, base := range durationBeats {
		if beats >= base-beatEpsilon {
			return DurationClass(c), false
		}
	}
	return Sixteenth, false
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d < beatEpsilon && d > -beatEpsilon
}

// Note is one renderable notation unit: a glyph, its duration class,
// screen position, typography, and an ordered list of annotations the
// note owns exclusively.
//
// An empty Symbol is a rest: Render draws no base glyph but still
// renders annotations.
type Note struct {
	Symbol string // display glyph; empty renders as a rest
	Name   string // romanized fingering identifier, for diagnostics
	Class  DurationClass

	X, Y float64

	FontSize   float64
	FontWeight string
	FontFamily string
	Color      string

	annotations []Annotation
}

// NewNote creates a note with the given glyph and duration class.
func NewNote(symbol, name string, class DurationClass) *Note {
	return &Note{Symbol: symbol, Name: name, Class: class}
}

// SetPosition moves the note to (x, y).
func (n *Note) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// AddAnnotation appends an annotation. Attachment order is the draw
// order.
func (n *Note) AddAnnotation(a Annotation) {
	n.annotations = append(n.annotations, a)
}

// Annotations returns the note's annotations in attachment order.
// The returned slice is the note's own backing store; callers must not
// retain it across mutations.
func (n *Note) Annotations() []Annotation {
	return n.annotations
}

// RemoveAnnotations removes every annotation of the given kind,
// preserving the relative order of the rest.
func (n *Note) RemoveAnnotations(kind AnnotationKind) {
	kept := n.annotations[:0]
	for _, a := range n.annotations {
		if a.Kind() != kind {
			kept = append(kept, a)
		}
	}
	n.annotations = kept
}

// HasAnnotation reports whether any attached annotation has the given
// kind.
func (n *Note) HasAnnotation(kind AnnotationKind) bool {
	for _, a := range n.annotations {
		if a.Kind() == kind {
			return true
		}
	}
	return false
}

// OctaveMark returns the first attached octave mark, or nil.
func (n *Note) OctaveMark() *OctaveMark {
	for _, a := range n.annotations {
		if m, ok := a.(*OctaveMark); ok {
			return m
		}
	}
	return nil
}

// PitchBend returns the first attached pitch-bend mark, or nil.
func (n *Note) PitchBend() *PitchBend {
	for _, a := range n.annotations {
		if p, ok := a.(*PitchBend); ok {
			return p
		}
	}
	return nil
}

// Render draws the base glyph and then each annotation in attachment
// order, all relative to the note's current position.
func (n *Note) Render(c *canvas.Canvas) {
	if n.Symbol != "" {
		c.DrawText(n.Symbol, n.X, n.Y, canvas.TextStyle{
			FontSize:   n.FontSize,
			FontWeight: n.FontWeight,
			FontFamily: n.FontFamily,
			Color:      n.Color,
			Anchor:     canvas.AnchorMiddle,
		})
	}
	for _, a := range n.annotations {
		a.Render(c, n.X, n.Y)
	}
}
