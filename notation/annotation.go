package notation

import "github.com/hogaku/shakufu/canvas"

// AnnotationKind identifies one variant of the closed annotation set.
type AnnotationKind uint8

const (
	// KindOctaveMark marks the pitch register (otsu/kan/daikan).
	KindOctaveMark AnnotationKind = iota
	// KindPitchBend marks an embouchure pitch bend (meri/kari family).
	KindPitchBend
	// KindDurationDot extends the host note's duration by half.
	KindDurationDot
	// KindAtari marks a percussive finger-pop articulation.
	KindAtari
)

var annotationKindNames = [...]string{
	KindOctaveMark:  "OctaveMark",
	KindPitchBend:   "PitchBend",
	KindDurationDot: "DurationDot",
	KindAtari:       "Atari",
}

// String returns the string representation of an AnnotationKind.
func (k AnnotationKind) String() string {
	if int(k) < len(annotationKindNames) {
		return annotationKindNames[k]
	}
	return "Unknown"
}

// Annotation is a decoration attached to a note. Each variant knows its
// own offset from the host and draws itself through the canvas; it
// carries no back-reference to the note.
type Annotation interface {
	// Kind returns the variant tag.
	Kind() AnnotationKind

	// Offset returns the annotation's offset from the host note.
	Offset() (dx, dy float64)

	// Render draws the annotation; (hostX, hostY) is the host note's
	// position, to which the annotation applies its own offset.
	Render(c *canvas.Canvas, hostX, hostY float64)
}

// Register is a pitch register (octave) in shakuhachi notation.
type Register uint8

// Pitch registers, low to high.
const (
	Otsu   Register = iota // base register; carries no visible glyph
	Kan                    // first overtone
	Daikan                 // second overtone
)

var registerNames = [...]string{
	Otsu:   "otsu",
	Kan:    "kan",
	Daikan: "daikan",
}

// String returns the romanized register name.
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return "unknown"
}

// Glyph returns the display glyph for the register. Otsu is the
// unmarked base register and returns the empty string.
func (r Register) Glyph() string {
	switch r {
	case Kan:
		return "甲"
	case Daikan:
		return "大甲"
	default:
		return ""
	}
}

// OctaveMark annotates the host note's pitch register. Notes in the
// otsu register carry no mark at all; only kan and daikan marks are
// constructed.
type OctaveMark struct {
	Register   Register
	FontSize   float64
	FontWeight string
	Color      string
	OffsetX    float64
	OffsetY    float64
}

// NewOctaveMark creates an octave mark with default presentation.
// The configurator overwrites the presentation fields before layout.
func NewOctaveMark(register Register) *OctaveMark {
	return &OctaveMark{
		Register:   register,
		FontSize:   11,
		FontWeight: "normal",
		Color:      "#666",
		OffsetX:    14,
		OffsetY:    -8,
	}
}

// Kind implements Annotation.
func (m *OctaveMark) Kind() AnnotationKind { return KindOctaveMark }

// Offset implements Annotation.
func (m *OctaveMark) Offset() (dx, dy float64) { return m.OffsetX, m.OffsetY }

// Render implements Annotation. An otsu mark has no glyph and draws
// nothing.
func (m *OctaveMark) Render(c *canvas.Canvas, hostX, hostY float64) {
	glyph := m.Register.Glyph()
	if glyph == "" {
		return
	}
	c.DrawText(glyph, hostX+m.OffsetX, hostY+m.OffsetY, canvas.TextStyle{
		FontSize:   m.FontSize,
		FontWeight: m.FontWeight,
		Color:      m.Color,
		Anchor:     canvas.AnchorMiddle,
	})
}

// BendKind identifies a pitch-bend technique.
type BendKind uint8

// Pitch-bend techniques.
const (
	Meri    BendKind = iota // lowered pitch
	ChuMeri                 // half-lowered pitch
	DaiMeri                 // deeply lowered pitch
	Kari                    // raised pitch
)

var bendKindNames = [...]string{
	Meri:    "meri",
	ChuMeri: "chu-meri",
	DaiMeri: "dai-meri",
	Kari:    "kari",
}

var bendKindGlyphs = [...]string{
	Meri:    "メ",
	ChuMeri: "中メ",
	DaiMeri: "大メ",
	Kari:    "カ",
}

// String returns the romanized technique name.
func (k BendKind) String() string {
	if int(k) < len(bendKindNames) {
		return bendKindNames[k]
	}
	return "unknown"
}

// Glyph returns the display glyph for the technique.
func (k BendKind) Glyph() string {
	if int(k) < len(bendKindGlyphs) {
		return bendKindGlyphs[k]
	}
	return ""
}

// PitchBend annotates a meri/kari embouchure technique, drawn beside
// the host note.
type PitchBend struct {
	Bend       BendKind
	FontSize   float64
	FontWeight string
	Color      string
	OffsetX    float64
	OffsetY    float64
}

// NewPitchBend creates a pitch-bend mark with default presentation.
func NewPitchBend(bend BendKind) *PitchBend {
	return &PitchBend{
		Bend:       bend,
		FontSize:   12,
		FontWeight: "normal",
		Color:      "#888",
		OffsetX:    -16,
		OffsetY:    4,
	}
}

// Kind implements Annotation.
func (p *PitchBend) Kind() AnnotationKind { return KindPitchBend }

// Offset implements Annotation.
func (p *PitchBend) Offset() (dx, dy float64) { return p.OffsetX, p.OffsetY }

// Render implements Annotation.
func (p *PitchBend) Render(c *canvas.Canvas, hostX, hostY float64) {
	c.DrawText(p.Bend.Glyph(), hostX+p.OffsetX, hostY+p.OffsetY, canvas.TextStyle{
		FontSize:   p.FontSize,
		FontWeight: p.FontWeight,
		Color:      p.Color,
		Anchor:     canvas.AnchorMiddle,
	})
}

// DurationDot annotates a dotted duration with a small filled circle
// beside the host note. A dotted note also widens the gap to the next
// note in its column; the layout calculator reads the dot's presence
// for that.
type DurationDot struct {
	Radius  float64
	Color   string
	OffsetX float64
	OffsetY float64
}

// NewDurationDot creates a duration dot with default presentation.
func NewDurationDot() *DurationDot {
	return &DurationDot{
		Radius:  2.5,
		Color:   "#1a1a1a",
		OffsetX: 10,
		OffsetY: 8,
	}
}

// Kind implements Annotation.
func (d *DurationDot) Kind() AnnotationKind { return KindDurationDot }

// Offset implements Annotation.
func (d *DurationDot) Offset() (dx, dy float64) { return d.OffsetX, d.OffsetY }

// Render implements Annotation.
func (d *DurationDot) Render(c *canvas.Canvas, hostX, hostY float64) {
	c.DrawCircle(hostX+d.OffsetX, hostY+d.OffsetY, d.Radius, canvas.ShapeStyle{
		Fill: d.Color,
	})
}

// Atari annotates a percussive finger-pop articulation.
type Atari struct {
	FontSize   float64
	FontWeight string
	Color      string
	OffsetX    float64
	OffsetY    float64
}

// NewAtari creates an atari mark with default presentation.
func NewAtari() *Atari {
	return &Atari{
		FontSize:   10,
		FontWeight: "normal",
		Color:      "#1a1a1a",
		OffsetX:    -14,
		OffsetY:    -8,
	}
}

// Kind implements Annotation.
func (a *Atari) Kind() AnnotationKind { return KindAtari }

// Offset implements Annotation.
func (a *Atari) Offset() (dx, dy float64) { return a.OffsetX, a.OffsetY }

// Render implements Annotation.
func (a *Atari) Render(c *canvas.Canvas, hostX, hostY float64) {
	c.DrawText("ヽ", hostX+a.OffsetX, hostY+a.OffsetY, canvas.TextStyle{
		FontSize:   a.FontSize,
		FontWeight: a.FontWeight,
		Color:      a.Color,
		Anchor:     canvas.AnchorMiddle,
	})
}
