package shakufu

// Fallback viewport used when no explicit size is configured and the
// container cannot be measured. Kept as explicit, overridable defaults
// rather than hidden constants.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Options is the renderer's immutable configuration surface. A Renderer
// holds one Options value; SetOptions replaces it wholesale with a
// merged copy, so no component ever observes a half-updated
// configuration.
//
// The YAML tags allow file-based configuration; absent keys keep their
// defaults when unmarshaling over DefaultOptions().
type Options struct {
	// Width and Height override the viewport. Zero means "measure the
	// container", falling back to DefaultWidth x DefaultHeight when
	// the container is unmeasurable.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// AutoResize re-renders when the container reports a size change.
	AutoResize bool `yaml:"autoResize"`

	// Column geometry.
	NotesPerColumn int     `yaml:"notesPerColumn"`
	ColumnWidth    float64 `yaml:"columnWidth"`
	ColumnSpacing  float64 `yaml:"columnSpacing"`
	TopMargin      float64 `yaml:"topMargin"`

	// Base glyph typography.
	NoteFontSize        float64 `yaml:"noteFontSize"`
	NoteFontWeight      string  `yaml:"noteFontWeight"`
	NoteFontFamily      string  `yaml:"noteFontFamily"`
	NoteColor           string  `yaml:"noteColor"`
	NoteVerticalSpacing float64 `yaml:"noteVerticalSpacing"`

	// Octave-register marks.
	ShowOctaveMarks      bool    `yaml:"showOctaveMarks"`
	OctaveMarkFontSize   float64 `yaml:"octaveMarkFontSize"`
	OctaveMarkFontWeight string  `yaml:"octaveMarkFontWeight"`
	OctaveMarkColor      string  `yaml:"octaveMarkColor"`
	OctaveMarkOffsetX    float64 `yaml:"octaveMarkOffsetX"`
	OctaveMarkOffsetY    float64 `yaml:"octaveMarkOffsetY"`

	// Meri/kari pitch-bend marks.
	MeriKariFontSize   float64 `yaml:"meriKariFontSize"`
	MeriKariFontWeight string  `yaml:"meriKariFontWeight"`
	MeriKariColor      string  `yaml:"meriKariColor"`

	// Extra vertical space after a dotted note.
	DurationDotExtraSpacing float64 `yaml:"durationDotExtraSpacing"`

	// Diagnostic overlay.
	ShowDebugLabels    bool    `yaml:"showDebugLabels"`
	DebugLabelFontSize float64 `yaml:"debugLabelFontSize"`
	DebugLabelFont     string  `yaml:"debugLabelFontFamily"`
	DebugLabelColor    string  `yaml:"debugLabelColor"`
	DebugLabelOffsetX  float64 `yaml:"debugLabelOffsetX"`
	DebugLabelOffsetY  float64 `yaml:"debugLabelOffsetY"`
}

// DefaultOptions returns the configuration used when no options are
// supplied.
func DefaultOptions() Options {
	return Options{
		Width:      0,
		Height:     0,
		AutoResize: true,

		NotesPerColumn: 10,
		ColumnWidth:    40,
		ColumnSpacing:  24,
		TopMargin:      60,

		NoteFontSize:        24,
		NoteFontWeight:      "normal",
		NoteFontFamily:      `"Noto Serif JP", serif`,
		NoteColor:           "#1a1a1a",
		NoteVerticalSpacing: 34,

		ShowOctaveMarks:      true,
		OctaveMarkFontSize:   11,
		OctaveMarkFontWeight: "normal",
		OctaveMarkColor:      "#666",
		OctaveMarkOffsetX:    14,
		OctaveMarkOffsetY:    -8,

		MeriKariFontSize:   12,
		MeriKariFontWeight: "normal",
		MeriKariColor:      "#888",

		DurationDotExtraSpacing: 10,

		ShowDebugLabels:    false,
		DebugLabelFontSize: 8,
		DebugLabelFont:     "monospace",
		DebugLabelColor:    "crimson",
		DebugLabelOffsetX:  18,
		DebugLabelOffsetY:  -4,
	}
}

// Option configures a Renderer at construction or via SetOptions.
// Options merge field-by-field into the current configuration.
//
// Example:
//
//	r := shakufu.New(container,
//		shakufu.WithNotesPerColumn(12),
//		shakufu.WithDebugLabels(true))
type Option func(*Options)

// WithSize sets an explicit viewport, bypassing container measurement.
func WithSize(width, height float64) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithAutoResize toggles re-rendering on container size changes.
func WithAutoResize(enabled bool) Option {
	return func(o *Options) { o.AutoResize = enabled }
}

// WithNotesPerColumn sets the column capacity.
func WithNotesPerColumn(n int) Option {
	return func(o *Options) { o.NotesPerColumn = n }
}

// WithColumnGeometry sets column width and inter-column spacing.
func WithColumnGeometry(width, spacing float64) Option {
	return func(o *Options) {
		o.ColumnWidth = width
		o.ColumnSpacing = spacing
	}
}

// WithTopMargin sets the y offset of the first note in every column.
func WithTopMargin(margin float64) Option {
	return func(o *Options) { o.TopMargin = margin }
}

// WithNoteTypography sets the base glyph font.
func WithNoteTypography(size float64, weight, family string) Option {
	return func(o *Options) {
		o.NoteFontSize = size
		o.NoteFontWeight = weight
		o.NoteFontFamily = family
	}
}

// WithNoteColor sets the base glyph color.
func WithNoteColor(color string) Option {
	return func(o *Options) { o.NoteColor = color }
}

// WithNoteVerticalSpacing sets the gap between notes in a column.
func WithNoteVerticalSpacing(spacing float64) Option {
	return func(o *Options) { o.NoteVerticalSpacing = spacing }
}

// WithOctaveMarks toggles octave-register marks.
func WithOctaveMarks(show bool) Option {
	return func(o *Options) { o.ShowOctaveMarks = show }
}

// WithOctaveMarkStyle sets octave-mark typography and offset.
func WithOctaveMarkStyle(size float64, weight, color string, offsetX, offsetY float64) Option {
	return func(o *Options) {
		o.OctaveMarkFontSize = size
		o.OctaveMarkFontWeight = weight
		o.OctaveMarkColor = color
		o.OctaveMarkOffsetX = offsetX
		o.OctaveMarkOffsetY = offsetY
	}
}

// WithMeriKariStyle sets pitch-bend mark typography.
func WithMeriKariStyle(size float64, weight, color string) Option {
	return func(o *Options) {
		o.MeriKariFontSize = size
		o.MeriKariFontWeight = weight
		o.MeriKariColor = color
	}
}

// WithDurationDotExtraSpacing sets the extra gap after dotted notes.
func WithDurationDotExtraSpacing(spacing float64) Option {
	return func(o *Options) { o.DurationDotExtraSpacing = spacing }
}

// WithDebugLabels toggles the per-note diagnostic overlay (index,
// romanized name, register, pitch-bend kind).
func WithDebugLabels(show bool) Option {
	return func(o *Options) { o.ShowDebugLabels = show }
}

// WithOptions replaces the whole configuration at once. Useful with
// configurations loaded from YAML.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}
