package notation

// Config is the uniform presentation policy applied to annotations
// before layout. It is a plain value; Configure never retains it.
type Config struct {
	// ShowOctaveMarks keeps octave-register marks when true and strips
	// them from every note when false. Other annotation kinds are
	// never touched by this switch.
	ShowOctaveMarks bool

	OctaveMarkFontSize   float64
	OctaveMarkFontWeight string
	OctaveMarkColor      string
	OctaveMarkOffsetX    float64
	OctaveMarkOffsetY    float64

	PitchBendFontSize   float64
	PitchBendFontWeight string
	PitchBendColor      string
}

// Configure applies cfg to every annotation across notes.
//
// When octave marks are disabled, every octave-register annotation is
// removed from its note; the remaining annotations keep their relative
// order. Otherwise octave marks and pitch-bend marks each receive their
// typography from cfg. Configure is idempotent: running it twice with
// the same config yields the same annotation set and presentation.
func Configure(notes []*Note, cfg Config) {
	for _, n := range notes {
		if !cfg.ShowOctaveMarks {
			n.RemoveAnnotations(KindOctaveMark)
		}
		for _, a := range n.Annotations() {
			switch v := a.(type) {
			case *OctaveMark:
				v.FontSize = cfg.OctaveMarkFontSize
				v.FontWeight = cfg.OctaveMarkFontWeight
				v.Color = cfg.OctaveMarkColor
				v.OffsetX = cfg.OctaveMarkOffsetX
				v.OffsetY = cfg.OctaveMarkOffsetY
			case *PitchBend:
				v.FontSize = cfg.PitchBendFontSize
				v.FontWeight = cfg.PitchBendFontWeight
				v.Color = cfg.PitchBendColor
			}
		}
	}
}
