package shakufu

import (
	"github.com/hogaku/shakufu/notation"
	"github.com/hogaku/shakufu/score"
)

// ConvertScore derives renderable notes from interchange score data,
// one notation note per score note, in performance order. Attachment
// rules:
//
//   - octave 1 gains a kan octave mark, octave 2 a daikan mark; octave
//     0 (otsu) gains no mark at all
//   - a dotted duration (1.5x a plain class) gains a duration dot
//   - the meri flag gains a meri pitch-bend mark
//
// A step that does not resolve to a glyph in the score's style becomes
// a rest (empty symbol); conversion never fails on symbol lookup.
// Typography is left zero here; the renderer assigns it from options on
// every render pass.
func ConvertScore(s *score.Score) []*notation.Note {
	notes := make([]*notation.Note, 0, len(s.Notes))
	style := notation.Style(s.Style)

	for _, sn := range s.Notes {
		glyph, ok := notation.LookupSymbol(sn.Pitch.Step, style)
		if !ok {
			Logger().Warn("convert: unresolved symbol, rendering as rest",
				"step", sn.Pitch.Step, "style", s.Style)
		}
		class, dotted := notation.DurationFromBeats(sn.Duration)
		n := notation.NewNote(glyph, sn.Pitch.Step, class)

		switch sn.Pitch.Octave {
		case 1:
			n.AddAnnotation(notation.NewOctaveMark(notation.Kan))
		case 2:
			n.AddAnnotation(notation.NewOctaveMark(notation.Daikan))
		}
		if sn.Meri {
			n.AddAnnotation(notation.NewPitchBend(notation.Meri))
		}
		if dotted {
			n.AddAnnotation(notation.NewDurationDot())
		}
		notes = append(notes, n)
	}
	return notes
}
