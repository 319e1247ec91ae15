// Package score defines the interchange form of a shakuhachi score as
// produced by external parsers (MusicXML, ABC), plus decoding,
// validation, and fetching of that form.
//
// The interchange format is a flat, performance-ordered note sequence:
//
//	{ "title": "...", "style": "kinko"|"tozan",
//	  "notes": [ { "pitch": {"step": "ro", "octave": 1},
//	               "duration": 1, "meri": true }, ... ] }
//
// Column breaks are never part of this format; layout is a rendering
// decision, not score data.
package score

import (
	"errors"
	"fmt"
)

// Styles accepted in the interchange format.
const (
	StyleKinko = "kinko"
	StyleTozan = "tozan"
)

// Errors reported by Validate.
var (
	// ErrUnsupportedStyle marks a score whose style is not a known
	// notation tradition.
	ErrUnsupportedStyle = errors.New("score: unsupported style")

	// ErrInvalidNote marks a note whose pitch, octave, or duration is
	// outside the interchange contract.
	ErrInvalidNote = errors.New("score: invalid note")
)

// Pitch identifies a fingering and register.
type Pitch struct {
	// Step is the fingering identifier: ro, tsu, re, chi, ri, u, hi.
	Step string `json:"step"`

	// Octave is the register: 0 = otsu, 1 = kan, 2 = daikan.
	Octave int `json:"octave"`
}

// Note is one interchange note.
type Note struct {
	Pitch Pitch `json:"pitch"`

	// Duration is the note length in quarter-note beats.
	Duration float64 `json:"duration"`

	// Meri marks a pitch-lowering embouchure technique.
	Meri bool `json:"meri,omitempty"`
}

// Score is a complete interchange score.
type Score struct {
	Title    string `json:"title"`
	Composer string `json:"composer,omitempty"`
	Style    string `json:"style"`
	Notes    []Note `json:"notes"`
}

var knownSteps = map[string]bool{
	"ro": true, "tsu": true, "re": true, "chi": true,
	"ri": true, "u": true, "hi": true,
}

// Validate checks the score against the interchange contract. It
// returns an error wrapping ErrUnsupportedStyle or ErrInvalidNote with
// position context; a nil error means every note is renderable.
func (s *Score) Validate() error {
	if s.Style != StyleKinko && s.Style != StyleTozan {
		return fmt.Errorf("%w: %q", ErrUnsupportedStyle, s.Style)
	}
	for i, n := range s.Notes {
		if !knownSteps[n.Pitch.Step] {
			return fmt.Errorf("%w: note %d has unknown step %q", ErrInvalidNote, i, n.Pitch.Step)
		}
		if n.Pitch.Octave < 0 || n.Pitch.Octave > 2 {
			return fmt.Errorf("%w: note %d has octave %d, want 0..2", ErrInvalidNote, i, n.Pitch.Octave)
		}
		if n.Duration <= 0 {
			return fmt.Errorf("%w: note %d has duration %v, want > 0", ErrInvalidNote, i, n.Duration)
		}
	}
	return nil
}
