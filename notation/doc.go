// Package notation models renderable shakuhachi notes and their
// attached annotations.
//
// A Note holds one notation glyph (kana for the kinko tradition,
// numerals for tozan), its duration class, screen position, typography,
// and an ordered list of annotations. Annotations are a closed variant
// set — octave-register marks, pitch-bend marks, duration dots, and
// atari marks — each carrying its own offset from the host note and its
// own typography. Annotations belong exclusively to their host note and
// have no identity outside it.
//
// Configure applies a uniform presentation policy to every annotation
// across a batch of notes before layout; it is idempotent and never
// fails.
package notation
