// Package layout computes the geometric placement of notation columns.
//
// Calculate is a pure function from an ordered note sequence, a
// viewport width, and layout parameters to the position of every column
// and every note within it. Columns read right to left: column 0 (the
// first notes in performance order) sits at the rightmost x, and column
// index increases leftward. Within a column notes read top to bottom.
//
// The result is recomputed on every render pass and never persisted;
// column breaks are a rendering decision, not score data.
package layout

import (
	"math"

	"github.com/hogaku/shakufu/notation"
)

// Params are the layout inputs that come from renderer options.
type Params struct {
	// NotesPerColumn is the column capacity; values below 1 are
	// treated as 1.
	NotesPerColumn int

	ColumnWidth   float64
	ColumnSpacing float64

	// TopMargin is the y of the first note in every column.
	TopMargin float64

	// NoteVerticalSpacing is the gap between consecutive notes in a
	// column.
	NoteVerticalSpacing float64

	// DurationDotExtraSpacing widens the gap after a note carrying a
	// duration dot. The extra space is attributed to the dotted note,
	// not the one being placed below it.
	DurationDotExtraSpacing float64
}

// NotePosition is the vertical placement of one note inside a column.
type NotePosition struct {
	// NoteIndex is the note's index in the original flat sequence.
	NoteIndex int
	Y         float64
}

// ColumnInfo is the placement of one column and the notes it holds.
type ColumnInfo struct {
	ColumnIndex int
	X           float64

	// NoteStartIndex and NoteEndIndex bound the column's slice of the
	// flat note sequence; NoteEndIndex is exclusive.
	NoteStartIndex int
	NoteEndIndex   int

	NotePositions []NotePosition
}

// Layout is the computed placement for one render pass.
type Layout struct {
	TotalColumns  int
	StartX        float64
	StartY        float64
	ColumnWidth   float64
	ColumnSpacing float64
	Columns       []ColumnInfo
}

// Calculate maps notes to column/row coordinates within a viewport of
// the given width. Zero notes yield a Layout with TotalColumns 0 and an
// empty column list. Calculate performs no mutation and has no failure
// modes.
func Calculate(notes []*notation.Note, viewportWidth float64, p Params) Layout {
	perColumn := p.NotesPerColumn
	if perColumn < 1 {
		perColumn = 1
	}

	noteCount := len(notes)
	totalColumns := int(math.Ceil(float64(noteCount) / float64(perColumn)))

	l := Layout{
		TotalColumns:  totalColumns,
		StartY:        p.TopMargin,
		ColumnWidth:   p.ColumnWidth,
		ColumnSpacing: p.ColumnSpacing,
	}
	if totalColumns == 0 {
		return l
	}

	totalContentWidth := float64(totalColumns)*p.ColumnWidth +
		float64(totalColumns-1)*p.ColumnSpacing
	l.StartX = (viewportWidth-totalContentWidth)/2 + p.ColumnWidth/2

	l.Columns = make([]ColumnInfo, 0, totalColumns)
	for i := 0; i < totalColumns; i++ {
		start := i * perColumn
		end := min(start+perColumn, noteCount)

		col := ColumnInfo{
			ColumnIndex: i,
			// Column 0 is rendered rightmost; index grows leftward.
			X:              l.StartX + float64(totalColumns-1-i)*(p.ColumnWidth+p.ColumnSpacing),
			NoteStartIndex: start,
			NoteEndIndex:   end,
			NotePositions:  make([]NotePosition, 0, end-start),
		}

		y := p.TopMargin
		for j := start; j < end; j++ {
			if j > start {
				y += p.NoteVerticalSpacing
				// Extra spacing belongs to the preceding note when it
				// carries a duration dot.
				if notes[j-1].HasAnnotation(notation.KindDurationDot) {
					y += p.DurationDotExtraSpacing
				}
			}
			col.NotePositions = append(col.NotePositions, NotePosition{NoteIndex: j, Y: y})
		}
		l.Columns = append(l.Columns, col)
	}
	return l
}
