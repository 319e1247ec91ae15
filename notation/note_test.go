package notation

import (
	"strings"
	"testing"

	"github.com/hogaku/shakufu/canvas"
)

func TestDurationFromBeats(t *testing.T) {
	tests := []struct {
		name       string
		beats      float64
		want       DurationClass
		wantDotted bool
	}{
		{"whole", 4, Whole, false},
		{"half", 2, Half, false},
		{"quarter", 1, Quarter, false},
		{"eighth", 0.5, Eighth, false},
		{"sixteenth", 0.25, Sixteenth, false},
		{"dotted whole", 6, Whole, true},
		{"dotted half", 3, Half, true},
		{"dotted quarter", 1.5, Quarter, true},
		{"dotted eighth", 0.75, Eighth, true},
		{"dotted sixteenth", 0.375, Sixteenth, true},
		{"odd value snaps down", 1.2, Quarter, false},
		{"tiny value snaps to sixteenth", 0.1, Sixteenth, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, dotted := DurationFromBeats(tt.beats)
			if class != tt.want || dotted != tt.wantDotted {
				t.Errorf("DurationFromBeats(%v) = (%v, %v), want (%v, %v)",
					tt.beats, class, dotted, tt.want, tt.wantDotted)
			}
		})
	}
}

func TestNoteAnnotationOwnership(t *testing.T) {
	n := NewNote("ロ", "ro", Quarter)
	n.AddAnnotation(NewOctaveMark(Kan))
	n.AddAnnotation(NewPitchBend(Meri))
	n.AddAnnotation(NewDurationDot())

	if got := len(n.Annotations()); got != 3 {
		t.Fatalf("len(Annotations()) = %d, want 3", got)
	}
	if !n.HasAnnotation(KindPitchBend) {
		t.Error("HasAnnotation(KindPitchBend) = false")
	}

	n.RemoveAnnotations(KindOctaveMark)
	if n.HasAnnotation(KindOctaveMark) {
		t.Error("octave mark survived RemoveAnnotations")
	}
	// Remaining annotations keep their relative order.
	kinds := []AnnotationKind{}
	for _, a := range n.Annotations() {
		kinds = append(kinds, a.Kind())
	}
	if len(kinds) != 2 || kinds[0] != KindPitchBend || kinds[1] != KindDurationDot {
		t.Errorf("annotation order after removal = %v", kinds)
	}
}

func TestNoteRenderOrder(t *testing.T) {
	n := NewNote("ツ", "tsu", Quarter)
	n.FontSize = 24
	n.Color = "black"
	n.SetPosition(100, 60)
	n.AddAnnotation(NewOctaveMark(Kan))
	n.AddAnnotation(NewPitchBend(Meri))

	c := canvas.New(200, 200)
	n.Render(c)
	out := c.SVG()

	// Base glyph first, then annotations in attachment order.
	iBase := strings.Index(out, "ツ")
	iMark := strings.Index(out, "甲")
	iBend := strings.Index(out, "メ")
	if iBase < 0 || iMark < 0 || iBend < 0 {
		t.Fatalf("missing glyphs in output:\n%s", out)
	}
	if !(iBase < iMark && iMark < iBend) {
		t.Errorf("draw order wrong: base=%d mark=%d bend=%d", iBase, iMark, iBend)
	}
}

func TestNoteRenderAnnotationOffsets(t *testing.T) {
	n := NewNote("レ", "re", Quarter)
	n.SetPosition(100, 60)
	mark := NewOctaveMark(Daikan)
	mark.OffsetX = 15
	mark.OffsetY = -10
	n.AddAnnotation(mark)

	c := canvas.New(200, 200)
	n.Render(c)
	out := c.SVG()

	if !strings.Contains(out, `x="115"`) || !strings.Contains(out, `y="50"`) {
		t.Errorf("annotation not placed at host position plus offset:\n%s", out)
	}
}

func TestRestRendersNoBaseGlyph(t *testing.T) {
	n := NewNote("", "unknown", Quarter)
	n.SetPosition(10, 10)
	n.AddAnnotation(NewDurationDot())

	c := canvas.New(100, 100)
	n.Render(c)
	out := c.SVG()

	if strings.Contains(out, "<text") {
		t.Errorf("rest drew a base glyph:\n%s", out)
	}
	if !strings.Contains(out, "<circle") {
		t.Errorf("rest skipped its annotations:\n%s", out)
	}
}

func TestOtsuMarkDrawsNothing(t *testing.T) {
	c := canvas.New(100, 100)
	NewOctaveMark(Otsu).Render(c, 50, 50)
	if strings.Contains(c.SVG(), "<text") {
		t.Error("otsu octave mark must not draw a glyph")
	}
}

func TestAnnotationKindString(t *testing.T) {
	tests := []struct {
		kind AnnotationKind
		want string
	}{
		{KindOctaveMark, "OctaveMark"},
		{KindPitchBend, "PitchBend"},
		{KindDurationDot, "DurationDot"},
		{KindAtari, "Atari"},
		{AnnotationKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("AnnotationKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRegisterAndBendNames(t *testing.T) {
	if Otsu.String() != "otsu" || Kan.String() != "kan" || Daikan.String() != "daikan" {
		t.Error("register names wrong")
	}
	if Otsu.Glyph() != "" {
		t.Errorf("Otsu.Glyph() = %q, want empty", Otsu.Glyph())
	}
	if ChuMeri.String() != "chu-meri" || Kari.Glyph() != "カ" {
		t.Error("bend kind names or glyphs wrong")
	}
}
