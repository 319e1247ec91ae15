package shakufu

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hogaku/shakufu/score"
)

func testScore(noteCount int) *score.Score {
	steps := []string{"ro", "tsu", "re", "chi", "ri", "u", "hi"}
	s := &score.Score{Title: "test", Style: score.StyleKinko}
	for i := 0; i < noteCount; i++ {
		s.Notes = append(s.Notes, score.Note{
			Pitch:    score.Pitch{Step: steps[i%len(steps)], Octave: i % 3},
			Duration: 1,
		})
	}
	return s
}

func TestRenderFromScoreData(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	if err := r.RenderFromScoreData(testScore(23)); err != nil {
		t.Fatalf("RenderFromScoreData() error = %v", err)
	}

	out := container.Content()
	if !strings.HasPrefix(out, "<svg") {
		t.Fatalf("container content is not SVG:\n%.80s", out)
	}
	// 23 notes at 10 per column = 3 column groups.
	if got := strings.Count(out, `class="column"`); got != 3 {
		t.Errorf("column groups = %d, want 3", got)
	}
	if r.ScoreData() == nil || len(r.Notes()) != 23 {
		t.Error("renderer did not retain score data and notes")
	}
}

func TestRenderIdempotent(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	if err := r.RenderFromScoreData(testScore(15)); err != nil {
		t.Fatal(err)
	}
	first := container.Content()
	if err := r.Refresh(); err != nil {
		t.Fatal(err)
	}
	if second := container.Content(); second != first {
		t.Error("two renders of identical input produced different documents")
	}
}

func TestUnmeasuredContainerFallsBackTo800x600(t *testing.T) {
	container := NewUnmeasuredContainer()
	r := New(container)
	defer r.Destroy()

	if err := r.RenderFromScoreData(testScore(3)); err != nil {
		t.Fatal(err)
	}
	out := container.Content()
	if !strings.Contains(out, `width="800"`) || !strings.Contains(out, `height="600"`) {
		t.Errorf("fallback viewport missing:\n%.120s", out)
	}
}

func TestExplicitSizeOverridesContainer(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container, WithSize(400, 1000))
	defer r.Destroy()

	if err := r.RenderFromScoreData(testScore(3)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(container.Content(), `width="400"`) {
		t.Error("explicit size not honored")
	}
}

func TestInvalidScoreRendersInlineError(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	bad := &score.Score{Style: "unknown"}
	err := r.RenderFromScoreData(bad)
	if !errors.Is(err, score.ErrUnsupportedStyle) {
		t.Fatalf("error = %v, want ErrUnsupportedStyle", err)
	}
	out := container.Content()
	if !strings.Contains(out, "Unable to render score") {
		t.Errorf("container missing inline error message:\n%s", out)
	}
}

func TestOctaveMarkToggleIsReversible(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	s := testScore(3) // includes octave 1 and 2 notes
	if err := r.RenderFromScoreData(s); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(container.Content(), "甲") {
		t.Fatal("expected octave marks in initial render")
	}

	if err := r.SetOptions(WithOctaveMarks(false)); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(container.Content(), "甲") {
		t.Error("octave marks drawn while disabled")
	}

	// Re-enabling alone restores drawing: every pass rebuilds the notes
	// from the held score data, so stripped marks come back without
	// re-supplying the score.
	if err := r.SetOptions(WithOctaveMarks(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(container.Content(), "甲") {
		t.Error("octave marks missing after re-enable via SetOptions alone")
	}
}

func TestDebugLabels(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container, WithDebugLabels(true))
	defer r.Destroy()

	s := testScore(2)
	s.Notes[1].Meri = true
	if err := r.RenderFromScoreData(s); err != nil {
		t.Fatal(err)
	}
	out := container.Content()
	for _, want := range []string{"0 ro", "1 tsu kan meri"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug overlay missing %q:\n%s", want, out)
		}
	}
}

func TestRefreshWithoutNotesIsNoOp(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	if err := r.Refresh(); err != nil {
		t.Errorf("Refresh() with no notes = %v, want nil", err)
	}
	if container.Content() != "" {
		t.Error("Refresh with no notes drew content")
	}
}

func TestClearDropsContentAndState(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	if err := r.RenderFromScoreData(testScore(5)); err != nil {
		t.Fatal(err)
	}
	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if container.Content() != "" {
		t.Error("Clear left content in container")
	}
	if r.Notes() != nil || r.ScoreData() != nil {
		t.Error("Clear did not drop held notes and score data")
	}
}

func TestDestroyIdempotentAndCancelsResize(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container)

	if err := r.RenderFromScoreData(testScore(5)); err != nil {
		t.Fatal(err)
	}
	if err := r.Destroy(); err != nil {
		t.Fatal(err)
	}
	if err := r.Destroy(); err != nil {
		t.Errorf("second Destroy() = %v, want nil", err)
	}

	// A resize after Destroy must not re-render.
	container.Resize(100, 100)
	time.Sleep(4 * resizeDebounceInterval)
	if container.Content() != "" {
		t.Error("resize after Destroy re-rendered")
	}
}

func TestAutoResizeRerenders(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	if err := r.RenderFromScoreData(testScore(5)); err != nil {
		t.Fatal(err)
	}

	// A burst of notifications coalesces to the final size.
	container.Resize(500, 500)
	container.Resize(640, 480)
	deadline := time.Now().Add(20 * resizeDebounceInterval)
	for time.Now().Before(deadline) {
		if strings.Contains(container.Content(), `width="640"`) {
			return
		}
		time.Sleep(resizeDebounceInterval / 5)
	}
	t.Errorf("container not re-rendered at new size:\n%.120s", container.Content())
}

func TestAutoResizeToggleViaSetOptions(t *testing.T) {
	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	if err := r.RenderFromScoreData(testScore(5)); err != nil {
		t.Fatal(err)
	}
	if err := r.SetOptions(WithAutoResize(false)); err != nil {
		t.Fatal(err)
	}
	before := container.Content()

	container.Resize(640, 480)
	time.Sleep(4 * resizeDebounceInterval)
	if container.Content() != before {
		t.Fatal("resize re-rendered although AutoResize was disabled")
	}

	// Re-enabling picks resizes back up. SetOptions itself re-renders at
	// the container's current 640x480; a further resize must then flow
	// through the subscription.
	if err := r.SetOptions(WithAutoResize(true)); err != nil {
		t.Fatal(err)
	}
	container.Resize(320, 240)
	deadline := time.Now().Add(20 * resizeDebounceInterval)
	for time.Now().Before(deadline) {
		if strings.Contains(container.Content(), `width="320"`) {
			return
		}
		time.Sleep(resizeDebounceInterval / 5)
	}
	t.Errorf("container not re-rendered after AutoResize re-enabled:\n%.120s", container.Content())
}

func TestRenderFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"title":"x","style":"kinko",
			"notes":[{"pitch":{"step":"ro","octave":0},"duration":1}]}`))
	}))
	defer srv.Close()

	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	if err := r.RenderFromURL(context.Background(), srv.URL); err != nil {
		t.Fatalf("RenderFromURL() error = %v", err)
	}
	if !strings.Contains(container.Content(), "ロ") {
		t.Error("fetched score not rendered")
	}
}

func TestRenderFromURLFailurePerformsNoRender(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	container := NewBufferContainer(800, 600)
	r := New(container)
	defer r.Destroy()

	if err := r.RenderFromURL(context.Background(), srv.URL); err == nil {
		t.Fatal("RenderFromURL of 404 returned nil error")
	}
	if container.Content() != "" {
		t.Error("failed fetch must not touch the container")
	}
}
