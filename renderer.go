package shakufu

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/hogaku/shakufu/canvas"
	"github.com/hogaku/shakufu/layout"
	"github.com/hogaku/shakufu/notation"
	"github.com/hogaku/shakufu/score"
)

// resizeDebounceInterval coalesces bursts of container resize
// notifications into one re-render of the final size.
const resizeDebounceInterval = 50 * time.Millisecond

// Renderer is the public entry point of the notation pipeline. It owns
// the configuration lifecycle, converts score data into renderable
// notes, and drives layout and drawing into its container.
//
// Every render entry point runs synchronously to completion; a render
// either fully replaces the container content or replaces it with an
// error message, never leaving it half-drawn. Renderer instances share
// no state with each other.
type Renderer struct {
	mu        sync.Mutex
	container Container
	opts      Options

	notes     []*notation.Note
	scoreData *score.Score

	cancelResize func()
	debounced    func(func())
	destroyed    bool
}

// New creates a Renderer drawing into container. When AutoResize is on
// and the container implements ResizeNotifier, size changes re-render
// the held notes; rapid notifications are debounced so only the final
// size is drawn.
func New(container Container, opts ...Option) *Renderer {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	r := &Renderer{
		container: container,
		opts:      options,
		debounced: debounce.New(resizeDebounceInterval),
	}
	r.observeResize()
	return r
}

// observeResize subscribes to container size changes. The subscription
// lives for the renderer's lifetime; the AutoResize flag is consulted
// when a notification fires, so toggling it through SetOptions takes
// effect without re-subscribing.
func (r *Renderer) observeResize() {
	notifier, ok := r.container.(ResizeNotifier)
	if !ok {
		return
	}
	r.cancelResize = notifier.OnResize(func(width, height float64) {
		r.debounced(func() {
			if !r.Options().AutoResize {
				return
			}
			Logger().Debug("renderer: container resized", "width", width, "height", height)
			if err := r.Refresh(); err != nil {
				Logger().Warn("renderer: resize refresh failed", "error", err)
			}
		})
	})
}

// RenderFromURL fetches score data by URL and renders it. Fetch or
// parse failures propagate to the caller and no partial render is
// performed.
func (r *Renderer) RenderFromURL(ctx context.Context, url string) error {
	s, err := score.Fetch(ctx, url)
	if err != nil {
		return err
	}
	return r.RenderFromScoreData(s)
}

// RenderFromScoreData converts interchange score data to renderable
// notes and renders them. Unsupported data is surfaced both ways: an
// inline error message replaces the container content (keeping a
// hosting page stable) and the validation error is returned.
func (r *Renderer) RenderFromScoreData(s *score.Score) error {
	if err := s.Validate(); err != nil {
		r.renderError(err.Error())
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.scoreData = s
	return r.renderLocked()
}

// RenderNotes renders pre-built notation notes, replacing any held
// score data.
func (r *Renderer) RenderNotes(notes []*notation.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scoreData = nil
	r.notes = notes
	return r.renderLocked()
}

// SetOptions merges the given options into the current configuration
// and immediately re-renders the held notes, if any.
func (r *Renderer) SetOptions(opts ...Option) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, opt := range opts {
		opt(&r.opts)
	}
	if r.notes == nil && r.scoreData == nil {
		return nil
	}
	return r.renderLocked()
}

// Resize sets an explicit viewport and re-renders.
func (r *Renderer) Resize(width, height float64) error {
	return r.SetOptions(WithSize(width, height))
}

// Refresh re-renders the currently held notes. It is a no-op when
// nothing has been rendered yet.
func (r *Renderer) Refresh() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.notes == nil && r.scoreData == nil {
		return nil
	}
	return r.renderLocked()
}

// Options returns a copy of the current configuration.
func (r *Renderer) Options() Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// Notes returns the currently held renderable notes. The notes are
// owned by the renderer; treat them as read-only.
func (r *Renderer) Notes() []*notation.Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notes
}

// ScoreData returns the currently held interchange score, or nil when
// the last render came from RenderNotes or nothing was rendered.
func (r *Renderer) ScoreData() *score.Score {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scoreData
}

// Clear drops the drawn content and the held notes and score data. The
// configuration and resize subscription survive.
func (r *Renderer) Clear() error {
	r.mu.Lock()
	r.notes = nil
	r.scoreData = nil
	r.mu.Unlock()
	return r.container.SetContent("")
}

// Destroy clears the renderer and releases the resize subscription.
// Destroy is idempotent.
func (r *Renderer) Destroy() error {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return nil
	}
	r.destroyed = true
	cancel := r.cancelResize
	r.cancelResize = nil
	r.notes = nil
	r.scoreData = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	return r.container.SetContent("")
}

// viewport resolves the render size: explicit options first, then
// container measurement, then the package fallback.
func (r *Renderer) viewport() (width, height float64) {
	if r.opts.Width > 0 && r.opts.Height > 0 {
		return r.opts.Width, r.opts.Height
	}
	if w, h, ok := r.container.Size(); ok && w > 0 && h > 0 {
		return w, h
	}
	return DefaultWidth, DefaultHeight
}

// renderLocked runs one full render pass: fresh canvas, annotation
// configuration, column layout, drawing. Caller holds r.mu.
func (r *Renderer) renderLocked() error {
	// Configure strips the annotations it hides, so rebuild the notes
	// from the held score data on every pass; that keeps toggles like
	// ShowOctaveMarks reversible. Notes supplied through RenderNotes
	// have no source to rebuild from and keep their stripped state.
	if r.scoreData != nil {
		r.notes = ConvertScore(r.scoreData)
	}

	width, height := r.viewport()
	c := canvas.New(width, height)

	notation.Configure(r.notes, notation.Config{
		ShowOctaveMarks:      r.opts.ShowOctaveMarks,
		OctaveMarkFontSize:   r.opts.OctaveMarkFontSize,
		OctaveMarkFontWeight: r.opts.OctaveMarkFontWeight,
		OctaveMarkColor:      r.opts.OctaveMarkColor,
		OctaveMarkOffsetX:    r.opts.OctaveMarkOffsetX,
		OctaveMarkOffsetY:    r.opts.OctaveMarkOffsetY,
		PitchBendFontSize:    r.opts.MeriKariFontSize,
		PitchBendFontWeight:  r.opts.MeriKariFontWeight,
		PitchBendColor:       r.opts.MeriKariColor,
	})

	l := layout.Calculate(r.notes, width, layout.Params{
		NotesPerColumn:          r.opts.NotesPerColumn,
		ColumnWidth:             r.opts.ColumnWidth,
		ColumnSpacing:           r.opts.ColumnSpacing,
		TopMargin:               r.opts.TopMargin,
		NoteVerticalSpacing:     r.opts.NoteVerticalSpacing,
		DurationDotExtraSpacing: r.opts.DurationDotExtraSpacing,
	})

	c.OpenGroup("score", "")
	for _, col := range l.Columns {
		c.OpenGroup("column", fmt.Sprintf("column-%d", col.ColumnIndex))
		for _, np := range col.NotePositions {
			n := r.notes[np.NoteIndex]
			n.FontSize = r.opts.NoteFontSize
			n.FontWeight = r.opts.NoteFontWeight
			n.FontFamily = r.opts.NoteFontFamily
			n.Color = r.opts.NoteColor
			n.SetPosition(col.X, np.Y)
			n.Render(c)
			if r.opts.ShowDebugLabels {
				r.drawDebugLabel(c, n, np.NoteIndex)
			}
		}
		c.CloseGroup()
	}
	c.CloseGroup()

	Logger().Debug("renderer: pass complete",
		"notes", len(r.notes), "columns", l.TotalColumns,
		"width", width, "height", height)
	return r.container.SetContent(c.SVG())
}

// drawDebugLabel overlays diagnostic text beside a note: sequence
// index, romanized name, register, and pitch-bend kind.
func (r *Renderer) drawDebugLabel(c *canvas.Canvas, n *notation.Note, index int) {
	label := fmt.Sprintf("%d %s", index, n.Name)
	if mark := n.OctaveMark(); mark != nil {
		label += " " + mark.Register.String()
	}
	if bend := n.PitchBend(); bend != nil {
		label += " " + bend.Bend.String()
	}

	offsetX := r.opts.DebugLabelOffsetX
	// Fullwidth glyphs extend further from the anchor than Latin text
	// at the same size; push the label clear of the glyph box.
	if notation.IsFullwidth(n.Symbol) {
		offsetX += n.FontSize / 4
	}
	c.DrawText(label, n.X+offsetX, n.Y+r.opts.DebugLabelOffsetY, canvas.TextStyle{
		FontSize:   r.opts.DebugLabelFontSize,
		FontFamily: r.opts.DebugLabelFont,
		Color:      r.opts.DebugLabelColor,
		Anchor:     canvas.AnchorStart,
	})
}

// renderError replaces the container content with an inline error
// message so a hosting page never sees a half-drawn score.
func (r *Renderer) renderError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.viewport()
	c := canvas.New(width, height)
	c.OpenGroup("error", "")
	c.DrawText("Unable to render score", width/2, height/2-12, canvas.TextStyle{
		FontSize: 16, FontFamily: "sans-serif", Color: "#b00020", Anchor: canvas.AnchorMiddle,
	})
	c.DrawText(msg, width/2, height/2+12, canvas.TextStyle{
		FontSize: 12, FontFamily: "sans-serif", Color: "#b00020", Anchor: canvas.AnchorMiddle,
	})
	c.CloseGroup()
	if err := r.container.SetContent(c.SVG()); err != nil {
		Logger().Warn("renderer: failed to set error content", "error", err)
	}
}
