package shakufu

import "sync"

// Container is the hosting surface a Renderer draws into. It abstracts
// the embedding environment: an HTTP response buffer, a file on disk,
// or a live document element in a host application.
type Container interface {
	// Size reports the container's measurable dimensions. ok is false
	// when the container cannot be measured, in which case the
	// renderer falls back to DefaultWidth x DefaultHeight (unless an
	// explicit size is configured).
	Size() (width, height float64, ok bool)

	// SetContent replaces the container's content with a complete SVG
	// document.
	SetContent(svg string) error
}

// ResizeNotifier is implemented by containers that can push size-change
// notifications. OnResize registers a single callback and returns a
// cancel function releasing the subscription; the renderer cancels on
// Destroy.
type ResizeNotifier interface {
	OnResize(fn func(width, height float64)) (cancel func())
}

// BufferContainer is an in-memory Container that holds the last
// rendered document. It also implements ResizeNotifier, so it doubles
// as a programmatically resizable host.
//
// BufferContainer is safe for concurrent use.
type BufferContainer struct {
	mu       sync.Mutex
	width    float64
	height   float64
	measured bool
	content  string
	onResize func(width, height float64)
}

// NewBufferContainer creates a container with the given measured size.
func NewBufferContainer(width, height float64) *BufferContainer {
	return &BufferContainer{width: width, height: height, measured: true}
}

// NewUnmeasuredContainer creates a container that reports no size,
// exercising the renderer's fallback dimensions.
func NewUnmeasuredContainer() *BufferContainer {
	return &BufferContainer{}
}

// Size implements Container.
func (b *BufferContainer) Size() (width, height float64, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height, b.measured
}

// SetContent implements Container.
func (b *BufferContainer) SetContent(svg string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = svg
	return nil
}

// Content returns the last document set by the renderer, or the empty
// string when nothing has been rendered.
func (b *BufferContainer) Content() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.content
}

// Resize updates the container's measured size and notifies the
// subscribed renderer, if any.
func (b *BufferContainer) Resize(width, height float64) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.measured = true
	fn := b.onResize
	b.mu.Unlock()
	if fn != nil {
		fn(width, height)
	}
}

// OnResize implements ResizeNotifier. Only one subscription is held at
// a time; a new subscription replaces the previous one.
func (b *BufferContainer) OnResize(fn func(width, height float64)) (cancel func()) {
	b.mu.Lock()
	b.onResize = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		b.onResize = nil
		b.mu.Unlock()
	}
}
