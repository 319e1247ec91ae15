// Package shakufu renders shakuhachi notation as vertical,
// right-to-left columns of glyphs with attached pitch and technique
// annotations, serialized to SVG.
//
// # Overview
//
// The pipeline runs interchange score data through four stages: score
// notes become renderable notation notes with annotations attached,
// the annotation configurator applies global presentation policy, the
// column layout calculator computes every column and note position,
// and the renderer draws the result through a fresh canvas.
//
// # Quick Start
//
//	container := shakufu.NewBufferContainer(800, 600)
//	r := shakufu.New(container)
//	defer r.Destroy()
//
//	sc, err := score.Unmarshal(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := r.RenderFromScoreData(sc); err != nil {
//		log.Fatal(err)
//	}
//	svg := container.Content()
//
// # Rendering Model
//
// Every public render entry point is synchronous and runs to
// completion: each call clears the container and rebuilds the whole
// document, so there is never a half-drawn state. Containers that
// report size changes trigger the same render path, coalesced so that
// rapid notifications collapse to the final size.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Options, Container (this package)
//   - canvas: SVG drawing surface
//   - score: interchange data model and decoding
//   - notation: renderable notes, annotations, configurator
//   - layout: pure column layout calculator
//   - server: HTTP render endpoint
package shakufu

// Version is the current version of the library.
const Version = "0.3.0"
