// Package server exposes the notation renderer over HTTP for the
// document-sharing platform and third-party embedders.
//
// POST /render accepts an interchange score as JSON and responds with
// the rendered SVG document. Rendering is stateless: every request gets
// its own renderer and buffer container, so requests never share
// mutable state.
package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/hogaku/shakufu"
	"github.com/hogaku/shakufu/internal/logging"
	"github.com/hogaku/shakufu/score"
)

// maxBodyBytes bounds the accepted request body size.
const maxBodyBytes = 4 << 20

// Server renders scores on demand.
type Server struct {
	defaults []shakufu.Option
}

// New creates a Server. The given options are the base configuration
// for every render; per-request query parameters override the viewport.
func New(opts ...shakufu.Option) *Server {
	return &Server{defaults: opts}
}

// Handler returns the HTTP handler: a gorilla/mux router wrapped with
// permissive CORS so third-party pages can embed rendered scores.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/render", s.handleRender).Methods(http.MethodPost)
	router.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok")
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	log := logging.Logger().With("request_id", requestID)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		log.Warn("render: body read failed", "error", err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	sc, err := score.Unmarshal(body)
	if err != nil {
		log.Warn("render: rejected score", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts, err := s.requestOptions(r)
	if err != nil {
		log.Warn("render: bad query", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	container := shakufu.NewBufferContainer(shakufu.DefaultWidth, shakufu.DefaultHeight)
	renderer := shakufu.New(container, opts...)
	defer renderer.Destroy()

	if err := renderer.RenderFromScoreData(sc); err != nil {
		// Validation already passed in Unmarshal; anything here is a
		// server-side failure.
		log.Warn("render: failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	svg := container.Content()
	log.Info("render: ok", "title", sc.Title, "notes", len(sc.Notes), "bytes", len(svg))
	w.Header().Set("Content-Type", "image/svg+xml")
	io.WriteString(w, svg)
}

// requestOptions merges per-request query parameters over the server's
// base options. Renderers on the server never auto-resize; the request
// defines the viewport once.
func (s *Server) requestOptions(r *http.Request) ([]shakufu.Option, error) {
	opts := append([]shakufu.Option{}, s.defaults...)
	opts = append(opts, shakufu.WithAutoResize(false))

	q := r.URL.Query()
	widthStr, heightStr := q.Get("width"), q.Get("height")
	if widthStr == "" && heightStr == "" {
		return opts, nil
	}
	if widthStr == "" || heightStr == "" {
		return nil, fmt.Errorf("width and height must be given together")
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil || width <= 0 {
		return nil, fmt.Errorf("invalid width %q", widthStr)
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil || height <= 0 {
		return nil, fmt.Errorf("invalid height %q", heightStr)
	}
	return append(opts, shakufu.WithSize(width, height)), nil
}
