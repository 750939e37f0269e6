package host

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cwbudde/spectrum-display/display"
	"github.com/cwbudde/spectrum-display/render/raster"
	"github.com/cwbudde/spectrum-display/render/svg"
)

// Server exposes one display over HTTP. Events are applied one at a time,
// in arrival order.
type Server struct {
	mu      sync.Mutex
	display *display.Display
	surface *svg.Surface
	raster  []raster.Option
	logger  *slog.Logger
	router  *chi.Mux
}

// NewServer returns a preview server for a fresh display.
func NewServer(logger *slog.Logger, opts ...raster.Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		surface: svg.New(),
		raster:  opts,
		logger:  logger,
	}
	s.display = display.New(s.surface)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Post("/events", s.handleEvents)
	r.Get("/scene.svg", s.handleSVG)
	r.Get("/scene.png", s.handlePNG)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := Replay(s.display, r.Body, nil)
	if err != nil {
		s.logger.Warn("rejecting events", "applied", n, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.logger.Debug("events applied", "count", n, "frames", s.display.Frames())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSVG(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	if s.display.Frames() == 0 {
		s.mu.Unlock()
		http.Error(w, "no scene", http.StatusNotFound)
		return
	}
	doc := s.surface.Bytes()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(doc)
}

func (s *Server) handlePNG(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	if s.display.Frames() == 0 {
		s.mu.Unlock()
		http.Error(w, "no scene", http.StatusNotFound)
		return
	}
	sc := s.display.Scene()
	s.mu.Unlock()

	surf := raster.New(s.raster...)
	surf.Configure(sc.Width, sc.Height)
	for _, p := range sc.Primitives {
		surf.Draw(p)
	}

	var buf bytes.Buffer
	if err := surf.EncodePNG(&buf); err != nil {
		s.logger.Error("png render", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}
