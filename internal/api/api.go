// Package api implements the HTTP interface for building and retrieving
// graph snapshots.
//
// The API wraps the same pipeline Runner the CLI uses: POST a raw input
// set, get back an assembled graph plus its content hash; the snapshot is
// persisted to the configured store and can be fetched later by hash.
package api

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	charmlog "github.com/charmbracelet/log"

	"github.com/BrianMehrman/diagram-builder/pkg/pipeline"
	"github.com/BrianMehrman/diagram-builder/pkg/store"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	Runner *pipeline.Runner
	Store  store.Store
	Logger *charmlog.Logger
}

// NewServer creates a server with the given runner and store.
// A nil runner gets an uncached default; a nil store gets an in-memory one;
// a nil logger discards output.
func NewServer(runner *pipeline.Runner, st store.Store, logger *charmlog.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil)
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = charmlog.NewWithOptions(io.Discard, charmlog.Options{})
	}
	return &Server{Runner: runner, Store: st, Logger: logger}
}

// Router builds the HTTP route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1/graphs", func(r chi.Router) {
		r.Post("/", s.handleBuild)
		r.Get("/", s.handleList)
		r.Get("/{hash}", s.handleGet)
		r.Delete("/{hash}", s.handleDelete)
	})

	return r
}
