package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/BrianMehrman/diagram-builder/pkg/errors"
	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
	"github.com/BrianMehrman/diagram-builder/pkg/pipeline"
	"github.com/BrianMehrman/diagram-builder/pkg/store"
)

// defaultListLimit bounds unpaginated listing responses.
const defaultListLimit = 20

// =============================================================================
// Request / Response Types
// =============================================================================

// buildResponse is the payload returned after a successful build.
type buildResponse struct {
	Hash      string             `json:"hash"`
	Stats     pipeline.Stats     `json:"stats"`
	CacheInfo pipeline.CacheInfo `json:"cache_info"`
	Graph     ivm.Graph          `json:"graph"`
}

// graphSummary is a listing entry: metadata without the full node set.
type graphSummary struct {
	Hash      string    `json:"hash"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	NodeCount int       `json:"node_count"`
	EdgeCount int       `json:"edge_count"`
}

// errorResponse is the JSON shape of every error the API returns.
type errorResponse struct {
	Error struct {
		Code    errors.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleBuild runs the pipeline over an inline input set and persists the
// resulting snapshot.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, r, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidRequest, err, "malformed request body"))
		return
	}

	// The API only accepts inline inputs; reading server-local files on
	// behalf of a remote caller is a traversal hazard.
	if opts.InputPath != "" {
		s.writeError(w, r, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidRequest, "input_path is not accepted; send input inline"))
		return
	}
	if opts.Input == nil {
		s.writeError(w, r, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidRequest, "input is required"))
		return
	}

	opts.Logger = s.Logger
	result, err := s.Runner.Execute(r.Context(), opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errors.ErrCodeInvalidInput) || errors.Is(err, errors.ErrCodeInvalidStrategy) {
			status = http.StatusBadRequest
		}
		s.writeError(w, r, status, err)
		return
	}

	rec := store.Record{
		Hash:      result.GraphHash,
		Name:      result.Graph.Meta.Name,
		CreatedAt: time.Now().UTC(),
		Graph:     result.Graph,
	}
	if err := s.Store.Save(r.Context(), rec); err != nil {
		s.writeError(w, r, http.StatusBadGateway,
			errors.Wrap(errors.ErrCodeStoreUnavailable, err, "persist graph %s", result.GraphHash))
		return
	}

	writeJSON(w, http.StatusCreated, buildResponse{
		Hash:      result.GraphHash,
		Stats:     result.Stats,
		CacheInfo: result.CacheInfo,
		Graph:     result.Graph,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			s.writeError(w, r, http.StatusBadRequest,
				errors.New(errors.ErrCodeInvalidRequest, "limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	recs, err := s.Store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, http.StatusBadGateway,
			errors.Wrap(errors.ErrCodeStoreUnavailable, err, "list graphs"))
		return
	}

	summaries := make([]graphSummary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, graphSummary{
			Hash:      rec.Hash,
			Name:      rec.Name,
			CreatedAt: rec.CreatedAt,
			NodeCount: rec.Graph.Meta.Stats.TotalNodes,
			EdgeCount: rec.Graph.Meta.Stats.TotalEdges,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	rec, err := s.Store.Get(r.Context(), hash)
	if stderrors.Is(err, store.ErrNotFound) {
		s.writeError(w, r, http.StatusNotFound,
			errors.New(errors.ErrCodeGraphNotFound, "no graph for hash %s", hash))
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusBadGateway,
			errors.Wrap(errors.ErrCodeStoreUnavailable, err, "get graph %s", hash))
		return
	}

	writeJSON(w, http.StatusOK, rec.Graph)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	if err := s.Store.Delete(r.Context(), hash); err != nil {
		s.writeError(w, r, http.StatusBadGateway,
			errors.Wrap(errors.ErrCodeStoreUnavailable, err, "delete graph %s", hash))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Response Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.Logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"err", err)

	var resp errorResponse
	resp.Error.Code = errors.GetCode(err)
	resp.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, resp)
}
