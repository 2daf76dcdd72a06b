package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/core/geom"
	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/core/scene"
	apperrors "github.com/boardkit/boardkit/pkg/errors"
	"github.com/boardkit/boardkit/pkg/pipeline"
)

// artifactContentTypes maps render formats to response content types.
var artifactContentTypes = map[string]string{
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// =============================================================================
// Health
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// Board CRUD
// =============================================================================

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"boards": ids})
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, b)
}

func (s *Server) handlePutBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := apperrors.ValidateBoardID(id); err != nil {
		s.writeError(w, err)
		return
	}

	b, err := board.Read(r.Body)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidBoard, err, "malformed board document"))
		return
	}
	// Reject documents that cannot form a valid object tree.
	if _, err := board.ToScene(b); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Put(r.Context(), id, b); err != nil {
		s.writeError(w, err)
		return
	}
	s.invalidateBoard(r, id)
	s.writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.invalidateBoard(r, id)
	w.WriteHeader(http.StatusNoContent)
}

// invalidateBoard drops the cached board document after a write so the next
// pipeline run reloads from the store.
func (s *Server) invalidateBoard(r *http.Request, id string) {
	if err := s.runner.Cache.Delete(r.Context(), s.runner.Keyer.BoardKey(id)); err != nil {
		s.logger.Warn("invalidate board cache", "id", id, "error", err)
	}
}

// =============================================================================
// Pipeline
// =============================================================================

// pipelineResponse mirrors [pipeline.Result] in a JSON-friendly shape.
// Artifact bytes are base64-encoded by encoding/json.
type pipelineResponse struct {
	Board     board.Board        `json:"board"`
	BoardHash string             `json:"board_hash"`
	Artifacts map[string][]byte  `json:"artifacts"`
	CacheInfo pipeline.CacheInfo `json:"cache_info"`
}

func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "malformed pipeline options"))
		return
	}
	opts.BoardID = id
	opts.Path = ""
	opts.Store = s.store

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, pipelineResponse{
		Board:     result.Board,
		BoardHash: result.BoardHash,
		Artifacts: result.Artifacts,
		CacheInfo: result.CacheInfo,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "unsupported format %q", format))
		return
	}

	opts := pipeline.Options{
		BoardID:  id,
		Store:    s.store,
		Formats:  []string{format},
		Detailed: r.URL.Query().Get("detailed") == "true",
	}
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", artifactContentTypes[format])
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Artifacts[format]); err != nil {
		s.logger.Error("write artifact", "format", format, "error", err)
	}
}

// =============================================================================
// Spatial Interaction
// =============================================================================

func (s *Server) handleHitTest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "x and y query parameters are required integers"))
		return
	}

	b, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sc, err := board.ToScene(b)
	if err != nil {
		s.writeError(w, err)
		return
	}

	hit := scene.FindObjectAtPoint(sc.Roots(), x, y, nil)
	if hit == nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeObjectNotFound, "no object at %d,%d", x, y))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"id": hit.ID, "name": hit.Name})
}

// reparentRequest moves an object under a new parent. An empty parent_id
// moves the object to the root collection.
type reparentRequest struct {
	ParentID string `json:"parent_id"`
	Index    int    `json:"index"`
}

func (s *Server) handleReparent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	oid := chi.URLParam(r, "oid")

	var req reparentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "malformed reparent request"))
		return
	}

	b, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sc, err := board.ToScene(b)
	if err != nil {
		s.writeError(w, err)
		return
	}

	obj := sc.FindObjectByID(oid)
	if obj == nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeObjectNotFound, "object %q not in board", oid))
		return
	}
	var parent *scene.Object
	if req.ParentID != "" {
		if parent = sc.FindObjectByID(req.ParentID); parent == nil {
			s.writeError(w, apperrors.New(apperrors.ErrCodeObjectNotFound, "parent %q not in board", req.ParentID))
			return
		}
	}

	if err := sc.Reparent(obj, parent, req.Index); err != nil {
		s.writeError(w, err)
		return
	}
	pipeline.LayoutScene(sc)

	updated := board.FromScene(sc, b.Name, b.Canvas, b.Guides)
	if err := s.store.Put(r.Context(), id, updated); err != nil {
		s.writeError(w, err)
		return
	}
	s.invalidateBoard(r, id)
	s.writeJSON(w, http.StatusOK, updated)
}

// snapRequest carries one pointer-move snap query. Config, when present,
// overrides the server's snap configuration for this query only.
type snapRequest struct {
	Moving       geom.Rect          `json:"moving"`
	Others       []geom.Rect        `json:"others,omitempty"`
	CanvasWidth  int                `json:"canvas_width"`
	CanvasHeight int                `json:"canvas_height"`
	Container    *geom.Rect         `json:"container,omitempty"`
	Guides       []guides.UserGuide `json:"guides,omitempty"`
	Config       *guides.Config     `json:"config,omitempty"`
}

func (s *Server) handleSnap(w http.ResponseWriter, r *http.Request) {
	var req snapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "malformed snap request"))
		return
	}

	cfg := s.snap
	if req.Config != nil {
		cfg = *req.Config
	}

	// A fresh engine per request keeps the handler safe for concurrent use.
	engine := guides.NewEngine(cfg)
	result := engine.Snap(req.Moving, req.Others, req.CanvasWidth, req.CanvasHeight, req.Container, req.Guides)
	s.writeJSON(w, http.StatusOK, result)
}
