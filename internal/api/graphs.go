package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/planvista/topograph/pkg/errors"
	"github.com/planvista/topograph/pkg/graph"
	"github.com/planvista/topograph/pkg/store"
)

// saveGraphRequest is the body of POST /api/v1/graphs.
type saveGraphRequest struct {
	Name       string            `json:"name"`
	Graph      graph.Graph       `json:"graph"`
	Collisions []graph.Collision `json:"collisions,omitempty"`
}

func (s *Server) handleSaveGraph(w http.ResponseWriter, r *http.Request) {
	var req saveGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "decode save request"))
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidGraph, "name is required"))
		return
	}
	for _, e := range req.Graph.Edges {
		if !req.Graph.HasNode(e.Source) || !req.Graph.HasNode(e.Target) {
			writeError(w, http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidGraph,
				"edge %s references a node outside the graph", e.ID))
			return
		}
	}

	rec, err := s.store.Save(r.Context(), req.Name, req.Graph, req.Collisions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, apperrors.Wrap(apperrors.ErrCodeStorage, err, "save graph"))
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, apperrors.Wrap(apperrors.ErrCodeStorage, err, "list graphs"))
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, apperrors.New(apperrors.ErrCodeGraphNotFound, "graph %s not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, apperrors.Wrap(apperrors.ErrCodeStorage, err, "get graph"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, apperrors.New(apperrors.ErrCodeGraphNotFound, "graph %s not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, apperrors.Wrap(apperrors.ErrCodeStorage, err, "delete graph"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
