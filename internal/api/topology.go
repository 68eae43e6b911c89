package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/planvista/topograph/pkg/builder"
	"github.com/planvista/topograph/pkg/cache"
	apperrors "github.com/planvista/topograph/pkg/errors"
	"github.com/planvista/topograph/pkg/graph"
	"github.com/planvista/topograph/pkg/inventory"
)

// topologyResponse is the transform result handed to the rendering surface.
type topologyResponse struct {
	Nodes      []graph.Node      `json:"nodes"`
	Edges      []graph.Edge      `json:"edges"`
	Collisions []graph.Collision `json:"collisions,omitempty"`
}

func toResponse(res builder.Result) topologyResponse {
	return topologyResponse{
		Nodes:      res.Graph.Nodes,
		Edges:      res.Graph.Edges,
		Collisions: res.Collisions,
	}
}

func (s *Server) handleVSphere(w http.ResponseWriter, r *http.Request) {
	s.handleTransform(w, r, inventory.SourceVSphere)
}

func (s *Server) handleHardware(w http.ResponseWriter, r *http.Request) {
	s.handleTransform(w, r, inventory.SourceHardware)
}

// handleTransform is the shared body of both transform endpoints: decode,
// consult the cache, build, respond.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request, kind inventory.SourceKind) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidInventory, err, "read request body"))
		return
	}
	defer r.Body.Close()

	opts, err := parseOptions(r, s.layout, kind == inventory.SourceHardware)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	key := cache.TransformKey(string(kind), body, opts)
	if cached, hit, cerr := s.cache.Get(r.Context(), key); cerr == nil && hit {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(cached)
		return
	}

	src := builder.Source{Kind: kind}
	switch kind {
	case inventory.SourceHardware:
		src.Hardware, err = inventory.DecodeHardware(bytes.NewReader(body))
	default:
		src.VSphere, err = inventory.DecodeVSphere(bytes.NewReader(body))
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidInventory, err, "decode %s payload", kind))
		return
	}

	resp := toResponse(builder.Build(src, opts))

	data, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode response"))
		return
	}
	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		s.logger.Warn("cache transform result", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// mergeRequest carries previously built graphs to combine, in merge order.
type mergeRequest struct {
	Sources []graph.Graph `json:"sources"`
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "decode merge request"))
		return
	}

	merged, collisions := graph.Merge(req.Sources...)
	writeJSON(w, http.StatusOK, topologyResponse{
		Nodes:      merged.Nodes,
		Edges:      merged.Edges,
		Collisions: collisions,
	})
}
