package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/tagbind/tagbind/internal/markup"
)

type bindRequest struct {
	Format string `json:"format"` // "html" (default) or "markdown"
	Source string `json:"source"`
}

func (s *Server) handleBind(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req bindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	bound, err := s.bindSource(req)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"prefix":   s.binder.Prefix(),
		"count":    len(bound),
		"bindings": bound,
	})
}

type batchBindRequest struct {
	Documents []struct {
		Name string `json:"name"`
		bindRequest
	} `json:"documents"`
}

// handleBatchBind binds several documents in one call. A document that fails
// to parse reports its error inline; the batch itself still succeeds.
func (s *Server) handleBatchBind(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes*10)

	var req batchBindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Documents) == 0 {
		jsonError(w, "at least one document is required", http.StatusBadRequest)
		return
	}

	results := make([]map[string]any, 0, len(req.Documents))
	for i, doc := range req.Documents {
		name := doc.Name
		if name == "" {
			name = fmt.Sprintf("document-%d", i)
		}
		bound, err := s.bindSource(doc.bindRequest)
		if err != nil {
			results = append(results, map[string]any{
				"name":  name,
				"error": err.Error(),
			})
			continue
		}
		results = append(results, map[string]any{
			"name":     name,
			"count":    len(bound),
			"bindings": bound,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": results})
}

func (s *Server) bindSource(req bindRequest) ([]markup.BoundTag, error) {
	if req.Source == "" {
		return nil, fmt.Errorf("source is required")
	}
	src := req.Source
	switch req.Format {
	case "", "html":
	case "markdown", "md":
		rendered, err := markup.RenderMarkdown([]byte(src))
		if err != nil {
			return nil, err
		}
		src = string(rendered)
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}
	return markup.BindDocument(s.binder, strings.NewReader(src))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
