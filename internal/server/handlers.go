package server

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hara/internal/catalog"
	"hara/internal/logging"
	"hara/internal/manifest"
)

type papersResponse struct {
	Count  int             `json:"count"`
	Papers catalog.Catalog `json:"papers"`
}

type paperResponse struct {
	Paper catalog.Record `json:"paper"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "hara"})
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.writeError(w, http.StatusNotFound, "manifest has not been built")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	contentType := "application/json; charset=utf-8"
	if s.format == manifest.FormatYAML {
		contentType = "application/yaml; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := catalog.Query{
		Text:    params.Get("q"),
		Subject: params.Get("subject"),
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		q.Limit = limit
	}

	papers, err := s.source.Search(r.Context(), q)
	if err != nil {
		s.writeSourceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, papersResponse{Count: len(papers), Papers: papers})
}

func (s *Server) handlePaper(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	papers, err := s.source.Search(r.Context(), catalog.Query{})
	if err != nil {
		s.writeSourceError(w, err)
		return
	}
	rec, ok := papers.Find(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "paper not found")
		return
	}
	s.writeJSON(w, http.StatusOK, paperResponse{Paper: rec})
}

func (s *Server) writeSourceError(w http.ResponseWriter, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		s.writeError(w, http.StatusNotFound, "manifest has not been built")
		return
	}
	s.logger.Error("query failed", logging.Error(err))
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
