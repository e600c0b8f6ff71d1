package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cloud-ru/mcp-financing-go/internal/export"
	"github.com/cloud-ru/mcp-financing-go/internal/tools"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"tools": tools.Names(s.tools)})
}

func (s *Server) decodeParams(w http.ResponseWriter, r *http.Request) (map[string]interface{}, error) {
	params := map[string]interface{}{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&params); err != nil {
		return nil, fmt.Errorf("некорректное тело запроса: %w", err)
	}
	return params, nil
}

func (s *Server) invoke(w http.ResponseWriter, r *http.Request, name string, params map[string]interface{}) (interface{}, bool) {
	handler, ok := s.tools[name]
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("неизвестный инструмент %q", name))
		return nil, false
	}

	out, err := handler(r.Context(), params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, tools.ErrInvalidArguments) {
			status = http.StatusBadRequest
		}
		s.log.Warn().Err(err).Str("tool", name).Int("status", status).Msg("Tool call failed")
		s.writeError(w, status, err)
		return nil, false
	}
	return out, true
}

func (s *Server) handleCallTool(w http.ResponseWriter, r *http.Request) {
	params, err := s.decodeParams(w, r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	out, ok := s.invoke(w, r, chi.URLParam(r, "name"), params)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

// handleExport отдает документ файлом, а не JSON с base64
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	params, err := s.decodeParams(w, r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	params["format"] = chi.URLParam(r, "format")

	out, ok := s.invoke(w, r, tools.FinancingExportTool, params)
	if !ok {
		return
	}
	doc, ok := out.(*export.Document)
	if !ok {
		s.writeError(w, http.StatusInternalServerError, errors.New("неожиданный результат экспорта"))
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.Header().Set("X-Document-Id", doc.ID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		s.log.Error().Err(err).Str("document_id", doc.ID).Msg("Failed to write document")
	}
}
