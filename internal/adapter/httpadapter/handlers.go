package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	"github.com/lcarotenuto/questionario-ampasilava/internal/registry"
)

const maxBodyBytes = 1 << 20

// measurementRequest is the body of POST /api/v1/whz. Sex accepts the
// stored labels and short forms such as "M" or "F".
type measurementRequest struct {
	Sex          string  `json:"sex"`
	DeclaredAge  int     `json:"declared_age"`
	EstimatedAge int     `json:"estimated_age"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req measurementRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := s.records.Evaluate(domain.Measurement{
		Sex:          domain.ParseSex(req.Sex),
		DeclaredAge:  req.DeclaredAge,
		EstimatedAge: req.EstimatedAge,
		HeightCm:     req.Height,
		WeightKg:     req.Weight,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, a)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.records.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if recs == nil {
		recs = []domain.Record{}
	}
	sharedobs.WriteJSON(w, http.StatusOK, recs)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var rec domain.Record
	if !decodeBody(w, r, &rec) {
		return
	}
	entry, err := s.records.Create(r.Context(), rec)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Location", "/api/v1/records/"+entry.Record.Taratassi)
	sharedobs.WriteJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	entry, err := s.records.Get(r.Context(), r.PathValue("taratassi"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, entry)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var rec domain.Record
	if !decodeBody(w, r, &rec) {
		return
	}
	entry, err := s.records.Update(r.Context(), r.PathValue("taratassi"), rec)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, entry)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="risultati.csv"`)
	if _, err := s.records.Export(r.Context(), w, r.URL.Query().Get("q")); err != nil {
		// headers are gone once rows have been written
		s.logger.Error("export failed", "error", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid JSON body: %v", err)})
		return false
	}
	return true
}

// writeError maps service errors to status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		sharedobs.WriteJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, registry.ErrNotFound):
		sharedobs.WriteJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, registry.ErrDuplicateTaratassi):
		sharedobs.WriteJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed", "error", err)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
