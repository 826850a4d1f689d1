package httpapi

import (
	"net/http"
	"strconv"

	"github.com/daybookapp/daybook/internal/server/models"
	"github.com/daybookapp/daybook/internal/server/repositories/entries"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleSaveEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "date is required")
		return
	}

	entry := &models.Entry{
		Date:       req.Date,
		Content:    req.Content,
		Mood:       req.Mood,
		Weather:    req.Weather,
		Images:     req.Images,
		AudioNotes: req.AudioNotes,
	}
	saved, err := s.entries.Save(r.Context(), getUserID(r.Context()), entry)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(saved))
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := entries.Filter{
		StartDate:   q.Get("startDate"),
		EndDate:     q.Get("endDate"),
		SearchQuery: q.Get("search"),
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeErrorMsg(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		f.Limit = n
	}
	partner := q.Get("partner") == "true"

	list, err := s.entries.List(r.Context(), getUserID(r.Context()), partner, f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]entryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	partner := r.URL.Query().Get("partner") == "true"
	entry, err := s.entries.Get(r.Context(), getUserID(r.Context()), partner, date)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := s.entries.Delete(r.Context(), getUserID(r.Context()), date); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
