package httpapi

import "net/http"

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Get(r.Context(), getUserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(settings))
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsDTO
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid settings payload")
		return
	}

	if err := s.settings.Put(r.Context(), getUserID(r.Context()), req.toModel()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
