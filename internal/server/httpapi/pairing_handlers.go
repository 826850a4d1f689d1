package httpapi

import "net/http"

func (s *Server) handleGetPartner(w http.ResponseWriter, r *http.Request) {
	username, err := s.pairing.Partner(r.Context(), getUserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, partnerResponse{Username: username})
}

func (s *Server) handleCreateInvite(w http.ResponseWriter, r *http.Request) {
	code, err := s.pairing.CreateInvite(r.Context(), getUserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, inviteResponse{Code: code})
}

func (s *Server) handleAcceptInvite(w http.ResponseWriter, r *http.Request) {
	var req acceptInviteRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "code is required")
		return
	}

	if err := s.pairing.AcceptInvite(r.Context(), getUserID(r.Context()), req.Code); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleRemovePartner(w http.ResponseWriter, r *http.Request) {
	if err := s.pairing.RemovePartner(r.Context(), getUserID(r.Context())); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
