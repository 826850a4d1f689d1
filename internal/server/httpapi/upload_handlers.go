package httpapi

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handlePresignPut(w http.ResponseWriter, r *http.Request) {
	// The content type is advisory; the client sets it on the PUT itself.
	var req presignPutRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	key, url, err := s.uploads.GetPresignedPutURL(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, presignPutResponse{Key: key, URL: url})
}

func (s *Server) handlePresignGet(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeErrorMsg(w, http.StatusBadRequest, "key is required")
		return
	}

	url, err := s.uploads.GetPresignedGetURL(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, presignGetResponse{URL: url})
}
