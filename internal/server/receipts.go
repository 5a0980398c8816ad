package server

import "net/http"

func (s *Server) handleListReceipts(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}
	from, err := queryDate(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "from must be YYYY-MM-DD")
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "to must be YYYY-MM-DD")
		return
	}

	recs, err := s.receipts.ListByUser(r.Context(), userID, from, to)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}
