package server

import (
	"net/http"
	"time"
)

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
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
	unpaidOnly := r.URL.Query().Get("unpaid") == "true"

	bills, err := s.bills.ListByUser(r.Context(), userID, from, to, unpaidOnly)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

type markPaidRequest struct {
	PaidDate string `json:"paid_date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (s *Server) handleMarkBillPaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "id must be a UUID")
		return
	}

	var req markPaidRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}

	paidDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.PaidDate != "" {
		paidDate, err = time.Parse("2006-01-02", req.PaidDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", "paid_date must be YYYY-MM-DD")
			return
		}
	}

	bill, err := s.bills.MarkPaid(r.Context(), id, paidDate)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}
