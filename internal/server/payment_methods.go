package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/internal/store"
)

type createPaymentMethodRequest struct {
	UserID     string  `json:"user_id"`
	MethodType string  `json:"method_type"`
	CardType   *string `json:"card_type,omitempty"`
	LastFour   string  `json:"last_four"`
	Nickname   *string `json:"nickname,omitempty"`
}

func (s *Server) handleCreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req createPaymentMethodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "user_id must be a UUID")
		return
	}
	switch req.MethodType {
	case "credit_card", "debit_card", "bank_account":
	default:
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "method_type must be credit_card, debit_card or bank_account")
		return
	}

	m, err := s.methods.Create(r.Context(), &store.CreatePaymentMethodRequest{
		UserID:     userID,
		MethodType: req.MethodType,
		CardType:   req.CardType,
		LastFour:   req.LastFour,
		Nickname:   req.Nickname,
	})
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}
	methods, err := s.methods.ListByUser(r.Context(), userID)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, methods)
}
