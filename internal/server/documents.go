package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/constants"
	"github.com/billsnap/billsnap/internal/async"
	"github.com/billsnap/billsnap/internal/store"
)

type createDocumentRequest struct {
	UserID      string  `json:"user_id"`
	FileName    string  `json:"file_name"`
	ImageBase64 string  `json:"image_base64"`
	Notes       *string `json:"notes,omitempty"`
}

// handleCreateDocument registers a capture and queues it for background
// processing. The response carries the fresh DRAFT document; extraction
// results land on it asynchronously.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "user_id must be a UUID")
		return
	}
	if strings.TrimSpace(req.ImageBase64) == "" {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "image_base64 is required")
		return
	}

	doc, err := s.documents.Create(r.Context(), &store.CreateDocumentRequest{
		UserID:   userID,
		FileName: req.FileName,
		Notes:    req.Notes,
	})
	if err != nil {
		if strings.Contains(err.Error(), "unsupported image extension") {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
			return
		}
		s.handleStoreError(w, err)
		return
	}

	if err := s.queue.Enqueue(r.Context(), async.Job{
		DocumentID:  doc.ID,
		ImageBase64: req.ImageBase64,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.handleStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, doc)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	var docType *constants.DocumentType
	if raw := r.URL.Query().Get("type"); raw != "" {
		t := constants.DocumentType(strings.ToUpper(raw))
		docType = &t
	}
	var status *constants.DocumentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := constants.DocumentStatus(strings.ToUpper(raw))
		status = &st
	}

	docs, err := s.documents.ListByUser(r.Context(), userID, docType, status)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "id must be a UUID")
		return
	}
	doc, err := s.documents.GetByID(r.Context(), id)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleListDocumentJobs(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "id must be a UUID")
		return
	}
	jobs, err := s.jobs.ListByDocument(r.Context(), id)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// handleAcceptDocument moves a reviewed draft to PROCESSED.
func (s *Server) handleAcceptDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "id must be a UUID")
		return
	}
	doc, err := s.documents.GetByID(r.Context(), id)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	if doc.Status != constants.DocumentStatusDraft {
		writeError(w, http.StatusConflict, "NOT_DRAFT", "document is not in DRAFT")
		return
	}
	if err := s.documents.SetStatus(r.Context(), id, constants.DocumentStatusProcessed); err != nil {
		s.handleStoreError(w, err)
		return
	}
	doc.Status = constants.DocumentStatusProcessed
	writeJSON(w, http.StatusOK, doc)
}
