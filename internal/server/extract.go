package server

import (
	"net/http"
	"strings"
)

type extractRequest struct {
	ImageBase64 string `json:"image_base64,omitempty"`
	// Text bypasses OCR; the extraction core runs directly over it.
	Text string `json:"text,omitempty"`
}

// handleExtract runs one-shot extraction without persisting anything:
// image (or raw text) in, structured fields out.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}

	text := req.Text
	if text == "" {
		if strings.TrimSpace(req.ImageBase64) == "" {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", "image_base64 or text is required")
			return
		}
		res, err := s.text.Extract(r.Context(), req.ImageBase64)
		if err != nil {
			s.logger.Error("extract.ocr.failed", "error", err)
			writeError(w, http.StatusBadGateway, "OCR_FAILED", "text recognition failed")
			return
		}
		text = res.Text
	}

	result := s.fields.ExtractFields(text)
	writeJSON(w, http.StatusOK, result)
}
