package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

type exportParams struct {
	userID uuid.UUID
	from   *time.Time
	to     *time.Time
}

func (s *Server) exportParams(w http.ResponseWriter, r *http.Request) (exportParams, bool) {
	userID, err := queryUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return exportParams{}, false
	}
	from, err := queryDate(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "from must be YYYY-MM-DD")
		return exportParams{}, false
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "to must be YYYY-MM-DD")
		return exportParams{}, false
	}
	return exportParams{userID: userID, from: from, to: to}, true
}

func (s *Server) handleExportReceiptsCSV(w http.ResponseWriter, r *http.Request) {
	p, ok := s.exportParams(w, r)
	if !ok {
		return
	}
	data, err := s.exporter.ExportReceiptsCSV(r.Context(), p.userID, p.from, p.to)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeAttachment(w, "receipts.csv", "text/csv; charset=utf-8", data)
}

func (s *Server) handleExportBillsCSV(w http.ResponseWriter, r *http.Request) {
	p, ok := s.exportParams(w, r)
	if !ok {
		return
	}
	unpaidOnly := r.URL.Query().Get("unpaid") == "true"
	data, err := s.exporter.ExportBillsCSV(r.Context(), p.userID, p.from, p.to, unpaidOnly)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeAttachment(w, "bills.csv", "text/csv; charset=utf-8", data)
}

func (s *Server) handleExportExpensesCSV(w http.ResponseWriter, r *http.Request) {
	p, ok := s.exportParams(w, r)
	if !ok {
		return
	}
	data, err := s.exporter.ExportExpensesCSV(r.Context(), p.userID, p.from, p.to)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeAttachment(w, "expenses.csv", "text/csv; charset=utf-8", data)
}

func (s *Server) handleExportReceiptsXLSX(w http.ResponseWriter, r *http.Request) {
	p, ok := s.exportParams(w, r)
	if !ok {
		return
	}
	data, err := s.exporter.ExportReceiptsXLSX(r.Context(), p.userID, p.from, p.to)
	if err != nil {
		s.handleStoreError(w, err)
		return
	}
	writeAttachment(w, "receipts.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func writeAttachment(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
