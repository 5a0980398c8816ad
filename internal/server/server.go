// Package server exposes the HTTP JSON API: capture ingestion, one-shot
// extraction, listings and exports. Handlers talk to store interfaces and
// never touch the database client directly.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/billsnap/billsnap/internal/async"
	"github.com/billsnap/billsnap/internal/common"
	"github.com/billsnap/billsnap/internal/export"
	"github.com/billsnap/billsnap/internal/extract"
	"github.com/billsnap/billsnap/internal/store"
)

type Server struct {
	logger *slog.Logger

	documents store.DocumentStore
	receipts  store.ReceiptStore
	bills     store.BillStore
	methods   store.PaymentMethodStore
	jobs      store.ExtractJobStore

	queue    async.Queue
	exporter *export.Service

	text   extract.TextExtractor
	fields extract.FieldExtractor

	healthCheck func(ctx context.Context) error
}

type Deps struct {
	Documents store.DocumentStore
	Receipts  store.ReceiptStore
	Bills     store.BillStore
	Methods   store.PaymentMethodStore
	Jobs      store.ExtractJobStore

	Queue    async.Queue
	Exporter *export.Service

	Text   extract.TextExtractor
	Fields extract.FieldExtractor

	// HealthCheck pings the backing store; nil means always healthy.
	HealthCheck func(ctx context.Context) error
}

func New(deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:      logger,
		documents:   deps.Documents,
		receipts:    deps.Receipts,
		bills:       deps.Bills,
		methods:     deps.Methods,
		jobs:        deps.Jobs,
		queue:       deps.Queue,
		exporter:    deps.Exporter,
		text:        deps.Text,
		fields:      deps.Fields,
		healthCheck: deps.HealthCheck,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealthz)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/extract", s.handleExtract)

		r.Route("/documents", func(r chi.Router) {
			r.Post("/", s.handleCreateDocument)
			r.Get("/", s.handleListDocuments)
			r.Get("/{id}", s.handleGetDocument)
			r.Get("/{id}/jobs", s.handleListDocumentJobs)
			r.Post("/{id}/accept", s.handleAcceptDocument)
		})

		r.Get("/receipts", s.handleListReceipts)

		r.Route("/bills", func(r chi.Router) {
			r.Get("/", s.handleListBills)
			r.Patch("/{id}/paid", s.handleMarkBillPaid)
		})

		r.Route("/payment-methods", func(r chi.Router) {
			r.Post("/", s.handleCreatePaymentMethod)
			r.Get("/", s.handleListPaymentMethods)
		})

		r.Route("/export", func(r chi.Router) {
			r.Get("/receipts.csv", s.handleExportReceiptsCSV)
			r.Get("/bills.csv", s.handleExportBillsCSV)
			r.Get("/expenses.csv", s.handleExportExpensesCSV)
			r.Get("/receipts.xlsx", s.handleExportReceiptsXLSX)
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.healthCheck != nil {
		if err := s.healthCheck(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "UNHEALTHY", err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// handleStoreError maps persistence errors onto HTTP statuses without
// exposing internals.
func (s *Server) handleStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, common.ErrNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}
	if errors.Is(err, common.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}
	s.logger.Error("store error", "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}

// query parameter helpers

func queryUserID(r *http.Request) (uuid.UUID, error) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return uuid.Nil, errors.New("user_id is required")
	}
	return uuid.Parse(raw)
}

func queryDate(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
