package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/constants"
	"github.com/billsnap/billsnap/internal/async"
	"github.com/billsnap/billsnap/internal/common"
	"github.com/billsnap/billsnap/internal/entity"
	"github.com/billsnap/billsnap/internal/export"
	"github.com/billsnap/billsnap/internal/extract"
	"github.com/billsnap/billsnap/internal/store"
)

type memDocuments struct {
	docs map[uuid.UUID]*entity.Document
}

func (m *memDocuments) Create(_ context.Context, req *store.CreateDocumentRequest) (*entity.Document, error) {
	if err := constants.ValidateImageName(req.FileName); err != nil {
		return nil, err
	}
	d := &entity.Document{
		ID:           uuid.New(),
		UserID:       req.UserID,
		FileName:     req.FileName,
		DocumentType: constants.DocumentTypeOther,
		Status:       constants.DocumentStatusDraft,
		Notes:        req.Notes,
	}
	m.docs[d.ID] = d
	return d, nil
}

func (m *memDocuments) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	return d, nil
}

func (m *memDocuments) ListByUser(_ context.Context, userID uuid.UUID, docType *constants.DocumentType, status *constants.DocumentStatus) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range m.docs {
		if d.UserID != userID {
			continue
		}
		if docType != nil && d.DocumentType != *docType {
			continue
		}
		if status != nil && d.Status != *status {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *memDocuments) ApplyDraftFields(_ context.Context, id uuid.UUID, _ store.DraftFields) (*entity.Document, error) {
	return m.docs[id], nil
}

func (m *memDocuments) SetStatus(_ context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	m.docs[id].Status = status
	return nil
}

type memReceipts struct {
	receipts []*entity.Receipt
}

func (m *memReceipts) ListByUser(_ context.Context, userID uuid.UUID, _, _ *time.Time) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range m.receipts {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReceipts) Upsert(_ context.Context, req *store.CreateReceiptRequest) (*entity.Receipt, error) {
	r := &entity.Receipt{ID: uuid.New(), UserID: req.UserID, DocumentID: req.DocumentID, VendorName: req.VendorName, Amount: req.Amount, ReceiptDate: req.ReceiptDate}
	m.receipts = append(m.receipts, r)
	return r, nil
}

func (m *memReceipts) GetByDocumentID(context.Context, uuid.UUID) (*entity.Receipt, error) {
	return nil, common.ErrNotFound
}

type memBills struct {
	bills map[uuid.UUID]*entity.Bill
}

func (m *memBills) ListByUser(_ context.Context, userID uuid.UUID, _, _ *time.Time, unpaidOnly bool) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for _, b := range m.bills {
		if b.UserID != userID {
			continue
		}
		if unpaidOnly && b.Paid {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *memBills) Upsert(_ context.Context, req *store.CreateBillRequest) (*entity.Bill, error) {
	b := &entity.Bill{ID: uuid.New(), UserID: req.UserID, DocumentID: req.DocumentID, VendorName: req.VendorName, Amount: req.Amount, DueDate: req.DueDate}
	m.bills[b.ID] = b
	return b, nil
}

func (m *memBills) GetByDocumentID(context.Context, uuid.UUID) (*entity.Bill, error) {
	return nil, common.ErrNotFound
}

func (m *memBills) MarkPaid(_ context.Context, id uuid.UUID, paidDate time.Time) (*entity.Bill, error) {
	b, ok := m.bills[id]
	if !ok {
		return nil, fmt.Errorf("bill %s: %w", id, common.ErrNotFound)
	}
	b.Paid = true
	b.PaidDate = &paidDate
	return b, nil
}

type memMethods struct {
	methods []*entity.PaymentMethod
}

func (m *memMethods) Create(_ context.Context, req *store.CreatePaymentMethodRequest) (*entity.PaymentMethod, error) {
	pm := &entity.PaymentMethod{ID: uuid.New(), UserID: req.UserID, MethodType: req.MethodType, CardType: req.CardType, LastFour: req.LastFour, Nickname: req.Nickname}
	m.methods = append(m.methods, pm)
	return pm, nil
}

func (m *memMethods) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, pm := range m.methods {
		if pm.UserID == userID {
			out = append(out, pm)
		}
	}
	return out, nil
}

func (m *memMethods) FindByLastFour(context.Context, uuid.UUID, string) (*entity.PaymentMethod, error) {
	return nil, nil
}

type memJobs struct{}

func (memJobs) Start(context.Context, uuid.UUID) (*entity.ExtractJob, error) {
	return nil, errors.New("not implemented")
}
func (memJobs) FinishOCRSuccess(context.Context, uuid.UUID, string) error      { return nil }
func (memJobs) FinishFailure(context.Context, uuid.UUID, string) error         { return nil }
func (memJobs) GetByID(context.Context, uuid.UUID) (*entity.ExtractJob, error) { return nil, nil }
func (memJobs) FinishParseSuccess(context.Context, uuid.UUID, map[string]any, float32, bool) error {
	return nil
}
func (memJobs) ListByDocument(context.Context, uuid.UUID) ([]*entity.ExtractJob, error) {
	return []*entity.ExtractJob{}, nil
}

type recordingQueue struct {
	jobs []async.Job
}

func (q *recordingQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

type fixedText struct{ text string }

func (f fixedText) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: f.text, Method: "fake"}, nil
}

type testEnv struct {
	srv     http.Handler
	docs    *memDocuments
	bills   *memBills
	queue   *recordingQueue
	methods *memMethods
}

func newTestEnv(ocrText string) *testEnv {
	logger := slog.New(slog.DiscardHandler)
	docs := &memDocuments{docs: make(map[uuid.UUID]*entity.Document)}
	recs := &memReceipts{}
	bills := &memBills{bills: make(map[uuid.UUID]*entity.Bill)}
	methods := &memMethods{}
	queue := &recordingQueue{}
	exporter := export.NewService(recs, bills, methods, logger)

	s := New(Deps{
		Documents: docs,
		Receipts:  recs,
		Bills:     bills,
		Methods:   methods,
		Jobs:      memJobs{},
		Queue:     queue,
		Exporter:  exporter,
		Text:      fixedText{text: ocrText},
		Fields:    extract.HeuristicFieldExtractor{},
	}, logger)
	return &testEnv{srv: s.Routes(), docs: docs, bills: bills, queue: queue, methods: methods}
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthz(t *testing.T) {
	env := newTestEnv("")
	rr := doJSON(t, env.srv, http.MethodGet, "/healthz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestExtractFromText(t *testing.T) {
	env := newTestEnv("")
	body := `{"text":"Duke Energy\nAccount Number: 9876543210\nAmount Due: $125.50\nPayment Due Date: 06/15/2024"}`
	rr := doJSON(t, env.srv, http.MethodPost, "/v1/extract", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["vendor_name"] != "Duke Energy" {
		t.Errorf("vendor_name = %v", got["vendor_name"])
	}
	if got["amount"] != 125.5 {
		t.Errorf("amount = %v", got["amount"])
	}
	if got["is_bill"] != true {
		t.Errorf("is_bill = %v", got["is_bill"])
	}
	if got["due_date"] != "2024-06-15" {
		t.Errorf("due_date = %v", got["due_date"])
	}
}

func TestExtractFromImageRunsOCR(t *testing.T) {
	env := newTestEnv("KFB\nTotal: $45.00\nDate: 05/01/2024")
	rr := doJSON(t, env.srv, http.MethodPost, "/v1/extract", `{"image_base64":"aW1n"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var got map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	if got["vendor_name"] != "KFB" {
		t.Errorf("vendor_name = %v", got["vendor_name"])
	}
}

func TestExtractRequiresInput(t *testing.T) {
	env := newTestEnv("")
	rr := doJSON(t, env.srv, http.MethodPost, "/v1/extract", `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestCreateDocumentQueuesJob(t *testing.T) {
	env := newTestEnv("")
	userID := uuid.New()
	body := fmt.Sprintf(`{"user_id":%q,"file_name":"bill.jpg","image_base64":"aW1n"}`, userID)
	rr := doJSON(t, env.srv, http.MethodPost, "/v1/documents", body)
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var doc entity.Document
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Status != constants.DocumentStatusDraft {
		t.Errorf("status = %s, want DRAFT", doc.Status)
	}
	if len(env.queue.jobs) != 1 {
		t.Fatalf("queued jobs = %d, want 1", len(env.queue.jobs))
	}
	if env.queue.jobs[0].DocumentID != doc.ID {
		t.Errorf("queued wrong document")
	}
}

func TestCreateDocumentRejectsBadExtension(t *testing.T) {
	env := newTestEnv("")
	body := fmt.Sprintf(`{"user_id":%q,"file_name":"notes.pdf","image_base64":"aW1n"}`, uuid.New())
	rr := doJSON(t, env.srv, http.MethodPost, "/v1/documents", body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if len(env.queue.jobs) != 0 {
		t.Errorf("job queued for rejected document")
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	env := newTestEnv("")
	rr := doJSON(t, env.srv, http.MethodGet, "/v1/documents/"+uuid.NewString(), "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestAcceptDocument(t *testing.T) {
	env := newTestEnv("")
	doc, _ := env.docs.Create(context.Background(), &store.CreateDocumentRequest{UserID: uuid.New(), FileName: "r.jpg"})

	rr := doJSON(t, env.srv, http.MethodPost, "/v1/documents/"+doc.ID.String()+"/accept", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if env.docs.docs[doc.ID].Status != constants.DocumentStatusProcessed {
		t.Errorf("status = %s, want PROCESSED", env.docs.docs[doc.ID].Status)
	}

	// accepting twice conflicts
	rr = doJSON(t, env.srv, http.MethodPost, "/v1/documents/"+doc.ID.String()+"/accept", "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("second accept status = %d, want 409", rr.Code)
	}
}

func TestListReceiptsRequiresUserID(t *testing.T) {
	env := newTestEnv("")
	rr := doJSON(t, env.srv, http.MethodGet, "/v1/receipts", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestMarkBillPaid(t *testing.T) {
	env := newTestEnv("")
	userID := uuid.New()
	b, _ := env.bills.Upsert(context.Background(), &store.CreateBillRequest{
		UserID: userID, DocumentID: uuid.New(), VendorName: "Verizon", Amount: 89.99,
		DueDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	rr := doJSON(t, env.srv, http.MethodPatch, "/v1/bills/"+b.ID.String()+"/paid", `{"paid_date":"2024-06-28"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var got entity.Bill
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	if !got.Paid {
		t.Errorf("bill not marked paid")
	}
	if got.PaidDate == nil || got.PaidDate.Format("2006-01-02") != "2024-06-28" {
		t.Errorf("paid_date = %v", got.PaidDate)
	}

	rr = doJSON(t, env.srv, http.MethodPatch, "/v1/bills/"+uuid.NewString()+"/paid", `{}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing bill status = %d, want 404", rr.Code)
	}
}

func TestCreatePaymentMethodValidation(t *testing.T) {
	env := newTestEnv("")
	body := fmt.Sprintf(`{"user_id":%q,"method_type":"crypto","last_four":"1111"}`, uuid.New())
	rr := doJSON(t, env.srv, http.MethodPost, "/v1/payment-methods", body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	body = fmt.Sprintf(`{"user_id":%q,"method_type":"credit_card","last_four":"1111","nickname":"personal visa"}`, uuid.New())
	rr = doJSON(t, env.srv, http.MethodPost, "/v1/payment-methods", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
}

func TestExportReceiptsCSV(t *testing.T) {
	env := newTestEnv("")
	userID := uuid.New()
	rr := doJSON(t, env.srv, http.MethodGet, "/v1/export/receipts.csv?user_id="+userID.String(), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.HasPrefix(rr.Body.String(), "Vendor,Amount,Date") {
		t.Errorf("body = %q", rr.Body.String())
	}
}
