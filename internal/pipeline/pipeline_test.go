package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/constants"
	"github.com/billsnap/billsnap/internal/entity"
	"github.com/billsnap/billsnap/internal/extract"
	"github.com/billsnap/billsnap/internal/store"
)

const billText = `Duke Energy
Account Number: 9876543210
Statement Date: 05/20/2024
Amount Due: $125.50
Payment Due Date: 06/15/2024`

type stubDocuments struct {
	docs map[uuid.UUID]*entity.Document
}

func newStubDocuments(docs ...*entity.Document) *stubDocuments {
	m := make(map[uuid.UUID]*entity.Document)
	for _, d := range docs {
		m[d.ID] = d
	}
	return &stubDocuments{docs: m}
}

func (s *stubDocuments) Create(_ context.Context, req *store.CreateDocumentRequest) (*entity.Document, error) {
	d := &entity.Document{ID: uuid.New(), UserID: req.UserID, FileName: req.FileName}
	s.docs[d.ID] = d
	return d, nil
}

func (s *stubDocuments) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := s.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return d, nil
}

func (s *stubDocuments) ListByUser(context.Context, uuid.UUID, *constants.DocumentType, *constants.DocumentStatus) ([]*entity.Document, error) {
	return nil, nil
}

func (s *stubDocuments) ApplyDraftFields(_ context.Context, id uuid.UUID, fields store.DraftFields) (*entity.Document, error) {
	d, ok := s.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	if fields.VendorName != nil {
		d.VendorName = fields.VendorName
	}
	if fields.Amount != nil {
		d.Amount = fields.Amount
	}
	if fields.DocumentDate != nil {
		d.DocumentDate = fields.DocumentDate
	}
	if fields.PaymentMethodID != nil {
		d.PaymentMethodID = fields.PaymentMethodID
	}
	if fields.DocumentType != "" {
		d.DocumentType = fields.DocumentType
	}
	return d, nil
}

func (s *stubDocuments) SetStatus(_ context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	s.docs[id].Status = status
	return nil
}

type stubJobs struct {
	jobs map[uuid.UUID]*entity.ExtractJob
}

func newStubJobs() *stubJobs {
	return &stubJobs{jobs: make(map[uuid.UUID]*entity.ExtractJob)}
}

func (s *stubJobs) Start(_ context.Context, documentID uuid.UUID) (*entity.ExtractJob, error) {
	j := &entity.ExtractJob{
		ID:         uuid.New(),
		DocumentID: documentID,
		Status:     string(constants.JobStatusRunning),
		StartedAt:  time.Now(),
	}
	s.jobs[j.ID] = j
	return j, nil
}

func (s *stubJobs) FinishOCRSuccess(_ context.Context, jobID uuid.UUID, ocrText string) error {
	j := s.jobs[jobID]
	j.Status = string(constants.JobStatusOCROK)
	j.OCRText = &ocrText
	return nil
}

func (s *stubJobs) FinishParseSuccess(_ context.Context, jobID uuid.UUID, _ map[string]any, confidence float32, needsReview bool) error {
	j := s.jobs[jobID]
	j.Status = string(constants.JobStatusParseOK)
	j.Confidence = &confidence
	j.NeedsReview = needsReview
	return nil
}

func (s *stubJobs) FinishFailure(_ context.Context, jobID uuid.UUID, msg string) error {
	j := s.jobs[jobID]
	j.Status = string(constants.JobStatusFailed)
	j.ErrorMessage = &msg
	return nil
}

func (s *stubJobs) GetByID(_ context.Context, jobID uuid.UUID) (*entity.ExtractJob, error) {
	j, ok := s.jobs[jobID]
	if !ok {
		return nil, errors.New("job not found")
	}
	return j, nil
}

func (s *stubJobs) ListByDocument(context.Context, uuid.UUID) ([]*entity.ExtractJob, error) {
	return nil, nil
}

type stubReceipts struct {
	upserts []*store.CreateReceiptRequest
}

func (s *stubReceipts) ListByUser(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return nil, nil
}

func (s *stubReceipts) Upsert(_ context.Context, req *store.CreateReceiptRequest) (*entity.Receipt, error) {
	s.upserts = append(s.upserts, req)
	return &entity.Receipt{ID: uuid.New(), DocumentID: req.DocumentID}, nil
}

func (s *stubReceipts) GetByDocumentID(context.Context, uuid.UUID) (*entity.Receipt, error) {
	return nil, errors.New("not found")
}

type stubBills struct {
	upserts []*store.CreateBillRequest
}

func (s *stubBills) ListByUser(context.Context, uuid.UUID, *time.Time, *time.Time, bool) ([]*entity.Bill, error) {
	return nil, nil
}

func (s *stubBills) Upsert(_ context.Context, req *store.CreateBillRequest) (*entity.Bill, error) {
	s.upserts = append(s.upserts, req)
	return &entity.Bill{ID: uuid.New(), DocumentID: req.DocumentID}, nil
}

func (s *stubBills) GetByDocumentID(context.Context, uuid.UUID) (*entity.Bill, error) {
	return nil, errors.New("not found")
}

func (s *stubBills) MarkPaid(context.Context, uuid.UUID, time.Time) (*entity.Bill, error) {
	return nil, errors.New("not implemented")
}

type stubMethods struct {
	byLastFour map[string]*entity.PaymentMethod
}

func (s *stubMethods) Create(context.Context, *store.CreatePaymentMethodRequest) (*entity.PaymentMethod, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMethods) ListByUser(context.Context, uuid.UUID) ([]*entity.PaymentMethod, error) {
	return nil, nil
}

func (s *stubMethods) FindByLastFour(_ context.Context, _ uuid.UUID, lastFour string) (*entity.PaymentMethod, error) {
	return s.byLastFour[lastFour], nil
}

type fakeTextExtractor struct {
	text string
	err  error
}

func (f fakeTextExtractor) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: f.text, Method: "fake"}, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestProcessor(docs *stubDocuments, jobs *stubJobs, recs *stubReceipts, bills *stubBills, methods *stubMethods, tx extract.TextExtractor) *Processor {
	logger := discardLogger()
	ocr := NewOCRStage(docs, jobs, tx, logger)
	parse := NewParseStage(logger, Config{}, jobs, docs, recs, bills, methods, extract.HeuristicFieldExtractor{})
	return NewProcessor(logger, ocr, parse)
}

func TestProcessDocumentBill(t *testing.T) {
	userID := uuid.New()
	doc := &entity.Document{ID: uuid.New(), UserID: userID, FileName: "bill.jpg"}
	docs := newStubDocuments(doc)
	jobs := newStubJobs()
	recs := &stubReceipts{}
	bills := &stubBills{}
	methods := &stubMethods{}

	p := newTestProcessor(docs, jobs, recs, bills, methods, fakeTextExtractor{text: billText})
	jobID, err := p.ProcessDocument(context.Background(), doc.ID, "aW1n")
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}

	job := jobs.jobs[jobID]
	if job.Status != string(constants.JobStatusParseOK) {
		t.Fatalf("job status = %s, want PARSE_OK", job.Status)
	}
	if job.OCRText == nil || *job.OCRText != billText {
		t.Errorf("ocr text not persisted")
	}
	if job.Confidence == nil || *job.Confidence < 0.79 || *job.Confidence > 0.81 {
		t.Errorf("confidence = %v, want ~0.8", job.Confidence)
	}
	if job.NeedsReview {
		t.Errorf("needs_review = true, want false")
	}

	if doc.VendorName == nil || *doc.VendorName != "Duke Energy" {
		t.Errorf("vendor = %v, want Duke Energy", doc.VendorName)
	}
	if doc.Amount == nil || *doc.Amount != 125.50 {
		t.Errorf("amount = %v, want 125.50", doc.Amount)
	}
	if doc.DocumentType != constants.DocumentTypeBill {
		t.Errorf("document type = %s, want BILL", doc.DocumentType)
	}

	if len(recs.upserts) != 0 {
		t.Errorf("unexpected receipt upserts: %d", len(recs.upserts))
	}
	if len(bills.upserts) != 1 {
		t.Fatalf("bill upserts = %d, want 1", len(bills.upserts))
	}
	b := bills.upserts[0]
	if b.DueDate.Format("2006-01-02") != "2024-06-15" {
		t.Errorf("due date = %s, want 2024-06-15", b.DueDate.Format("2006-01-02"))
	}
	if b.UserID != userID {
		t.Errorf("bill user = %s, want %s", b.UserID, userID)
	}
}

func TestProcessDocumentReceiptLinksPaymentMethod(t *testing.T) {
	userID := uuid.New()
	doc := &entity.Document{ID: uuid.New(), UserID: userID, FileName: "receipt.jpg"}
	docs := newStubDocuments(doc)
	jobs := newStubJobs()
	recs := &stubReceipts{}
	bills := &stubBills{}
	pm := &entity.PaymentMethod{ID: uuid.New(), UserID: userID, LastFour: "1111"}
	methods := &stubMethods{byLastFour: map[string]*entity.PaymentMethod{"1111": pm}}

	receiptText := "STARBUCKS STORE #1234\nDate: 05/13/2024\nTotal: $12.45\nVISA 4111 1111 1111 1111"
	p := newTestProcessor(docs, jobs, recs, bills, methods, fakeTextExtractor{text: receiptText})
	jobID, err := p.ProcessDocument(context.Background(), doc.ID, "aW1n")
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if jobs.jobs[jobID].Status != string(constants.JobStatusParseOK) {
		t.Fatalf("job status = %s, want PARSE_OK", jobs.jobs[jobID].Status)
	}

	if len(recs.upserts) != 1 {
		t.Fatalf("receipt upserts = %d, want 1", len(recs.upserts))
	}
	r := recs.upserts[0]
	if r.ReceiptDate.Format("2006-01-02") != "2024-05-13" {
		t.Errorf("receipt date = %s, want 2024-05-13", r.ReceiptDate.Format("2006-01-02"))
	}
	if r.PaymentMethodID == nil || *r.PaymentMethodID != pm.ID {
		t.Errorf("payment method not linked")
	}
	if doc.PaymentMethodID == nil || *doc.PaymentMethodID != pm.ID {
		t.Errorf("draft payment method not applied")
	}
}

func TestProcessDocumentOCRFailure(t *testing.T) {
	doc := &entity.Document{ID: uuid.New(), UserID: uuid.New(), FileName: "blurry.jpg"}
	docs := newStubDocuments(doc)
	jobs := newStubJobs()

	p := newTestProcessor(docs, jobs, &stubReceipts{}, &stubBills{}, &stubMethods{}, fakeTextExtractor{err: errors.New("upstream 500")})
	jobID, err := p.ProcessDocument(context.Background(), doc.ID, "aW1n")
	if err == nil {
		t.Fatal("want error from OCR failure")
	}
	job := jobs.jobs[jobID]
	if job.Status != string(constants.JobStatusFailed) {
		t.Errorf("job status = %s, want FAILED", job.Status)
	}
	if job.ErrorMessage == nil {
		t.Errorf("error message not recorded")
	}
}

func TestProcessDocumentEmptyText(t *testing.T) {
	doc := &entity.Document{ID: uuid.New(), UserID: uuid.New(), FileName: "blank.jpg"}
	docs := newStubDocuments(doc)
	jobs := newStubJobs()

	p := newTestProcessor(docs, jobs, &stubReceipts{}, &stubBills{}, &stubMethods{}, fakeTextExtractor{text: "   \n "})
	jobID, err := p.ProcessDocument(context.Background(), doc.ID, "aW1n")
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("err = %v, want ErrNoText", err)
	}
	if jobs.jobs[jobID].Status != string(constants.JobStatusFailed) {
		t.Errorf("job status = %s, want FAILED", jobs.jobs[jobID].Status)
	}
}

func TestParseStageRejectsUnreadyJob(t *testing.T) {
	docs := newStubDocuments()
	jobs := newStubJobs()
	job, _ := jobs.Start(context.Background(), uuid.New())

	parse := NewParseStage(discardLogger(), Config{}, jobs, docs, &stubReceipts{}, &stubBills{}, &stubMethods{}, extract.HeuristicFieldExtractor{})
	if _, err := parse.Run(context.Background(), job.ID); err == nil {
		t.Fatal("want error for RUNNING job without ocr text")
	}
}

func TestValidateResultSchema(t *testing.T) {
	schema := BuildResultJSONSchema()

	ok := []byte(`{"vendor_name":"Duke Energy","amount":125.5,"due_date":"2024-06-15","is_bill":true,"confidence_score":0.8,"raw_text":"x"}`)
	if err := ValidateJSONAgainstSchema(schema, ok); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	bad := [][]byte{
		[]byte(`{"is_bill":true,"confidence_score":1.5,"raw_text":""}`),
		[]byte(`{"is_bill":true,"confidence_score":0.2,"raw_text":"","amount":0}`),
		[]byte(`{"is_bill":true,"confidence_score":0.2,"raw_text":"","due_date":"06/15/2024"}`),
		[]byte(`{"confidence_score":0.2,"raw_text":""}`),
	}
	for i, b := range bad {
		if err := ValidateJSONAgainstSchema(schema, b); err == nil {
			t.Errorf("payload %d accepted, want schema error", i)
		}
	}
}
