package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/billsnap/billsnap/internal/store"
)

// Service is a tiny façade over the stores that produces CSV and XLSX
// bytes for exports.
type Service struct {
	receipts store.ReceiptStore
	bills    store.BillStore
	methods  store.PaymentMethodStore
	logger   *slog.Logger
}

func NewService(receipts store.ReceiptStore, bills store.BillStore, methods store.PaymentMethodStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{receipts: receipts, bills: bills, methods: methods, logger: logger}
}

// ExportReceiptsCSV renders the user's receipts in a date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all receipts for the user.
func (s *Service) ExportReceiptsCSV(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	fromDate, toDate := normalizeWindow(from, to)
	recs, err := s.receipts.ListByUser(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	label, err := s.methodLabels(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export.receipts_csv.ok", "user_id", userID.String(), "rows", len(recs))
	return []byte(BuildReceiptsCSV(recs, label)), nil
}

// ExportBillsCSV renders the user's bills in a date window over due dates.
func (s *Service) ExportBillsCSV(ctx context.Context, userID uuid.UUID, from, to *time.Time, unpaidOnly bool) ([]byte, error) {
	fromDate, toDate := normalizeWindow(from, to)
	bills, err := s.bills.ListByUser(ctx, userID, fromDate, toDate, unpaidOnly)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}
	s.logger.Info("export.bills_csv.ok", "user_id", userID.String(), "rows", len(bills))
	return []byte(BuildBillsCSV(bills)), nil
}

// ExportExpensesCSV renders receipts and bills combined.
func (s *Service) ExportExpensesCSV(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	fromDate, toDate := normalizeWindow(from, to)
	recs, err := s.receipts.ListByUser(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	bills, err := s.bills.ListByUser(ctx, userID, fromDate, toDate, false)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}
	label, err := s.methodLabels(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export.expenses_csv.ok", "user_id", userID.String(), "rows", len(recs)+len(bills))
	return []byte(BuildExpensesCSV(recs, bills, label)), nil
}

// ExportReceiptsXLSX returns an XLSX workbook for the given user and
// date window.
func (s *Service) ExportReceiptsXLSX(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)
	recs, err := s.receipts.ListByUser(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	label, err := s.methodLabels(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Vendor",
		"Amount",
		"Payment Method",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.ReceiptDate.Format("2006-01-02"))
		write(2, r.VendorName)
		write(3, fmt.Sprintf("%.2f", r.Amount))
		write(4, methodFor(r.PaymentMethodID, label))
		write(5, truncate(strOrEmpty(r.Notes), 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // vendor
	_ = f.SetColWidth(sheet, "C", "C", 14) // amount
	_ = f.SetColWidth(sheet, "D", "D", 22) // method
	_ = f.SetColWidth(sheet, "E", "E", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// methodLabels loads the user's payment methods once and resolves ids to
// a display label: nickname first, then "BRAND ****1234", then the
// method type.
func (s *Service) methodLabels(ctx context.Context, userID uuid.UUID) (MethodLabel, error) {
	methods, err := s.methods.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query payment methods: %w", err)
	}
	byID := make(map[uuid.UUID]string, len(methods))
	for _, m := range methods {
		switch {
		case m.Nickname != nil && *m.Nickname != "":
			byID[m.ID] = *m.Nickname
		case m.CardType != nil && *m.CardType != "":
			byID[m.ID] = fmt.Sprintf("%s ****%s", *m.CardType, m.LastFour)
		default:
			byID[m.ID] = m.MethodType
		}
	}
	return func(id uuid.UUID) string { return byID[id] }, nil
}

// normalizeWindow truncates bounds to date-only UTC and defaults the upper
// bound to today when only a lower bound is given.
func normalizeWindow(from, to *time.Time) (*time.Time, *time.Time) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	return fromDate, toDate
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
