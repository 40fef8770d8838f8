package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"budget-watch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportType selects the report implementation
type ReportType string

const (
	ReportTypeSummary  ReportType = "summary"
	ReportTypeDetailed ReportType = "detailed"
	ReportTypeTax      ReportType = "tax"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeCSV  = "text/csv; charset=utf-8"
	reportDayLayout = "2006-01-02"
	uncategorized   = "Uncategorized"
)

var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrReportDataMissing = errors.New("report data is required")
)

// ParseReportType parses a case-insensitive report type
func ParseReportType(value string) (ReportType, error) {
	reportType := ReportType(strings.ToLower(strings.TrimSpace(value)))
	switch reportType {
	case ReportTypeSummary, ReportTypeDetailed, ReportTypeTax:
		return reportType, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReportType, value)
	}
}

// ReportData is everything a report renders from
type ReportData struct {
	UserID        uuid.UUID
	Transactions  []models.Transaction
	CategoryNames map[uuid.UUID]string
	Breakdown     []models.CategorySummary
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	GeneratedAt   time.Time
}

// ReportOptions carries the date range for summary and detailed reports and the year for tax reports
type ReportOptions struct {
	From time.Time
	To   time.Time
	Year int
}

func (d *ReportData) categoryName(id *uuid.UUID) string {
	if id == nil {
		return uncategorized
	}
	if name, ok := d.CategoryNames[*id]; ok {
		return name
	}
	return id.String()
}

// ReportFactory creates reports by type
type ReportFactory struct{}

// NewReportFactory creates a report factory
func NewReportFactory() ReportFactoryInterface {
	return &ReportFactory{}
}

// CreateReport returns the report for reportType or ErrUnknownReportType
func (f *ReportFactory) CreateReport(reportType ReportType, data *ReportData, opts ReportOptions) (ReportInterface, error) {
	if data == nil {
		return nil, ErrReportDataMissing
	}

	switch reportType {
	case ReportTypeSummary:
		return &SummaryReport{data: data, from: opts.From, to: opts.To}, nil
	case ReportTypeDetailed:
		return &DetailedReport{data: data, from: opts.From, to: opts.To}, nil
	case ReportTypeTax:
		year := opts.Year
		if year == 0 {
			year = time.Now().Year()
		}
		return &TaxReport{data: data, year: year}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
	}
}

// SummaryReport is a plain text overview of a date range
type SummaryReport struct {
	data *ReportData
	from time.Time
	to   time.Time
}

func (r *SummaryReport) Generate() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Summary report %s to %s\n\n", formatDay(r.from), formatDay(r.to))
	fmt.Fprintf(&buf, "Total income:   %s\n", money(r.data.TotalIncome))
	fmt.Fprintf(&buf, "Total expenses: %s\n", money(r.data.TotalExpenses))
	fmt.Fprintf(&buf, "Net cash flow:  %s\n", money(r.data.TotalIncome.Sub(r.data.TotalExpenses)))
	fmt.Fprintf(&buf, "Transactions:   %d\n", len(r.data.Transactions))

	if len(r.data.Breakdown) > 0 {
		buf.WriteString("\nSpending by category\n")
		for _, summary := range r.data.Breakdown {
			id := summary.CategoryID
			fmt.Fprintf(&buf, "  %-24s %12s  (%d)\n", r.data.categoryName(&id), money(summary.TotalAmount), summary.TransactionCount)
		}
	}

	return buf.Bytes(), nil
}

func (r *SummaryReport) Filename() string {
	return fmt.Sprintf("summary_report_%s_%s.txt", formatDay(r.from), formatDay(r.to))
}

func (r *SummaryReport) ContentType() string {
	return contentTypeText
}

// DetailedReport lists every transaction as CSV
type DetailedReport struct {
	data *ReportData
	from time.Time
	to   time.Time
}

func (r *DetailedReport) Generate() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "description", "merchant", "amount", "category", "confidence", "method"}); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for _, tx := range r.data.Transactions {
		record := []string{
			formatDay(tx.TransactionDate),
			tx.Description,
			tx.MerchantName,
			money(tx.Amount),
			r.data.categoryName(tx.CategoryID),
			string(tx.Confidence),
			tx.CategorizationMethod,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *DetailedReport) Filename() string {
	return fmt.Sprintf("detailed_report_%s_%s.csv", formatDay(r.from), formatDay(r.to))
}

func (r *DetailedReport) ContentType() string {
	return contentTypeCSV
}

// TaxReport totals income and expenses per category for one calendar year
type TaxReport struct {
	data *ReportData
	year int
}

func (r *TaxReport) Generate() ([]byte, error) {
	income := decimal.Zero
	expensesByCategory := make(map[string]decimal.Decimal)
	for _, tx := range r.data.Transactions {
		if tx.TransactionDate.Year() != r.year {
			continue
		}
		if tx.IsIncome() {
			income = income.Add(tx.Amount)
			continue
		}
		name := r.data.categoryName(tx.CategoryID)
		expensesByCategory[name] = expensesByCategory[name].Add(tx.Amount.Abs())
	}

	names := make([]string, 0, len(expensesByCategory))
	for name := range expensesByCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Tax report %d\n\n", r.year)
	fmt.Fprintf(&buf, "Income: %s\n\nDeductible candidates by category\n", money(income))
	total := decimal.Zero
	for _, name := range names {
		fmt.Fprintf(&buf, "  %-24s %12s\n", name, money(expensesByCategory[name]))
		total = total.Add(expensesByCategory[name])
	}
	fmt.Fprintf(&buf, "\nTotal expenses: %s\n", money(total))

	return buf.Bytes(), nil
}

func (r *TaxReport) Filename() string {
	return fmt.Sprintf("tax_report_%d.txt", r.year)
}

func (r *TaxReport) ContentType() string {
	return contentTypeText
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "none"
	}
	return t.Format(reportDayLayout)
}
