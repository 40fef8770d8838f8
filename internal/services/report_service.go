package services

import (
	"context"
	"fmt"
	"time"

	"budget-watch/internal/models"
	"budget-watch/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	factory         ReportFactoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewReportService creates a new ReportServiceInterface instance
func NewReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	factory ReportFactoryInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &ReportService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		factory:         factory,
		metrics:         metrics,
		now:             time.Now,
	}
}

// GenerateReport collects the caller's transactions for the requested range and
// renders them. Summary and detailed reports default to the current month, tax
// reports to the current year.
func (s *ReportService) GenerateReport(_ context.Context, userID uuid.UUID, reportType string, opts ReportOptions) (ReportInterface, error) {
	parsedType, err := ParseReportType(reportType)
	if err != nil {
		return nil, err
	}

	window, opts, err := s.reportWindow(parsedType, opts)
	if err != nil {
		return nil, err
	}

	data, err := s.collect(userID, window)
	if err != nil {
		return nil, err
	}

	report, err := s.factory.CreateReport(parsedType, data, opts)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("report.generated", map[string]string{"type": string(parsedType)})
	return report, nil
}

func (s *ReportService) reportWindow(reportType ReportType, opts ReportOptions) (models.PeriodWindow, ReportOptions, error) {
	now := s.now()

	if reportType == ReportTypeTax {
		if opts.Year == 0 {
			opts.Year = now.Year()
		}
		start := time.Date(opts.Year, time.January, 1, 0, 0, 0, 0, now.Location())
		return models.PeriodWindow{Start: start, End: start.AddDate(1, 0, 0)}, opts, nil
	}

	if opts.From.IsZero() && opts.To.IsZero() {
		month := (&models.Budget{Period: models.BudgetPeriodMonthly}).PeriodWindow(now)
		opts.From = month.Start
		opts.To = month.End.AddDate(0, 0, -1)
	}
	if opts.From.IsZero() || opts.To.IsZero() || opts.To.Before(opts.From) {
		return models.PeriodWindow{}, opts, ErrInvalidDateRange
	}

	// To is an inclusive calendar day
	return models.PeriodWindow{Start: opts.From, End: opts.To.AddDate(0, 0, 1)}, opts, nil
}

func (s *ReportService) collect(userID uuid.UUID, window models.PeriodWindow) (*ReportData, error) {
	start, end := window.Start, window.End
	transactions, _, err := s.transactionRepo.GetWithFilters(models.TransactionFilters{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load report transactions: %w", err)
	}

	breakdown, err := s.transactionRepo.GetCategoryBreakdown(userID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load category breakdown: %w", err)
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	data := &ReportData{
		UserID:        userID,
		Transactions:  transactions,
		CategoryNames: make(map[uuid.UUID]string, len(categories)),
		Breakdown:     breakdown,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		GeneratedAt:   s.now(),
	}
	for _, category := range categories {
		data.CategoryNames[category.ID] = category.Name
	}
	for _, tx := range transactions {
		if tx.IsIncome() {
			data.TotalIncome = data.TotalIncome.Add(tx.Amount)
		} else {
			data.TotalExpenses = data.TotalExpenses.Add(tx.Amount.Abs())
		}
	}

	return data, nil
}
