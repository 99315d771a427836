package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/models"
)

// reportService generates on-demand aggregate reports. Reports are pure
// functions of the stored transactions and the query parameters; nothing is
// persisted and concurrent report requests need no coordination.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// monthWindow returns the inclusive bounds of the calendar month, from the
// first instant of its first day to the last nanosecond of its last day.
// Month values outside 1-12 are normalized by time.Date, so month 13 of one
// year reports on January of the next; no validation error is raised.
func monthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// GetMonthlyReport computes totals by transaction type plus category and pool
// breakdowns for all of the user's transactions within the calendar month.
func (s *reportService) GetMonthlyReport(userID uint, year, month int) (*MonthlyReport, error) {
	start, end := monthWindow(year, month)

	report := &MonthlyReport{
		Year:              start.Year(),
		Month:             int(start.Month()),
		CategoryBreakdown: []BreakdownEntry{},
		PoolBreakdown:     []BreakdownEntry{},
	}

	type typeTotal struct {
		Type  models.TransactionType
		Total int64
		Count int64
	}
	var totals []typeTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Group("type").
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, row := range totals {
		report.TransactionCount += row.Count
		switch row.Type {
		case models.TransactionTypeIncome:
			report.TotalIncome = row.Total
		case models.TransactionTypeExpense:
			report.TotalExpenses = row.Total
		case models.TransactionTypeCredit:
			report.TotalCredit = row.Total
		case models.TransactionTypePayment:
			report.TotalPayments = row.Total
		}
	}

	// Payments reduce net burden in the opposite direction of expenses and
	// credit; this sign convention is part of the report's contract.
	report.NetAmount = report.TotalIncome + report.TotalPayments - report.TotalExpenses - report.TotalCredit

	categories, err := s.categoryBreakdown(userID, start, end)
	if err != nil {
		return nil, err
	}
	report.CategoryBreakdown = categories

	pools, err := s.poolBreakdown(userID, start, end)
	if err != nil {
		return nil, err
	}
	report.PoolBreakdown = pools

	return report, nil
}

// categoryBreakdown groups the user's categorized transactions in the window
// by category. The entry type comes from the category, not the transactions.
func (s *reportService) categoryBreakdown(userID uint, start, end time.Time) ([]BreakdownEntry, error) {
	var rows []BreakdownEntry
	if err := s.db.Model(&models.Transaction{}).
		Select("categories.id AS id, categories.name AS name, categories.type AS type, COALESCE(SUM(transactions.amount), 0) AS total_amount, COUNT(*) AS transaction_count").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.date BETWEEN ? AND ? AND transactions.category_id IS NOT NULL", userID, start, end).
		Where("categories.deleted_at IS NULL").
		Group("categories.id, categories.name, categories.type").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sortBreakdown(rows)
	if rows == nil {
		rows = []BreakdownEntry{}
	}
	return rows, nil
}

// poolBreakdown groups the user's pooled transactions in the window by pool.
// The entry type comes from the pool; pool type is not checked against the
// transactions' types.
func (s *reportService) poolBreakdown(userID uint, start, end time.Time) ([]BreakdownEntry, error) {
	var rows []BreakdownEntry
	if err := s.db.Model(&models.Transaction{}).
		Select("pools.id AS id, pools.name AS name, pools.type AS type, COALESCE(SUM(transactions.amount), 0) AS total_amount, COUNT(*) AS transaction_count").
		Joins("JOIN pools ON pools.id = transactions.pool_id").
		Where("transactions.user_id = ? AND transactions.date BETWEEN ? AND ? AND transactions.pool_id IS NOT NULL", userID, start, end).
		Where("pools.deleted_at IS NULL").
		Group("pools.id, pools.name, pools.type").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sortBreakdown(rows)
	if rows == nil {
		rows = []BreakdownEntry{}
	}
	return rows, nil
}

// sortBreakdown orders entries by total descending, name ascending on ties.
// Sorting happens here rather than in SQL so ordering is identical across
// database engines.
func sortBreakdown(rows []BreakdownEntry) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalAmount != rows[j].TotalAmount {
			return rows[i].TotalAmount > rows[j].TotalAmount
		}
		return rows[i].Name < rows[j].Name
	})
}

// monthKey is the composite grouping key for a category's monthly series.
type monthKey struct {
	Year  int
	Month int
}

// categoryAccum accumulates one category's totals while folding transactions.
type categoryAccum struct {
	name   string
	ctype  models.CategoryType
	total  int64
	count  int64
	months map[monthKey]*MonthTotal
}

// GetCategoryReport computes per-category totals, averages, and month-by-month
// series over the user's categorized income/expense/credit transactions,
// optionally restricted to an inclusive date range. Payment transactions are
// never included, even if a category id is erroneously attached to one.
func (s *reportService) GetCategoryReport(userID uint, startDate, endDate *time.Time) (*CategoryReport, error) {
	q := s.db.Preload("Category").
		Where("user_id = ? AND category_id IS NOT NULL AND type IN ?", userID, []models.TransactionType{
			models.TransactionTypeIncome,
			models.TransactionTypeExpense,
			models.TransactionTypeCredit,
		})
	if startDate != nil {
		q = q.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		q = q.Where("date <= ?", *endDate)
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	groups := make(map[uint]*categoryAccum)
	for i := range transactions {
		tx := &transactions[i]
		if tx.Category == nil {
			// Category was deleted; the transaction no longer counts as categorized.
			continue
		}

		acc, ok := groups[*tx.CategoryID]
		if !ok {
			acc = &categoryAccum{
				name:   tx.Category.Name,
				ctype:  tx.Category.Type,
				months: make(map[monthKey]*MonthTotal),
			}
			groups[*tx.CategoryID] = acc
		}
		acc.total += tx.Amount
		acc.count++

		key := monthKey{Year: tx.Date.Year(), Month: int(tx.Date.Month())}
		bucket, ok := acc.months[key]
		if !ok {
			bucket = &MonthTotal{Year: key.Year, Month: key.Month}
			acc.months[key] = bucket
		}
		bucket.TotalAmount += tx.Amount
		bucket.TransactionCount++
	}

	report := &CategoryReport{Categories: []CategoryReportEntry{}}
	for id, acc := range groups {
		entry := CategoryReportEntry{
			CategoryID:       id,
			CategoryName:     acc.name,
			Type:             acc.ctype,
			TotalAmount:      acc.total,
			TransactionCount: acc.count,
			MonthlyBreakdown: make([]MonthTotal, 0, len(acc.months)),
		}
		if acc.count > 0 {
			entry.AverageAmount = float64(acc.total) / float64(acc.count)
		}

		for _, bucket := range acc.months {
			entry.MonthlyBreakdown = append(entry.MonthlyBreakdown, *bucket)
		}
		sort.Slice(entry.MonthlyBreakdown, func(i, j int) bool {
			a, b := entry.MonthlyBreakdown[i], entry.MonthlyBreakdown[j]
			if a.Year != b.Year {
				return a.Year < b.Year
			}
			return a.Month < b.Month
		})

		report.Categories = append(report.Categories, entry)

		switch acc.ctype {
		case models.CategoryTypeIncome:
			report.TotalsByType.Income += acc.total
		case models.CategoryTypeExpense:
			report.TotalsByType.Expense += acc.total
		case models.CategoryTypeCredit:
			report.TotalsByType.Credit += acc.total
		}
	}

	sort.Slice(report.Categories, func(i, j int) bool {
		a, b := report.Categories[i], report.Categories[j]
		if a.TotalAmount != b.TotalAmount {
			return a.TotalAmount > b.TotalAmount
		}
		return a.CategoryName < b.CategoryName
	})

	return report, nil
}
