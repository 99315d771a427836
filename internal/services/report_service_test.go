package services

import (
	"math/rand"
	"testing"
	"time"

	"poolbook/internal/models"
	"poolbook/internal/testutil"
)

func TestGetMonthlyReport(t *testing.T) {
	t.Run("empty_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		report, err := svc.GetMonthlyReport(user.ID, 2024, 6)
		testutil.AssertNoError(t, err)

		if report.Year != 2024 || report.Month != 6 {
			t.Errorf("expected 2024-06, got %d-%d", report.Year, report.Month)
		}
		if report.TotalIncome != 0 || report.TotalExpenses != 0 || report.TotalCredit != 0 || report.TotalPayments != 0 {
			t.Error("expected all totals to be zero for an empty month")
		}
		if report.NetAmount != 0 {
			t.Errorf("expected zero net amount, got %d", report.NetAmount)
		}
		if report.TransactionCount != 0 {
			t.Errorf("expected zero transaction count, got %d", report.TransactionCount)
		}
		if report.CategoryBreakdown == nil || len(report.CategoryBreakdown) != 0 {
			t.Error("expected empty non-nil category breakdown")
		}
		if report.PoolBreakdown == nil || len(report.PoolBreakdown) != 0 {
			t.Error("expected empty non-nil pool breakdown")
		}
	})

	t.Run("mixed_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		salary := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeIncome, "Salary")
		groceries := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Groceries")
		loans := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeCredit, "Loans")
		vendor := testutil.CreateTestVendor(t, db, user.ID)

		mid := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, salary, 5000000, mid)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, groceries, 500000, mid)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, loans, 1000000, mid)
		testutil.CreateTestPayment(t, db, user.ID, vendor, 150000, mid)

		report, err := svc.GetMonthlyReport(user.ID, 2024, 6)
		testutil.AssertNoError(t, err)

		if report.TotalIncome != 5000000 {
			t.Errorf("expected income 5000000, got %d", report.TotalIncome)
		}
		if report.TotalExpenses != 500000 {
			t.Errorf("expected expenses 500000, got %d", report.TotalExpenses)
		}
		if report.TotalCredit != 1000000 {
			t.Errorf("expected credit 1000000, got %d", report.TotalCredit)
		}
		if report.TotalPayments != 150000 {
			t.Errorf("expected payments 150000, got %d", report.TotalPayments)
		}
		// income + payments - expenses - credit
		if report.NetAmount != 3650000 {
			t.Errorf("expected net 3650000, got %d", report.NetAmount)
		}
		if report.TransactionCount != 4 {
			t.Errorf("expected 4 transactions, got %d", report.TransactionCount)
		}
		if len(report.CategoryBreakdown) != 3 {
			t.Fatalf("expected 3 category entries, got %d", len(report.CategoryBreakdown))
		}
		if len(report.PoolBreakdown) != 0 {
			t.Errorf("expected empty pool breakdown, got %d entries", len(report.PoolBreakdown))
		}

		// Ordered by total descending
		if report.CategoryBreakdown[0].Name != "Salary" {
			t.Errorf("expected Salary first, got %s", report.CategoryBreakdown[0].Name)
		}
		if report.CategoryBreakdown[1].Name != "Loans" {
			t.Errorf("expected Loans second, got %s", report.CategoryBreakdown[1].Name)
		}
		if report.CategoryBreakdown[2].Name != "Groceries" {
			t.Errorf("expected Groceries third, got %s", report.CategoryBreakdown[2].Name)
		}
		if report.CategoryBreakdown[0].Type != "income" {
			t.Errorf("expected income type from category, got %s", report.CategoryBreakdown[0].Type)
		}
	})

	t.Run("net_amount_identity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		rng := rand.New(rand.NewSource(42))
		types := []models.TransactionType{
			models.TransactionTypeIncome,
			models.TransactionTypeExpense,
			models.TransactionTypeCredit,
			models.TransactionTypePayment,
		}
		for i := 0; i < 50; i++ {
			txType := types[rng.Intn(len(types))]
			amount := int64(rng.Intn(100000) + 1)
			day := rng.Intn(28) + 1
			date := time.Date(2024, 3, day, rng.Intn(24), 0, 0, 0, time.UTC)
			testutil.CreateTestTransaction(t, db, user.ID, txType, amount, date)
		}

		report, err := svc.GetMonthlyReport(user.ID, 2024, 3)
		testutil.AssertNoError(t, err)

		want := report.TotalIncome + report.TotalPayments - report.TotalExpenses - report.TotalCredit
		if report.NetAmount != want {
			t.Errorf("net amount %d does not satisfy identity %d", report.NetAmount, want)
		}
		if report.TransactionCount != 50 {
			t.Errorf("expected 50 transactions, got %d", report.TransactionCount)
		}
	})

	t.Run("window_bounds_inclusive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		firstInstant := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		lastDay := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
		before := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
		after := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 100, firstInstant)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 200, lastDay)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 400, before)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 800, after)

		report, err := svc.GetMonthlyReport(user.ID, 2024, 2)
		testutil.AssertNoError(t, err)

		if report.TotalIncome != 300 {
			t.Errorf("expected 300 from boundary transactions, got %d", report.TotalIncome)
		}
		if report.TransactionCount != 2 {
			t.Errorf("expected 2 transactions, got %d", report.TransactionCount)
		}
	})

	t.Run("month_overflow_rolls_over", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 1234, jan)

		// Month 13 of 2024 normalizes to January 2025
		report, err := svc.GetMonthlyReport(user.ID, 2024, 13)
		testutil.AssertNoError(t, err)

		if report.Year != 2025 || report.Month != 1 {
			t.Errorf("expected 2025-01, got %d-%d", report.Year, report.Month)
		}
		if report.TotalExpenses != 1234 {
			t.Errorf("expected expenses 1234, got %d", report.TotalExpenses)
		}
	})

	t.Run("pool_breakdown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		checking := testutil.CreateTestPool(t, db, user.ID, models.PoolTypeExpense)
		savings := testutil.CreateTestPool(t, db, user.ID, models.PoolTypeIncome)
		mid := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

		testutil.CreateTestPooledTransaction(t, db, user.ID, checking, models.TransactionTypeExpense, 300, mid)
		testutil.CreateTestPooledTransaction(t, db, user.ID, checking, models.TransactionTypeExpense, 200, mid)
		testutil.CreateTestPooledTransaction(t, db, user.ID, savings, models.TransactionTypeIncome, 100, mid)

		report, err := svc.GetMonthlyReport(user.ID, 2024, 6)
		testutil.AssertNoError(t, err)

		if len(report.PoolBreakdown) != 2 {
			t.Fatalf("expected 2 pool entries, got %d", len(report.PoolBreakdown))
		}
		if report.PoolBreakdown[0].ID != checking.ID {
			t.Errorf("expected pool with largest total first")
		}
		if report.PoolBreakdown[0].TotalAmount != 500 {
			t.Errorf("expected pool total 500, got %d", report.PoolBreakdown[0].TotalAmount)
		}
		if report.PoolBreakdown[0].TransactionCount != 2 {
			t.Errorf("expected 2 pooled transactions, got %d", report.PoolBreakdown[0].TransactionCount)
		}

		var countSum int64
		for _, entry := range report.PoolBreakdown {
			countSum += entry.TransactionCount
		}
		if countSum > report.TransactionCount {
			t.Errorf("pool breakdown counts %d exceed total %d", countSum, report.TransactionCount)
		}
	})

	t.Run("excludes_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		mid := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, user1.ID, models.TransactionTypeIncome, 100, mid)
		testutil.CreateTestTransaction(t, db, user2.ID, models.TransactionTypeIncome, 900, mid)

		report, err := svc.GetMonthlyReport(user1.ID, 2024, 6)
		testutil.AssertNoError(t, err)

		if report.TotalIncome != 100 {
			t.Errorf("expected only user1's income, got %d", report.TotalIncome)
		}
	})

	t.Run("excludes_deleted_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		mid := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		keep := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 100, mid)
		gone := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 900, mid)
		if err := db.Delete(gone).Error; err != nil {
			t.Fatalf("failed to delete transaction: %v", err)
		}

		report, err := svc.GetMonthlyReport(user.ID, 2024, 6)
		testutil.AssertNoError(t, err)

		if report.TotalIncome != keep.Amount {
			t.Errorf("expected income %d after delete, got %d", keep.Amount, report.TotalIncome)
		}
		if report.TransactionCount != 1 {
			t.Errorf("expected 1 transaction, got %d", report.TransactionCount)
		}
	})
}

func TestGetCategoryReport(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		report, err := svc.GetCategoryReport(user.ID, nil, nil)
		testutil.AssertNoError(t, err)

		if report.Categories == nil || len(report.Categories) != 0 {
			t.Error("expected empty non-nil categories slice")
		}
		if report.TotalsByType.Income != 0 || report.TotalsByType.Expense != 0 || report.TotalsByType.Credit != 0 {
			t.Error("expected zero totals by type")
		}
	})

	t.Run("totals_and_average", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		groceries := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Groceries")
		mid := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, groceries, 300000, mid)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, groceries, 250000, mid.AddDate(0, 0, 5))

		report, err := svc.GetCategoryReport(user.ID, nil, nil)
		testutil.AssertNoError(t, err)

		if len(report.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(report.Categories))
		}
		entry := report.Categories[0]
		if entry.CategoryID != groceries.ID {
			t.Errorf("expected category %d, got %d", groceries.ID, entry.CategoryID)
		}
		if entry.TotalAmount != 550000 {
			t.Errorf("expected total 550000, got %d", entry.TotalAmount)
		}
		if entry.TransactionCount != 2 {
			t.Errorf("expected 2 transactions, got %d", entry.TransactionCount)
		}
		if entry.AverageAmount != 275000.0 {
			t.Errorf("expected average 275000, got %f", entry.AverageAmount)
		}
		if len(entry.MonthlyBreakdown) != 1 {
			t.Fatalf("expected 1 month bucket, got %d", len(entry.MonthlyBreakdown))
		}
		if entry.MonthlyBreakdown[0].Year != 2024 || entry.MonthlyBreakdown[0].Month != 6 {
			t.Errorf("expected 2024-06 bucket, got %d-%d", entry.MonthlyBreakdown[0].Year, entry.MonthlyBreakdown[0].Month)
		}
		if entry.MonthlyBreakdown[0].TotalAmount != 550000 {
			t.Errorf("expected month total 550000, got %d", entry.MonthlyBreakdown[0].TotalAmount)
		}
		if report.TotalsByType.Expense != 550000 {
			t.Errorf("expected expense total 550000, got %d", report.TotalsByType.Expense)
		}
	})

	t.Run("monthly_breakdown_sorted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		dates := []time.Time{
			time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		}
		for _, d := range dates {
			testutil.CreateTestCategorizedTransaction(t, db, user.ID, cat, 100, d)
		}

		report, err := svc.GetCategoryReport(user.ID, nil, nil)
		testutil.AssertNoError(t, err)

		if len(report.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(report.Categories))
		}
		months := report.Categories[0].MonthlyBreakdown
		if len(months) != 3 {
			t.Fatalf("expected 3 month buckets, got %d", len(months))
		}
		for i := 1; i < len(months); i++ {
			prev, cur := months[i-1], months[i]
			if cur.Year < prev.Year || (cur.Year == prev.Year && cur.Month <= prev.Month) {
				t.Errorf("month buckets out of order: %v", months)
			}
		}
		if months[0].Year != 2023 || months[0].Month != 12 {
			t.Errorf("expected first bucket 2023-12, got %d-%d", months[0].Year, months[0].Month)
		}
		if months[1].TransactionCount != 2 {
			t.Errorf("expected 2 transactions in 2024-02 bucket, got %d", months[1].TransactionCount)
		}
	})

	t.Run("payments_never_included", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		mid := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, cat, 500, mid)

		// Insert a payment with a category attached directly, bypassing the
		// service-level guard, to confirm the report still filters by type.
		payment := &models.Transaction{
			UserID:     user.ID,
			CategoryID: &cat.ID,
			Type:       models.TransactionTypePayment,
			Amount:     99999,
			Date:       mid,
		}
		if err := db.Create(payment).Error; err != nil {
			t.Fatalf("failed to create payment: %v", err)
		}

		report, err := svc.GetCategoryReport(user.ID, nil, nil)
		testutil.AssertNoError(t, err)

		if len(report.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(report.Categories))
		}
		if report.Categories[0].TotalAmount != 500 {
			t.Errorf("expected total 500 without the payment, got %d", report.Categories[0].TotalAmount)
		}
	})

	t.Run("date_range_inclusive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

		testutil.CreateTestCategorizedTransaction(t, db, user.ID, cat, 100, start)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, cat, 200, end)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, cat, 400, start.AddDate(0, 0, -1))
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, cat, 800, end.AddDate(0, 0, 1))

		report, err := svc.GetCategoryReport(user.ID, &start, &end)
		testutil.AssertNoError(t, err)

		if len(report.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(report.Categories))
		}
		if report.Categories[0].TotalAmount != 300 {
			t.Errorf("expected total 300 within range, got %d", report.Categories[0].TotalAmount)
		}
	})

	t.Run("empty_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, cat, 100, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

		start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
		report, err := svc.GetCategoryReport(user.ID, &start, &end)
		testutil.AssertNoError(t, err)

		if len(report.Categories) != 0 {
			t.Errorf("expected no categories in empty range, got %d", len(report.Categories))
		}
	})

	t.Run("ordering_and_totals_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		salary := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeIncome, "Salary")
		rent := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Rent")
		food := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Food")
		loan := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeCredit, "Loan")

		mid := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, salary, 9000, mid)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, rent, 5000, mid)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, food, 5000, mid)
		testutil.CreateTestCategorizedTransaction(t, db, user.ID, loan, 1000, mid)

		report, err := svc.GetCategoryReport(user.ID, nil, nil)
		testutil.AssertNoError(t, err)

		if len(report.Categories) != 4 {
			t.Fatalf("expected 4 categories, got %d", len(report.Categories))
		}
		names := []string{report.Categories[0].CategoryName, report.Categories[1].CategoryName, report.Categories[2].CategoryName, report.Categories[3].CategoryName}
		// Salary (9000), then Food and Rent (5000 each, name ascending), then Loan (1000)
		want := []string{"Salary", "Food", "Rent", "Loan"}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, names)
			}
		}

		if report.TotalsByType.Income != 9000 {
			t.Errorf("expected income 9000, got %d", report.TotalsByType.Income)
		}
		if report.TotalsByType.Expense != 10000 {
			t.Errorf("expected expense 10000, got %d", report.TotalsByType.Expense)
		}
		if report.TotalsByType.Credit != 1000 {
			t.Errorf("expected credit 1000, got %d", report.TotalsByType.Credit)
		}

		// Totals by type equal the sum over category entries of each type
		var income, expense, credit int64
		for _, entry := range report.Categories {
			switch entry.Type {
			case models.CategoryTypeIncome:
				income += entry.TotalAmount
			case models.CategoryTypeExpense:
				expense += entry.TotalAmount
			case models.CategoryTypeCredit:
				credit += entry.TotalAmount
			}
		}
		if income != report.TotalsByType.Income || expense != report.TotalsByType.Expense || credit != report.TotalsByType.Credit {
			t.Error("totals by type do not match the per-category sums")
		}
	})

	t.Run("excludes_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		cat1 := testutil.CreateTestCategory(t, db, user1.ID, models.CategoryTypeExpense)
		cat2 := testutil.CreateTestCategory(t, db, user2.ID, models.CategoryTypeExpense)
		mid := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestCategorizedTransaction(t, db, user1.ID, cat1, 100, mid)
		testutil.CreateTestCategorizedTransaction(t, db, user2.ID, cat2, 900, mid)

		report, err := svc.GetCategoryReport(user1.ID, nil, nil)
		testutil.AssertNoError(t, err)

		if len(report.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(report.Categories))
		}
		if report.Categories[0].TotalAmount != 100 {
			t.Errorf("expected only user1's total, got %d", report.Categories[0].TotalAmount)
		}
	})
}

func TestMonthWindow(t *testing.T) {
	t.Run("regular_month", func(t *testing.T) {
		start, end := monthWindow(2024, 6)
		if !start.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", start)
		}
		if end.Month() != time.June || end.Day() != 30 {
			t.Errorf("unexpected end %v", end)
		}
	})

	t.Run("leap_february", func(t *testing.T) {
		_, end := monthWindow(2024, 2)
		if end.Day() != 29 {
			t.Errorf("expected leap end day 29, got %d", end.Day())
		}
	})

	t.Run("overflow", func(t *testing.T) {
		start, _ := monthWindow(2024, 13)
		if start.Year() != 2025 || start.Month() != time.January {
			t.Errorf("expected 2025-01 start, got %v", start)
		}
	})

	t.Run("zero_month", func(t *testing.T) {
		start, _ := monthWindow(2024, 0)
		if start.Year() != 2023 || start.Month() != time.December {
			t.Errorf("expected 2023-12 start, got %v", start)
		}
	})
}
