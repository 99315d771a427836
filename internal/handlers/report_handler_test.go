package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"poolbook/internal/services"
)

// --- mock report service ---

type mockReportService struct {
	getMonthlyReportFn  func(userID uint, year, month int) (*services.MonthlyReport, error)
	getCategoryReportFn func(userID uint, startDate, endDate *time.Time) (*services.CategoryReport, error)
}

func (m *mockReportService) GetMonthlyReport(userID uint, year, month int) (*services.MonthlyReport, error) {
	if m.getMonthlyReportFn != nil {
		return m.getMonthlyReportFn(userID, year, month)
	}
	return &services.MonthlyReport{
		Year:              year,
		Month:             month,
		CategoryBreakdown: []services.BreakdownEntry{},
		PoolBreakdown:     []services.BreakdownEntry{},
	}, nil
}

func (m *mockReportService) GetCategoryReport(userID uint, startDate, endDate *time.Time) (*services.CategoryReport, error) {
	if m.getCategoryReportFn != nil {
		return m.getCategoryReportFn(userID, startDate, endDate)
	}
	return &services.CategoryReport{Categories: []services.CategoryReportEntry{}}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/reports/monthly", handler.GetMonthlyReport)
	auth.GET("/reports/categories", handler.GetCategoryReport)
	return r
}

// --- tests ---

func TestReportHandler_GetMonthlyReport(t *testing.T) {
	t.Run("returns 200 with report", func(t *testing.T) {
		svc := &mockReportService{
			getMonthlyReportFn: func(userID uint, year, month int) (*services.MonthlyReport, error) {
				if userID != 1 {
					t.Errorf("expected user 1, got %d", userID)
				}
				return &services.MonthlyReport{
					Year:              year,
					Month:             month,
					TotalIncome:       5000000,
					TotalExpenses:     500000,
					TotalCredit:       1000000,
					TotalPayments:     150000,
					NetAmount:         3650000,
					TransactionCount:  4,
					CategoryBreakdown: []services.BreakdownEntry{},
					PoolBreakdown:     []services.BreakdownEntry{},
				}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/reports/monthly?year=2024&month=6", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		report := result["report"].(map[string]interface{})
		if report["net_amount"].(float64) != 3650000 {
			t.Errorf("expected net_amount 3650000, got %v", report["net_amount"])
		}
		if report["category_breakdown"] == nil {
			t.Error("expected category_breakdown to be an empty array, not null")
		}
	})

	t.Run("returns 400 on missing year", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/reports/monthly?month=6", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-numeric month", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/reports/monthly?year=2024&month=june", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestReportHandler_GetCategoryReport(t *testing.T) {
	t.Run("returns 200 without range", func(t *testing.T) {
		svc := &mockReportService{
			getCategoryReportFn: func(_ uint, startDate, endDate *time.Time) (*services.CategoryReport, error) {
				if startDate != nil || endDate != nil {
					t.Error("expected nil bounds when no range given")
				}
				return &services.CategoryReport{Categories: []services.CategoryReportEntry{}}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/reports/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		report := result["report"].(map[string]interface{})
		if report["categories"] == nil {
			t.Error("expected categories to be an empty array, not null")
		}
	})

	t.Run("passes date range", func(t *testing.T) {
		var gotStart, gotEnd *time.Time
		svc := &mockReportService{
			getCategoryReportFn: func(_ uint, startDate, endDate *time.Time) (*services.CategoryReport, error) {
				gotStart, gotEnd = startDate, endDate
				return &services.CategoryReport{Categories: []services.CategoryReportEntry{}}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/reports/categories?start_date=2024-01-01&end_date=2024-06-30", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotStart == nil || gotEnd == nil {
			t.Fatal("expected both bounds to be parsed")
		}
		if gotStart.Year() != 2024 || gotStart.Month() != time.January {
			t.Errorf("unexpected start %v", gotStart)
		}
		if gotEnd.Month() != time.June || gotEnd.Day() != 30 {
			t.Errorf("unexpected end %v", gotEnd)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/reports/categories?start_date=yesterday", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
