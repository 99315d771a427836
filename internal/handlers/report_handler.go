package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/services"
)

// ReportHandler handles report generation requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlyReport handles generating a monthly report.
// @Summary     Get monthly report
// @Description Aggregate totals, net amount, and category/pool breakdowns for one calendar month
// @Tags        reports
// @Produce     json
// @Param       X-User-ID header int true "Scoped user ID"
// @Param       year      query  int true "Report year"
// @Param       month     query  int true "Report month (1-12)"
// @Success     200 {object} services.MonthlyReport "Monthly report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid or missing year"))
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid or missing month"))
		return
	}

	report, err := h.reportService.GetMonthlyReport(userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GetCategoryReport handles generating a per-category report.
// @Summary     Get category report
// @Description Per-category totals, averages, and monthly series over an optional date range
// @Tags        reports
// @Produce     json
// @Param       X-User-ID  header int    true  "Scoped user ID"
// @Param       start_date query  string false "Start of range (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query  string false "End of range (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} services.CategoryReport "Category report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/categories [get]
func (h *ReportHandler) GetCategoryReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var startDate, endDate *time.Time
	if v := c.Query("start_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		startDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		endDate = &t
	}

	report, err := h.reportService.GetCategoryReport(userID, startDate, endDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
