package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/models"
	"poolbook/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount is in minor units (cents) and must be positive; the type carries the sign.
type CreateTransactionRequest struct {
	Type             models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount           int64                  `json:"amount" binding:"required,gt=0"`
	Description      string                 `json:"description" binding:"omitempty,max=500"`
	Date             time.Time              `json:"date"`
	CategoryID       *uint                  `json:"category_id"`
	VendorID         *uint                  `json:"vendor_id"`
	PoolID           *uint                  `json:"pool_id"`
	AssociatedPerson string                 `json:"associated_person" binding:"omitempty,max=100"`
}

// CreateTransaction handles the creation of a new transaction.
// @Summary     Create a transaction
// @Description Record an income, expense, credit, or payment transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       X-User-ID header int                      true "Scoped user ID"
// @Param       request   body   CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Referenced entity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(
		userID, req.Type, req.Amount, req.Description, req.Date,
		req.CategoryID, req.VendorID, req.PoolID, req.AssociatedPerson,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles listing transactions for the scoped user.
// @Summary     Get transactions
// @Description Get transactions for the scoped user, newest first, with optional filters
// @Tags        transactions
// @Produce     json
// @Param       X-User-ID   header int    true  "Scoped user ID"
// @Param       from_date   query  string false "Start of date range (RFC3339 or YYYY-MM-DD)"
// @Param       to_date     query  string false "End of date range (RFC3339 or YYYY-MM-DD)"
// @Param       type        query  string false "Filter by type (income/expense/credit/payment)"
// @Param       category_id query  int    false "Filter by category"
// @Param       pool_id     query  int    false "Filter by pool"
// @Param       vendor_id   query  int    false "Filter by vendor"
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetTransaction handles fetching a single transaction.
// @Summary     Get a transaction
// @Description Get a transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       X-User-ID header int true "Scoped user ID"
// @Param       id        path   int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction.
// @Summary     Delete a transaction
// @Description Soft-delete a transaction; it no longer contributes to reports
// @Tags        transactions
// @Produce     json
// @Param       X-User-ID header int true "Scoped user ID"
// @Param       id        path   int true "Transaction ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// parseTransactionFilter builds a TransactionFilter from query parameters.
func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("from_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, err
		}
		filter.FromDate = &t
	}
	if v := c.Query("to_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, err
		}
		filter.ToDate = &t
	}
	if v := c.Query("type"); v != "" {
		transactionType := models.TransactionType(v)
		filter.Type = &transactionType
	}
	var err error
	if filter.CategoryID, err = parseOptionalID(c, "category_id"); err != nil {
		return filter, err
	}
	if filter.PoolID, err = parseOptionalID(c, "pool_id"); err != nil {
		return filter, err
	}
	if filter.VendorID, err = parseOptionalID(c, "vendor_id"); err != nil {
		return filter, err
	}

	return filter, nil
}

// parseOptionalID parses an optional uint query parameter, returning nil when absent.
func parseOptionalID(c *gin.Context, param string) (*uint, error) {
	v := c.Query(param)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", param, err)
	}
	u := uint(id)
	return &u, nil
}
