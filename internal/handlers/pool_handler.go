package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/models"
	"poolbook/internal/services"
)

// PoolHandler handles pool-related requests.
type PoolHandler struct {
	poolService services.PoolServicer
}

// NewPoolHandler creates a new PoolHandler.
func NewPoolHandler(poolService services.PoolServicer) *PoolHandler {
	return &PoolHandler{poolService: poolService}
}

// CreatePoolRequest represents the request payload for creating a pool.
type CreatePoolRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Type        models.PoolType `json:"type" binding:"required,pool_type"`
	Description string          `json:"description" binding:"omitempty,max=500"`
}

// UpdatePoolRequest represents the request payload for updating a pool.
// Type is fixed at creation and cannot be changed.
type UpdatePoolRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// CreatePool handles the creation of a new pool.
// @Summary     Create a pool
// @Description Create a new money pool for the scoped user
// @Tags        pools
// @Accept      json
// @Produce     json
// @Param       X-User-ID header int               true "Scoped user ID"
// @Param       request   body   CreatePoolRequest true "Pool details"
// @Success     201 {object} models.Pool "Pool created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pools [post]
func (h *PoolHandler) CreatePool(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	pool, err := h.poolService.CreatePool(userID, req.Name, req.Type, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pool": pool})
}

// GetPools handles listing pools for the scoped user.
// @Summary     Get pools
// @Description Get all pools for the scoped user
// @Tags        pools
// @Produce     json
// @Param       X-User-ID header int true "Scoped user ID"
// @Success     200 {array} models.Pool "Pools"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pools [get]
func (h *PoolHandler) GetPools(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	pools, err := h.poolService.GetUserPools(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pools": pools})
}

// GetPool handles fetching a single pool.
// @Summary     Get a pool
// @Description Get a pool by ID
// @Tags        pools
// @Produce     json
// @Param       X-User-ID header int true "Scoped user ID"
// @Param       id        path   int true "Pool ID"
// @Success     200 {object} models.Pool "Pool"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Pool not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pools/{id} [get]
func (h *PoolHandler) GetPool(c *gin.Context) {
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

	pool, err := h.poolService.GetPoolByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pool": pool})
}

// UpdatePool handles updating a pool.
// @Summary     Update a pool
// @Description Update a pool's name or description
// @Tags        pools
// @Accept      json
// @Produce     json
// @Param       X-User-ID header int               true "Scoped user ID"
// @Param       id        path   int               true "Pool ID"
// @Param       request   body   UpdatePoolRequest true "Fields to update"
// @Success     200 {object} models.Pool "Updated pool"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Pool not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pools/{id} [put]
func (h *PoolHandler) UpdatePool(c *gin.Context) {
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

	var req UpdatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	pool, err := h.poolService.UpdatePool(userID, id, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pool": pool})
}

// DeletePool handles deleting a pool.
// @Summary     Delete a pool
// @Description Delete a pool that no transactions or budgets reference
// @Tags        pools
// @Produce     json
// @Param       X-User-ID header int true "Scoped user ID"
// @Param       id        path   int true "Pool ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Pool not found"
// @Failure     409 {object} ErrorResponse "Pool is referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pools/{id} [delete]
func (h *PoolHandler) DeletePool(c *gin.Context) {
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

	if err := h.poolService.DeletePool(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pool deleted"})
}
