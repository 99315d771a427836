package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/services"
)

// VendorHandler handles vendor-related requests.
type VendorHandler struct {
	vendorService services.VendorServicer
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorService services.VendorServicer) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// CreateVendorRequest represents the request payload for creating a vendor.
type CreateVendorRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateVendorRequest represents the request payload for updating a vendor.
type UpdateVendorRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// CreateVendor handles the creation of a new vendor.
// @Summary     Create a vendor
// @Description Create a new payment vendor for the scoped user
// @Tags        vendors
// @Accept      json
// @Produce     json
// @Param       X-User-ID header int                 true "Scoped user ID"
// @Param       request   body   CreateVendorRequest true "Vendor details"
// @Success     201 {object} models.Vendor "Vendor created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	vendor, err := h.vendorService.CreateVendor(userID, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vendor": vendor})
}

// GetVendors handles listing vendors for the scoped user.
// @Summary     Get vendors
// @Description Get all vendors for the scoped user
// @Tags        vendors
// @Produce     json
// @Param       X-User-ID header int true "Scoped user ID"
// @Success     200 {array} models.Vendor "Vendors"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors [get]
func (h *VendorHandler) GetVendors(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	vendors, err := h.vendorService.GetUserVendors(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// GetVendor handles fetching a single vendor.
// @Summary     Get a vendor
// @Description Get a vendor by ID
// @Tags        vendors
// @Produce     json
// @Param       X-User-ID header int true "Scoped user ID"
// @Param       id        path   int true "Vendor ID"
// @Success     200 {object} models.Vendor "Vendor"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vendor not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
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

	vendor, err := h.vendorService.GetVendorByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// UpdateVendor handles updating a vendor.
// @Summary     Update a vendor
// @Description Update a vendor's name or description
// @Tags        vendors
// @Accept      json
// @Produce     json
// @Param       X-User-ID header int                 true "Scoped user ID"
// @Param       id        path   int                 true "Vendor ID"
// @Param       request   body   UpdateVendorRequest true "Fields to update"
// @Success     200 {object} models.Vendor "Updated vendor"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vendor not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors/{id} [put]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
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

	var req UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	vendor, err := h.vendorService.UpdateVendor(userID, id, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// DeleteVendor handles deleting a vendor.
// @Summary     Delete a vendor
// @Description Delete a vendor that no transactions reference
// @Tags        vendors
// @Produce     json
// @Param       X-User-ID header int true "Scoped user ID"
// @Param       id        path   int true "Vendor ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vendor not found"
// @Failure     409 {object} ErrorResponse "Vendor has transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors/{id} [delete]
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
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

	if err := h.vendorService.DeleteVendor(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted"})
}
